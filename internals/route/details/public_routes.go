package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badgeRoute "belajarku_backend/internals/features/gamification/badges/route"
	certRoute "belajarku_backend/internals/features/certificates/route"
	challengeRoute "belajarku_backend/internals/features/lms/challenges/route"
	courseRoute "belajarku_backend/internals/features/lms/courses/route"
	authRoute "belajarku_backend/internals/features/users/auth/route"
	userRoute "belajarku_backend/internals/features/users/user/route"
)

// PublicRoutes = endpoint tanpa login: katalog, verifikasi sertifikat,
// leaderboard, auth.
func PublicRoutes(router fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(router, db)
	courseRoute.CoursePublicRoutes(router, db)
	challengeRoute.ChallengePublicRoutes(router, db)
	badgeRoute.BadgePublicRoutes(router, db)
	certRoute.CertificatePublicRoutes(router, db)
	userRoute.UserPublicRoutes(router, db)
}
