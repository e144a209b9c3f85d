package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badgeRoute "belajarku_backend/internals/features/gamification/badges/route"
	questRoute "belajarku_backend/internals/features/gamification/quests/route"
	certRoute "belajarku_backend/internals/features/certificates/route"
	challengeRoute "belajarku_backend/internals/features/lms/challenges/route"
	courseRoute "belajarku_backend/internals/features/lms/courses/route"
	progressRoute "belajarku_backend/internals/features/lms/progress/route"
	quizRoute "belajarku_backend/internals/features/lms/quizzes/route"
	paymentRoute "belajarku_backend/internals/features/payments/route"
	authRoute "belajarku_backend/internals/features/users/auth/route"
	userRoute "belajarku_backend/internals/features/users/user/route"
)

// UserRoutes = endpoint yang butuh login.
func UserRoutes(router fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(router, db)
	userRoute.UserRoutes(router, db)
	courseRoute.CourseUserRoutes(router, db)
	progressRoute.ProgressUserRoutes(router, db)
	quizRoute.QuizUserRoutes(router, db)
	challengeRoute.ChallengeUserRoutes(router, db)
	badgeRoute.BadgeUserRoutes(router, db)
	questRoute.QuestUserRoutes(router, db)
	certRoute.CertificateUserRoutes(router, db)
	paymentRoute.PaymentUserRoutes(router, db)
}
