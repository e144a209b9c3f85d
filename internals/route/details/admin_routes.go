package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badgeRoute "belajarku_backend/internals/features/gamification/badges/route"
	challengeRoute "belajarku_backend/internals/features/lms/challenges/route"
	courseRoute "belajarku_backend/internals/features/lms/courses/route"
	quizRoute "belajarku_backend/internals/features/lms/quizzes/route"
)

// AdminRoutes = CRUD konten, role admin ke atas.
func AdminRoutes(router fiber.Router, db *gorm.DB) {
	courseRoute.CourseAdminRoutes(router, db)
	quizRoute.QuizAdminRoutes(router, db)
	challengeRoute.ChallengeAdminRoutes(router, db)
	badgeRoute.BadgeAdminRoutes(router, db)
}
