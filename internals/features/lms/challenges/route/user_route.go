package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	challengeController "belajarku_backend/internals/features/lms/challenges/controller"
)

// ChallengePublicRoutes = daftar + detail challenge, tanpa login
func ChallengePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := challengeController.NewChallengeUserController(db)

	challenge := router.Group("/challenges")
	challenge.Get("/", ctrl.GetAllChallenges)
	challenge.Get("/:slug", ctrl.GetChallengeBySlug)
}

// ChallengeUserRoutes = submit + riwayat, butuh login
func ChallengeUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := challengeController.NewChallengeUserController(db)

	challenge := router.Group("/challenges")
	challenge.Post("/:challenge_id/submit", ctrl.SubmitChallenge)
	challenge.Get("/:challenge_id/submissions", ctrl.GetMySubmissions)
}
