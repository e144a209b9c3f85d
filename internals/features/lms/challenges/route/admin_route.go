package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	challengeController "belajarku_backend/internals/features/lms/challenges/controller"
)

// ChallengeAdminRoutes = rute kelola challenge untuk admin
func ChallengeAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := challengeController.NewChallengeAdminController(db)

	challenge := router.Group("/challenges")
	challenge.Post("/", ctrl.CreateChallenge)
	challenge.Put("/:challenge_id", ctrl.UpdateChallenge)
	challenge.Delete("/:challenge_id", ctrl.DeleteChallenge)
}
