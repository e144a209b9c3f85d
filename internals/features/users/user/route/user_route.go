package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "belajarku_backend/internals/features/users/user/controller"
)

// UserPublicRoutes = leaderboard, tanpa login
func UserPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	router.Get("/leaderboard", ctrl.GetLeaderboard)
}

// UserRoutes = profil user login
func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	router.Get("/users/me", ctrl.GetMyProfile)
}
