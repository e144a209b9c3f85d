package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "belajarku_backend/internals/features/users/auth/controller"
	"belajarku_backend/internals/middlewares"
)

// AuthPublicRoutes = register + login, tanpa auth, login dibatasi limiter
func AuthPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// AuthUserRoutes = logout, butuh token valid
func AuthUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
}
