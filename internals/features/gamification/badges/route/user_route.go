package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badgeController "belajarku_backend/internals/features/gamification/badges/controller"
)

// BadgePublicRoutes = katalog badge, tanpa login
func BadgePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := badgeController.NewBadgeController(db)

	router.Get("/badges", ctrl.GetAllBadges)
}

// BadgeUserRoutes = badge milik user login
func BadgeUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := badgeController.NewBadgeController(db)

	router.Get("/badges/me", ctrl.GetMyBadges)
}
