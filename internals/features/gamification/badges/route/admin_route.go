package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	badgeController "belajarku_backend/internals/features/gamification/badges/controller"
)

// BadgeAdminRoutes = kelola badge + pemberian manual
func BadgeAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := badgeController.NewBadgeAdminController(db)

	badge := router.Group("/badges")
	badge.Post("/", ctrl.CreateBadge)
	badge.Delete("/:badge_id", ctrl.DeleteBadge)
	badge.Post("/:badge_id/award", ctrl.AwardBadge)
}
