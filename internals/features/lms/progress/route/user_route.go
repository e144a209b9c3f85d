package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressController "belajarku_backend/internals/features/lms/progress/controller"
)

func ProgressUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)
	progress := router.Group("/progress")

	progress.Post("/sections/:section_id/complete", ctrl.CompleteSection)
	progress.Get("/courses/:course_id", ctrl.GetCourseProgress)
}
