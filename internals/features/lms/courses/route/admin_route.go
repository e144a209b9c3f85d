package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "belajarku_backend/internals/features/lms/courses/controller"
)

func CourseAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseAdminController(db)
	courses := router.Group("/courses")

	courses.Post("/", ctrl.CreateCourse)
	courses.Put("/:course_id", ctrl.UpdateCourse)
	courses.Delete("/:course_id", ctrl.DeleteCourse)
	courses.Post("/:course_id/sections", ctrl.CreateSection)
	courses.Delete("/sections/:section_id", ctrl.DeleteSection)
}
