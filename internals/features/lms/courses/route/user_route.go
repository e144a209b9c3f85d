package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "belajarku_backend/internals/features/lms/courses/controller"
)

// Public: katalog course. Private: enroll + my courses.
func CoursePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)
	courses := router.Group("/courses")

	courses.Get("/", ctrl.GetAllCourses)
	courses.Get("/:slug", ctrl.GetCourseBySlug)
}

func CourseUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)
	courses := router.Group("/courses")

	courses.Post("/:course_id/enroll", ctrl.EnrollCourse)
	router.Get("/enrollments", ctrl.GetMyEnrollments)
}
