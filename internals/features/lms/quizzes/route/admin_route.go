package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "belajarku_backend/internals/features/lms/quizzes/controller"
)

// QuizAdminRoutes = rute kelola quiz untuk admin
func QuizAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizAdminController(db)

	quiz := router.Group("/quizzes")
	quiz.Post("/", ctrl.CreateQuiz)
	quiz.Post("/:quiz_id/questions", ctrl.CreateQuestion)
	quiz.Delete("/:quiz_id", ctrl.DeleteQuiz)
}
