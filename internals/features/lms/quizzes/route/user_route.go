package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "belajarku_backend/internals/features/lms/quizzes/controller"
)

// QuizUserRoutes = rute quiz untuk user login
func QuizUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := quizController.NewQuizUserController(db)

	quiz := router.Group("/quizzes")
	quiz.Get("/:quiz_id", ctrl.GetQuizByID)
	quiz.Post("/:quiz_id/submit", ctrl.SubmitQuiz)
	quiz.Get("/:quiz_id/attempts", ctrl.GetMyAttempts)
}
