package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	"belajarku_backend/internals/features/lms/quizzes/dto"
	"belajarku_backend/internals/features/lms/quizzes/model"
	helper "belajarku_backend/internals/helpers"
)

type QuizAdminController struct {
	DB *gorm.DB
}

func NewQuizAdminController(db *gorm.DB) *QuizAdminController {
	return &QuizAdminController{DB: db}
}

// =============================
// ➕ Create Quiz
// =============================
func (ctrl *QuizAdminController) CreateQuiz(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	maxAttempts := constants.QuizDefaultAttempts
	if body.QuizMaxAttempts != nil {
		maxAttempts = *body.QuizMaxAttempts
	}
	quiz := model.QuizModel{
		QuizTitle:       body.QuizTitle,
		QuizDescription: body.QuizDescription,
		QuizMaxAttempts: maxAttempts,
	}
	if body.QuizCourseID != nil {
		courseID, err := uuid.Parse(*body.QuizCourseID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Course ID tidak valid")
		}
		quiz.QuizCourseID = &courseID
	}

	if err := ctrl.DB.Create(&quiz).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat quiz")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Quiz berhasil dibuat", dto.ToQuizDTO(quiz))
}

// =============================
// ➕ Tambah soal ke quiz
// =============================
func (ctrl *QuizAdminController) CreateQuestion(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	var body dto.CreateQuizQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var exists int64
	if err := ctrl.DB.Model(&model.QuizModel{}).
		Where("quiz_id = ?", quizID).
		Count(&exists).Error; err != nil || exists == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
	}

	question := model.QuizQuestionModel{
		QuizQuestionQuizID:        quizID,
		QuizQuestionText:          body.QuizQuestionText,
		QuizQuestionOptions:       body.QuizQuestionOptions,
		QuizQuestionCorrectAnswer: body.QuizQuestionCorrectAnswer,
		QuizQuestionPoints:        body.QuizQuestionPoints,
		QuizQuestionOrder:         body.QuizQuestionOrder,
	}
	if err := ctrl.DB.Create(&question).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat soal")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Soal berhasil dibuat", question.QuizQuestionID)
}

// =============================
// ❌ Delete Quiz
// =============================
func (ctrl *QuizAdminController) DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	if err := ctrl.DB.Delete(&model.QuizModel{}, "quiz_id = ?", quizID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus quiz")
	}

	return helper.Success(c, "Quiz berhasil dihapus", nil)
}
