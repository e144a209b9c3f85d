package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/lms/quizzes/dto"
	"belajarku_backend/internals/features/lms/quizzes/model"
	quizService "belajarku_backend/internals/features/lms/quizzes/service"
	helper "belajarku_backend/internals/helpers"
)

var validate = validator.New()

type QuizUserController struct {
	DB *gorm.DB
}

func NewQuizUserController(db *gorm.DB) *QuizUserController {
	return &QuizUserController{DB: db}
}

// =============================
// 🔍 Ambil quiz beserta soal (tanpa kunci jawaban)
// =============================
func (ctrl *QuizUserController) GetQuizByID(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	var quiz model.QuizModel
	err = ctrl.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_question_order ASC")
		}).
		Where("quiz_id = ?", quizID).
		First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil quiz")
	}

	return helper.Success(c, "Berhasil ambil quiz", dto.ToQuizDTO(quiz))
}

// =============================
// ➕ Submit jawaban quiz
// =============================
func (ctrl *QuizUserController) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	var body dto.SubmitQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := quizService.SubmitQuiz(ctrl.DB, userID, quizID, body.Answers)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jawaban quiz dinilai", result)
}

// =============================
// 📄 Riwayat attempt user di sebuah quiz
// =============================
func (ctrl *QuizUserController) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
	}

	var attempts []model.QuizAttemptModel
	if err := ctrl.DB.
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ?", quizID, userID).
		Order("created_at DESC").
		Find(&attempts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attempt")
	}

	return helper.Success(c, "Berhasil ambil attempt", attempts)
}
