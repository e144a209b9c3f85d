package dto

import (
	"time"

	"gorm.io/datatypes"

	"belajarku_backend/internals/features/lms/quizzes/model"
)

// ============================
// Response DTO
// ============================
type QuizDTO struct {
	QuizID          string            `json:"quiz_id"`
	QuizTitle       string            `json:"quiz_title"`
	QuizDescription string            `json:"quiz_description"`
	QuizMaxAttempts int               `json:"quiz_max_attempts"`
	Questions       []QuizQuestionDTO `json:"questions"`
	CreatedAt       time.Time         `json:"created_at"`
}

// QuizQuestionDTO sengaja tidak memuat kunci jawaban.
type QuizQuestionDTO struct {
	QuizQuestionID      string         `json:"quiz_question_id"`
	QuizQuestionText    string         `json:"quiz_question_text"`
	QuizQuestionOptions datatypes.JSON `json:"quiz_question_options"`
	QuizQuestionPoints  int            `json:"quiz_question_points"`
	QuizQuestionOrder   int            `json:"quiz_question_order"`
}

// ============================
// Request DTO
// ============================
type SubmitQuizRequest struct {
	// map question_id -> jawaban
	Answers map[string]string `json:"answers" validate:"required,min=1"`
}

type CreateQuizRequest struct {
	QuizTitle       string  `json:"quiz_title" validate:"required,min=3,max=200"`
	QuizDescription string  `json:"quiz_description"`
	QuizCourseID    *string `json:"quiz_course_id" validate:"omitempty,uuid"`
	// nil = pakai default; 0 eksplisit = tanpa batas
	QuizMaxAttempts *int `json:"quiz_max_attempts" validate:"omitempty,gte=0"`
}

type CreateQuizQuestionRequest struct {
	QuizQuestionText          string         `json:"quiz_question_text" validate:"required"`
	QuizQuestionOptions       datatypes.JSON `json:"quiz_question_options"`
	QuizQuestionCorrectAnswer string         `json:"quiz_question_correct_answer" validate:"required"`
	QuizQuestionPoints        int            `json:"quiz_question_points" validate:"gt=0"`
	QuizQuestionOrder         int            `json:"quiz_question_order" validate:"gte=0"`
}

// ============================
// Converter
// ============================
func ToQuizDTO(m model.QuizModel) QuizDTO {
	questions := make([]QuizQuestionDTO, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, QuizQuestionDTO{
			QuizQuestionID:      q.QuizQuestionID.String(),
			QuizQuestionText:    q.QuizQuestionText,
			QuizQuestionOptions: q.QuizQuestionOptions,
			QuizQuestionPoints:  q.QuizQuestionPoints,
			QuizQuestionOrder:   q.QuizQuestionOrder,
		})
	}
	return QuizDTO{
		QuizID:          m.QuizID.String(),
		QuizTitle:       m.QuizTitle,
		QuizDescription: m.QuizDescription,
		QuizMaxAttempts: m.QuizMaxAttempts,
		Questions:       questions,
		CreatedAt:       m.CreatedAt,
	}
}
