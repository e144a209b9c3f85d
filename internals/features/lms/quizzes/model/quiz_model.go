package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizModel struct {
	QuizID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_id" json:"quiz_id"`
	QuizTitle       string    `gorm:"size:200;not null;column:quiz_title" json:"quiz_title"`
	QuizDescription string    `gorm:"type:text;column:quiz_description" json:"quiz_description"`
	QuizCourseID    *uuid.UUID `gorm:"type:uuid;index;column:quiz_course_id" json:"quiz_course_id,omitempty"`
	// 0 = tanpa batas percobaan
	QuizMaxAttempts int `gorm:"not null;default:3;column:quiz_max_attempts" json:"quiz_max_attempts"`

	Questions []QuizQuestionModel `gorm:"foreignKey:QuizQuestionQuizID;references:QuizID" json:"questions,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}

type QuizQuestionModel struct {
	QuizQuestionID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_question_id" json:"quiz_question_id"`
	QuizQuestionQuizID uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_question_quiz_id" json:"quiz_question_quiz_id"`
	QuizQuestionText   string    `gorm:"type:text;not null;column:quiz_question_text" json:"quiz_question_text"`
	// Pilihan jawaban disimpan sebagai array JSONB
	QuizQuestionOptions datatypes.JSON `gorm:"type:jsonb;column:quiz_question_options" json:"quiz_question_options"`
	// Jawaban benar dibandingkan exact string equality, jangan dikirim ke client
	QuizQuestionCorrectAnswer string `gorm:"type:text;not null;column:quiz_question_correct_answer" json:"-"`
	QuizQuestionPoints        int    `gorm:"not null;default:10;column:quiz_question_points" json:"quiz_question_points"`
	QuizQuestionOrder         int    `gorm:"not null;default:0;column:quiz_question_order" json:"quiz_question_order"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}
