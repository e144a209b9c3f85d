package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizAttemptModel: setiap submit tersimpan, lulus maupun tidak.
type QuizAttemptModel struct {
	QuizAttemptID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_attempt_id" json:"quiz_attempt_id"`
	QuizAttemptQuizID uuid.UUID `gorm:"type:uuid;not null;index:idx_quiz_attempt_user;column:quiz_attempt_quiz_id" json:"quiz_attempt_quiz_id"`
	QuizAttemptUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_quiz_attempt_user;column:quiz_attempt_user_id" json:"quiz_attempt_user_id"`
	// map question_id -> jawaban yang disubmit
	QuizAttemptAnswers  datatypes.JSONMap `gorm:"type:jsonb;column:quiz_attempt_answers" json:"quiz_attempt_answers"`
	QuizAttemptScore    float64           `gorm:"not null;column:quiz_attempt_score" json:"quiz_attempt_score"`
	QuizAttemptIsPassed bool              `gorm:"not null;default:false;column:quiz_attempt_is_passed" json:"quiz_attempt_is_passed"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}
