package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSectionProgressModel: satu baris per (user, section), dibuat saat
// pertama kali selesai dan tidak pernah dihapus. Upsert idempotent untuk
// penyelesaian ulang.
type UserSectionProgressModel struct {
	UserSectionProgressID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_section_progress_id" json:"user_section_progress_id"`
	UserSectionProgressUserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_section;column:user_section_progress_user_id" json:"user_section_progress_user_id"`
	UserSectionProgressSectionID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_section;column:user_section_progress_section_id" json:"user_section_progress_section_id"`
	UserSectionProgressCourseID  uuid.UUID  `gorm:"type:uuid;not null;index;column:user_section_progress_course_id" json:"user_section_progress_course_id"`
	UserSectionProgressCompleted bool       `gorm:"not null;default:false;column:user_section_progress_completed" json:"user_section_progress_completed"`
	UserSectionProgressCompletedAt *time.Time `gorm:"column:user_section_progress_completed_at" json:"user_section_progress_completed_at,omitempty"`
	UserSectionProgressQuizScore *float64   `gorm:"column:user_section_progress_quiz_score" json:"user_section_progress_quiz_score,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserSectionProgressModel) TableName() string {
	return "user_section_progress"
}
