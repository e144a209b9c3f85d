package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EnrollmentStatusInProgress = "IN_PROGRESS"
	EnrollmentStatusCompleted  = "COMPLETED"
)

// EnrollmentModel mengikat user ke course. Unique (user, course):
// satu user satu pendaftaran per course. completed_at sekali terisi
// tidak pernah di-reset oleh alur penyelesaian normal.
type EnrollmentModel struct {
	EnrollmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`
	EnrollmentUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_course;column:enrollment_user_id" json:"enrollment_user_id"`
	EnrollmentCourseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_course;column:enrollment_course_id" json:"enrollment_course_id"`

	EnrollmentProgressPercentage float64    `gorm:"not null;default:0;column:enrollment_progress_percentage" json:"enrollment_progress_percentage"`
	EnrollmentCurrentSectionID   *uuid.UUID `gorm:"type:uuid;column:enrollment_current_section_id" json:"enrollment_current_section_id,omitempty"`
	EnrollmentStatus             string     `gorm:"type:varchar(20);not null;default:'IN_PROGRESS';column:enrollment_status" json:"enrollment_status"`
	EnrollmentCompletedAt        *time.Time `gorm:"column:enrollment_completed_at" json:"enrollment_completed_at,omitempty"`

	Course *CourseModel `gorm:"foreignKey:EnrollmentCourseID;references:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
