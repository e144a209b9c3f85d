package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseSectionModel struct {
	CourseSectionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_section_id" json:"course_section_id"`
	CourseSectionCourseID uuid.UUID `gorm:"type:uuid;not null;index;column:course_section_course_id" json:"course_section_course_id"`
	CourseSectionTitle    string    `gorm:"size:200;not null;column:course_section_title" json:"course_section_title"`
	CourseSectionContent  string    `gorm:"type:text;column:course_section_content" json:"course_section_content"`
	CourseSectionOrder    int       `gorm:"not null;default:0;column:course_section_order" json:"course_section_order"`
	// Section bisa menautkan quiz; lulus quiz menandai section selesai
	CourseSectionQuizID *uuid.UUID `gorm:"type:uuid;column:course_section_quiz_id" json:"course_section_quiz_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CourseSectionModel) TableName() string {
	return "course_sections"
}
