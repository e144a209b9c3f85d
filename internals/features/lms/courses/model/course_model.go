package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`
	CourseTitle       string    `gorm:"size:200;not null;column:course_title" json:"course_title"`
	CourseSlug        string    `gorm:"size:220;unique;not null;column:course_slug" json:"course_slug"`
	CourseDescription string    `gorm:"type:text;column:course_description" json:"course_description"`
	CourseThumbnailURL string   `gorm:"type:text;column:course_thumbnail_url" json:"course_thumbnail_url"`
	CoursePrice       int       `gorm:"not null;default:0;column:course_price" json:"course_price"` // 0 = gratis
	CourseIsPublished bool      `gorm:"not null;default:false;column:course_is_published" json:"course_is_published"`

	Sections []CourseSectionModel `gorm:"foreignKey:CourseSectionCourseID;references:CourseID" json:"sections,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}
