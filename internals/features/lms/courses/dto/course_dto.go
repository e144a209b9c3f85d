package dto

import (
	"time"

	"belajarku_backend/internals/features/lms/courses/model"
)

// ============================
// Response DTO
// ============================
type CourseDTO struct {
	CourseID           string    `json:"course_id"`
	CourseTitle        string    `json:"course_title"`
	CourseSlug         string    `json:"course_slug"`
	CourseDescription  string    `json:"course_description"`
	CourseThumbnailURL string    `json:"course_thumbnail_url"`
	CoursePrice        int       `json:"course_price"`
	CourseIsPublished  bool      `json:"course_is_published"`
	TotalSections      int       `json:"total_sections"`
	CreatedAt          time.Time `json:"created_at"`
}

type CourseSectionDTO struct {
	CourseSectionID      string  `json:"course_section_id"`
	CourseSectionTitle   string  `json:"course_section_title"`
	CourseSectionContent string  `json:"course_section_content"`
	CourseSectionOrder   int     `json:"course_section_order"`
	CourseSectionQuizID  *string `json:"course_section_quiz_id,omitempty"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateCourseRequest struct {
	CourseTitle        string `json:"course_title" validate:"required,min=3,max=200"`
	CourseSlug         string `json:"course_slug" validate:"required,min=3,max=220"`
	CourseDescription  string `json:"course_description"`
	CourseThumbnailURL string `json:"course_thumbnail_url"`
	CoursePrice        int    `json:"course_price" validate:"gte=0"`
	CourseIsPublished  bool   `json:"course_is_published"`
}

type CreateCourseSectionRequest struct {
	CourseSectionTitle   string  `json:"course_section_title" validate:"required,min=3,max=200"`
	CourseSectionContent string  `json:"course_section_content"`
	CourseSectionOrder   int     `json:"course_section_order" validate:"gte=0"`
	CourseSectionQuizID  *string `json:"course_section_quiz_id" validate:"omitempty,uuid"`
}

// ============================
// Converter
// ============================
func ToCourseDTO(m model.CourseModel) CourseDTO {
	return CourseDTO{
		CourseID:           m.CourseID.String(),
		CourseTitle:        m.CourseTitle,
		CourseSlug:         m.CourseSlug,
		CourseDescription:  m.CourseDescription,
		CourseThumbnailURL: m.CourseThumbnailURL,
		CoursePrice:        m.CoursePrice,
		CourseIsPublished:  m.CourseIsPublished,
		TotalSections:      len(m.Sections),
		CreatedAt:          m.CreatedAt,
	}
}

func ToCourseSectionDTO(m model.CourseSectionModel) CourseSectionDTO {
	var quizID *string
	if m.CourseSectionQuizID != nil {
		s := m.CourseSectionQuizID.String()
		quizID = &s
	}
	return CourseSectionDTO{
		CourseSectionID:      m.CourseSectionID.String(),
		CourseSectionTitle:   m.CourseSectionTitle,
		CourseSectionContent: m.CourseSectionContent,
		CourseSectionOrder:   m.CourseSectionOrder,
		CourseSectionQuizID:  quizID,
	}
}
