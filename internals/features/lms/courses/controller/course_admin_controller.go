package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/lms/courses/dto"
	"belajarku_backend/internals/features/lms/courses/model"
	helper "belajarku_backend/internals/helpers"
)

type CourseAdminController struct {
	DB *gorm.DB
}

func NewCourseAdminController(db *gorm.DB) *CourseAdminController {
	return &CourseAdminController{DB: db}
}

// =============================
// ➕ Create Course
// =============================
func (ctrl *CourseAdminController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	course := model.CourseModel{
		CourseTitle:        body.CourseTitle,
		CourseSlug:         body.CourseSlug,
		CourseDescription:  body.CourseDescription,
		CourseThumbnailURL: body.CourseThumbnailURL,
		CoursePrice:        body.CoursePrice,
		CourseIsPublished:  body.CourseIsPublished,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "Slug course sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat course")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course berhasil dibuat", dto.ToCourseDTO(course))
}

// =============================
// ✏️ Update Course
// =============================
func (ctrl *CourseAdminController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	course.CourseTitle = body.CourseTitle
	course.CourseSlug = body.CourseSlug
	course.CourseDescription = body.CourseDescription
	course.CourseThumbnailURL = body.CourseThumbnailURL
	course.CoursePrice = body.CoursePrice
	course.CourseIsPublished = body.CourseIsPublished

	if err := ctrl.DB.Save(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update course")
	}

	return helper.Success(c, "Course berhasil diupdate", dto.ToCourseDTO(course))
}

// =============================
// ❌ Delete Course (soft delete)
// =============================
func (ctrl *CourseAdminController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	if err := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", courseID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus course")
	}

	return helper.Success(c, "Course berhasil dihapus", nil)
}

// =============================
// ➕ Create Section di sebuah course
// =============================
func (ctrl *CourseAdminController) CreateSection(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var body dto.CreateCourseSectionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var exists int64
	if err := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_id = ?", courseID).
		Count(&exists).Error; err != nil || exists == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course tidak ditemukan")
	}

	section := model.CourseSectionModel{
		CourseSectionCourseID: courseID,
		CourseSectionTitle:    body.CourseSectionTitle,
		CourseSectionContent:  body.CourseSectionContent,
		CourseSectionOrder:    body.CourseSectionOrder,
	}
	if body.CourseSectionQuizID != nil {
		quizID, err := uuid.Parse(*body.CourseSectionQuizID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Quiz ID tidak valid")
		}
		section.CourseSectionQuizID = &quizID
	}

	if err := ctrl.DB.Create(&section).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat section")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Section berhasil dibuat", dto.ToCourseSectionDTO(section))
}

// =============================
// ❌ Delete Section
// =============================
func (ctrl *CourseAdminController) DeleteSection(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("section_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Section ID tidak valid")
	}

	if err := ctrl.DB.Delete(&model.CourseSectionModel{}, "course_section_id = ?", sectionID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus section")
	}

	return helper.Success(c, "Section berhasil dihapus", nil)
}
