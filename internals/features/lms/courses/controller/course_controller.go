package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/lms/courses/dto"
	"belajarku_backend/internals/features/lms/courses/model"
	courseService "belajarku_backend/internals/features/lms/courses/service"
	helper "belajarku_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// =============================
// 📄 Daftar course terpublikasi
// =============================
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var total int64
	q := ctrl.DB.Model(&model.CourseModel{}).Where("course_is_published = true")
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung course")
	}

	var courses []model.CourseModel
	if err := q.Preload("Sections").
		Order("created_at " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	dtos := make([]dto.CourseDTO, 0, len(courses))
	for _, course := range courses {
		dtos = append(dtos, dto.ToCourseDTO(course))
	}

	return helper.Success(c, "Berhasil ambil course", fiber.Map{
		"courses": dtos,
		"meta":    helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Detail course by slug (dengan sections terurut)
// =============================
func (ctrl *CourseController) GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course model.CourseModel
	err := ctrl.DB.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_section_order ASC")
		}).
		Where("course_slug = ? AND course_is_published = true", slug).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil course")
	}

	sections := make([]dto.CourseSectionDTO, 0, len(course.Sections))
	for _, s := range course.Sections {
		sections = append(sections, dto.ToCourseSectionDTO(s))
	}

	return helper.Success(c, "Berhasil ambil course", fiber.Map{
		"course":   dto.ToCourseDTO(course),
		"sections": sections,
	})
}

// =============================
// ➕ Enroll course gratis (course berbayar lewat checkout)
// =============================
func (ctrl *CourseController) EnrollCourse(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	enrollment, err := courseService.EnrollFree(ctrl.DB, userID, courseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Berhasil enroll course", enrollment)
}

// =============================
// 📄 Enrollment milik user (my courses)
// =============================
func (ctrl *CourseController) GetMyEnrollments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var enrollments []model.EnrollmentModel
	if err := ctrl.DB.Preload("Course").
		Where("enrollment_user_id = ?", userID).
		Order("updated_at DESC").
		Find(&enrollments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil enrollment")
	}

	return helper.Success(c, "Berhasil ambil enrollment", enrollments)
}
