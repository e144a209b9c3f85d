package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/lms/progress/model"
	progressService "belajarku_backend/internals/features/lms/progress/service"
	helper "belajarku_backend/internals/helpers"
)

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// =============================
// ✅ Tandai section selesai
// =============================
func (ctrl *ProgressController) CompleteSection(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sectionID, err := uuid.Parse(c.Params("section_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Section ID tidak valid")
	}

	result, err := progressService.CompleteSection(ctrl.DB, userID, sectionID, nil)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Section ditandai selesai", result)
}

// =============================
// 📄 Progress user di sebuah course
// =============================
func (ctrl *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var rows []model.UserSectionProgressModel
	if err := ctrl.DB.
		Where("user_section_progress_user_id = ? AND user_section_progress_course_id = ?", userID, courseID).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil progress")
	}

	return helper.Success(c, "Berhasil ambil progress", rows)
}
