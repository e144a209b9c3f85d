package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	"belajarku_backend/internals/features/gamification/badges/model"
	badgeService "belajarku_backend/internals/features/gamification/badges/service"
	xpService "belajarku_backend/internals/features/gamification/xp/service"
	helper "belajarku_backend/internals/helpers"
)

type BadgeAdminController struct {
	DB *gorm.DB
}

func NewBadgeAdminController(db *gorm.DB) *BadgeAdminController {
	return &BadgeAdminController{DB: db}
}

type createBadgeRequest struct {
	BadgeName          string `json:"badge_name" validate:"required,min=3,max=100"`
	BadgeDescription   string `json:"badge_description"`
	BadgeIconURL       string `json:"badge_icon_url" validate:"omitempty,url"`
	BadgeCriteriaType  string `json:"badge_criteria_type" validate:"required,oneof=XP_MILESTONE COURSE_COMPLETION CHALLENGE_COUNT MANUAL"`
	BadgeCriteriaValue string `json:"badge_criteria_value"`
	BadgeXPReward      int    `json:"badge_xp_reward" validate:"gte=0"`
}

// =============================
// ➕ Create Badge
// =============================
func (ctrl *BadgeAdminController) CreateBadge(c *fiber.Ctx) error {
	var body createBadgeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	badge := model.BadgeModel{
		BadgeName:          body.BadgeName,
		BadgeDescription:   body.BadgeDescription,
		BadgeIconURL:       body.BadgeIconURL,
		BadgeCriteriaType:  body.BadgeCriteriaType,
		BadgeCriteriaValue: body.BadgeCriteriaValue,
		BadgeXPReward:      body.BadgeXPReward,
	}

	// Kriteria divalidasi saat create supaya evaluator tidak ketemu
	// baris rusak belakangan
	if _, err := badgeService.ParseCriterion(badge); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Kriteria badge tidak valid: "+err.Error())
	}

	if err := ctrl.DB.Create(&badge).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat badge")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Badge berhasil dibuat", badge)
}

// =============================
// ❌ Delete Badge
// =============================
func (ctrl *BadgeAdminController) DeleteBadge(c *fiber.Ctx) error {
	badgeID, err := uuid.Parse(c.Params("badge_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Badge ID tidak valid")
	}

	if err := ctrl.DB.Delete(&model.BadgeModel{}, "badge_id = ?", badgeID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus badge")
	}

	return helper.Success(c, "Badge berhasil dihapus", nil)
}

type awardBadgeRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// =============================
// 🎖️ Pemberian manual (kriteria MANUAL)
// =============================
func (ctrl *BadgeAdminController) AwardBadge(c *fiber.Ctx) error {
	badgeID, err := uuid.Parse(c.Params("badge_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Badge ID tidak valid")
	}

	var body awardBadgeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var badge model.BadgeModel
	if err := ctrl.DB.Where("badge_id = ?", badgeID).First(&badge).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Badge tidak ditemukan")
	}

	ownership := model.UserBadgeModel{
		UserBadgeUserID:  userID,
		UserBadgeBadgeID: badgeID,
	}
	if err := ctrl.DB.Create(&ownership).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "User sudah punya badge ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memberikan badge")
	}

	if badge.BadgeXPReward > 0 {
		if _, err := xpService.GrantXP(ctrl.DB, userID, badge.BadgeXPReward, constants.XPSourceBadge); err != nil {
			log.Println("[WARNING] Badge diberikan tapi XP reward gagal:", err)
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Badge berhasil diberikan", ownership)
}
