package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/gamification/badges/model"
	helper "belajarku_backend/internals/helpers"
)

var validate = validator.New()

type BadgeController struct {
	DB *gorm.DB
}

func NewBadgeController(db *gorm.DB) *BadgeController {
	return &BadgeController{DB: db}
}

// =============================
// 📄 Daftar semua badge
// =============================
func (ctrl *BadgeController) GetAllBadges(c *fiber.Ctx) error {
	var badges []model.BadgeModel
	if err := ctrl.DB.Order("created_at ASC").Find(&badges).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil badge")
	}

	return helper.Success(c, "Berhasil ambil badge", badges)
}

// =============================
// 🏅 Badge milik user login
// =============================
func (ctrl *BadgeController) GetMyBadges(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var owned []model.UserBadgeModel
	if err := ctrl.DB.Preload("Badge").
		Where("user_badge_user_id = ?", userID).
		Order("user_badge_earned_at DESC").
		Find(&owned).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil badge user")
	}

	return helper.Success(c, "Berhasil ambil badge user", owned)
}
