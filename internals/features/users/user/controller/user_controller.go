package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	levelingService "belajarku_backend/internals/features/gamification/leveling/service"
	"belajarku_backend/internals/features/users/user/model"
	helper "belajarku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =============================
// 👤 Profil user login (dengan progres level)
// =============================
func (ctrl *UserController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var user model.UserModel
	if err := ctrl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.Success(c, "Berhasil ambil profil", fiber.Map{
		"user":           user,
		"level_progress": levelingService.ProgressForXP(user.UserXP),
	})
}

type leaderboardEntry struct {
	UserName  string `json:"user_name"`
	UserXP    int    `json:"user_xp"`
	UserLevel int    `json:"user_level"`
}

// =============================
// 🏆 Leaderboard XP
// =============================
func (ctrl *UserController) GetLeaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var entries []leaderboardEntry
	if err := ctrl.DB.Model(&model.UserModel{}).
		Select("user_name, user_xp, user_level").
		Where("is_active = true").
		Order("user_xp DESC").
		Limit(limit).
		Scan(&entries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil leaderboard")
	}

	return helper.Success(c, "Berhasil ambil leaderboard", entries)
}
