package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	questService "belajarku_backend/internals/features/gamification/quests/service"
	helper "belajarku_backend/internals/helpers"
)

type QuestController struct {
	DB *gorm.DB
}

func NewQuestController(db *gorm.DB) *QuestController {
	return &QuestController{DB: db}
}

// =============================
// 📋 Quest harian hari ini (digenerate kalau belum ada)
// =============================
func (ctrl *QuestController) GetTodayQuests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	quests, err := questService.ListTodayQuests(ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Berhasil ambil quest harian", quests)
}

// =============================
// 🎁 Klaim reward quest yang sudah selesai
// =============================
func (ctrl *QuestController) ClaimQuest(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	questID, err := uuid.Parse(c.Params("quest_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Quest ID tidak valid")
	}

	award, err := questService.ClaimQuest(ctrl.DB, userID, questID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Quest berhasil diklaim", award)
}
