package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questController "belajarku_backend/internals/features/gamification/quests/controller"
)

// QuestUserRoutes = quest harian user login
func QuestUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := questController.NewQuestController(db)

	quest := router.Group("/quests")
	quest.Get("/today", ctrl.GetTodayQuests)
	quest.Post("/:quest_id/claim", ctrl.ClaimQuest)
}
