package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	questModel "belajarku_backend/internals/features/gamification/quests/model"
	xpService "belajarku_backend/internals/features/gamification/xp/service"
	helper "belajarku_backend/internals/helpers"
)

// questTemplate mendefinisikan set quest harian yang digenerate per user.
type questTemplate struct {
	Type     string
	Target   int
	XPReward int
}

var dailyQuestSet = []questTemplate{
	{Type: questModel.QuestLogin, Target: 1, XPReward: 10},
	{Type: questModel.QuestCompleteSection, Target: 3, XPReward: 20},
	{Type: questModel.QuestPassQuiz, Target: 1, XPReward: 25},
}

// GenerateDailyQuests membuat quest hari ini untuk user kalau belum ada.
// Aman dipanggil berkali-kali: generate di-skip jika quest tanggal itu
// sudah ada; duplikat karena race ditelan lewat unique constraint.
func GenerateDailyQuests(db *gorm.DB, userID uuid.UUID) error {
	today := Midnight(time.Now())

	var count int64
	if err := db.Model(&questModel.DailyQuestModel{}).
		Where("daily_quest_user_id = ? AND daily_quest_date = ?", userID, today).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] Gagal cek quest harian:", err)
		return err
	}
	if count > 0 {
		return nil
	}

	for _, tpl := range dailyQuestSet {
		quest := questModel.DailyQuestModel{
			DailyQuestUserID:   userID,
			DailyQuestDate:     today,
			DailyQuestType:     tpl.Type,
			DailyQuestTarget:   tpl.Target,
			DailyQuestXPReward: tpl.XPReward,
		}
		if err := db.Create(&quest).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				continue
			}
			log.Println("[ERROR] Gagal generate quest harian:", err)
			return err
		}
	}

	log.Printf("[INFO] Quest harian %s digenerate untuk user %s", today.Format("2006-01-02"), userID)
	return nil
}

// BumpQuestProgress menaikkan progress quest hari ini untuk tipe tertentu.
// Dipanggil dari event domain (login, selesai section, lulus quiz).
// Progress di-cap di target; quest yang sudah diklaim tidak disentuh.
func BumpQuestProgress(db *gorm.DB, userID uuid.UUID, questType string, delta int) error {
	if delta <= 0 {
		return nil
	}
	today := Midnight(time.Now())

	err := db.Model(&questModel.DailyQuestModel{}).
		Where("daily_quest_user_id = ? AND daily_quest_date = ? AND daily_quest_type = ?", userID, today, questType).
		Where("daily_quest_is_claimed = false AND daily_quest_progress < daily_quest_target").
		Update("daily_quest_progress", gorm.Expr("LEAST(daily_quest_progress + ?, daily_quest_target)", delta)).Error
	if err != nil {
		log.Println("[ERROR] Gagal update progress quest:", err)
	}
	return err
}

// ClaimQuest mengklaim reward quest. Syarat: progress >= target dan belum
// diklaim. Flip is_claimed dilakukan dengan guard di klausa WHERE supaya
// klaim ganda (dua request bersamaan) hanya lolos satu.
func ClaimQuest(db *gorm.DB, userID uuid.UUID, questID uuid.UUID) (*xpService.XPAward, error) {
	var quest questModel.DailyQuestModel
	if err := db.Where("daily_quest_id = ? AND daily_quest_user_id = ?", questID, userID).
		First(&quest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Quest tidak ditemukan")
		}
		return nil, err
	}

	if quest.DailyQuestIsClaimed {
		return nil, fiber.NewError(fiber.StatusConflict, "Quest sudah diklaim")
	}
	if quest.DailyQuestProgress < quest.DailyQuestTarget {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Quest belum selesai")
	}

	res := db.Model(&questModel.DailyQuestModel{}).
		Where("daily_quest_id = ? AND daily_quest_is_claimed = false", questID).
		Update("daily_quest_is_claimed", true)
	if res.Error != nil {
		log.Println("[ERROR] Gagal klaim quest:", res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// request lain menang race klaim
		return nil, fiber.NewError(fiber.StatusConflict, "Quest sudah diklaim")
	}

	// Reward quest lewat jalur langsung, tanpa evaluasi badge berantai
	award, err := xpService.GrantXP(db, userID, quest.DailyQuestXPReward, constants.XPSourceQuest)
	if err != nil {
		return nil, err
	}

	log.Printf("[SUCCESS] Quest %s diklaim user %s (+%d XP)", quest.DailyQuestType, userID, quest.DailyQuestXPReward)
	return award, nil
}

// ListTodayQuests mengambil quest user untuk hari ini (generate dulu kalau belum ada).
func ListTodayQuests(db *gorm.DB, userID uuid.UUID) ([]questModel.DailyQuestModel, error) {
	if err := GenerateDailyQuests(db, userID); err != nil {
		return nil, err
	}

	var quests []questModel.DailyQuestModel
	err := db.Where("daily_quest_user_id = ? AND daily_quest_date = ?", userID, Midnight(time.Now())).
		Order("daily_quest_type ASC").
		Find(&quests).Error
	return quests, err
}
