package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipe quest harian yang digenerate tiap hari.
const (
	QuestLogin           = "login"
	QuestCompleteSection = "complete_section"
	QuestPassQuiz        = "pass_quiz"
)

// DailyQuestModel: satu baris per (user, tanggal, tipe quest).
// Unique index menjaga generator tidak membuat dobel untuk hari yang sama.
type DailyQuestModel struct {
	DailyQuestID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:daily_quest_id" json:"daily_quest_id"`
	DailyQuestUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_date_quest;column:daily_quest_user_id" json:"daily_quest_user_id"`
	DailyQuestDate     time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date_quest;column:daily_quest_date" json:"daily_quest_date"`
	DailyQuestType     string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_user_date_quest;column:daily_quest_type" json:"daily_quest_type"`
	DailyQuestProgress int       `gorm:"not null;default:0;column:daily_quest_progress" json:"daily_quest_progress"`
	DailyQuestTarget   int       `gorm:"not null;column:daily_quest_target" json:"daily_quest_target"`
	DailyQuestXPReward int       `gorm:"not null;column:daily_quest_xp_reward" json:"daily_quest_xp_reward"`
	DailyQuestIsClaimed bool     `gorm:"not null;default:false;column:daily_quest_is_claimed" json:"daily_quest_is_claimed"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DailyQuestModel) TableName() string {
	return "daily_quests"
}
