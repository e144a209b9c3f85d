package model

import (
	"time"

	"github.com/google/uuid"
)

// UserXPLog adalah audit trail penambahan XP. Kolom source diisi label
// sumber (section_complete, quiz_pass, badge_reward, ...) untuk pelacakan.
type UserXPLog struct {
	UserXPLogID     uint      `gorm:"column:user_xp_log_id;primaryKey" json:"user_xp_log_id"`
	UserXPLogUserID uuid.UUID `gorm:"column:user_xp_log_user_id;type:uuid;not null;index" json:"user_xp_log_user_id"`
	UserXPLogAmount int       `gorm:"column:user_xp_log_amount;not null" json:"user_xp_log_amount"`
	UserXPLogSource string    `gorm:"column:user_xp_log_source;type:varchar(50);not null" json:"user_xp_log_source"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserXPLog) TableName() string {
	return "user_xp_logs"
}
