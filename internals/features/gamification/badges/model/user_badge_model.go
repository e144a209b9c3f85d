package model

import (
	"time"

	"github.com/google/uuid"
)

// UserBadgeModel mencatat kepemilikan badge. Unique (user, badge):
// satu badge hanya bisa dimiliki sekali, duplikat ditolak oleh constraint.
type UserBadgeModel struct {
	UserBadgeID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_badge_id" json:"user_badge_id"`
	UserBadgeUserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge;column:user_badge_user_id" json:"user_badge_user_id"`
	UserBadgeBadgeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge;column:user_badge_badge_id" json:"user_badge_badge_id"`
	UserBadgeEarnedAt time.Time `gorm:"not null;default:current_timestamp;column:user_badge_earned_at" json:"user_badge_earned_at"`

	Badge *BadgeModel `gorm:"foreignKey:UserBadgeBadgeID;references:BadgeID" json:"badge,omitempty"`
}

func (UserBadgeModel) TableName() string {
	return "user_badges"
}
