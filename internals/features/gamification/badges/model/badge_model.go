package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipe kriteria badge. criteria_value menyimpan threshold (angka) atau
// target id (uuid course) tergantung tipenya; parsing ke bentuk bertipe
// ada di service.ParseCriterion.
const (
	CriteriaXPMilestone      = "XP_MILESTONE"
	CriteriaCourseCompletion = "COURSE_COMPLETION"
	CriteriaChallengeCount   = "CHALLENGE_COUNT"
	CriteriaManual           = "MANUAL"
)

type BadgeModel struct {
	BadgeID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:badge_id" json:"badge_id"`
	BadgeName         string    `gorm:"size:100;not null;column:badge_name" json:"badge_name"`
	BadgeDescription  string    `gorm:"type:text;column:badge_description" json:"badge_description"`
	BadgeIconURL      string    `gorm:"type:text;column:badge_icon_url" json:"badge_icon_url"`
	BadgeCriteriaType string    `gorm:"type:varchar(30);not null;column:badge_criteria_type" json:"badge_criteria_type"`
	BadgeCriteriaValue string   `gorm:"type:varchar(100);not null;default:'';column:badge_criteria_value" json:"badge_criteria_value"`
	BadgeXPReward     int       `gorm:"not null;default:0;column:badge_xp_reward" json:"badge_xp_reward"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BadgeModel) TableName() string {
	return "badges"
}
