package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// ChallengeModel: soal coding yang dinilai lewat sandbox eksternal.
// Test case disimpan sebagai array JSONB [{input, expected_output}].
type ChallengeModel struct {
	ChallengeID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:challenge_id" json:"challenge_id"`
	ChallengeTitle       string         `gorm:"size:200;not null;column:challenge_title" json:"challenge_title"`
	ChallengeSlug        string         `gorm:"size:220;unique;not null;column:challenge_slug" json:"challenge_slug"`
	ChallengeDescription string         `gorm:"type:text;column:challenge_description" json:"challenge_description"`
	ChallengeDifficulty  string         `gorm:"type:varchar(10);not null;default:'EASY';column:challenge_difficulty" json:"challenge_difficulty"`
	ChallengeXPReward    int            `gorm:"not null;default:0;column:challenge_xp_reward" json:"challenge_xp_reward"`
	ChallengeTestCases   datatypes.JSON `gorm:"type:jsonb;not null;column:challenge_test_cases" json:"-"`
	ChallengeTimeLimitMs int            `gorm:"not null;default:2000;column:challenge_time_limit_ms" json:"challenge_time_limit_ms"`
	ChallengeMemoryLimitMB int          `gorm:"not null;default:128;column:challenge_memory_limit_mb" json:"challenge_memory_limit_mb"`
	ChallengeIsPublished bool           `gorm:"not null;default:false;column:challenge_is_published" json:"challenge_is_published"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ChallengeModel) TableName() string {
	return "challenges"
}
