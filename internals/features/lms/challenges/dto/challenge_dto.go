package dto

import (
	"time"

	"gorm.io/datatypes"

	"belajarku_backend/internals/features/lms/challenges/model"
)

// ============================
// Response DTO
// ============================

// ChallengeDTO sengaja tidak memuat test case.
type ChallengeDTO struct {
	ChallengeID          string    `json:"challenge_id"`
	ChallengeTitle       string    `json:"challenge_title"`
	ChallengeSlug        string    `json:"challenge_slug"`
	ChallengeDescription string    `json:"challenge_description"`
	ChallengeDifficulty  string    `json:"challenge_difficulty"`
	ChallengeXPReward    int       `json:"challenge_xp_reward"`
	ChallengeTimeLimitMs int       `json:"challenge_time_limit_ms"`
	CreatedAt            time.Time `json:"created_at"`
}

// ============================
// Request DTO
// ============================
type SubmitChallengeRequest struct {
	Code     string `json:"code" validate:"required"`
	Language string `json:"language" validate:"required,oneof=go python cpp java"`
}

type CreateChallengeRequest struct {
	ChallengeTitle         string         `json:"challenge_title" validate:"required,min=3,max=200"`
	ChallengeSlug          string         `json:"challenge_slug" validate:"required,min=3,max=220"`
	ChallengeDescription   string         `json:"challenge_description"`
	ChallengeDifficulty    string         `json:"challenge_difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
	ChallengeXPReward      int            `json:"challenge_xp_reward" validate:"gte=0"`
	ChallengeTestCases     datatypes.JSON `json:"challenge_test_cases" validate:"required"`
	ChallengeTimeLimitMs   int            `json:"challenge_time_limit_ms" validate:"gt=0"`
	ChallengeMemoryLimitMB int            `json:"challenge_memory_limit_mb" validate:"gt=0"`
	ChallengeIsPublished   bool           `json:"challenge_is_published"`
}

// ============================
// Converter
// ============================
func ToChallengeDTO(m model.ChallengeModel) ChallengeDTO {
	return ChallengeDTO{
		ChallengeID:          m.ChallengeID.String(),
		ChallengeTitle:       m.ChallengeTitle,
		ChallengeSlug:        m.ChallengeSlug,
		ChallengeDescription: m.ChallengeDescription,
		ChallengeDifficulty:  m.ChallengeDifficulty,
		ChallengeXPReward:    m.ChallengeXPReward,
		ChallengeTimeLimitMs: m.ChallengeTimeLimitMs,
		CreatedAt:            m.CreatedAt,
	}
}

func ToChallengeDTOs(models []model.ChallengeModel) []ChallengeDTO {
	out := make([]ChallengeDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToChallengeDTO(m))
	}
	return out
}
