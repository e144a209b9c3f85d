package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/lms/challenges/dto"
	"belajarku_backend/internals/features/lms/challenges/model"
	challengeService "belajarku_backend/internals/features/lms/challenges/service"
	helper "belajarku_backend/internals/helpers"
)

type ChallengeAdminController struct {
	DB *gorm.DB
}

func NewChallengeAdminController(db *gorm.DB) *ChallengeAdminController {
	return &ChallengeAdminController{DB: db}
}

// =============================
// ➕ Create Challenge
// =============================
func (ctrl *ChallengeAdminController) CreateChallenge(c *fiber.Ctx) error {
	var body dto.CreateChallengeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Test case divalidasi saat create supaya submit tidak gagal belakangan
	if _, err := challengeService.ParseTestCases(body.ChallengeTestCases); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Test case tidak valid")
	}

	challenge := model.ChallengeModel{
		ChallengeTitle:         body.ChallengeTitle,
		ChallengeSlug:          body.ChallengeSlug,
		ChallengeDescription:   body.ChallengeDescription,
		ChallengeDifficulty:    body.ChallengeDifficulty,
		ChallengeXPReward:      body.ChallengeXPReward,
		ChallengeTestCases:     body.ChallengeTestCases,
		ChallengeTimeLimitMs:   body.ChallengeTimeLimitMs,
		ChallengeMemoryLimitMB: body.ChallengeMemoryLimitMB,
		ChallengeIsPublished:   body.ChallengeIsPublished,
	}
	if err := ctrl.DB.Create(&challenge).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "Slug challenge sudah dipakai")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat challenge")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Challenge berhasil dibuat", dto.ToChallengeDTO(challenge))
}

// =============================
// ✏️ Update Challenge
// =============================
func (ctrl *ChallengeAdminController) UpdateChallenge(c *fiber.Ctx) error {
	challengeID, err := uuid.Parse(c.Params("challenge_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Challenge ID tidak valid")
	}

	var body dto.CreateChallengeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if _, err := challengeService.ParseTestCases(body.ChallengeTestCases); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Test case tidak valid")
	}

	updates := map[string]interface{}{
		"challenge_title":           body.ChallengeTitle,
		"challenge_slug":            body.ChallengeSlug,
		"challenge_description":     body.ChallengeDescription,
		"challenge_difficulty":      body.ChallengeDifficulty,
		"challenge_xp_reward":       body.ChallengeXPReward,
		"challenge_test_cases":      body.ChallengeTestCases,
		"challenge_time_limit_ms":   body.ChallengeTimeLimitMs,
		"challenge_memory_limit_mb": body.ChallengeMemoryLimitMB,
		"challenge_is_published":    body.ChallengeIsPublished,
	}
	res := ctrl.DB.Model(&model.ChallengeModel{}).
		Where("challenge_id = ?", challengeID).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update challenge")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Challenge tidak ditemukan")
	}

	return helper.Success(c, "Challenge berhasil diupdate", nil)
}

// =============================
// ❌ Delete Challenge
// =============================
func (ctrl *ChallengeAdminController) DeleteChallenge(c *fiber.Ctx) error {
	challengeID, err := uuid.Parse(c.Params("challenge_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Challenge ID tidak valid")
	}

	if err := ctrl.DB.Delete(&model.ChallengeModel{}, "challenge_id = ?", challengeID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus challenge")
	}

	return helper.Success(c, "Challenge berhasil dihapus", nil)
}
