package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/configs"
	"belajarku_backend/internals/features/lms/challenges/dto"
	"belajarku_backend/internals/features/lms/challenges/model"
	challengeService "belajarku_backend/internals/features/lms/challenges/service"
	helper "belajarku_backend/internals/helpers"
)

var validate = validator.New()

type ChallengeUserController struct {
	DB     *gorm.DB
	Runner challengeService.Runner
}

func NewChallengeUserController(db *gorm.DB) *ChallengeUserController {
	return &ChallengeUserController{
		DB: db,
		Runner: challengeService.NewSandboxClient(
			configs.GetEnv("SANDBOX_API_URL", "http://localhost:5050"),
			30,
		),
	}
}

// =============================
// 📄 Daftar challenge terpublikasi
// =============================
func (ctrl *ChallengeUserController) GetAllChallenges(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.ChallengeModel{}).Where("challenge_is_published = true")
	if difficulty := c.Query("difficulty"); difficulty != "" {
		q = q.Where("challenge_difficulty = ?", difficulty)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung challenge")
	}

	var challenges []model.ChallengeModel
	if err := q.Order("created_at " + p.SortOrder).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&challenges).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil challenge")
	}

	return helper.Success(c, "Berhasil ambil challenge", fiber.Map{
		"challenges": dto.ToChallengeDTOs(challenges),
		"meta":       helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Detail challenge by slug
// =============================
func (ctrl *ChallengeUserController) GetChallengeBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var challenge model.ChallengeModel
	err := ctrl.DB.Where("challenge_slug = ? AND challenge_is_published = true", slug).
		First(&challenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Challenge tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil challenge")
	}

	return helper.Success(c, "Berhasil ambil challenge", dto.ToChallengeDTO(challenge))
}

// =============================
// 🚀 Submit kode
// =============================
func (ctrl *ChallengeUserController) SubmitChallenge(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	challengeID, err := uuid.Parse(c.Params("challenge_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Challenge ID tidak valid")
	}

	var body dto.SubmitChallengeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := challengeService.SubmitChallenge(ctrl.DB, ctrl.Runner, userID, challengeID, body.Code, body.Language)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Submission dinilai", result)
}

// =============================
// 📜 Riwayat submission saya
// =============================
func (ctrl *ChallengeUserController) GetMySubmissions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	challengeID, err := uuid.Parse(c.Params("challenge_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Challenge ID tidak valid")
	}

	var submissions []model.ChallengeSubmissionModel
	if err := ctrl.DB.
		Where("challenge_submission_user_id = ? AND challenge_submission_challenge_id = ?", userID, challengeID).
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}

	return helper.Success(c, "Berhasil ambil submission", submissions)
}
