package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	badgeService "belajarku_backend/internals/features/gamification/badges/service"
	certModel "belajarku_backend/internals/features/certificates/model"
	certService "belajarku_backend/internals/features/certificates/service"
	"belajarku_backend/internals/features/lms/challenges/model"
)

// TestCase adalah satu pasangan input/output di kolom JSONB challenge.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// NormalizeOutput menyamakan output sebelum dibandingkan: CRLF jadi LF,
// trailing whitespace per baris dibuang, begitu juga newline penutup.
func NormalizeOutput(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// OutputMatches membandingkan stdout sandbox dengan output yang
// diharapkan setelah keduanya dinormalisasi.
func OutputMatches(expected, actual string) bool {
	return NormalizeOutput(expected) == NormalizeOutput(actual)
}

// ParseTestCases membaca array test case dari kolom JSONB.
func ParseTestCases(raw []byte) ([]TestCase, error) {
	var cases []TestCase
	if err := sonic.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("test case tidak valid: %w", err)
	}
	if len(cases) == 0 {
		return nil, errors.New("challenge tidak punya test case")
	}
	return cases, nil
}

// ChallengeSubmissionResult adalah hasil satu submit challenge.
type ChallengeSubmissionResult struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	Passed       bool      `json:"passed"`
	FirstPass    bool      `json:"first_pass"`
	PassedCases  int       `json:"passed_cases"`
	TotalCases   int       `json:"total_cases"`
	Detail       string    `json:"detail,omitempty"`
	XPAwarded    int       `json:"xp_awarded"`
}

var allowedLanguages = map[string]bool{
	"go":     true,
	"python": true,
	"cpp":    true,
	"java":   true,
}

// SubmitChallenge menjalankan kode di sandbox terhadap semua test case,
// menyimpan submission (lulus maupun tidak), dan memberi reward HANYA
// pada kelulusan pertama user di challenge itu: XP sesuai baris
// challenge, evaluasi badge CHALLENGE_COMPLETE, dan sertifikat.
func SubmitChallenge(db *gorm.DB, runner Runner, userID, challengeID uuid.UUID, code, language string) (*ChallengeSubmissionResult, error) {
	if !allowedLanguages[language] {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Bahasa tidak didukung: "+language)
	}
	if strings.TrimSpace(code) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Kode tidak boleh kosong")
	}

	var challenge model.ChallengeModel
	if err := db.Where("challenge_id = ? AND challenge_is_published = true", challengeID).
		First(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Challenge tidak ditemukan")
		}
		return nil, err
	}

	cases, err := ParseTestCases(challenge.ChallengeTestCases)
	if err != nil {
		log.Println("[ERROR] Test case challenge rusak:", challenge.ChallengeID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Challenge tidak bisa dinilai")
	}

	passedCases := 0
	detail := ""
	for i, tc := range cases {
		run, err := runner.Run(RunRequest{
			Code:          code,
			Language:      language,
			Stdin:         tc.Input,
			TimeLimitMs:   challenge.ChallengeTimeLimitMs,
			MemoryLimitMB: challenge.ChallengeMemoryLimitMB,
		})
		if err != nil {
			log.Println("[ERROR] Sandbox tidak bisa dihubungi:", err)
			return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Layanan penilaian sedang tidak tersedia")
		}
		if run.Status != RunStatusOK {
			detail = fmt.Sprintf("test case %d: %s", i+1, run.Status)
			break
		}
		if !OutputMatches(tc.ExpectedOutput, run.Stdout) {
			detail = fmt.Sprintf("test case %d: output tidak sesuai", i+1)
			break
		}
		passedCases++
	}
	passed := passedCases == len(cases)

	// Kelulusan pertama ditentukan SEBELUM submission ini disimpan
	var priorPasses int64
	if err := db.Model(&model.ChallengeSubmissionModel{}).
		Where("challenge_submission_user_id = ? AND challenge_submission_challenge_id = ? AND challenge_submission_passed = true", userID, challengeID).
		Count(&priorPasses).Error; err != nil {
		return nil, err
	}
	firstPass := passed && priorPasses == 0

	submission := model.ChallengeSubmissionModel{
		ChallengeSubmissionUserID:      userID,
		ChallengeSubmissionChallengeID: challengeID,
		ChallengeSubmissionCode:        code,
		ChallengeSubmissionLanguage:    language,
		ChallengeSubmissionPassed:      passed,
		ChallengeSubmissionPassedCases: passedCases,
		ChallengeSubmissionTotalCases:  len(cases),
		ChallengeSubmissionDetail:      detail,
	}
	if err := db.Create(&submission).Error; err != nil {
		log.Println("[ERROR] Gagal simpan challenge submission:", err)
		return nil, err
	}

	result := &ChallengeSubmissionResult{
		SubmissionID: submission.ChallengeSubmissionID,
		Passed:       passed,
		FirstPass:    firstPass,
		PassedCases:  passedCases,
		TotalCases:   len(cases),
		Detail:       detail,
	}

	if firstPass {
		if challenge.ChallengeXPReward > 0 {
			if _, err := badgeService.AwardXP(db, userID, challenge.ChallengeXPReward, constants.XPSourceChallenge); err != nil {
				return nil, err
			}
			result.XPAwarded = challenge.ChallengeXPReward
		}

		if _, err := badgeService.EvaluateBadges(db, userID, badgeService.BadgeEvent{
			Type:     badgeService.EventChallengeComplete,
			TargetID: challengeID,
		}); err != nil {
			log.Println("[WARNING] Evaluasi badge challenge gagal:", err)
		}

		if _, err := certService.IssueCertificate(db, userID, certModel.CertificateTypeChallenge, challengeID); err != nil {
			log.Println("[WARNING] Gagal terbitkan sertifikat challenge:", err)
		}

		log.Printf("[SUCCESS] User %s lulus challenge %s pertama kali (%d/%d case)", userID, challengeID, passedCases, len(cases))
	}

	return result, nil
}
