package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	badgeService "belajarku_backend/internals/features/gamification/badges/service"
	questModel "belajarku_backend/internals/features/gamification/quests/model"
	questService "belajarku_backend/internals/features/gamification/quests/service"
	courseModel "belajarku_backend/internals/features/lms/courses/model"
	progressService "belajarku_backend/internals/features/lms/progress/service"
	"belajarku_backend/internals/features/lms/quizzes/model"
)

// GradeAnswers menilai jawaban terhadap kunci: exact string equality per
// soal, skor = poin diraih / total poin * 100 (0 kalau quiz tanpa poin).
func GradeAnswers(questions []model.QuizQuestionModel, answers map[string]string) (earned, total int, score float64) {
	for _, q := range questions {
		total += q.QuizQuestionPoints
		if answers[q.QuizQuestionID.String()] == q.QuizQuestionCorrectAnswer {
			earned += q.QuizQuestionPoints
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	return earned, total, float64(earned) / float64(total) * 100
}

// QuizSubmissionResult adalah hasil satu submit quiz.
type QuizSubmissionResult struct {
	AttemptID      uuid.UUID `json:"attempt_id"`
	Score          float64   `json:"score"`
	IsPassed       bool      `json:"is_passed"`
	FirstPass      bool      `json:"first_pass"`
	XPAwarded      int       `json:"xp_awarded"`
	AttemptsUsed   int64     `json:"attempts_used"`
	MaxAttempts    int       `json:"max_attempts"`
}

// SubmitQuiz menilai jawaban, menyimpan attempt (lulus maupun tidak),
// dan menjalankan side effect HANYA pada kelulusan pertama user di quiz
// itu: XP + bump quest + tandai section tertaut selesai. Lulus ulang
// tetap dinilai dan dicatat tapi tidak memberi reward lagi.
func SubmitQuiz(db *gorm.DB, userID, quizID uuid.UUID, answers map[string]string) (*QuizSubmissionResult, error) {
	var quiz model.QuizModel
	if err := db.Preload("Questions").Where("quiz_id = ?", quizID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		return nil, err
	}

	// Batas percobaan (0 = tanpa batas)
	var attemptsUsed int64
	if err := db.Model(&model.QuizAttemptModel{}).
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ?", quizID, userID).
		Count(&attemptsUsed).Error; err != nil {
		return nil, err
	}
	if quiz.QuizMaxAttempts > 0 && attemptsUsed >= int64(quiz.QuizMaxAttempts) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Batas percobaan quiz sudah habis")
	}

	_, _, score := GradeAnswers(quiz.Questions, answers)
	isPassed := score >= constants.QuizPassThreshold

	// Kelulusan pertama ditentukan SEBELUM attempt ini disimpan
	var priorPasses int64
	if err := db.Model(&model.QuizAttemptModel{}).
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ? AND quiz_attempt_is_passed = true", quizID, userID).
		Count(&priorPasses).Error; err != nil {
		return nil, err
	}
	firstPass := isPassed && priorPasses == 0

	// Attempt selalu disimpan, lulus maupun tidak
	answersJSON := datatypes.JSONMap{}
	for k, v := range answers {
		answersJSON[k] = v
	}
	attempt := model.QuizAttemptModel{
		QuizAttemptQuizID:   quizID,
		QuizAttemptUserID:   userID,
		QuizAttemptAnswers:  answersJSON,
		QuizAttemptScore:    score,
		QuizAttemptIsPassed: isPassed,
	}
	if err := db.Create(&attempt).Error; err != nil {
		log.Println("[ERROR] Gagal simpan quiz attempt:", err)
		return nil, err
	}

	result := &QuizSubmissionResult{
		AttemptID:    attempt.QuizAttemptID,
		Score:        score,
		IsPassed:     isPassed,
		FirstPass:    firstPass,
		AttemptsUsed: attemptsUsed + 1,
		MaxAttempts:  quiz.QuizMaxAttempts,
	}

	if firstPass {
		if _, err := badgeService.AwardXP(db, userID, constants.XPQuizPass, constants.XPSourceQuiz); err != nil {
			return nil, err
		}
		result.XPAwarded += constants.XPQuizPass

		if err := questService.BumpQuestProgress(db, userID, questModel.QuestPassQuiz, 1); err != nil {
			log.Println("[WARNING] Gagal bump quest quiz:", err)
		}

		// Section yang menautkan quiz ini ikut selesai (kalau user
		// terdaftar di course-nya)
		var section courseModel.CourseSectionModel
		err := db.Where("course_section_quiz_id = ?", quizID).First(&section).Error
		switch {
		case err == nil:
			if _, err := progressService.CompleteSection(db, userID, section.CourseSectionID, &score); err != nil {
				log.Println("[WARNING] Gagal tandai section dari quiz:", err)
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}

		log.Printf("[SUCCESS] User %s lulus quiz %s pertama kali (skor %.1f)", userID, quizID, score)
	}

	return result, nil
}
