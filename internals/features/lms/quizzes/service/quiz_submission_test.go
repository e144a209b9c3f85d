package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	xpModel "belajarku_backend/internals/features/gamification/xp/model"
	"belajarku_backend/internals/features/lms/quizzes/model"
	userModel "belajarku_backend/internals/features/users/user/model"
)

var quizSchema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		user_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		is_active INTEGER NOT NULL DEFAULT 1,
		user_xp INTEGER NOT NULL DEFAULT 0,
		user_level INTEGER NOT NULL DEFAULT 1,
		user_current_streak INTEGER NOT NULL DEFAULT 0,
		user_last_login_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE quizzes (
		quiz_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		quiz_title TEXT NOT NULL,
		quiz_description TEXT,
		quiz_course_id TEXT,
		quiz_max_attempts INTEGER NOT NULL DEFAULT 3,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	)`,
	`CREATE TABLE quiz_questions (
		quiz_question_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		quiz_question_quiz_id TEXT NOT NULL,
		quiz_question_text TEXT NOT NULL,
		quiz_question_options TEXT,
		quiz_question_correct_answer TEXT NOT NULL,
		quiz_question_points INTEGER NOT NULL DEFAULT 10,
		quiz_question_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	)`,
	`CREATE TABLE quiz_attempts (
		quiz_attempt_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		quiz_attempt_quiz_id TEXT NOT NULL,
		quiz_attempt_user_id TEXT NOT NULL,
		quiz_attempt_answers TEXT,
		quiz_attempt_score REAL NOT NULL,
		quiz_attempt_is_passed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	)`,
	`CREATE TABLE user_xp_logs (
		user_xp_log_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_xp_log_user_id TEXT NOT NULL,
		user_xp_log_amount INTEGER NOT NULL,
		user_xp_log_source TEXT NOT NULL,
		created_at DATETIME
	)`,
	`CREATE TABLE badges (
		badge_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		badge_name TEXT NOT NULL,
		badge_description TEXT,
		badge_icon_url TEXT,
		badge_criteria_type TEXT NOT NULL,
		badge_criteria_value TEXT NOT NULL DEFAULT '',
		badge_xp_reward INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE user_badges (
		user_badge_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		user_badge_user_id TEXT NOT NULL,
		user_badge_badge_id TEXT NOT NULL,
		user_badge_earned_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (user_badge_user_id, user_badge_badge_id)
	)`,
	`CREATE TABLE course_sections (
		course_section_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		course_section_course_id TEXT NOT NULL,
		course_section_title TEXT NOT NULL,
		course_section_content TEXT,
		course_section_order INTEGER NOT NULL DEFAULT 0,
		course_section_quiz_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	)`,
	`CREATE TABLE daily_quests (
		daily_quest_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		daily_quest_user_id TEXT NOT NULL,
		daily_quest_date DATETIME NOT NULL,
		daily_quest_type TEXT NOT NULL,
		daily_quest_progress INTEGER NOT NULL DEFAULT 0,
		daily_quest_target INTEGER NOT NULL,
		daily_quest_xp_reward INTEGER NOT NULL,
		daily_quest_is_claimed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (daily_quest_user_id, daily_quest_date, daily_quest_type)
	)`,
}

func newQuizTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("gagal buka sqlite in-memory: %v", err)
	}
	for _, stmt := range quizSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("gagal siapkan skema: %v", err)
		}
	}
	return db
}

// Lulus kedua kali tetap dinilai dan dicatat, tapi XP quiz hanya
// diberikan pada kelulusan pertama.
func TestSubmitQuizSecondPassNoReward(t *testing.T) {
	db := newQuizTestDB(t, "quiz_second_pass")

	userID := uuid.New()
	quizID := uuid.New()
	questionID := uuid.New()

	if err := db.Create(&userModel.UserModel{
		ID: userID, UserName: "andi", Email: "andi@example.com",
		Password: "rahasia-123", UserLevel: 1,
	}).Error; err != nil {
		t.Fatalf("gagal seed user: %v", err)
	}
	if err := db.Create(&model.QuizModel{
		QuizID:          quizID,
		QuizTitle:       "Quiz Dasar",
		QuizMaxAttempts: 3,
	}).Error; err != nil {
		t.Fatalf("gagal seed quiz: %v", err)
	}
	if err := db.Create(&model.QuizQuestionModel{
		QuizQuestionID:            questionID,
		QuizQuestionQuizID:        quizID,
		QuizQuestionText:          "2 + 2 = ?",
		QuizQuestionCorrectAnswer: "4",
		QuizQuestionPoints:        10,
	}).Error; err != nil {
		t.Fatalf("gagal seed soal: %v", err)
	}

	answers := map[string]string{questionID.String(): "4"}

	first, err := SubmitQuiz(db, userID, quizID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz pertama err = %v", err)
	}
	if !first.IsPassed || !first.FirstPass {
		t.Fatalf("submit pertama: IsPassed=%v FirstPass=%v, want keduanya true", first.IsPassed, first.FirstPass)
	}
	if first.XPAwarded != constants.XPQuizPass {
		t.Errorf("XPAwarded pertama = %d, want %d", first.XPAwarded, constants.XPQuizPass)
	}

	second, err := SubmitQuiz(db, userID, quizID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz kedua err = %v", err)
	}
	if !second.IsPassed {
		t.Error("submit kedua dengan jawaban benar tetap lulus")
	}
	if second.FirstPass {
		t.Error("kelulusan kedua tidak boleh dihitung FirstPass")
	}
	if second.XPAwarded != 0 {
		t.Errorf("XPAwarded kedua = %d, want 0", second.XPAwarded)
	}
	if second.AttemptsUsed != 2 {
		t.Errorf("AttemptsUsed = %d, want 2", second.AttemptsUsed)
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("gagal ambil user: %v", err)
	}
	if user.UserXP != constants.XPQuizPass {
		t.Errorf("user_xp = %d, want %d (reward tidak boleh dobel)", user.UserXP, constants.XPQuizPass)
	}

	var logCount int64
	if err := db.Model(&xpModel.UserXPLog{}).
		Where("user_xp_log_user_id = ? AND user_xp_log_source = ?", userID, constants.XPSourceQuiz).
		Count(&logCount).Error; err != nil {
		t.Fatalf("gagal hitung log XP: %v", err)
	}
	if logCount != 1 {
		t.Errorf("jumlah log XP quiz = %d, want 1", logCount)
	}

	var attempts int64
	if err := db.Model(&model.QuizAttemptModel{}).
		Where("quiz_attempt_user_id = ?", userID).
		Count(&attempts).Error; err != nil {
		t.Fatalf("gagal hitung attempt: %v", err)
	}
	if attempts != 2 {
		t.Errorf("jumlah attempt tersimpan = %d, want 2", attempts)
	}
}
