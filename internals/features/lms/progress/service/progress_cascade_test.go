package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	certModel "belajarku_backend/internals/features/certificates/model"
	xpModel "belajarku_backend/internals/features/gamification/xp/model"
	courseModel "belajarku_backend/internals/features/lms/courses/model"
	userModel "belajarku_backend/internals/features/users/user/model"
)

// Skema SQLite minimal untuk menjalankan cascade penyelesaian section.
// Kolom uuid disimpan sebagai TEXT; default gen_random_uuid() Postgres
// diganti hex acak supaya insert tanpa id eksplisit tetap jalan.
var progressSchema = []string{
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
	`CREATE TABLE enrollments (
		enrollment_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		enrollment_user_id TEXT NOT NULL,
		enrollment_course_id TEXT NOT NULL,
		enrollment_progress_percentage REAL NOT NULL DEFAULT 0,
		enrollment_current_section_id TEXT,
		enrollment_status TEXT NOT NULL DEFAULT 'IN_PROGRESS',
		enrollment_completed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (enrollment_user_id, enrollment_course_id)
	)`,
	`CREATE TABLE user_section_progress (
		user_section_progress_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		user_section_progress_user_id TEXT NOT NULL,
		user_section_progress_section_id TEXT NOT NULL,
		user_section_progress_course_id TEXT NOT NULL,
		user_section_progress_completed INTEGER NOT NULL DEFAULT 0,
		user_section_progress_completed_at DATETIME,
		user_section_progress_quiz_score REAL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_section_progress_user_id, user_section_progress_section_id)
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
	`CREATE TABLE certificates (
		certificate_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		certificate_serial_number TEXT NOT NULL UNIQUE,
		certificate_user_id TEXT NOT NULL,
		certificate_type TEXT NOT NULL,
		certificate_reference_id TEXT NOT NULL,
		certificate_issued_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at DATETIME,
		UNIQUE (certificate_user_id, certificate_type, certificate_reference_id)
	)`,
}

func newProgressTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("gagal buka sqlite in-memory: %v", err)
	}
	for _, stmt := range progressSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("gagal siapkan skema: %v", err)
		}
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("gagal seed data: %v", err)
	}
}

// Penyelesaian ulang section terakhir tidak boleh mengulang reward:
// bonus section, bonus course, dan sertifikat masing-masing sekali.
func TestCompleteSectionRepeatGrantsRewardsOnce(t *testing.T) {
	db := newProgressTestDB(t, "progress_repeat")

	userID := uuid.New()
	courseID := uuid.New()
	sectionID := uuid.New()

	mustCreate(t, db, &userModel.UserModel{
		ID: userID, UserName: "budi", Email: "budi@example.com",
		Password: "rahasia-123", UserLevel: 1,
	})
	mustCreate(t, db, &courseModel.CourseSectionModel{
		CourseSectionID:       sectionID,
		CourseSectionCourseID: courseID,
		CourseSectionTitle:    "Pengenalan",
	})
	mustCreate(t, db, &courseModel.EnrollmentModel{
		EnrollmentID:       uuid.New(),
		EnrollmentUserID:   userID,
		EnrollmentCourseID: courseID,
		EnrollmentStatus:   courseModel.EnrollmentStatusInProgress,
	})

	first, err := CompleteSection(db, userID, sectionID, nil)
	if err != nil {
		t.Fatalf("CompleteSection pertama err = %v", err)
	}
	if !first.FirstCompletion {
		t.Error("penyelesaian pertama harus FirstCompletion")
	}
	if !first.CourseCompleted {
		t.Error("satu-satunya section selesai berarti course selesai")
	}
	wantXP := constants.XPSectionComplete + constants.XPCourseComplete
	if first.XPAwarded != wantXP {
		t.Errorf("XPAwarded pertama = %d, want %d", first.XPAwarded, wantXP)
	}
	if first.Certificate == nil {
		t.Fatal("penyelesaian course harus menerbitkan sertifikat")
	}

	second, err := CompleteSection(db, userID, sectionID, nil)
	if err != nil {
		t.Fatalf("CompleteSection kedua err = %v", err)
	}
	if second.FirstCompletion {
		t.Error("penyelesaian ulang tidak boleh dihitung FirstCompletion")
	}
	if second.XPAwarded != 0 {
		t.Errorf("penyelesaian ulang memberi XP %d, want 0", second.XPAwarded)
	}
	if second.Certificate != nil {
		t.Error("penyelesaian ulang tidak boleh menerbitkan sertifikat lagi")
	}
	if !second.CourseCompleted {
		t.Error("course yang sudah selesai tetap dilaporkan selesai")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("gagal ambil user: %v", err)
	}
	if user.UserXP != wantXP {
		t.Errorf("user_xp = %d, want %d (reward tidak boleh dobel)", user.UserXP, wantXP)
	}

	var logCount int64
	if err := db.Model(&xpModel.UserXPLog{}).
		Where("user_xp_log_user_id = ?", userID).
		Count(&logCount).Error; err != nil {
		t.Fatalf("gagal hitung log XP: %v", err)
	}
	if logCount != 2 {
		t.Errorf("jumlah log XP = %d, want 2 (section + course)", logCount)
	}

	var certCount int64
	if err := db.Model(&certModel.CertificateModel{}).
		Where("certificate_user_id = ?", userID).
		Count(&certCount).Error; err != nil {
		t.Fatalf("gagal hitung sertifikat: %v", err)
	}
	if certCount != 1 {
		t.Errorf("jumlah sertifikat = %d, want 1", certCount)
	}

	var enrollment courseModel.EnrollmentModel
	if err := db.First(&enrollment, "enrollment_user_id = ?", userID).Error; err != nil {
		t.Fatalf("gagal ambil enrollment: %v", err)
	}
	if enrollment.EnrollmentStatus != courseModel.EnrollmentStatusCompleted {
		t.Errorf("status enrollment = %q, want %q", enrollment.EnrollmentStatus, courseModel.EnrollmentStatusCompleted)
	}
	if enrollment.EnrollmentCompletedAt == nil {
		t.Error("completed_at enrollment harus terisi")
	}
}

// Dua request yang sama-sama membaca enrollment sebelum completed_at
// terisi hanya boleh memenangkan transisi sekali; pihak kedua mendapat
// false dari guard UPDATE bersyarat, bukan cascade kedua.
func TestMarkCourseCompletedSingleWinner(t *testing.T) {
	db := newProgressTestDB(t, "progress_winner")

	enrollmentID := uuid.New()
	mustCreate(t, db, &courseModel.EnrollmentModel{
		EnrollmentID:       enrollmentID,
		EnrollmentUserID:   uuid.New(),
		EnrollmentCourseID: uuid.New(),
		EnrollmentStatus:   courseModel.EnrollmentStatusInProgress,
	})

	now := time.Now()

	won, err := markCourseCompleted(db, enrollmentID, now)
	if err != nil {
		t.Fatalf("markCourseCompleted pertama err = %v", err)
	}
	if !won {
		t.Fatal("pemanggil pertama harus memenangkan transisi")
	}

	again, err := markCourseCompleted(db, enrollmentID, now)
	if err != nil {
		t.Fatalf("markCourseCompleted kedua err = %v", err)
	}
	if again {
		t.Fatal("transisi selesai-course tidak boleh dimenangkan dua kali")
	}
}
