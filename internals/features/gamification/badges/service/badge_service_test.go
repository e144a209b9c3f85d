package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	badgeModel "belajarku_backend/internals/features/gamification/badges/model"
	xpModel "belajarku_backend/internals/features/gamification/xp/model"
	userModel "belajarku_backend/internals/features/users/user/model"
	helper "belajarku_backend/internals/helpers"
)

var badgeSchema = []string{
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
	`CREATE TABLE user_xp_logs (
		user_xp_log_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_xp_log_user_id TEXT NOT NULL,
		user_xp_log_amount INTEGER NOT NULL,
		user_xp_log_source TEXT NOT NULL,
		created_at DATETIME
	)`,
	`CREATE TABLE challenge_submissions (
		challenge_submission_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		challenge_submission_user_id TEXT NOT NULL,
		challenge_submission_challenge_id TEXT NOT NULL,
		challenge_submission_code TEXT NOT NULL,
		challenge_submission_language TEXT NOT NULL,
		challenge_submission_passed INTEGER NOT NULL DEFAULT 0,
		challenge_submission_passed_cases INTEGER NOT NULL DEFAULT 0,
		challenge_submission_total_cases INTEGER NOT NULL DEFAULT 0,
		challenge_submission_detail TEXT,
		created_at DATETIME
	)`,
}

func newBadgeTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("gagal buka sqlite in-memory: %v", err)
	}
	for _, stmt := range badgeSchema {
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

// Badge XP_MILESTONE yang sudah terpenuhi diberikan sekali; evaluasi
// berikutnya tidak mengulang badge maupun reward XP-nya.
func TestEvaluateBadgesAwardsOnce(t *testing.T) {
	db := newBadgeTestDB(t, "badge_award_once")

	userID := uuid.New()
	badgeID := uuid.New()

	mustCreate(t, db, &userModel.UserModel{
		ID: userID, UserName: "sari", Email: "sari@example.com",
		Password: "rahasia-123", UserXP: 150, UserLevel: 1,
	})
	mustCreate(t, db, &badgeModel.BadgeModel{
		BadgeID:            badgeID,
		BadgeName:          "Kolektor XP",
		BadgeCriteriaType:  badgeModel.CriteriaXPMilestone,
		BadgeCriteriaValue: "100",
		BadgeXPReward:      25,
	})

	awarded, err := EvaluateBadges(db, userID, BadgeEvent{Type: EventXPEarned})
	if err != nil {
		t.Fatalf("EvaluateBadges pertama err = %v", err)
	}
	if len(awarded) != 1 || awarded[0].BadgeID != badgeID {
		t.Fatalf("evaluasi pertama memberikan %d badge, want 1 (Kolektor XP)", len(awarded))
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("gagal ambil user: %v", err)
	}
	if user.UserXP != 175 {
		t.Errorf("user_xp setelah reward badge = %d, want 175", user.UserXP)
	}

	again, err := EvaluateBadges(db, userID, BadgeEvent{Type: EventXPEarned})
	if err != nil {
		t.Fatalf("EvaluateBadges kedua err = %v", err)
	}
	if len(again) != 0 {
		t.Errorf("evaluasi ulang memberikan %d badge, want 0", len(again))
	}

	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		t.Fatalf("gagal ambil user: %v", err)
	}
	if user.UserXP != 175 {
		t.Errorf("user_xp setelah evaluasi ulang = %d, want 175 (reward tidak boleh dobel)", user.UserXP)
	}

	var ownedCount int64
	if err := db.Model(&badgeModel.UserBadgeModel{}).
		Where("user_badge_user_id = ?", userID).
		Count(&ownedCount).Error; err != nil {
		t.Fatalf("gagal hitung user_badges: %v", err)
	}
	if ownedCount != 1 {
		t.Errorf("jumlah user_badges = %d, want 1", ownedCount)
	}

	var rewardLogs int64
	if err := db.Model(&xpModel.UserXPLog{}).
		Where("user_xp_log_user_id = ? AND user_xp_log_source = ?", userID, constants.XPSourceBadge).
		Count(&rewardLogs).Error; err != nil {
		t.Fatalf("gagal hitung log XP: %v", err)
	}
	if rewardLogs != 1 {
		t.Errorf("jumlah log reward badge = %d, want 1", rewardLogs)
	}
}

// Unique index (user, badge) adalah jaring pengaman race pemberian badge:
// insert kedua harus terdeteksi sebagai duplikat oleh helper.
func TestUserBadgeDuplicateDetected(t *testing.T) {
	db := newBadgeTestDB(t, "badge_duplicate")

	userID := uuid.New()
	badgeID := uuid.New()

	mustCreate(t, db, &badgeModel.UserBadgeModel{
		UserBadgeID:      uuid.New(),
		UserBadgeUserID:  userID,
		UserBadgeBadgeID: badgeID,
	})

	err := db.Create(&badgeModel.UserBadgeModel{
		UserBadgeID:      uuid.New(),
		UserBadgeUserID:  userID,
		UserBadgeBadgeID: badgeID,
	}).Error
	if err == nil {
		t.Fatal("insert user_badge kedua harus melanggar unique index")
	}
	if !helper.IsDuplicateKey(err) {
		t.Errorf("pelanggaran unique index tidak dikenali sebagai duplikat: %v", err)
	}
}
