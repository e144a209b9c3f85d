package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "belajarku_backend/internals/features/users/user/model"
)

// Midnight memangkas timestamp ke tengah malam waktu server.
// Streak dihitung per hari kalender, bukan per 24 jam.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextStreak menghitung nilai streak berikutnya dari tanggal login terakhir.
//   - belum pernah login: 1
//   - terakhir kemarin: current + 1
//   - terakhir hari ini (re-entry): current, tidak berubah
//   - gap >= 2 hari: reset ke 1
func NextStreak(lastLogin *time.Time, current int, now time.Time) int {
	if lastLogin == nil {
		return 1
	}

	today := Midnight(now)
	last := Midnight(*lastLogin)

	switch {
	case last.Equal(today):
		return current
	case last.AddDate(0, 0, 1).Equal(today):
		return current + 1
	default:
		return 1
	}
}

// UpdateLoginStreak dipanggil saat login. Idempotent untuk login berulang
// di hari yang sama. Mengembalikan nilai streak setelah update.
func UpdateLoginStreak(db *gorm.DB, userID uuid.UUID) (int, error) {
	var user userModel.UserModel
	if err := db.Select("id", "user_current_streak", "user_last_login_date").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		log.Println("[ERROR] Gagal ambil user untuk streak:", err)
		return 0, err
	}

	now := time.Now()
	today := Midnight(now)

	// Sudah login hari ini: tidak ada yang berubah
	if user.UserLastLoginDate != nil && Midnight(*user.UserLastLoginDate).Equal(today) {
		return user.UserCurrentStreak, nil
	}

	newStreak := NextStreak(user.UserLastLoginDate, user.UserCurrentStreak, now)

	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"user_current_streak":  newStreak,
			"user_last_login_date": today,
		}).Error; err != nil {
		log.Println("[ERROR] Gagal update streak:", err)
		return 0, err
	}

	log.Printf("[INFO] Streak user %s sekarang %d hari", userID, newStreak)
	return newStreak, nil
}
