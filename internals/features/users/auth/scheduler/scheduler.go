package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authService "belajarku_backend/internals/features/users/auth/service"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah
// kedaluwarsa setiap 24 jam.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")
			authService.CleanupExpiredTokens(db)
			time.Sleep(24 * time.Hour)
		}
	}()
}
