package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	levelingService "belajarku_backend/internals/features/gamification/leveling/service"
	xpModel "belajarku_backend/internals/features/gamification/xp/model"
	userModel "belajarku_backend/internals/features/users/user/model"
)

// XPAward adalah hasil satu operasi penambahan XP.
type XPAward struct {
	UserID    uuid.UUID `json:"user_id"`
	Amount    int       `json:"amount"`
	TotalXP   int       `json:"total_xp"`
	Level     int       `json:"level"`
	LeveledUp bool      `json:"leveled_up"`
}

// GrantXP menambahkan XP ke user secara langsung TANPA pengecekan badge.
// Ini jalur internal non-rekursif: reward badge dan klaim quest memakai ini
// supaya tidak memicu evaluasi badge berantai. Jalur publik ada di
// badges/service.AwardXP.
//
// amount <= 0 adalah no-op dan mengembalikan (nil, nil).
func GrantXP(db *gorm.DB, userID uuid.UUID, amount int, source string) (*XPAward, error) {
	if amount <= 0 {
		return nil, nil
	}

	// 1. Catat log XP
	logEntry := xpModel.UserXPLog{
		UserXPLogUserID: userID,
		UserXPLogAmount: amount,
		UserXPLogSource: source,
	}
	if err := db.Create(&logEntry).Error; err != nil {
		log.Println("[ERROR] Gagal insert user_xp_log:", err)
		return nil, err
	}

	// 2. Increment relatif, bukan read-modify-write, supaya aman dari lost update
	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("user_xp", gorm.Expr("user_xp + ?", amount)).Error; err != nil {
		log.Println("[ERROR] Gagal update user_xp:", err)
		return nil, err
	}

	// 3. Ambil saldo terbaru lalu hitung ulang level
	var user userModel.UserModel
	if err := db.Select("id", "user_xp", "user_level").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		log.Println("[ERROR] Gagal ambil user setelah update XP:", err)
		return nil, err
	}

	newLevel := levelingService.LevelForXP(user.UserXP)
	leveledUp := newLevel > user.UserLevel

	if newLevel != user.UserLevel {
		if err := db.Model(&userModel.UserModel{}).
			Where("id = ?", userID).
			Update("user_level", newLevel).Error; err != nil {
			log.Println("[ERROR] Gagal update user_level:", err)
			return nil, err
		}
	}
	if leveledUp {
		log.Printf("[LEVEL-UP] User %s naik ke level %d", userID.String(), newLevel)
	}

	return &XPAward{
		UserID:    userID,
		Amount:    amount,
		TotalXP:   user.UserXP,
		Level:     newLevel,
		LeveledUp: leveledUp,
	}, nil
}
