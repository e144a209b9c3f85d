package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/constants"
	badgeModel "belajarku_backend/internals/features/gamification/badges/model"
	xpService "belajarku_backend/internals/features/gamification/xp/service"
	helper "belajarku_backend/internals/helpers"
)

// AwardXP adalah jalur publik penambahan XP: tambah saldo lalu evaluasi
// badge XP_EARNED. Reward XP dari badge yang baru didapat memakai
// xpService.GrantXP langsung sehingga tidak ada rekursi evaluasi.
func AwardXP(db *gorm.DB, userID uuid.UUID, amount int, source string) (*xpService.XPAward, error) {
	award, err := xpService.GrantXP(db, userID, amount, source)
	if err != nil || award == nil {
		return award, err
	}

	if _, err := EvaluateBadges(db, userID, BadgeEvent{Type: EventXPEarned}); err != nil {
		// XP sudah masuk; kegagalan evaluasi badge tidak membatalkan award
		log.Println("[WARNING] Evaluasi badge setelah award XP gagal:", err)
	}
	return award, nil
}

// EvaluateBadges memeriksa semua badge kandidat untuk event ini dan
// memberikan yang kriterianya baru terpenuhi. Mengembalikan daftar badge
// yang BARU didapat (kosong kalau tidak ada).
func EvaluateBadges(db *gorm.DB, userID uuid.UUID, event BadgeEvent) ([]badgeModel.BadgeModel, error) {
	// 1. Ambil badge kandidat yang belum dimiliki user
	var candidates []badgeModel.BadgeModel
	err := db.
		Where("badge_criteria_type IN ?", candidateCriteriaTypes(event.Type)).
		Where("badge_id NOT IN (?)", db.Model(&badgeModel.UserBadgeModel{}).
			Select("user_badge_badge_id").
			Where("user_badge_user_id = ?", userID)).
		Find(&candidates).Error
	if err != nil {
		log.Println("[ERROR] Gagal ambil badge kandidat:", err)
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// 2. Snapshot keadaan user sekali untuk semua kandidat
	snap, err := buildSnapshot(db, userID, event)
	if err != nil {
		return nil, err
	}

	// 3. Evaluasi dan award satu per satu
	var awarded []badgeModel.BadgeModel
	for _, b := range candidates {
		crit, err := ParseCriterion(b)
		if err != nil {
			log.Println("[WARNING] Lewati badge dengan kriteria rusak:", err)
			continue
		}
		if !Satisfied(crit, snap) {
			continue
		}

		ownership := badgeModel.UserBadgeModel{
			UserBadgeUserID:  userID,
			UserBadgeBadgeID: b.BadgeID,
		}
		if err := db.Create(&ownership).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				// Race dengan trigger lain: badge sudah diberikan, bukan error
				log.Printf("[INFO] Badge %s sudah dimiliki user %s, lewati", b.BadgeID, userID)
				continue
			}
			log.Println("[ERROR] Gagal simpan user_badge:", err)
			return awarded, err
		}

		// Reward XP badge lewat jalur langsung, tanpa evaluasi badge lagi
		if b.BadgeXPReward > 0 {
			if _, err := xpService.GrantXP(db, userID, b.BadgeXPReward, constants.XPSourceBadge); err != nil {
				log.Println("[ERROR] Gagal grant XP reward badge:", err)
				return awarded, err
			}
		}

		log.Printf("[SUCCESS] Badge %q diberikan ke user %s", b.BadgeName, userID)
		awarded = append(awarded, b)
	}

	return awarded, nil
}

func buildSnapshot(db *gorm.DB, userID uuid.UUID, event BadgeEvent) (Snapshot, error) {
	var totalXP int
	if err := db.Table("users").
		Select("user_xp").
		Where("id = ?", userID).
		Take(&totalXP).Error; err != nil {
		log.Println("[ERROR] Gagal ambil XP user untuk snapshot:", err)
		return Snapshot{}, err
	}

	var passed int64
	if err := db.Table("challenge_submissions").
		Where("challenge_submission_user_id = ? AND challenge_submission_passed = true", userID).
		Distinct("challenge_submission_challenge_id").
		Count(&passed).Error; err != nil {
		log.Println("[ERROR] Gagal hitung challenge lulus:", err)
		return Snapshot{}, err
	}

	return Snapshot{
		TotalXP:          totalXP,
		PassedChallenges: passed,
		Event:            event,
	}, nil
}
