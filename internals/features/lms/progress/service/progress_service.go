package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	certModel "belajarku_backend/internals/features/certificates/model"
	certService "belajarku_backend/internals/features/certificates/service"
	badgeService "belajarku_backend/internals/features/gamification/badges/service"
	questModel "belajarku_backend/internals/features/gamification/quests/model"
	questService "belajarku_backend/internals/features/gamification/quests/service"
	xpService "belajarku_backend/internals/features/gamification/xp/service"
	"belajarku_backend/internals/constants"
	courseModel "belajarku_backend/internals/features/lms/courses/model"
	"belajarku_backend/internals/features/lms/progress/model"
	helper "belajarku_backend/internals/helpers"
)

// CompletionPercent menghitung persentase course dari jumlah section selesai.
// Course tanpa section didefinisikan 0%, tidak pernah 100%.
func CompletionPercent(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// SectionCompletionResult merangkum efek satu penyelesaian section.
type SectionCompletionResult struct {
	FirstCompletion    bool             `json:"first_completion"`
	ProgressPercentage float64          `json:"progress_percentage"`
	CourseCompleted    bool             `json:"course_completed"`
	XPAwarded          int              `json:"xp_awarded"`
	Certificate        *certModel.CertificateModel `json:"certificate,omitempty"`
}

// CompleteSection menandai section selesai untuk user dan menjalankan
// cascade-nya: bonus XP penyelesaian pertama, hitung ulang persentase,
// update enrollment, lalu saat mencapai 100% bonus course + evaluasi
// badge COURSE_COMPLETE + penerbitan sertifikat. Semua jalur reward
// idempotent terhadap pemanggilan ulang.
func CompleteSection(db *gorm.DB, userID, sectionID uuid.UUID, quizScore *float64) (*SectionCompletionResult, error) {
	// 1. Validasi section + course, dan pastikan user terdaftar
	var section courseModel.CourseSectionModel
	if err := db.Where("course_section_id = ?", sectionID).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Section tidak ditemukan")
		}
		return nil, err
	}
	courseID := section.CourseSectionCourseID

	var enrollment courseModel.EnrollmentModel
	if err := db.Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Anda belum terdaftar di course ini")
		}
		return nil, err
	}

	result := &SectionCompletionResult{}
	now := time.Now()

	// 2. Upsert progress section. Cek dulu: penyelesaian ulang tidak
	//    memberi XP lagi.
	var progress model.UserSectionProgressModel
	err := db.Where("user_section_progress_user_id = ? AND user_section_progress_section_id = ?", userID, sectionID).
		First(&progress).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		progress = model.UserSectionProgressModel{
			UserSectionProgressUserID:      userID,
			UserSectionProgressSectionID:   sectionID,
			UserSectionProgressCourseID:    courseID,
			UserSectionProgressCompleted:   true,
			UserSectionProgressCompletedAt: &now,
			UserSectionProgressQuizScore:   quizScore,
		}
		if createErr := db.Create(&progress).Error; createErr != nil {
			// race dengan request kembar: baris sudah ada, perlakukan
			// seperti penyelesaian ulang
			if !helper.IsDuplicateKey(createErr) {
				return nil, createErr
			}
		} else {
			result.FirstCompletion = true
		}
	case err != nil:
		return nil, err
	default:
		if !progress.UserSectionProgressCompleted {
			updates := map[string]interface{}{
				"user_section_progress_completed":    true,
				"user_section_progress_completed_at": now,
			}
			if quizScore != nil {
				updates["user_section_progress_quiz_score"] = *quizScore
			}
			if err := db.Model(&progress).Updates(updates).Error; err != nil {
				return nil, err
			}
			result.FirstCompletion = true
		}
	}

	// 3. Bonus XP hanya untuk penyelesaian pertama
	if result.FirstCompletion {
		if _, err := badgeService.AwardXP(db, userID, constants.XPSectionComplete, constants.XPSourceSection); err != nil {
			return nil, err
		}
		result.XPAwarded += constants.XPSectionComplete

		if err := questService.BumpQuestProgress(db, userID, questModel.QuestCompleteSection, 1); err != nil {
			log.Println("[WARNING] Gagal bump quest section:", err)
		}
	}

	// 4. Hitung ulang persentase course
	var totalSections, completedSections int64
	if err := db.Model(&courseModel.CourseSectionModel{}).
		Where("course_section_course_id = ?", courseID).
		Count(&totalSections).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.UserSectionProgressModel{}).
		Where("user_section_progress_user_id = ? AND user_section_progress_course_id = ? AND user_section_progress_completed = true",
			userID, courseID).
		Count(&completedSections).Error; err != nil {
		return nil, err
	}
	percent := CompletionPercent(completedSections, totalSections)
	result.ProgressPercentage = percent

	// 5. Update enrollment: persentase dan section terakhir
	if err := db.Model(&courseModel.EnrollmentModel{}).
		Where("enrollment_id = ?", enrollment.EnrollmentID).
		Updates(map[string]interface{}{
			"enrollment_progress_percentage": percent,
			"enrollment_current_section_id":  sectionID,
		}).Error; err != nil {
		return nil, err
	}
	result.CourseCompleted = percent >= 100

	// 6. Transisi selesai-course lewat UPDATE bersyarat, bukan dari field
	//    struct yang dibaca di awal: dua submit section terakhir yang
	//    overlap sama-sama melihat 100%, tapi hanya satu yang mengisi
	//    completed_at. Pola yang sama dipakai untuk flip is_claimed di
	//    ClaimQuest.
	courseJustCompleted := false
	if percent >= 100 {
		won, err := markCourseCompleted(db, enrollment.EnrollmentID, now)
		if err != nil {
			return nil, err
		}
		courseJustCompleted = won
	}

	// 7. Cascade penyelesaian course: hanya pemenang transisi
	if courseJustCompleted {
		if _, err := xpService.GrantXP(db, userID, constants.XPCourseComplete, constants.XPSourceCourse); err != nil {
			return nil, err
		}
		result.XPAwarded += constants.XPCourseComplete

		if _, err := badgeService.EvaluateBadges(db, userID, badgeService.BadgeEvent{
			Type:     badgeService.EventCourseComplete,
			TargetID: courseID,
		}); err != nil {
			log.Println("[WARNING] Evaluasi badge course gagal:", err)
		}

		cert, err := certService.IssueCertificate(db, userID, certModel.CertificateTypeCourse, courseID)
		if err != nil {
			log.Println("[ERROR] Gagal terbitkan sertifikat course:", err)
			return nil, err
		}
		result.Certificate = cert

		log.Printf("[SUCCESS] User %s menyelesaikan course %s", userID, courseID)
	}

	return result, nil
}

// markCourseCompleted mengisi status + completed_at enrollment hanya kalau
// completed_at masih NULL. Mengembalikan true untuk pemanggil yang menang
// transisi; pemanggil lain (termasuk request kembar) dapat false karena
// RowsAffected-nya 0.
func markCourseCompleted(db *gorm.DB, enrollmentID uuid.UUID, now time.Time) (bool, error) {
	res := db.Model(&courseModel.EnrollmentModel{}).
		Where("enrollment_id = ? AND enrollment_completed_at IS NULL", enrollmentID).
		Updates(map[string]interface{}{
			"enrollment_status":       courseModel.EnrollmentStatusCompleted,
			"enrollment_completed_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
