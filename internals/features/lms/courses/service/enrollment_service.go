package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/lms/courses/model"
	helper "belajarku_backend/internals/helpers"
)

// EnrollUser membuat enrollment (user, course). Idempotent: kalau sudah
// terdaftar (termasuk kalah race dengan request kembar), enrollment yang
// ada dikembalikan tanpa error.
func EnrollUser(db *gorm.DB, userID, courseID uuid.UUID) (*model.EnrollmentModel, error) {
	var course model.CourseModel
	if err := db.Where("course_id = ? AND course_is_published = true", courseID).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return nil, err
	}

	enrollment := model.EnrollmentModel{
		EnrollmentUserID:   userID,
		EnrollmentCourseID: courseID,
		EnrollmentStatus:   model.EnrollmentStatusInProgress,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			var existing model.EnrollmentModel
			if err := db.Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
				First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		log.Println("[ERROR] Gagal membuat enrollment:", err)
		return nil, err
	}

	log.Printf("[SUCCESS] User %s terdaftar di course %s", userID, courseID)
	return &enrollment, nil
}

// EnrollFree adalah jalur enroll langsung untuk course gratis.
// Course berbayar harus lewat checkout pembayaran.
func EnrollFree(db *gorm.DB, userID, courseID uuid.UUID) (*model.EnrollmentModel, error) {
	var price int
	if err := db.Model(&model.CourseModel{}).
		Select("course_price").
		Where("course_id = ?", courseID).
		Take(&price).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return nil, err
	}
	if price > 0 {
		return nil, fiber.NewError(fiber.StatusPaymentRequired, "Course berbayar, silakan checkout terlebih dahulu")
	}
	return EnrollUser(db, userID, courseID)
}
