package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "belajarku_backend/internals/features/lms/courses/model"
	courseService "belajarku_backend/internals/features/lms/courses/service"
	"belajarku_backend/internals/features/payments/model"
	userModel "belajarku_backend/internals/features/users/user/model"
)

// CheckoutResult dikirim balik ke client untuk membuka Snap.
type CheckoutResult struct {
	OrderID   string `json:"order_id"`
	SnapToken string `json:"snap_token"`
	Amount    int    `json:"amount"`
}

// CreateCheckout membuat transaksi PENDING + snap token untuk course
// berbayar. Course gratis ditolak di sini, enrollnya lewat endpoint
// enroll biasa.
func CreateCheckout(db *gorm.DB, userID, courseID uuid.UUID) (*CheckoutResult, error) {
	var course courseModel.CourseModel
	if err := db.Where("course_id = ? AND course_is_published = true", courseID).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Course tidak ditemukan")
		}
		return nil, err
	}
	if course.CoursePrice <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Course gratis tidak perlu pembayaran")
	}

	// Sudah terdaftar, tidak perlu bayar lagi
	var enrolled int64
	if err := db.Model(&courseModel.EnrollmentModel{}).
		Where("enrollment_user_id = ? AND enrollment_course_id = ?", userID, courseID).
		Count(&enrolled).Error; err != nil {
		return nil, err
	}
	if enrolled > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Sudah terdaftar di course ini")
	}

	var user userModel.UserModel
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	tx := model.TransactionModel{
		TransactionOrderID:  fmt.Sprintf("COURSE-%d", time.Now().UnixNano()),
		TransactionUserID:   userID,
		TransactionCourseID: courseID,
		TransactionAmount:   course.CoursePrice,
		TransactionStatus:   model.TransactionStatusPending,
	}
	if err := db.Create(&tx).Error; err != nil {
		return nil, err
	}

	token, err := GenerateSnapToken(tx, course.CourseTitle, user.UserName, user.Email)
	if err != nil {
		log.Println("[ERROR] Gagal buat snap token:", err)
		return nil, fiber.NewError(fiber.StatusBadGateway, "Gagal membuat token pembayaran")
	}

	if err := db.Model(&model.TransactionModel{}).
		Where("transaction_id = ?", tx.TransactionID).
		Update("transaction_snap_token", token).Error; err != nil {
		return nil, err
	}

	return &CheckoutResult{
		OrderID:   tx.TransactionOrderID,
		SnapToken: token,
		Amount:    tx.TransactionAmount,
	}, nil
}

// VerifySignature mencocokkan signature_key notifikasi Midtrans:
// sha512(order_id + status_code + gross_amount + serverKey).
func VerifySignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signature
}

// MapTransactionStatus menerjemahkan transaction_status Midtrans ke
// status internal. Status yang tidak dikenal dibiarkan PENDING.
func MapTransactionStatus(midtransStatus, fraudStatus string) string {
	switch midtransStatus {
	case "capture":
		if fraudStatus == "accept" || fraudStatus == "" {
			return model.TransactionStatusPaid
		}
		return model.TransactionStatusPending
	case "settlement":
		return model.TransactionStatusPaid
	case "deny", "cancel", "failure":
		return model.TransactionStatusFailed
	case "expire":
		return model.TransactionStatusExpired
	default:
		return model.TransactionStatusPending
	}
}

// HandleNotification memproses webhook Midtrans: update status transaksi
// dan, saat transaksi jadi PAID untuk pertama kali, daftarkan user ke
// course-nya. Notifikasi ulang untuk transaksi yang sudah PAID aman
// karena enroll bersifat idempotent.
func HandleNotification(db *gorm.DB, orderID, midtransStatus, fraudStatus string) error {
	var tx model.TransactionModel
	if err := db.Where("transaction_order_id = ?", orderID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return err
	}

	newStatus := MapTransactionStatus(midtransStatus, fraudStatus)
	if newStatus == tx.TransactionStatus {
		return nil
	}

	updates := map[string]interface{}{"transaction_status": newStatus}
	if newStatus == model.TransactionStatusPaid {
		now := time.Now()
		updates["transaction_paid_at"] = &now
	}
	if err := db.Model(&model.TransactionModel{}).
		Where("transaction_id = ?", tx.TransactionID).
		Updates(updates).Error; err != nil {
		return err
	}

	if newStatus == model.TransactionStatusPaid {
		if _, err := courseService.EnrollUser(db, tx.TransactionUserID, tx.TransactionCourseID); err != nil {
			log.Println("[ERROR] Gagal enroll setelah pembayaran:", orderID, err)
			return err
		}
		log.Printf("[SUCCESS] Transaksi %s PAID, user %s terdaftar di course %s", orderID, tx.TransactionUserID, tx.TransactionCourseID)
	}

	return nil
}
