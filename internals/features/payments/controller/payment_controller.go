package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/configs"
	"belajarku_backend/internals/features/payments/model"
	paymentService "belajarku_backend/internals/features/payments/service"
	helper "belajarku_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

type checkoutRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
}

// =============================
// 💳 Checkout course berbayar
// =============================
func (ctrl *PaymentController) CreateCheckout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var body checkoutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	courseID, err := uuid.Parse(body.CourseID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Course ID tidak valid")
	}

	result, err := paymentService.CreateCheckout(ctrl.DB, userID, courseID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Checkout berhasil dibuat. Silakan lanjutkan pembayaran.", result)
}

// =============================
// 📜 Riwayat transaksi saya
// =============================
func (ctrl *PaymentController) GetMyTransactions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var txs []model.TransactionModel
	if err := ctrl.DB.
		Where("transaction_user_id = ?", userID).
		Order("created_at DESC").
		Find(&txs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}

	return helper.Success(c, "Berhasil ambil transaksi", txs)
}

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
}

// =============================
// 🔔 Webhook notifikasi Midtrans (tanpa auth, diverifikasi signature)
// =============================
func (ctrl *PaymentController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body midtransNotification
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}

	log.Println("[INFO] Webhook Midtrans diterima:", body.OrderID, body.TransactionStatus)

	if !paymentService.VerifySignature(body.OrderID, body.StatusCode, body.GrossAmount, configs.MidtransServerKey, body.SignatureKey) {
		log.Println("[WARNING] Signature webhook tidak cocok:", body.OrderID)
		return helper.Error(c, fiber.StatusUnauthorized, "Signature tidak valid")
	}

	if err := paymentService.HandleNotification(ctrl.DB, body.OrderID, body.TransactionStatus, body.FraudStatus); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Notifikasi diproses", nil)
}
