package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "belajarku_backend/internals/features/payments/controller"
)

// PaymentUserRoutes = checkout + riwayat transaksi, butuh login
func PaymentUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payment := router.Group("/payments")
	payment.Post("/checkout", ctrl.CreateCheckout)
	payment.Get("/transactions", ctrl.GetMyTransactions)
}

// PaymentWebhookRoutes = endpoint notifikasi Midtrans, tanpa auth.
// Path ini masuk skipPaths di auth middleware.
func PaymentWebhookRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	router.Post("/payments/notification", ctrl.HandleMidtransNotification)
}
