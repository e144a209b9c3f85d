package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "belajarku_backend/internals/features/payments/route"
)

// WebhookRoutes = endpoint yang dipanggil layanan eksternal, tanpa auth.
func WebhookRoutes(router fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentWebhookRoutes(router, db)
}
