package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certController "belajarku_backend/internals/features/certificates/controller"
)

func CertificatePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := certController.NewCertificateController(db)
	// serial mengandung '/', pakai wildcard
	router.Get("/certificates/verify/*", ctrl.VerifyBySerial)
}

func CertificateUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := certController.NewCertificateController(db)
	router.Get("/certificates", ctrl.GetMyCertificates)
}
