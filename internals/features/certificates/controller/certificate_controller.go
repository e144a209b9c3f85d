package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/certificates/model"
	helper "belajarku_backend/internals/helpers"
)

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// =============================
// 📄 Sertifikat milik user
// =============================
func (ctrl *CertificateController) GetMyCertificates(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var certs []model.CertificateModel
	if err := ctrl.DB.Where("certificate_user_id = ?", userID).
		Order("certificate_issued_at DESC").
		Find(&certs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}

	return helper.Success(c, "Berhasil ambil sertifikat", certs)
}

// =============================
// 🔍 Verifikasi publik by serial
// =============================
func (ctrl *CertificateController) VerifyBySerial(c *fiber.Ctx) error {
	serial := c.Params("*")
	if serial == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Serial wajib diisi")
	}

	var cert model.CertificateModel
	err := ctrl.DB.Where("certificate_serial_number = ?", serial).First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal verifikasi sertifikat")
	}

	return helper.Success(c, "Sertifikat valid", cert)
}
