package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/features/certificates/model"
	helper "belajarku_backend/internals/helpers"
)

const serialMaxRetry = 5

var certTypeCodes = map[string]string{
	model.CertificateTypeCourse:    "C",
	model.CertificateTypeChallenge: "CH",
}

// GenerateSerialNumber membentuk serial CERT/<tahun>/<kode tipe>/<8 hex>.
func GenerateSerialNumber(certType string, now time.Time) (string, error) {
	code, ok := certTypeCodes[certType]
	if !ok {
		return "", fmt.Errorf("tipe sertifikat tidak dikenal: %q", certType)
	}

	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("CERT/%d/%s/%s", now.Year(), code, hex.EncodeToString(buf)), nil
}

// IssueCertificate menerbitkan sertifikat untuk (user, tipe, referensi).
// Idempotent: kalau sudah ada, sertifikat lama dikembalikan apa adanya
// (serial tidak berubah). Tabrakan serial di-retry; tabrakan triple unik
// (race dua penerbitan bersamaan) diselesaikan dengan mengambil baris
// yang menang.
func IssueCertificate(db *gorm.DB, userID uuid.UUID, certType string, referenceID uuid.UUID) (*model.CertificateModel, error) {
	var existing model.CertificateModel
	err := db.Where(
		"certificate_user_id = ? AND certificate_type = ? AND certificate_reference_id = ?",
		userID, certType, referenceID,
	).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	for attempt := 0; attempt < serialMaxRetry; attempt++ {
		serial, err := GenerateSerialNumber(certType, now)
		if err != nil {
			return nil, err
		}

		cert := model.CertificateModel{
			CertificateSerialNumber: serial,
			CertificateUserID:       userID,
			CertificateType:         certType,
			CertificateReferenceID:  referenceID,
			CertificateIssuedAt:     now,
		}
		err = db.Create(&cert).Error
		if err == nil {
			log.Printf("[SUCCESS] Sertifikat %s diterbitkan untuk user %s", serial, userID)
			return &cert, nil
		}
		if !helper.IsDuplicateKey(err) {
			log.Println("[ERROR] Gagal menerbitkan sertifikat:", err)
			return nil, err
		}

		// Duplikat bisa dari serial ATAU dari triple (user, type, ref).
		// Kalau triple-nya yang bentrok berarti request lain sudah
		// menerbitkan: ambil dan kembalikan miliknya.
		var raced model.CertificateModel
		if lookupErr := db.Where(
			"certificate_user_id = ? AND certificate_type = ? AND certificate_reference_id = ?",
			userID, certType, referenceID,
		).First(&raced).Error; lookupErr == nil {
			return &raced, nil
		}
		log.Printf("[WARNING] Serial %s bentrok, generate ulang (%d/%d)", serial, attempt+1, serialMaxRetry)
	}

	return nil, fmt.Errorf("gagal generate serial unik setelah %d percobaan", serialMaxRetry)
}
