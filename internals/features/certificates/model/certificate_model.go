package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CertificateTypeCourse    = "COURSE"
	CertificateTypeChallenge = "CHALLENGE"
)

// CertificateModel: bukti penyelesaian dengan serial unik.
// Unique (user, type, reference) menjadikan penerbitan idempotent;
// serial unik global menjaga tidak ada dua sertifikat bernomor sama.
type CertificateModel struct {
	CertificateID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:certificate_id" json:"certificate_id"`
	CertificateSerialNumber string   `gorm:"size:60;unique;not null;column:certificate_serial_number" json:"certificate_serial_number"`
	CertificateUserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_type_ref;column:certificate_user_id" json:"certificate_user_id"`
	CertificateType        string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_type_ref;column:certificate_type" json:"certificate_type"`
	CertificateReferenceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_type_ref;column:certificate_reference_id" json:"certificate_reference_id"`
	CertificateIssuedAt    time.Time `gorm:"not null;default:current_timestamp;column:certificate_issued_at" json:"certificate_issued_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}
