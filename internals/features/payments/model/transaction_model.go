package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TransactionStatusPending = "PENDING"
	TransactionStatusPaid    = "PAID"
	TransactionStatusFailed  = "FAILED"
	TransactionStatusExpired = "EXPIRED"
)

// TransactionModel: satu order pembayaran course lewat Midtrans.
// Order ID dipakai Midtrans sebagai kunci notifikasi, jadi harus unik.
type TransactionModel struct {
	TransactionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:transaction_id" json:"transaction_id"`
	TransactionOrderID  string    `gorm:"size:60;unique;not null;column:transaction_order_id" json:"transaction_order_id"`
	TransactionUserID   uuid.UUID `gorm:"type:uuid;not null;index;column:transaction_user_id" json:"transaction_user_id"`
	TransactionCourseID uuid.UUID `gorm:"type:uuid;not null;index;column:transaction_course_id" json:"transaction_course_id"`
	TransactionAmount   int       `gorm:"not null;column:transaction_amount" json:"transaction_amount"`
	TransactionStatus   string    `gorm:"type:varchar(10);not null;default:'PENDING';column:transaction_status" json:"transaction_status"`
	TransactionSnapToken string   `gorm:"size:120;column:transaction_snap_token" json:"-"`
	TransactionPaidAt   *time.Time `gorm:"column:transaction_paid_at" json:"transaction_paid_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}
