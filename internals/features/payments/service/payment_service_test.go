package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"belajarku_backend/internals/features/payments/model"
)

func TestMapTransactionStatus(t *testing.T) {
	tests := []struct {
		name           string
		midtransStatus string
		fraudStatus    string
		want           string
	}{
		{"settlement jadi PAID", "settlement", "", model.TransactionStatusPaid},
		{"capture accept jadi PAID", "capture", "accept", model.TransactionStatusPaid},
		{"capture tanpa fraud status jadi PAID", "capture", "", model.TransactionStatusPaid},
		{"capture challenge tetap PENDING", "capture", "challenge", model.TransactionStatusPending},
		{"deny jadi FAILED", "deny", "", model.TransactionStatusFailed},
		{"cancel jadi FAILED", "cancel", "", model.TransactionStatusFailed},
		{"expire jadi EXPIRED", "expire", "", model.TransactionStatusExpired},
		{"pending tetap PENDING", "pending", "", model.TransactionStatusPending},
		{"status tidak dikenal tetap PENDING", "refund", "", model.TransactionStatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapTransactionStatus(tt.midtransStatus, tt.fraudStatus); got != tt.want {
				t.Errorf("MapTransactionStatus(%q, %q) = %q, want %q", tt.midtransStatus, tt.fraudStatus, got, tt.want)
			}
		})
	}
}

func TestVerifySignature(t *testing.T) {
	orderID := "COURSE-123"
	statusCode := "200"
	grossAmount := "150000.00"
	serverKey := "SB-Mid-server-abc"

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	valid := hex.EncodeToString(sum[:])

	if !VerifySignature(orderID, statusCode, grossAmount, serverKey, valid) {
		t.Error("signature valid ditolak")
	}
	if VerifySignature(orderID, statusCode, grossAmount, serverKey, "deadbeef") {
		t.Error("signature palsu diterima")
	}
	if VerifySignature("COURSE-999", statusCode, grossAmount, serverKey, valid) {
		t.Error("signature order lain diterima")
	}
}
