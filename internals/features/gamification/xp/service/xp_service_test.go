package service

import (
	"testing"

	"github.com/google/uuid"
)

// amount <= 0 harus no-op sebelum menyentuh database sama sekali,
// karena itu aman dipanggil dengan db nil di test ini.
func TestGrantXPNonPositiveAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount int
	}{
		{name: "zero amount", amount: 0},
		{name: "negative amount", amount: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			award, err := GrantXP(nil, uuid.New(), tt.amount, "test")
			if err != nil {
				t.Fatalf("GrantXP err = %v, want nil", err)
			}
			if award != nil {
				t.Fatalf("GrantXP award = %+v, want nil (no-op)", award)
			}
		})
	}
}
