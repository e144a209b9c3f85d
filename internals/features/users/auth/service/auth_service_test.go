package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"belajarku_backend/internals/configs"
	userModel "belajarku_backend/internals/features/users/user/model"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "rahasia123" {
		t.Error("password tersimpan plaintext")
	}
	if !CheckPassword(hash, "rahasia123") {
		t.Error("password benar ditolak")
	}
	if CheckPassword(hash, "salah") {
		t.Error("password salah diterima")
	}
}

func TestGenerateToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	user := userModel.UserModel{
		ID:       uuid.New(),
		UserName: "budi",
		Role:     "user",
	}

	tokenString, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("token tidak bisa diparse: %v", err)
	}

	if claims["id"] != user.ID.String() {
		t.Errorf("claim id = %v, want %s", claims["id"], user.ID)
	}
	if claims["role"] != "user" {
		t.Errorf("claim role = %v, want user", claims["role"])
	}
	if claims["user_name"] != "budi" {
		t.Errorf("claim user_name = %v, want budi", claims["user_name"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("claim exp tidak ada")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Error("token langsung kedaluwarsa")
	}
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	configs.JWTSecret = ""
	if _, err := GenerateToken(userModel.UserModel{ID: uuid.New()}); err == nil {
		t.Error("expected error saat JWT_SECRET kosong")
	}
}
