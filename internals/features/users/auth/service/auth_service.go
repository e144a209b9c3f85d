package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"belajarku_backend/internals/configs"
	questModel "belajarku_backend/internals/features/gamification/quests/model"
	questService "belajarku_backend/internals/features/gamification/quests/service"
	authModel "belajarku_backend/internals/features/users/auth/model"
	userModel "belajarku_backend/internals/features/users/user/model"
	helper "belajarku_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

// HashPassword meng-hash password dengan bcrypt cost default.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GenerateToken membuat access token JWT dengan claim id, role,
// user_name, exp.
func GenerateToken(user userModel.UserModel) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"role":      user.Role,
		"user_name": user.UserName,
		"exp":       time.Now().Add(accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Register membuat akun baru. Email dan username harus unik.
func Register(db *gorm.DB, userName, email, password string) (*userModel.UserModel, error) {
	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("email = ? OR user_name = ?", email, userName).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Email atau username sudah terdaftar")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		ID:       uuid.New(),
		UserName: userName,
		Email:    email,
		Password: hash,
	}
	user.SetDefaultValues()

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	log.Println("[SUCCESS] User baru terdaftar:", user.Email)
	return &user, nil
}

// Login memverifikasi kredensial lalu menjalankan side effect harian:
// update streak, generate quest hari ini, dan bump quest login.
// Kegagalan side effect tidak membatalkan login.
func Login(db *gorm.DB, email, password string) (*userModel.UserModel, string, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return nil, "", err
	}
	if !user.IsActive {
		return nil, "", fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if !CheckPassword(user.Password, password) {
		return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	if _, err := questService.UpdateLoginStreak(db, user.ID); err != nil {
		log.Println("[WARNING] Gagal update streak login:", err)
	}
	if err := questService.GenerateDailyQuests(db, user.ID); err != nil {
		log.Println("[WARNING] Gagal generate quest harian:", err)
	}
	if err := questService.BumpQuestProgress(db, user.ID, questModel.QuestLogin, 1); err != nil {
		log.Println("[WARNING] Gagal bump quest login:", err)
	}

	// Streak di struct bisa basi setelah update, ambil ulang
	if err := db.Where("id = ?", user.ID).First(&user).Error; err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Logout memasukkan access token ke blacklist sampai kedaluwarsa.
func Logout(db *gorm.DB, tokenString string) error {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token tidak valid")
	}

	expiredAt := time.Now().Add(accessTTL)
	if exp, ok := claims["exp"].(float64); ok {
		expiredAt = time.Unix(int64(exp), 0)
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		// Token yang sudah di-blacklist dianggap logout sukses
		if helper.IsDuplicateKey(err) {
			return nil
		}
		return err
	}
	return nil
}

// CleanupExpiredTokens menghapus baris blacklist yang sudah lewat
// expiry. Dipanggil periodik dari scheduler di main.
func CleanupExpiredTokens(db *gorm.DB) {
	res := db.Unscoped().
		Where("expired_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		log.Println("[ERROR] Gagal bersihkan token blacklist:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[INFO] %d token kedaluwarsa dihapus dari blacklist", res.RowsAffected)
	}
}
