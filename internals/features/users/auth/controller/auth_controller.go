package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "belajarku_backend/internals/features/users/auth/service"
	helper "belajarku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type registerRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// =============================
// 📝 Register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authService.Register(ctrl.DB, body.UserName, body.Email, body.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil", fiber.Map{
		"user_id":   user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

// =============================
// 🔑 Login (update streak + quest harian)
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, token, err := authService.Login(ctrl.DB, body.Email, body.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token":   token,
		"user_name":      user.UserName,
		"role":           user.Role,
		"user_xp":        user.UserXP,
		"user_level":     user.UserLevel,
		"current_streak": user.UserCurrentStreak,
	})
}

// =============================
// 🚪 Logout (blacklist token)
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if len(authHeader) < 8 {
		return helper.Error(c, fiber.StatusUnauthorized, "Token tidak ada")
	}
	tokenString := authHeader[len("Bearer "):]

	if err := authService.Logout(ctrl.DB, tokenString); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Logout berhasil", nil)
}
