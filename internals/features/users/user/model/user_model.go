package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database.
// Kolom xp/level/current_streak dimutasi oleh service gamification,
// jangan di-update langsung dari controller.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role     string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	UserXP            int        `gorm:"column:user_xp;not null;default:0" json:"user_xp"`
	UserLevel         int        `gorm:"column:user_level;not null;default:1" json:"user_level"`
	UserCurrentStreak int        `gorm:"column:user_current_streak;not null;default:0" json:"user_current_streak"`
	UserLastLoginDate *time.Time `gorm:"column:user_last_login_date;type:date" json:"user_last_login_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "user"
	}
}
