package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:text;primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Alias        *string    `gorm:"uniqueIndex" json:"alias,omitempty"`
	FirstName    string     `gorm:"size:50;not null" json:"first_name"`
	LastName     string     `gorm:"size:50;not null" json:"last_name"`
	PasswordHash string     `gorm:"size:128;not null" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	Language     string     `gorm:"size:5;not null;default:es" json:"language"`
	Timezone     string     `gorm:"size:50;not null;default:Europe/Madrid" json:"timezone"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (user *User) BeforeCreate(*gorm.DB) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return nil
}
