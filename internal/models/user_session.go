package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSession is one refresh-token login session. Only a hash of the refresh
// token secret is stored; the plaintext secret travels to the client once.
type UserSession struct {
	ID               uuid.UUID `gorm:"type:text;primaryKey"`
	UserID           uuid.UUID `gorm:"type:text;not null;index"`
	RefreshTokenHash string    `gorm:"size:128;not null"`
	CreatedAt        time.Time
	ExpiresAt        time.Time `gorm:"not null"`
	RevokedAt        *time.Time
}

func (session *UserSession) BeforeCreate(*gorm.DB) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	return nil
}
