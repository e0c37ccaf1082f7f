package db

import (
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Create(session *models.UserSession) error {
	return repo.database.Create(session).Error
}

func (repo *SessionRepository) FindByID(sessionID uuid.UUID) (models.UserSession, bool, error) {
	var session models.UserSession
	result := repo.database.Where("id = ?", sessionID).Limit(1).Find(&session)
	if result.Error != nil {
		return models.UserSession{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserSession{}, false, nil
	}
	return session, true, nil
}

func (repo *SessionRepository) Revoke(sessionID uuid.UUID, at time.Time) error {
	return repo.database.Model(&models.UserSession{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", at).Error
}

func (repo *SessionRepository) RevokeAllForUser(userID uuid.UUID, at time.Time) error {
	return repo.database.Model(&models.UserSession{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", at).Error
}

func (repo *SessionRepository) DeleteExpiredBefore(cutoff time.Time) error {
	return repo.database.
		Where("expires_at < ?", cutoff).
		Delete(&models.UserSession{}).Error
}
