package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/Pabloradio/yokedo/internal/security"
	"github.com/google/uuid"
)

var ErrSessionInvalid = errors.New("session invalid")

const (
	refreshSecretLength   = 48
	refreshSecretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type SessionRepository interface {
	Create(session *models.UserSession) error
	FindByID(sessionID uuid.UUID) (models.UserSession, bool, error)
	Revoke(sessionID uuid.UUID, at time.Time) error
	RevokeAllForUser(userID uuid.UUID, at time.Time) error
}

// SessionService issues and rotates refresh tokens. A token is
// "<session id>.<secret>"; only the SHA-256 of the secret is persisted.
type SessionService struct {
	sessions SessionRepository
	ttl      time.Duration
}

func NewSessionService(sessions SessionRepository, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &SessionService{sessions: sessions, ttl: ttl}
}

func (service *SessionService) Issue(userID uuid.UUID) (string, error) {
	secret, err := security.RandomString(refreshSecretLength, refreshSecretAlphabet)
	if err != nil {
		return "", err
	}

	session := models.UserSession{
		UserID:           userID,
		RefreshTokenHash: hashRefreshSecret(secret),
		ExpiresAt:        time.Now().UTC().Add(service.ttl),
	}
	if err := service.sessions.Create(&session); err != nil {
		return "", err
	}
	return session.ID.String() + "." + secret, nil
}

// Rotate validates a refresh token, revokes its session and issues a
// replacement. A token that fails any check is rejected without detail.
func (service *SessionService) Rotate(token string) (uuid.UUID, string, error) {
	session, _, err := service.lookup(token)
	if err != nil {
		return uuid.Nil, "", err
	}

	if err := service.sessions.Revoke(session.ID, time.Now().UTC()); err != nil {
		return uuid.Nil, "", err
	}

	replacement, err := service.Issue(session.UserID)
	if err != nil {
		return uuid.Nil, "", err
	}
	return session.UserID, replacement, nil
}

func (service *SessionService) Revoke(token string) error {
	session, _, err := service.lookup(token)
	if err != nil {
		return err
	}
	return service.sessions.Revoke(session.ID, time.Now().UTC())
}

func (service *SessionService) RevokeAllForUser(userID uuid.UUID) error {
	return service.sessions.RevokeAllForUser(userID, time.Now().UTC())
}

func (service *SessionService) lookup(token string) (models.UserSession, string, error) {
	sessionIDRaw, secret, found := strings.Cut(strings.TrimSpace(token), ".")
	if !found || secret == "" {
		return models.UserSession{}, "", ErrSessionInvalid
	}

	sessionID, err := uuid.Parse(sessionIDRaw)
	if err != nil {
		return models.UserSession{}, "", ErrSessionInvalid
	}

	session, exists, err := service.sessions.FindByID(sessionID)
	if err != nil {
		return models.UserSession{}, "", err
	}
	if !exists || session.RevokedAt != nil || time.Now().UTC().After(session.ExpiresAt) {
		return models.UserSession{}, "", ErrSessionInvalid
	}

	expected := []byte(session.RefreshTokenHash)
	actual := []byte(hashRefreshSecret(secret))
	if subtle.ConstantTimeCompare(expected, actual) != 1 {
		return models.UserSession{}, "", ErrSessionInvalid
	}
	return session, secret, nil
}

func hashRefreshSecret(secret string) string {
	digest := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(digest[:])
}
