package api

import (
	"time"

	"github.com/Pabloradio/yokedo/internal/db"
	"github.com/Pabloradio/yokedo/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	secretKey       []byte
	accessTokenTTL  time.Duration
	log             *zap.Logger
	repositories    *db.Repositories
	authService     *services.AuthService
	sessionService  *services.SessionService
	templateService *services.TemplateService
	overrideService *services.OverrideService
	slotService     *services.SlotService
	resolver        *services.Resolver
}

// Options carries the configuration slice the handler needs; main maps the
// full config onto it.
type Options struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	DefaultLanguage string
	DefaultTimezone string
}

const defaultAccessTokenTTL = 30 * time.Minute

const contextUserKey = "current_user"

type authClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}
