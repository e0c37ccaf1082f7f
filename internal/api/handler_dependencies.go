package api

import (
	"github.com/Pabloradio/yokedo/internal/db"
	"github.com/Pabloradio/yokedo/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, options Options, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	accessTokenTTL := options.AccessTokenTTL
	if accessTokenTTL <= 0 {
		accessTokenTTL = defaultAccessTokenTTL
	}

	handler := &Handler{
		db:             database,
		secretKey:      []byte(options.SecretKey),
		accessTokenTTL: accessTokenTTL,
		log:            log,
	}

	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, options.DefaultLanguage, options.DefaultTimezone)
	handler.sessionService = services.NewSessionService(handler.repositories.Sessions, options.RefreshTokenTTL)
	handler.templateService = services.NewTemplateService(handler.repositories.Templates, handler.repositories.Categories)
	handler.overrideService = services.NewOverrideService(handler.repositories.Overrides)
	handler.slotService = services.NewSlotService(handler.repositories.Slots, handler.repositories.Categories)
	handler.resolver = services.NewResolver(
		handler.repositories.Users,
		handler.repositories.Overrides,
		handler.repositories.Templates,
		handler.repositories.Slots,
		log,
	)
	return handler
}
