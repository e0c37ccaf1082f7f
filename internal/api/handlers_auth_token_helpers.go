package api

import (
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

func (handler *Handler) buildAccessToken(user *models.User) (string, error) {
	now := time.Now()

	claims := authClaims{
		UserID: user.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(handler.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}
