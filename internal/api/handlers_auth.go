package api

import (
	"errors"

	"github.com/Pabloradio/yokedo/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.authService.Register(services.RegisterInput{
		Email:     input.Email,
		Password:  input.Password,
		Alias:     input.Alias,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Language:  input.Language,
		Timezone:  input.Timezone,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already registered")
		case errors.Is(err, services.ErrAliasTaken):
			return apiError(c, fiber.StatusConflict, "alias already in use")
		case errors.Is(err, services.ErrAuthCredentialsInvalid),
			errors.Is(err, services.ErrAliasInvalid),
			errors.Is(err, services.ErrWeakPassword),
			errors.Is(err, services.ErrLanguageCodeInvalid),
			errors.Is(err, services.ErrTimezoneInvalid):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			handler.log.Error("register failed", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "registration failed")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrCredentialsInvalid) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		handler.log.Error("login failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	accessToken, err := handler.buildAccessToken(&user)
	if err != nil {
		handler.log.Error("token build failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	refreshToken, err := handler.sessionService.Issue(user.ID)
	if err != nil {
		handler.log.Error("session issue failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    "bearer",
	})
}

func (handler *Handler) Refresh(c *fiber.Ctx) error {
	input := refreshInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	userID, refreshToken, err := handler.sessionService.Rotate(input.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrSessionInvalid) {
			return apiError(c, fiber.StatusUnauthorized, "invalid refresh token")
		}
		handler.log.Error("refresh failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "refresh failed")
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid refresh token")
	}

	accessToken, err := handler.buildAccessToken(&user)
	if err != nil {
		handler.log.Error("token build failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "refresh failed")
	}

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    "bearer",
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.sessionService.RevokeAllForUser(user.ID); err != nil {
		handler.log.Error("logout failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "logout failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.authService.DeleteAccount(user.ID); err != nil {
		handler.log.Error("account delete failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "account delete failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
