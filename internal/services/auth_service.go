package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrAliasTaken         = errors.New("alias already in use")
	ErrCredentialsInvalid = errors.New("invalid credentials")
)

type RegisterInput struct {
	Email     string
	Password  string
	Alias     string
	FirstName string
	LastName  string
	Language  string
	Timezone  string
}

type AuthUserRepository interface {
	FindByID(userID uuid.UUID) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	ExistsByAlias(alias string) (bool, error)
	Create(user *models.User) error
	UpdateLastLogin(userID uuid.UUID, at time.Time) error
	DeleteAccountAndRelatedData(userID uuid.UUID) error
}

type AuthService struct {
	users           AuthUserRepository
	defaultLanguage string
	defaultTimezone string
}

func NewAuthService(users AuthUserRepository, defaultLanguage string, defaultTimezone string) *AuthService {
	if defaultLanguage == "" {
		defaultLanguage = "es"
	}
	if defaultTimezone == "" {
		defaultTimezone = "Europe/Madrid"
	}
	return &AuthService{
		users:           users,
		defaultLanguage: defaultLanguage,
		defaultTimezone: defaultTimezone,
	}
}

func (service *AuthService) Register(input RegisterInput) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	alias, err := NormalizeAlias(input.Alias)
	if err != nil {
		return models.User{}, err
	}

	emailExists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if emailExists {
		return models.User{}, ErrEmailTaken
	}

	if alias != "" {
		aliasExists, err := service.users.ExistsByAlias(alias)
		if err != nil {
			return models.User{}, err
		}
		if aliasExists {
			return models.User{}, ErrAliasTaken
		}
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	language := strings.TrimSpace(input.Language)
	if language == "" {
		language = service.defaultLanguage
	}
	if err := ValidateLanguageCode(language); err != nil {
		return models.User{}, err
	}

	timezone := strings.TrimSpace(input.Timezone)
	if timezone == "" {
		timezone = service.defaultTimezone
	}
	if err := ValidateTimezone(timezone); err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: string(passwordHash),
		IsActive:     true,
		Language:     language,
		Timezone:     timezone,
	}
	if alias != "" {
		user.Alias = &alias
	}

	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate verifies credentials without revealing whether the email
// exists.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrCredentialsInvalid
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrCredentialsInvalid
		}
		return models.User{}, err
	}
	if !user.IsActive {
		return models.User{}, ErrCredentialsInvalid
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrCredentialsInvalid
	}

	if err := service.users.UpdateLastLogin(user.ID, time.Now().UTC()); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uuid.UUID) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) DeleteAccount(userID uuid.UUID) error {
	return service.users.DeleteAccountAndRelatedData(userID)
}
