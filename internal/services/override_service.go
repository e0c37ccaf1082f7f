package services

import (
	"errors"
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
)

var ErrOverrideNotFound = errors.New("day override not found")

type OverrideRepository interface {
	FindByUserAndDate(userID uuid.UUID, date time.Time) (models.DayOverride, bool, error)
	ListByUserRange(userID uuid.UUID, fromDate time.Time, toDate time.Time) ([]models.DayOverride, error)
	Create(override *models.DayOverride) error
	Save(override *models.DayOverride) error
	DeleteByUserAndDate(userID uuid.UUID, date time.Time) error
}

type OverrideService struct {
	overrides OverrideRepository
}

func NewOverrideService(overrides OverrideRepository) *OverrideService {
	return &OverrideService{overrides: overrides}
}

func (service *OverrideService) ListOverrides(userID uuid.UUID, from time.Time, to time.Time) ([]models.DayOverride, error) {
	return service.overrides.ListByUserRange(userID, DateOnly(from), DateOnly(to))
}

// UpsertOverride keeps the at-most-one-per-date invariant: an existing
// override for the date is updated in place.
func (service *OverrideService) UpsertOverride(userID uuid.UUID, date time.Time, timezone string, overrideType string) (models.DayOverride, error) {
	if err := ValidateOverrideType(overrideType); err != nil {
		return models.DayOverride{}, err
	}
	if err := ValidateTimezone(timezone); err != nil {
		return models.DayOverride{}, err
	}

	date = DateOnly(date)

	existing, found, err := service.overrides.FindByUserAndDate(userID, date)
	if err != nil {
		return models.DayOverride{}, err
	}
	if found {
		existing.Timezone = timezone
		existing.OverrideType = overrideType
		if err := service.overrides.Save(&existing); err != nil {
			return models.DayOverride{}, err
		}
		return existing, nil
	}

	override := models.DayOverride{
		UserID:       userID,
		Date:         date,
		Timezone:     timezone,
		OverrideType: overrideType,
	}
	if err := service.overrides.Create(&override); err != nil {
		return models.DayOverride{}, err
	}
	return override, nil
}

func (service *OverrideService) DeleteOverride(userID uuid.UUID, date time.Time) error {
	date = DateOnly(date)
	_, found, err := service.overrides.FindByUserAndDate(userID, date)
	if err != nil {
		return err
	}
	if !found {
		return ErrOverrideNotFound
	}
	return service.overrides.DeleteByUserAndDate(userID, date)
}
