package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
)

var (
	ErrSlotNotFound     = errors.New("availability slot not found")
	ErrCategoryNotFound = errors.New("plan category not found")
)

type SlotInput struct {
	StartTimeUTC time.Time
	EndTimeUTC   time.Time
	Timezone     string
	PlanText     string
	LanguageCode string
	IsFlexible   bool
	IsRecurring  bool
	Source       string
	CategoryID   *uint
}

type SlotRepository interface {
	ListByUserWindow(userID uuid.UUID, windowStart time.Time, windowEnd time.Time) ([]models.Availability, error)
	FindByIDForUser(slotID uuid.UUID, userID uuid.UUID) (models.Availability, bool, error)
	Create(slot *models.Availability) error
	Save(slot *models.Availability) error
	DeleteByIDForUser(slotID uuid.UUID, userID uuid.UUID) error
}

type SlotCategoryRepository interface {
	ExistsByID(categoryID uint) (bool, error)
}

type SlotService struct {
	slots      SlotRepository
	categories SlotCategoryRepository
}

func NewSlotService(slots SlotRepository, categories SlotCategoryRepository) *SlotService {
	return &SlotService{slots: slots, categories: categories}
}

// ListSlots returns the user's slots whose local civil date falls within
// [from, to] inclusive. Rows with an unreadable timezone fall back to UTC for
// the date check rather than disappearing from listings.
func (service *SlotService) ListSlots(userID uuid.UUID, from time.Time, to time.Time) ([]models.Availability, error) {
	from = DateOnly(from)
	to = DateOnly(to)

	windowStart, _ := SlotFetchWindow(from)
	_, windowEnd := SlotFetchWindow(to)

	candidates, err := service.slots.ListByUserWindow(userID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	slots := make([]models.Availability, 0, len(candidates))
	for _, slot := range candidates {
		location, err := time.LoadLocation(slot.Timezone)
		if err != nil {
			location = time.UTC
		}
		localDate := LocalDateOf(slot.StartTimeUTC, location)
		if localDate.Before(from) || localDate.After(to) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (service *SlotService) CreateSlot(userID uuid.UUID, input SlotInput) (models.Availability, error) {
	normalized, err := service.normalizeInput(input)
	if err != nil {
		return models.Availability{}, err
	}

	slot := models.Availability{
		UserID:       userID,
		StartTimeUTC: normalized.StartTimeUTC,
		EndTimeUTC:   normalized.EndTimeUTC,
		Timezone:     normalized.Timezone,
		PlanText:     normalized.PlanText,
		LanguageCode: normalized.LanguageCode,
		IsFlexible:   normalized.IsFlexible,
		IsRecurring:  normalized.IsRecurring,
		Source:       normalized.Source,
		CategoryID:   normalized.CategoryID,
	}
	if err := service.slots.Create(&slot); err != nil {
		return models.Availability{}, err
	}
	return slot, nil
}

func (service *SlotService) UpdateSlot(userID uuid.UUID, slotID uuid.UUID, input SlotInput) (models.Availability, error) {
	normalized, err := service.normalizeInput(input)
	if err != nil {
		return models.Availability{}, err
	}

	slot, found, err := service.slots.FindByIDForUser(slotID, userID)
	if err != nil {
		return models.Availability{}, err
	}
	if !found {
		return models.Availability{}, ErrSlotNotFound
	}

	slot.StartTimeUTC = normalized.StartTimeUTC
	slot.EndTimeUTC = normalized.EndTimeUTC
	slot.Timezone = normalized.Timezone
	slot.PlanText = normalized.PlanText
	slot.LanguageCode = normalized.LanguageCode
	slot.IsFlexible = normalized.IsFlexible
	slot.IsRecurring = normalized.IsRecurring
	slot.Source = normalized.Source
	slot.CategoryID = normalized.CategoryID

	if err := service.slots.Save(&slot); err != nil {
		return models.Availability{}, err
	}
	return slot, nil
}

func (service *SlotService) DeleteSlot(userID uuid.UUID, slotID uuid.UUID) error {
	_, found, err := service.slots.FindByIDForUser(slotID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrSlotNotFound
	}
	return service.slots.DeleteByIDForUser(slotID, userID)
}

func (service *SlotService) normalizeInput(input SlotInput) (SlotInput, error) {
	if err := ValidateSlotRange(input.StartTimeUTC, input.EndTimeUTC); err != nil {
		return SlotInput{}, err
	}
	if err := ValidateTimezone(input.Timezone); err != nil {
		return SlotInput{}, err
	}

	input.StartTimeUTC = input.StartTimeUTC.UTC()
	input.EndTimeUTC = input.EndTimeUTC.UTC()
	input.PlanText = strings.TrimSpace(input.PlanText)

	input.LanguageCode = strings.TrimSpace(input.LanguageCode)
	if input.LanguageCode == "" {
		input.LanguageCode = "es"
	}
	if err := ValidateLanguageCode(input.LanguageCode); err != nil {
		return SlotInput{}, err
	}

	input.Source = strings.TrimSpace(input.Source)
	if input.Source == "" {
		input.Source = models.SourcePunctual
	}
	if err := ValidateSlotSource(input.Source); err != nil {
		return SlotInput{}, err
	}

	if input.CategoryID != nil {
		exists, err := service.categories.ExistsByID(*input.CategoryID)
		if err != nil {
			return SlotInput{}, err
		}
		if !exists {
			return SlotInput{}, ErrCategoryNotFound
		}
	}
	return input, nil
}
