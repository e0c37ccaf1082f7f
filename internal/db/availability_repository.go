package db

import (
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	database *gorm.DB
}

func NewAvailabilityRepository(database *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{database: database}
}

// ListByUserWindow returns slots whose UTC start instant falls inside
// [windowStart, windowEnd). Callers widen the window to cover every possible
// timezone offset and filter by local date afterwards.
func (repo *AvailabilityRepository) ListByUserWindow(userID uuid.UUID, windowStart time.Time, windowEnd time.Time) ([]models.Availability, error) {
	slots := make([]models.Availability, 0)
	if err := repo.database.
		Where("user_id = ? AND start_time_utc >= ? AND start_time_utc < ?", userID, windowStart, windowEnd).
		Order("start_time_utc ASC, end_time_utc ASC, id ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (repo *AvailabilityRepository) FindByIDForUser(slotID uuid.UUID, userID uuid.UUID) (models.Availability, bool, error) {
	var slot models.Availability
	result := repo.database.
		Where("id = ? AND user_id = ?", slotID, userID).
		Limit(1).
		Find(&slot)
	if result.Error != nil {
		return models.Availability{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Availability{}, false, nil
	}
	return slot, true, nil
}

func (repo *AvailabilityRepository) Create(slot *models.Availability) error {
	return repo.database.Create(slot).Error
}

func (repo *AvailabilityRepository) Save(slot *models.Availability) error {
	return repo.database.Save(slot).Error
}

func (repo *AvailabilityRepository) DeleteByIDForUser(slotID uuid.UUID, userID uuid.UUID) error {
	return repo.database.
		Where("id = ? AND user_id = ?", slotID, userID).
		Delete(&models.Availability{}).Error
}
