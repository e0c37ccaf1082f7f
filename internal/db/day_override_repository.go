package db

import (
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DayOverrideRepository struct {
	database *gorm.DB
}

func NewDayOverrideRepository(database *gorm.DB) *DayOverrideRepository {
	return &DayOverrideRepository{database: database}
}

// FindByUserAndDate expects date normalized to UTC midnight of the civil date.
func (repo *DayOverrideRepository) FindByUserAndDate(userID uuid.UUID, date time.Time) (models.DayOverride, bool, error) {
	var override models.DayOverride
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, date, date.AddDate(0, 0, 1)).
		Order("date ASC, id ASC").
		Limit(1).
		Find(&override)
	if result.Error != nil {
		return models.DayOverride{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayOverride{}, false, nil
	}
	return override, true, nil
}

func (repo *DayOverrideRepository) ListByUserRange(userID uuid.UUID, fromDate time.Time, toDate time.Time) ([]models.DayOverride, error) {
	overrides := make([]models.DayOverride, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromDate, toDate.AddDate(0, 0, 1)).
		Order("date ASC").
		Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}

func (repo *DayOverrideRepository) Create(override *models.DayOverride) error {
	return repo.database.Create(override).Error
}

func (repo *DayOverrideRepository) Save(override *models.DayOverride) error {
	return repo.database.Save(override).Error
}

func (repo *DayOverrideRepository) DeleteByUserAndDate(userID uuid.UUID, date time.Time) error {
	return repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, date, date.AddDate(0, 0, 1)).
		Delete(&models.DayOverride{}).Error
}
