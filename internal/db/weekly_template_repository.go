package db

import (
	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeeklyTemplateRepository struct {
	database *gorm.DB
}

func NewWeeklyTemplateRepository(database *gorm.DB) *WeeklyTemplateRepository {
	return &WeeklyTemplateRepository{database: database}
}

func (repo *WeeklyTemplateRepository) ListByUser(userID uuid.UUID) ([]models.WeeklyTemplate, error) {
	templates := make([]models.WeeklyTemplate, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("weekday ASC, start_minute ASC, id ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (repo *WeeklyTemplateRepository) ListByUserWeekday(userID uuid.UUID, weekday int) ([]models.WeeklyTemplate, error) {
	templates := make([]models.WeeklyTemplate, 0)
	if err := repo.database.
		Where("user_id = ? AND weekday = ?", userID, weekday).
		Order("start_minute ASC, id ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (repo *WeeklyTemplateRepository) FindByIDForUser(templateID uuid.UUID, userID uuid.UUID) (models.WeeklyTemplate, bool, error) {
	var template models.WeeklyTemplate
	result := repo.database.
		Where("id = ? AND user_id = ?", templateID, userID).
		Limit(1).
		Find(&template)
	if result.Error != nil {
		return models.WeeklyTemplate{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeeklyTemplate{}, false, nil
	}
	return template, true, nil
}

func (repo *WeeklyTemplateRepository) Create(template *models.WeeklyTemplate) error {
	return repo.database.Create(template).Error
}

func (repo *WeeklyTemplateRepository) Save(template *models.WeeklyTemplate) error {
	return repo.database.Save(template).Error
}

func (repo *WeeklyTemplateRepository) DeleteByIDForUser(templateID uuid.UUID, userID uuid.UUID) error {
	return repo.database.
		Where("id = ? AND user_id = ?", templateID, userID).
		Delete(&models.WeeklyTemplate{}).Error
}
