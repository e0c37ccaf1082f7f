package db

import (
	"github.com/Pabloradio/yokedo/internal/models"
	"gorm.io/gorm"
)

type PlanCategoryRepository struct {
	database *gorm.DB
}

func NewPlanCategoryRepository(database *gorm.DB) *PlanCategoryRepository {
	return &PlanCategoryRepository{database: database}
}

func (repo *PlanCategoryRepository) List() ([]models.PlanCategory, error) {
	categories := make([]models.PlanCategory, 0)
	if err := repo.database.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (repo *PlanCategoryRepository) ExistsByID(categoryID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.PlanCategory{}).
		Where("id = ?", categoryID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
