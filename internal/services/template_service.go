package services

import (
	"errors"
	"strings"

	"github.com/Pabloradio/yokedo/internal/models"
	"github.com/google/uuid"
)

var ErrTemplateNotFound = errors.New("weekly template not found")

type TemplateInput struct {
	Weekday      int
	StartMinute  int
	EndMinute    int
	Timezone     string
	PlanText     string
	LanguageCode string
	CategoryID   *uint
}

type TemplateRepository interface {
	ListByUser(userID uuid.UUID) ([]models.WeeklyTemplate, error)
	FindByIDForUser(templateID uuid.UUID, userID uuid.UUID) (models.WeeklyTemplate, bool, error)
	Create(template *models.WeeklyTemplate) error
	Save(template *models.WeeklyTemplate) error
	DeleteByIDForUser(templateID uuid.UUID, userID uuid.UUID) error
}

type TemplateCategoryRepository interface {
	ExistsByID(categoryID uint) (bool, error)
}

type TemplateService struct {
	templates  TemplateRepository
	categories TemplateCategoryRepository
}

func NewTemplateService(templates TemplateRepository, categories TemplateCategoryRepository) *TemplateService {
	return &TemplateService{templates: templates, categories: categories}
}

func (service *TemplateService) ListTemplates(userID uuid.UUID) ([]models.WeeklyTemplate, error) {
	return service.templates.ListByUser(userID)
}

func (service *TemplateService) CreateTemplate(userID uuid.UUID, input TemplateInput) (models.WeeklyTemplate, error) {
	normalized, err := service.normalizeInput(input)
	if err != nil {
		return models.WeeklyTemplate{}, err
	}

	template := models.WeeklyTemplate{
		UserID:       userID,
		Weekday:      normalized.Weekday,
		StartMinute:  normalized.StartMinute,
		EndMinute:    normalized.EndMinute,
		Timezone:     normalized.Timezone,
		PlanText:     normalized.PlanText,
		LanguageCode: normalized.LanguageCode,
		CategoryID:   normalized.CategoryID,
	}
	if err := service.templates.Create(&template); err != nil {
		return models.WeeklyTemplate{}, err
	}
	return template, nil
}

func (service *TemplateService) UpdateTemplate(userID uuid.UUID, templateID uuid.UUID, input TemplateInput) (models.WeeklyTemplate, error) {
	normalized, err := service.normalizeInput(input)
	if err != nil {
		return models.WeeklyTemplate{}, err
	}

	template, found, err := service.templates.FindByIDForUser(templateID, userID)
	if err != nil {
		return models.WeeklyTemplate{}, err
	}
	if !found {
		return models.WeeklyTemplate{}, ErrTemplateNotFound
	}

	template.Weekday = normalized.Weekday
	template.StartMinute = normalized.StartMinute
	template.EndMinute = normalized.EndMinute
	template.Timezone = normalized.Timezone
	template.PlanText = normalized.PlanText
	template.LanguageCode = normalized.LanguageCode
	template.CategoryID = normalized.CategoryID

	if err := service.templates.Save(&template); err != nil {
		return models.WeeklyTemplate{}, err
	}
	return template, nil
}

func (service *TemplateService) DeleteTemplate(userID uuid.UUID, templateID uuid.UUID) error {
	_, found, err := service.templates.FindByIDForUser(templateID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTemplateNotFound
	}
	return service.templates.DeleteByIDForUser(templateID, userID)
}

func (service *TemplateService) normalizeInput(input TemplateInput) (TemplateInput, error) {
	if err := ValidateTemplateRule(input.Weekday, input.StartMinute, input.EndMinute); err != nil {
		return TemplateInput{}, err
	}
	if err := ValidateTimezone(input.Timezone); err != nil {
		return TemplateInput{}, err
	}

	input.PlanText = strings.TrimSpace(input.PlanText)
	input.LanguageCode = strings.TrimSpace(input.LanguageCode)
	if input.LanguageCode == "" {
		input.LanguageCode = "es"
	}
	if err := ValidateLanguageCode(input.LanguageCode); err != nil {
		return TemplateInput{}, err
	}

	if input.CategoryID != nil {
		exists, err := service.categories.ExistsByID(*input.CategoryID)
		if err != nil {
			return TemplateInput{}, err
		}
		if !exists {
			return TemplateInput{}, ErrCategoryNotFound
		}
	}
	return input, nil
}
