package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Sessions   *SessionRepository
	Templates  *WeeklyTemplateRepository
	Overrides  *DayOverrideRepository
	Slots      *AvailabilityRepository
	Categories *PlanCategoryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Sessions:   NewSessionRepository(database),
		Templates:  NewWeeklyTemplateRepository(database),
		Overrides:  NewDayOverrideRepository(database),
		Slots:      NewAvailabilityRepository(database),
		Categories: NewPlanCategoryRepository(database),
	}
}
