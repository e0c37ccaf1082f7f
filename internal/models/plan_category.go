package models

import "time"

type PlanCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (PlanCategory) TableName() string {
	return "plan_categories"
}
