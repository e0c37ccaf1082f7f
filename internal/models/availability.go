package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// Day override kinds. "replace" keeps only explicit slots for the date,
	// "clear" leaves the whole day unavailable.
	OverrideReplace = "replace"
	OverrideClear   = "clear"
)

const (
	SourceHabitual = "habitual"
	SourcePunctual = "punctual"
)

// WeeklyTemplate is a recurring default rule, not a calendar occurrence.
// It only applies to dates with no day override.
type WeeklyTemplate struct {
	ID           uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:text;not null;index:idx_awt_user_weekday" json:"user_id"`
	Weekday      int       `gorm:"not null;index:idx_awt_user_weekday" json:"weekday"` // ISO 8601: 1=Monday, 7=Sunday
	StartMinute  int       `gorm:"not null" json:"start_minute"`                       // minutes since local midnight, 0..1439
	EndMinute    int       `gorm:"not null" json:"end_minute"`                         // 1..1440, strictly after StartMinute
	Timezone     string    `gorm:"size:50;not null" json:"timezone"`
	PlanText     string    `gorm:"type:text" json:"plan_text,omitempty"`
	LanguageCode string    `gorm:"size:5;not null;default:es" json:"language_code"`
	CategoryID   *uint     `json:"category_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (WeeklyTemplate) TableName() string {
	return "availability_weekly_templates"
}

func (tmpl *WeeklyTemplate) BeforeCreate(*gorm.DB) error {
	if tmpl.ID == uuid.Nil {
		tmpl.ID = uuid.New()
	}
	return nil
}

// DayOverride marks a local date as not following the weekly template.
// Distinguishes "no punctual data" from "not available". At most one per
// user and date.
type DayOverride struct {
	ID           uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:text;not null;uniqueIndex:uidx_ado_user_date" json:"user_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_ado_user_date" json:"date"`
	Timezone     string    `gorm:"size:50;not null" json:"timezone"`
	OverrideType string    `gorm:"size:10;not null" json:"override_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (DayOverride) TableName() string {
	return "availability_day_overrides"
}

func (override *DayOverride) BeforeCreate(*gorm.DB) error {
	if override.ID == uuid.Nil {
		override.ID = uuid.New()
	}
	return nil
}

// Availability is one concrete slot stored in UTC, either entered by the
// user (punctual) or synthesized from a template (habitual).
type Availability struct {
	ID           uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:text;not null;index:idx_av_user_time,priority:1" json:"user_id"`
	StartTimeUTC time.Time `gorm:"column:start_time_utc;not null;index:idx_av_user_time,priority:2;index:idx_av_timerange,priority:1" json:"start_time_utc"`
	EndTimeUTC   time.Time `gorm:"column:end_time_utc;not null;index:idx_av_user_time,priority:3;index:idx_av_timerange,priority:2" json:"end_time_utc"`
	Timezone     string    `gorm:"size:50;not null" json:"timezone"`
	PlanText     string    `gorm:"type:text" json:"plan_text,omitempty"`
	LanguageCode string    `gorm:"size:5;not null;default:es" json:"language_code"`
	IsFlexible   bool      `gorm:"not null;default:false" json:"is_flexible"`
	IsSynthetic  bool      `gorm:"not null;default:false" json:"is_synthetic"`
	IsRecurring  bool      `gorm:"not null;default:false" json:"is_recurring"`
	Source       string    `gorm:"size:10;not null;default:punctual" json:"source"`
	CategoryID   *uint     `json:"category_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Availability) TableName() string {
	return "availabilities"
}

func (slot *Availability) BeforeCreate(*gorm.DB) error {
	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}
	return nil
}
