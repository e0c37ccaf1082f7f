package api

import "time"

type registerInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Alias     string `json:"alias"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Language  string `json:"language"`
	Timezone  string `json:"timezone"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshInput struct {
	RefreshToken string `json:"refresh_token"`
}

type templateInput struct {
	Weekday      int    `json:"weekday"`
	StartMinute  int    `json:"start_minute"`
	EndMinute    int    `json:"end_minute"`
	Timezone     string `json:"timezone"`
	PlanText     string `json:"plan_text"`
	LanguageCode string `json:"language_code"`
	CategoryID   *uint  `json:"category_id"`
}

type overrideInput struct {
	Timezone     string `json:"timezone"`
	OverrideType string `json:"override_type"`
}

type slotInput struct {
	StartTimeUTC time.Time `json:"start_time_utc"`
	EndTimeUTC   time.Time `json:"end_time_utc"`
	Timezone     string    `json:"timezone"`
	PlanText     string    `json:"plan_text"`
	LanguageCode string    `json:"language_code"`
	IsFlexible   bool      `json:"is_flexible"`
	IsRecurring  bool      `json:"is_recurring"`
	Source       string    `json:"source"`
	CategoryID   *uint     `json:"category_id"`
}
