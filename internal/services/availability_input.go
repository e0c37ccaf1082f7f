package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
)

// Write-path validation mirroring the schema CHECK constraints. Rows that
// pass here never trip the resolver's defensive skip path.

var (
	ErrWeekdayOutOfRange   = errors.New("weekday out of range")
	ErrMinuteRangeInvalid  = errors.New("minute range invalid")
	ErrTimeRangeInvalid    = errors.New("time range invalid")
	ErrTimezoneInvalid     = errors.New("timezone invalid")
	ErrLanguageCodeInvalid = errors.New("language code invalid")
	ErrOverrideTypeInvalid = errors.New("override type invalid")
	ErrSourceInvalid       = errors.New("source invalid")
)

var languageCodePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

func ValidateTimezone(name string) error {
	if name == "" {
		return ErrTimezoneInvalid
	}
	if _, err := time.LoadLocation(name); err != nil {
		return ErrTimezoneInvalid
	}
	return nil
}

func ValidateLanguageCode(code string) error {
	if !languageCodePattern.MatchString(code) {
		return ErrLanguageCodeInvalid
	}
	return nil
}

func ValidateOverrideType(overrideType string) error {
	if overrideType != models.OverrideReplace && overrideType != models.OverrideClear {
		return ErrOverrideTypeInvalid
	}
	return nil
}

func ValidateSlotSource(source string) error {
	if source != models.SourceHabitual && source != models.SourcePunctual {
		return ErrSourceInvalid
	}
	return nil
}

func ValidateTemplateRule(weekday int, startMinute int, endMinute int) error {
	if weekday < 1 || weekday > 7 {
		return ErrWeekdayOutOfRange
	}
	if startMinute < 0 || startMinute > 1439 {
		return ErrMinuteRangeInvalid
	}
	if endMinute < 1 || endMinute > 1440 {
		return ErrMinuteRangeInvalid
	}
	if startMinute >= endMinute {
		return ErrMinuteRangeInvalid
	}
	return nil
}

func ValidateSlotRange(start time.Time, end time.Time) error {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return ErrTimeRangeInvalid
	}
	return nil
}
