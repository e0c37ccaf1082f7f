package services

import (
	"errors"
	"testing"
	"time"
)

func TestValidateTemplateRule(t *testing.T) {
	tests := []struct {
		name        string
		weekday     int
		startMinute int
		endMinute   int
		wantErr     error
	}{
		{name: "valid rule", weekday: 1, startMinute: 540, endMinute: 600},
		{name: "full day", weekday: 7, startMinute: 0, endMinute: 1440},
		{name: "weekday zero", weekday: 0, startMinute: 540, endMinute: 600, wantErr: ErrWeekdayOutOfRange},
		{name: "weekday eight", weekday: 8, startMinute: 540, endMinute: 600, wantErr: ErrWeekdayOutOfRange},
		{name: "negative start", weekday: 1, startMinute: -1, endMinute: 600, wantErr: ErrMinuteRangeInvalid},
		{name: "start too late", weekday: 1, startMinute: 1440, endMinute: 1440, wantErr: ErrMinuteRangeInvalid},
		{name: "end past midnight", weekday: 1, startMinute: 540, endMinute: 1441, wantErr: ErrMinuteRangeInvalid},
		{name: "start equals end", weekday: 1, startMinute: 540, endMinute: 540, wantErr: ErrMinuteRangeInvalid},
		{name: "start after end", weekday: 1, startMinute: 600, endMinute: 540, wantErr: ErrMinuteRangeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplateRule(tt.weekday, tt.startMinute, tt.endMinute)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateTemplateRule() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSlotRange(t *testing.T) {
	start := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)

	if err := ValidateSlotRange(start, start.Add(time.Hour)); err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if err := ValidateSlotRange(start, start); !errors.Is(err, ErrTimeRangeInvalid) {
		t.Fatalf("zero-length range accepted: %v", err)
	}
	if err := ValidateSlotRange(start.Add(time.Hour), start); !errors.Is(err, ErrTimeRangeInvalid) {
		t.Fatalf("inverted range accepted: %v", err)
	}
	if err := ValidateSlotRange(time.Time{}, start); !errors.Is(err, ErrTimeRangeInvalid) {
		t.Fatalf("zero start accepted: %v", err)
	}
}

func TestValidateLanguageCode(t *testing.T) {
	valid := []string{"es", "en", "es-ES", "pt-BR"}
	for _, code := range valid {
		if err := ValidateLanguageCode(code); err != nil {
			t.Fatalf("ValidateLanguageCode(%q) = %v, want nil", code, err)
		}
	}

	invalid := []string{"", "ES", "spanish", "es_ES", "es-es", "e"}
	for _, code := range invalid {
		if err := ValidateLanguageCode(code); !errors.Is(err, ErrLanguageCodeInvalid) {
			t.Fatalf("ValidateLanguageCode(%q) = %v, want %v", code, err, ErrLanguageCodeInvalid)
		}
	}
}

func TestValidateOverrideType(t *testing.T) {
	if err := ValidateOverrideType("replace"); err != nil {
		t.Fatalf("replace rejected: %v", err)
	}
	if err := ValidateOverrideType("clear"); err != nil {
		t.Fatalf("clear rejected: %v", err)
	}
	if err := ValidateOverrideType("skip"); !errors.Is(err, ErrOverrideTypeInvalid) {
		t.Fatalf("unknown type accepted: %v", err)
	}
}

func TestValidateTimezone(t *testing.T) {
	if err := ValidateTimezone("Europe/Madrid"); err != nil {
		t.Fatalf("Europe/Madrid rejected: %v", err)
	}
	if err := ValidateTimezone(""); !errors.Is(err, ErrTimezoneInvalid) {
		t.Fatalf("empty timezone accepted: %v", err)
	}
	if err := ValidateTimezone("Mars/Olympus"); !errors.Is(err, ErrTimezoneInvalid) {
		t.Fatalf("unknown timezone accepted: %v", err)
	}
}
