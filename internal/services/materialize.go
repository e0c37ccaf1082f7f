package services

import (
	"errors"
	"time"

	"github.com/Pabloradio/yokedo/internal/models"
)

var (
	ErrTemplateRangeInvalid = errors.New("template minute range invalid")
	ErrTimezoneUnknown      = errors.New("timezone unknown")
)

// Interval is a half-open [Start, End) range of UTC instants.
type Interval struct {
	Start time.Time
	End   time.Time
}

// MaterializeTemplate anchors a recurring weekly rule to a concrete civil
// date, producing UTC instants for the template's wall-clock minutes in its
// own timezone.
//
// Around DST transitions wall-clock minutes that do not exist (spring
// forward) normalize per time.Date, so a 02:30 start on a skipped hour lands
// on the adjacent valid instant. The half-open start<end property holds for
// every template that survives write-path validation.
func MaterializeTemplate(tmpl models.WeeklyTemplate, date time.Time) (Interval, error) {
	if tmpl.StartMinute >= tmpl.EndMinute {
		return Interval{}, ErrTemplateRangeInvalid
	}

	location, err := time.LoadLocation(tmpl.Timezone)
	if err != nil {
		return Interval{}, ErrTimezoneUnknown
	}

	year, month, day := date.Date()
	start := time.Date(year, month, day, 0, tmpl.StartMinute, 0, 0, location)
	end := time.Date(year, month, day, 0, tmpl.EndMinute, 0, 0, location)
	if !start.Before(end) {
		return Interval{}, ErrTemplateRangeInvalid
	}

	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}
