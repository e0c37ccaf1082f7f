package services

import "time"

// Civil dates travel through the service as time.Time values pinned to UTC
// midnight. Only the year/month/day fields are meaningful.

func UTCDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOnly strips the time-of-day portion of value, keeping its calendar date.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return UTCDate(year, month, day)
}

// LocalDateOf returns the civil date of instant as observed in location.
func LocalDateOf(instant time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	year, month, day := instant.In(location).Date()
	return UTCDate(year, month, day)
}

// ISOWeekday maps Go's Sunday-based weekday to ISO 8601 (1=Monday, 7=Sunday).
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

// SlotFetchWindow is the UTC instant range that can contain the start of any
// slot whose local date equals date, across every real UTC offset
// (UTC+14 through UTC-12).
func SlotFetchWindow(date time.Time) (time.Time, time.Time) {
	start := DateOnly(date).Add(-14 * time.Hour)
	end := DateOnly(date).Add((24 + 12) * time.Hour)
	return start, end
}
