package dateutil

import (
	"fmt"
	"time"
)

const secondsPerDay = 86400

// StartOfWeek takes a YYYY-MM-DD date and returns midnight of the
// preceding (or same) Sunday as a zoned timestamp. The boundary is
// reached by subtracting whole days' worth of seconds from midnight of
// the given date, so month and year rollover need no special handling.
func StartOfWeek(date string, loc *time.Location) (string, error) {
	day, err := midnight(date, loc)
	if err != nil {
		return "", fmt.Errorf("StartOfWeek: %w", err)
	}
	offset := time.Duration(int(day.Weekday())*secondsPerDay) * time.Second
	return day.Add(-offset).Format(LayoutZoned), nil
}

// EndOfWeek takes a YYYY-MM-DD date and returns 23:59:59 of the
// following (or same) Saturday as a zoned timestamp.
func EndOfWeek(date string, loc *time.Location) (string, error) {
	day, err := midnight(date, loc)
	if err != nil {
		return "", fmt.Errorf("EndOfWeek: %w", err)
	}
	days := 6 - int(day.Weekday())
	offset := time.Duration(days*secondsPerDay+secondsPerDay-1) * time.Second
	return day.Add(offset).Format(LayoutZoned), nil
}

// StartOfDay returns midnight of the given YYYY-MM-DD date as a zoned
// timestamp.
func StartOfDay(date string, loc *time.Location) (string, error) {
	day, err := midnight(date, loc)
	if err != nil {
		return "", fmt.Errorf("StartOfDay: %w", err)
	}
	return day.Format(LayoutZoned), nil
}

// EndOfDay returns 23:59:59 of the given YYYY-MM-DD date as a zoned
// timestamp.
func EndOfDay(date string, loc *time.Location) (string, error) {
	day, err := midnight(date, loc)
	if err != nil {
		return "", fmt.Errorf("EndOfDay: %w", err)
	}
	return day.Add(time.Duration(secondsPerDay-1) * time.Second).Format(LayoutZoned), nil
}

func midnight(date string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(LayoutDate, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q does not match %q: %w", date, LayoutDate, ErrFormat)
	}
	return day, nil
}
