// Package dateutil works with calendar dates stored as "YYYY-MM-DD" strings.
//
// Dates carry no timezone. Arithmetic is done on UTC midnights so that DST
// transitions never shift a day.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical storage format for calendar dates.
const Layout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("end date before start date")
)

// FromTime formats the year, month and day of t as seen in t's own location.
// Callers holding a local time get the local calendar day, never the UTC one.
func FromTime(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Today returns the current local calendar date.
func Today() string {
	return FromTime(time.Now())
}

// Parse parses a canonical date into a UTC midnight.
func Parse(date string) (time.Time, error) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

// Valid reports whether date is a real calendar date in canonical form.
func Valid(date string) bool {
	_, err := Parse(date)
	return err == nil
}

// Normalize accepts YYYY/MM/DD, DD/MM/YYYY and YYYY-MM-DD and returns the
// canonical form. Slash dates with the year last are always read day-first.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDate)
	}

	var parts []string
	switch {
	case strings.Contains(s, "/"):
		parts = strings.Split(s, "/")
	case strings.Contains(s, "-"):
		parts = strings.Split(s, "-")
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	var y, m, d string
	switch {
	case len(parts[0]) == 4:
		y, m, d = parts[0], parts[1], parts[2]
	case len(parts[2]) == 4 && strings.Contains(s, "/"):
		d, m, y = parts[0], parts[1], parts[2]
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	year, errY := strconv.Atoi(y)
	month, errM := strconv.Atoi(m)
	day, errD := strconv.Atoi(d)
	if errY != nil || errM != nil || errD != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t.Format(Layout), nil
}

// AddDays shifts a canonical date by n days.
func AddDays(date string, n int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(Layout), nil
}

// DaysInclusive returns the number of calendar days from start to end,
// counting both ends.
func DaysInclusive(start, end string) (int, error) {
	s, err := Parse(start)
	if err != nil {
		return 0, err
	}
	e, err := Parse(end)
	if err != nil {
		return 0, err
	}
	if e.Before(s) {
		return 0, ErrInvalidRange
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// Range lists every date from start to end inclusive.
func Range(start, end string) ([]string, error) {
	n, err := DaysInclusive(start, end)
	if err != nil {
		return nil, err
	}
	s, _ := Parse(start)
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, s.AddDate(0, 0, i).Format(Layout))
	}
	return dates, nil
}

// Weekday returns the day of the week of a canonical date.
func Weekday(date string) (time.Weekday, error) {
	t, err := Parse(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// MonthBounds returns the first and last date of a month.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(Layout), last.Format(Layout)
}

// InMonth reports whether date falls in the given calendar month.
func InMonth(date string, year int, month time.Month) bool {
	t, err := Parse(date)
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// YearMonth splits a canonical date into its year and month.
func YearMonth(date string) (int, time.Month, error) {
	t, err := Parse(date)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}
