package holiday

import "errors"

var (
	ErrHolidayNotFound   = errors.New("public holiday not found")
	ErrHolidayDateExists = errors.New("a public holiday already exists on this date")
)
