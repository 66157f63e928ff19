package service

import (
	"fmt"
	"time"
)

// ValidationError marks input the caller can fix; handlers map it to 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// monthRange resolves a 1-12 month and a year to the inclusive window
// [first day 00:00:00, last day 23:59:59] in UTC.
func monthRange(month, year int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, validationErrorf("month must be between 1 and 12, got %d", month)
	}
	if year <= 0 {
		return time.Time{}, time.Time{}, validationErrorf("year is required")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end, nil
}
