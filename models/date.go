package models

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar-date layout used as the attendance ledger key.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// ParseDate validates an ISO "YYYY-MM-DD" date and returns it at UTC midnight.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, date)
	}
	return t, nil
}

// FormatDate renders t as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekdayOfDate resolves the recurring weekday of an ISO date.
func WeekdayOfDate(date string) (Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return WeekdayOf(t), nil
}
