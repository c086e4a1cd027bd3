// File: models/weekday.go
package models

import (
	"fmt"
	"time"
)

// Weekday is the key of the recurring weekly template.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

// Weekdays lists every weekday in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayLabels = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Valid reports whether d is one of the seven known weekdays.
func (d Weekday) Valid() bool {
	_, ok := weekdayLabels[d]
	return ok
}

// Label returns the full English name, e.g. "Monday".
func (d Weekday) Label() string {
	return weekdayLabels[d]
}

// ParseWeekday accepts the short id ("Mon") or the full label ("Monday").
func ParseWeekday(s string) (Weekday, error) {
	if d := Weekday(s); d.Valid() {
		return d, nil
	}
	for d, label := range weekdayLabels {
		if label == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// WeekdayOf maps a calendar time onto its recurring weekday.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}
