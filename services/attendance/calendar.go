// File: services/attendance/calendar.go
package attendance

import (
	"time"

	"attendly/models"
)

// StatusOf summarizes one date for the calendar.
func StatusOf(record models.AttendanceRecord, found bool) models.DayStatus {
	if !found {
		return models.DayNone
	}
	if record.IsHoliday {
		return models.DayHoliday
	}
	if len(record.Periods) == 0 {
		return models.DayNone
	}
	allPresent, allAbsent := true, true
	for _, s := range record.Periods {
		if s == models.Present {
			allAbsent = false
		} else {
			allPresent = false
		}
	}
	switch {
	case allPresent:
		return models.DayPresent
	case allAbsent:
		return models.DayAbsent
	default:
		return models.DayPartial
	}
}

// CalendarDay is one cell of the month view.
type CalendarDay struct {
	Date          string           `json:"date"`
	Weekday       models.Weekday   `json:"weekday"`
	Status        models.DayStatus `json:"status"`
	HolidayReason string           `json:"holidayReason,omitempty"`
}

// Month returns the status of every day of the given month.
func Month(records []models.AttendanceRecord, year int, month time.Month) []CalendarDay {
	ledger := NewLedger(records)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var days []CalendarDay
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := models.FormatDate(d)
		rec, ok := ledger.Get(date)
		day := CalendarDay{Date: date, Weekday: models.WeekdayOf(d), Status: StatusOf(rec, ok)}
		if ok && rec.IsHoliday {
			day.HolidayReason = rec.HolidayReason
		}
		days = append(days, day)
	}
	return days
}
