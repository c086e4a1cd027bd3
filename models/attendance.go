// File: models/attendance.go
package models

import "fmt"

// AttendanceStatus is the mark recorded for a single conducted period.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

// DefaultHolidayReason is stored when a holiday is marked without a reason.
const DefaultHolidayReason = "Holiday"

// Valid reports whether s is present or absent.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent:
		return true
	}
	return false
}

// AttendanceRecord is the ledger entry of one calendar date: either a holiday
// marker or the per-slot marks of that date.
type AttendanceRecord struct {
	Date          string                      `json:"date" bson:"date"`
	IsHoliday     bool                        `json:"isHoliday" bson:"isHoliday"`
	HolidayReason string                      `json:"holidayReason,omitempty" bson:"holidayReason,omitempty"`
	Periods       map[string]AttendanceStatus `json:"periods,omitempty" bson:"periods,omitempty"`
}

// NewHolidayRecord builds a holiday marker for date.
func NewHolidayRecord(date, reason string) AttendanceRecord {
	if reason == "" {
		reason = DefaultHolidayReason
	}
	return AttendanceRecord{Date: date, IsHoliday: true, HolidayReason: reason}
}

// NewPeriodsRecord builds a non-holiday record from the given marks.
func NewPeriodsRecord(date string, periods map[string]AttendanceStatus) AttendanceRecord {
	cp := make(map[string]AttendanceStatus, len(periods))
	for k, v := range periods {
		cp[k] = v
	}
	return AttendanceRecord{Date: date, Periods: cp}
}

// Validate checks the date key and every mark of a non-holiday record.
func (r AttendanceRecord) Validate() error {
	if _, err := ParseDate(r.Date); err != nil {
		return err
	}
	if r.IsHoliday {
		return nil
	}
	for slotID, status := range r.Periods {
		if !status.Valid() {
			return fmt.Errorf("slot %s: invalid status %q", slotID, status)
		}
	}
	return nil
}

// DayStatus summarizes a date for calendar display.
type DayStatus string

const (
	DayNone    DayStatus = "none"
	DayHoliday DayStatus = "holiday"
	DayPresent DayStatus = "present"
	DayAbsent  DayStatus = "absent"
	DayPartial DayStatus = "partial"
)
