// File: services/attendance/ledger.go
package attendance

import (
	"attendly/models"
)

// Ledger holds at most one record per calendar date. It is schedule-agnostic:
// it never checks recorded slot ids against the resolved timetable.
type Ledger struct {
	records []models.AttendanceRecord
}

// NewLedger wraps a persisted record list. The slice is copied.
func NewLedger(records []models.AttendanceRecord) *Ledger {
	return &Ledger{records: append([]models.AttendanceRecord(nil), records...)}
}

// Upsert replaces the record of record.Date wholesale or appends it.
func (l *Ledger) Upsert(record models.AttendanceRecord) {
	if i := l.indexOf(record.Date); i >= 0 {
		l.records[i] = record
		return
	}
	l.records = append(l.records, record)
}

// MarkHoliday replaces any record of date with a holiday marker, discarding
// periods recorded earlier.
func (l *Ledger) MarkHoliday(date, reason string) models.AttendanceRecord {
	rec := models.NewHolidayRecord(date, reason)
	l.Upsert(rec)
	return rec
}

// UnmarkHoliday deletes the record of date outright, leaving no record.
// It reports whether a record was removed.
func (l *Ledger) UnmarkHoliday(date string) bool {
	i := l.indexOf(date)
	if i < 0 {
		return false
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	return true
}

// Get returns the record of date, if any.
func (l *Ledger) Get(date string) (models.AttendanceRecord, bool) {
	if i := l.indexOf(date); i >= 0 {
		return l.records[i], true
	}
	return models.AttendanceRecord{}, false
}

// IsHoliday reports whether date carries a holiday marker.
func (l *Ledger) IsHoliday(date string) bool {
	rec, ok := l.Get(date)
	return ok && rec.IsHoliday
}

// HolidayReason returns the reason of a holiday marker on date.
func (l *Ledger) HolidayReason(date string) (string, bool) {
	rec, ok := l.Get(date)
	if !ok || !rec.IsHoliday {
		return "", false
	}
	return rec.HolidayReason, true
}

// All returns a snapshot of every record in storage order.
func (l *Ledger) All() []models.AttendanceRecord {
	return append([]models.AttendanceRecord(nil), l.records...)
}

func (l *Ledger) indexOf(date string) int {
	for i := range l.records {
		if l.records[i].Date == date {
			return i
		}
	}
	return -1
}
