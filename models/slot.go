// File: models/slot.go
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotKey identifies one conducted period of one calendar date. It does not
// carry the assignment id, so keys written before a schedule edit may stop
// matching the slots resolved afterwards.
type SlotKey struct {
	Date        string
	Weekday     Weekday
	PeriodIndex int
}

// String encodes the key as persisted in AttendanceRecord.Periods,
// e.g. "2025-03-03-Mon-P2".
func (k SlotKey) String() string {
	return fmt.Sprintf("%s-%s-P%d", k.Date, k.Weekday, k.PeriodIndex)
}

// ParseSlotKey is the only decoder of persisted slot ids.
func ParseSlotKey(s string) (SlotKey, error) {
	// date (10 chars) + "-" + weekday (3 chars) + "-P" + index
	if len(s) < len(DateLayout)+1+3+3 {
		return SlotKey{}, fmt.Errorf("slot id %q too short", s)
	}
	date := s[:len(DateLayout)]
	if _, err := ParseDate(date); err != nil {
		return SlotKey{}, fmt.Errorf("slot id %q: %w", s, err)
	}
	rest := s[len(DateLayout):]
	if !strings.HasPrefix(rest, "-") {
		return SlotKey{}, fmt.Errorf("slot id %q: missing weekday separator", s)
	}
	day, idx, ok := strings.Cut(rest[1:], "-P")
	if !ok {
		return SlotKey{}, fmt.Errorf("slot id %q: missing period marker", s)
	}
	weekday := Weekday(day)
	if !weekday.Valid() {
		return SlotKey{}, fmt.Errorf("slot id %q: unknown weekday %q", s, day)
	}
	n, err := strconv.Atoi(idx)
	if err != nil || n < 1 {
		return SlotKey{}, fmt.Errorf("slot id %q: invalid period index %q", s, idx)
	}
	return SlotKey{Date: date, Weekday: weekday, PeriodIndex: n}, nil
}

// PeriodSlot is one conducted period resolved from the weekly template.
type PeriodSlot struct {
	PeriodIndex  int    `json:"periodIndex"`
	SubjectID    string `json:"subjectId"`
	SubjectName  string `json:"subjectName"`
	AssignmentID string `json:"assignmentId"`
}

// DatedSlot is a PeriodSlot bound to a specific calendar date.
type DatedSlot struct {
	PeriodSlot
	SlotID string `json:"slotId"`
}
