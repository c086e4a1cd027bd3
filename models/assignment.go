// File: models/assignment.go
package models

import "math"

// ClassAssignment binds a subject to a contiguous period range on a weekday.
type ClassAssignment struct {
	ID          string  `json:"id" bson:"id"`
	Weekday     Weekday `json:"day,omitempty" bson:"day,omitempty"`
	SubjectID   string  `json:"subjectId" bson:"subjectId"`
	StartPeriod int     `json:"startPeriod" bson:"startPeriod"`
	Duration    int     `json:"duration" bson:"duration"`
}

// EndPeriod is the last period index occupied, inclusive. Out-of-range
// inputs saturate at the int bounds instead of wrapping.
func (a ClassAssignment) EndPeriod() int {
	switch {
	case a.Duration > 0 && a.StartPeriod > math.MaxInt-a.Duration+1:
		return math.MaxInt
	case a.Duration < 1 && a.StartPeriod < math.MinInt-a.Duration+1:
		return math.MinInt
	}
	return a.StartPeriod + a.Duration - 1
}

// Overlaps reports whether the closed ranges of a and b intersect.
func (a ClassAssignment) Overlaps(b ClassAssignment) bool {
	return a.StartPeriod <= b.EndPeriod() && a.EndPeriod() >= b.StartPeriod
}

// Timetable is the WeeklyAssignments aggregate.
type Timetable map[Weekday][]ClassAssignment

// Day returns a copy of the assignments of d with their Weekday set.
func (t Timetable) Day(d Weekday) []ClassAssignment {
	entries := t[d]
	out := make([]ClassAssignment, len(entries))
	for i, e := range entries {
		e.Weekday = d
		out[i] = e
	}
	return out
}

// Clone returns a deep copy so callers can edit a day without aliasing the stored slices.
func (t Timetable) Clone() Timetable {
	out := make(Timetable, len(t))
	for d, entries := range t {
		out[d] = append([]ClassAssignment(nil), entries...)
	}
	return out
}
