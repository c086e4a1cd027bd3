package timetable

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Validation error kinds, reachable through errors.Is on a *ValidationError.
var (
	ErrInvalidSubject  = errors.New("InvalidSubject")
	ErrInvalidDuration = errors.New("InvalidDuration")
	ErrInvalidStart    = errors.New("InvalidStart")
	ErrExceedsDayLimit = errors.New("ExceedsDayLimit")
	ErrOverlapConflict = errors.New("OverlapConflict")
)

var (
	ErrInvalidWeekday      = errors.New("invalid weekday")
	ErrDayHoliday          = errors.New("This day has 0 periods (holiday). Update Settings to add periods.")
	ErrDayFull             = errors.New("All periods for this day are filled")
	ErrAssignmentNotFound  = errors.New("class assignment not found")
	ErrSubjectNotFound     = errors.New("subject not found")
	ErrDuplicateAssignment = errors.New("class assignment id already exists")
)

// DayChangedNotice is reported when a settings edit leaves classes that no longer fit.
const DayChangedNotice = "Day configuration changed. Some classes no longer fit; fix or delete them before saving."

// ValidationError is a rejected class assignment, carrying the limit or the
// conflicting range for display next to the edited row.
type ValidationError struct {
	Kind    error
	Message string

	MaxPeriod int

	ConflictID    string
	ConflictStart int
	ConflictEnd   int
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Code is the tagged name of the failure, e.g. "OverlapConflict".
func (e *ValidationError) Code() string {
	return e.Kind.Error()
}

// SettingsError lists every invalid field of a settings or subject edit.
type SettingsError struct {
	Fields map[string]string
}

func (e *SettingsError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "Please fix all errors before saving. " + strings.Join(parts, "; ")
}
