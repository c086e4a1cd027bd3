// File: services/timetable/validator.go
package timetable

import (
	"fmt"

	"attendly/models"
)

// ValidateAssignment checks a candidate against the other assignments of the
// same weekday. Checks run in a fixed order and the first failure wins. The
// candidate itself is skipped in the overlap pass by id.
func ValidateAssignment(candidate models.ClassAssignment, existing []models.ClassAssignment, totalPeriods int) error {
	if candidate.SubjectID == "" {
		return &ValidationError{Kind: ErrInvalidSubject, Message: "Please select a subject."}
	}
	if candidate.Duration < 1 {
		return &ValidationError{Kind: ErrInvalidDuration, Message: "Duration must be at least 1 period."}
	}
	if candidate.StartPeriod < 1 {
		return &ValidationError{Kind: ErrInvalidStart, Message: "Start period is required."}
	}
	// Compared without computing the end so huge durations cannot wrap past the limit.
	if candidate.StartPeriod > totalPeriods || candidate.Duration > totalPeriods-candidate.StartPeriod+1 {
		return &ValidationError{
			Kind:      ErrExceedsDayLimit,
			Message:   fmt.Sprintf("This class exceeds the day limit (max period %d).", totalPeriods),
			MaxPeriod: totalPeriods,
		}
	}

	for _, other := range existing {
		if other.ID == candidate.ID {
			continue
		}
		if candidate.Overlaps(other) {
			return &ValidationError{
				Kind: ErrOverlapConflict,
				Message: fmt.Sprintf(
					"This class overlaps with another class scheduled for Period %d–%d. Change the start period or duration.",
					other.StartPeriod, other.EndPeriod(),
				),
				ConflictID:    other.ID,
				ConflictStart: other.StartPeriod,
				ConflictEnd:   other.EndPeriod(),
			}
		}
	}
	return nil
}

// ValidateDay re-checks every assignment of a weekday against the others,
// keyed by assignment id. An empty map means the day is consistent.
func ValidateDay(entries []models.ClassAssignment, totalPeriods int) map[string]error {
	failures := make(map[string]error)
	for _, e := range entries {
		if err := ValidateAssignment(e, entries, totalPeriods); err != nil {
			failures[e.ID] = err
		}
	}
	return failures
}
