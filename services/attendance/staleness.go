package attendance

import (
	"sort"

	"attendly/models"
)

// StaleNotice lists the disagreement between the slot ids recorded for a date
// and the slots the current schedule resolves for it. It is informational:
// nothing is repaired or migrated.
type StaleNotice struct {
	Date       string   `json:"date"`
	Orphaned   []string `json:"orphaned,omitempty"`
	Unrecorded []string `json:"unrecorded,omitempty"`
	Message    string   `json:"message"`
}

const staleMessage = "The timetable for this day changed after attendance was recorded. Some periods may no longer match."

// DetectStale compares a non-holiday record with the currently resolved slots.
// It returns nil when the two sets agree, or when there is nothing to compare.
func DetectStale(record models.AttendanceRecord, resolved []models.DatedSlot) *StaleNotice {
	if record.IsHoliday || len(record.Periods) == 0 {
		return nil
	}
	current := make(map[string]struct{}, len(resolved))
	for _, s := range resolved {
		current[s.SlotID] = struct{}{}
	}

	notice := &StaleNotice{Date: record.Date, Message: staleMessage}
	for id := range record.Periods {
		if _, ok := current[id]; !ok {
			notice.Orphaned = append(notice.Orphaned, id)
		}
	}
	for id := range current {
		if _, ok := record.Periods[id]; !ok {
			notice.Unrecorded = append(notice.Unrecorded, id)
		}
	}
	if len(notice.Orphaned) == 0 && len(notice.Unrecorded) == 0 {
		return nil
	}
	sort.Strings(notice.Orphaned)
	sort.Strings(notice.Unrecorded)
	return notice
}
