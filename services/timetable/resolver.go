// File: services/timetable/resolver.go
package timetable

import (
	"attendly/models"
)

// ResolveDay turns a weekday's assignments into its conducted period slots in
// ascending period order. Free periods are not emitted. Indices outside
// [1, totalPeriods] are ignored and stale overlaps resolve last-write-wins, so
// persisted data from looser schedule edits never fails to resolve.
func ResolveDay(totalPeriods int, entries []models.ClassAssignment, subjects []models.Subject) []models.PeriodSlot {
	subjectByID := models.SubjectIndex(subjects)

	occupied := make(map[int]models.PeriodSlot, totalPeriods)
	for _, entry := range entries {
		name := models.UnknownSubjectName
		if subj, ok := subjectByID[entry.SubjectID]; ok {
			name = subj.Name
		}
		first, last := clampRange(entry, totalPeriods)
		for p := first; p <= last; p++ {
			occupied[p] = models.PeriodSlot{
				PeriodIndex:  p,
				SubjectID:    entry.SubjectID,
				SubjectName:  name,
				AssignmentID: entry.ID,
			}
		}
	}

	slots := make([]models.PeriodSlot, 0, len(occupied))
	for p := 1; p <= totalPeriods; p++ {
		if slot, ok := occupied[p]; ok {
			slots = append(slots, slot)
		}
	}
	return slots
}

// ResolveWeekday resolves the template used by every date falling on day.
func ResolveWeekday(day models.Weekday, settings models.Settings, week models.Timetable, subjects []models.Subject) []models.PeriodSlot {
	return ResolveDay(settings.TotalPeriods(day), week[day], subjects)
}

// SlotsForDate resolves the conducted periods of a calendar date and binds
// each to its slot id.
func SlotsForDate(date string, settings models.Settings, week models.Timetable, subjects []models.Subject) ([]models.DatedSlot, error) {
	day, err := models.WeekdayOfDate(date)
	if err != nil {
		return nil, err
	}
	slots := ResolveWeekday(day, settings, week, subjects)
	dated := make([]models.DatedSlot, len(slots))
	for i, s := range slots {
		dated[i] = models.DatedSlot{
			PeriodSlot: s,
			SlotID:     models.SlotKey{Date: date, Weekday: day, PeriodIndex: s.PeriodIndex}.String(),
		}
	}
	return dated, nil
}

// OccupiedPeriods counts the distinct in-range period indices covered by entries.
func OccupiedPeriods(entries []models.ClassAssignment, totalPeriods int) int {
	seen := make(map[int]struct{})
	for _, e := range entries {
		first, last := clampRange(e, totalPeriods)
		for p := first; p <= last; p++ {
			seen[p] = struct{}{}
		}
	}
	return len(seen)
}

// clampRange intersects the occupied range of e with [1, totalPeriods].
func clampRange(e models.ClassAssignment, totalPeriods int) (int, int) {
	return max(e.StartPeriod, 1), min(e.EndPeriod(), totalPeriods)
}
