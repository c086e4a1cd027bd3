// File: services/attendance/stats.go
package attendance

import (
	"math"
	"sort"

	"attendly/models"
	"attendly/services/timetable"
)

// Percent rounds present/total to a whole percentage, half away from zero.
// A zero total yields zero.
func Percent(present, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

// Overall folds every non-holiday record into one total. Holidays contribute
// nothing in either direction.
func Overall(records []models.AttendanceRecord) models.AttendanceStats {
	var stats models.AttendanceStats
	for _, rec := range records {
		if rec.IsHoliday {
			continue
		}
		for _, status := range rec.Periods {
			stats.Total++
			if status == models.Present {
				stats.Present++
			}
		}
	}
	stats.Absent = stats.Total - stats.Present
	stats.Percentage = Percent(stats.Present, stats.Total)
	stats.Band = BandFor(stats.Percentage)
	return stats
}

// PerSubject attributes each recorded slot to the subject currently resolved
// for its period index on that date's weekday. Slots whose id cannot be
// decoded or whose index resolves to no subject are dropped. Only subjects
// with at least one attributed slot are returned, sorted by name.
func PerSubject(records []models.AttendanceRecord, week models.Timetable, subjects []models.Subject, settings models.Settings) []models.SubjectStats {
	byDay := make(map[models.Weekday]map[int]models.PeriodSlot, len(models.Weekdays))
	lookup := func(day models.Weekday) map[int]models.PeriodSlot {
		if m, ok := byDay[day]; ok {
			return m
		}
		m := make(map[int]models.PeriodSlot)
		for _, slot := range timetable.ResolveWeekday(day, settings, week, subjects) {
			m[slot.PeriodIndex] = slot
		}
		byDay[day] = m
		return m
	}

	acc := make(map[string]*models.SubjectStats)
	for _, rec := range records {
		if rec.IsHoliday {
			continue
		}
		day, err := models.WeekdayOfDate(rec.Date)
		if err != nil {
			continue
		}
		slots := lookup(day)
		for slotID, status := range rec.Periods {
			key, err := models.ParseSlotKey(slotID)
			if err != nil || key.Date != rec.Date || key.Weekday != day {
				continue
			}
			slot, ok := slots[key.PeriodIndex]
			if !ok {
				continue
			}
			st, ok := acc[slot.SubjectID]
			if !ok {
				st = &models.SubjectStats{SubjectID: slot.SubjectID, SubjectName: slot.SubjectName}
				acc[slot.SubjectID] = st
			}
			st.Total++
			if status == models.Present {
				st.Present++
			} else {
				st.Absent++
			}
		}
	}

	out := make([]models.SubjectStats, 0, len(acc))
	for _, st := range acc {
		if st.Total == 0 {
			continue
		}
		st.Percentage = Percent(st.Present, st.Total)
		st.Band = BandFor(st.Percentage)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubjectName == out[j].SubjectName {
			return out[i].SubjectID < out[j].SubjectID
		}
		return out[i].SubjectName < out[j].SubjectName
	})
	return out
}
