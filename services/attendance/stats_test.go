package attendance

import (
	"testing"

	"attendly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverallScenario(t *testing.T) {
	records := []models.AttendanceRecord{
		marks("2025-03-03", 2, 1),
		marks("2025-03-10", 2, 1),
		marks("2025-03-17", 2, 1),
		models.NewHolidayRecord("2025-03-24", "Exam break"),
	}
	stats := Overall(records)
	assert.Equal(t, 9, stats.Total)
	assert.Equal(t, 6, stats.Present)
	assert.Equal(t, 3, stats.Absent)
	assert.Equal(t, 67, stats.Percentage)
	assert.Equal(t, models.BandWarning, stats.Band)
	assert.Equal(t, stats.Total, stats.Present+stats.Absent)
}

func TestOverallEmptyAndHolidayOnly(t *testing.T) {
	assert.Equal(t, 0, Overall(nil).Percentage)

	holiday := models.AttendanceRecord{
		Date:      "2025-03-03",
		IsHoliday: true,
		Periods:   map[string]models.AttendanceStatus{"2025-03-03-Mon-P1": models.Present},
	}
	stats := Overall([]models.AttendanceRecord{holiday})
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Present)
	assert.Zero(t, stats.Absent)
}

func TestOverallIdempotentUpsert(t *testing.T) {
	rec := marks("2025-03-03", 2, 1)
	once := NewLedger(nil)
	once.Upsert(rec)
	twice := NewLedger(nil)
	twice.Upsert(rec)
	twice.Upsert(rec)
	assert.Equal(t, Overall(once.All()), Overall(twice.All()))
}

func TestPercentRounding(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 100, Percent(4, 4))
}

func TestPerSubjectAttribution(t *testing.T) {
	store := mondayStore()
	records := []models.AttendanceRecord{
		models.NewPeriodsRecord("2025-03-03", map[string]models.AttendanceStatus{
			"2025-03-03-Mon-P1": models.Present,
			"2025-03-03-Mon-P2": models.Absent,
			"2025-03-03-Mon-P4": models.Present,
			// period 3 is free now; attributed to nobody
			"2025-03-03-Mon-P3": models.Present,
			"garbage":           models.Present,
		}),
		models.NewHolidayRecord("2025-03-10", ""),
	}

	stats := PerSubject(records, store.week, store.subjects, store.settings)
	require.Len(t, stats, 2)

	assert.Equal(t, "Maths", stats[0].SubjectName)
	assert.Equal(t, 2, stats[0].Total)
	assert.Equal(t, 1, stats[0].Present)
	assert.Equal(t, 1, stats[0].Absent)
	assert.Equal(t, 50, stats[0].Percentage)
	assert.Equal(t, models.BandRisk, stats[0].Band)

	assert.Equal(t, "Physics", stats[1].SubjectName)
	assert.Equal(t, 1, stats[1].Total)
	assert.Equal(t, 100, stats[1].Percentage)
	assert.Equal(t, models.BandSafe, stats[1].Band)
}

func TestPerSubjectIgnoresKeysOfOtherDates(t *testing.T) {
	store := mondayStore()
	records := []models.AttendanceRecord{
		models.NewPeriodsRecord("2025-03-03", map[string]models.AttendanceStatus{
			"2025-03-03-Mon-P1": models.Present,
			"2025-03-03-Mon-P2": models.Present,
			"2025-03-03-Mon-P4": models.Absent,
			"2025-03-10-Mon-P1": models.Present,
			"2031-01-01-Wed-P2": models.Present,
		}),
	}

	stats := PerSubject(records, store.week, store.subjects, store.settings)
	require.Len(t, stats, 2)
	assert.Equal(t, "Maths", stats[0].SubjectName)
	assert.Equal(t, 2, stats[0].Total)
	assert.Equal(t, 2, stats[0].Present)
	assert.Equal(t, "Physics", stats[1].SubjectName)
	assert.Equal(t, 1, stats[1].Total)
	assert.Equal(t, 0, stats[1].Present)
}

func TestPerSubjectFollowsCurrentSchedule(t *testing.T) {
	store := mondayStore()
	records := []models.AttendanceRecord{
		models.NewPeriodsRecord("2025-03-03", map[string]models.AttendanceStatus{
			"2025-03-03-Mon-P4": models.Present,
		}),
	}
	store.week[models.Monday] = store.week[models.Monday][:1]

	assert.Empty(t, PerSubject(records, store.week, store.subjects, store.settings))
}
