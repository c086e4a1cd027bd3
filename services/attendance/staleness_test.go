package attendance

import (
	"testing"

	"attendly/models"
	"attendly/services/timetable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectStale(t *testing.T) {
	store := mondayStore()
	slots, err := timetable.SlotsForDate("2025-03-03", store.settings, store.week, store.subjects)
	require.NoError(t, err)

	matching := models.NewPeriodsRecord("2025-03-03", map[string]models.AttendanceStatus{
		"2025-03-03-Mon-P1": models.Present,
		"2025-03-03-Mon-P2": models.Present,
		"2025-03-03-Mon-P4": models.Absent,
	})
	assert.Nil(t, DetectStale(matching, slots))
	assert.Nil(t, DetectStale(models.NewHolidayRecord("2025-03-03", ""), slots))

	drifted := models.NewPeriodsRecord("2025-03-03", map[string]models.AttendanceStatus{
		"2025-03-03-Mon-P1": models.Present,
		"2025-03-03-Mon-P3": models.Present,
	})
	notice := DetectStale(drifted, slots)
	require.NotNil(t, notice)
	assert.Equal(t, []string{"2025-03-03-Mon-P3"}, notice.Orphaned)
	assert.Equal(t, []string{"2025-03-03-Mon-P2", "2025-03-03-Mon-P4"}, notice.Unrecorded)
}
