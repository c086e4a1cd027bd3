package attendance

import (
	"testing"
	"time"

	"attendly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, models.DayNone, StatusOf(models.AttendanceRecord{}, false))
	assert.Equal(t, models.DayHoliday, StatusOf(models.NewHolidayRecord("2025-03-03", ""), true))
	assert.Equal(t, models.DayNone, StatusOf(models.NewPeriodsRecord("2025-03-03", nil), true))
	assert.Equal(t, models.DayPresent, StatusOf(marks("2025-03-03", 3, 0), true))
	assert.Equal(t, models.DayAbsent, StatusOf(marks("2025-03-03", 0, 2), true))
	assert.Equal(t, models.DayPartial, StatusOf(marks("2025-03-03", 1, 1), true))
}

func TestMonth(t *testing.T) {
	records := []models.AttendanceRecord{
		marks("2025-02-03", 2, 0),
		models.NewHolidayRecord("2025-02-14", "Festival"),
	}
	days := Month(records, 2025, time.February)
	require.Len(t, days, 28)
	assert.Equal(t, "2025-02-01", days[0].Date)
	assert.Equal(t, models.Saturday, days[0].Weekday)
	assert.Equal(t, models.DayPresent, days[2].Status)
	assert.Equal(t, models.DayHoliday, days[13].Status)
	assert.Equal(t, "Festival", days[13].HolidayReason)
	assert.Equal(t, models.DayNone, days[27].Status)

	assert.Len(t, Month(nil, 2024, time.February), 29)
}
