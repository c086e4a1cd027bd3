package attendance

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	kvRepo "attendly/database/repository/kv"
	localRepo "attendly/database/repository/local"
	"attendly/models"
	"attendly/services/datasync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequiresEveryResolvedPeriod(t *testing.T) {
	store := mondayStore()
	svc := NewAttendanceService(store, nil)

	_, err := svc.Submit("2025-03-03", map[string]models.AttendanceStatus{
		"2025-03-03-Mon-P1": models.Present,
	})
	assert.ErrorIs(t, err, ErrIncompleteMarks)
	assert.Empty(t, store.records)

	_, err = svc.Submit("2025-03-03", map[string]models.AttendanceStatus{
		"2025-03-03-Mon-P1": "late",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Submit("2025-03-04", map[string]models.AttendanceStatus{})
	assert.ErrorIs(t, err, ErrNoPeriods)

	_, err = svc.Submit("not-a-date", nil)
	assert.ErrorIs(t, err, models.ErrInvalidDate)

	res, err := svc.Submit("2025-03-03", map[string]models.AttendanceStatus{
		"2025-03-03-Mon-P1": models.Present,
		"2025-03-03-Mon-P2": models.Present,
		"2025-03-03-Mon-P4": models.Absent,
	})
	require.NoError(t, err)
	assert.Nil(t, res.Stale)
	assert.Equal(t, 3, res.Stats.Total)
	assert.Equal(t, 67, res.Stats.Percentage)
	require.Len(t, store.records, 1)
}

func TestDayViewOverlaysMarksAndStaleness(t *testing.T) {
	store := mondayStore()
	store.records = []models.AttendanceRecord{
		models.NewPeriodsRecord("2025-03-03", map[string]models.AttendanceStatus{
			"2025-03-03-Mon-P1": models.Present,
			"2025-03-03-Mon-P2": models.Present,
			"2025-03-03-Mon-P4": models.Present,
		}),
	}
	svc := NewAttendanceService(store, nil)

	view, err := svc.Day("2025-03-03")
	require.NoError(t, err)
	assert.Equal(t, models.Monday, view.Weekday)
	assert.Equal(t, 6, view.TotalPeriods)
	assert.Len(t, view.Slots, 3)
	assert.Equal(t, models.DayPresent, view.Status)
	assert.Nil(t, view.Stale)

	store.week[models.Monday] = append(store.week[models.Monday],
		models.ClassAssignment{ID: "C", SubjectID: "S2", StartPeriod: 5, Duration: 1})
	view, err = svc.Day("2025-03-03")
	require.NoError(t, err)
	require.NotNil(t, view.Stale)
	assert.Equal(t, []string{"2025-03-03-Mon-P5"}, view.Stale.Unrecorded)
}

func TestHolidayLifecycle(t *testing.T) {
	store := mondayStore()
	store.records = []models.AttendanceRecord{marks("2025-03-03", 2, 1)}
	svc := NewAttendanceService(store, nil)

	rec, err := svc.MarkHoliday("2025-03-03", "Rain day")
	require.NoError(t, err)
	assert.Equal(t, "Rain day", rec.HolidayReason)

	view, err := svc.Day("2025-03-03")
	require.NoError(t, err)
	assert.True(t, view.IsHoliday)
	assert.Empty(t, view.Slots)
	overall, err := svc.Overall()
	require.NoError(t, err)
	assert.Zero(t, overall.Total)

	require.NoError(t, svc.UnmarkHoliday("2025-03-03"))
	records, err := svc.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.ErrorIs(t, svc.UnmarkHoliday("2025-03-03"), ErrNotHoliday)
}

func TestServicePredictUsesLedger(t *testing.T) {
	store := mondayStore()
	for _, d := range []string{"2025-03-03", "2025-03-10", "2025-03-17"} {
		store.records = append(store.records, marks(d, 2, 1))
	}
	svc := NewAttendanceService(store, nil)

	p, err := svc.Predict(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 75, p.Percentage)
	assert.Equal(t, models.BandSafe, p.Status)
}

func TestSubmitRejectsSlotsOfOtherDates(t *testing.T) {
	store := mondayStore()
	svc := NewAttendanceService(store, nil)

	for _, foreign := range []string{"2025-03-10-Mon-P1", "2031-01-01-Wed-P2", "2025-03-03-Tue-P1", "extra"} {
		_, err := svc.Submit("2025-03-03", map[string]models.AttendanceStatus{
			"2025-03-03-Mon-P1": models.Present,
			"2025-03-03-Mon-P2": models.Present,
			"2025-03-03-Mon-P4": models.Absent,
			foreign:             models.Present,
		})
		assert.ErrorIs(t, err, ErrInvalidSlot, foreign)
	}
	assert.Empty(t, store.records)
	assert.Zero(t, store.saves)
}

func TestMutationsAbortWhenLedgerUnreadable(t *testing.T) {
	store := mondayStore()
	store.records = []models.AttendanceRecord{marks("2025-03-10", 2, 1)}
	store.readErr = errors.New("disk gone")
	svc := NewAttendanceService(store, nil)

	_, err := svc.MarkHoliday("2025-03-03", "")
	assert.ErrorIs(t, err, store.readErr)
	_, err = svc.Submit("2025-03-03", map[string]models.AttendanceStatus{
		"2025-03-03-Mon-P1": models.Present,
		"2025-03-03-Mon-P2": models.Present,
		"2025-03-03-Mon-P4": models.Present,
	})
	assert.ErrorIs(t, err, store.readErr)
	assert.ErrorIs(t, svc.Upsert(marks("2025-03-17", 1, 0)), store.readErr)
	_, err = svc.Overall()
	assert.ErrorIs(t, err, store.readErr)

	assert.Zero(t, store.saves)
	assert.Len(t, store.records, 1)
}

func TestConcurrentHolidaysAllLand(t *testing.T) {
	kv := kvRepo.NewMemoryStore()
	coord := datasync.NewCoordinator("u1", localRepo.NewLocalStore(kv, datasync.LocalPrefix("u1")), nil, nil)
	svc := NewAttendanceService(coord, nil)

	const days = 28
	var wg sync.WaitGroup
	for i := 1; i <= days; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			_, err := svc.MarkHoliday(fmt.Sprintf("2025-02-%02d", day), "")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := svc.Records()
	require.NoError(t, err)
	assert.Len(t, records, days)
}
