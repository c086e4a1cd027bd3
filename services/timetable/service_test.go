package timetable

import (
	"errors"
	"strings"
	"testing"

	"attendly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAssignmentGates(t *testing.T) {
	store := newMemStore(map[models.Weekday]int{models.Monday: 3})
	svc := NewTimetableService(store, nil)

	_, err := svc.AddAssignment(models.Tuesday, models.ClassAssignment{SubjectID: "S1", StartPeriod: 1, Duration: 1})
	assert.ErrorIs(t, err, ErrDayHoliday)

	_, err = svc.AddAssignment("Xyz", models.ClassAssignment{SubjectID: "S1", StartPeriod: 1, Duration: 1})
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	created, err := svc.AddAssignment(models.Monday, models.ClassAssignment{SubjectID: "S1", StartPeriod: 1, Duration: 3})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "class-"))
	assert.Equal(t, models.Monday, created.Weekday)
	full, err := svc.IsDayFull(models.Monday)
	require.NoError(t, err)
	assert.True(t, full)

	_, err = svc.AddAssignment(models.Monday, models.ClassAssignment{SubjectID: "S2", StartPeriod: 1, Duration: 1})
	assert.ErrorIs(t, err, ErrDayFull)
}

func TestAddAssignmentRejectsOverlapWithoutSaving(t *testing.T) {
	store := newMemStore(map[models.Weekday]int{models.Monday: 6})
	store.week = models.Timetable{models.Monday: {classA, classB}}
	svc := NewTimetableService(store, nil)

	_, err := svc.AddAssignment(models.Monday, models.ClassAssignment{SubjectID: "S3", StartPeriod: 3, Duration: 2})
	assert.ErrorIs(t, err, ErrOverlapConflict)
	assert.Equal(t, 0, store.saves)

	_, err = svc.AddAssignment(models.Monday, models.ClassAssignment{ID: "A", SubjectID: "S3", StartPeriod: 5, Duration: 1})
	assert.ErrorIs(t, err, ErrDuplicateAssignment)
}

func TestUpdateAndDeleteAssignment(t *testing.T) {
	store := newMemStore(map[models.Weekday]int{models.Monday: 6})
	store.week = models.Timetable{models.Monday: {classA, classB}}
	svc := NewTimetableService(store, nil)

	_, err := svc.UpdateAssignment(models.Monday, "A", models.ClassAssignment{SubjectID: "S1", StartPeriod: 1, Duration: 4})
	assert.ErrorIs(t, err, ErrOverlapConflict)

	updated, err := svc.UpdateAssignment(models.Monday, "A", models.ClassAssignment{SubjectID: "S1", StartPeriod: 1, Duration: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.EndPeriod())

	_, err = svc.UpdateAssignment(models.Monday, "missing", classA)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)

	require.NoError(t, svc.DeleteAssignment(models.Monday, "B"))
	entries, err := svc.ListDay(models.Monday)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].ID)

	assert.ErrorIs(t, svc.DeleteAssignment(models.Monday, "B"), ErrAssignmentNotFound)
}

func TestIssuesAfterSettingsShrink(t *testing.T) {
	store := newMemStore(map[models.Weekday]int{models.Monday: 6})
	store.week = models.Timetable{models.Monday: {classA, classB}}
	svc := NewTimetableService(store, nil)

	issues, err := svc.Issues(models.Monday)
	require.NoError(t, err)
	assert.Empty(t, issues.Errors)
	assert.Empty(t, issues.Notice)

	store.settings.PerWeekday[models.Monday] = models.DayConfig{TotalPeriods: 3}
	issues, err = svc.Issues(models.Monday)
	require.NoError(t, err)
	assert.Equal(t, DayChangedNotice, issues.Notice)
	assert.Contains(t, issues.Errors["B"], "max period 3")
}

func TestSetupComplete(t *testing.T) {
	store := newMemStore(nil)
	svc := NewTimetableService(store, nil)
	assertSetup := func(want bool) {
		t.Helper()
		done, err := svc.SetupComplete()
		require.NoError(t, err)
		assert.Equal(t, want, done)
	}
	assertSetup(false)

	store.settings.PerWeekday[models.Friday] = models.DayConfig{TotalPeriods: 2}
	assertSetup(false)

	store.subjects = []models.Subject{{ID: "S1", Name: "Maths", Type: models.SubjectTheory}}
	assertSetup(true)
}

func TestMutationsAbortWhenStoreUnreadable(t *testing.T) {
	store := newMemStore(map[models.Weekday]int{models.Monday: 6})
	store.week = models.Timetable{models.Monday: {classA}}
	store.readErr = errors.New("disk gone")
	svc := NewTimetableService(store, nil)

	_, err := svc.AddAssignment(models.Monday, models.ClassAssignment{SubjectID: "S2", StartPeriod: 5, Duration: 1})
	assert.ErrorIs(t, err, store.readErr)
	_, err = svc.UpdateAssignment(models.Monday, "A", classA)
	assert.ErrorIs(t, err, store.readErr)
	assert.ErrorIs(t, svc.DeleteAssignment(models.Monday, "A"), store.readErr)
	_, err = svc.Week()
	assert.ErrorIs(t, err, store.readErr)
	assert.Equal(t, 0, store.saves)
}

func TestAddAssignmentSurfacesSaveFailure(t *testing.T) {
	store := newMemStore(map[models.Weekday]int{models.Monday: 6})
	store.saveErr = errors.New("disk full")
	svc := NewTimetableService(store, nil)

	_, err := svc.AddAssignment(models.Monday, models.ClassAssignment{SubjectID: "S1", StartPeriod: 1, Duration: 1})
	assert.ErrorIs(t, err, store.saveErr)
	assert.Empty(t, store.week[models.Monday])
}
