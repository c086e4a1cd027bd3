package timetable

import (
	"errors"
	"strings"
	"testing"

	"attendly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettingsValidation(t *testing.T) {
	svc := NewRegistryService(newMemStore(nil), nil)

	_, err := svc.UpdateSettings(models.Settings{
		PeriodDurationMinutes: 0,
		PerWeekday:            map[models.Weekday]models.DayConfig{models.Monday: {TotalPeriods: 15}},
	})
	var serr *SettingsError
	require.True(t, errors.As(err, &serr))
	assert.Len(t, serr.Fields, 2)
	assert.True(t, strings.HasPrefix(serr.Error(), "Please fix all errors before saving."))

	_, err = svc.UpdateSettings(models.Settings{
		PeriodDurationMinutes: 45,
		PerWeekday:            map[models.Weekday]models.DayConfig{"Holiday": {TotalPeriods: 1}},
	})
	require.True(t, errors.As(err, &serr))
}

func TestUpdateSettingsFillsMissingDays(t *testing.T) {
	store := newMemStore(nil)
	svc := NewRegistryService(store, nil)

	saved, err := svc.UpdateSettings(models.Settings{
		PeriodDurationMinutes: 50,
		PerWeekday:            map[models.Weekday]models.DayConfig{models.Monday: {TotalPeriods: 6}},
	})
	require.NoError(t, err)
	assert.Len(t, saved.PerWeekday, 7)
	assert.Equal(t, 6, store.settings.TotalPeriods(models.Monday))
	assert.Equal(t, 0, store.settings.TotalPeriods(models.Sunday))
	assert.Equal(t, 50, store.settings.PeriodDurationMinutes)
}

func TestSubjectRegistry(t *testing.T) {
	store := newMemStore(nil)
	svc := NewRegistryService(store, nil)

	subj, err := svc.AddSubject(models.Subject{Name: "  Chemistry "})
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", subj.Name)
	assert.Equal(t, models.SubjectTheory, subj.Type)
	assert.True(t, strings.HasPrefix(subj.ID, "subject-"))

	_, err = svc.AddSubject(models.Subject{Name: "   "})
	var serr *SettingsError
	assert.True(t, errors.As(err, &serr))

	_, err = svc.AddSubject(models.Subject{ID: subj.ID, Name: "Dup"})
	assert.True(t, errors.As(err, &serr))

	updated, err := svc.UpdateSubject(subj.ID, models.Subject{Type: models.SubjectLab})
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", updated.Name)
	assert.Equal(t, models.SubjectLab, updated.Type)

	_, err = svc.UpdateSubject("nope", models.Subject{Name: "X"})
	assert.ErrorIs(t, err, ErrSubjectNotFound)

	require.NoError(t, svc.DeleteSubject(subj.ID))
	remaining, err := svc.Subjects()
	require.NoError(t, err)
	assert.Empty(t, remaining)
	assert.ErrorIs(t, svc.DeleteSubject(subj.ID), ErrSubjectNotFound)
}

func TestReplaceSubjectsReportsEveryBadRow(t *testing.T) {
	svc := NewRegistryService(newMemStore(nil), nil)

	_, err := svc.ReplaceSubjects([]models.Subject{
		{ID: "s1", Name: "Maths"},
		{ID: "s1", Name: "Again"},
		{ID: "s3", Name: "Art", Type: "studio"},
	})
	var serr *SettingsError
	require.True(t, errors.As(err, &serr))
	assert.Contains(t, serr.Fields, "subjects[1].id")
	assert.Contains(t, serr.Fields, "subjects[2].Type")

	saved, err := svc.ReplaceSubjects([]models.Subject{{ID: "s1", Name: "Maths"}, {Name: "Lab", Type: models.SubjectLab}})
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}
