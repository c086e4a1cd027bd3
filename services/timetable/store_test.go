package timetable

import (
	"sync"

	"attendly/models"
)

type memStore struct {
	sync.Mutex
	settings models.Settings
	subjects []models.Subject
	week     models.Timetable
	saves    int
	readErr  error
	saveErr  error
}

func newMemStore(perDay map[models.Weekday]int, subjects ...models.Subject) *memStore {
	s := models.DefaultSettings()
	for d, n := range perDay {
		s.PerWeekday[d] = models.DayConfig{TotalPeriods: n}
	}
	return &memStore{settings: s, subjects: subjects, week: models.Timetable{}}
}

func (m *memStore) Settings() (models.Settings, error) { return m.settings, m.readErr }

func (m *memStore) SaveSettings(s models.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = s
	m.saves++
	return nil
}

func (m *memStore) Subjects() ([]models.Subject, error) {
	return append([]models.Subject(nil), m.subjects...), m.readErr
}

func (m *memStore) SaveSubjects(list []models.Subject) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.subjects = list
	m.saves++
	return nil
}

func (m *memStore) Timetable() (models.Timetable, error) { return m.week.Clone(), m.readErr }

func (m *memStore) SaveTimetable(week models.Timetable) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.week = week
	m.saves++
	return nil
}
