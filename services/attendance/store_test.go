package attendance

import (
	"sync"

	"attendly/models"
)

type memStore struct {
	sync.Mutex
	settings models.Settings
	subjects []models.Subject
	week     models.Timetable
	records  []models.AttendanceRecord
	readErr  error
	saves    int
}

// mondayStore holds the six-period Monday with S1 on periods 1-2 and S2 on 4.
func mondayStore() *memStore {
	s := models.DefaultSettings()
	s.PerWeekday[models.Monday] = models.DayConfig{TotalPeriods: 6}
	return &memStore{
		settings: s,
		subjects: []models.Subject{
			{ID: "S1", Name: "Maths", Type: models.SubjectTheory},
			{ID: "S2", Name: "Physics", Type: models.SubjectLab},
		},
		week: models.Timetable{models.Monday: {
			{ID: "A", SubjectID: "S1", StartPeriod: 1, Duration: 2},
			{ID: "B", SubjectID: "S2", StartPeriod: 4, Duration: 1},
		}},
	}
}

func (m *memStore) Settings() (models.Settings, error)   { return m.settings, m.readErr }
func (m *memStore) Subjects() ([]models.Subject, error)  { return m.subjects, m.readErr }
func (m *memStore) Timetable() (models.Timetable, error) { return m.week, m.readErr }

func (m *memStore) Records() ([]models.AttendanceRecord, error) {
	return append([]models.AttendanceRecord(nil), m.records...), m.readErr
}

func (m *memStore) SaveRecords(records []models.AttendanceRecord) error {
	m.records = records
	m.saves++
	return nil
}
