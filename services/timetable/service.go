// File: services/timetable/service.go
package timetable

import (
	"fmt"
	"sync"

	"attendly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the slice of the aggregate store the timetable service reads and
// writes. Mutations hold the lock across their read-modify-write.
type Store interface {
	sync.Locker
	Settings() (models.Settings, error)
	SaveSettings(models.Settings) error
	Subjects() ([]models.Subject, error)
	SaveSubjects([]models.Subject) error
	Timetable() (models.Timetable, error)
	SaveTimetable(models.Timetable) error
}

// DayIssues reports assignments that no longer fit after a settings change.
type DayIssues struct {
	Day    models.Weekday    `json:"day"`
	Notice string            `json:"notice,omitempty"`
	Errors map[string]string `json:"errors"`
}

// DefaultTimetableService edits the weekly assignment table through the conflict validator.
type DefaultTimetableService struct {
	Store  Store
	Logger *zap.Logger
}

// NewTimetableService wires a timetable service over store.
func NewTimetableService(store Store, logger *zap.Logger) *DefaultTimetableService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultTimetableService{Store: store, Logger: logger}
}

// Week returns the whole weekly assignment table.
func (s *DefaultTimetableService) Week() (models.Timetable, error) {
	return s.Store.Timetable()
}

// ListDay returns the assignments of one weekday.
func (s *DefaultTimetableService) ListDay(day models.Weekday) ([]models.ClassAssignment, error) {
	if !day.Valid() {
		return nil, ErrInvalidWeekday
	}
	week, err := s.Store.Timetable()
	if err != nil {
		return nil, err
	}
	return week.Day(day), nil
}

// Validate runs the conflict validator without saving, for live edits.
func (s *DefaultTimetableService) Validate(day models.Weekday, candidate models.ClassAssignment) error {
	if !day.Valid() {
		return ErrInvalidWeekday
	}
	settings, week, err := s.load()
	if err != nil {
		return err
	}
	return ValidateAssignment(candidate, week.Day(day), settings.TotalPeriods(day))
}

// IsDayFull reports whether every period of day is occupied.
func (s *DefaultTimetableService) IsDayFull(day models.Weekday) (bool, error) {
	settings, week, err := s.load()
	if err != nil {
		return false, err
	}
	return dayFull(settings.TotalPeriods(day), week[day]), nil
}

func dayFull(total int, entries []models.ClassAssignment) bool {
	return total > 0 && OccupiedPeriods(entries, total) == total
}

func (s *DefaultTimetableService) load() (models.Settings, models.Timetable, error) {
	settings, err := s.Store.Settings()
	if err != nil {
		return models.Settings{}, nil, err
	}
	week, err := s.Store.Timetable()
	if err != nil {
		return models.Settings{}, nil, err
	}
	return settings, week, nil
}

// AddAssignment validates and appends a new class on day. An empty id is generated.
func (s *DefaultTimetableService) AddAssignment(day models.Weekday, candidate models.ClassAssignment) (*models.ClassAssignment, error) {
	if !day.Valid() {
		return nil, ErrInvalidWeekday
	}
	s.Store.Lock()
	defer s.Store.Unlock()

	settings, week, err := s.load()
	if err != nil {
		return nil, err
	}
	total := settings.TotalPeriods(day)
	if total == 0 {
		return nil, ErrDayHoliday
	}
	if dayFull(total, week[day]) {
		return nil, ErrDayFull
	}

	week = week.Clone()
	if candidate.ID == "" {
		candidate.ID = "class-" + uuid.New().String()
	}
	for _, e := range week[day] {
		if e.ID == candidate.ID {
			return nil, ErrDuplicateAssignment
		}
	}
	candidate.Weekday = day
	if err := ValidateAssignment(candidate, week.Day(day), total); err != nil {
		return nil, err
	}

	week[day] = append(week[day], candidate)
	if err := s.Store.SaveTimetable(week); err != nil {
		return nil, err
	}
	s.Logger.Debug("class assignment added",
		zap.String("day", string(day)),
		zap.String("assignmentID", candidate.ID),
		zap.Int("start", candidate.StartPeriod),
		zap.Int("duration", candidate.Duration))
	return &candidate, nil
}

// UpdateAssignment replaces the assignment id on day after re-validating it
// against the rest of the day.
func (s *DefaultTimetableService) UpdateAssignment(day models.Weekday, id string, patch models.ClassAssignment) (*models.ClassAssignment, error) {
	if !day.Valid() {
		return nil, ErrInvalidWeekday
	}
	s.Store.Lock()
	defer s.Store.Unlock()

	settings, week, err := s.load()
	if err != nil {
		return nil, err
	}
	week = week.Clone()
	idx := indexOf(week[day], id)
	if idx < 0 {
		return nil, fmt.Errorf("%s on %s: %w", id, day, ErrAssignmentNotFound)
	}

	patch.ID = id
	patch.Weekday = day
	if err := ValidateAssignment(patch, week.Day(day), settings.TotalPeriods(day)); err != nil {
		return nil, err
	}

	week[day][idx] = patch
	if err := s.Store.SaveTimetable(week); err != nil {
		return nil, err
	}
	return &patch, nil
}

// DeleteAssignment removes the assignment id from day.
func (s *DefaultTimetableService) DeleteAssignment(day models.Weekday, id string) error {
	if !day.Valid() {
		return ErrInvalidWeekday
	}
	s.Store.Lock()
	defer s.Store.Unlock()

	week, err := s.Store.Timetable()
	if err != nil {
		return err
	}
	week = week.Clone()
	idx := indexOf(week[day], id)
	if idx < 0 {
		return fmt.Errorf("%s on %s: %w", id, day, ErrAssignmentNotFound)
	}
	week[day] = append(week[day][:idx], week[day][idx+1:]...)
	return s.Store.SaveTimetable(week)
}

// Issues re-validates a stored day against the current settings.
func (s *DefaultTimetableService) Issues(day models.Weekday) (*DayIssues, error) {
	if !day.Valid() {
		return nil, ErrInvalidWeekday
	}
	settings, week, err := s.load()
	if err != nil {
		return nil, err
	}
	issues := &DayIssues{Day: day, Errors: map[string]string{}}
	total := settings.TotalPeriods(day)
	entries := week.Day(day)
	if total == 0 || len(entries) == 0 {
		return issues, nil
	}
	for id, err := range ValidateDay(entries, total) {
		issues.Errors[id] = err.Error()
	}
	if len(issues.Errors) > 0 {
		issues.Notice = DayChangedNotice
	}
	return issues, nil
}

// Slots resolves the conducted periods of a weekday.
func (s *DefaultTimetableService) Slots(day models.Weekday) ([]models.PeriodSlot, error) {
	if !day.Valid() {
		return nil, ErrInvalidWeekday
	}
	settings, week, err := s.load()
	if err != nil {
		return nil, err
	}
	subjects, err := s.Store.Subjects()
	if err != nil {
		return nil, err
	}
	return ResolveWeekday(day, settings, week, subjects), nil
}

// SetupComplete gates timetable and attendance screens: at least one weekday
// with periods and at least one subject.
func (s *DefaultTimetableService) SetupComplete() (bool, error) {
	settings, err := s.Store.Settings()
	if err != nil {
		return false, err
	}
	subjects, err := s.Store.Subjects()
	if err != nil {
		return false, err
	}
	return settings.HasConfiguredDay() && len(subjects) > 0, nil
}

func indexOf(entries []models.ClassAssignment, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
