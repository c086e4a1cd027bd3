// File: services/attendance/service.go
package attendance

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"attendly/models"
	"attendly/services/timetable"

	"go.uber.org/zap"
)

var (
	ErrIncompleteMarks = errors.New("Please mark all periods before saving")
	ErrNoPeriods       = errors.New("no conducted periods are scheduled for this date")
	ErrInvalidStatus   = errors.New("status must be present or absent")
	ErrNotHoliday      = errors.New("date is not marked as a holiday")
	ErrInvalidSlot     = errors.New("slot id does not belong to this date")
)

// Store is the slice of the aggregate store the attendance service needs.
// Ledger mutations hold the lock across their read-modify-write.
type Store interface {
	sync.Locker
	Settings() (models.Settings, error)
	Subjects() ([]models.Subject, error)
	Timetable() (models.Timetable, error)
	Records() ([]models.AttendanceRecord, error)
	SaveRecords([]models.AttendanceRecord) error
}

// DayView is everything needed to mark one calendar date.
type DayView struct {
	Date          string                             `json:"date"`
	Weekday       models.Weekday                     `json:"weekday"`
	TotalPeriods  int                                `json:"totalPeriods"`
	IsHoliday     bool                               `json:"isHoliday"`
	HolidayReason string                             `json:"holidayReason,omitempty"`
	Slots         []models.DatedSlot                 `json:"slots"`
	Marks         map[string]models.AttendanceStatus `json:"marks"`
	Status        models.DayStatus                   `json:"status"`
	Stale         *StaleNotice                       `json:"staleNotice,omitempty"`
}

// SubmitResult is the saved record plus any staleness notice for it.
type SubmitResult struct {
	Record models.AttendanceRecord `json:"record"`
	Stale  *StaleNotice            `json:"staleNotice,omitempty"`
	Stats  models.AttendanceStats  `json:"stats"`
}

// DefaultAttendanceService marks dates and derives statistics from the ledger.
type DefaultAttendanceService struct {
	Store  Store
	Logger *zap.Logger
}

// NewAttendanceService wires an attendance service over store.
func NewAttendanceService(store Store, logger *zap.Logger) *DefaultAttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAttendanceService{Store: store, Logger: logger}
}

// Records returns every ledger record, in storage order.
func (s *DefaultAttendanceService) Records() ([]models.AttendanceRecord, error) {
	records, err := s.Store.Records()
	if err != nil {
		return nil, err
	}
	return NewLedger(records).All(), nil
}

// Day resolves the slots of date and overlays any recorded marks.
func (s *DefaultAttendanceService) Day(date string) (*DayView, error) {
	day, err := models.WeekdayOfDate(date)
	if err != nil {
		return nil, err
	}
	records, err := s.Store.Records()
	if err != nil {
		return nil, err
	}
	settings, err := s.Store.Settings()
	if err != nil {
		return nil, err
	}
	rec, found := NewLedger(records).Get(date)

	view := &DayView{
		Date:         date,
		Weekday:      day,
		TotalPeriods: settings.TotalPeriods(day),
		Slots:        []models.DatedSlot{},
		Marks:        map[string]models.AttendanceStatus{},
		Status:       StatusOf(rec, found),
	}
	if found && rec.IsHoliday {
		view.IsHoliday = true
		view.HolidayReason = rec.HolidayReason
		return view, nil
	}

	slots, err := s.slots(date)
	if err != nil {
		return nil, err
	}
	view.Slots = slots
	if found {
		for id, st := range rec.Periods {
			view.Marks[id] = st
		}
		view.Stale = DetectStale(rec, slots)
		if view.Stale != nil {
			s.Logger.Info("recorded slots disagree with current timetable",
				zap.String("date", date),
				zap.Int("orphaned", len(view.Stale.Orphaned)),
				zap.Int("unrecorded", len(view.Stale.Unrecorded)))
		}
	}
	return view, nil
}

// Submit records marks for date, replacing any earlier record. Every slot the
// current schedule resolves for date must be marked.
func (s *DefaultAttendanceService) Submit(date string, marks map[string]models.AttendanceStatus) (*SubmitResult, error) {
	day, err := models.WeekdayOfDate(date)
	if err != nil {
		return nil, err
	}
	for id, st := range marks {
		if !st.Valid() {
			return nil, fmt.Errorf("slot %s: %w", id, ErrInvalidStatus)
		}
		key, err := models.ParseSlotKey(id)
		if err != nil || key.Date != date || key.Weekday != day {
			return nil, fmt.Errorf("slot %s: %w", id, ErrInvalidSlot)
		}
	}

	s.Store.Lock()
	defer s.Store.Unlock()
	slots, err := s.slots(date)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrNoPeriods
	}
	for _, slot := range slots {
		if _, ok := marks[slot.SlotID]; !ok {
			return nil, ErrIncompleteMarks
		}
	}

	records, err := s.Store.Records()
	if err != nil {
		return nil, err
	}
	rec := models.NewPeriodsRecord(date, marks)
	ledger := NewLedger(records)
	ledger.Upsert(rec)
	if err := s.Store.SaveRecords(ledger.All()); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Record: rec,
		Stale:  DetectStale(rec, slots),
		Stats:  Overall(ledger.All()),
	}, nil
}

// Upsert stores a record as-is, without consulting the schedule.
func (s *DefaultAttendanceService) Upsert(rec models.AttendanceRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	s.Store.Lock()
	defer s.Store.Unlock()
	records, err := s.Store.Records()
	if err != nil {
		return err
	}
	ledger := NewLedger(records)
	ledger.Upsert(rec)
	return s.Store.SaveRecords(ledger.All())
}

// MarkHoliday replaces the record of date with a holiday marker.
func (s *DefaultAttendanceService) MarkHoliday(date, reason string) (*models.AttendanceRecord, error) {
	if _, err := models.ParseDate(date); err != nil {
		return nil, err
	}
	s.Store.Lock()
	defer s.Store.Unlock()
	records, err := s.Store.Records()
	if err != nil {
		return nil, err
	}
	ledger := NewLedger(records)
	rec := ledger.MarkHoliday(date, reason)
	if err := s.Store.SaveRecords(ledger.All()); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UnmarkHoliday deletes the holiday record of date, leaving no record.
func (s *DefaultAttendanceService) UnmarkHoliday(date string) error {
	if _, err := models.ParseDate(date); err != nil {
		return err
	}
	s.Store.Lock()
	defer s.Store.Unlock()
	records, err := s.Store.Records()
	if err != nil {
		return err
	}
	ledger := NewLedger(records)
	if !ledger.IsHoliday(date) {
		return ErrNotHoliday
	}
	ledger.UnmarkHoliday(date)
	return s.Store.SaveRecords(ledger.All())
}

// Overall folds the whole ledger.
func (s *DefaultAttendanceService) Overall() (models.AttendanceStats, error) {
	records, err := s.Store.Records()
	if err != nil {
		return models.AttendanceStats{}, err
	}
	return Overall(records), nil
}

// PerSubject attributes the ledger to subjects through the current schedule.
func (s *DefaultAttendanceService) PerSubject() ([]models.SubjectStats, error) {
	records, err := s.Store.Records()
	if err != nil {
		return nil, err
	}
	settings, week, subjects, err := s.schedule()
	if err != nil {
		return nil, err
	}
	return PerSubject(records, week, subjects, settings), nil
}

// Predict projects the overall percentage after hypothetical future marks.
func (s *DefaultAttendanceService) Predict(futureAttend, futureMiss int) (models.Prediction, error) {
	current, err := s.Overall()
	if err != nil {
		return models.Prediction{}, err
	}
	return Predict(current, futureAttend, futureMiss)
}

// Month returns the calendar view of one month.
func (s *DefaultAttendanceService) Month(year int, month time.Month) ([]CalendarDay, error) {
	records, err := s.Store.Records()
	if err != nil {
		return nil, err
	}
	return Month(records, year, month), nil
}

func (s *DefaultAttendanceService) schedule() (models.Settings, models.Timetable, []models.Subject, error) {
	settings, err := s.Store.Settings()
	if err != nil {
		return models.Settings{}, nil, nil, err
	}
	week, err := s.Store.Timetable()
	if err != nil {
		return models.Settings{}, nil, nil, err
	}
	subjects, err := s.Store.Subjects()
	if err != nil {
		return models.Settings{}, nil, nil, err
	}
	return settings, week, subjects, nil
}

func (s *DefaultAttendanceService) slots(date string) ([]models.DatedSlot, error) {
	settings, week, subjects, err := s.schedule()
	if err != nil {
		return nil, err
	}
	return timetable.SlotsForDate(date, settings, week, subjects)
}
