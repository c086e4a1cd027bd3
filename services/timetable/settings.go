// File: services/timetable/settings.go
package timetable

import (
	"errors"
	"fmt"
	"strings"

	"attendly/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validate = validator.New()

// DefaultRegistryService owns the schedule config and the subject registry.
// Edits never touch dependent assignments or attendance.
type DefaultRegistryService struct {
	Store  Store
	Logger *zap.Logger
}

// NewRegistryService wires a settings and subject service over store.
func NewRegistryService(store Store, logger *zap.Logger) *DefaultRegistryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultRegistryService{Store: store, Logger: logger}
}

// Settings returns the current schedule config.
func (s *DefaultRegistryService) Settings() (models.Settings, error) {
	return s.Store.Settings()
}

// UpdateSettings validates and saves a new schedule config. Weekdays missing
// from the edit are stored with zero periods.
func (s *DefaultRegistryService) UpdateSettings(next models.Settings) (*models.Settings, error) {
	for d := range next.PerWeekday {
		if !d.Valid() {
			return nil, &SettingsError{Fields: map[string]string{"perWeekday." + string(d): "unknown weekday"}}
		}
	}
	if err := validate.Struct(next); err != nil {
		return nil, toSettingsError(err)
	}

	normalized := models.DefaultSettings()
	normalized.PeriodDurationMinutes = next.PeriodDurationMinutes
	for d, cfg := range next.PerWeekday {
		normalized.PerWeekday[d] = cfg
	}
	s.Store.Lock()
	defer s.Store.Unlock()
	if err := s.Store.SaveSettings(normalized); err != nil {
		return nil, err
	}
	s.Logger.Info("settings updated", zap.Int("periodDurationMinutes", normalized.PeriodDurationMinutes))
	return &normalized, nil
}

// Subjects returns the subject registry in stored order.
func (s *DefaultRegistryService) Subjects() ([]models.Subject, error) {
	return s.Store.Subjects()
}

// ReplaceSubjects validates and saves the whole subject list.
func (s *DefaultRegistryService) ReplaceSubjects(subjects []models.Subject) ([]models.Subject, error) {
	fields := map[string]string{}
	seen := map[string]bool{}
	out := make([]models.Subject, 0, len(subjects))
	for i, subj := range subjects {
		subj = normalizeSubject(subj)
		key := subj.ID
		if err := validate.Struct(subj); err != nil {
			for field, msg := range toSettingsError(err).Fields {
				fields[fmt.Sprintf("subjects[%d].%s", i, field)] = msg
			}
			continue
		}
		if seen[key] {
			fields[fmt.Sprintf("subjects[%d].id", i)] = "duplicate subject id"
			continue
		}
		seen[key] = true
		out = append(out, subj)
	}
	if len(fields) > 0 {
		return nil, &SettingsError{Fields: fields}
	}
	s.Store.Lock()
	defer s.Store.Unlock()
	if err := s.Store.SaveSubjects(out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddSubject appends one subject, generating an id when none is given.
func (s *DefaultRegistryService) AddSubject(subj models.Subject) (*models.Subject, error) {
	subj = normalizeSubject(subj)
	if err := validate.Struct(subj); err != nil {
		return nil, toSettingsError(err)
	}
	s.Store.Lock()
	defer s.Store.Unlock()
	subjects, err := s.Store.Subjects()
	if err != nil {
		return nil, err
	}
	for _, existing := range subjects {
		if existing.ID == subj.ID {
			return nil, &SettingsError{Fields: map[string]string{"id": "duplicate subject id"}}
		}
	}
	if err := s.Store.SaveSubjects(append(subjects, subj)); err != nil {
		return nil, err
	}
	return &subj, nil
}

// UpdateSubject renames or retypes the subject id. Empty patch fields keep
// their current value.
func (s *DefaultRegistryService) UpdateSubject(id string, patch models.Subject) (*models.Subject, error) {
	s.Store.Lock()
	defer s.Store.Unlock()
	subjects, err := s.Store.Subjects()
	if err != nil {
		return nil, err
	}
	for i := range subjects {
		if subjects[i].ID != id {
			continue
		}
		patch.ID = id
		if patch.Name == "" {
			patch.Name = subjects[i].Name
		}
		if patch.Type == "" {
			patch.Type = subjects[i].Type
		}
		patch = normalizeSubject(patch)
		if err := validate.Struct(patch); err != nil {
			return nil, toSettingsError(err)
		}
		subjects[i] = patch
		if err := s.Store.SaveSubjects(subjects); err != nil {
			return nil, err
		}
		return &patch, nil
	}
	return nil, fmt.Errorf("%s: %w", id, ErrSubjectNotFound)
}

// DeleteSubject removes a subject. Assignments that reference it stay in place
// and resolve to the "Unknown" display subject.
func (s *DefaultRegistryService) DeleteSubject(id string) error {
	s.Store.Lock()
	defer s.Store.Unlock()
	subjects, err := s.Store.Subjects()
	if err != nil {
		return err
	}
	for i := range subjects {
		if subjects[i].ID == id {
			return s.Store.SaveSubjects(append(subjects[:i], subjects[i+1:]...))
		}
	}
	return fmt.Errorf("%s: %w", id, ErrSubjectNotFound)
}

func normalizeSubject(subj models.Subject) models.Subject {
	subj.Name = strings.TrimSpace(subj.Name)
	if subj.ID == "" {
		subj.ID = "subject-" + uuid.New().String()
	}
	if subj.Type == "" {
		subj.Type = models.SubjectTheory
	}
	return subj
}

func toSettingsError(err error) *SettingsError {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = err.Error()
		return &SettingsError{Fields: fields}
	}
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fieldMessage(fe)
	}
	return &SettingsError{Fields: fields}
}

// fieldPath drops the root struct name, e.g. "Settings.PerWeekday[Mon].TotalPeriods"
// becomes "PerWeekday[Mon].TotalPeriods".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "gt":
		return "Must be greater than zero"
	case "min":
		return "Cannot be negative"
	case "max":
		return fmt.Sprintf("Maximum %s allowed", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
