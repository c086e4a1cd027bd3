// File: models/settings.go
package models

// DefaultPeriodDurationMinutes is used when no settings were ever saved.
const DefaultPeriodDurationMinutes = 45

// MaxPeriodsPerDay bounds the per-weekday period count accepted from settings edits.
const MaxPeriodsPerDay = 14

// DayConfig holds the structural period count of one weekday. Zero periods
// means the weekday is a structural holiday.
type DayConfig struct {
	TotalPeriods int `json:"totalPeriods" bson:"totalPeriods" validate:"min=0,max=14"`
}

// Settings is the ScheduleConfig aggregate.
type Settings struct {
	PeriodDurationMinutes int                   `json:"periodDurationMinutes" bson:"periodDurationMinutes" validate:"gt=0"`
	PerWeekday            map[Weekday]DayConfig `json:"perWeekday" bson:"perWeekday" validate:"dive"`
}

// DefaultSettings returns the zeroed schedule: 45 minute periods, no periods on any day.
func DefaultSettings() Settings {
	s := Settings{
		PeriodDurationMinutes: DefaultPeriodDurationMinutes,
		PerWeekday:            make(map[Weekday]DayConfig, len(Weekdays)),
	}
	for _, d := range Weekdays {
		s.PerWeekday[d] = DayConfig{}
	}
	return s
}

// Normalized fills missing weekdays with zero periods and a missing duration
// with the default, mirroring how older persisted documents are read.
func (s Settings) Normalized() Settings {
	out := DefaultSettings()
	if s.PeriodDurationMinutes > 0 {
		out.PeriodDurationMinutes = s.PeriodDurationMinutes
	}
	for d, cfg := range s.PerWeekday {
		if d.Valid() {
			out.PerWeekday[d] = cfg
		}
	}
	return out
}

// TotalPeriods returns the configured period count for d, zero when unset.
func (s Settings) TotalPeriods(d Weekday) int {
	if s.PerWeekday == nil {
		return 0
	}
	return s.PerWeekday[d].TotalPeriods
}

// HasConfiguredDay reports whether any weekday has at least one period.
func (s Settings) HasConfiguredDay() bool {
	for _, cfg := range s.PerWeekday {
		if cfg.TotalPeriods > 0 {
			return true
		}
	}
	return false
}
