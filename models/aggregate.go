// File: models/aggregate.go
package models

// AggregateKind names one of the four documents mirrored between the local
// and the remote store.
type AggregateKind string

const (
	KindSettings   AggregateKind = "settings"
	KindSubjects   AggregateKind = "subjects"
	KindTimetable  AggregateKind = "timetable"
	KindAttendance AggregateKind = "attendance"
)

// AggregateKinds lists every mirrored aggregate.
var AggregateKinds = []AggregateKind{KindSettings, KindSubjects, KindTimetable, KindAttendance}

// LocalKey is the fixed logical key of the aggregate in the local store.
func (k AggregateKind) LocalKey() string {
	switch k {
	case KindSettings:
		return "attendance_settings_v2"
	case KindSubjects:
		return "attendance_subjects_v2"
	case KindTimetable:
		return "attendance_timetable_v2"
	case KindAttendance:
		return "attendance_records"
	}
	return ""
}

// DocumentField is the field holding the aggregate inside its remote document.
func (k AggregateKind) DocumentField() string {
	switch k {
	case KindSettings:
		return "settings"
	case KindSubjects:
		return "list"
	case KindTimetable:
		return "schedule"
	case KindAttendance:
		return "records"
	}
	return ""
}

// Valid reports whether k is one of the four aggregates.
func (k AggregateKind) Valid() bool {
	return k.LocalKey() != ""
}

// Snapshot carries every aggregate at once, used for export and import.
// Nil fields are skipped on import.
type Snapshot struct {
	Settings   *Settings          `json:"settings,omitempty"`
	Subjects   []Subject          `json:"subjects,omitempty"`
	Timetable  Timetable          `json:"timetable,omitempty"`
	Attendance []AttendanceRecord `json:"attendance,omitempty"`
}
