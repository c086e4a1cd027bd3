// File: models/stats.go
package models

// Percentage bands shared by predictions and every percentage display.
const (
	SafeThreshold    = 75
	WarningThreshold = 65
)

// Band is the risk classification of an attendance percentage.
type Band string

const (
	BandSafe    Band = "safe"
	BandWarning Band = "warning"
	BandRisk    Band = "risk"
)

// AttendanceStats holds the overall totals folded from the ledger.
type AttendanceStats struct {
	Total      int  `json:"totalPeriods"`
	Present    int  `json:"presentPeriods"`
	Absent     int  `json:"absentPeriods"`
	Percentage int  `json:"attendancePercentage"`
	Band       Band `json:"band"`
}

// SubjectStats holds the totals attributed to one subject.
type SubjectStats struct {
	SubjectID   string `json:"subjectId"`
	SubjectName string `json:"subjectName"`
	Total       int    `json:"total"`
	Present     int    `json:"present"`
	Absent      int    `json:"absent"`
	Percentage  int    `json:"percentage"`
	Band        Band   `json:"band"`
}

// Prediction is the projected percentage after hypothetical future marks.
type Prediction struct {
	Percentage int  `json:"percentage"`
	Status     Band `json:"status"`
}
