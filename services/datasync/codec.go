package datasync

import (
	"encoding/json"

	"attendly/models"
)

func decodeSettings(payload []byte) (models.Settings, error) {
	var s models.Settings
	if err := json.Unmarshal(payload, &s); err != nil {
		return models.DefaultSettings(), err
	}
	return s.Normalized(), nil
}

func decodeSubjects(payload []byte) ([]models.Subject, error) {
	var list []models.Subject
	if err := json.Unmarshal(payload, &list); err != nil {
		return []models.Subject{}, err
	}
	if list == nil {
		list = []models.Subject{}
	}
	return list, nil
}

func decodeTimetable(payload []byte) (models.Timetable, error) {
	var week models.Timetable
	if err := json.Unmarshal(payload, &week); err != nil {
		return models.Timetable{}, err
	}
	if week == nil {
		week = models.Timetable{}
	}
	return week, nil
}

func decodeRecords(payload []byte) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return []models.AttendanceRecord{}, err
	}
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	return records, nil
}
