// File: models/subject.go
package models

// SubjectType distinguishes lecture subjects from lab sessions.
type SubjectType string

const (
	SubjectTheory SubjectType = "theory"
	SubjectLab    SubjectType = "lab"
)

// UnknownSubjectName is shown for assignments whose subject was deleted.
const UnknownSubjectName = "Unknown"

// Valid reports whether t is theory or lab.
func (t SubjectType) Valid() bool {
	switch t {
	case SubjectTheory, SubjectLab:
		return true
	}
	return false
}

// Subject is one entry of the subject registry.
type Subject struct {
	ID   string      `json:"id" bson:"id" firestore:"id"`
	Name string      `json:"name" bson:"name" firestore:"name" validate:"required"`
	Type SubjectType `json:"type" bson:"type" firestore:"type" validate:"oneof=theory lab"`
}

// SubjectIndex builds an id lookup over a subject list.
func SubjectIndex(subjects []Subject) map[string]Subject {
	idx := make(map[string]Subject, len(subjects))
	for _, s := range subjects {
		idx[s.ID] = s
	}
	return idx
}
