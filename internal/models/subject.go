package models

import "fmt"

// Subject classifies a study group's topic. The set is closed: a user may own
// at most one group per subject, so the subject doubles as the per-owner
// uniqueness key.
type Subject string

const (
	SubjectMath      Subject = "Math"
	SubjectChemistry Subject = "Chemistry"
	SubjectPhysics   Subject = "Physics"
)

// Subjects lists every defined subject.
var Subjects = []Subject{SubjectMath, SubjectChemistry, SubjectPhysics}

// Valid reports whether s is one of the defined subjects.
func (s Subject) Valid() bool {
	switch s {
	case SubjectMath, SubjectChemistry, SubjectPhysics:
		return true
	}
	return false
}

// ParseSubject converts a query/body string into a Subject.
func ParseSubject(s string) (Subject, error) {
	subject := Subject(s)
	if !subject.Valid() {
		return "", fmt.Errorf("unknown subject %q", s)
	}
	return subject, nil
}
