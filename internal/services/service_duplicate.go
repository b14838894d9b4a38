package services

import (
	"placement-backend/internal/models"
	"placement-backend/internal/utils"
)

// DuplicateMatch reports which existing record a candidate collides
// with and on which field. Field is "studentId" or "name".
type DuplicateMatch struct {
	Field  string
	Record models.StudentStatusRecord
}

// FindDuplicateStudent scans the existing records in array order,
// skipping excludeID (the record currently being edited, so a record
// never collides with itself). Within each record the normalized
// studentId comparison runs before the normalized name comparison, and
// the first matching record wins — when the candidate's id and name
// would match two different records, array order is the tie-break.
//
// This is an interactive guard, not a constraint: a forced save or two
// concurrent sessions can still create duplicates.
func FindDuplicateStudent(records []models.StudentStatusRecord, studentID, name, excludeID string) (DuplicateMatch, bool) {
	candID := utils.NormalizeStudentID(studentID)
	candName := utils.NormalizeName(name)

	for _, rec := range records {
		if excludeID != "" && rec.ID == excludeID {
			continue
		}
		if candID != "" && utils.NormalizeStudentID(rec.StudentID) == candID {
			return DuplicateMatch{Field: "studentId", Record: rec}, true
		}
		if candName != "" && utils.NormalizeName(rec.Name) == candName {
			return DuplicateMatch{Field: "name", Record: rec}, true
		}
	}
	return DuplicateMatch{}, false
}
