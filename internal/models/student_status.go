package models

const (
	ApplicationPending   = "pending"
	ApplicationPreparing = "preparing"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
)

const (
	TypeInternship = "internship"
	TypeCoop       = "co_op"
)

// StudentStatusRecord tracks one student's placement application.
// StudentID and Name are free text; equality for duplicate checks goes
// through utils.NormalizeStudentID / utils.NormalizeName, never the raw
// values. StartDate/EndDate are ISO yyyy-mm-dd strings so range filters
// can compare them lexicographically.
type StudentStatusRecord struct {
	ID           string `json:"id"`
	StudentID    string `json:"studentId"`
	Name         string `json:"name"`
	Status       string `json:"status"` // pending, preparing, accepted, rejected
	Major        string `json:"major"`
	Type         string `json:"type"` // internship, co_op
	Location     string `json:"location,omitempty"`
	Position     string `json:"position,omitempty"`
	Term         string `json:"term,omitempty"`
	AcademicYear string `json:"academicYear,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	LastUpdated  string `json:"lastUpdated"`
}

func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationPreparing, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

func ValidInternshipType(t string) bool {
	return t == TypeInternship || t == TypeCoop
}
