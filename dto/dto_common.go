package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

// DuplicateResponse is the 409 body for a blocked student-status save:
// which field collided and with which record, so the admin UI can show
// the blocking message and offer the force override.
type DuplicateResponse struct {
	Error    string `json:"error"`
	Field    string `json:"field"` // studentId or name
	RecordID string `json:"recordId"`
}
