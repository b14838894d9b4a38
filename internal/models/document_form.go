package models

import "strings"

const (
	FormCategoryApplication = "application"
	FormCategoryMonitoring  = "monitoring"
)

// PendingUploadPrefix marks a form whose file is still being processed
// by the remote side. The URL stays "PENDING_UPLOAD:<filename>" until a
// later fetch returns the final link.
const PendingUploadPrefix = "PENDING_UPLOAD:"

type DocumentForm struct {
	ID       string        `json:"id"`
	Title    LocalizedText `json:"title"`
	Category string        `json:"category"` // application, monitoring
	URL      string        `json:"url"`
}

func (f DocumentForm) PendingUpload() bool {
	return strings.HasPrefix(f.URL, PendingUploadPrefix)
}

func ValidFormCategory(c string) bool {
	return c == FormCategoryApplication || c == FormCategoryMonitoring
}
