package dto

// SyncStatusDTO reports when the gateway last completed a successful
// fetch or push; empty string if never.
type SyncStatusDTO struct {
	LastSync string `json:"lastSync"`
}
