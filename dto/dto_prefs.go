package dto

// PreferencesDTO mirrors the two UI preference slots.
type PreferencesDTO struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}
