package models

// LocalizedText is the fixed 4-locale string bundle used by every
// display field the portal renders (Thai, English, Japanese, Chinese).
type LocalizedText struct {
	Th string `json:"th"`
	En string `json:"en"`
	Ja string `json:"ja"`
	Zh string `json:"zh"`
}
