package models

const (
	SiteStatusActive        = "active"
	SiteStatusArchived      = "archived"
	SiteStatusSeniorVisited = "senior_visited"
)

const (
	MajorHalalFood = "halal_food"
	MajorIT        = "it"
	MajorLogistics = "logistics"
	MajorGeneral   = "general"
)

type InternshipSite struct {
	ID           string        `json:"id"`
	Name         LocalizedText `json:"name"`
	Location     LocalizedText `json:"location"`
	Description  LocalizedText `json:"description"`
	Position     LocalizedText `json:"position"`
	Status       string        `json:"status"` // active, archived, senior_visited
	Major        string        `json:"major"`
	ContactLink  string        `json:"contactLink,omitempty"`
	ContactEmail string        `json:"contactEmail,omitempty"`
	ContactPhone string        `json:"contactPhone,omitempty"`
	CreatedAt    string        `json:"createdAt"`
}

func ValidSiteStatus(s string) bool {
	switch s {
	case SiteStatusActive, SiteStatusArchived, SiteStatusSeniorVisited:
		return true
	}
	return false
}

func ValidMajor(m string) bool {
	switch m {
	case MajorHalalFood, MajorIT, MajorLogistics, MajorGeneral:
		return true
	}
	return false
}
