package models

const (
	ScheduleUpcoming = "upcoming"
	SchedulePast     = "past"
)

// ScheduleEvent keeps both the localized display dates and the raw ISO
// forms. Status is set once when the event is created and never
// recomputed afterwards.
type ScheduleEvent struct {
	ID        string        `json:"id"`
	Title     LocalizedText `json:"title"`
	StartDate LocalizedText `json:"startDate"`
	EndDate   LocalizedText `json:"endDate"`
	RawStart  string        `json:"rawStart"`
	RawEnd    string        `json:"rawEnd"`
	Status    string        `json:"status"` // upcoming, past
	CreatedAt string        `json:"createdAt"`
}
