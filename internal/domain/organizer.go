package domain

import "time"

// Organizer is a contact helping run an event. At most one organizer per
// event carries the responsible flag; SetResponsible on the service enforces
// the exclusivity.
type Organizer struct {
	ID            uint      `json:"id"`
	EventID       uint      `json:"event_id"`
	ContactID     uint      `json:"contact_id"`
	IsResponsible bool      `json:"is_responsible"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
