package domain

import "time"

type Activity struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member links a contact to the association's member ledger. Degree records
// hang off the member, not the raw contact.
type Member struct {
	ID        uint      `json:"id"`
	ContactID uint      `json:"contact_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Season is the subscription period; events fall into the season containing
// their date.
type Season struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Contains reports whether the date falls within the season, bounds included.
func (s Season) Contains(date time.Time) bool {
	return !date.Before(s.StartDate) && !date.After(s.EndDate)
}
