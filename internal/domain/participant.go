package domain

import "time"

// Participant is a contact taking part in an event. Result fields are only
// filled by the validate transition; the article and discount drive the bill
// generated for the participant's payer.
type Participant struct {
	ID                uint    `json:"id"`
	EventID           uint    `json:"event_id"`
	ContactID         uint    `json:"contact_id"`
	ResultDegreeID    *uint   `json:"result_degree_id,omitempty"`
	ResultSubDegreeID *uint   `json:"result_sub_degree_id,omitempty"`
	Comment           string  `json:"comment"`
	ArticleID         *uint   `json:"article_id,omitempty"`
	Discount          float64 `json:"discount"`
	BillID            *uint   `json:"bill_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParticipantResult is one entry of the validate payload: the degree and
// sub-degree granted to a participant, id 0 meaning "no selection".
type ParticipantResult struct {
	ParticipantID    uint
	DegreeLevelID    uint
	SubDegreeLevelID uint
	Comment          *string
}
