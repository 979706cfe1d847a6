package domain

import (
	"strings"
	"time"
)

type BillType string

const (
	BillTypeStandard BillType = "standard"
)

type BillStatus string

const (
	BillStatusBuilding BillStatus = "building"
	BillStatusPosted   BillStatus = "posted"
)

// Article is a priced catalog entry, read-only for this module.
type Article struct {
	ID          uint    `json:"id"`
	Designation string  `json:"designation"`
	Price       float64 `json:"price"`
}

// CustomerAccount is the billing engine's ledger entry for a paying contact.
type CustomerAccount struct {
	ID        uint `json:"id"`
	ContactID uint `json:"contact_id"`
}

type Bill struct {
	ID         uint       `json:"id"`
	CustomerID uint       `json:"customer_id"`
	Type       BillType   `json:"type"`
	Status     BillStatus `json:"status"`
	Date       time.Time  `json:"date"`
	Comment    string     `json:"comment"`
	Lines      []BillLine `json:"lines,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CanDelete reports why the bill cannot be deleted, or "" when it can.
func (b *Bill) CanDelete() string {
	if b.Status != BillStatusBuilding {
		return "bill already posted"
	}
	return ""
}

type BillLine struct {
	ID          uint    `json:"id"`
	BillID      uint    `json:"bill_id"`
	ArticleID   uint    `json:"article_id"`
	Designation string  `json:"designation"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
}

const billDateLayout = "02/01/2006"

// BillComment composes the descriptive header of a generated bill: a bold
// "<Type>: <date>" line, the event comment in italics, and the participant's
// own comment when the participant pays for itself on a training.
func BillComment(eventType EventType, eventDate time.Time, eventComment, participantComment string, payerIsParticipant bool) string {
	label := eventType.Label()
	label = strings.ToUpper(label[:1]) + label[1:]

	parts := []string{"<b>" + label + ": " + eventDate.Format(billDateLayout) + "</b>"}
	if eventComment != "" {
		parts = append(parts, "<i>"+eventComment+"</i>")
	}
	if payerIsParticipant && eventType == EventTypeTraining && participantComment != "" {
		parts = append(parts, participantComment)
	}

	return strings.Join(parts, "<br/>")
}

// LineDesignation composes a bill line's designation from the article, the
// participant's name when someone else pays, and the participant's comment on
// trainings.
func LineDesignation(articleDesignation, participantName, participantComment string, eventType EventType, payerDiffers bool) string {
	designation := articleDesignation
	if payerDiffers {
		designation += " - Participant: " + participantName
	}
	if eventType == EventTypeTraining && participantComment != "" {
		designation += " - " + participantComment
	}
	return designation
}
