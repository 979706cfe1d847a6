package domain

import "time"

type EventType string

const (
	EventTypeExamination EventType = "examination"
	EventTypeTraining    EventType = "training"
)

// Label is the printable form used in user-facing messages.
func (t EventType) Label() string {
	switch t {
	case EventTypeTraining:
		return "training"
	default:
		return "examination"
	}
}

type Event struct {
	ID                 uint        `json:"id"`
	ActivityID         uint        `json:"activity_id"`
	Date               time.Time   `json:"date"`
	EndDate            *time.Time  `json:"end_date,omitempty"`
	Comment            string      `json:"comment"`
	Status             EventStatus `json:"status"`
	Type               EventType   `json:"type"`
	MemberArticleID    *uint       `json:"member_article_id,omitempty"`
	NonMemberArticleID *uint       `json:"non_member_article_id,omitempty"`
	CostCenterID       *uint       `json:"cost_center_id,omitempty"`

	Organizers   []Organizer   `json:"organizers,omitempty"`
	Participants []Participant `json:"participants,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Normalize applies the save-time end date rules: examinations never carry an
// end date, trainings always end no earlier than they start.
func (e *Event) Normalize() {
	if e.Type == EventTypeExamination {
		e.EndDate = nil
		return
	}

	if e.EndDate == nil || e.EndDate.Before(e.Date) {
		end := e.Date
		e.EndDate = &end
	}
}

// CheckValidity reports why the event cannot be validated, or "" when it can.
// The checks are ordered: an already validated event wins over every other
// reason, then the missing responsible organizer, then the empty roster.
func (e *Event) CheckValidity() string {
	if e.Status == EventStatusValid {
		return e.Type.Label() + " already validated"
	}

	responsible := false
	for _, o := range e.Organizers {
		if o.IsResponsible {
			responsible = true
			break
		}
	}
	if !responsible {
		return "no responsible"
	}

	if len(e.Participants) == 0 {
		return "no participant"
	}

	return ""
}

// RequireValidity is the caller-facing guard before the validate transition.
func (e *Event) RequireValidity() error {
	if reason := e.CheckValidity(); reason != "" {
		return NewValidationError(reason)
	}
	return nil
}

// CanDelete blocks deletion once the event left the building state.
func (e *Event) CanDelete() error {
	if e.Status != EventStatusBuilding {
		return NewValidationError(e.Type.Label() + " validated!")
	}
	return nil
}

// Validate runs the building -> valid transition, guarded by CheckValidity.
func (e *Event) Validate() error {
	next, err := e.Status.Transition(EventStatusValid, e.CheckValidity)
	if err != nil {
		return err
	}

	e.Status = next
	return nil
}
