package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventRequest struct {
	ActivityID         uint   `json:"activity_id"`
	Date               string `json:"date" format:"DD/MM/YYYY"`
	EndDate            string `json:"end_date,omitempty" format:"DD/MM/YYYY"`
	Comment            string `json:"comment"`
	Type               string `json:"type"`
	MemberArticleID    *uint  `json:"member_article_id,omitempty"`
	NonMemberArticleID *uint  `json:"non_member_article_id,omitempty"`
	CostCenterID       *uint  `json:"cost_center_id,omitempty"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In("examination", "training")),
		validation.Field(&req.Comment, validation.Length(0, 500)),
	)
}

type UpdateEventRequest struct {
	ActivityID         uint   `json:"activity_id"`
	Date               string `json:"date" format:"DD/MM/YYYY"`
	EndDate            string `json:"end_date,omitempty" format:"DD/MM/YYYY"`
	Comment            string `json:"comment"`
	Type               string `json:"type"`
	MemberArticleID    *uint  `json:"member_article_id,omitempty"`
	NonMemberArticleID *uint  `json:"non_member_article_id,omitempty"`
	CostCenterID       *uint  `json:"cost_center_id,omitempty"`
}

func (req *UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In("examination", "training")),
		validation.Field(&req.Comment, validation.Length(0, 500)),
	)
}

type CreateOrganizerRequest struct {
	ContactID     uint `json:"contact_id"`
	IsResponsible bool `json:"is_responsible"`
}

func (req *CreateOrganizerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContactID, validation.Required, validation.Min(uint(1))),
	)
}

type CreateParticipantRequest struct {
	ContactID uint    `json:"contact_id"`
	Comment   string  `json:"comment"`
	ArticleID *uint   `json:"article_id,omitempty"`
	Discount  float64 `json:"discount"`
}

func (req *CreateParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContactID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Discount, validation.Min(0.0)),
		validation.Field(&req.Comment, validation.Length(0, 500)),
	)
}

type UpdateParticipantRequest struct {
	ContactID uint    `json:"contact_id"`
	Comment   string  `json:"comment"`
	ArticleID *uint   `json:"article_id,omitempty"`
	Discount  float64 `json:"discount"`
}

func (req *UpdateParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContactID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Discount, validation.Min(0.0)),
		validation.Field(&req.Comment, validation.Length(0, 500)),
	)
}

// ParticipantResultRequest carries one result of the validate payload.
// Level ids of 0 mean "no selection"; a nil comment leaves the participant's
// comment untouched while an empty one overwrites it.
type ParticipantResultRequest struct {
	ParticipantID    uint    `json:"participant_id"`
	DegreeLevelID    uint    `json:"degree_level_id"`
	SubDegreeLevelID uint    `json:"sub_degree_level_id"`
	Comment          *string `json:"comment,omitempty"`
}

type ValidateEventRequest struct {
	Results []ParticipantResultRequest `json:"results"`
}

func (req *ValidateEventRequest) Validate() error {
	for _, result := range req.Results {
		err := validation.ValidateStruct(
			&result,
			validation.Field(&result.ParticipantID, validation.Required, validation.Min(uint(1))),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
