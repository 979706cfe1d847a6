package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateDegreeLevelRequest struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	ActivityID *uint  `json:"activity_id,omitempty"`
}

func (req *CreateDegreeLevelRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Level, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

type UpdateDegreeLevelRequest struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	ActivityID *uint  `json:"activity_id,omitempty"`
}

func (req *UpdateDegreeLevelRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Level, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

type CreateSubDegreeLevelRequest struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

func (req *CreateSubDegreeLevelRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Level, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

type UpdateSubDegreeLevelRequest struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

func (req *UpdateSubDegreeLevelRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Level, validation.Required, validation.Min(1), validation.Max(100)),
	)
}
