package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateFeedbackRequest struct {
	EventID string `json:"eventId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (req *CreateFeedbackRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Comment, validation.Length(0, 2000)),
	)
}

type UpdateFeedbackRequest struct {
	ID      string `json:"id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (req *UpdateFeedbackRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Comment, validation.Length(0, 2000)),
	)
}
