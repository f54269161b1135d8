package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/aston-csic/csic-go/domain"
)

var errInvalidAttendance = errors.New("attendance can only be marked Attended or NoShow")

type CreateBookingRequest struct {
	EventID string `json:"eventId"`
}

func (req *CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
	)
}

type MarkAttendanceRequest struct {
	Status domain.BookingStatus `json:"status"`
}

func (req *MarkAttendanceRequest) Validate() error {
	switch req.Status {
	case domain.BookingAttended, domain.BookingNoShow:
		return nil
	}

	return errInvalidAttendance
}
