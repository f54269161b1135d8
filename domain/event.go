// Package domain holds the canonical client-side shape of every entity the
// remote API serves. Server payloads vary (numeric vs. string enums, derived
// fields the server may omit or miscompute); decoding through these types is
// the normalization step, so callers never see a non-canonical value.
package domain

import (
	"encoding/json"
	"time"
)

type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	StartDate       time.Time   `json:"startDate"`
	EndDate         time.Time   `json:"endDate"`
	Location        string      `json:"location"`
	Capacity        int         `json:"capacity"`
	CurrentBookings int         `json:"currentBookings"`
	Status          EventStatus `json:"status"`
	CreatedByID     string      `json:"createdById,omitempty"`
	CreatedAt       time.Time   `json:"createdAt,omitempty"`
	AvailableSpots  int         `json:"availableSpots"`
}

// UnmarshalJSON recomputes AvailableSpots from capacity and currentBookings.
// The server-provided value is never trusted.
func (e *Event) UnmarshalJSON(data []byte) error {
	type alias Event

	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	decoded.AvailableSpots = decoded.Capacity - decoded.CurrentBookings
	*e = Event(decoded)

	return nil
}

// EventDetail is the single-event view, with the embedded bookings and
// feedback the detail endpoint returns.
type EventDetail struct {
	Event
	CreatedBy *User           `json:"createdBy,omitempty"`
	Bookings  []EventBooking  `json:"bookings"`
	Feedback  []EventFeedback `json:"feedback"`
}

// UnmarshalJSON exists because the embedded Event's unmarshaler would
// otherwise be promoted and swallow the detail-only fields.
func (d *EventDetail) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &d.Event); err != nil {
		return err
	}

	var extra struct {
		CreatedBy *User           `json:"createdBy"`
		Bookings  []EventBooking  `json:"bookings"`
		Feedback  []EventFeedback `json:"feedback"`
	}
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}

	d.CreatedBy = extra.CreatedBy
	d.Bookings = extra.Bookings
	d.Feedback = extra.Feedback

	return nil
}
