package domain

import "time"

// EventBooking links one user to one event. The nested event, when the
// server embeds it, is normalized recursively by the Event unmarshaler.
type EventBooking struct {
	ID          string        `json:"id"`
	EventID     string        `json:"eventId"`
	UserID      string        `json:"userId"`
	Status      BookingStatus `json:"status"`
	BookedAt    time.Time     `json:"bookedAt"`
	CancelledAt *time.Time    `json:"cancelledAt,omitempty"`
	Event       *Event        `json:"event,omitempty"`
	User        *User         `json:"user,omitempty"`
}
