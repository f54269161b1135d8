package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// UnknownStatusError reports an enum value the server sent that maps to no
// canonical label. The boundary fails loudly instead of guessing.
type UnknownStatusError struct {
	Kind  string
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown %s status: %s", e.Kind, e.Value)
}

type EventStatus string

const (
	EventDraft     EventStatus = "Draft"
	EventPublished EventStatus = "Published"
	EventCancelled EventStatus = "Cancelled"
	EventCompleted EventStatus = "Completed"
)

var eventStatusOrdinals = map[int64]EventStatus{
	0: EventDraft,
	1: EventPublished,
	2: EventCancelled,
	3: EventCompleted,
}

func ParseEventStatus(raw string) (EventStatus, error) {
	switch status := EventStatus(raw); status {
	case EventDraft, EventPublished, EventCancelled, EventCompleted:
		return status, nil
	}

	return "", &UnknownStatusError{Kind: "event", Value: raw}
}

// UnmarshalJSON accepts either the numeric ordinal or the canonical label;
// both decode to the label.
func (s *EventStatus) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}

		parsed, err := ParseEventStatus(label)
		if err != nil {
			return err
		}

		*s = parsed
		return nil
	}

	ordinal, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &UnknownStatusError{Kind: "event", Value: string(data)}
	}

	mapped, ok := eventStatusOrdinals[ordinal]
	if !ok {
		return &UnknownStatusError{Kind: "event", Value: string(data)}
	}

	*s = mapped
	return nil
}

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingAttended  BookingStatus = "Attended"
	BookingNoShow    BookingStatus = "NoShow"
)

var bookingStatusOrdinals = map[int64]BookingStatus{
	0: BookingConfirmed,
	1: BookingCancelled,
	2: BookingAttended,
	3: BookingNoShow,
}

func ParseBookingStatus(raw string) (BookingStatus, error) {
	switch status := BookingStatus(raw); status {
	case BookingConfirmed, BookingCancelled, BookingAttended, BookingNoShow:
		return status, nil
	}

	return "", &UnknownStatusError{Kind: "booking", Value: raw}
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}

		parsed, err := ParseBookingStatus(label)
		if err != nil {
			return err
		}

		*s = parsed
		return nil
	}

	ordinal, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return &UnknownStatusError{Kind: "booking", Value: string(data)}
	}

	mapped, ok := bookingStatusOrdinals[ordinal]
	if !ok {
		return &UnknownStatusError{Kind: "booking", Value: string(data)}
	}

	*s = mapped
	return nil
}
