package domain

import "time"

type EventFeedback struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	EventTitle   string    `json:"eventTitle,omitempty"`
	UserID       string    `json:"userId"`
	UserFullName string    `json:"userFullName,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
