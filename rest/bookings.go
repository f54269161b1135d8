package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
)

func (c *Client) CreateBooking(ctx context.Context, eventID string) (string, error) {
	req := request.CreateBookingRequest{EventID: eventID}

	var id string
	if err := c.do(ctx, http.MethodPost, "/events/"+url.PathEscape(eventID)+"/bookings", req, &id); err != nil {
		return "", err
	}

	return id, nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	return c.do(ctx, http.MethodPut, "/eventbookings/"+url.PathEscape(bookingID)+"/cancel", nil, nil)
}

func (c *Client) MarkAttendance(ctx context.Context, bookingID string, req request.MarkAttendanceRequest) error {
	return c.do(ctx, http.MethodPut, "/eventbookings/"+url.PathEscape(bookingID)+"/attendance", req, nil)
}

func (c *Client) MyBookings(ctx context.Context) ([]domain.EventBooking, error) {
	var bookings []domain.EventBooking
	if err := c.do(ctx, http.MethodGet, "/eventbookings/my", nil, &bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}
