package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
)

func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (c *Client) UpcomingEvents(ctx context.Context, count int) ([]domain.Event, error) {
	var events []domain.Event
	path := fmt.Sprintf("/events/upcoming?count=%d", count)
	if err := c.do(ctx, http.MethodGet, path, nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (domain.EventDetail, error) {
	var detail domain.EventDetail
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, &detail); err != nil {
		return domain.EventDetail{}, err
	}

	return detail, nil
}

func (c *Client) CreateEvent(ctx context.Context, req request.CreateEventRequest) (string, error) {
	var id string
	if err := c.do(ctx, http.MethodPost, "/events", req, &id); err != nil {
		return "", err
	}

	return id, nil
}

func (c *Client) UpdateEventStatus(ctx context.Context, id string, req request.UpdateEventStatusRequest) error {
	return c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(id)+"/status", req, nil)
}
