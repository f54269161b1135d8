package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
)

func (c *Client) EventFeedback(ctx context.Context, eventID string) ([]domain.EventFeedback, error) {
	var feedback []domain.EventFeedback
	if err := c.do(ctx, http.MethodGet, "/feedback/events/"+url.PathEscape(eventID), nil, &feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (c *Client) MyFeedback(ctx context.Context) ([]domain.EventFeedback, error) {
	var feedback []domain.EventFeedback
	if err := c.do(ctx, http.MethodGet, "/feedback/my", nil, &feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (c *Client) CreateFeedback(ctx context.Context, req request.CreateFeedbackRequest) (string, error) {
	var id string
	if err := c.do(ctx, http.MethodPost, "/feedback/events/"+url.PathEscape(req.EventID), req, &id); err != nil {
		return "", err
	}

	return id, nil
}

func (c *Client) UpdateFeedback(ctx context.Context, req request.UpdateFeedbackRequest) error {
	return c.do(ctx, http.MethodPut, "/feedback/"+url.PathEscape(req.ID), req, nil)
}

func (c *Client) DeleteFeedback(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/feedback/"+url.PathEscape(id), nil, nil)
}
