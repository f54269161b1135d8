package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
)

func (c *Client) SubmitContactMessage(ctx context.Context, req request.ContactMessageRequest) (string, error) {
	var id string
	if err := c.do(ctx, http.MethodPost, "/contactmessages", req, &id); err != nil {
		return "", err
	}

	return id, nil
}

func (c *Client) ContactMessages(ctx context.Context, unreadOnly bool) ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage
	path := "/contactmessages?unreadOnly=" + strconv.FormatBool(unreadOnly)
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

func (c *Client) MarkMessageRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/contactmessages/"+url.PathEscape(id)+"/read", nil, nil)
}
