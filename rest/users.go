package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
)

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, req request.CreateUserRequest) (string, error) {
	var id string
	if err := c.do(ctx, http.MethodPost, "/users", req, &id); err != nil {
		return "", err
	}

	return id, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, req request.UpdateUserRoleRequest) error {
	return c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(req.UserID)+"/role", req, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}
