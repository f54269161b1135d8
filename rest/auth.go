package rest

import (
	"context"
	"net/http"

	"github.com/aston-csic/csic-go/rest/request"
	"github.com/aston-csic/csic-go/rest/response"
)

func (c *Client) Login(ctx context.Context, req request.LoginRequest) (response.AuthResponse, error) {
	var resp response.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return response.AuthResponse{}, authError(err)
	}

	return resp, nil
}

func (c *Client) Register(ctx context.Context, req request.SignupRequest) (response.AuthResponse, error) {
	var resp response.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return response.AuthResponse{}, authError(err)
	}

	return resp, nil
}
