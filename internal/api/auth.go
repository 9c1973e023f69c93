package api

import (
	"context"
	"net/http"

	"talentia/internal/domain/user"
)

type RegisterRequest struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      user.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the login/register payload: a bearer token plus the user
// profile the client persists verbatim.
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	User        user.User `json:"user"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context, token string) (*user.User, error) {
	var out user.User
	if err := c.get(ctx, "/auth/me", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
