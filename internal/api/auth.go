package api

import (
	"context"

	"github.com/sokastore/soka/internal/models"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the token and user the auth endpoints hand back on
// success. The caller persists it; the client itself is stateless.
type Credentials struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (*Credentials, error) {
	var creds Credentials
	if err := c.doJSON(ctx, "POST", "/auth/register", input, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func (c *Client) Login(ctx context.Context, input LoginInput) (*Credentials, error) {
	var creds Credentials
	if err := c.doJSON(ctx, "POST", "/auth/login", input, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}
