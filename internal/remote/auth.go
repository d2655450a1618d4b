package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"unbacklog/internal/model"

	"github.com/google/uuid"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login exchanges credentials for the session cookie. A 401 from the
// API means the credentials were rejected, not that a session expired.
func (c *Client) Login(ctx context.Context, email, password string) error {
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, nil)
	if errors.Is(err, ErrUnauthorized) {
		return ErrInvalidCredentials
	}
	return err
}

func (c *Client) Register(ctx context.Context, email, password, name string) error {
	err := c.do(ctx, http.MethodPost, "/auth/register", registerRequest{Email: email, Password: password, Name: name}, nil)
	if errors.Is(err, ErrUnauthorized) {
		return ErrInvalidCredentials
	}
	return err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var payload userPayload
	if err := c.do(ctx, http.MethodGet, "/user/me", nil, &payload); err != nil {
		return nil, err
	}

	user := &model.User{Name: payload.Name, Email: payload.Email}
	if payload.ID != "" {
		id, err := uuid.Parse(payload.ID)
		if err != nil {
			return nil, fmt.Errorf("mapping user response: bad id %q: %w", payload.ID, err)
		}
		user.ID = id
	}
	return user, nil
}
