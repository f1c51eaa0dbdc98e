package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
)

// Login exchanges credentials for a token. It never sends the current token,
// so a failed login cannot end an existing session.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.doAnonymous(ctx, http.MethodPost, "/users/login/", models.LoginRequest{Email: email, Password: password}, &resp)
	var apiErr *APIError
	if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusBadRequest) {
		return resp, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return resp, err
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, "/users/logout/", nil, nil, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	var u models.User
	err := c.Do(ctx, http.MethodGet, "/users/me/", nil, nil, &u)
	return u, err
}

func (c *HTTPClient) Users() *Resource[models.User] {
	return newResource[models.User](c, "/users/")
}

// Trainees lists trainees in the caller's program.
func (c *HTTPClient) Trainees(ctx context.Context, query url.Values) (models.Page[models.User], error) {
	var page models.Page[models.User]
	err := c.Do(ctx, http.MethodGet, "/users/trainees/", query, nil, &page)
	return page, err
}

func (c *HTTPClient) Faculty(ctx context.Context, query url.Values) (models.Page[models.User], error) {
	var page models.Page[models.User]
	err := c.Do(ctx, http.MethodGet, "/users/faculty/", query, nil, &page)
	return page, err
}
