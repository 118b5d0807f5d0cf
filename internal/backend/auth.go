package backend

import (
	"context"
	"io"
	"net/http"

	"github.com/orchids/cinesearch/internal/domain"
)

// Me resolves the identity behind the forwarded session cookies. A 401 means
// the caller must be sent to the login page.
func (c *Client) Me(ctx context.Context, cookies []*http.Cookie) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, cookies, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login submits credentials and returns the session cookies the backend set,
// so the handler can relay them to the browser.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) ([]*http.Cookie, error) {
	return c.authenticate(ctx, "/api/auth/login", creds)
}

// Register creates an account; on success the backend opens a session like a
// login does.
func (c *Client) Register(ctx context.Context, reg domain.Registration) ([]*http.Cookie, error) {
	return c.authenticate(ctx, "/api/auth/register", reg)
}

func (c *Client) authenticate(ctx context.Context, path string, payload interface{}) ([]*http.Cookie, error) {
	resp, err := c.send(ctx, http.MethodPost, path, nil, nil, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return resp.Cookies(), nil
}

// Logout terminates the backend session and returns the expiring cookies to
// relay back to the browser.
func (c *Client) Logout(ctx context.Context, cookies []*http.Cookie) ([]*http.Cookie, error) {
	resp, err := c.send(ctx, http.MethodPost, "/api/auth/logout", nil, cookies, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return resp.Cookies(), nil
}
