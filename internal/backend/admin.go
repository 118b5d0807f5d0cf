package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/orchids/cinesearch/internal/domain"
)

func limitQuery(limit int) url.Values {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	return query
}

// AdminDashboard fetches the KPI block plus the two daily time series.
func (c *Client) AdminDashboard(ctx context.Context, cookies []*http.Cookie) (*domain.Dashboard, error) {
	var dashboard domain.Dashboard
	if err := c.do(ctx, http.MethodGet, "/api/admin/dashboard", nil, cookies, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (c *Client) AdminUsers(ctx context.Context, cookies []*http.Cookie, limit int) ([]domain.User, error) {
	var list domain.UserList
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", limitQuery(limit), cookies, nil, &list); err != nil {
		return nil, err
	}
	return list.Users, nil
}

func (c *Client) AdminSessions(ctx context.Context, cookies []*http.Cookie, limit int) ([]domain.Session, error) {
	var list domain.SessionList
	if err := c.do(ctx, http.MethodGet, "/api/admin/sessions", limitQuery(limit), cookies, nil, &list); err != nil {
		return nil, err
	}
	return list.Sessions, nil
}

func (c *Client) AdminSearchHistory(ctx context.Context, cookies []*http.Cookie, limit int) ([]domain.SearchHistoryEntry, error) {
	var list domain.SearchHistoryList
	if err := c.do(ctx, http.MethodGet, "/api/admin/search-history", limitQuery(limit), cookies, nil, &list); err != nil {
		return nil, err
	}
	return list.History, nil
}

// BlockUser suspends an account. The caller reloads the whole dashboard on
// success rather than patching its local state.
func (c *Client) BlockUser(ctx context.Context, cookies []*http.Cookie, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/admin/users/%d/block", id), nil, cookies, nil, nil)
}

func (c *Client) UnblockUser(ctx context.Context, cookies []*http.Cookie, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/admin/users/%d/unblock", id), nil, cookies, nil, nil)
}

func (c *Client) DeleteUser(ctx context.Context, cookies []*http.Cookie, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, cookies, nil, nil)
}
