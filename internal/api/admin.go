package api

import (
	"context"
	"net/http"
	"net/url"
)

// CreateUserRequest is the body for POST /admin/create-user. Role and
// MaxUsersAllowed are only honored for super_admin callers creating admin
// accounts; the server enforces both the role rules and the per-admin
// user-creation quota.
type CreateUserRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	Tokens          int    `json:"tokens"`
	Role            string `json:"role,omitempty"`
	MaxUsersAllowed int    `json:"max_users_allowed,omitempty"`
}

// CreateUserResult is the acknowledgment for a created account.
type CreateUserResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Tokens  int    `json:"tokens"`
}

// ListUsers returns the accounts visible to the calling admin.
func (c *Client) ListUsers(ctx context.Context) ([]AccountRow, error) {
	var rows []AccountRow
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateUser creates an account.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error) {
	var resp CreateUserResult
	if err := c.do(ctx, http.MethodPost, "/admin/create-user", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTokens sets a user's token balance.
func (c *Client) UpdateTokens(ctx context.Context, userID string, tokens int) error {
	payload := map[string]int{"tokens": tokens}
	return c.do(ctx, http.MethodPatch, "/admin/users/"+url.PathEscape(userID)+"/tokens", payload, nil)
}

// UpdateMaxUsers sets an admin's user-creation quota.
func (c *Client) UpdateMaxUsers(ctx context.Context, userID string, maxUsers int) error {
	payload := map[string]int{"max_users_allowed": maxUsers}
	return c.do(ctx, http.MethodPatch, "/admin/users/"+url.PathEscape(userID)+"/max-users", payload, nil)
}

// DeleteUser removes an account and its scan logs.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(userID), nil, nil)
}

// UserLogs fetches another user's scan history.
func (c *Client) UserLogs(ctx context.Context, userID string) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if err := c.do(ctx, http.MethodGet, "/admin/users/"+url.PathEscape(userID)+"/logs", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MeSummary returns the calling admin's quota usage.
func (c *Client) MeSummary(ctx context.Context) (*MeSummary, error) {
	var resp MeSummary
	if err := c.do(ctx, http.MethodGet, "/admin/me-summary", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
