package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"lightweight-feedback-system/internal/entities"
)

const (
	currentUserPath = "/users/me"
	managersPath    = "/users/managers"
	teamPath        = "/users/team"
)

// CurrentUser returns the account the token belongs to.
func (c *Client) CurrentUser(ctx context.Context) (*entities.User, error) {
	var u userDTO
	if err := c.do(ctx, http.MethodGet, currentUserPath, nil, &u); err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	user := u.toEntity()
	return &user, nil
}

// Managers lists every manager account; used by the signup form.
func (c *Client) Managers(ctx context.Context) ([]entities.User, error) {
	var list []userDTO
	if err := c.do(ctx, http.MethodGet, managersPath, nil, &list); err != nil {
		return nil, fmt.Errorf("get managers: %w", err)
	}
	return toUsers(list), nil
}

// TeamMembers lists the direct reports of the signed-in manager.
func (c *Client) TeamMembers(ctx context.Context) ([]entities.User, error) {
	var list []userDTO
	if err := c.do(ctx, http.MethodGet, teamPath, nil, &list); err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	return toUsers(list), nil
}
