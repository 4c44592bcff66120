package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"lightweight-feedback-system/internal/entities"
)

const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
)

// Login exchanges a username for an access token.
func (c *Client) Login(ctx context.Context, req entities.LoginRequest) (*entities.Session, error) {
	var resp loginResponseDTO
	if err := c.do(ctx, http.MethodPost, loginPath, loginRequestDTO{Username: req.Username}, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	c.log.Infow("login succeeded", "username", req.Username, "user_id", resp.User.ID)
	return resp.toEntity(), nil
}

// Register creates an account and returns its access token.
func (c *Client) Register(ctx context.Context, req entities.RegisterRequest) (*entities.Session, error) {
	body := registerRequestDTO{
		Username:  req.Username,
		Email:     req.Email,
		Role:      string(req.Role),
		ManagerID: req.ManagerID,
	}
	var resp loginResponseDTO
	if err := c.do(ctx, http.MethodPost, registerPath, body, &resp); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	c.log.Infow("account registered", "username", req.Username, "role", req.Role, "user_id", resp.User.ID)
	return resp.toEntity(), nil
}
