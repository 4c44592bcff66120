// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"strings"

	"lightweight-feedback-system/internal/entities"
)

// Form messages shown inline by the login and signup pages.
const (
	MsgUsernameRequired       = "Username is required"
	MsgUsernameEmailRequired  = "Username and email are required"
	MsgRoleInvalid            = "Please choose a manager or employee role"
	MsgManagerRequired        = "Please select a manager for employee accounts"
	MsgLoginFailedFallback    = "Login failed. Please check your credentials."
	MsgRegisterFailedFallback = "Registration failed. Please try again."
)

// Login validates the username and exchanges it for an access token.
func (u *Usecase) Login(ctx context.Context, req entities.LoginRequest) (*entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return nil, entities.NewValidationError(MsgUsernameRequired)
	}

	sess, err := u.repo.Login(ctx, req)
	if err != nil {
		u.log.Errorw("login failed", "username", req.Username, "error", err)
		return nil, err
	}
	return sess, nil
}

// Register validates the signup form and creates the account.
func (u *Usecase) Register(ctx context.Context, req entities.RegisterRequest) (*entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := ValidateRegister(req); err != nil {
		return nil, err
	}

	sess, err := u.repo.Register(ctx, req.Normalize())
	if err != nil {
		u.log.Errorw("registration failed", "username", req.Username, "error", err)
		return nil, err
	}
	return sess, nil
}

// ValidateRegister applies the signup form rules.
func ValidateRegister(req entities.RegisterRequest) error {
	req = req.Normalize()
	if req.Username == "" || req.Email == "" {
		return entities.NewValidationError(MsgUsernameEmailRequired)
	}
	if !req.Role.Valid() {
		return entities.NewValidationError(MsgRoleInvalid)
	}
	if req.Role == entities.RoleEmployee && (req.ManagerID == nil || *req.ManagerID <= 0) {
		return entities.NewValidationError(MsgManagerRequired)
	}
	return nil
}

// CurrentUser returns the account behind the request token.
func (u *Usecase) CurrentUser(ctx context.Context) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.CurrentUser(ctx)
}

// Managers lists manager accounts for the signup form.
func (u *Usecase) Managers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	managers, err := u.repo.Managers(ctx)
	if err != nil {
		u.log.Errorw("failed to load managers", "error", err)
		return nil, err
	}
	return managers, nil
}

// TeamMembers lists the signed-in manager's direct reports.
func (u *Usecase) TeamMembers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.TeamMembers(ctx)
}
