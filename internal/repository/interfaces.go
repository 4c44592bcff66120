// Package repository contains interfaces for the remote feedback API.
package repository

import (
	"context"

	"lightweight-feedback-system/internal/entities"
)

// LifecycleInterface describes backend startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// AuthInterface exposes login and registration.
type AuthInterface interface {
	Login(ctx context.Context, req entities.LoginRequest) (*entities.Session, error)
	Register(ctx context.Context, req entities.RegisterRequest) (*entities.Session, error)
}

// UserInterface exposes user lookups.
type UserInterface interface {
	CurrentUser(ctx context.Context) (*entities.User, error)
	Managers(ctx context.Context) ([]entities.User, error)
	TeamMembers(ctx context.Context) ([]entities.User, error)
}

// FeedbackInterface exposes feedback operations.
type FeedbackInterface interface {
	CreateFeedback(ctx context.Context, req entities.FeedbackCreate) (*entities.Feedback, error)
	ListFeedback(ctx context.Context) ([]entities.Feedback, error)
	EmployeeFeedback(ctx context.Context, employeeID int) ([]entities.Feedback, error)
	UpdateFeedback(ctx context.Context, feedbackID int, req entities.FeedbackUpdate) (*entities.Feedback, error)
	AcknowledgeFeedback(ctx context.Context, feedbackID int) error
}

// StatsInterface exposes dashboard counters.
type StatsInterface interface {
	DashboardStats(ctx context.Context) (entities.DashboardStats, error)
}
