package usecase

import (
	"context"

	"lightweight-feedback-system/internal/entities"
)

// AuthUsecaseInterface abstracts sign-in flows for delivery layers.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, req entities.LoginRequest) (*entities.Session, error)
	Register(ctx context.Context, req entities.RegisterRequest) (*entities.Session, error)
	CurrentUser(ctx context.Context) (*entities.User, error)
	Managers(ctx context.Context) ([]entities.User, error)
}

// TeamUsecaseInterface abstracts roster operations.
type TeamUsecaseInterface interface {
	TeamMembers(ctx context.Context) ([]entities.User, error)
}

// FeedbackUsecaseInterface abstracts feedback operations.
type FeedbackUsecaseInterface interface {
	CreateFeedback(ctx context.Context, req entities.FeedbackCreate) (*entities.Feedback, error)
	UpdateFeedback(ctx context.Context, feedbackID int, req entities.FeedbackUpdate) (*entities.Feedback, error)
	AcknowledgeFeedback(ctx context.Context, feedbackID int) error
	FeedbackList(ctx context.Context) ([]entities.Feedback, error)
	EmployeeFeedback(ctx context.Context, employeeID int) ([]entities.Feedback, error)
}

// DashboardUsecaseInterface abstracts dashboard loading.
type DashboardUsecaseInterface interface {
	Stats(ctx context.Context) (entities.DashboardStats, error)
	ManagerDashboard(ctx context.Context, employeeID int) (*entities.ManagerDashboard, error)
	EmployeeDashboard(ctx context.Context) (*entities.EmployeeDashboard, error)
}
