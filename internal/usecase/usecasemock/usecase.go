// Package usecasemock provides a testify mock of the use-case layer for delivery tests.
package usecasemock

import (
	"context"

	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// Usecase is a testify mock of usecase.InterfaceUsecase.
type Usecase struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*Usecase)(nil)

func (m *Usecase) Login(ctx context.Context, req entities.LoginRequest) (*entities.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *Usecase) Register(ctx context.Context, req entities.RegisterRequest) (*entities.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Session), args.Error(1)
}

func (m *Usecase) CurrentUser(ctx context.Context) (*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *Usecase) Managers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *Usecase) TeamMembers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *Usecase) CreateFeedback(ctx context.Context, req entities.FeedbackCreate) (*entities.Feedback, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Feedback), args.Error(1)
}

func (m *Usecase) UpdateFeedback(ctx context.Context, feedbackID int, req entities.FeedbackUpdate) (*entities.Feedback, error) {
	args := m.Called(ctx, feedbackID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Feedback), args.Error(1)
}

func (m *Usecase) AcknowledgeFeedback(ctx context.Context, feedbackID int) error {
	return m.Called(ctx, feedbackID).Error(0)
}

func (m *Usecase) FeedbackList(ctx context.Context) ([]entities.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Feedback), args.Error(1)
}

func (m *Usecase) EmployeeFeedback(ctx context.Context, employeeID int) ([]entities.Feedback, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Feedback), args.Error(1)
}

func (m *Usecase) Stats(ctx context.Context) (entities.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.DashboardStats), args.Error(1)
}

func (m *Usecase) ManagerDashboard(ctx context.Context, employeeID int) (*entities.ManagerDashboard, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ManagerDashboard), args.Error(1)
}

func (m *Usecase) EmployeeDashboard(ctx context.Context) (*entities.EmployeeDashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EmployeeDashboard), args.Error(1)
}
