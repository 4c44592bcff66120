package usecase

import (
	"context"
	"time"

	"lightweight-feedback-system/internal/repository"
	"lightweight-feedback-system/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	TeamUsecaseInterface
	FeedbackUsecaseInterface
	DashboardUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
