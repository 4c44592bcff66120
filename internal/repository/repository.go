// Package repository provides factory for API backends.
package repository

import (
	"context"
	"fmt"

	"lightweight-feedback-system/config"
	"lightweight-feedback-system/internal/repository/httpapi"

	"go.uber.org/zap"
)

// Repository aggregates all API interfaces.
type Repository interface {
	LifecycleInterface
	AuthInterface
	UserInterface
	FeedbackInterface
	StatsInterface
}

// New constructs an API backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "http":
		return httpapi.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
