package repository

import (
	"context"
	"testing"
	"time"

	"lightweight-feedback-system/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewBackends(t *testing.T) {
	cfg := &config.Config{API: config.APIConfig{BaseURL: "http://localhost:8000", Timeout: time.Second}}

	repo, err := New(context.Background(), "http", zap.NewNop().Sugar(), cfg)
	require.NoError(t, err)
	require.NotNil(t, repo)

	_, err = New(context.Background(), "postgres", zap.NewNop().Sugar(), cfg)
	require.Error(t, err)
}
