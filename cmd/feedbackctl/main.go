// Package main runs the feedbackctl terminal client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lightweight-feedback-system/config"
	"lightweight-feedback-system/internal/cli"
	"lightweight-feedback-system/internal/credentials"
	"lightweight-feedback-system/internal/repository"
	"lightweight-feedback-system/internal/usecase"
	"lightweight-feedback-system/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render(err.Error()))
		return 1
	}

	log, err := logger.New(cfg.CLI.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render(err.Error()))
		return 1
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, "http", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return 1
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, cfg.API.Timeout)
	root := cli.NewRootCmd(log, uc, credentials.NewStore(cfg.CLI.CredentialsPath))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render(err.Error()))
		return 1
	}
	return 0
}
