// Package main wires the HTTP server for the feedback web client.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"lightweight-feedback-system/internal/session"
	"lightweight-feedback-system/internal/transport/http/server/handlers-fiber"
	"lightweight-feedback-system/internal/transport/http/views"
	"lightweight-feedback-system/internal/usecase"

	"lightweight-feedback-system/config"
	"lightweight-feedback-system/internal/repository"
	"lightweight-feedback-system/internal/transport/http/middleware"
	"lightweight-feedback-system/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "http", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, cfg.API.Timeout)
	sessions := session.New(log, cfg.Session)

	engine, err := views.NewEngine()
	if err != nil {
		log.Errorw("template initialization error", "error", err)
		return
	}

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
		Views:        engine,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use("/static", filesystem.New(filesystem.Config{Root: views.Static()}))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc, sessions)
	h.Register(serv)

	go func() {
		log.Infow("web client listening", "addr", cfg.ServerAddr(), "api", cfg.API.BaseURL)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
