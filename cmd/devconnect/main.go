package main

import (
	"context"
	"log/slog"
	"os"

	"devconnect/internal/bootstrap"
	"devconnect/internal/config"
	"devconnect/internal/observability"
	"devconnect/internal/share"
)

func main() {
	logger := observability.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	caps := share.Capabilities{Clipboard: &share.FakeClipboard{}}
	rt, err := bootstrap.InitRuntime(ctx, cfg, logger, caps)
	if err != nil {
		logger.Error("failed to initialize runtime", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer rt.Close()

	session := "unauthenticated"
	if user := rt.Identity.CurrentUser(); user != nil {
		session = user.Username
	}
	logger.Info("devconnect ready",
		slog.String("env", cfg.Env),
		slog.String("backend", cfg.StorageBackend),
		slog.String("session", session),
		slog.Int("posts", len(rt.Content.Posts())),
		slog.Int("conversations", len(rt.Messages.Conversations())),
		slog.Int("suggested_developers", len(rt.Network.Suggestions())),
	)
}
