// Command seed populates the configured storage backend with the demo
// dataset, replacing whatever is persisted.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"devconnect/internal/bootstrap"
	"devconnect/internal/config"
	"devconnect/internal/observability"
	"devconnect/internal/seed"
	"devconnect/internal/store"
)

func main() {
	extraPosts := flag.Int("posts", 0, "number of generated posts to add on top of the fixed demo feed")
	flag.Parse()

	logger := observability.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	blobStore, closer, err := bootstrap.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer() }()
	}

	now := time.Now()
	posts := seed.DemoPosts(now)
	if *extraPosts > 0 {
		factory := seed.NewFactory(now.UnixNano())
		for i := 0; i < *extraPosts; i++ {
			posts = append(posts, factory.BuildPost(now))
		}
	}

	postsData, err := json.Marshal(posts)
	if err != nil {
		logger.Error("failed to encode posts", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := blobStore.Put(ctx, store.KeyPosts, postsData); err != nil {
		logger.Error("failed to write posts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	conversationsData, err := json.Marshal(seed.DemoConversations(now, ""))
	if err != nil {
		logger.Error("failed to encode conversations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := blobStore.Put(ctx, store.KeyMessages, conversationsData); err != nil {
		logger.Error("failed to write conversations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeded demo data",
		slog.String("backend", cfg.StorageBackend),
		slog.Int("posts", len(posts)),
	)
}
