// Command seed creates a demo user and two sample articles. It does nothing
// when the demo user already exists.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/hongminglow/blog-be/internal/articles"
	"github.com/hongminglow/blog-be/internal/common"
	"github.com/hongminglow/blog-be/internal/config"
	"github.com/hongminglow/blog-be/internal/database"
	"github.com/hongminglow/blog-be/internal/logger"
	"github.com/hongminglow/blog-be/internal/users"
)

const (
	demoUsername = "demo_user"
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

var sampleArticles = []struct{ title, content string }{
	{
		title: "Welcome to My Blog",
		content: `Welcome to my personal blog! This is my first post where I'll be sharing my thoughts, experiences, and insights on various topics.

Feel free to register and create your own posts to join the conversation!`,
	},
	{
		title: "Getting Started with Go and Next.js",
		content: `In this post I share my experience building a full-stack application with a Go API and a Next.js frontend.

Key benefits of this stack:
- Fast development cycle
- Great performance
- Excellent developer tools`,
	},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	log := logger.NewSlog(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	store, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Error("init database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := seed(ctx, users.NewService(store, log), articles.NewService(store, log)); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("seed completed", "username", demoUsername)
}

func seed(ctx context.Context, userSvc *users.Service, articleSvc *articles.Service) error {
	userID, err := userSvc.Register(ctx, demoUsername, demoEmail, demoPassword)
	if errors.Is(err, common.ErrDuplicateIdentity) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, a := range sampleArticles {
		if _, err := articleSvc.Create(ctx, userID, a.title, a.content); err != nil {
			return err
		}
	}
	return nil
}
