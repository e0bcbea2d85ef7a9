package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	chatbotui "github.com/set-night/chatbotui"
	"github.com/set-night/chatbotui/internal/config"
	"github.com/set-night/chatbotui/internal/handler"
	"github.com/set-night/chatbotui/internal/hydrate"
	"github.com/set-night/chatbotui/internal/middleware"
	"github.com/set-night/chatbotui/internal/repository"
	"github.com/set-night/chatbotui/internal/repository/sqlc"
	"github.com/set-night/chatbotui/internal/service"
	"github.com/set-night/chatbotui/internal/storage"
	"github.com/set-night/chatbotui/internal/telegram"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL, cfg.FetchConcurrency)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(chatbotui.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize sqlc queries
	queries := sqlc.New(pool)

	// Initialize services
	userService := service.NewUserService(pool, queries)
	authService := service.NewAuthService(pool, queries, cfg.SessionTTL)
	workspaceService := service.NewWorkspaceService(pool, queries)

	// Object storage for assistant avatars
	s3Client, err := storage.NewS3Client(ctx, cfg.S3Region, cfg.S3Endpoint, cfg.S3UsePathStyle)
	if err != nil {
		slog.Error("failed to create s3 client", "error", err)
		os.Exit(1)
	}
	downloader := storage.NewDownloader(cfg.DownloadRetries, cfg.FetchRetryMin, cfg.FetchRetryMax)
	images := storage.NewImages(s3Client, cfg.ImagesBucket, cfg.ImageURLTTL, downloader)

	// Set once the bot exists; panics before that are only logged
	var tgLogger *telegram.TelegramLogger

	// Create bot
	b, err := bot.New(cfg.BotToken,
		bot.WithMiddlewares(
			middleware.Recover(func(ctx context.Context, chatID int64, recovered any) {
				tgLogger.LogError(fmt.Errorf("panic: %v", recovered), fmt.Sprintf("chat %d", chatID))
			}),
			middleware.Logging(),
			middleware.RateLimit(queries, config.RateLimitRegular),
			middleware.UserLoader(userService, cfg),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {}),
	)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}
	if cfg.DropPendingUpdates {
		if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			slog.Warn("failed to drop pending updates", "error", err)
		}
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	// Initialize telegram logger
	tgLogger = telegram.NewTelegramLogger(b, cfg)

	// One hydrator per chat; private chats share their id with the user
	hydrateOpts := hydrate.Options{
		FetchConcurrency:  cfg.FetchConcurrency,
		AvatarConcurrency: cfg.AvatarConcurrency,
		Retry: hydrate.RetryPolicy{
			Retries:     cfg.FetchRetries,
			MinWait:     cfg.FetchRetryMin,
			MaxWait:     cfg.FetchRetryMax,
			IsTransient: service.IsTransient,
		},
		Timeout:  cfg.HydrateTimeout,
		Defaults: hydrate.DefaultSettings(),
	}
	hydrators := hydrate.NewRegistry(func(chatID int64) *hydrate.Hydrator {
		return hydrate.New(hydrate.Deps{
			Source:  workspaceService,
			Images:  images,
			Auth:    authService.For(chatID),
			Nav:     handler.NewChatNavigator(b, chatID),
			Logger:  logger.With("chat_id", chatID),
			Options: hydrateOpts,
		})
	})

	// Initialize handler
	h := handler.New(handler.Deps{
		Bot:              b,
		Cfg:              cfg,
		AuthService:      authService,
		WorkspaceService: workspaceService,
		Hydrators:        hydrators,
		TgLogger:         tgLogger,
	})

	// Register all handlers
	h.Register()

	// Start stale rate limit and expired session cleanup goroutine
	go func() {
		ticker := time.NewTicker(config.RateLimitCleanup)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := queries.CleanupStaleRateLimits(ctx); err != nil {
					slog.Error("cleanup stale rate limits", "error", err)
				}
				if err := authService.CleanupExpired(ctx); err != nil {
					slog.Error("cleanup expired sessions", "error", err)
				}
			}
		}
	}()

	// Start bot
	slog.Info("starting bot", "username", me.Username, "id", me.ID)
	b.Start(ctx)

	// Graceful shutdown
	slog.Info("bot stopped gracefully", "open_chats", hydrators.Len())
}
