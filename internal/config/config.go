package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Object storage for assistant avatars
	ImagesBucket    string        `env:"ASSISTANT_IMAGES_BUCKET" envDefault:"assistant_images"`
	S3Region        string        `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint      string        `env:"S3_ENDPOINT"`
	S3UsePathStyle  bool          `env:"S3_USE_PATH_STYLE" envDefault:"false"`
	ImageURLTTL     time.Duration `env:"IMAGE_URL_TTL" envDefault:"24h"`
	DownloadRetries int           `env:"DOWNLOAD_RETRIES" envDefault:"3"`

	// Hydration
	FetchConcurrency  int           `env:"FETCH_CONCURRENCY" envDefault:"4"`
	AvatarConcurrency int           `env:"AVATAR_CONCURRENCY" envDefault:"1"`
	FetchRetries      int           `env:"FETCH_RETRIES" envDefault:"2"`
	FetchRetryMin     time.Duration `env:"FETCH_RETRY_MIN" envDefault:"200ms"`
	FetchRetryMax     time.Duration `env:"FETCH_RETRY_MAX" envDefault:"5s"`
	HydrateTimeout    time.Duration `env:"HYDRATE_TIMEOUT" envDefault:"60s"`

	// Auth
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	// Admin
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Bot behavior
	DropPendingUpdates bool   `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`

	// Telegram logging
	LogTelegramChatID int64 `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError     int   `env:"LOG_TOPIC_ERROR"`
	LogTopicLogin     int   `env:"LOG_TOPIC_LOGIN"`
	LogTopicHydration int   `env:"LOG_TOPIC_HYDRATION"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.FetchConcurrency < 1 {
		cfg.FetchConcurrency = 1
	}
	if cfg.AvatarConcurrency < 1 {
		cfg.AvatarConcurrency = 1
	}
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

func (c *Config) AdminIDsString() string {
	parts := make([]string, len(c.AdminIDs))
	for i, id := range c.AdminIDs {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
