package config

import "time"

const (
	// Chat settings fallbacks when the workspace leaves a default unset
	FallbackModel              = "gpt-4-1106-preview"
	FallbackTemperature        = 0.5
	FallbackContextLength      = 4096
	FallbackEmbeddingsProvider = "openai"

	// Route the session guard redirects to
	LoginPath = "/login"

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Rate limits (per minute)
	RateLimitRegular = 20

	// Stale rate limit window cleanup interval
	RateLimitCleanup = 60 * time.Second

	// Workspaces per page
	WorkspacesPerPage = 5

	// Chats per page
	ChatsPerPage = 8

	// Timeout for user-facing status replies after hydration
	ReplyTimeout = 10 * time.Second
)
