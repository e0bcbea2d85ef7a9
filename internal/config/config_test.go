package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "token")
		t.Setenv("DATABASE_URL", "postgres://localhost/chatbotui")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "assistant_images", cfg.ImagesBucket)
		assert.Equal(t, 24*time.Hour, cfg.ImageURLTTL)
		assert.Equal(t, 4, cfg.FetchConcurrency)
		assert.Equal(t, 1, cfg.AvatarConcurrency)
		assert.Equal(t, 60*time.Second, cfg.HydrateTimeout)
		assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	})

	t.Run("requires bot token", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "token")
		require.NoError(t, os.Unsetenv("BOT_TOKEN"))
		t.Setenv("DATABASE_URL", "postgres://localhost/chatbotui")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("clamps concurrency", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "token")
		t.Setenv("DATABASE_URL", "postgres://localhost/chatbotui")
		t.Setenv("FETCH_CONCURRENCY", "0")
		t.Setenv("AVATAR_CONCURRENCY", "-3")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.FetchConcurrency)
		assert.Equal(t, 1, cfg.AvatarConcurrency)
	})

	t.Run("parses admin ids", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "token")
		t.Setenv("DATABASE_URL", "postgres://localhost/chatbotui")
		t.Setenv("ADMIN_IDS", "10,20")
		t.Setenv("LOG_LEVEL", "DEBUG")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsAdmin(20))
		assert.False(t, cfg.IsAdmin(30))
		assert.Equal(t, "10,20", cfg.AdminIDsString())
		assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	})
}
