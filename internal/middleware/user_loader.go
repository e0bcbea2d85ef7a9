package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/service"
)

type ctxKey string

const UserKey ctxKey = "user"

// GetUser extracts user from context.
func GetUser(ctx context.Context) *domain.User {
	u, ok := ctx.Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}

// WithUser stores user in ctx.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// UserLoader returns middleware that loads the sender into context, creating
// the user on first contact.
func UserLoader(userService *service.UserService, cfg interface{ IsAdmin(int64) bool }) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			_, _, from := updateSource(update)
			if from == nil {
				next(ctx, b, update)
				return
			}

			user, created, err := userService.FindOrCreate(ctx, from.ID, from.FirstName, from.Username, cfg.IsAdmin(from.ID))
			if err != nil {
				slog.Error("load user", "error", err, "telegram_id", from.ID)
				next(ctx, b, update)
				return
			}
			if created {
				slog.Info("user registered", "user_id", user.ID, "telegram_id", from.ID)
			} else if user.FirstName != from.FirstName || user.Username != from.Username {
				if err := userService.UpdateInfo(ctx, user.ID, from.FirstName, from.Username); err != nil {
					slog.Warn("update user info", "error", err, "user_id", user.ID)
				}
			}
			if err := userService.UpdateLastInteraction(ctx, user.ID); err != nil {
				slog.Warn("update last interaction", "error", err, "user_id", user.ID)
			}

			next(WithUser(ctx, user), b, update)
		}
	}
}
