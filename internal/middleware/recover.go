package middleware

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Recover returns middleware that recovers from panics. onPanic, if set, is
// told about the chat the panic happened in.
func Recover(onPanic func(ctx context.Context, chatID int64, recovered any)) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			defer func() {
				if r := recover(); r != nil {
					_, chatID, _ := updateSource(update)
					slog.Error("panic recovered in handler",
						"panic", r,
						"chat_id", chatID,
						"stack", string(debug.Stack()),
					)
					if onPanic != nil {
						onPanic(ctx, chatID, r)
					}
				}
			}()
			next(ctx, b, update)
		}
	}
}
