package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/chatbotui/internal/repository/sqlc"
)

// RateLimit returns middleware that allows at most limit messages per chat
// per minute. Workspace switches are the expensive path, so callbacks count
// too.
func RateLimit(queries *sqlc.Queries, limit int) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			_, chatID, _ := updateSource(update)
			if chatID == 0 {
				next(ctx, b, update)
				return
			}

			count, err := queries.CheckAndIncrementRateLimit(ctx, chatID)
			if err != nil {
				slog.Error("rate limit check failed", "error", err, "chat_id", chatID)
				next(ctx, b, update)
				return
			}

			if int(count) > limit {
				slog.Debug("rate limited", "chat_id", chatID, "count", count, "limit", limit)
				if update.CallbackQuery != nil {
					b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
						CallbackQueryID: update.CallbackQuery.ID,
						Text:            "⏳ Слишком много запросов. Подождите немного.",
					})
					return
				}
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Слишком много запросов. Подождите немного.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
