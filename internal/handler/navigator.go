package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/chatbotui/internal/config"
)

// ChatNavigator redirects a chat by telling the user which command to run.
type ChatNavigator struct {
	bot    *bot.Bot
	chatID int64
}

func NewChatNavigator(b *bot.Bot, chatID int64) *ChatNavigator {
	return &ChatNavigator{bot: b, chatID: chatID}
}

func (n *ChatNavigator) Redirect(ctx context.Context, path string) {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    n.chatID,
		Text:      redirectText(path),
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		slog.Error("send redirect", "error", err, "chat_id", n.chatID, "path", path)
	}
}

func redirectText(path string) string {
	if path == config.LoginPath {
		return "🔒 Сессия не найдена или истекла.\n\nВойдите командой " + path + ", чтобы открыть рабочее пространство."
	}
	return "➡️ Перейдите в " + path
}
