package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/google/uuid"
	"github.com/set-night/chatbotui/internal/config"
)

// TelegramLogger mirrors notable events into topics of an operator chat.
type TelegramLogger struct {
	bot *bot.Bot
	cfg *config.Config
}

func NewTelegramLogger(b *bot.Bot, cfg *config.Config) *TelegramLogger {
	return &TelegramLogger{bot: b, cfg: cfg}
}

type LogType string

const (
	LogTypeError     LogType = "error"
	LogTypeLogin     LogType = "login"
	LogTypeHydration LogType = "hydration"
)

func (l *TelegramLogger) Log(logType LogType, message string) {
	if l == nil || l.cfg.LogTelegramChatID == 0 {
		return
	}

	topicID := l.topicID(logType)
	if topicID == 0 {
		return
	}

	if runes := []rune(message); len(runes) > config.MaxTelegramMessageLen {
		message = string(runes[:config.MaxTelegramMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := l.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          l.cfg.LogTelegramChatID,
		Text:            message,
		ParseMode:       "Markdown",
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram log", "type", logType, "error", err)
	}
}

func (l *TelegramLogger) LogError(err error, context string) {
	msg := fmt.Sprintf("❌ *Error*\n\n*Context:* %s\n*Error:* `%s`\n*Time:* %s",
		context, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	l.Log(LogTypeError, msg)
}

func (l *TelegramLogger) LogLogin(telegramID int64, name, username string) {
	msg := fmt.Sprintf("🔑 *Login*\n\n*ID:* `%d`\n*Name:* %s", telegramID, EscapeMarkdown(name))
	if username != "" {
		msg += "\n*Username:* @" + EscapeMarkdown(username)
	}
	l.Log(LogTypeLogin, msg)
}

func (l *TelegramLogger) LogHydrationFailed(chatID int64, workspaceID uuid.UUID, err error) {
	msg := fmt.Sprintf("🧩 *Hydration failed*\n\n*Chat:* `%d`\n*Workspace:* `%s`\n*Error:* `%s`",
		chatID, workspaceID, err.Error())
	l.Log(LogTypeHydration, msg)
}

func (l *TelegramLogger) topicID(logType LogType) int {
	switch logType {
	case LogTypeError:
		return l.cfg.LogTopicError
	case LogTypeLogin:
		return l.cfg.LogTopicLogin
	case LogTypeHydration:
		return l.cfg.LogTopicHydration
	default:
		return 0
	}
}
