package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/middleware"
	tg "github.com/set-night/chatbotui/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !privateMessage(update) {
		return
	}
	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	text := fmt.Sprintf(
		"👋 Привет, *%s*!\n\n"+
			"Я открываю ваши рабочие пространства: ассистентов, чаты, файлы, пресеты, промпты, инструменты и модели.\n\n"+
			"📋 *Команды:*\n"+
			"/login — Войти и открыть домашнее пространство\n"+
			"/workspaces — Список пространств\n"+
			"/workspace <id> — Открыть пространство\n"+
			"/status — Состояние загрузки\n"+
			"/assistants — Ассистенты\n"+
			"/chats — Чаты\n"+
			"/logout — Выйти",
		tg.EscapeMarkdown(user.FirstName),
	)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
}

func (h *Handler) handleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !privateMessage(update) {
		return
	}
	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}
	chatID := update.Message.Chat.ID

	session, err := h.authService.Login(ctx, user.ID)
	if err != nil {
		slog.Error("login", "error", err, "user_id", user.ID)
		h.tgLogger.LogError(err, "login")
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Не удалось войти. Попробуйте позже.",
		})
		return
	}
	slog.Info("user logged in", "user_id", user.ID, "expires_at", session.ExpiresAt)
	h.tgLogger.LogLogin(user.TelegramID, user.FirstName, user.Username)

	home, err := h.workspaceService.Home(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrWorkspaceNotFound) {
			slog.Error("get home workspace", "error", err, "user_id", user.ID)
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "✅ Вход выполнен.\n\nДомашнее пространство не найдено, выберите пространство: /workspaces",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "✅ Вход выполнен до " + session.ExpiresAt.Format("02.01.2006 15:04"),
	})
	h.openWorkspace(ctx, b, chatID, home.ID)
}

func (h *Handler) handleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !privateMessage(update) {
		return
	}
	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if err := h.authService.Logout(ctx, user.ID); err != nil {
		slog.Error("logout", "error", err, "user_id", user.ID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Не удалось выйти. Попробуйте позже.",
		})
		return
	}
	h.hydrators.Remove(chatID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "👋 Вы вышли. Загруженные данные очищены.",
	})
}
