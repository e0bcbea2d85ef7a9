package handler

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/set-night/chatbotui/internal/config"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/middleware"
	tg "github.com/set-night/chatbotui/internal/telegram"
)

func (h *Handler) handleWorkspaceCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !privateMessage(update) {
		return
	}
	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}
	chatID := update.Message.Chat.ID

	command, arg := splitCommand(update.Message.Text)
	switch command {
	case "/workspaces":
		h.sendWorkspacesPage(ctx, b, chatID, user, 0, 0)
	case "/workspace":
		if arg == "" {
			h.sendWorkspacesPage(ctx, b, chatID, user, 0, 0)
			return
		}
		id, err := uuid.Parse(arg)
		if err != nil {
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "❌ Неверный идентификатор пространства.",
			})
			return
		}
		h.openOwnWorkspace(ctx, b, chatID, user, id)
	}
}

func (h *Handler) handleWorkspaceSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, _, ok := callbackChat(update)
	user := middleware.GetUser(ctx)
	if !ok || user == nil {
		answer(ctx, b, update, "")
		return
	}

	id, err := uuid.Parse(strings.TrimPrefix(update.CallbackQuery.Data, "ws_"))
	if err != nil {
		answer(ctx, b, update, "❌ Неверный идентификатор")
		return
	}
	answer(ctx, b, update, "⏳ Загрузка...")
	h.openOwnWorkspace(ctx, b, chatID, user, id)
}

func (h *Handler) handleWorkspacesPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackChat(update)
	user := middleware.GetUser(ctx)
	answer(ctx, b, update, "")
	if !ok || user == nil {
		return
	}

	page, err := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "wsp_"))
	if err != nil || page < 0 {
		return
	}
	h.sendWorkspacesPage(ctx, b, chatID, user, page, messageID)
}

// sendWorkspacesPage sends one page of the user's workspaces, editing
// messageID in place when it is set.
func (h *Handler) sendWorkspacesPage(ctx context.Context, b *bot.Bot, chatID int64, user *domain.User, page, messageID int) {
	total, err := h.workspaceService.CountByUser(ctx, user.ID)
	if err != nil {
		slog.Error("count workspaces", "error", err, "user_id", user.ID)
		return
	}

	totalPages := tg.TotalPages(total, config.WorkspacesPerPage)
	if page >= totalPages {
		page = totalPages - 1
	}

	workspaces, err := h.workspaceService.ListByUser(ctx, user.ID, config.WorkspacesPerPage, page*config.WorkspacesPerPage)
	if err != nil {
		slog.Error("list workspaces", "error", err, "user_id", user.ID)
		return
	}

	var current uuid.UUID
	if hy, ok := h.hydrators.Get(chatID); ok {
		current = hy.Store().Snapshot().WorkspaceID
	}

	text := renderWorkspaces(total)
	var rows [][]models.InlineKeyboardButton
	for _, ws := range workspaces {
		rows = append(rows, tg.ButtonRow(tg.InlineButton(workspaceLabel(ws, ws.ID == current), "ws_"+ws.ID.String())))
	}
	if totalPages > 1 {
		rows = append(rows, tg.PaginationRow(page, totalPages, "wsp"))
	}
	var markup models.ReplyMarkup
	if len(rows) > 0 {
		markup = tg.InlineKeyboard(rows...)
	}

	if messageID != 0 {
		if err := tg.EditMessage(ctx, b, chatID, messageID, text, markup); err != nil {
			slog.Warn("edit workspaces page", "error", err)
		}
		return
	}
	if err := tg.SendLongMessage(ctx, b, chatID, text, markup); err != nil {
		slog.Error("send workspaces page", "error", err)
	}
}

// openOwnWorkspace opens workspaceID if it belongs to user.
func (h *Handler) openOwnWorkspace(ctx context.Context, b *bot.Bot, chatID int64, user *domain.User, workspaceID uuid.UUID) {
	ws, err := h.workspaceService.Workspace(ctx, workspaceID)
	if err == nil && ws.UserID != user.ID {
		err = domain.ErrWorkspaceNotFound
	}
	if err != nil {
		if !errors.Is(err, domain.ErrWorkspaceNotFound) {
			slog.Error("get workspace", "error", err, "workspace_id", workspaceID)
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Пространство не найдено.",
		})
		return
	}
	h.openWorkspace(ctx, b, chatID, workspaceID)
}

// openWorkspace hydrates workspaceID into the chat's state in the background
// and reports the outcome. Opening another workspace meanwhile supersedes the
// run, which then reports nothing.
func (h *Handler) openWorkspace(ctx context.Context, b *bot.Bot, chatID int64, workspaceID uuid.UUID) {
	hy := h.hydrators.GetOrCreate(chatID)

	go func() {
		stopTyping := tg.StartTyping(ctx, b, chatID)
		err := hy.Open(ctx, workspaceID)
		stopTyping()

		var text string
		switch {
		case err == nil:
			st := hy.Store().Snapshot()
			text = renderStatus(&st)
		case errors.Is(err, domain.ErrSuperseded), errors.Is(err, domain.ErrUnauthenticated):
			// A newer run reports for itself; the navigator already sent
			// the login hint.
			return
		case errors.Is(err, domain.ErrSessionLookup):
			slog.Error("session lookup", "error", err, "chat_id", chatID)
			h.tgLogger.LogError(err, "session lookup")
			text = "⚠️ Не удалось проверить сессию. Попробуйте позже."
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			text = "❌ Пространство не найдено."
		case errors.Is(err, context.Canceled):
			return
		default:
			h.tgLogger.LogHydrationFailed(chatID, workspaceID, err)
			text = "❌ Не удалось загрузить пространство. Попробуйте ещё раз: /workspace " + workspaceID.String()
		}

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), config.ReplyTimeout)
		defer cancel()
		if err := tg.SendLongMessage(sendCtx, b, chatID, text, nil); err != nil {
			slog.Error("send hydration result", "error", err, "chat_id", chatID)
		}
	}()
}

// splitCommand splits "/cmd@bot arg" into "/cmd" and "arg".
func splitCommand(text string) (command, arg string) {
	command, arg, _ = strings.Cut(strings.TrimSpace(text), " ")
	command, _, _ = strings.Cut(command, "@")
	return command, strings.TrimSpace(arg)
}
