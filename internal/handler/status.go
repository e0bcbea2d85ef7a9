package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/set-night/chatbotui/internal/config"
	"github.com/set-night/chatbotui/internal/state"
	tg "github.com/set-night/chatbotui/internal/telegram"
)

const noWorkspaceText = "📭 Пространство не открыто. Выберите его: /workspaces"

// snapshot returns the chat's state, or false when nothing was ever opened.
func (h *Handler) snapshot(chatID int64) (state.State, bool) {
	hy, ok := h.hydrators.Get(chatID)
	if !ok {
		return state.State{}, false
	}
	st := hy.Store().Snapshot()
	return st, st.Status != state.StatusIdle
}

func (h *Handler) handleStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !privateMessage(update) {
		return
	}
	chatID := update.Message.Chat.ID

	st, ok := h.snapshot(chatID)
	text := noWorkspaceText
	if ok {
		text = renderStatus(&st)
	}
	if err := tg.SendLongMessage(ctx, b, chatID, text, nil); err != nil {
		slog.Error("send status", "error", err)
	}
}

func (h *Handler) handleAssistants(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !privateMessage(update) {
		return
	}
	chatID := update.Message.Chat.ID

	st, ok := h.snapshot(chatID)
	if !ok || st.Assistants == nil {
		text := noWorkspaceText
		if ok && st.Loading() {
			text = "⏳ Ассистенты ещё загружаются."
		}
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
		return
	}
	if len(st.Assistants) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "🤖 В пространстве нет ассистентов."})
		return
	}

	var plain []string
	for _, a := range st.Assistants {
		caption := renderAssistant(a)
		img, resolved := st.AssistantImage(a.ID)
		if resolved && img.Base64 != "" {
			err := tg.SendDataURLPhoto(ctx, b, chatID, img.Base64, a.ID.String(), caption)
			if err == nil {
				continue
			}
			slog.Warn("send assistant avatar", "error", err, "assistant_id", a.ID)
		}
		plain = append(plain, caption)
	}
	if len(plain) == 0 {
		return
	}
	if err := tg.SendLongMessage(ctx, b, chatID, strings.Join(plain, "\n\n"), nil); err != nil {
		slog.Error("send assistants", "error", err)
	}
}

func (h *Handler) handleChats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !privateMessage(update) {
		return
	}
	h.sendChatsPage(ctx, b, update.Message.Chat.ID, 0, 0)
}

func (h *Handler) handleChatsPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackChat(update)
	answer(ctx, b, update, "")
	if !ok {
		return
	}
	page, err := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "chatsp_"))
	if err != nil || page < 0 {
		return
	}
	h.sendChatsPage(ctx, b, chatID, page, messageID)
}

func (h *Handler) sendChatsPage(ctx context.Context, b *bot.Bot, chatID int64, page, messageID int) {
	st, ok := h.snapshot(chatID)
	if !ok || st.Chats == nil {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: noWorkspaceText})
		return
	}

	totalPages := tg.TotalPages(len(st.Chats), config.ChatsPerPage)
	if page >= totalPages {
		page = totalPages - 1
	}
	start := page * config.ChatsPerPage
	end := min(start+config.ChatsPerPage, len(st.Chats))

	var rows [][]models.InlineKeyboardButton
	for _, c := range st.Chats[start:end] {
		label := chatLabel(c.Name, c.CreatedAt)
		if st.SelectedChat != nil && st.SelectedChat.ID == c.ID {
			label += " ✅"
		}
		rows = append(rows, tg.ButtonRow(tg.InlineButton(label, "chat_"+c.ID.String())))
	}
	if totalPages > 1 {
		rows = append(rows, tg.PaginationRow(page, totalPages, "chatsp"))
	}

	text := fmt.Sprintf("💬 *Чаты* (%d шт.)", len(st.Chats))
	if len(st.Chats) == 0 {
		text = "💬 В пространстве нет чатов."
	}
	var markup models.ReplyMarkup
	if len(rows) > 0 {
		markup = tg.InlineKeyboard(rows...)
	}

	if messageID != 0 {
		if err := tg.EditMessage(ctx, b, chatID, messageID, text, markup); err != nil {
			slog.Warn("edit chats page", "error", err)
		}
		return
	}
	if err := tg.SendLongMessage(ctx, b, chatID, text, markup); err != nil {
		slog.Error("send chats page", "error", err)
	}
}

func (h *Handler) handleChatSelect(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, _, ok := callbackChat(update)
	if !ok {
		answer(ctx, b, update, "")
		return
	}
	id, err := uuid.Parse(strings.TrimPrefix(update.CallbackQuery.Data, "chat_"))
	if err != nil {
		answer(ctx, b, update, "❌ Неверный идентификатор")
		return
	}

	hy, exists := h.hydrators.Get(chatID)
	if !exists {
		answer(ctx, b, update, "📭 Пространство не открыто")
		return
	}
	chat, err := hy.Store().SelectChat(id)
	if err != nil {
		answer(ctx, b, update, "❌ Чат не найден в текущем пространстве")
		return
	}
	answer(ctx, b, update, "✅ "+chatLabel(chat.Name, chat.CreatedAt))
}
