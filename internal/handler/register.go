package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypePrefix, h.handleLogin)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypePrefix, h.handleLogout)
	// Also matches /workspaces.
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/workspace", bot.MatchTypePrefix, h.handleWorkspaceCommand)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypePrefix, h.handleStatus)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/assistants", bot.MatchTypePrefix, h.handleAssistants)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/chats", bot.MatchTypePrefix, h.handleChats)

	// Workspace callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "ws_", bot.MatchTypePrefix, h.handleWorkspaceSelect)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "wsp_", bot.MatchTypePrefix, h.handleWorkspacesPage)

	// Chat callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "chat_", bot.MatchTypePrefix, h.handleChatSelect)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "chatsp_", bot.MatchTypePrefix, h.handleChatsPage)

	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "noop", bot.MatchTypeExact, h.handleNoop)
}

// handleNoop acknowledges taps on pagination indicators and other
// non-interactive inline buttons.
func (h *Handler) handleNoop(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery != nil {
		answer(ctx, b, update, "")
	}
}

func answer(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
		Text:            text,
	})
}

// callbackChat returns the chat and message a callback was pressed in.
func callbackChat(update *models.Update) (chatID int64, messageID int, ok bool) {
	msg := update.CallbackQuery.Message.Message
	if msg == nil || msg.Chat.Type != "private" {
		return 0, 0, false
	}
	return msg.Chat.ID, msg.ID, true
}

func privateMessage(update *models.Update) bool {
	return update.Message != nil && update.Message.Chat.Type == "private"
}
