package middleware

import "github.com/go-telegram/bot/models"

// updateSource extracts the chat and sender of an update. Either may be zero
// for update kinds the bot does not handle.
func updateSource(update *models.Update) (kind string, chatID int64, from *models.User) {
	switch {
	case update.Message != nil:
		return "message", update.Message.Chat.ID, update.Message.From
	case update.CallbackQuery != nil:
		if msg := update.CallbackQuery.Message.Message; msg != nil {
			chatID = msg.Chat.ID
		}
		return "callback_query", chatID, &update.CallbackQuery.From
	}
	return "unknown", 0, nil
}
