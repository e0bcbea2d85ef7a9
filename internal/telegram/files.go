package telegram

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/chatbotui/internal/storage"
)

// PhotoFromDataURL turns a base64 data URL into an upload named after name
// with an extension derived from the payload's MIME type.
func PhotoFromDataURL(dataURL, name string) (*models.InputFileUpload, error) {
	data, mime, err := storage.DecodeDataURL(dataURL)
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("decode photo: unexpected mime type %q", mime)
	}
	ext := strings.TrimPrefix(mime, "image/")
	if ext == "jpeg" {
		ext = "jpg"
	}
	return &models.InputFileUpload{
		Filename: name + "." + ext,
		Data:     bytes.NewReader(data),
	}, nil
}

// SendDataURLPhoto sends an image held as a data URL.
func SendDataURLPhoto(ctx context.Context, b *bot.Bot, chatID int64, dataURL, name, caption string) error {
	photo, err := PhotoFromDataURL(dataURL, name)
	if err != nil {
		return err
	}
	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:    chatID,
		Photo:     photo,
		Caption:   caption,
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	return nil
}
