package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated login of a Telegram user.
type Session struct {
	ID        uuid.UUID
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.After(time.Now())
}

// ChatMessage is a message of the selected chat as held in UI state.
type ChatMessage struct {
	ID         uuid.UUID
	ChatID     uuid.UUID
	Role       string
	Content    string
	ImagePaths []string
	CreatedAt  time.Time
}

// ChatFile is a file attached to the chat or to the message being composed.
type ChatFile struct {
	ID   uuid.UUID
	Name string
	Type string
	File []byte
}

// MessageImage is an image attached to the chat or to the message being composed.
type MessageImage struct {
	MessageID uuid.UUID
	Path      string
	Base64    string
	URL       string
	File      []byte
}
