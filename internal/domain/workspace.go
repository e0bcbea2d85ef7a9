package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Workspace scopes assistants, chats and the other entity collections.
// Nil defaults mean "not configured" and fall back to the chat settings defaults.
type Workspace struct {
	ID           uuid.UUID
	UserID       int64
	Name         string
	Description  string
	Instructions string
	IsHome       bool

	DefaultModel                 *string
	DefaultPrompt                *string
	DefaultTemperature           *decimal.Decimal
	DefaultContextLength         *int
	IncludeProfileContext        *bool
	IncludeWorkspaceInstructions *bool
	EmbeddingsProvider           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
