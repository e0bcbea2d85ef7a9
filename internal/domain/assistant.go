package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Assistant struct {
	ID                           uuid.UUID
	UserID                       int64
	FolderID                     *uuid.UUID
	Name                         string
	Description                  string
	Model                        string
	Prompt                       string
	ImagePath                    string
	Temperature                  decimal.Decimal
	ContextLength                int
	IncludeProfileContext        bool
	IncludeWorkspaceInstructions bool
	EmbeddingsProvider           string
	Sharing                      string
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
}

// HasImage reports whether the assistant references an avatar in storage.
func (a *Assistant) HasImage() bool {
	return a.ImagePath != ""
}

// AssistantImage is the display-ready avatar of one assistant. It is rebuilt
// on every hydration and never persisted. URL and Base64 are empty when the
// assistant has no image.
type AssistantImage struct {
	AssistantID uuid.UUID
	Path        string
	URL         string
	Base64      string
}
