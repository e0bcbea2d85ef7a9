package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Chat struct {
	ID                           uuid.UUID
	UserID                       int64
	WorkspaceID                  uuid.UUID
	AssistantID                  *uuid.UUID
	FolderID                     *uuid.UUID
	Name                         string
	Model                        string
	Prompt                       string
	Temperature                  decimal.Decimal
	ContextLength                int
	IncludeProfileContext        bool
	IncludeWorkspaceInstructions bool
	EmbeddingsProvider           string
	Sharing                      string
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
}

type Collection struct {
	ID          uuid.UUID
	UserID      int64
	FolderID    *uuid.UUID
	Name        string
	Description string
	Sharing     string
	CreatedAt   time.Time
}

type Folder struct {
	ID          uuid.UUID
	UserID      int64
	WorkspaceID uuid.UUID
	Name        string
	Description string
	Type        string // assistants, chats, files, ...
	CreatedAt   time.Time
}

type File struct {
	ID          uuid.UUID
	UserID      int64
	FolderID    *uuid.UUID
	Name        string
	Description string
	FilePath    string
	Size        int64
	Tokens      int
	Type        string
	Sharing     string
	CreatedAt   time.Time
}

type Preset struct {
	ID                           uuid.UUID
	UserID                       int64
	FolderID                     *uuid.UUID
	Name                         string
	Description                  string
	Model                        string
	Prompt                       string
	Temperature                  decimal.Decimal
	ContextLength                int
	IncludeProfileContext        bool
	IncludeWorkspaceInstructions bool
	EmbeddingsProvider           string
	Sharing                      string
	CreatedAt                    time.Time
}

type Prompt struct {
	ID        uuid.UUID
	UserID    int64
	FolderID  *uuid.UUID
	Name      string
	Content   string
	Sharing   string
	CreatedAt time.Time
}

type Tool struct {
	ID            uuid.UUID
	UserID        int64
	FolderID      *uuid.UUID
	Name          string
	Description   string
	URL           string
	Schema        json.RawMessage
	CustomHeaders json.RawMessage
	Sharing       string
	CreatedAt     time.Time
}

// Model is a user-registered custom model endpoint.
type Model struct {
	ID            uuid.UUID
	UserID        int64
	FolderID      *uuid.UUID
	Name          string
	ModelID       string
	BaseURL       string
	APIKey        string
	Description   string
	ContextLength int
	Sharing       string
	CreatedAt     time.Time
}
