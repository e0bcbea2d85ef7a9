package service

import (
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/repository/sqlc"
)

func rowToWorkspace(row sqlc.Workspace) *domain.Workspace {
	return &domain.Workspace{
		ID:                           row.ID,
		UserID:                       row.UserID,
		Name:                         row.Name,
		Description:                  row.Description,
		Instructions:                 row.Instructions,
		IsHome:                       row.IsHome,
		DefaultModel:                 row.DefaultModel,
		DefaultPrompt:                row.DefaultPrompt,
		DefaultTemperature:           nullDecimalToPtr(row.DefaultTemperature),
		DefaultContextLength:         int32PtrToIntPtr(row.DefaultContextLength),
		IncludeProfileContext:        row.IncludeProfileContext,
		IncludeWorkspaceInstructions: row.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           row.EmbeddingsProvider,
		CreatedAt:                    pgTimestamptzToTime(row.CreatedAt),
		UpdatedAt:                    pgTimestamptzToTime(row.UpdatedAt),
	}
}

func rowToAssistant(row sqlc.Assistant) domain.Assistant {
	return domain.Assistant{
		ID:                           row.ID,
		UserID:                       row.UserID,
		FolderID:                     row.FolderID,
		Name:                         row.Name,
		Description:                  row.Description,
		Model:                        row.Model,
		Prompt:                       row.Prompt,
		ImagePath:                    row.ImagePath,
		Temperature:                  row.Temperature,
		ContextLength:                int(row.ContextLength),
		IncludeProfileContext:        row.IncludeProfileContext,
		IncludeWorkspaceInstructions: row.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           row.EmbeddingsProvider,
		Sharing:                      row.Sharing,
		CreatedAt:                    pgTimestamptzToTime(row.CreatedAt),
		UpdatedAt:                    pgTimestamptzToTime(row.UpdatedAt),
	}
}

func rowToChat(row sqlc.Chat) domain.Chat {
	return domain.Chat{
		ID:                           row.ID,
		UserID:                       row.UserID,
		WorkspaceID:                  row.WorkspaceID,
		AssistantID:                  row.AssistantID,
		FolderID:                     row.FolderID,
		Name:                         row.Name,
		Model:                        row.Model,
		Prompt:                       row.Prompt,
		Temperature:                  row.Temperature,
		ContextLength:                int(row.ContextLength),
		IncludeProfileContext:        row.IncludeProfileContext,
		IncludeWorkspaceInstructions: row.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           row.EmbeddingsProvider,
		Sharing:                      row.Sharing,
		CreatedAt:                    pgTimestamptzToTime(row.CreatedAt),
		UpdatedAt:                    pgTimestamptzToTime(row.UpdatedAt),
	}
}

func rowToCollection(row sqlc.Collection) domain.Collection {
	return domain.Collection{
		ID:          row.ID,
		UserID:      row.UserID,
		FolderID:    row.FolderID,
		Name:        row.Name,
		Description: row.Description,
		Sharing:     row.Sharing,
		CreatedAt:   pgTimestamptzToTime(row.CreatedAt),
	}
}

func rowToFolder(row sqlc.Folder) domain.Folder {
	return domain.Folder{
		ID:          row.ID,
		UserID:      row.UserID,
		WorkspaceID: row.WorkspaceID,
		Name:        row.Name,
		Description: row.Description,
		Type:        row.Type,
		CreatedAt:   pgTimestamptzToTime(row.CreatedAt),
	}
}

func rowToFile(row sqlc.File) domain.File {
	return domain.File{
		ID:          row.ID,
		UserID:      row.UserID,
		FolderID:    row.FolderID,
		Name:        row.Name,
		Description: row.Description,
		FilePath:    row.FilePath,
		Size:        row.Size,
		Tokens:      int(row.Tokens),
		Type:        row.Type,
		Sharing:     row.Sharing,
		CreatedAt:   pgTimestamptzToTime(row.CreatedAt),
	}
}

func rowToPreset(row sqlc.Preset) domain.Preset {
	return domain.Preset{
		ID:                           row.ID,
		UserID:                       row.UserID,
		FolderID:                     row.FolderID,
		Name:                         row.Name,
		Description:                  row.Description,
		Model:                        row.Model,
		Prompt:                       row.Prompt,
		Temperature:                  row.Temperature,
		ContextLength:                int(row.ContextLength),
		IncludeProfileContext:        row.IncludeProfileContext,
		IncludeWorkspaceInstructions: row.IncludeWorkspaceInstructions,
		EmbeddingsProvider:           row.EmbeddingsProvider,
		Sharing:                      row.Sharing,
		CreatedAt:                    pgTimestamptzToTime(row.CreatedAt),
	}
}

func rowToPrompt(row sqlc.Prompt) domain.Prompt {
	return domain.Prompt{
		ID:        row.ID,
		UserID:    row.UserID,
		FolderID:  row.FolderID,
		Name:      row.Name,
		Content:   row.Content,
		Sharing:   row.Sharing,
		CreatedAt: pgTimestamptzToTime(row.CreatedAt),
	}
}

func rowToTool(row sqlc.Tool) domain.Tool {
	return domain.Tool{
		ID:            row.ID,
		UserID:        row.UserID,
		FolderID:      row.FolderID,
		Name:          row.Name,
		Description:   row.Description,
		URL:           row.Url,
		Schema:        rawJSON(row.Schema),
		CustomHeaders: rawJSON(row.CustomHeaders),
		Sharing:       row.Sharing,
		CreatedAt:     pgTimestamptzToTime(row.CreatedAt),
	}
}

func rowToModel(row sqlc.Model) domain.Model {
	return domain.Model{
		ID:            row.ID,
		UserID:        row.UserID,
		FolderID:      row.FolderID,
		Name:          row.Name,
		ModelID:       row.ModelID,
		BaseURL:       row.BaseUrl,
		APIKey:        row.ApiKey,
		Description:   row.Description,
		ContextLength: int(row.ContextLength),
		Sharing:       row.Sharing,
		CreatedAt:     pgTimestamptzToTime(row.CreatedAt),
	}
}
