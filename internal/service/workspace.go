package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/repository/sqlc"
)

// WorkspaceService reads workspaces and their entity collections.
type WorkspaceService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewWorkspaceService(db *pgxpool.Pool, queries *sqlc.Queries) *WorkspaceService {
	return &WorkspaceService{db: db, queries: queries}
}

func (s *WorkspaceService) Workspace(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error) {
	row, err := s.queries.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	return rowToWorkspace(row), nil
}

// Home returns the user's home workspace.
func (s *WorkspaceService) Home(ctx context.Context, userID int64) (*domain.Workspace, error) {
	row, err := s.queries.GetHomeWorkspaceByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("get home workspace: %w", err)
	}
	return rowToWorkspace(row), nil
}

func (s *WorkspaceService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Workspace, error) {
	rows, err := s.queries.GetWorkspacesByUserID(ctx, sqlc.GetWorkspacesByUserIDParams{
		UserID: userID,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	out := make([]domain.Workspace, 0, len(rows))
	for _, row := range rows {
		out = append(out, *rowToWorkspace(row))
	}
	return out, nil
}

func (s *WorkspaceService) CountByUser(ctx context.Context, userID int64) (int, error) {
	n, err := s.queries.CountWorkspacesByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count workspaces: %w", err)
	}
	return int(n), nil
}

func (s *WorkspaceService) Assistants(ctx context.Context, workspaceID uuid.UUID) ([]domain.Assistant, error) {
	return list(ctx, "assistants", workspaceID, s.queries.GetAssistantsByWorkspaceID, rowToAssistant)
}

func (s *WorkspaceService) Chats(ctx context.Context, workspaceID uuid.UUID) ([]domain.Chat, error) {
	return list(ctx, "chats", workspaceID, s.queries.GetChatsByWorkspaceID, rowToChat)
}

func (s *WorkspaceService) Collections(ctx context.Context, workspaceID uuid.UUID) ([]domain.Collection, error) {
	return list(ctx, "collections", workspaceID, s.queries.GetCollectionsByWorkspaceID, rowToCollection)
}

func (s *WorkspaceService) Folders(ctx context.Context, workspaceID uuid.UUID) ([]domain.Folder, error) {
	return list(ctx, "folders", workspaceID, s.queries.GetFoldersByWorkspaceID, rowToFolder)
}

func (s *WorkspaceService) Files(ctx context.Context, workspaceID uuid.UUID) ([]domain.File, error) {
	return list(ctx, "files", workspaceID, s.queries.GetFilesByWorkspaceID, rowToFile)
}

func (s *WorkspaceService) Presets(ctx context.Context, workspaceID uuid.UUID) ([]domain.Preset, error) {
	return list(ctx, "presets", workspaceID, s.queries.GetPresetsByWorkspaceID, rowToPreset)
}

func (s *WorkspaceService) Prompts(ctx context.Context, workspaceID uuid.UUID) ([]domain.Prompt, error) {
	return list(ctx, "prompts", workspaceID, s.queries.GetPromptsByWorkspaceID, rowToPrompt)
}

func (s *WorkspaceService) Tools(ctx context.Context, workspaceID uuid.UUID) ([]domain.Tool, error) {
	return list(ctx, "tools", workspaceID, s.queries.GetToolsByWorkspaceID, rowToTool)
}

func (s *WorkspaceService) Models(ctx context.Context, workspaceID uuid.UUID) ([]domain.Model, error) {
	return list(ctx, "models", workspaceID, s.queries.GetModelsByWorkspaceID, rowToModel)
}

// list runs a workspace-scoped query and maps its rows. The result is never
// nil, so an empty collection stays distinguishable from an unset slot.
func list[R, T any](ctx context.Context, name string, workspaceID uuid.UUID,
	query func(context.Context, uuid.UUID) ([]R, error), convert func(R) T,
) ([]T, error) {
	rows, err := query(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", name, err)
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, convert(row))
	}
	return out, nil
}
