package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/set-night/chatbotui/internal/repository/sqlc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowToWorkspaceKeepsUnsetDefaults(t *testing.T) {
	ws := rowToWorkspace(sqlc.Workspace{ID: uuid.New(), Name: "home", IsHome: true})

	assert.True(t, ws.IsHome)
	assert.Nil(t, ws.DefaultModel)
	assert.Nil(t, ws.DefaultTemperature)
	assert.Nil(t, ws.DefaultContextLength)
	assert.Nil(t, ws.IncludeProfileContext)
	assert.Nil(t, ws.IncludeWorkspaceInstructions)
	assert.Nil(t, ws.EmbeddingsProvider)
	assert.True(t, ws.CreatedAt.IsZero())
}

func TestRowToWorkspaceDefaults(t *testing.T) {
	ctxLen := int32(2048)
	off := false
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	ws := rowToWorkspace(sqlc.Workspace{
		DefaultTemperature:    decimal.NewNullDecimal(decimal.RequireFromString("0.25")),
		DefaultContextLength:  &ctxLen,
		IncludeProfileContext: &off,
		CreatedAt:             pgtype.Timestamptz{Time: created, Valid: true},
	})

	require.NotNil(t, ws.DefaultTemperature)
	assert.Equal(t, "0.25", ws.DefaultTemperature.String())
	require.NotNil(t, ws.DefaultContextLength)
	assert.Equal(t, 2048, *ws.DefaultContextLength)
	require.NotNil(t, ws.IncludeProfileContext)
	assert.False(t, *ws.IncludeProfileContext)
	assert.Equal(t, created, ws.CreatedAt)
}

func TestRowToTool(t *testing.T) {
	tool := rowToTool(sqlc.Tool{Url: "https://api.test", Schema: []byte(`{"type":"object"}`)})

	assert.Equal(t, "https://api.test", tool.URL)
	assert.JSONEq(t, `{"type":"object"}`, string(tool.Schema))
	assert.Nil(t, tool.CustomHeaders)
}

func TestListNeverReturnsNil(t *testing.T) {
	id := uuid.New()
	empty := func(_ context.Context, got uuid.UUID) ([]sqlc.Prompt, error) {
		assert.Equal(t, id, got)
		return nil, nil
	}

	out, err := list(context.Background(), "prompts", id, empty, rowToPrompt)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestListWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := func(context.Context, uuid.UUID) ([]sqlc.Prompt, error) { return nil, boom }

	_, err := list(context.Background(), "prompts", uuid.New(), failing, rowToPrompt)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "get prompts")
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("syntax"), false},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), false},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", fmt.Errorf("get chats: %w", &pgconn.PgError{Code: "40P01"}), true},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}
