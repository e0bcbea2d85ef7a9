package hydrate

import (
	"testing"

	"github.com/set-night/chatbotui/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestResolveChatSettingsDefaults(t *testing.T) {
	d := testDefaults()
	want := domain.ChatSettings{
		Model:                        "gpt-4-1106-preview",
		Prompt:                       "be helpful",
		Temperature:                  0.5,
		ContextLength:                4096,
		IncludeProfileContext:        true,
		IncludeWorkspaceInstructions: true,
		EmbeddingsProvider:           "openai",
	}

	assert.Equal(t, want, ResolveChatSettings(nil, d))
	assert.Equal(t, want, ResolveChatSettings(&domain.Workspace{}, d))
	assert.Equal(t, want, ResolveChatSettings(&domain.Workspace{DefaultModel: ptr("")}, d))
}

func TestResolveChatSettingsOverrides(t *testing.T) {
	ws := &domain.Workspace{
		DefaultModel:                 ptr("claude-3-opus"),
		DefaultPrompt:                ptr("ignored"),
		DefaultTemperature:           ptr(decimal.RequireFromString("0.9")),
		DefaultContextLength:         ptr(8192),
		IncludeProfileContext:        ptr(false),
		IncludeWorkspaceInstructions: ptr(false),
		EmbeddingsProvider:           ptr("local"),
	}

	got := ResolveChatSettings(ws, testDefaults())

	assert.Equal(t, "claude-3-opus", got.Model)
	assert.Equal(t, "be helpful", got.Prompt)
	assert.InDelta(t, 0.9, got.Temperature, 1e-9)
	assert.Equal(t, 8192, got.ContextLength)
	assert.False(t, got.IncludeProfileContext)
	assert.False(t, got.IncludeWorkspaceInstructions)
	assert.Equal(t, "local", got.EmbeddingsProvider)
}

func TestResolveChatSettingsEdgeValues(t *testing.T) {
	tests := []struct {
		name  string
		ws    domain.Workspace
		check func(t *testing.T, s domain.ChatSettings)
	}{
		{
			name: "zero temperature is kept",
			ws:   domain.Workspace{DefaultTemperature: ptr(decimal.Zero)},
			check: func(t *testing.T, s domain.ChatSettings) {
				assert.Zero(t, s.Temperature)
			},
		},
		{
			name: "zero context length falls back",
			ws:   domain.Workspace{DefaultContextLength: ptr(0)},
			check: func(t *testing.T, s domain.ChatSettings) {
				assert.Equal(t, 4096, s.ContextLength)
			},
		},
		{
			name: "negative context length falls back",
			ws:   domain.Workspace{DefaultContextLength: ptr(-1)},
			check: func(t *testing.T, s domain.ChatSettings) {
				assert.Equal(t, 4096, s.ContextLength)
			},
		},
		{
			name: "unknown embeddings provider falls back",
			ws:   domain.Workspace{EmbeddingsProvider: ptr("cohere")},
			check: func(t *testing.T, s domain.ChatSettings) {
				assert.Equal(t, "openai", s.EmbeddingsProvider)
			},
		},
		{
			name: "explicit true flags",
			ws: domain.Workspace{
				IncludeProfileContext:        ptr(true),
				IncludeWorkspaceInstructions: ptr(true),
			},
			check: func(t *testing.T, s domain.ChatSettings) {
				assert.True(t, s.IncludeProfileContext)
				assert.True(t, s.IncludeWorkspaceInstructions)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ResolveChatSettings(&tt.ws, testDefaults()))
		})
	}
}

func TestDefaultSettingsUsesEmbeddedPrompt(t *testing.T) {
	d := DefaultSettings()

	assert.Equal(t, "gpt-4-1106-preview", d.Model)
	assert.Equal(t, 0.5, d.Temperature)
	assert.Equal(t, 4096, d.ContextLength)
	assert.True(t, d.IncludeProfileContext)
	assert.True(t, d.IncludeWorkspaceInstructions)
	assert.Equal(t, "openai", d.EmbeddingsProvider)
	assert.Contains(t, d.Prompt, "CS 106B Tree")
}
