package handler

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/chatbotui/internal/config"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/state"
	"github.com/stretchr/testify/assert"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		text, command, arg string
	}{
		{"/workspaces", "/workspaces", ""},
		{"/workspace 7f1c", "/workspace", "7f1c"},
		{"/workspace@chatbotui_bot  abc ", "/workspace", "abc"},
	}
	for _, tt := range tests {
		command, arg := splitCommand(tt.text)
		assert.Equal(t, tt.command, command, tt.text)
		assert.Equal(t, tt.arg, arg, tt.text)
	}
}

func TestRenderStatusUnsetSlots(t *testing.T) {
	st := &state.State{
		Status:    state.StatusFailed,
		Err:       errors.New("fetch files: boom"),
		Workspace: &domain.Workspace{Name: "my_space"},
		Chats:     []domain.Chat{{}, {}},
	}

	text := renderStatus(st)

	assert.Contains(t, text, "my\\_space")
	assert.Contains(t, text, "❌ ошибка")
	assert.Contains(t, text, "fetch files: boom")
	assert.Contains(t, text, "💬 Чаты: 2")
	assert.Contains(t, text, "📄 Файлы: —")
	assert.NotContains(t, text, "Настройки чата")
}

func TestRenderStatusReady(t *testing.T) {
	a := domain.Assistant{ID: uuid.New()}
	st := &state.State{
		Status:          state.StatusReady,
		Workspace:       &domain.Workspace{Name: "Home"},
		Assistants:      []domain.Assistant{a, {ID: uuid.New()}},
		AssistantImages: []domain.AssistantImage{{AssistantID: a.ID, Base64: "data:image/png;base64,AA=="}, {}},
		Files:           []domain.File{},
		ChatSettings: &domain.ChatSettings{
			Model:                 config.FallbackModel,
			Temperature:           0.5,
			ContextLength:         4096,
			IncludeProfileContext: true,
			EmbeddingsProvider:    "openai",
		},
	}

	text := renderStatus(st)

	assert.Contains(t, text, "✅ загружено")
	assert.Contains(t, text, "🖼 Аватары: 1/2")
	assert.Contains(t, text, "📄 Файлы: 0")
	assert.Contains(t, text, "`gpt-4-1106-preview`")
	assert.Contains(t, text, "Температура: 0.50")
	assert.Contains(t, text, "Инструкции пространства: нет")
}

func TestWorkspaceLabel(t *testing.T) {
	id := uuid.MustParse("0b5c8a2e-1111-4222-8333-444455556666")

	assert.Equal(t, "🏠 Home ✅", workspaceLabel(domain.Workspace{ID: id, Name: "Home", IsHome: true}, true))
	assert.Equal(t, "0b5c8a2e", workspaceLabel(domain.Workspace{ID: id}, false))
}

func TestChatLabel(t *testing.T) {
	created := time.Date(2024, 5, 6, 7, 8, 0, 0, time.UTC)

	assert.Equal(t, "📝 06.05 07:08", chatLabel("", created))
	assert.Equal(t, "short", chatLabel("short", created))
	assert.Len(t, []rune(chatLabel(string(make([]rune, 50)), created)), 43)
}

func TestRedirectText(t *testing.T) {
	assert.Contains(t, redirectText("/login"), "/login")
	assert.Equal(t, "➡️ Перейдите в /elsewhere", redirectText("/elsewhere"))
}
