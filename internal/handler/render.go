package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/state"
	tg "github.com/set-night/chatbotui/internal/telegram"
)

var statusLabels = map[state.Status]string{
	state.StatusIdle:    "💤 не открыто",
	state.StatusLoading: "⏳ загрузка",
	state.StatusReady:   "✅ загружено",
	state.StatusFailed:  "❌ ошибка",
}

// renderStatus describes a state snapshot. Slots that are still unset show
// a dash instead of a count.
func renderStatus(st *state.State) string {
	var sb strings.Builder

	name := "—"
	if st.Workspace != nil {
		name = tg.EscapeMarkdown(st.Workspace.Name)
	}
	fmt.Fprintf(&sb, "🗂 *Пространство:* %s\n", name)
	fmt.Fprintf(&sb, "*Статус:* %s\n", statusLabels[st.Status])
	if st.Status == state.StatusFailed && st.Err != nil {
		fmt.Fprintf(&sb, "*Ошибка:* `%s`\n", strings.ReplaceAll(st.Err.Error(), "`", "'"))
	}

	sb.WriteString("\n")
	writeCount(&sb, "🤖 Ассистенты", st.Assistants)
	if st.Assistants != nil {
		withImage := 0
		for _, img := range st.AssistantImages {
			if img.Base64 != "" {
				withImage++
			}
		}
		fmt.Fprintf(&sb, "🖼 Аватары: %d/%d\n", withImage, len(st.Assistants))
	}
	writeCount(&sb, "💬 Чаты", st.Chats)
	writeCount(&sb, "📚 Коллекции", st.Collections)
	writeCount(&sb, "📁 Папки", st.Folders)
	writeCount(&sb, "📄 Файлы", st.Files)
	writeCount(&sb, "🎛 Пресеты", st.Presets)
	writeCount(&sb, "📝 Промпты", st.Prompts)
	writeCount(&sb, "🛠 Инструменты", st.Tools)
	writeCount(&sb, "🧠 Модели", st.Models)

	if s := st.ChatSettings; s != nil {
		sb.WriteString("\n⚙️ *Настройки чата:*\n")
		fmt.Fprintf(&sb, "Модель: `%s`\n", s.Model)
		fmt.Fprintf(&sb, "Температура: %.2f\n", s.Temperature)
		fmt.Fprintf(&sb, "Контекст: %d\n", s.ContextLength)
		fmt.Fprintf(&sb, "Профиль в контексте: %s\n", yesNo(s.IncludeProfileContext))
		fmt.Fprintf(&sb, "Инструкции пространства: %s\n", yesNo(s.IncludeWorkspaceInstructions))
		fmt.Fprintf(&sb, "Эмбеддинги: %s\n", s.EmbeddingsProvider)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func writeCount[T any](sb *strings.Builder, label string, items []T) {
	if items == nil {
		fmt.Fprintf(sb, "%s: —\n", label)
		return
	}
	fmt.Fprintf(sb, "%s: %d\n", label, len(items))
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}

func renderWorkspaces(total int) string {
	if total == 0 {
		return "🗂 У вас нет рабочих пространств."
	}
	return fmt.Sprintf("🗂 *Рабочие пространства* (%d шт.)\n\nВыберите пространство:", total)
}

func workspaceLabel(ws domain.Workspace, current bool) string {
	label := ws.Name
	if label == "" {
		label = ws.ID.String()[:8]
	}
	if ws.IsHome {
		label = "🏠 " + label
	}
	if current {
		label += " ✅"
	}
	return label
}

func renderAssistant(a domain.Assistant) string {
	text := "🤖 *" + tg.EscapeMarkdown(a.Name) + "*"
	if a.Description != "" {
		text += "\n" + tg.EscapeMarkdown(a.Description)
	}
	if a.Model != "" {
		text += "\n`" + a.Model + "`"
	}
	return text
}

func chatLabel(name string, createdAt time.Time) string {
	if name == "" {
		return "📝 " + createdAt.Format("02.01 15:04")
	}
	if runes := []rune(name); len(runes) > 40 {
		return string(runes[:40]) + "..."
	}
	return name
}
