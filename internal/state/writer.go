package state

import (
	"github.com/google/uuid"
	"github.com/set-night/chatbotui/internal/domain"
)

// Writer applies state transitions on behalf of one hydration run. Every
// setter returns domain.ErrSuperseded, and leaves the state untouched, once a
// newer generation has begun.
type Writer struct {
	store *Store
	gen   uint64
}

func (w *Writer) Generation() uint64 {
	return w.gen
}

func (w *Writer) apply(fn func(st *State)) error {
	w.store.mu.Lock()
	defer w.store.mu.Unlock()
	if w.gen != w.store.gen {
		return domain.ErrSuperseded
	}
	fn(&w.store.state)
	return nil
}

// StartLoading marks the run as in flight for workspaceID and unsets every
// entity slot, so slots the run never reaches stay empty instead of showing
// the previous workspace.
func (w *Writer) StartLoading(workspaceID uuid.UUID) error {
	return w.apply(func(st *State) {
		st.WorkspaceID = workspaceID
		st.Status = StatusLoading
		st.Err = nil

		st.Workspace = nil
		st.Assistants = nil
		st.AssistantImages = nil
		st.Chats = nil
		st.Collections = nil
		st.Folders = nil
		st.Files = nil
		st.Presets = nil
		st.Prompts = nil
		st.Tools = nil
		st.Models = nil
		st.ChatSettings = nil
	})
}

// ResetSession clears the transient conversation fields.
func (w *Writer) ResetSession() error {
	return w.apply(func(st *State) {
		st.UserInput = ""
		st.ChatMessages = []domain.ChatMessage{}
		st.SelectedChat = nil
		st.IsGenerating = false
		st.FirstTokenReceived = false
		st.ChatFiles = []domain.ChatFile{}
		st.ChatImages = []domain.MessageImage{}
		st.NewMessageFiles = []domain.ChatFile{}
		st.NewMessageImages = []domain.MessageImage{}
		st.ShowFilesDisplay = false
	})
}

func (w *Writer) SetWorkspace(ws *domain.Workspace) error {
	return w.apply(func(st *State) { st.Workspace = ws })
}

// SetAssistants replaces the assistants and starts a fresh avatar list.
func (w *Writer) SetAssistants(assistants []domain.Assistant) error {
	return w.apply(func(st *State) {
		st.Assistants = assistants
		st.AssistantImages = make([]domain.AssistantImage, 0, len(assistants))
	})
}

func (w *Writer) AppendAssistantImage(img domain.AssistantImage) error {
	return w.apply(func(st *State) { st.AssistantImages = append(st.AssistantImages, img) })
}

func (w *Writer) SetChats(chats []domain.Chat) error {
	return w.apply(func(st *State) { st.Chats = chats })
}

func (w *Writer) SetCollections(collections []domain.Collection) error {
	return w.apply(func(st *State) { st.Collections = collections })
}

func (w *Writer) SetFolders(folders []domain.Folder) error {
	return w.apply(func(st *State) { st.Folders = folders })
}

func (w *Writer) SetFiles(files []domain.File) error {
	return w.apply(func(st *State) { st.Files = files })
}

func (w *Writer) SetPresets(presets []domain.Preset) error {
	return w.apply(func(st *State) { st.Presets = presets })
}

func (w *Writer) SetPrompts(prompts []domain.Prompt) error {
	return w.apply(func(st *State) { st.Prompts = prompts })
}

func (w *Writer) SetTools(tools []domain.Tool) error {
	return w.apply(func(st *State) { st.Tools = tools })
}

func (w *Writer) SetModels(models []domain.Model) error {
	return w.apply(func(st *State) { st.Models = models })
}

func (w *Writer) SetChatSettings(settings domain.ChatSettings) error {
	return w.apply(func(st *State) { st.ChatSettings = &settings })
}

// Finish clears the loading status.
func (w *Writer) Finish() error {
	return w.apply(func(st *State) {
		st.Status = StatusReady
		st.Err = nil
	})
}

// Fail records a terminal error for the run.
func (w *Writer) Fail(err error) error {
	return w.apply(func(st *State) {
		st.Status = StatusFailed
		st.Err = err
	})
}
