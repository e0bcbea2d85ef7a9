// Package state holds the per-chat UI state that hydration writes and the
// bot surface renders. Writes are fenced by a generation number so a
// superseded hydration run can never overwrite the results of a newer one.
package state

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/set-night/chatbotui/internal/domain"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

type State struct {
	WorkspaceID uuid.UUID
	Generation  uint64
	Status      Status
	Err         error

	Workspace       *domain.Workspace
	Assistants      []domain.Assistant
	AssistantImages []domain.AssistantImage
	Chats           []domain.Chat
	Collections     []domain.Collection
	Folders         []domain.Folder
	Files           []domain.File
	Presets         []domain.Preset
	Prompts         []domain.Prompt
	Tools           []domain.Tool
	Models          []domain.Model
	ChatSettings    *domain.ChatSettings

	// Transient session fields cleared on every workspace change
	UserInput          string
	ChatMessages       []domain.ChatMessage
	SelectedChat       *domain.Chat
	IsGenerating       bool
	FirstTokenReceived bool
	ChatFiles          []domain.ChatFile
	ChatImages         []domain.MessageImage
	NewMessageFiles    []domain.ChatFile
	NewMessageImages   []domain.MessageImage
	ShowFilesDisplay   bool
}

// Loading reports whether a hydration run is in flight.
func (s State) Loading() bool {
	return s.Status == StatusLoading
}

// AssistantImage returns the resolved avatar for an assistant.
func (s State) AssistantImage(assistantID uuid.UUID) (domain.AssistantImage, bool) {
	for _, img := range s.AssistantImages {
		if img.AssistantID == assistantID {
			return img, true
		}
	}
	return domain.AssistantImage{}, false
}

func (s *State) clone() State {
	c := *s
	c.Assistants = slices.Clone(s.Assistants)
	c.AssistantImages = slices.Clone(s.AssistantImages)
	c.Chats = slices.Clone(s.Chats)
	c.Collections = slices.Clone(s.Collections)
	c.Folders = slices.Clone(s.Folders)
	c.Files = slices.Clone(s.Files)
	c.Presets = slices.Clone(s.Presets)
	c.Prompts = slices.Clone(s.Prompts)
	c.Tools = slices.Clone(s.Tools)
	c.Models = slices.Clone(s.Models)
	c.ChatMessages = slices.Clone(s.ChatMessages)
	c.ChatFiles = slices.Clone(s.ChatFiles)
	c.ChatImages = slices.Clone(s.ChatImages)
	c.NewMessageFiles = slices.Clone(s.NewMessageFiles)
	c.NewMessageImages = slices.Clone(s.NewMessageImages)
	if s.Workspace != nil {
		ws := *s.Workspace
		c.Workspace = &ws
	}
	if s.ChatSettings != nil {
		cs := *s.ChatSettings
		c.ChatSettings = &cs
	}
	if s.SelectedChat != nil {
		chat := *s.SelectedChat
		c.SelectedChat = &chat
	}
	return c
}

type Store struct {
	mu    sync.RWMutex
	state State
	gen   uint64
}

func NewStore() *Store {
	return &Store{state: State{Status: StatusIdle}}
}

// Begin starts a new generation. Writers of older generations are fenced off
// from this point on.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state.Generation = s.gen
	return s.gen
}

// Generation returns the most recently started generation.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Writer returns a writer bound to gen.
func (s *Store) Writer(gen uint64) *Writer {
	return &Writer{store: s, gen: gen}
}

// Snapshot returns a copy of the current state. Partially hydrated slots are
// visible while a run is still in flight.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Clear drops everything and fences off any in-flight writer.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state = State{Status: StatusIdle, Generation: s.gen}
}

// SelectChat marks one of the hydrated chats as the active chat and drops the
// message list of the previously selected one.
func (s *Store) SelectChat(chatID uuid.UUID) (domain.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.state.Chats {
		if c.ID == chatID {
			chat := c
			s.state.SelectedChat = &chat
			s.state.ChatMessages = nil
			s.state.ChatFiles = nil
			s.state.ChatImages = nil
			return chat, nil
		}
	}
	return domain.Chat{}, domain.ErrChatNotFound
}
