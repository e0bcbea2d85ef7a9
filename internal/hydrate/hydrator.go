// Package hydrate loads everything a workspace needs into a chat's UI state:
// the workspace record, its nine entity collections, assistant avatars and
// the default chat settings.
package hydrate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/chatbotui/internal/config"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/state"
)

// Source reads workspace-scoped entities from persistence.
type Source interface {
	Workspace(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error)
	Assistants(ctx context.Context, workspaceID uuid.UUID) ([]domain.Assistant, error)
	Chats(ctx context.Context, workspaceID uuid.UUID) ([]domain.Chat, error)
	Collections(ctx context.Context, workspaceID uuid.UUID) ([]domain.Collection, error)
	Folders(ctx context.Context, workspaceID uuid.UUID) ([]domain.Folder, error)
	Files(ctx context.Context, workspaceID uuid.UUID) ([]domain.File, error)
	Presets(ctx context.Context, workspaceID uuid.UUID) ([]domain.Preset, error)
	Prompts(ctx context.Context, workspaceID uuid.UUID) ([]domain.Prompt, error)
	Tools(ctx context.Context, workspaceID uuid.UUID) ([]domain.Tool, error)
	Models(ctx context.Context, workspaceID uuid.UUID) ([]domain.Model, error)
}

// ImageStore resolves, downloads and encodes assistant avatars.
type ImageStore interface {
	ResolveURL(ctx context.Context, path string) (string, error)
	Download(ctx context.Context, url string) ([]byte, error)
	Encode(data []byte) (string, error)
}

// Authenticator returns the current session, or nil when there is none.
type Authenticator interface {
	CurrentSession(ctx context.Context) (*domain.Session, error)
}

// Navigator sends the user to another surface.
type Navigator interface {
	Redirect(ctx context.Context, path string)
}

type Options struct {
	FetchConcurrency  int
	AvatarConcurrency int
	Retry             RetryPolicy
	// Timeout bounds one hydration run; zero means no limit.
	Timeout  time.Duration
	Defaults Defaults
}

type Deps struct {
	Source  Source
	Images  ImageStore
	Auth    Authenticator
	Nav     Navigator
	Store   *state.Store
	Logger  *slog.Logger
	Options Options
}

// Hydrator runs hydrations for one chat. A new run supersedes the one in
// flight: the old run's context is cancelled and its remaining writes are
// discarded by the store.
type Hydrator struct {
	source Source
	images ImageStore
	auth   Authenticator
	nav    Navigator
	store  *state.Store
	log    *slog.Logger
	opts   Options

	mu      sync.Mutex
	cancel  context.CancelFunc
	mounted bool
}

func New(deps Deps) *Hydrator {
	opts := deps.Options
	if opts.FetchConcurrency < 1 {
		opts.FetchConcurrency = 1
	}
	if opts.AvatarConcurrency < 1 {
		opts.AvatarConcurrency = 1
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	store := deps.Store
	if store == nil {
		store = state.NewStore()
	}
	return &Hydrator{
		source: deps.Source,
		images: deps.Images,
		auth:   deps.Auth,
		nav:    deps.Nav,
		store:  store,
		log:    logger,
		opts:   opts,
	}
}

func (h *Hydrator) Store() *state.Store {
	return h.store
}

// Mounted reports whether the session guard has passed at least once.
func (h *Hydrator) Mounted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mounted
}

// Open mounts the workspace on first use and switches to it afterwards.
func (h *Hydrator) Open(ctx context.Context, workspaceID uuid.UUID) error {
	if !h.Mounted() {
		return h.Mount(ctx, workspaceID)
	}
	return h.Switch(ctx, workspaceID)
}

// Mount checks for an active session before hydrating. Without one the user
// is redirected to the login surface and nothing is loaded. A failed lookup
// neither redirects nor hydrates.
func (h *Hydrator) Mount(ctx context.Context, workspaceID uuid.UUID) error {
	session, err := h.auth.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSessionLookup, err)
	}
	if session == nil || session.IsExpired() {
		h.nav.Redirect(ctx, config.LoginPath)
		return domain.ErrUnauthenticated
	}

	h.mu.Lock()
	h.mounted = true
	h.mu.Unlock()

	return h.Switch(ctx, workspaceID)
}

// Switch resets the chat session state and hydrates workspaceID. It returns
// domain.ErrSuperseded when a newer Switch started before this one finished.
func (h *Hydrator) Switch(ctx context.Context, workspaceID uuid.UUID) error {
	h.mu.Lock()
	// The new generation must exist before the old run observes its
	// cancellation.
	gen := h.store.Begin()
	if h.cancel != nil {
		h.cancel()
	}
	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if h.opts.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, h.opts.Timeout)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	h.cancel = cancel
	h.mu.Unlock()
	defer cancel()

	log := h.log.With("workspace_id", workspaceID, "generation", gen)
	w := h.store.Writer(gen)

	if err := w.ResetSession(); err != nil {
		return err
	}
	if err := w.StartLoading(workspaceID); err != nil {
		return err
	}

	start := time.Now()
	err := h.hydrate(runCtx, w, workspaceID)
	if err == nil {
		log.Info("workspace hydrated", "duration", time.Since(start))
		return nil
	}

	if errors.Is(err, domain.ErrSuperseded) || h.store.Generation() != gen {
		log.Debug("hydration superseded", "duration", time.Since(start))
		return domain.ErrSuperseded
	}
	if ferr := w.Fail(err); errors.Is(ferr, domain.ErrSuperseded) {
		return domain.ErrSuperseded
	}
	log.Error("workspace hydration failed", "error", err, "duration", time.Since(start))
	return err
}

// Close cancels the run in flight, if any.
func (h *Hydrator) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.mounted = false
}
