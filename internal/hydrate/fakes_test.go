package hydrate

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/storage"
)

var errBoom = errors.New("boom")

type fakeSource struct {
	calls atomic.Int32

	workspace   *domain.Workspace
	assistants  []domain.Assistant
	chats       []domain.Chat
	collections []domain.Collection
	folders     []domain.Folder
	files       []domain.File
	presets     []domain.Preset
	prompts     []domain.Prompt
	tools       []domain.Tool
	models      []domain.Model

	// fail maps a slot name to the error its fetch returns.
	fail map[string]error
	// hook runs before the fetch of a slot returns.
	hook func(ctx context.Context, slot string, id uuid.UUID) error
}

func (f *fakeSource) before(ctx context.Context, slot string, id uuid.UUID) error {
	f.calls.Add(1)
	if f.hook != nil {
		if err := f.hook(ctx, slot, id); err != nil {
			return err
		}
	}
	return f.fail[slot]
}

func (f *fakeSource) Workspace(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if err := f.before(ctx, "workspace", id); err != nil {
		return nil, err
	}
	if f.workspace == nil {
		return &domain.Workspace{ID: id}, nil
	}
	ws := *f.workspace
	ws.ID = id
	return &ws, nil
}

func (f *fakeSource) Assistants(ctx context.Context, id uuid.UUID) ([]domain.Assistant, error) {
	return f.assistants, f.before(ctx, "assistants", id)
}

func (f *fakeSource) Chats(ctx context.Context, id uuid.UUID) ([]domain.Chat, error) {
	return f.chats, f.before(ctx, "chats", id)
}

func (f *fakeSource) Collections(ctx context.Context, id uuid.UUID) ([]domain.Collection, error) {
	return f.collections, f.before(ctx, "collections", id)
}

func (f *fakeSource) Folders(ctx context.Context, id uuid.UUID) ([]domain.Folder, error) {
	return f.folders, f.before(ctx, "folders", id)
}

func (f *fakeSource) Files(ctx context.Context, id uuid.UUID) ([]domain.File, error) {
	return f.files, f.before(ctx, "files", id)
}

func (f *fakeSource) Presets(ctx context.Context, id uuid.UUID) ([]domain.Preset, error) {
	return f.presets, f.before(ctx, "presets", id)
}

func (f *fakeSource) Prompts(ctx context.Context, id uuid.UUID) ([]domain.Prompt, error) {
	return f.prompts, f.before(ctx, "prompts", id)
}

func (f *fakeSource) Tools(ctx context.Context, id uuid.UUID) ([]domain.Tool, error) {
	return f.tools, f.before(ctx, "tools", id)
}

func (f *fakeSource) Models(ctx context.Context, id uuid.UUID) ([]domain.Model, error) {
	return f.models, f.before(ctx, "models", id)
}

type fakeImages struct {
	mu       sync.Mutex
	resolved []string

	// objects maps an image path to its bytes; missing paths resolve to "".
	objects     map[string][]byte
	resolveErr  map[string]error
	downloadErr error
	// downloadFail maps an image path to the error its download returns.
	downloadFail map[string]error
	delay        func(path string) time.Duration
	// onResolve runs before a path is resolved.
	onResolve func(ctx context.Context, path string) error
}

func (f *fakeImages) ResolveURL(ctx context.Context, path string) (string, error) {
	f.mu.Lock()
	f.resolved = append(f.resolved, path)
	f.mu.Unlock()

	if f.onResolve != nil {
		if err := f.onResolve(ctx, path); err != nil {
			return "", err
		}
	}
	if f.delay != nil {
		select {
		case <-time.After(f.delay(path)):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err := f.resolveErr[path]; err != nil {
		return "", err
	}
	if _, ok := f.objects[path]; !ok {
		return "", nil
	}
	return "https://images.test/" + path, nil
}

func (f *fakeImages) Download(_ context.Context, url string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	path := url[len("https://images.test/"):]
	if err := f.downloadFail[path]; err != nil {
		return nil, err
	}
	return f.objects[path], nil
}

func (f *fakeImages) Encode(data []byte) (string, error) {
	return storage.EncodeDataURL(data), nil
}

func (f *fakeImages) resolvedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.resolved...)
}

type fakeAuth struct {
	calls   atomic.Int32
	session *domain.Session
	err     error
}

func (f *fakeAuth) CurrentSession(context.Context) (*domain.Session, error) {
	f.calls.Add(1)
	return f.session, f.err
}

type fakeNav struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeNav) Redirect(_ context.Context, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
}

func (f *fakeNav) redirects() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

func activeSession() *domain.Session {
	return &domain.Session{ID: uuid.New(), UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}
}

type harness struct {
	src    *fakeSource
	images *fakeImages
	auth   *fakeAuth
	nav    *fakeNav
}

func newHarness() *harness {
	return &harness{
		src:    &fakeSource{},
		images: &fakeImages{objects: map[string][]byte{}},
		auth:   &fakeAuth{session: activeSession()},
		nav:    &fakeNav{},
	}
}

func (hs *harness) hydrator(opts Options) *Hydrator {
	if opts.Defaults == (Defaults{}) {
		opts.Defaults = testDefaults()
	}
	return New(Deps{
		Source:  hs.src,
		Images:  hs.images,
		Auth:    hs.auth,
		Nav:     hs.nav,
		Options: opts,
	})
}

func testDefaults() Defaults {
	return Defaults{
		Model:                        "gpt-4-1106-preview",
		Prompt:                       "be helpful",
		Temperature:                  0.5,
		ContextLength:                4096,
		IncludeProfileContext:        true,
		IncludeWorkspaceInstructions: true,
		EmbeddingsProvider:           "openai",
	}
}
