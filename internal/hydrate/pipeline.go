package hydrate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/state"
	"golang.org/x/sync/errgroup"
)

// pending is the eventual result of one fetch.
type pending[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newPending[T any]() *pending[T] {
	return &pending[T]{done: make(chan struct{})}
}

func (p *pending[T]) set(val T, err error) {
	p.val, p.err = val, err
	close(p.done)
}

func (p *pending[T]) wait(ctx context.Context) (T, error) {
	// A finished result wins over a cancellation that raced with it.
	select {
	case <-p.done:
		return p.val, p.err
	default:
	}
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// spawn runs fetch on g and delivers its result to p.
func spawn[T any](ctx context.Context, g *errgroup.Group, retry RetryPolicy, p *pending[T], fetch func(context.Context) (T, error)) {
	if err := ctx.Err(); err != nil {
		var zero T
		p.set(zero, err)
		return
	}
	g.Go(func() error {
		p.set(withRetry(ctx, retry, fetch))
		return nil
	})
}

// commit waits for p and publishes its value. The returned error names the
// slot that failed.
func commit[T any](ctx context.Context, p *pending[T], slot string, publish func(T) error) (T, error) {
	val, err := p.wait(ctx)
	if err != nil {
		return val, fmt.Errorf("fetch %s: %w", slot, err)
	}
	return val, publish(val)
}

// hydrate fetches all slots concurrently and publishes them strictly in the
// order workspace, assistants, avatars, chats, collections, folders, files,
// presets, prompts, tools, models. The first failing slot stops publishing:
// earlier slots stay populated and later ones stay unset.
func (h *Hydrator) hydrate(ctx context.Context, w *state.Writer, id uuid.UUID) error {
	fetchCtx, cancelFetches := context.WithCancel(ctx)
	var g errgroup.Group
	g.SetLimit(h.opts.FetchConcurrency)

	var (
		workspace   = newPending[*domain.Workspace]()
		assistants  = newPending[[]domain.Assistant]()
		chats       = newPending[[]domain.Chat]()
		collections = newPending[[]domain.Collection]()
		folders     = newPending[[]domain.Folder]()
		files       = newPending[[]domain.File]()
		presets     = newPending[[]domain.Preset]()
		prompts     = newPending[[]domain.Prompt]()
		tools       = newPending[[]domain.Tool]()
		models      = newPending[[]domain.Model]()
	)

	// Spawning blocks while the group is at its limit, so it runs apart from
	// the commits below.
	spawned := make(chan struct{})
	go func() {
		defer close(spawned)
		src, retry := h.source, h.opts.Retry
		spawn(fetchCtx, &g, retry, workspace, func(ctx context.Context) (*domain.Workspace, error) { return src.Workspace(ctx, id) })
		spawn(fetchCtx, &g, retry, assistants, func(ctx context.Context) ([]domain.Assistant, error) { return src.Assistants(ctx, id) })
		spawn(fetchCtx, &g, retry, chats, func(ctx context.Context) ([]domain.Chat, error) { return src.Chats(ctx, id) })
		spawn(fetchCtx, &g, retry, collections, func(ctx context.Context) ([]domain.Collection, error) { return src.Collections(ctx, id) })
		spawn(fetchCtx, &g, retry, folders, func(ctx context.Context) ([]domain.Folder, error) { return src.Folders(ctx, id) })
		spawn(fetchCtx, &g, retry, files, func(ctx context.Context) ([]domain.File, error) { return src.Files(ctx, id) })
		spawn(fetchCtx, &g, retry, presets, func(ctx context.Context) ([]domain.Preset, error) { return src.Presets(ctx, id) })
		spawn(fetchCtx, &g, retry, prompts, func(ctx context.Context) ([]domain.Prompt, error) { return src.Prompts(ctx, id) })
		spawn(fetchCtx, &g, retry, tools, func(ctx context.Context) ([]domain.Tool, error) { return src.Tools(ctx, id) })
		spawn(fetchCtx, &g, retry, models, func(ctx context.Context) ([]domain.Model, error) { return src.Models(ctx, id) })
	}()
	defer func() {
		cancelFetches()
		<-spawned
		g.Wait()
	}()

	ws, err := commit(ctx, workspace, "workspace", w.SetWorkspace)
	if err != nil {
		return err
	}

	list, err := commit(ctx, assistants, "assistants", w.SetAssistants)
	if err != nil {
		return err
	}
	if err := h.resolveAvatars(ctx, w, list); err != nil {
		return err
	}

	if _, err := commit(ctx, chats, "chats", w.SetChats); err != nil {
		return err
	}
	if _, err := commit(ctx, collections, "collections", w.SetCollections); err != nil {
		return err
	}
	if _, err := commit(ctx, folders, "folders", w.SetFolders); err != nil {
		return err
	}
	if _, err := commit(ctx, files, "files", w.SetFiles); err != nil {
		return err
	}
	if _, err := commit(ctx, presets, "presets", w.SetPresets); err != nil {
		return err
	}
	if _, err := commit(ctx, prompts, "prompts", w.SetPrompts); err != nil {
		return err
	}
	if _, err := commit(ctx, tools, "tools", w.SetTools); err != nil {
		return err
	}
	if _, err := commit(ctx, models, "models", w.SetModels); err != nil {
		return err
	}

	if err := w.SetChatSettings(ResolveChatSettings(ws, h.opts.Defaults)); err != nil {
		return err
	}
	return w.Finish()
}
