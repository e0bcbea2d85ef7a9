package hydrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/set-night/chatbotui/internal/domain"
	"github.com/set-night/chatbotui/internal/state"
	"golang.org/x/sync/errgroup"
)

// resolveAvatars appends exactly one AssistantImage per assistant, in list
// order, each as soon as it and all its predecessors are resolved.
func (h *Hydrator) resolveAvatars(ctx context.Context, w *state.Writer, assistants []domain.Assistant) error {
	if len(assistants) == 0 {
		return nil
	}

	if h.opts.AvatarConcurrency <= 1 {
		for _, a := range assistants {
			img, err := h.resolveAvatar(ctx, a)
			if err != nil {
				return err
			}
			if err := w.AppendAssistantImage(img); err != nil {
				return err
			}
		}
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.opts.AvatarConcurrency)

	results := make([]*pending[domain.AssistantImage], len(assistants))
	for i := range results {
		results[i] = newPending[domain.AssistantImage]()
	}

	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for i, a := range assistants {
			r := results[i]
			if err := gctx.Err(); err != nil {
				r.set(domain.AssistantImage{}, err)
				continue
			}
			g.Go(func() error {
				img, err := h.resolveAvatar(gctx, a)
				r.set(img, err)
				return err
			})
		}
	}()

	var loopErr error
	for _, r := range results {
		<-r.done
		if r.err != nil {
			loopErr = r.err
			break
		}
		if err := w.AppendAssistantImage(r.val); err != nil {
			loopErr = err
			break
		}
	}
	if loopErr != nil {
		cancel()
	}

	<-launched
	werr := g.Wait()
	// A cancelled slot only reports the failure of a later one.
	if loopErr != nil && (werr == nil || !errors.Is(loopErr, context.Canceled)) {
		return loopErr
	}
	return werr
}

// resolveAvatar never touches storage for an assistant without an image
// path. A failed or empty URL resolution yields an entry without payload; a
// failed download or encoding is an error.
func (h *Hydrator) resolveAvatar(ctx context.Context, a domain.Assistant) (domain.AssistantImage, error) {
	img := domain.AssistantImage{AssistantID: a.ID, Path: a.ImagePath}
	if !a.HasImage() {
		return img, nil
	}

	url, err := h.images.ResolveURL(ctx, a.ImagePath)
	if err != nil {
		if ctx.Err() != nil {
			return img, ctx.Err()
		}
		h.log.Warn("resolve assistant image", "assistant_id", a.ID, "path", a.ImagePath, "error", err)
		return img, nil
	}
	if url == "" {
		return img, nil
	}

	data, err := h.images.Download(ctx, url)
	if err != nil {
		return img, fmt.Errorf("download image of assistant %s: %w", a.ID, err)
	}
	encoded, err := h.images.Encode(data)
	if err != nil {
		return img, fmt.Errorf("encode image of assistant %s: %w", a.ID, err)
	}

	img.URL = url
	img.Base64 = encoded
	return img, nil
}
