package hydrate

import "sync"

// Registry keeps one Hydrator per chat.
type Registry struct {
	mu      sync.Mutex
	items   map[int64]*Hydrator
	factory func(chatID int64) *Hydrator
}

func NewRegistry(factory func(chatID int64) *Hydrator) *Registry {
	return &Registry{
		items:   make(map[int64]*Hydrator),
		factory: factory,
	}
}

func (r *Registry) Get(chatID int64) (*Hydrator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.items[chatID]
	return h, ok
}

func (r *Registry) GetOrCreate(chatID int64) *Hydrator {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.items[chatID]; ok {
		return h
	}
	h := r.factory(chatID)
	r.items[chatID] = h
	return h
}

// Remove stops the chat's in-flight run and drops its state.
func (r *Registry) Remove(chatID int64) {
	r.mu.Lock()
	h, ok := r.items[chatID]
	delete(r.items, chatID)
	r.mu.Unlock()

	if ok {
		h.Close()
		h.Store().Clear()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
