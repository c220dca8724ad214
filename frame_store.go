package gui

// Cleanable is implemented by stores that drop state of reclaimed widgets.
type Cleanable interface {
	Forget(ids []ID)
}

// FrameStore is a type-safe store for per-widget state that lives next to
// the widget arena. Entries are dropped when the arena reclaims the widget's
// slot, so state survives exactly as long as the widget keeps being declared.
//
// Usage:
//
//	store := gui.NewFrameStore[MyWidgetState](ctx)
//	state := store.Get(id, MyWidgetState{})
//	state.Open = !state.Open // direct modification
type FrameStore[T any] struct {
	states map[ID]*T
}

// NewFrameStore creates a store and registers it with the context for
// cleanup.
func NewFrameStore[T any](ctx *Context) *FrameStore[T] {
	store := &FrameStore[T]{states: make(map[ID]*T)}
	ctx.stores = append(ctx.stores, store)
	return store
}

// Get retrieves state for the given ID, or creates it with defaultVal if not found.
// Returns a pointer to the state, allowing direct modification.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	if v, ok := s.states[id]; ok {
		return v
	}
	v := new(T)
	*v = defaultVal
	s.states[id] = v
	return v
}

// GetIfExists retrieves state only if it already exists.
// Returns nil if no state exists for this ID.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	return s.states[id]
}

// Set explicitly sets state for an ID.
func (s *FrameStore[T]) Set(id ID, value T) {
	if v, ok := s.states[id]; ok {
		*v = value
		return
	}
	v := new(T)
	*v = value
	s.states[id] = v
}

// Delete explicitly removes state for an ID.
func (s *FrameStore[T]) Delete(id ID) {
	delete(s.states, id)
}

// Forget removes the state of reclaimed widgets.
func (s *FrameStore[T]) Forget(ids []ID) {
	for _, id := range ids {
		delete(s.states, id)
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	return len(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[T]) Clear() {
	clear(s.states)
}
