package gui

const arenaChunkSize = 256

// widgetArena is a dense store of widget records keyed by id.
// Records live in fixed-size chunks so pointers handed out during a frame
// stay valid while the arena grows. Slots of widgets that were not declared
// for staleFrames frames are recycled at the start of a frame.
type widgetArena struct {
	chunks [][]Widget
	n      int32
	index  map[ID]int32
	free   []int32
}

func newWidgetArena() *widgetArena {
	return &widgetArena{index: make(map[ID]int32, 256)}
}

// at returns the widget stored in slot.
func (a *widgetArena) at(slot int32) *Widget {
	return &a.chunks[slot/arenaChunkSize][slot%arenaChunkSize]
}

// alloc returns an unused slot.
func (a *widgetArena) alloc() int32 {
	if n := len(a.free); n > 0 {
		slot := a.free[n-1]
		a.free = a.free[:n-1]
		return slot
	}
	slot := a.n
	if int(slot/arenaChunkSize) == len(a.chunks) {
		a.chunks = append(a.chunks, make([]Widget, arenaChunkSize))
	}
	a.n++
	return slot
}

// addOrGet returns the record for id, creating it when the id is unknown or
// was last used by a different widget type.
func (a *widgetArena) addOrGet(id ID, typ WidgetType) (*Widget, bool) {
	if slot, ok := a.index[id]; ok {
		w := a.at(slot)
		if w.Type == typ {
			return w, false
		}
		a.reset(w, id, typ)
		return w, true
	}
	slot := a.alloc()
	w := a.at(slot)
	w.slot = slot
	a.reset(w, id, typ)
	a.index[id] = slot
	return w, true
}

// reset reinitializes a record in place, keeping its slot and children buffer.
func (a *widgetArena) reset(w *Widget, id ID, typ WidgetType) {
	children := w.children[:0]
	*w = Widget{
		ID:         id,
		Type:       typ,
		slot:       w.slot,
		generation: w.generation + 1,
		children:   children,
	}
	w.Layout.Max = Vec2{X: Unbounded, Y: Unbounded}
}

// get returns the record for id.
func (a *widgetArena) get(id ID) (*Widget, bool) {
	slot, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return a.at(slot), true
}

// sweep frees records not declared since frame-staleFrames and returns the
// freed ids.
func (a *widgetArena) sweep(frame uint64, staleFrames int, freed []ID) []ID {
	if staleFrames <= 0 || frame <= uint64(staleFrames) {
		return freed
	}
	threshold := frame - uint64(staleFrames)
	for id, slot := range a.index {
		w := a.at(slot)
		if w.lastFrame < threshold {
			delete(a.index, id)
			w.ID = 0
			w.children = w.children[:0]
			a.free = append(a.free, slot)
			freed = append(freed, id)
		}
	}
	return freed
}

// len returns the number of live records.
func (a *widgetArena) len() int {
	return len(a.index)
}
