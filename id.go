package gui

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same declaration path.
// Zero means "no widget".
type ID uint32

// String formats the id as hex for logs.
func (id ID) String() string {
	return "0x" + strconv.FormatUint(uint64(id), 16)
}

// rootID is the id of the implicit root widget that owns top-level windows.
var rootID = hashID(0, "#root", 0)

// idScope is one level of the id stack. Widget scopes carry the arena slot
// of the widget that owns the children; PushID scopes only namespace ids.
type idScope struct {
	id     ID
	slot   int32 // -1 for PushID namespaces
	labels map[string]int
	anon   int
}

func (s *idScope) reset(id ID, slot int32) {
	s.id = id
	s.slot = slot
	s.anon = 0
	if s.labels == nil {
		s.labels = make(map[string]int)
	} else {
		clear(s.labels)
	}
}

// hashID combines parent id, label and sibling occurrence into a 32-bit id.
// Changing one sibling's label does not move any other sibling's id because
// the occurrence counter is kept per label, not per parent.
func hashID(parent ID, label string, occurrence int) ID {
	var buf [4]byte
	h := fnv.New32a()
	binary.LittleEndian.PutUint32(buf[:], uint32(parent))
	h.Write(buf[:])
	h.Write([]byte(label))
	binary.LittleEndian.PutUint32(buf[:], uint32(occurrence))
	h.Write(buf[:])
	id := ID(h.Sum32())
	if id == 0 {
		id = 1
	}
	return id
}

// currentScope returns the innermost id scope.
func (ctx *Context) currentScope() *idScope {
	return &ctx.idStack[len(ctx.idStack)-1]
}

// pushScope opens a new id scope owned by the widget at slot (or -1).
func (ctx *Context) pushScope(id ID, slot int32) {
	n := len(ctx.idStack)
	if n < cap(ctx.idStack) {
		ctx.idStack = ctx.idStack[:n+1]
	} else {
		ctx.idStack = append(ctx.idStack, idScope{})
	}
	ctx.idStack[n].reset(id, slot)
}

// popScope closes the innermost scope. The root scope is never popped.
func (ctx *Context) popScope() idScope {
	n := len(ctx.idStack)
	if n <= 1 {
		misuse(ErrUnbalancedScope, "pop of the root scope")
	}
	s := ctx.idStack[n-1]
	ctx.idStack = ctx.idStack[:n-1]
	return s
}

// nextID derives the id for the next declaration in the current scope.
// An empty label yields an anonymous id built from the widget kind and a
// per-scope ordinal.
func (ctx *Context) nextID(label string, kind WidgetType) ID {
	scope := ctx.currentScope()
	if label == "" {
		scope.anon++
		return hashID(scope.id, kind.String()+"#", scope.anon)
	}
	n := scope.labels[label]
	scope.labels[label] = n + 1
	return hashID(scope.id, label, n)
}

// GetID returns the id the next declaration with this label would receive
// in the current scope, without consuming it.
func (ctx *Context) GetID(label string) ID {
	scope := ctx.currentScope()
	return hashID(scope.id, label, scope.labels[label])
}

// PushID opens an id namespace. Widgets declared until the matching PopID
// derive their ids from it. Useful for items in loops.
func (ctx *Context) PushID(label string) {
	ctx.assertInFrame()
	ctx.pushScope(ctx.nextID(label, WidgetRoot), -1)
}

// PushIDInt opens an id namespace from an integer, typically a slice index.
func (ctx *Context) PushIDInt(n int) {
	ctx.PushID("#" + strconv.Itoa(n))
}

// PopID closes a namespace opened by PushID.
func (ctx *Context) PopID() {
	ctx.assertInFrame()
	if ctx.currentScope().slot >= 0 {
		misuse(ErrUnbalancedScope, "PopID while a widget scope is open")
	}
	ctx.popScope()
}

// CurrentID returns the id of the innermost scope.
func (ctx *Context) CurrentID() ID {
	return ctx.currentScope().id
}

// parentSlot returns the arena slot of the nearest widget scope.
func (ctx *Context) parentSlot() int32 {
	for i := len(ctx.idStack) - 1; i >= 0; i-- {
		if ctx.idStack[i].slot >= 0 {
			return ctx.idStack[i].slot
		}
	}
	return ctx.rootSlot
}
