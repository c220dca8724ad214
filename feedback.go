package gui

// Feedback is the engine-wide interaction state. It is kept apart from the
// layout geometry and only mutated by the feedback pass. At most one widget
// holds each role at a time.
type Feedback struct {
	Hovered      ID
	HoveredPart  SubPart
	Pressed      ID
	PressedPart  SubPart
	Dragged      ID
	ActiveWindow ID
	EditingText  ID

	DragOrigin Vec2 // pointer position at press
	DragGrab   Vec2 // pointer offset from the pressed widget's corner at press
	ClickCount int  // consecutive clicks on the same widget

	lastClick   ID
	lastClickMs uint64
}

// hitRegion is one hit-testable rectangle in paint order.
type hitRegion struct {
	slot int32
	rect Rect // global bounds intersected with the enclosing clip
}

// Feedback returns a copy of the interaction state.
func (ctx *Context) Feedback() Feedback {
	return ctx.feedback
}

// feedbackPass folds the queued host events into the feedback table and
// dispatches them to widget kinds, in arrival order.
func (ctx *Context) feedbackPass() {
	ctx.consumed = false
	for _, slot := range ctx.flagged {
		ctx.arena.at(slot).Props.Input = 0
	}
	ctx.flagged = ctx.flagged[:0]
	ctx.shortcuts = ctx.shortcuts[:0]
	ctx.Input.Reset()

	ctx.hits = ctx.hits[:0]
	ctx.collectHits(ctx.arena.at(ctx.rootSlot), Rect{W: ctx.screen.X, H: ctx.screen.Y})
	ctx.validateFeedback()
	ctx.updateHover()

	for _, ev := range ctx.pending.Events {
		ctx.Input.Apply(ev)
		ctx.handleEvent(ev)
	}
	ctx.pending.Reset()

	if id := ctx.feedback.EditingText; id != 0 {
		if w, ok := ctx.arena.get(id); ok {
			ctx.dispatch(w, &uiEvent{kind: evTick, pos: ctx.Input.MousePos()})
		}
	}
}

// collectHits appends the hit regions of w's subtree in paint order.
func (ctx *Context) collectHits(w *Widget, clip Rect) {
	if w.Has(FlagIgnored) {
		return
	}
	if w.slot != ctx.rootSlot && !w.Has(FlagPassThrough) {
		if r := w.Layout.Global.Intersect(clip); r.W > 0 && r.H > 0 {
			ctx.hits = append(ctx.hits, hitRegion{slot: w.slot, rect: r})
		}
	}
	if len(w.children) == 0 {
		return
	}
	inner := clip
	if w.Has(FlagClip) {
		inner = clip.Intersect(w.Layout.Content)
	}
	for _, slot := range ctx.paintOrder(w) {
		if c := ctx.arena.at(slot); !c.Has(FlagParentControlled) {
			ctx.collectHits(c, inner)
		}
	}
	for _, slot := range w.children {
		if c := ctx.arena.at(slot); c.Has(FlagParentControlled) {
			ctx.collectHits(c, clip)
		}
	}
}

// live reports whether id refers to a widget that can take part in input
// this frame.
func (ctx *Context) live(id ID) bool {
	w, ok := ctx.arena.get(id)
	return ok && w.declaredIn(ctx.frame) && !w.Has(FlagIgnored)
}

// validateFeedback drops roles held by widgets that were not declared this
// frame.
func (ctx *Context) validateFeedback() {
	fb := &ctx.feedback
	if fb.Pressed != 0 && (!ctx.live(fb.Pressed) || ctx.MustWidget(fb.Pressed).Has(FlagDisabled)) {
		fb.Pressed, fb.PressedPart, fb.Dragged = 0, PartNone, 0
	}
	if fb.Dragged != 0 && !ctx.live(fb.Dragged) {
		fb.Dragged = 0
	}
	if fb.ActiveWindow != 0 && !ctx.live(fb.ActiveWindow) {
		fb.ActiveWindow = 0
	}
	if fb.EditingText != 0 && !ctx.live(fb.EditingText) {
		ctx.endTextEdit(false)
	}
}

// updateHover finds the topmost hit region under the pointer.
func (ctx *Context) updateHover() {
	fb := &ctx.feedback
	p := ctx.Input.MousePos()
	fb.Hovered, fb.HoveredPart = 0, PartNone
	for i := len(ctx.hits) - 1; i >= 0; i-- {
		h := ctx.hits[i]
		if !h.rect.Contains(p) {
			continue
		}
		w := ctx.arena.at(h.slot)
		fb.Hovered, fb.HoveredPart = w.ID, PartBody
		if hitPart := kindOf(w.Type).hitPart; hitPart != nil {
			fb.HoveredPart = hitPart(ctx, w, p)
		}
		return
	}
}

// handleEvent routes one host event.
func (ctx *Context) handleEvent(ev InputEvent) {
	switch ev.Kind {
	case EventMouseMove:
		ctx.updateHover()
		ctx.pointerMoved()
	case EventMouseButton:
		if ev.Button != MouseButtonLeft {
			return
		}
		if ev.Down {
			ctx.pointerDown()
		} else {
			ctx.pointerUp()
		}
	case EventMouseWheel:
		ctx.wheel(ev.Wheel)
	case EventKey:
		if !ev.Down {
			return
		}
		if ctx.feedback.EditingText == 0 {
			ctx.shortcuts = append(ctx.shortcuts, Shortcut{Key: ev.Key, Mods: ev.Mods})
			return
		}
		if w, ok := ctx.arena.get(ctx.feedback.EditingText); ok {
			ctx.dispatch(w, &uiEvent{kind: evKey, key: ev.Key, mods: ev.Mods})
		}
	case EventChar:
		if ctx.feedback.EditingText == 0 {
			return
		}
		if w, ok := ctx.arena.get(ctx.feedback.EditingText); ok {
			ctx.dispatch(w, &uiEvent{kind: evChar, char: ev.Char, mods: ctx.Input.Mods})
		}
	}
}

func (ctx *Context) pointerDown() {
	fb := &ctx.feedback
	p := ctx.Input.MousePos()
	if fb.Hovered == 0 {
		fb.ActiveWindow = 0
		ctx.endTextEdit(false)
		return
	}
	w := ctx.MustWidget(fb.Hovered)
	if w.Has(FlagDisabled) {
		return
	}
	fb.Pressed, fb.PressedPart = w.ID, fb.HoveredPart
	fb.Dragged = 0
	fb.DragOrigin = p
	fb.DragGrab = p.Sub(w.Layout.Global.Pos())
	ctx.activateWindow(w)
	if fb.EditingText != 0 && fb.EditingText != w.ID {
		ctx.endTextEdit(false)
	}
	ctx.dispatch(w, &uiEvent{kind: evPress, part: fb.PressedPart, pos: p, mods: ctx.Input.Mods})
}

func (ctx *Context) pointerMoved() {
	fb := &ctx.feedback
	if fb.Pressed == 0 {
		return
	}
	w, ok := ctx.arena.get(fb.Pressed)
	if !ok {
		return
	}
	p := ctx.Input.MousePos()
	ev := uiEvent{kind: evDrag, part: fb.PressedPart, pos: p, delta: p.Sub(fb.DragOrigin), mods: ctx.Input.Mods}
	if fb.Dragged == 0 {
		t := ctx.cfg.DragThreshold
		if !w.Has(FlagDraggable) || ev.delta.X*ev.delta.X+ev.delta.Y*ev.delta.Y <= t*t {
			return
		}
		if ctx.dispatch(w, &ev) {
			fb.Dragged = w.ID
		}
		return
	}
	ctx.dispatch(w, &ev)
}

func (ctx *Context) pointerUp() {
	fb := &ctx.feedback
	if fb.Pressed == 0 {
		return
	}
	pressed, part := fb.Pressed, fb.PressedPart
	fb.Pressed, fb.PressedPart, fb.Dragged = 0, PartNone, 0
	w, ok := ctx.arena.get(pressed)
	if !ok {
		return
	}
	p := ctx.Input.MousePos()
	ctx.dispatch(w, &uiEvent{kind: evRelease, part: part, pos: p, delta: p.Sub(fb.DragOrigin)})
	if fb.Hovered != pressed || fb.HoveredPart != part {
		return
	}

	if fb.lastClick == pressed && ctx.nowMs-fb.lastClickMs <= ctx.cfg.DoubleClickMs {
		fb.ClickCount++
	} else {
		fb.ClickCount = 1
	}
	fb.lastClick, fb.lastClickMs = pressed, ctx.nowMs
	flags := InputClicked
	if fb.ClickCount == 2 {
		flags |= InputDoubleClicked
	}
	ctx.raise(w, flags)
	ctx.dispatch(w, &uiEvent{kind: evClick, part: part, pos: p, clicks: fb.ClickCount})
}

// wheel scrolls the hovered widget if it owns scrolling, otherwise the
// nearest ancestor with scroll range on the wheel axis.
func (ctx *Context) wheel(delta Vec2) {
	fb := &ctx.feedback
	if fb.Hovered == 0 {
		return
	}
	for w := ctx.MustWidget(fb.Hovered); w != nil; w = ctx.parentOf(w) {
		if w.Has(FlagOwnsScroll) && !w.Has(FlagDisabled) {
			if ctx.dispatch(w, &uiEvent{kind: evWheel, delta: delta, pos: ctx.Input.MousePos()}) {
				return
			}
		}
		l := &w.Layout
		if (delta.Y != 0 && l.ScrollRange.Y > 0) || (delta.X != 0 && l.ScrollRange.X > 0) {
			step := ctx.cfg.WheelStep
			l.ChildrenOffset.X = clampf(l.ChildrenOffset.X-delta.X*step, 0, l.ScrollRange.X)
			l.ChildrenOffset.Y = clampf(l.ChildrenOffset.Y-delta.Y*step, 0, l.ScrollRange.Y)
			ctx.consumed = true
			return
		}
	}
}

// activateWindow makes the top-level window containing w active and brings
// it to the front.
func (ctx *Context) activateWindow(w *Widget) {
	fb := &ctx.feedback
	for c := w; c != nil; c = ctx.parentOf(c) {
		if c.Type != WidgetWindow || c.parentSlot != ctx.rootSlot {
			continue
		}
		if fb.ActiveWindow != c.ID && guiVerbose() {
			ctx.log.Debug("window activated", "id", c.ID, "title", c.Props.Text)
		}
		fb.ActiveWindow = c.ID
		st := ctx.windows.Get(c.ID, windowState{})
		if st.Z != ctx.topZ {
			ctx.topZ++
			st.Z = ctx.topZ
		}
		return
	}
	fb.ActiveWindow = 0
}

// dispatch delivers ev to the kind handler of w.
func (ctx *Context) dispatch(w *Widget, ev *uiEvent) bool {
	if w.Has(FlagDisabled) {
		return false
	}
	handler := kindOf(w.Type).updateInput
	if handler == nil {
		return false
	}
	if handler(ctx, w, ev) {
		ctx.consumed = true
		return true
	}
	return false
}

// raise sets one-frame input flags on w. Flags not collected by the next
// declaration are cleared at the start of the next feedback pass.
func (ctx *Context) raise(w *Widget, flags InputFlags) {
	w.Props.Input |= flags
	ctx.flagged = append(ctx.flagged, w.slot)
}
