package gui

func init() {
	kinds[WidgetWindow] = widgetKind{
		create:        windowCreate,
		hitPart:       windowHitPart,
		updateInput:   windowInput,
		render:        renderWindow,
		renderOverlay: renderWindowGrip,
	}
}

const (
	minWindowWidth = 64
	closeInset     = 5
)

func windowCreate(ctx *Context, w *Widget) {
	w.Flags |= FlagAllowChildren | FlagClip | FlagScrollY | FlagDraggable
	w.Layout.Direction = DirectionVertical
	st := ctx.windows.Get(w.ID, windowState{})
	ctx.topZ++
	st.Z = ctx.topZ
}

// BeginWindow opens a top-level window and returns whether its content is
// visible. EndWindow must be called either way.
//
// Windows are placed with WithPosition and sized by their content unless
// WithSize is given or the user resized them. Open(&flag) adds a close
// button bound to flag.
//
// Usage:
//
//	if ctx.BeginWindow("Stats", gui.WithPosition(20, 20)) {
//	    ctx.Labelf("fps: %.0f", fps)
//	}
//	ctx.EndWindow()
func (ctx *Context) BeginWindow(title string, opts ...Option) bool {
	o := applyOptions(opts)
	w := ctx.declare(title, WidgetWindow, o)
	w.Props.Text = title
	st := ctx.windows.Get(w.ID, windowState{})
	if !st.loaded {
		st.loaded = true
		st.Pos = GetOpt(o, OptPosition)
		size := GetOpt(o, OptSize)
		st.Size = Vec2{X: size.W, Y: size.H}
		ctx.loadWindow(w.ID, st)
	}

	open := GetOpt(o, OptOpen)
	if w.takeInput(InputClosed) && open.Ptr != nil {
		*open.Ptr = false
	}
	w.takeInput(InputClicked | InputDoubleClicked)
	visible := open.Ptr == nil || *open.Ptr
	if !visible {
		w.Flags |= FlagIgnored
	}
	st.Closable = open.Ptr != nil
	st.Resizable = GetOpt(o, OptResizable)
	st.Movable = GetOpt(o, OptMovable)

	l := &w.Layout
	l.Position, l.Placed = st.Pos, true
	if st.Size.X > 0 {
		l.Fixed.X = st.Size.X
	}
	if st.Size.Y > 0 {
		l.Fixed.Y = st.Size.Y
	}
	if l.Min.X < minWindowWidth {
		l.Min.X = minWindowWidth
	}
	titleH := ctx.theme.Float(WidgetWindow, StateNormal, PropTitleBarHeight)
	l.Padding.Top += titleH
	l.Min.Y = maxf(l.Min.Y, titleH)

	pad := ctx.theme.Float(WidgetWindow, StateNormal, PropPadding)
	l.Intrinsic = Vec2{X: ctx.measureText(title, WidgetWindow).X + pad*2, Y: titleH}
	if st.Closable {
		l.Intrinsic.X += titleH
	}

	ctx.openScope(w)
	return visible
}

// EndWindow closes the window opened by BeginWindow.
func (ctx *Context) EndWindow() {
	ctx.closeScope(WidgetWindow)
}

// Window declares a window and runs body when it is visible.
//
// Usage:
//
//	ctx.Window("Debug", gui.WithPosition(10, 10))(func() {
//	    ctx.Label("hello")
//	})
func (ctx *Context) Window(title string, opts ...Option) func(body func()) {
	return func(body func()) {
		if ctx.BeginWindow(title, opts...) {
			body()
		}
		ctx.EndWindow()
	}
}

// loadWindow restores persisted geometry.
func (ctx *Context) loadWindow(id ID, st *windowState) {
	if ctx.settings == nil {
		return
	}
	s, ok, err := ctx.settings.LoadWindow(id)
	if err != nil {
		ctx.log.Warn("failed to load window settings", "id", id, "error", err)
		return
	}
	if ok {
		st.Pos, st.Size = s.Pos, s.Size
	}
}

// saveWindow persists geometry after a move or resize.
func (ctx *Context) saveWindow(id ID, st *windowState) {
	st.dirty = false
	if ctx.settings == nil {
		return
	}
	if err := ctx.settings.SaveWindow(id, WindowSettings{Pos: st.Pos, Size: st.Size}); err != nil {
		ctx.log.Warn("failed to save window settings", "id", id, "error", err)
	}
}

// closeRect returns the local rectangle of the close button.
func closeRect(size Vec2, titleH float32) Rect {
	return Rect{X: size.X - titleH + closeInset, Y: closeInset, W: titleH - closeInset*2, H: titleH - closeInset*2}
}

func windowHitPart(ctx *Context, w *Widget, p Vec2) SubPart {
	st := ctx.windows.Get(w.ID, windowState{})
	local := p.Sub(w.Layout.Global.Pos())
	size := w.Layout.Global.Size()

	if st.Resizable {
		b := ctx.theme.Float(WidgetWindow, StateNormal, PropResizeBorder)
		left := local.X < b
		right := local.X >= size.X-b
		top := local.Y < b
		bottom := local.Y >= size.Y-b
		switch {
		case top && left:
			return PartResizeNW
		case top && right:
			return PartResizeNE
		case bottom && left:
			return PartResizeSW
		case bottom && right:
			return PartResizeSE
		case left:
			return PartResizeW
		case right:
			return PartResizeE
		case top:
			return PartResizeN
		case bottom:
			return PartResizeS
		}
	}

	titleH := ctx.theme.Float(WidgetWindow, StateNormal, PropTitleBarHeight)
	if local.Y < titleH {
		if st.Closable && closeRect(size, titleH).Contains(local) {
			return PartClose
		}
		return PartTitleBar
	}
	return PartBody
}

func windowInput(ctx *Context, w *Widget, ev *uiEvent) bool {
	st := ctx.windows.Get(w.ID, windowState{})
	switch ev.kind {
	case evPress:
		st.startPos = st.Pos
		st.startSize = w.Layout.Local.Size()
		return true
	case evDrag:
		switch {
		case ev.part == PartTitleBar && st.Movable:
			pos := ctx.snapWindow(w, st.startPos.Add(ev.delta), st.startSize)
			st.Pos = ctx.clampWindowPos(pos, st.startSize)
		case resizeEdges(ev.part) != ResizeEdgeNone && st.Resizable:
			st.Pos, st.Size = resizeWindow(st.startPos, st.startSize, ev.delta, resizeEdges(ev.part), w.Layout.Min, w.Layout.Max)
		default:
			return false
		}
		st.dirty = true
		return true
	case evRelease:
		if st.dirty {
			ctx.saveWindow(w.ID, st)
		}
		return true
	case evClick:
		if ev.part == PartClose {
			ctx.raise(w, InputClosed)
		}
		return true
	}
	return false
}

// resizeWindow applies a drag of the given edges to the geometry captured at
// press time. The size is clamped to the window constraints, and dragging a
// left or top edge keeps the opposite edge in place.
func resizeWindow(pos, size, delta Vec2, edges ResizableEdge, minSize, maxSize Vec2) (Vec2, Vec2) {
	next := size
	if edges&ResizeEdgeRight != 0 {
		next.X = size.X + delta.X
	}
	if edges&ResizeEdgeLeft != 0 {
		next.X = size.X - delta.X
	}
	if edges&ResizeEdgeBottom != 0 {
		next.Y = size.Y + delta.Y
	}
	if edges&ResizeEdgeTop != 0 {
		next.Y = size.Y - delta.Y
	}
	next = clampSize(next, minSize, maxSize)
	if edges&ResizeEdgeLeft != 0 {
		pos.X += size.X - next.X
	}
	if edges&ResizeEdgeTop != 0 {
		pos.Y += size.Y - next.Y
	}
	return pos, next
}

// clampWindowPos keeps a grabbable part of the title bar on screen.
func (ctx *Context) clampWindowPos(pos, size Vec2) Vec2 {
	const keep = 40
	titleH := ctx.theme.Float(WidgetWindow, StateNormal, PropTitleBarHeight)
	pos.X = clampf(pos.X, keep-size.X, maxf(0, ctx.screen.X-keep))
	pos.Y = clampf(pos.Y, 0, maxf(0, ctx.screen.Y-titleH))
	return pos
}

func renderWindow(ctx *Context, w *Widget, r *Recorder) {
	state := ctx.state(w)
	bounds := r.Bounds()
	r.Rect(bounds, ctx.theme.Color(WidgetWindow, state, PropBackground))

	titleH := ctx.theme.Float(WidgetWindow, StateNormal, PropTitleBarHeight)
	r.Rect(Rect{W: bounds.W, H: titleH}, ctx.theme.Color(WidgetWindow, state, PropTitleBarColor))

	pad := ctx.theme.Float(WidgetWindow, StateNormal, PropPadding)
	style := ctx.fontStyle(WidgetWindow)
	textH := ctx.deps.Measurer.MeasureText(w.Props.Text, style).Y
	st := ctx.windows.GetIfExists(w.ID)
	closable := st != nil && st.Closable
	room := bounds.W - pad*2
	if closable {
		room -= titleH
	}
	title := ctx.TruncateText(w.Props.Text, WidgetWindow, room)
	r.Text(Vec2{X: pad, Y: (titleH - textH) / 2}, TextRun{Text: title, Style: style, Color: ctx.textColor(w)})

	if closable {
		c := closeRect(bounds.Size(), titleH)
		color := ctx.theme.Color(WidgetWindow, StateNormal, PropTextColor)
		if ctx.feedback.Hovered == w.ID && ctx.feedback.HoveredPart == PartClose {
			color = ctx.theme.Color(WidgetWindow, StateNormal, PropMarkColor)
		}
		r.Line(c.Pos(), c.Pos().Add(c.Size()), color, 1.5)
		r.Line(Vec2{X: c.X + c.W, Y: c.Y}, Vec2{X: c.X, Y: c.Y + c.H}, color, 1.5)
	}
	r.Border(bounds, ctx.theme.Color(WidgetWindow, state, PropBorderColor), ctx.theme.Float(WidgetWindow, state, PropBorderWidth))
}

// renderWindowGrip draws the resize grip over the content.
func renderWindowGrip(ctx *Context, w *Widget, r *Recorder) {
	st := ctx.windows.GetIfExists(w.ID)
	if st == nil || !st.Resizable {
		return
	}
	size := r.Size()
	color := ctx.theme.Color(WidgetWindow, StateNormal, PropBorderColor)
	if ctx.feedback.Hovered == w.ID && ctx.feedback.HoveredPart == PartResizeSE {
		color = ctx.theme.Color(WidgetWindow, StateFocused, PropTitleBarColor)
	}
	for i := float32(1); i <= 3; i++ {
		d := i * 4
		r.Line(Vec2{X: size.X - d, Y: size.Y - 1}, Vec2{X: size.X - 1, Y: size.Y - d}, color, 1)
	}
}
