package gui

func init() {
	kinds[WidgetNodeCanvas] = widgetKind{
		create: func(ctx *Context, w *Widget) {
			w.Flags |= FlagAllowChildren | FlagClip | FlagDraggable | FlagOwnsScroll
			w.Layout.Direction = DirectionFree
		},
		updateInput: canvasInput,
		render:      renderCanvas,
	}
	kinds[WidgetNode] = widgetKind{
		create: func(ctx *Context, w *Widget) {
			w.Flags |= FlagAllowChildren | FlagDraggable
			w.Layout.Direction = DirectionVertical
		},
		hitPart:     nodeHitPart,
		updateInput: nodeInput,
		render:      renderNode,
	}
}

// defaultCanvasSize is the size of a node canvas without size options.
var defaultCanvasSize = Vec2{X: 320, Y: 240}

// BeginNodeCanvas opens a pannable canvas of nodes. Drag the background to
// pan, use the wheel to pan vertically. Must be paired with EndNodeCanvas.
func (ctx *Context) BeginNodeCanvas(label string, opts ...Option) {
	o := applyOptions(opts)
	w := ctx.declare(label, WidgetNodeCanvas, o)
	w.Props.Text = label
	w.Layout.Direction = DirectionFree
	if w.Layout.Fixed.X <= 0 {
		w.Layout.Fixed.X = defaultCanvasSize.X
	}
	if w.Layout.Fixed.Y <= 0 {
		w.Layout.Fixed.Y = defaultCanvasSize.Y
	}
	cs := ctx.canvases.Get(w.ID, canvasState{})
	cs.Links = cs.Links[:0]
	ctx.openScope(w)
}

// EndNodeCanvas closes the canvas opened by BeginNodeCanvas.
func (ctx *Context) EndNodeCanvas() {
	ctx.closeScope(WidgetNodeCanvas)
}

// currentCanvas returns the canvas owning the current scope.
func (ctx *Context) currentCanvas(op string) *Widget {
	ctx.assertInFrame()
	w := ctx.arena.at(ctx.parentSlot())
	if w.Type != WidgetNodeCanvas {
		misuse(ErrUnbalancedScope, "%s outside of a node canvas (in %s)", op, w.Type)
	}
	return w
}

// BeginNode opens a node at canvas position pos. Dragging the node header
// moves it; the new position is written back to pos on the next frame and
// BeginNode returns true then. Must be paired with EndNode.
func (ctx *Context) BeginNode(title string, pos *Vec2, opts ...Option) bool {
	canvas := ctx.currentCanvas("BeginNode")
	o := applyOptions(opts)
	w := ctx.declare(title, WidgetNode, o)
	w.Props.Text = title
	w.Props.TextColor = GetOpt(o, OptTextColor)

	changed := false
	if w.takeInput(InputValueUpdated) {
		*pos = Vec2{X: float32(w.Props.Param[0]), Y: float32(w.Props.Param[1])}
		changed = true
	} else {
		w.Props.Param = [2]float64{float64(pos.X), float64(pos.Y)}
	}
	w.takeInput(InputClicked | InputDoubleClicked)

	cs := ctx.canvases.Get(canvas.ID, canvasState{})
	w.Layout.Position, w.Layout.Placed = pos.Sub(cs.Pan), true
	titleH := ctx.theme.Float(WidgetNode, StateNormal, PropTitleBarHeight)
	w.Layout.Padding.Top += titleH
	pad := ctx.theme.Float(WidgetNode, StateNormal, PropPadding)
	w.Layout.Intrinsic = Vec2{X: ctx.measureText(title, WidgetNode).X + pad*2, Y: titleH}

	ctx.openScope(w)
	return changed
}

// EndNode closes the node opened by BeginNode.
func (ctx *Context) EndNode() {
	ctx.closeScope(WidgetNode)
}

// Link connects the output port of node from to the input port of node to.
// Links are drawn behind the nodes.
func (ctx *Context) Link(from, to ID) {
	canvas := ctx.currentCanvas("Link")
	cs := ctx.canvases.Get(canvas.ID, canvasState{})
	cs.Links = append(cs.Links, nodeLink{From: from, To: to})
}

// LinkNodes links two nodes of the current canvas by title.
func (ctx *Context) LinkNodes(from, to string) {
	canvas := ctx.currentCanvas("LinkNodes")
	ctx.Link(hashID(canvas.ID, from, 0), hashID(canvas.ID, to, 0))
}

// CanvasPan returns the pan offset of a canvas.
func (ctx *Context) CanvasPan(id ID) Vec2 {
	if cs := ctx.canvases.GetIfExists(id); cs != nil {
		return cs.Pan
	}
	return Vec2{}
}

func canvasInput(ctx *Context, w *Widget, ev *uiEvent) bool {
	cs := ctx.canvases.Get(w.ID, canvasState{})
	switch ev.kind {
	case evPress:
		cs.panStart = cs.Pan
		return true
	case evDrag:
		cs.Pan = cs.panStart.Sub(ev.delta)
		return true
	case evWheel:
		cs.Pan.X -= ev.delta.X * ctx.cfg.WheelStep
		cs.Pan.Y -= ev.delta.Y * ctx.cfg.WheelStep
		return true
	case evRelease, evClick:
		return true
	}
	return false
}

func renderCanvas(ctx *Context, w *Widget, r *Recorder) {
	r.Rect(r.Bounds(), ctx.theme.Color(WidgetNodeCanvas, StateNormal, PropBackground))
	cs := ctx.canvases.GetIfExists(w.ID)
	if cs == nil || len(cs.Links) == 0 {
		return
	}
	r.PushClip(r.Bounds())
	origin := w.Layout.Global.Pos()
	for _, link := range cs.Links {
		from, okFrom := ctx.arena.get(link.From)
		to, okTo := ctx.arena.get(link.To)
		if !okFrom || !okTo || !from.declaredIn(ctx.frame) || !to.declaredIn(ctx.frame) {
			continue
		}
		color := link.Color
		if color == 0 {
			color = ctx.theme.Color(WidgetNodeCanvas, StateNormal, PropLinkColor)
		}
		a := outputPort(ctx, from).Sub(origin)
		b := inputPort(ctx, to).Sub(origin)
		midX := (a.X + b.X) / 2
		r.Line(a, Vec2{X: midX, Y: a.Y}, color, 2)
		r.Line(Vec2{X: midX, Y: a.Y}, Vec2{X: midX, Y: b.Y}, color, 2)
		r.Line(Vec2{X: midX, Y: b.Y}, b, color, 2)
	}
	r.PopClip()
}

// outputPort is the global position of a node's output port.
func outputPort(ctx *Context, w *Widget) Vec2 {
	g := w.Layout.Global
	titleH := ctx.theme.Float(WidgetNode, StateNormal, PropTitleBarHeight)
	return Vec2{X: g.X + g.W, Y: g.Y + titleH/2}
}

// inputPort is the global position of a node's input port.
func inputPort(ctx *Context, w *Widget) Vec2 {
	g := w.Layout.Global
	titleH := ctx.theme.Float(WidgetNode, StateNormal, PropTitleBarHeight)
	return Vec2{X: g.X, Y: g.Y + titleH/2}
}

func nodeHitPart(ctx *Context, w *Widget, p Vec2) SubPart {
	titleH := ctx.theme.Float(WidgetNode, StateNormal, PropTitleBarHeight)
	if p.Y-w.Layout.Global.Y < titleH {
		return PartNodeHeader
	}
	return PartBody
}

func nodeInput(ctx *Context, w *Widget, ev *uiEvent) bool {
	ns := CustomProperties[nodeState](ctx, w.ID)
	switch ev.kind {
	case evPress:
		ns.dragStart = Vec2{X: float32(w.Props.Param[0]), Y: float32(w.Props.Param[1])}
		return true
	case evDrag:
		if ev.part != PartNodeHeader {
			return false
		}
		next := ns.dragStart.Add(ev.delta)
		w.Props.Param = [2]float64{float64(next.X), float64(next.Y)}
		ctx.raise(w, InputValueUpdated)
		return true
	case evRelease, evClick:
		return true
	}
	return false
}

func renderNode(ctx *Context, w *Widget, r *Recorder) {
	state := ctx.state(w)
	if ctx.feedback.Dragged == w.ID {
		state = StateFocused
	}
	bounds := r.Bounds()
	r.Rect(bounds, ctx.theme.Color(WidgetNode, state, PropBackground))
	titleH := ctx.theme.Float(WidgetNode, StateNormal, PropTitleBarHeight)
	r.Rect(Rect{W: bounds.W, H: titleH}, ctx.theme.Color(WidgetNode, state, PropTitleBarColor))

	pad := ctx.theme.Float(WidgetNode, StateNormal, PropPadding)
	style := ctx.fontStyle(WidgetNode)
	textH := ctx.deps.Measurer.MeasureText(w.Props.Text, style).Y
	r.Text(Vec2{X: pad, Y: (titleH - textH) / 2}, TextRun{Text: w.Props.Text, Style: style, Color: ctx.textColor(w)})
	r.Border(bounds, ctx.theme.Color(WidgetNode, state, PropBorderColor), ctx.theme.Float(WidgetNode, state, PropBorderWidth))

	port := ctx.theme.Float(WidgetNode, StateNormal, PropMarkSize)
	mark := ctx.theme.Color(WidgetNode, StateNormal, PropMarkColor)
	r.Rect(Rect{X: -port / 2, Y: titleH/2 - port/2, W: port, H: port}, mark)
	r.Rect(Rect{X: bounds.W - port/2, Y: titleH/2 - port/2, W: port, H: port}, mark)
}
