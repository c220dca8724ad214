package gui

func init() {
	kinds[WidgetScrollbar] = widgetKind{
		create: func(ctx *Context, w *Widget) {
			w.Flags |= FlagDraggable | FlagOwnsScroll
		},
		hitPart:     scrollbarHitPart,
		updateInput: scrollbarInput,
		render:      renderScrollbar,
	}
}

// defaultScrollbarLength is the intrinsic length of a standalone scrollbar.
const defaultScrollbarLength = 100

// Scrollbar renders a scrollbar bound to value in [minVal, maxVal] and
// returns true on the frame the user changed it. It is vertical unless
// WithDirection(DirectionHorizontal) is given; WithPage sizes the thumb.
func (ctx *Context) Scrollbar(label string, value *float64, minVal, maxVal float64, opts ...Option) bool {
	o := applyOptions(opts)
	w := ctx.declare(label, WidgetScrollbar, o)
	w.Props.Text = label
	w.Layout.Direction = DirectionVertical
	if GetOpt(o, OptDirection) == DirectionHorizontal {
		w.Layout.Direction = DirectionHorizontal
	}
	w.Props.Param = [2]float64{minVal, maxVal}

	st := ctx.scrolls.Get(w.ID, scrollState{})
	st.Page = GetOpt(o, OptPage)
	st.Step = GetOpt(o, OptStep)

	changed := false
	if w.takeInput(InputValueUpdated) {
		*value = w.Props.Value
		changed = true
	} else {
		w.Props.Value = clampValue(*value, minVal, maxVal)
	}
	w.takeInput(InputClicked | InputDoubleClicked)

	thick := ctx.theme.Float(WidgetScrollbar, StateNormal, PropScrollbarSize)
	w.Layout.Intrinsic = Vec2{X: thick, Y: defaultScrollbarLength}
	if w.Layout.Direction == DirectionHorizontal {
		w.Layout.Intrinsic = Vec2{X: defaultScrollbarLength, Y: thick}
	}
	return changed
}

func clampValue(v, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return max(lo, min(v, hi))
}

// scrollGeom is the local layout of a scrollbar's sub-parts.
type scrollGeom struct {
	axis                         int
	minBtn, maxBtn, track, thumb Rect
	// travel is the distance the thumb can move: track length minus thumb
	// length. Moving the thumb by travel sweeps the whole value range.
	travel float32
}

func scrollbarGeometry(ctx *Context, w *Widget) scrollGeom {
	size := w.Layout.Local.Size()
	g := scrollGeom{axis: w.Layout.Direction.majorAxis()}
	length := size.axis(g.axis)
	thick := size.axis(1 - g.axis)

	btn := thick
	if length < btn*3 {
		btn = 0
	}
	trackLen := maxf(0, length-2*btn)

	minVal, maxVal := w.Props.Param[0], w.Props.Param[1]
	span := maxVal - minVal
	var page float64
	if st := ctx.scrolls.GetIfExists(w.ID); st != nil {
		page = st.Page
	}
	thumbLen := ctx.theme.Float(WidgetScrollbar, StateNormal, PropThumbMinSize)
	if page > 0 && span >= 0 {
		thumbLen = maxf(thumbLen, trackLen*float32(page/(span+page)))
	}
	thumbLen = minf(thumbLen, trackLen)
	g.travel = trackLen - thumbLen

	var t float32
	if span > 0 {
		t = float32(clampValue((w.Props.Value-minVal)/span, 0, 1))
	}
	rect := func(start, extent float32) Rect {
		if g.axis == 0 {
			return Rect{X: start, W: extent, H: thick}
		}
		return Rect{Y: start, W: thick, H: extent}
	}
	g.minBtn = rect(0, btn)
	g.maxBtn = rect(length-btn, btn)
	g.track = rect(btn, trackLen)
	g.thumb = rect(btn+t*g.travel, thumbLen)
	return g
}

func scrollbarHitPart(ctx *Context, w *Widget, p Vec2) SubPart {
	g := scrollbarGeometry(ctx, w)
	local := p.Sub(w.Layout.Global.Pos())
	switch {
	case g.thumb.Contains(local):
		return PartScrollThumb
	case g.minBtn.Contains(local):
		return PartScrollMin
	case g.maxBtn.Contains(local):
		return PartScrollMax
	}
	return PartScrollTrack
}

// setScrollValue stores a new value and mirrors it into the owning
// container when the scrollbar was injected by the layout.
func setScrollValue(ctx *Context, w *Widget, v float64) {
	v = clampValue(v, w.Props.Param[0], w.Props.Param[1])
	if v == w.Props.Value {
		return
	}
	w.Props.Value = v
	ctx.raise(w, InputValueUpdated)
	if w.Has(FlagParentControlled) {
		if parent := ctx.parentOf(w); parent != nil {
			parent.Layout.ChildrenOffset.setAxis(w.Layout.Direction.majorAxis(), float32(v))
		}
	}
}

func scrollbarInput(ctx *Context, w *Widget, ev *uiEvent) bool {
	st := ctx.scrolls.Get(w.ID, scrollState{})
	minVal, maxVal := w.Props.Param[0], w.Props.Param[1]
	step := st.Step
	if step <= 0 {
		step = (maxVal - minVal) / 10
	}

	switch ev.kind {
	case evPress:
		switch ev.part {
		case PartScrollMin:
			setScrollValue(ctx, w, w.Props.Value-step)
		case PartScrollMax:
			setScrollValue(ctx, w, w.Props.Value+step)
		case PartScrollTrack:
			g := scrollbarGeometry(ctx, w)
			page := st.Page
			if page <= 0 {
				page = step
			}
			local := ev.pos.Sub(w.Layout.Global.Pos())
			if local.axis(g.axis) < g.thumb.Pos().axis(g.axis) {
				setScrollValue(ctx, w, w.Props.Value-page)
			} else {
				setScrollValue(ctx, w, w.Props.Value+page)
			}
		case PartScrollThumb:
			st.DragValue = w.Props.Value
		}
		return true
	case evDrag:
		if ev.part != PartScrollThumb {
			return false
		}
		g := scrollbarGeometry(ctx, w)
		if g.travel > 0 {
			moved := float64(ev.delta.axis(g.axis) / g.travel)
			setScrollValue(ctx, w, st.DragValue+moved*(maxVal-minVal))
		}
		return true
	case evWheel:
		d := ev.delta.Y
		if d == 0 {
			d = ev.delta.X
		}
		if d == 0 {
			return false
		}
		setScrollValue(ctx, w, w.Props.Value-float64(d)*step)
		return true
	case evRelease, evClick:
		return true
	}
	return false
}

func renderScrollbar(ctx *Context, w *Widget, r *Recorder) {
	state := ctx.state(w)
	g := scrollbarGeometry(ctx, w)
	r.Rect(r.Bounds(), ctx.theme.Color(WidgetScrollbar, state, PropBackground))

	mark := ctx.theme.Color(WidgetScrollbar, StateNormal, PropMarkColor)
	if g.minBtn.W > 0 && g.minBtn.H > 0 {
		r.Rect(g.minBtn, mark)
		r.Rect(g.maxBtn, mark)
		arrow := ctx.theme.Color(WidgetScrollbar, state, PropThumbColor)
		renderArrow(r, g.minBtn, g.axis, false, arrow)
		renderArrow(r, g.maxBtn, g.axis, true, arrow)
	}

	thumbState := StateNormal
	if ctx.feedback.PressedPart == PartScrollThumb && ctx.feedback.Pressed == w.ID {
		thumbState = StatePressed
	} else if ctx.feedback.HoveredPart == PartScrollThumb && ctx.feedback.Hovered == w.ID {
		thumbState = StateHovered
	}
	r.Rect(g.thumb, ctx.theme.Color(WidgetScrollbar, thumbState, PropThumbColor))
}

// renderArrow draws a small chevron pointing towards the end of the axis
// when forward is set.
func renderArrow(r *Recorder, box Rect, axis int, forward bool, color uint32) {
	c := Vec2{X: box.X + box.W/2, Y: box.Y + box.H/2}
	s := minf(box.W, box.H) / 4
	dir := float32(-1)
	if forward {
		dir = 1
	}
	var tip, a, b Vec2
	if axis == 0 {
		tip = Vec2{X: c.X + dir*s, Y: c.Y}
		a = Vec2{X: c.X - dir*s, Y: c.Y - s}
		b = Vec2{X: c.X - dir*s, Y: c.Y + s}
	} else {
		tip = Vec2{X: c.X, Y: c.Y + dir*s}
		a = Vec2{X: c.X - s, Y: c.Y - dir*s}
		b = Vec2{X: c.X + s, Y: c.Y - dir*s}
	}
	r.Line(a, tip, color, 1.5)
	r.Line(b, tip, color, 1.5)
}
