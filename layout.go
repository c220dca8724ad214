package gui

// Layout runs in two passes over the widget tree declared this frame.
//
// The measure pass walks bottom-up: leaves report their intrinsic size,
// containers sum their children along the major axis, take the maximum on
// the minor axis and add padding and spacing. Free containers (the root and
// node canvases) take the bounding box of positioned children.
//
// The resolve pass walks top-down from the screen rectangle: each container
// distributes its content box among its children, hands leftover space to
// expanding children, converts overflow into scroll range, and finally places
// the scrollbars it owns.

// clampSize applies min/max constraints. Negative sizes become zero and a
// minimum larger than the maximum wins.
func clampSize(size, minSize, maxSize Vec2) Vec2 {
	return Vec2{
		X: clampAxis(size.X, minSize.X, maxSize.X),
		Y: clampAxis(size.Y, minSize.Y, maxSize.Y),
	}
}

func clampAxis(v, lo, hi float32) float32 {
	if v < 0 {
		v = 0
	}
	if hi > 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// layoutPass sizes and places every declared widget.
func (ctx *Context) layoutPass() {
	root := ctx.arena.at(ctx.rootSlot)
	ctx.measure(root)
	ctx.resolve(root, Rect{W: ctx.screen.X, H: ctx.screen.Y}, Vec2{})
}

// flows reports whether a child takes part in its parent's flow.
func flows(c *Widget) bool {
	return c.Flags&(FlagIgnored|FlagParentControlled) == 0
}

// measure computes Layout.Measured for w and its subtree.
func (ctx *Context) measure(w *Widget) Vec2 {
	l := &w.Layout
	if w.Has(FlagIgnored) {
		l.Measured = Vec2{}
		return l.Measured
	}

	size := l.Intrinsic
	if w.Has(FlagAllowChildren) {
		l.ChildrenSize = ctx.measureChildren(w)
		size = l.ChildrenSize.Add(l.Padding.Size())
		size.X = maxf(size.X, l.Intrinsic.X)
		size.Y = maxf(size.Y, l.Intrinsic.Y)
	}
	if l.Fixed.X > 0 {
		size.X = l.Fixed.X
	}
	if l.Fixed.Y > 0 {
		size.Y = l.Fixed.Y
	}
	l.Measured = clampSize(size, l.Min, l.Max)
	return l.Measured
}

// measureChildren returns the aggregate size of the flowed children of w.
func (ctx *Context) measureChildren(w *Widget) Vec2 {
	l := &w.Layout
	var sum Vec2
	n := 0
	major := l.Direction.majorAxis()
	minor := 1 - major
	var cursor float32
	for _, slot := range w.children {
		c := ctx.arena.at(slot)
		m := ctx.measure(c)
		if !flows(c) {
			continue
		}
		if l.Direction == DirectionFree {
			p := freePosition(c, m, &cursor, l.Spacing)
			sum.X = maxf(sum.X, p.X+m.X)
			sum.Y = maxf(sum.Y, p.Y+m.Y)
			continue
		}
		sum.setAxis(major, sum.axis(major)+m.axis(major))
		sum.setAxis(minor, maxf(sum.axis(minor), m.axis(minor)))
		n++
	}
	if n > 1 {
		sum.setAxis(major, sum.axis(major)+l.Spacing*float32(n-1))
	}
	return sum
}

// scrollAxis reports whether overflow on axis turns into scroll range.
func (w *Widget) scrollAxis(axis int) bool {
	if axis == 0 {
		return w.Has(FlagScrollX)
	}
	return w.Has(FlagScrollY)
}

// expandAxis reports whether w asked for leftover space on axis.
func (l *LayoutProps) expandAxis(axis int) bool {
	if axis == 0 {
		return l.ExpandX
	}
	return l.ExpandY
}

// resolve places w at local (relative to its parent's top-left corner) and
// lays out its subtree. parentGlobal is the parent's global position.
func (ctx *Context) resolve(w *Widget, local Rect, parentGlobal Vec2) {
	l := &w.Layout
	size := clampSize(local.Size(), l.Min, l.Max)
	l.Local = Rect{X: local.X, Y: local.Y, W: size.X, H: size.Y}
	l.Global = l.Local.Translate(parentGlobal)
	if !w.Has(FlagAllowChildren) {
		l.Content = l.Global
		return
	}

	content := Rect{
		X: l.Padding.Left,
		Y: l.Padding.Top,
		W: maxf(0, size.X-l.Padding.Left-l.Padding.Right),
		H: maxf(0, size.Y-l.Padding.Top-l.Padding.Bottom),
	}

	// Overflow: reserve room for scrollbars. Showing one scrollbar can make
	// the other axis overflow, so Y is checked again after X.
	sb := ctx.theme.Float(WidgetScrollbar, StateNormal, PropScrollbarSize)
	var show [2]bool
	if w.Has(FlagScrollY) && l.ChildrenSize.Y > content.H {
		show[1] = true
		content.W = maxf(0, content.W-sb)
	}
	if w.Has(FlagScrollX) && l.ChildrenSize.X > content.W {
		show[0] = true
		content.H = maxf(0, content.H-sb)
		if !show[1] && w.Has(FlagScrollY) && l.ChildrenSize.Y > content.H {
			show[1] = true
			content.W = maxf(0, content.W-sb)
		}
	}
	l.ScrollRange = Vec2{}
	if show[0] {
		l.ScrollRange.X = l.ChildrenSize.X - content.W
	}
	if show[1] {
		l.ScrollRange.Y = l.ChildrenSize.Y - content.H
	}
	l.ChildrenOffset.X = clampf(l.ChildrenOffset.X, 0, l.ScrollRange.X)
	l.ChildrenOffset.Y = clampf(l.ChildrenOffset.Y, 0, l.ScrollRange.Y)
	l.Content = content.Translate(l.Global.Pos())

	if l.Direction == DirectionFree {
		ctx.resolveFree(w, content)
	} else {
		ctx.resolveFlow(w, content)
	}
	ctx.placeScrollbars(w, content, show)
}

// freePosition returns where a child of a DirectionFree parent goes. Placed
// children keep their Position; the others stack top to bottom in
// declaration order, advancing cursor.
func freePosition(c *Widget, size Vec2, cursor *float32, spacing float32) Vec2 {
	if c.Layout.Placed {
		return c.Layout.Position
	}
	p := Vec2{Y: *cursor}
	*cursor += size.Y + spacing
	return p
}

// resolveFree places children at their explicit positions and stacks the
// unplaced ones.
func (ctx *Context) resolveFree(w *Widget, content Rect) {
	l := &w.Layout
	origin := content.Pos().Sub(l.ChildrenOffset)
	var cursor float32
	for _, slot := range w.children {
		c := ctx.arena.at(slot)
		if !flows(c) {
			continue
		}
		local := freePosition(c, c.Layout.Measured, &cursor, l.Spacing)
		size := c.Layout.Measured
		if c.Layout.ExpandX {
			size.X = maxf(size.X, content.W-local.X)
		}
		if c.Layout.ExpandY {
			size.Y = maxf(size.Y, content.H-local.Y)
		}
		pos := origin.Add(local)
		ctx.resolve(c, Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}, l.Global.Pos())
	}
}

// resolveFlow stacks children along the major axis.
func (ctx *Context) resolveFlow(w *Widget, content Rect) {
	l := &w.Layout
	major := l.Direction.majorAxis()
	minor := 1 - major
	availMajor := content.Size().axis(major)
	availMinor := content.Size().axis(minor)

	n, expanders := 0, 0
	var total float32
	for _, slot := range w.children {
		c := ctx.arena.at(slot)
		if !flows(c) {
			continue
		}
		total += c.Layout.Measured.axis(major)
		if c.Layout.expandAxis(major) {
			expanders++
		}
		n++
	}
	if n > 1 {
		total += l.Spacing * float32(n-1)
	}
	var share float32
	if leftover := availMajor - total; leftover > 0 && expanders > 0 {
		share = leftover / float32(expanders)
	}

	cursor := content.Pos().axis(major) - l.ChildrenOffset.axis(major)
	crossStart := content.Pos().axis(minor) - l.ChildrenOffset.axis(minor)
	for _, slot := range w.children {
		c := ctx.arena.at(slot)
		if !flows(c) {
			continue
		}
		m := c.Layout.Measured
		sizeMajor := m.axis(major)
		if c.Layout.expandAxis(major) {
			sizeMajor += share
		}
		if !w.scrollAxis(major) {
			sizeMajor = minf(sizeMajor, availMajor)
		}

		sizeMinor := m.axis(minor)
		if c.Layout.expandAxis(minor) || l.Align == AlignStretch {
			sizeMinor = maxf(sizeMinor, availMinor)
		}
		if !w.scrollAxis(minor) {
			sizeMinor = minf(sizeMinor, availMinor)
		}
		var crossOffset float32
		switch l.Align {
		case AlignCenter:
			crossOffset = (availMinor - sizeMinor) / 2
		case AlignEnd:
			crossOffset = availMinor - sizeMinor
		}

		var pos, size Vec2
		pos.setAxis(major, cursor)
		pos.setAxis(minor, crossStart+maxf(0, crossOffset))
		size.setAxis(major, sizeMajor)
		size.setAxis(minor, sizeMinor)
		ctx.resolve(c, Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}, l.Global.Pos())

		cursor += c.Layout.Local.Size().axis(major) + l.Spacing
	}
}

// scrollState is the per-scrollbar state kept next to the arena.
type scrollState struct {
	Page       float64 // visible span, sizes the thumb
	Step       float64 // arrow and wheel increment
	DragValue  float64 // value when the thumb drag started
	TrackValue float64 // value when a track press started
}

// placeScrollbars injects the scrollbars of an overflowing container. They
// are parent-controlled: their rects come from the container, not the flow,
// and their value is bound to the container's children offset.
func (ctx *Context) placeScrollbars(w *Widget, content Rect, show [2]bool) {
	sb := ctx.theme.Float(WidgetScrollbar, StateNormal, PropScrollbarSize)
	l := &w.Layout
	for axis := 1; axis >= 0; axis-- {
		if !show[axis] {
			continue
		}
		label := "#vscroll"
		rect := Rect{X: content.X + content.W, Y: content.Y, W: sb, H: content.H}
		if axis == 0 {
			label = "#hscroll"
			rect = Rect{X: content.X, Y: content.Y + content.H, W: content.W, H: sb}
		}
		s, isNew := ctx.arena.addOrGet(hashID(w.ID, label, 0), WidgetScrollbar)
		if isNew {
			kindOf(WidgetScrollbar).create(ctx, s)
		}
		s.Flags |= FlagParentControlled
		s.IsNew = isNew
		s.Parent = w.ID
		s.parentSlot = w.slot
		s.depth = w.depth + 1
		s.lastFrame = ctx.frame
		s.children = s.children[:0]
		s.Layout.Direction = DirectionHorizontal
		if axis == 1 {
			s.Layout.Direction = DirectionVertical
		}
		s.Props.Param = [2]float64{0, float64(l.ScrollRange.axis(axis))}
		s.Props.Value = float64(l.ChildrenOffset.axis(axis))

		st := ctx.scrolls.Get(s.ID, scrollState{})
		st.Page = float64(content.Size().axis(axis))
		st.Step = float64(ctx.cfg.WheelStep)

		ctx.resolve(s, rect, l.Global.Pos())
		w.children = append(w.children, s.slot)
	}
}
