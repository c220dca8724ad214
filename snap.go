package gui

// snapWindow moves a dragged window so that edges closer than
// Config.SnapDistance line up with the screen edges or with the edges of
// other visible windows. Each axis snaps to its nearest candidate.
func (ctx *Context) snapWindow(self *Widget, pos, size Vec2) Vec2 {
	dist := ctx.cfg.SnapDistance
	if dist <= 0 {
		return pos
	}

	bestX, bestY := dist, dist
	snapX, snapY := pos.X, pos.Y
	try := func(best *float32, snapped *float32, current, target float32) {
		if d := absf32(current - target); d < *best {
			*best = d
			*snapped = target
		}
	}

	// Screen edges.
	try(&bestX, &snapX, pos.X, 0)
	try(&bestX, &snapX, pos.X, ctx.screen.X-size.X)
	try(&bestY, &snapY, pos.Y, 0)
	try(&bestY, &snapY, pos.Y, ctx.screen.Y-size.Y)

	root := ctx.arena.at(ctx.rootSlot)
	for _, slot := range root.children {
		o := ctx.arena.at(slot)
		if o == self || o.Type != WidgetWindow || o.Has(FlagIgnored) || !o.declaredIn(ctx.frame) {
			continue
		}
		g := o.Layout.Global
		overlapY := pos.Y < g.Y+g.H && pos.Y+size.Y > g.Y
		overlapX := pos.X < g.X+g.W && pos.X+size.X > g.X
		if overlapY {
			try(&bestX, &snapX, pos.X, g.X+g.W)    // our left to their right
			try(&bestX, &snapX, pos.X, g.X-size.X) // our right to their left
		}
		if overlapX {
			try(&bestY, &snapY, pos.Y, g.Y+g.H)
			try(&bestY, &snapY, pos.Y, g.Y-size.Y)
		}
		try(&bestX, &snapX, pos.X, g.X) // aligned lefts
		try(&bestY, &snapY, pos.Y, g.Y) // aligned tops
	}
	return Vec2{X: snapX, Y: snapY}
}
