package gui

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Recorder is handed to widget render functions. Coordinates passed to it
// are local to the widget being rendered; the recorder translates them to
// global coordinates and tags every command with the widget id.
type Recorder struct {
	ctx    *Context
	origin Vec2
	size   Vec2
	widget ID
}

// begin points the recorder at w.
func (r *Recorder) begin(w *Widget) {
	r.origin = w.Layout.Global.Pos()
	r.size = w.Layout.Global.Size()
	r.widget = w.ID
}

// Size returns the size of the widget being rendered.
func (r *Recorder) Size() Vec2 { return r.size }

// Bounds returns the widget rectangle in local coordinates.
func (r *Recorder) Bounds() Rect { return Rect{W: r.size.X, H: r.size.Y} }

func (r *Recorder) emit(cmd Command) {
	cmd.WidgetID = r.widget
	list := r.ctx.commands
	list.add(cmd)
	if limit := r.ctx.cfg.MaxCommands; limit > 0 && list.Len() >= limit {
		r.ctx.flush()
	}
}

// Rect fills a rectangle. Fully transparent colors are skipped.
func (r *Recorder) Rect(rect Rect, color uint32) {
	if color>>24 == 0 {
		return
	}
	r.emit(Command{Kind: CmdRect, Rect: rect.Translate(r.origin), Color: color})
}

// Border strokes the inside of a rectangle.
func (r *Recorder) Border(rect Rect, color uint32, thickness float32) {
	if color>>24 == 0 || thickness <= 0 {
		return
	}
	r.emit(Command{Kind: CmdBorder, Rect: rect.Translate(r.origin), Color: color, Thickness: thickness})
}

// Text draws one line of text with its top-left corner at pos.
func (r *Recorder) Text(pos Vec2, run TextRun) {
	if run.Text == "" {
		return
	}
	run.Text = sanitizeText(run.Text)
	size := r.ctx.deps.Measurer.MeasureText(run.Text, run.Style)
	r.emit(Command{
		Kind:  CmdText,
		Rect:  Rect{X: pos.X + r.origin.X, Y: pos.Y + r.origin.Y, W: size.X, H: size.Y},
		Color: run.Color,
		Text:  run,
	})
}

// Image draws a host image stretched over rect.
func (r *Recorder) Image(rect Rect, img ImageRef, tint uint32) {
	r.emit(Command{Kind: CmdImage, Rect: rect.Translate(r.origin), Image: img, Color: tint})
}

// Line draws a segment.
func (r *Recorder) Line(from, to Vec2, color uint32, thickness float32) {
	if color>>24 == 0 {
		return
	}
	r.emit(Command{Kind: CmdLine, From: from.Add(r.origin), To: to.Add(r.origin), Color: color, Thickness: thickness})
}

// PushClip restricts the following commands to rect.
func (r *Recorder) PushClip(rect Rect) {
	r.pushClipGlobal(rect.Translate(r.origin))
}

// PopClip closes the innermost PushClip.
func (r *Recorder) PopClip() {
	r.ctx.commands.PopClipRect()
	r.afterClip()
}

func (r *Recorder) pushClipGlobal(rect Rect) {
	r.ctx.commands.PushClipRect(rect)
	r.afterClip()
}

func (r *Recorder) afterClip() {
	if limit := r.ctx.cfg.MaxCommands; limit > 0 && r.ctx.commands.Len() >= limit {
		r.ctx.flush()
	}
}

// WakeAt asks for another frame at the given clock time in ms.
func (r *Recorder) WakeAt(ms uint64) {
	if ms == 0 {
		return
	}
	if r.ctx.nextWake == 0 || ms < r.ctx.nextWake {
		r.ctx.nextWake = ms
	}
}

// flush hands a full buffer to the renderer and reuses it. The renderer
// keeps its clip state until the end-frame command arrives.
func (ctx *Context) flush() {
	n := ctx.commands.Len()
	if err := ctx.deps.Renderer.Render(ctx.commands); err != nil && ctx.renderErr == nil {
		ctx.renderErr = fmt.Errorf("failed to flush render commands: %w", err)
	}
	ctx.stats.countFlush(n)
	ctx.flushes++
	ctx.commands.truncate()
	if guiVerbose() {
		ctx.log.Debug("flushed render commands", "count", n, "frame", ctx.frame)
	}
}

// renderPass emits the command stream of the frame in paint order.
func (ctx *Context) renderPass() {
	ctx.nextWake = 0
	ctx.commands.add(Command{Kind: CmdBeginFrame, Rect: Rect{W: ctx.screen.X, H: ctx.screen.Y}})
	ctx.renderWidget(ctx.arena.at(ctx.rootSlot))
	ctx.commands.add(Command{Kind: CmdEndFrame})
	ctx.commands.checkBalanced()
}

// renderWidget renders w, then its flowed children inside w's clip, then the
// scrollbars w owns.
func (ctx *Context) renderWidget(w *Widget) {
	if w.Has(FlagIgnored) {
		return
	}
	r := &ctx.recorder
	if render := kindOf(w.Type).render; render != nil {
		depth := ctx.commands.ClipDepth()
		r.begin(w)
		render(ctx, w, r)
		if ctx.commands.ClipDepth() != depth {
			misuse(ErrUnbalancedClip, "%s %s left %d clip rects open", w.Type, w.ID, ctx.commands.ClipDepth()-depth)
		}
	}
	if len(w.children) == 0 {
		return
	}

	clip := w.Has(FlagClip)
	if clip {
		r.begin(w)
		r.pushClipGlobal(w.Layout.Content)
	}
	for _, slot := range ctx.paintOrder(w) {
		if c := ctx.arena.at(slot); !c.Has(FlagParentControlled) {
			ctx.renderWidget(c)
		}
	}
	if clip {
		r.begin(w)
		r.PopClip()
	}
	for _, slot := range w.children {
		if c := ctx.arena.at(slot); c.Has(FlagParentControlled) {
			ctx.renderWidget(c)
		}
	}
	if overlay := kindOf(w.Type).renderOverlay; overlay != nil {
		r.begin(w)
		overlay(ctx, w, r)
	}
}

// paintOrder returns the children of w back to front. Top-level windows are
// stacked by their z order; everything else keeps declaration order.
func (ctx *Context) paintOrder(w *Widget) []int32 {
	if w.slot != ctx.rootSlot {
		return w.children
	}
	ctx.order = append(ctx.order[:0], w.children...)
	slices.SortStableFunc(ctx.order, func(a, b int32) int {
		return ctx.windowZ(ctx.arena.at(a)) - ctx.windowZ(ctx.arena.at(b))
	})
	return ctx.order
}

// windowZ returns the stacking order of a top-level widget. Non-window
// widgets stay below all windows.
func (ctx *Context) windowZ(w *Widget) int {
	if w.Type != WidgetWindow {
		return -1
	}
	if st := ctx.windows.GetIfExists(w.ID); st != nil {
		return st.Z
	}
	return 0
}

// sanitizeText replaces runes the renderer cannot draw with a space.
func sanitizeText(s string) string {
	clean := true
	for _, r := range s {
		if r == utf8.RuneError || (r != '\t' && !unicode.IsPrint(r)) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError || (r != '\t' && !unicode.IsPrint(r)) {
			return ' '
		}
		return r
	}, s)
}
