package gui

func init() {
	kinds[WidgetCheckbox] = widgetKind{
		updateInput: checkboxInput,
		render:      renderCheckbox,
	}
}

// Checkbox renders a toggle bound to value and returns true on the frame
// the user changed it.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	o := applyOptions(opts)
	w := ctx.declare(label, WidgetCheckbox, o)
	w.Props.Text = label
	w.Props.TextColor = GetOpt(o, OptTextColor)

	changed := false
	if w.takeInput(InputValueUpdated) {
		*value = w.Props.Checked
		changed = true
	} else {
		w.Props.Checked = *value
	}
	w.takeInput(InputClicked)

	box := ctx.theme.Float(WidgetCheckbox, StateNormal, PropMarkSize)
	text := ctx.measureText(label, WidgetCheckbox)
	w.Layout.Intrinsic = Vec2{X: box, Y: maxf(box, text.Y)}
	if label != "" {
		w.Layout.Intrinsic.X += SpaceSM + text.X
	}
	return changed
}

func checkboxInput(ctx *Context, w *Widget, ev *uiEvent) bool {
	switch ev.kind {
	case evPress, evRelease:
		return true
	case evClick:
		w.Props.Checked = !w.Props.Checked
		ctx.raise(w, InputValueUpdated)
		return true
	}
	return false
}

func renderCheckbox(ctx *Context, w *Widget, r *Recorder) {
	state := ctx.state(w)
	box := ctx.theme.Float(WidgetCheckbox, StateNormal, PropMarkSize)
	boxRect := Rect{Y: (r.Size().Y - box) / 2, W: box, H: box}
	r.Rect(boxRect, ctx.theme.Color(WidgetCheckbox, state, PropBackground))
	r.Border(boxRect, ctx.theme.Color(WidgetCheckbox, state, PropBorderColor), 1)
	if w.Props.Checked {
		inset := box / 4
		mark := Rect{X: boxRect.X + inset, Y: boxRect.Y + inset, W: box - inset*2, H: box - inset*2}
		r.Rect(mark, ctx.theme.Color(WidgetCheckbox, state, PropMarkColor))
	}
	if w.Props.Text != "" {
		style := ctx.fontStyle(WidgetCheckbox)
		h := ctx.deps.Measurer.MeasureText(w.Props.Text, style).Y
		r.Text(Vec2{X: box + SpaceSM, Y: (r.Size().Y - h) / 2}, TextRun{Text: w.Props.Text, Style: style, Color: ctx.textColor(w)})
	}
}
