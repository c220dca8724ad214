package gui

func init() {
	kinds[WidgetButton] = widgetKind{
		updateInput: buttonInput,
		render:      renderButton,
	}
	kinds[WidgetImageButton] = widgetKind{
		updateInput: buttonInput,
		render:      renderImageButton,
	}
}

// Button renders a clickable button and returns true on the frame after it
// was clicked.
//
// Usage:
//
//	if ctx.Button("Save") {
//	    save()
//	}
func (ctx *Context) Button(label string, opts ...Option) bool {
	o := applyOptions(opts)
	w := ctx.declare(label, WidgetButton, o)
	w.Props.Text = label
	w.Props.TextColor = GetOpt(o, OptTextColor)
	pad := ctx.theme.Float(WidgetButton, StateNormal, PropPadding)
	w.Layout.Intrinsic = ctx.measureText(label, WidgetButton).Add(Vec2{X: pad * 2, Y: pad * 2})
	return w.takeInput(InputClicked) && !w.Has(FlagDisabled)
}

// ImageButton is a button showing a host image. The label only feeds the id.
func (ctx *Context) ImageButton(label string, img ImageRef, opts ...Option) bool {
	o := applyOptions(opts)
	w := ctx.declare(label, WidgetImageButton, o)
	w.Props.Text = label
	w.Props.Image = img
	pad := ctx.theme.Float(WidgetImageButton, StateNormal, PropPadding)
	w.Layout.Intrinsic = img.Size.Add(Vec2{X: pad * 2, Y: pad * 2})
	return w.takeInput(InputClicked) && !w.Has(FlagDisabled)
}

// buttonInput consumes presses and clicks. The clicked flag itself is
// raised by the feedback pass.
func buttonInput(ctx *Context, w *Widget, ev *uiEvent) bool {
	switch ev.kind {
	case evPress, evRelease, evClick:
		return true
	}
	return false
}

// renderFrame draws the themed background and border of w.
func renderFrame(ctx *Context, w *Widget, r *Recorder) {
	state := ctx.state(w)
	r.Rect(r.Bounds(), ctx.theme.Color(w.Type, state, PropBackground))
	r.Border(r.Bounds(), ctx.theme.Color(w.Type, state, PropBorderColor), ctx.theme.Float(w.Type, state, PropBorderWidth))
}

func renderButton(ctx *Context, w *Widget, r *Recorder) {
	renderFrame(ctx, w, r)
	style := ctx.fontStyle(WidgetButton)
	size := ctx.deps.Measurer.MeasureText(w.Props.Text, style)
	pos := Vec2{X: (r.Size().X - size.X) / 2, Y: (r.Size().Y - size.Y) / 2}
	r.Text(pos, TextRun{Text: w.Props.Text, Style: style, Color: ctx.textColor(w)})
}

func renderImageButton(ctx *Context, w *Widget, r *Recorder) {
	renderFrame(ctx, w, r)
	pad := ctx.theme.Float(WidgetImageButton, StateNormal, PropPadding)
	tint := ColorWhite
	if w.Has(FlagDisabled) {
		tint = ColorGray
	}
	r.Image(Rect{X: pad, Y: pad, W: maxf(0, r.Size().X-pad*2), H: maxf(0, r.Size().Y-pad*2)}, w.Props.Image, tint)
}
