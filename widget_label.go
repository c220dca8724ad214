package gui

import "strings"

func init() {
	kinds[WidgetLabel] = widgetKind{
		create: func(ctx *Context, w *Widget) {
			w.Flags |= FlagPassThrough
		},
		render: renderLabel,
	}
}

// Label displays text. Newlines start new lines, and WithWrap wraps long
// lines to a width.
//
// Labels are anonymous: their ids come from their position among the
// parent's labels. Use WithID when a label needs custom properties.
func (ctx *Context) Label(text string, opts ...Option) {
	o := applyOptions(opts)
	w := ctx.declare("", WidgetLabel, o)
	if width := GetOpt(o, OptWrap); width > 0 {
		text = strings.Join(ctx.WrapText(text, WidgetLabel, width, WrapModeAuto), "\n")
	}
	w.Props.Text = text
	w.Props.TextColor = GetOpt(o, OptTextColor)
	w.Layout.Intrinsic = ctx.textBlockSize(text, WidgetLabel)
}

// Labelf displays formatted text through the frame string pool.
func (ctx *Context) Labelf(format string, args ...any) {
	ctx.Label(ctx.Sprintf(format, args...))
}

// textBlockSize measures text that may span several lines.
func (ctx *Context) textBlockSize(text string, typ WidgetType) Vec2 {
	if !strings.Contains(text, "\n") {
		return ctx.measureText(text, typ)
	}
	var size Vec2
	lh := ctx.lineHeight(typ)
	for line := range strings.SplitSeq(text, "\n") {
		size.X = maxf(size.X, ctx.measureText(line, typ).X)
		size.Y += lh
	}
	return size
}

// textColor returns the override stored by WithTextColor or the theme color.
func (ctx *Context) textColor(w *Widget) uint32 {
	if c := w.Props.TextColor; c != 0 {
		return c
	}
	return ctx.theme.Color(w.Type, ctx.state(w), PropTextColor)
}

func renderLabel(ctx *Context, w *Widget, r *Recorder) {
	style := ctx.fontStyle(WidgetLabel)
	color := ctx.textColor(w)
	lh := ctx.lineHeight(WidgetLabel)
	var y float32
	for line := range strings.SplitSeq(w.Props.Text, "\n") {
		r.Text(Vec2{Y: y}, TextRun{Text: line, Style: style, Color: color})
		y += lh
	}
}
