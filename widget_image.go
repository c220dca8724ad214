package gui

func init() {
	kinds[WidgetImage] = widgetKind{
		create: func(ctx *Context, w *Widget) {
			w.Flags |= FlagPassThrough
		},
		render: func(ctx *Context, w *Widget, r *Recorder) {
			r.Image(r.Bounds(), w.Props.Image, ColorWhite)
		},
	}
}

// Image displays a host-owned image at its natural size, unless a fixed
// size or expand option says otherwise.
func (ctx *Context) Image(img ImageRef, opts ...Option) {
	o := applyOptions(opts)
	w := ctx.declare("", WidgetImage, o)
	w.Props.Image = img
	w.Layout.Intrinsic = img.Size
}
