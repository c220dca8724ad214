package gui

func init() {
	kinds[WidgetContainer] = widgetKind{
		create: func(ctx *Context, w *Widget) {
			w.Flags |= FlagAllowChildren
		},
		render: renderFrame,
	}
}

// BeginContainer opens a layout container. Children are stacked vertically
// unless Horizontal or WithDirection says otherwise. Must be paired with
// EndContainer.
func (ctx *Context) BeginContainer(label string, opts ...Option) {
	o := applyOptions(opts)
	w := ctx.declare(label, WidgetContainer, o)
	w.Props.Text = label
	ctx.openScope(w)
}

// EndContainer closes the container opened by BeginContainer.
func (ctx *Context) EndContainer() {
	ctx.closeScope(WidgetContainer)
}

// Container declares a container and runs body inside it.
//
// Usage:
//
//	ctx.Container("toolbar", gui.Horizontal())(func() {
//	    ctx.Button("Open")
//	    ctx.Button("Save")
//	})
func (ctx *Context) Container(label string, opts ...Option) func(body func()) {
	return func(body func()) {
		ctx.BeginContainer(label, opts...)
		body()
		ctx.EndContainer()
	}
}

// Row is a horizontal container with theme spacing.
func (ctx *Context) Row(label string, opts ...Option) func(body func()) {
	return ctx.Container(label, append([]Option{Horizontal()}, opts...)...)
}
