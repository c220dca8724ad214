package gui

// CustomProperties returns the extension block of type T attached to a
// declared widget, creating a zero value on first use. The block is dropped
// when the arena reclaims the widget. A widget holds at most one block; asking
// for a different type replaces it.
func CustomProperties[T any](ctx *Context, id ID) *T {
	if _, ok := ctx.arena.get(id); !ok {
		misuse(ErrWidgetNotFound, "custom properties of %s", id)
	}
	slot := ctx.custom.Get(id, nil)
	if p, ok := (*slot).(*T); ok {
		return p
	}
	p := new(T)
	*slot = p
	return p
}

// Common state types for widgets

// windowState tracks geometry and stacking of a window across frames.
type windowState struct {
	Pos  Vec2
	Size Vec2 // user size after a resize; zero means auto-size
	Z    int

	Resizable bool
	Movable   bool
	Closable  bool

	loaded bool
	dirty  bool // geometry changed since the last save

	// captured when a drag or resize starts
	startPos  Vec2
	startSize Vec2
}

// ResizableEdge represents which edge(s) of a window are being resized.
type ResizableEdge uint8

const (
	ResizeEdgeNone   ResizableEdge = 0
	ResizeEdgeLeft   ResizableEdge = 1 << 0
	ResizeEdgeRight  ResizableEdge = 1 << 1
	ResizeEdgeTop    ResizableEdge = 1 << 2
	ResizeEdgeBottom ResizableEdge = 1 << 3
)

// resizeEdges maps a window sub-part to the edges it moves.
func resizeEdges(part SubPart) ResizableEdge {
	switch part {
	case PartResizeN:
		return ResizeEdgeTop
	case PartResizeS:
		return ResizeEdgeBottom
	case PartResizeE:
		return ResizeEdgeRight
	case PartResizeW:
		return ResizeEdgeLeft
	case PartResizeNE:
		return ResizeEdgeTop | ResizeEdgeRight
	case PartResizeNW:
		return ResizeEdgeTop | ResizeEdgeLeft
	case PartResizeSE:
		return ResizeEdgeBottom | ResizeEdgeRight
	case PartResizeSW:
		return ResizeEdgeBottom | ResizeEdgeLeft
	}
	return ResizeEdgeNone
}

// textState tracks per-widget presentation state of text inputs.
type textState struct {
	ScrollX    float32 // horizontal scroll
	ScrollY    float32 // vertical scroll of a text field
	BlinkStart uint64  // ms timestamp the caret blink phase starts at
	Original   string  // text when the edit started, restored on cancel
}

// nodeLink connects two nodes of a canvas.
type nodeLink struct {
	From, To ID
	Color    uint32
}

// canvasState holds the pan offset of a node canvas and the links declared
// on it this frame.
type canvasState struct {
	Pan      Vec2
	Links    []nodeLink
	panStart Vec2
}

// nodeState remembers a node's canvas position when a header drag starts.
type nodeState struct {
	dragStart Vec2
}
