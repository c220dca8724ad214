package gui

// WidgetType is the closed set of widget kinds the engine knows about.
type WidgetType uint8

const (
	WidgetRoot WidgetType = iota
	WidgetWindow
	WidgetContainer
	WidgetButton
	WidgetCheckbox
	WidgetLabel
	WidgetImage
	WidgetImageButton
	WidgetScrollbar
	WidgetTextbox
	WidgetTextField
	WidgetNodeCanvas
	WidgetNode
	WidgetTypeCount
)

var widgetTypeNames = [WidgetTypeCount]string{
	WidgetRoot:        "root",
	WidgetWindow:      "window",
	WidgetContainer:   "container",
	WidgetButton:      "button",
	WidgetCheckbox:    "checkbox",
	WidgetLabel:       "label",
	WidgetImage:       "image",
	WidgetImageButton: "image_button",
	WidgetScrollbar:   "scrollbar",
	WidgetTextbox:     "textbox",
	WidgetTextField:   "textfield",
	WidgetNodeCanvas:  "node_canvas",
	WidgetNode:        "node",
}

func (t WidgetType) String() string {
	if t < WidgetTypeCount {
		return widgetTypeNames[t]
	}
	return "unknown"
}

// widgetTypeByName maps theme file names back to widget types.
func widgetTypeByName(name string) (WidgetType, bool) {
	for t, n := range widgetTypeNames {
		if n == name {
			return WidgetType(t), true
		}
	}
	return 0, false
}

// WidgetFlags are structural flags of a widget.
type WidgetFlags uint16

const (
	FlagAllowChildren    WidgetFlags = 1 << iota // widget opens a child scope
	FlagIgnored                                  // no layout space, no input, not rendered
	FlagParentControlled                         // rect computed by the parent after its layout
	FlagClip                                     // children are clipped to the content box
	FlagScrollX                                  // horizontal overflow becomes scroll range
	FlagScrollY                                  // vertical overflow becomes scroll range
	FlagPassThrough                              // never becomes the hovered widget
	FlagDisabled                                 // rendered disabled, receives no input
	FlagOwnsScroll                               // wheel events stop here instead of the scroll ancestor
	FlagDraggable                                // press can be promoted to drag
)

// Direction is the children layout direction of a container.
type Direction uint8

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
	DirectionFree // children keep explicit positions (windows, node canvas)
)

// majorAxis returns 0 for horizontal flow and 1 otherwise.
func (d Direction) majorAxis() int {
	if d == DirectionHorizontal {
		return 0
	}
	return 1
}

// Alignment values for the cross axis of a container.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// LayoutProps holds layout inputs and outputs of a widget.
type LayoutProps struct {
	// Inputs
	Min, Max       Vec2 // constraint box, default [0, Unbounded)
	Intrinsic      Vec2 // content size reported by leaves
	Fixed          Vec2 // explicit size per axis, 0 = unset
	Padding        Insets
	Direction      Direction
	Spacing        float32
	Align          Alignment
	ExpandX        bool
	ExpandY        bool
	Position       Vec2 // position inside a DirectionFree parent
	Placed         bool // Position was given; otherwise free parents stack the widget
	ChildrenOffset Vec2 // scroll offset applied to children

	// Outputs, valid after the layout pass of the frame
	Measured     Vec2 // size after the intrinsic pass
	Local        Rect // relative to the parent's top-left corner
	Global       Rect // screen coordinates
	Content      Rect // global content box (inside padding, minus scrollbars)
	ChildrenSize Vec2 // aggregate size of flowed children
	ScrollRange  Vec2 // max children offset per axis
}

// InputFlags are one-frame results raised by the input feedback pass.
type InputFlags uint8

const (
	InputClicked      InputFlags = 1 << iota // released over the pressed widget
	InputValueUpdated                        // value changed by the user
	InputDoubleClicked                       // second click within the double-click window
	InputSubmitted                           // text edit confirmed with Enter
	InputClosed                              // window close button clicked
)

// ImageRef references a host-owned image.
type ImageRef struct {
	Texture uint32 // host handle, opaque to the engine
	Size    Vec2   // natural size in pixels
	UV0     Vec2
	UV1     Vec2
}

// Properties holds the type-specific payload of a widget.
type Properties struct {
	Text      string
	Value     float64
	Checked   bool
	Param     [2]float64
	Image     ImageRef
	TextColor uint32 // WithTextColor override, 0 uses the theme
	Input     InputFlags
}

// Widget is one record of the widget arena.
type Widget struct {
	ID     ID
	Parent ID
	Type   WidgetType
	Flags  WidgetFlags
	Layout LayoutProps
	Props  Properties
	IsNew  bool

	slot       int32
	parentSlot int32
	generation uint32
	lastFrame  uint64
	depth      int
	children   []int32
}

// Has reports whether all given flags are set.
func (w *Widget) Has(f WidgetFlags) bool { return w.Flags&f == f }

// Declared reports whether the widget was declared in the given frame.
func (w *Widget) declaredIn(frame uint64) bool { return w.lastFrame == frame }

// takeInput returns and clears a one-frame input flag.
func (w *Widget) takeInput(f InputFlags) bool {
	set := w.Props.Input&f != 0
	w.Props.Input &^= f
	return set
}

// SubPart identifies a hit-testable region inside a composite widget.
type SubPart uint8

const (
	PartNone SubPart = iota
	PartBody
	PartTitleBar
	PartClose
	PartResizeN
	PartResizeS
	PartResizeE
	PartResizeW
	PartResizeNE
	PartResizeNW
	PartResizeSE
	PartResizeSW
	PartScrollMin
	PartScrollMax
	PartScrollTrack
	PartScrollThumb
	PartNodeHeader
)

// eventKind is what the feedback pass tells a widget kind.
type eventKind uint8

const (
	evPress eventKind = iota
	evRelease
	evClick
	evDrag
	evWheel
	evKey
	evChar
	evFocusLost
	evTick
)

// uiEvent is the input delivered to a widget kind handler.
type uiEvent struct {
	kind   eventKind
	part   SubPart
	pos    Vec2 // pointer position, global
	delta  Vec2 // pointer movement since press (drag) or wheel delta
	key    Key
	mods   Modifiers
	char   rune
	clicks int
}

// widgetKind is the per-type dispatch entry.
type widgetKind struct {
	// create initializes flags and layout defaults on first declaration.
	create func(ctx *Context, w *Widget)
	// hitPart resolves the sub-part under a global point. Nil means PartBody.
	hitPart func(ctx *Context, w *Widget, p Vec2) SubPart
	// updateInput handles one event and reports whether it consumed it.
	updateInput func(ctx *Context, w *Widget, ev *uiEvent) bool
	// render emits draw commands in widget-local coordinates.
	render func(ctx *Context, w *Widget, r *Recorder)
	// renderOverlay draws on top of the children.
	renderOverlay func(ctx *Context, w *Widget, r *Recorder)
}

// kinds is filled by the widget_*.go files.
var kinds [WidgetTypeCount]widgetKind

func kindOf(t WidgetType) *widgetKind {
	return &kinds[t]
}
