package gui

// Option configures a widget declaration.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = gui.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	ctx.Button("Run", gui.WithOpt(OptCustomThing, value))
//
//	// Read in a wrapper outside the package
//	value := gui.ApplyAndGet(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages that wrap widget declarations.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// SizeValue holds a per-axis size. Zero leaves an axis unset.
type SizeValue struct {
	W, H float32
}

// ExpandValue selects the axes a widget grows along.
type ExpandValue struct {
	X, Y bool
}

// ScrollValue selects the axes on which overflow becomes scroll range.
type ScrollValue struct {
	X, Y bool
}

// OpenValue wraps a boolean pointer for a window's open state.
// When Ptr is non-nil the window shows a close button and writes back to it.
type OpenValue struct {
	Ptr *bool
}

// --- Core Options ---
var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptHidden   = NewOptKey("hidden", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)
	OptMinSize  = NewOptKey("minSize", SizeValue{})
	OptMaxSize  = NewOptKey("maxSize", SizeValue{})
	OptExpand   = NewOptKey("expand", ExpandValue{})
	OptPosition = NewOptKey("position", Vec2{})
	OptSize     = NewOptKey("size", SizeValue{})
)

// --- Container Options ---
var (
	OptDirection = NewOptKey("direction", DirectionVertical)
	OptPadding   = NewOptKey("padding", Insets{})
	OptSpacing   = NewOptKey[float32]("spacing", 0)
	OptAlign     = NewOptKey("align", AlignStart)
	OptScroll    = NewOptKey("scroll", ScrollValue{})
	OptClip      = NewOptKey("clip", false)
)

// --- Window Options ---
var (
	OptOpen      = NewOptKey("open", OpenValue{})
	OptResizable = NewOptKey("resizable", true)
	OptMovable   = NewOptKey("movable", true)
)

// --- Value Options ---
var (
	OptStep      = NewOptKey[float64]("step", 0)
	OptPage      = NewOptKey[float64]("page", 0)
	OptTextColor = NewOptKey[uint32]("textColor", 0)
	OptLines     = NewOptKey("lines", 0)
	OptWrap      = NewOptKey[float32]("wrap", 0)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithID sets an explicit label for id derivation, replacing the visible text.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// Hidden keeps the widget and its state alive but takes it out of layout,
// input and rendering for this frame.
func Hidden(hidden bool) Option { return WithOpt(OptHidden, hidden) }

// WithWidth sets a fixed width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a fixed height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithMinSize sets the minimum size constraint.
func WithMinSize(w, h float32) Option { return WithOpt(OptMinSize, SizeValue{W: w, H: h}) }

// WithMaxSize sets the maximum size constraint. Zero leaves an axis unbounded.
func WithMaxSize(w, h float32) Option { return WithOpt(OptMaxSize, SizeValue{W: w, H: h}) }

// Expand makes the widget consume leftover space on both axes.
func Expand() Option { return WithOpt(OptExpand, ExpandValue{X: true, Y: true}) }

// ExpandX makes the widget consume leftover horizontal space.
func ExpandX() Option { return WithOpt(OptExpand, ExpandValue{X: true}) }

// ExpandY makes the widget consume leftover vertical space.
func ExpandY() Option { return WithOpt(OptExpand, ExpandValue{Y: true}) }

// WithPosition places the widget inside a free-layout parent (window
// position on screen, node position on a canvas). Children of the screen or
// a canvas declared without it stack top to bottom.
func WithPosition(x, y float32) Option { return WithOpt(OptPosition, Vec2{X: x, Y: y}) }

// Horizontal lays children out left to right.
func Horizontal() Option { return WithOpt(OptDirection, DirectionHorizontal) }

// WithDirection sets the children layout direction.
func WithDirection(d Direction) Option { return WithOpt(OptDirection, d) }

// WithPadding sets the padding around children, overriding the theme.
func WithPadding(in Insets) Option { return WithOpt(OptPadding, in) }

// WithSpacing sets the gap between children, overriding the theme.
func WithSpacing(px float32) Option { return WithOpt(OptSpacing, px) }

// WithAlign sets cross-axis alignment of children.
func WithAlign(a Alignment) Option { return WithOpt(OptAlign, a) }

// Scrollable turns overflow on the given axes into scroll range with
// automatic scrollbars.
func Scrollable(x, y bool) Option { return WithOpt(OptScroll, ScrollValue{X: x, Y: y}) }

// Clip clips children to the content box.
func Clip() Option { return WithOpt(OptClip, true) }

// Open binds the window's open state to an external boolean and shows a
// close button. Clicking it writes false back.
//
// Usage:
//
//	if ctx.BeginWindow("Inspector", gui.Open(&showInspector)) {
//	    // content
//	}
//	ctx.EndWindow()
func Open(ptr *bool) Option { return WithOpt(OptOpen, OpenValue{Ptr: ptr}) }

// Resizable enables or disables resizing a window by its edges.
func Resizable(on bool) Option { return WithOpt(OptResizable, on) }

// Movable enables or disables dragging a window by its title bar.
func Movable(on bool) Option { return WithOpt(OptMovable, on) }

// WithSize fixes both dimensions. For windows it is the initial size, which
// the user may change by resizing.
func WithSize(w, h float32) Option { return WithOpt(OptSize, SizeValue{W: w, H: h}) }

// WithStep sets the increment of scrollbar arrow buttons and wheel notches.
func WithStep(step float64) Option { return WithOpt(OptStep, step) }

// WithPage sets the visible span of a scrollbar, which sizes its thumb.
func WithPage(page float64) Option { return WithOpt(OptPage, page) }

// WithTextColor overrides the theme text color.
func WithTextColor(c uint32) Option { return WithOpt(OptTextColor, c) }

// WithLines sets the visible line count of a multi-line text field.
func WithLines(n int) Option { return WithOpt(OptLines, n) }

// WithWrap wraps label text at word boundaries to fit width. CJK text wraps
// at characters.
func WithWrap(width float32) Option { return WithOpt(OptWrap, width) }
