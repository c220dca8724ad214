package gui

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// WidgetState selects the state column of the theme table.
type WidgetState uint8

const (
	StateNormal WidgetState = iota
	StateHovered
	StatePressed
	StateFocused
	StateDisabled
	WidgetStateCount
)

var widgetStateNames = [WidgetStateCount]string{"normal", "hovered", "pressed", "focused", "disabled"}

func (s WidgetState) String() string {
	if s < WidgetStateCount {
		return widgetStateNames[s]
	}
	return "unknown"
}

// StyleProp is a themable property.
type StyleProp uint8

const (
	PropBackground StyleProp = iota
	PropBorderColor
	PropBorderWidth
	PropTextColor
	PropFontSize
	PropPadding
	PropSpacing
	PropTitleBarHeight
	PropTitleBarColor
	PropScrollbarSize
	PropThumbColor
	PropThumbMinSize
	PropResizeBorder
	PropMarkColor // checkbox check, node ports
	PropMarkSize
	PropCaretColor
	PropSelectionColor
	PropLinkColor
	PropCaretBlink // draw a blinking caret
	StylePropCount
)

var stylePropNames = [StylePropCount]string{
	PropBackground:     "background",
	PropBorderColor:    "border_color",
	PropBorderWidth:    "border_width",
	PropTextColor:      "text_color",
	PropFontSize:       "font_size",
	PropPadding:        "padding",
	PropSpacing:        "spacing",
	PropTitleBarHeight: "title_bar_height",
	PropTitleBarColor:  "title_bar_color",
	PropScrollbarSize:  "scrollbar_size",
	PropThumbColor:     "thumb_color",
	PropThumbMinSize:   "thumb_min_size",
	PropResizeBorder:   "resize_border",
	PropMarkColor:      "mark_color",
	PropMarkSize:       "mark_size",
	PropCaretColor:     "caret_color",
	PropSelectionColor: "selection_color",
	PropLinkColor:      "link_color",
	PropCaretBlink:     "caret_blink",
}

func (p StyleProp) String() string {
	if p < StylePropCount {
		return stylePropNames[p]
	}
	return "unknown"
}

// StyleKind tags the value held by a StyleValue.
type StyleKind uint8

const (
	StyleUnset StyleKind = iota
	StyleFloat
	StyleColor
	StyleBool
)

// StyleValue is one cell of the theme table.
type StyleValue struct {
	Kind  StyleKind
	Float float32
	Color uint32
	Bool  bool
}

// Float returns a float style value.
func Float(v float32) StyleValue { return StyleValue{Kind: StyleFloat, Float: v} }

// Color returns a color style value.
func Color(c uint32) StyleValue { return StyleValue{Kind: StyleColor, Color: c} }

// Bool returns a boolean style value.
func Bool(b bool) StyleValue { return StyleValue{Kind: StyleBool, Bool: b} }

// Theme maps (widget type, state, property) to a value. It is built once and
// only read during frames. Lookups fall back from the requested state to
// StateNormal, then to the root row which acts as the global default.
type Theme struct {
	values [WidgetTypeCount][WidgetStateCount][StylePropCount]StyleValue
}

// Set stores a value. Use it while building a theme, never during a frame.
func (t *Theme) Set(typ WidgetType, state WidgetState, prop StyleProp, v StyleValue) {
	t.values[typ][state][prop] = v
}

// SetDefault stores a value on the root row, the fallback for all widgets.
func (t *Theme) SetDefault(prop StyleProp, v StyleValue) {
	t.values[WidgetRoot][StateNormal][prop] = v
}

// Lookup returns the value for a cell after applying fallbacks.
func (t *Theme) Lookup(typ WidgetType, state WidgetState, prop StyleProp) StyleValue {
	if v := t.values[typ][state][prop]; v.Kind != StyleUnset {
		return v
	}
	if v := t.values[typ][StateNormal][prop]; v.Kind != StyleUnset {
		return v
	}
	if v := t.values[WidgetRoot][state][prop]; v.Kind != StyleUnset {
		return v
	}
	return t.values[WidgetRoot][StateNormal][prop]
}

// Float returns a float property.
func (t *Theme) Float(typ WidgetType, state WidgetState, prop StyleProp) float32 {
	return t.Lookup(typ, state, prop).Float
}

// Color returns a color property.
func (t *Theme) Color(typ WidgetType, state WidgetState, prop StyleProp) uint32 {
	return t.Lookup(typ, state, prop).Color
}

// Bool returns a boolean property.
func (t *Theme) Bool(typ WidgetType, state WidgetState, prop StyleProp) bool {
	return t.Lookup(typ, state, prop).Bool
}

// DefaultTheme returns the default dark theme.
func DefaultTheme() *Theme {
	t := &Theme{}

	// Global defaults
	t.SetDefault(PropTextColor, Color(ColorWhite))
	t.SetDefault(PropFontSize, Float(16))
	t.SetDefault(PropPadding, Float(SpaceSM))
	t.SetDefault(PropSpacing, Float(SpaceSM))
	t.SetDefault(PropBorderWidth, Float(0))
	t.SetDefault(PropBorderColor, Color(RGBA(80, 80, 80, 255)))
	t.SetDefault(PropScrollbarSize, Float(12))
	t.SetDefault(PropThumbMinSize, Float(16))
	t.SetDefault(PropCaretColor, Color(ColorWhite))
	t.SetDefault(PropSelectionColor, Color(RGBA(60, 100, 170, 200)))
	t.Set(WidgetRoot, StateDisabled, PropTextColor, Color(ColorGray))

	// Window
	t.Set(WidgetWindow, StateNormal, PropBackground, Color(RGBA(20, 20, 20, 230)))
	t.Set(WidgetWindow, StateNormal, PropBorderWidth, Float(1))
	t.Set(WidgetWindow, StateNormal, PropPadding, Float(SpaceMD))
	t.Set(WidgetWindow, StateNormal, PropTitleBarHeight, Float(24))
	t.Set(WidgetWindow, StateNormal, PropTitleBarColor, Color(RGBA(40, 40, 45, 255)))
	t.Set(WidgetWindow, StateFocused, PropTitleBarColor, Color(RGBA(50, 70, 110, 255)))
	t.Set(WidgetWindow, StateNormal, PropResizeBorder, Float(5))
	t.Set(WidgetWindow, StateNormal, PropMarkColor, Color(RGBA(200, 80, 80, 255)))

	// Container
	t.Set(WidgetContainer, StateNormal, PropPadding, Float(0))

	// Button and image button
	for _, typ := range []WidgetType{WidgetButton, WidgetImageButton} {
		t.Set(typ, StateNormal, PropBackground, Color(RGBA(50, 50, 50, 255)))
		t.Set(typ, StateHovered, PropBackground, Color(RGBA(70, 70, 70, 255)))
		t.Set(typ, StatePressed, PropBackground, Color(RGBA(90, 90, 90, 255)))
		t.Set(typ, StateDisabled, PropBackground, Color(RGBA(30, 30, 30, 255)))
		t.Set(typ, StateNormal, PropPadding, Float(SpaceSM+2))
	}

	// Checkbox
	t.Set(WidgetCheckbox, StateNormal, PropBackground, Color(RGBA(50, 50, 50, 255)))
	t.Set(WidgetCheckbox, StateHovered, PropBackground, Color(RGBA(70, 70, 70, 255)))
	t.Set(WidgetCheckbox, StateNormal, PropMarkColor, Color(RGBA(120, 200, 120, 255)))
	t.Set(WidgetCheckbox, StateNormal, PropMarkSize, Float(16))
	t.Set(WidgetCheckbox, StateNormal, PropPadding, Float(0))

	// Label and image
	t.Set(WidgetLabel, StateNormal, PropPadding, Float(0))
	t.Set(WidgetImage, StateNormal, PropPadding, Float(0))

	// Scrollbar
	t.Set(WidgetScrollbar, StateNormal, PropBackground, Color(RGBA(30, 30, 30, 255)))
	t.Set(WidgetScrollbar, StateNormal, PropThumbColor, Color(RGBA(90, 90, 90, 255)))
	t.Set(WidgetScrollbar, StateHovered, PropThumbColor, Color(RGBA(120, 120, 120, 255)))
	t.Set(WidgetScrollbar, StatePressed, PropThumbColor, Color(RGBA(150, 150, 150, 255)))
	t.Set(WidgetScrollbar, StateNormal, PropMarkColor, Color(RGBA(60, 60, 60, 255)))
	t.Set(WidgetScrollbar, StateNormal, PropPadding, Float(0))

	// Text inputs
	for _, typ := range []WidgetType{WidgetTextbox, WidgetTextField} {
		t.Set(typ, StateNormal, PropBackground, Color(RGBA(35, 35, 35, 255)))
		t.Set(typ, StateFocused, PropBackground, Color(RGBA(45, 45, 55, 255)))
		t.Set(typ, StateNormal, PropBorderWidth, Float(1))
		t.Set(typ, StateFocused, PropBorderColor, Color(RGBA(90, 130, 200, 255)))
		t.Set(typ, StateNormal, PropCaretBlink, Bool(true))
	}

	// Node graph
	t.Set(WidgetNodeCanvas, StateNormal, PropBackground, Color(RGBA(25, 25, 30, 255)))
	t.Set(WidgetNodeCanvas, StateNormal, PropLinkColor, Color(RGBA(200, 200, 120, 255)))
	t.Set(WidgetNode, StateNormal, PropBackground, Color(RGBA(45, 45, 50, 240)))
	t.Set(WidgetNode, StateNormal, PropBorderWidth, Float(1))
	t.Set(WidgetNode, StateFocused, PropBorderColor, Color(RGBA(90, 130, 200, 255)))
	t.Set(WidgetNode, StateNormal, PropTitleBarHeight, Float(20))
	t.Set(WidgetNode, StateNormal, PropTitleBarColor, Color(RGBA(60, 60, 80, 255)))
	t.Set(WidgetNode, StateNormal, PropMarkColor, Color(RGBA(200, 200, 120, 255)))
	t.Set(WidgetNode, StateNormal, PropMarkSize, Float(6))

	return t
}
