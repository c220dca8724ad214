package gui

// FontID selects one of the host's fonts. Zero is the host default.
type FontID uint16

// FontStyle is what the engine passes to the host when measuring text.
type FontStyle struct {
	Font FontID
	Size float32 // pixel size
}

// TextMeasurer is the interface for text measurement. The engine never
// rasterizes glyphs; it only needs sizes and caret positions for layout and
// hit testing. Implementations live with the host renderer (see the
// fontmeasure package for one over golang.org/x/image faces).
type TextMeasurer interface {
	// MeasureText returns the pixel size of a single line of text.
	MeasureText(text string, style FontStyle) Vec2

	// CharacterPosition returns the offset of the caret placed before the
	// rune at index (index == rune count means after the last rune).
	CharacterPosition(text string, style FontStyle, index int) Vec2
}

// MonospaceMeasurer measures text on a fixed cell grid. It matches the
// built-in bitmap font of the OpenGL backend and is handy in tests.
type MonospaceMeasurer struct {
	// CharWidth and CharHeight are the cell size at Size == BaseSize.
	CharWidth, CharHeight float32
	BaseSize              float32
}

func (m MonospaceMeasurer) scale(style FontStyle) float32 {
	if m.BaseSize <= 0 || style.Size <= 0 {
		return 1
	}
	return style.Size / m.BaseSize
}

// MeasureText returns rune count times the cell width.
func (m MonospaceMeasurer) MeasureText(text string, style FontStyle) Vec2 {
	s := m.scale(style)
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * m.CharWidth * s, Y: m.CharHeight * s}
}

// CharacterPosition returns index times the cell width.
func (m MonospaceMeasurer) CharacterPosition(text string, style FontStyle, index int) Vec2 {
	return Vec2{X: float32(index) * m.CharWidth * m.scale(style)}
}
