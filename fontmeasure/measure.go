// Package fontmeasure implements gui.TextMeasurer over golang.org/x/image
// font faces. The same faces can be rasterized by a renderer so measured
// and drawn text agree.
package fontmeasure

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	gui "github.com/go-theft-auto/framegui"
)

// DefaultSize is the pixel size of the built-in face.
const DefaultSize = 13

// source is a registered font: either a scalable OpenType font or a fixed
// bitmap face that is scaled linearly.
type source struct {
	otf       *opentype.Font
	fixed     font.Face
	fixedSize float32
}

type faceKey struct {
	font gui.FontID
	size float32
}

// Measurer measures text with registered fonts. Font id 0 is the fallback
// for ids that were never registered.
type Measurer struct {
	fonts map[gui.FontID]source
	faces map[faceKey]font.Face
}

var _ gui.TextMeasurer = (*Measurer)(nil)

// New returns a Measurer without fonts. Until font 0 is registered, text
// is measured with the built-in 7x13 face.
func New() *Measurer {
	return &Measurer{
		fonts: make(map[gui.FontID]source),
		faces: make(map[faceKey]font.Face),
	}
}

// Default returns a Measurer whose font 0 is basicfont.Face7x13.
func Default() *Measurer {
	m := New()
	m.AddFace(0, basicfont.Face7x13, DefaultSize)
	return m
}

// AddFace registers a fixed-size face under id. size is the pixel size the
// face was built for; other sizes scale its metrics.
func (m *Measurer) AddFace(id gui.FontID, face font.Face, size float32) {
	m.dropFaces(id)
	m.fonts[id] = source{fixed: face, fixedSize: size}
}

// AddFont parses TrueType or OpenType data and registers it under id.
func (m *Measurer) AddFont(id gui.FontID, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %d: %w", id, err)
	}
	m.dropFaces(id)
	m.fonts[id] = source{otf: f}
	return nil
}

// LoadFile reads a font file and registers it under id.
func (m *Measurer) LoadFile(id gui.FontID, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font: %w", err)
	}
	return m.AddFont(id, data)
}

// Close releases the faces created for scalable fonts.
func (m *Measurer) Close() error {
	var first error
	for k, f := range m.faces {
		if src, ok := m.fonts[k.font]; ok && src.otf != nil {
			if err := f.Close(); err != nil && first == nil {
				first = err
			}
		}
		delete(m.faces, k)
	}
	return first
}

func (m *Measurer) dropFaces(id gui.FontID) {
	for k, f := range m.faces {
		if k.font != id {
			continue
		}
		if src := m.fonts[id]; src.otf != nil {
			f.Close()
		}
		delete(m.faces, k)
	}
}

// Face returns the face used for style and the factor its metrics must be
// multiplied by. Scalable fonts always return a factor of 1.
func (m *Measurer) Face(style gui.FontStyle) (font.Face, float32) {
	src, ok := m.fonts[style.Font]
	if !ok {
		src, ok = m.fonts[0]
	}
	if !ok {
		src = source{fixed: basicfont.Face7x13, fixedSize: DefaultSize}
	}
	if src.fixed != nil {
		if style.Size <= 0 || src.fixedSize <= 0 {
			return src.fixed, 1
		}
		return src.fixed, style.Size / src.fixedSize
	}

	size := style.Size
	if size <= 0 {
		size = DefaultSize
	}
	key := faceKey{font: style.Font, size: size}
	if f, ok := m.faces[key]; ok {
		return f, 1
	}
	f, err := opentype.NewFace(src.otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13, size / DefaultSize
	}
	m.faces[key] = f
	return f, 1
}

// LineHeight returns the line advance for style.
func (m *Measurer) LineHeight(style gui.FontStyle) float32 {
	face, scale := m.Face(style)
	return toFloat(face.Metrics().Height) * scale
}

// Ascent returns the distance from the top of a line to its baseline.
func (m *Measurer) Ascent(style gui.FontStyle) float32 {
	face, scale := m.Face(style)
	return toFloat(face.Metrics().Ascent) * scale
}

// MeasureText returns the advance width and line height of text.
func (m *Measurer) MeasureText(text string, style gui.FontStyle) gui.Vec2 {
	face, scale := m.Face(style)
	w := toFloat(font.MeasureString(face, text))
	return gui.Vec2{X: w * scale, Y: toFloat(face.Metrics().Height) * scale}
}

// CharacterPosition returns the advance of the first index runes of text.
func (m *Measurer) CharacterPosition(text string, style gui.FontStyle, index int) gui.Vec2 {
	if index <= 0 {
		return gui.Vec2{}
	}
	end := len(text)
	for i := range text {
		if index == 0 {
			end = i
			break
		}
		index--
	}
	face, scale := m.Face(style)
	return gui.Vec2{X: toFloat(font.MeasureString(face, text[:end])) * scale}
}

// Advance returns the advance of r including kerning against prev, which
// is utf8.RuneError for the first rune of a line.
func (m *Measurer) Advance(style gui.FontStyle, prev, r rune) float32 {
	face, scale := m.Face(style)
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		adv, _ = face.GlyphAdvance('?')
	}
	if prev != utf8.RuneError {
		adv += face.Kern(prev, r)
	}
	return toFloat(adv) * scale
}

func toFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
