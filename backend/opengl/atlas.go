package opengl

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	gui "github.com/go-theft-auto/framegui"
	"github.com/go-theft-auto/framegui/backend/batch"
	"github.com/go-theft-auto/framegui/fontmeasure"
)

const (
	atlasSize    = 1024
	atlasPadding = 2
)

// atlasGlyph is a packed glyph in unscaled face pixels, relative to the pen
// on the baseline.
type atlasGlyph struct {
	x0, y0, x1, y1 float32
	u0, v0, u1, v1 float32
}

// glyphAtlas packs the glyphs of one face into a single-channel texture on
// first use, shelf by shelf.
type glyphAtlas struct {
	face   font.Face
	tex    uint32
	x, y   int
	rowH   int
	glyphs map[rune]atlasGlyph
}

func newGlyphAtlas(face font.Face) *glyphAtlas {
	a := &glyphAtlas{
		face:   face,
		x:      atlasPadding,
		y:      atlasPadding,
		glyphs: make(map[rune]atlasGlyph, 128),
	}
	gl.GenTextures(1, &a.tex)
	gl.BindTexture(gl.TEXTURE_2D, a.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	blank := make([]byte, atlasSize*atlasSize)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasSize, atlasSize, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(blank))

	for r := rune(32); r < 127; r++ {
		a.glyph(r)
	}
	return a
}

// glyph returns the packed glyph of r, rasterizing it when missing. Runes
// the face lacks or that no longer fit map to '?'.
func (a *glyphAtlas) glyph(r rune) atlasGlyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	dr, mask, maskp, _, ok := a.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		if r == '?' {
			return atlasGlyph{}
		}
		g := a.glyph('?')
		a.glyphs[r] = g
		return g
	}
	w, h := dr.Dx(), dr.Dy()
	if w == 0 || h == 0 {
		a.glyphs[r] = atlasGlyph{}
		return atlasGlyph{}
	}
	if a.x+w+atlasPadding > atlasSize {
		a.x = atlasPadding
		a.y += a.rowH + atlasPadding
		a.rowH = 0
	}
	if a.y+h+atlasPadding > atlasSize {
		if r == '?' {
			return atlasGlyph{}
		}
		return a.glyph('?')
	}

	pix := image.NewAlpha(image.Rect(0, 0, w, h))
	draw.Draw(pix, pix.Bounds(), mask, maskp, draw.Src)
	gl.BindTexture(gl.TEXTURE_2D, a.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(a.x), int32(a.y), int32(w), int32(h), gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix.Pix))

	g := atlasGlyph{
		x0: float32(dr.Min.X), y0: float32(dr.Min.Y),
		x1: float32(dr.Max.X), y1: float32(dr.Max.Y),
		u0: float32(a.x) / atlasSize, v0: float32(a.y) / atlasSize,
		u1: float32(a.x+w) / atlasSize, v1: float32(a.y+h) / atlasSize,
	}
	a.glyphs[r] = g
	a.x += w + atlasPadding
	a.rowH = max(a.rowH, h)
	return g
}

func (a *glyphAtlas) delete() {
	if a.tex != 0 {
		gl.DeleteTextures(1, &a.tex)
		a.tex = 0
	}
}

// glyphCache serves batch.Fonts from the faces of a fontmeasure.Measurer,
// so drawn text matches what the engine measured.
type glyphCache struct {
	measurer *fontmeasure.Measurer
	atlases  map[font.Face]*glyphAtlas
}

var _ batch.Fonts = (*glyphCache)(nil)

func newGlyphCache(m *fontmeasure.Measurer) *glyphCache {
	return &glyphCache{measurer: m, atlases: make(map[font.Face]*glyphAtlas)}
}

func (c *glyphCache) atlas(face font.Face) *glyphAtlas {
	a, ok := c.atlases[face]
	if !ok {
		a = newGlyphAtlas(face)
		c.atlases[face] = a
	}
	return a
}

func (c *glyphCache) Texture(style gui.FontStyle) uint32 {
	face, _ := c.measurer.Face(style)
	return c.atlas(face).tex
}

func (c *glyphCache) Ascent(style gui.FontStyle) float32 {
	return c.measurer.Ascent(style)
}

func (c *glyphCache) Glyph(style gui.FontStyle, prev, r rune) batch.Glyph {
	face, scale := c.measurer.Face(style)
	g := c.atlas(face).glyph(r)
	return batch.Glyph{
		X0: g.x0 * scale, Y0: g.y0 * scale, X1: g.x1 * scale, Y1: g.y1 * scale,
		U0: g.u0, V0: g.v0, U1: g.u1, V1: g.v1,
		Advance: c.measurer.Advance(style, prev, r),
	}
}

func (c *glyphCache) delete() {
	for face, a := range c.atlases {
		a.delete()
		delete(c.atlases, face)
	}
}
