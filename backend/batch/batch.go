// Package batch turns gui render commands into indexed triangle batches.
// It holds no graphics API state, so any GPU backend can upload its output.
package batch

import (
	"math"
	"unicode/utf8"

	gui "github.com/go-theft-auto/framegui"
)

// Vertex is one textured, colored 2D vertex.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // packed 0xAABBGGRR
}

// DrawCall is a run of indices sharing texture and clip.
type DrawCall struct {
	Texture     uint32
	AlphaMask   bool // texture is a coverage mask tinted by the vertex color
	Clip        gui.Rect
	IndexOffset int
	ElemCount   int
}

// Glyph is the quad of one rune relative to the pen on the baseline.
type Glyph struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
	Advance        float32 // includes kerning against the previous rune
}

// Fonts provides rasterized glyphs for text commands.
type Fonts interface {
	// Texture returns the atlas holding the glyphs of style.
	Texture(style gui.FontStyle) uint32
	// Ascent returns the distance from the top of a line to its baseline.
	Ascent(style gui.FontStyle) float32
	// Glyph returns the quad of r. prev is utf8.RuneError at line start.
	Glyph(style gui.FontStyle, prev, r rune) Glyph
}

// Builder accumulates geometry. The clip stack survives Reset so a frame
// can be drained in several chunks.
type Builder struct {
	Vertices []Vertex
	Indices  []uint32
	Calls    []DrawCall

	white  uint32
	fonts  Fonts
	clips  []gui.Rect
	screen gui.Vec2
}

// NewBuilder creates a Builder. white is a texture whose every texel has
// full coverage; it is used for untextured geometry.
func NewBuilder(fonts Fonts, white uint32) *Builder {
	return &Builder{
		Vertices: make([]Vertex, 0, 4096),
		Indices:  make([]uint32, 0, 6144),
		Calls:    make([]DrawCall, 0, 64),
		white:    white,
		fonts:    fonts,
		clips:    make([]gui.Rect, 0, 8),
	}
}

// Reset drops buffered geometry and keeps the clip stack.
func (b *Builder) Reset() {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
	b.Calls = b.Calls[:0]
}

// Screen returns the frame size announced by the last begin-frame command.
func (b *Builder) Screen() gui.Vec2 { return b.screen }

// SetScreen sets the frame size used as clip when no clip is pushed.
func (b *Builder) SetScreen(size gui.Vec2) { b.screen = size }

// ClipDepth returns the number of open clip rectangles.
func (b *Builder) ClipDepth() int { return len(b.clips) }

// Add appends the geometry of cmds.
func (b *Builder) Add(cmds []gui.Command) {
	for i := range cmds {
		b.add(&cmds[i])
	}
}

func (b *Builder) add(cmd *gui.Command) {
	switch cmd.Kind {
	case gui.CmdBeginFrame:
		b.clips = b.clips[:0]
		if cmd.Rect.W > 0 && cmd.Rect.H > 0 {
			b.screen = cmd.Rect.Size()
		}
	case gui.CmdEndFrame:
		b.clips = b.clips[:0]
	case gui.CmdPushClip:
		b.clips = append(b.clips, cmd.Rect)
	case gui.CmdPopClip:
		if n := len(b.clips); n > 0 {
			b.clips = b.clips[:n-1]
		}
	case gui.CmdRect:
		b.FillRect(cmd.Rect, cmd.Color)
	case gui.CmdBorder:
		b.StrokeRect(cmd.Rect, cmd.Color, cmd.Thickness)
	case gui.CmdLine:
		b.Line(cmd.From, cmd.To, cmd.Color, cmd.Thickness)
	case gui.CmdImage:
		color := cmd.Color
		if color == 0 {
			color = gui.ColorWhite
		}
		uv1 := cmd.Image.UV1
		if uv1 == (gui.Vec2{}) {
			uv1 = gui.Vec2{X: 1, Y: 1}
		}
		b.quad(cmd.Image.Texture, false, cmd.Rect.X, cmd.Rect.Y, cmd.Rect.X+cmd.Rect.W, cmd.Rect.Y+cmd.Rect.H,
			cmd.Image.UV0.X, cmd.Image.UV0.Y, uv1.X, uv1.Y, color)
	case gui.CmdText:
		b.Text(cmd.Rect, &cmd.Text)
	}
}

func (b *Builder) clip() gui.Rect {
	if n := len(b.clips); n > 0 {
		return b.clips[n-1]
	}
	return gui.Rect{W: b.screen.X, H: b.screen.Y}
}

// call returns the draw call new indices go to, merging with the previous
// one when texture and clip match.
func (b *Builder) call(texture uint32, mask bool) *DrawCall {
	clip := b.clip()
	if n := len(b.Calls); n > 0 {
		last := &b.Calls[n-1]
		if last.Texture == texture && last.AlphaMask == mask && last.Clip == clip {
			return last
		}
	}
	b.Calls = append(b.Calls, DrawCall{Texture: texture, AlphaMask: mask, Clip: clip, IndexOffset: len(b.Indices)})
	return &b.Calls[len(b.Calls)-1]
}

func (b *Builder) quad(texture uint32, mask bool, x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	b.quadPoints(texture, mask,
		[4][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}},
		[4][2]float32{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}, color)
}

func (b *Builder) quadPoints(texture uint32, mask bool, pos, uv [4][2]float32, color uint32) {
	if texture == 0 {
		texture, mask = b.white, true
	}
	dc := b.call(texture, mask)
	base := uint32(len(b.Vertices))
	for i := range pos {
		b.Vertices = append(b.Vertices, Vertex{Pos: pos[i], TexCoord: uv[i], Color: color})
	}
	b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
	dc.ElemCount += 6
}

// FillRect adds a solid rectangle.
func (b *Builder) FillRect(r gui.Rect, color uint32) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	b.quad(0, true, r.X, r.Y, r.X+r.W, r.Y+r.H, 0, 0, 1, 1, color)
}

// StrokeRect adds a border drawn inside r.
func (b *Builder) StrokeRect(r gui.Rect, color uint32, thickness float32) {
	t := min(thickness, r.W/2, r.H/2)
	if t <= 0 {
		return
	}
	b.FillRect(gui.Rect{X: r.X, Y: r.Y, W: r.W, H: t}, color)
	b.FillRect(gui.Rect{X: r.X, Y: r.Y + r.H - t, W: r.W, H: t}, color)
	b.FillRect(gui.Rect{X: r.X, Y: r.Y + t, W: t, H: r.H - 2*t}, color)
	b.FillRect(gui.Rect{X: r.X + r.W - t, Y: r.Y + t, W: t, H: r.H - 2*t}, color)
}

// Line adds a segment as a quad of the given thickness.
func (b *Builder) Line(from, to gui.Vec2, color uint32, thickness float32) {
	dx, dy := to.X-from.X, to.Y-from.Y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	if thickness <= 0 {
		thickness = 1
	}
	nx, ny := -dy/l*thickness/2, dx/l*thickness/2
	b.quadPoints(0, true, [4][2]float32{
		{from.X + nx, from.Y + ny},
		{to.X + nx, to.Y + ny},
		{to.X - nx, to.Y - ny},
		{from.X - nx, from.Y - ny},
	}, [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, color)
}

// Text adds one line of text laid out in box, whose height is the measured
// line height. Range backgrounds are drawn before any glyph.
func (b *Builder) Text(box gui.Rect, run *gui.TextRun) {
	if run.Text == "" || b.fonts == nil {
		return
	}
	b.rangeBackgrounds(box, run)

	tex := b.fonts.Texture(run.Style)
	baseline := box.Y + b.fonts.Ascent(run.Style)
	pen := box.X
	prev := utf8.RuneError
	i := 0
	for _, r := range run.Text {
		g := b.fonts.Glyph(run.Style, prev, r)
		if g.X1 > g.X0 && g.Y1 > g.Y0 {
			b.quad(tex, true, pen+g.X0, baseline+g.Y0, pen+g.X1, baseline+g.Y1, g.U0, g.V0, g.U1, g.V1, runeColor(run, i))
		}
		pen += g.Advance
		prev = r
		i++
	}
}

func (b *Builder) rangeBackgrounds(box gui.Rect, run *gui.TextRun) {
	for _, rg := range run.Ranges {
		if rg.Background>>24 == 0 || rg.End <= rg.Start {
			continue
		}
		x0, x1 := b.penAt(run, rg.Start), b.penAt(run, rg.End)
		b.FillRect(gui.Rect{X: box.X + x0, Y: box.Y, W: x1 - x0, H: box.H}, rg.Background)
	}
}

// penAt returns the pen offset before rune index.
func (b *Builder) penAt(run *gui.TextRun, index int) float32 {
	var pen float32
	prev := utf8.RuneError
	i := 0
	for _, r := range run.Text {
		if i == index {
			break
		}
		pen += b.fonts.Glyph(run.Style, prev, r).Advance
		prev = r
		i++
	}
	return pen
}

func runeColor(run *gui.TextRun, index int) uint32 {
	color := run.Color
	for _, rg := range run.Ranges {
		if index >= rg.Start && index < rg.End && rg.Color != 0 {
			color = rg.Color
		}
	}
	return color
}
