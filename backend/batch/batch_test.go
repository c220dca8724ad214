package batch

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	gui "github.com/go-theft-auto/framegui"
)

const (
	whiteTex = 1
	fontTex  = 2
)

// gridFonts lays out 8px wide glyphs with an ascent of 10. Spaces have no
// quad.
type gridFonts struct{}

func (gridFonts) Texture(gui.FontStyle) uint32 { return fontTex }
func (gridFonts) Ascent(gui.FontStyle) float32 { return 10 }
func (gridFonts) Glyph(_ gui.FontStyle, _, r rune) Glyph {
	if r == ' ' {
		return Glyph{Advance: 8}
	}
	return Glyph{X0: 0, Y0: -10, X1: 8, Y1: 2, U1: 1, V1: 1, Advance: 8}
}

var screen = gui.Rect{W: 100, H: 80}

func TestRectMergesIntoOneCall(t *testing.T) {
	b := NewBuilder(gridFonts{}, whiteTex)
	b.Add([]gui.Command{
		{Kind: gui.CmdBeginFrame, Rect: screen},
		{Kind: gui.CmdRect, Rect: gui.Rect{X: 1, Y: 2, W: 3, H: 4}, Color: gui.ColorRed},
		{Kind: gui.CmdRect, Rect: gui.Rect{X: 5, Y: 5, W: 1, H: 1}, Color: gui.ColorRed},
		{Kind: gui.CmdEndFrame},
	})

	want := []DrawCall{{Texture: whiteTex, AlphaMask: true, Clip: screen, ElemCount: 12}}
	if diff := cmp.Diff(want, b.Calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if got := b.Vertices[2].Pos; got != [2]float32{4, 6} {
		t.Errorf("bottom-right vertex = %v, want [4 6]", got)
	}
}

func TestClipSurvivesReset(t *testing.T) {
	b := NewBuilder(gridFonts{}, whiteTex)
	clip := gui.Rect{X: 10, Y: 10, W: 20, H: 20}
	b.Add([]gui.Command{
		{Kind: gui.CmdBeginFrame, Rect: screen},
		{Kind: gui.CmdPushClip, Rect: clip},
	})
	b.Reset()
	b.Add([]gui.Command{
		{Kind: gui.CmdRect, Rect: gui.Rect{W: 5, H: 5}, Color: gui.ColorWhite},
		{Kind: gui.CmdPopClip},
		{Kind: gui.CmdRect, Rect: gui.Rect{W: 5, H: 5}, Color: gui.ColorWhite},
	})
	if b.ClipDepth() != 0 {
		t.Fatalf("ClipDepth = %d, want 0", b.ClipDepth())
	}

	want := []DrawCall{
		{Texture: whiteTex, AlphaMask: true, Clip: clip, ElemCount: 6},
		{Texture: whiteTex, AlphaMask: true, Clip: screen, IndexOffset: 6, ElemCount: 6},
	}
	if diff := cmp.Diff(want, b.Calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestBeginFrameDropsStaleClips(t *testing.T) {
	b := NewBuilder(gridFonts{}, whiteTex)
	b.Add([]gui.Command{{Kind: gui.CmdPushClip, Rect: gui.Rect{W: 1, H: 1}}})
	b.Add([]gui.Command{{Kind: gui.CmdBeginFrame, Rect: screen}})
	if b.ClipDepth() != 0 || b.Screen() != screen.Size() {
		t.Errorf("after begin frame: depth %d, screen %v", b.ClipDepth(), b.Screen())
	}
}

func TestBorderAndLine(t *testing.T) {
	b := NewBuilder(gridFonts{}, whiteTex)
	b.SetScreen(screen.Size())
	b.StrokeRect(gui.Rect{W: 10, H: 10}, gui.ColorWhite, 1)
	if len(b.Vertices) != 16 {
		t.Errorf("border vertices = %d, want 16", len(b.Vertices))
	}
	b.StrokeRect(gui.Rect{W: 10, H: 10}, gui.ColorWhite, 0)
	b.Line(gui.Vec2{}, gui.Vec2{}, gui.ColorWhite, 1)
	if len(b.Vertices) != 16 {
		t.Errorf("degenerate shapes added vertices: %d", len(b.Vertices))
	}

	b.Reset()
	b.Line(gui.Vec2{X: 0, Y: 5}, gui.Vec2{X: 10, Y: 5}, gui.ColorWhite, 2)
	want := [][2]float32{{0, 6}, {10, 6}, {10, 4}, {0, 4}}
	var got [][2]float32
	for _, v := range b.Vertices {
		got = append(got, v.Pos)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("line quad mismatch (-want +got):\n%s", diff)
	}
}

func TestTextRanges(t *testing.T) {
	b := NewBuilder(gridFonts{}, whiteTex)
	b.SetScreen(screen.Size())
	run := gui.TextRun{
		Text:   "a b",
		Color:  gui.ColorWhite,
		Ranges: []gui.TextStyleRange{{Start: 2, End: 3, Color: gui.ColorRed, Background: gui.ColorBlue}},
	}
	b.Add([]gui.Command{{Kind: gui.CmdText, Rect: gui.Rect{X: 4, Y: 20, W: 24, H: 13}, Color: run.Color, Text: run}})

	// Background quad, then two glyph quads; the space has none.
	if len(b.Vertices) != 12 {
		t.Fatalf("vertices = %d, want 12", len(b.Vertices))
	}
	bg := b.Vertices[0:4]
	if bg[0].Pos != [2]float32{20, 20} || bg[2].Pos != [2]float32{28, 33} || bg[0].Color != gui.ColorBlue {
		t.Errorf("selection background = %+v", bg)
	}
	if c := b.Vertices[4].Color; c != gui.ColorWhite {
		t.Errorf("first glyph color = %#x, want white", c)
	}
	second := b.Vertices[8]
	if second.Color != gui.ColorRed || second.Pos != [2]float32{20, 20} {
		t.Errorf("second glyph = %+v, want red at pen 20 on baseline 30", second)
	}

	want := []DrawCall{
		{Texture: whiteTex, AlphaMask: true, Clip: screen, ElemCount: 6},
		{Texture: fontTex, AlphaMask: true, Clip: screen, IndexOffset: 6, ElemCount: 12},
	}
	if diff := cmp.Diff(want, b.Calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestImageDefaults(t *testing.T) {
	b := NewBuilder(gridFonts{}, whiteTex)
	b.SetScreen(screen.Size())
	b.Add([]gui.Command{{
		Kind:  gui.CmdImage,
		Rect:  gui.Rect{W: 16, H: 16},
		Image: gui.ImageRef{Texture: 7},
	}})
	if len(b.Calls) != 1 || b.Calls[0].Texture != 7 || b.Calls[0].AlphaMask {
		t.Fatalf("calls = %+v", b.Calls)
	}
	v := b.Vertices[2]
	if v.TexCoord != [2]float32{1, 1} || v.Color != gui.ColorWhite {
		t.Errorf("image corner = %+v, want full UV and white tint", v)
	}
}
