package fontmeasure

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/basicfont"

	gui "github.com/go-theft-auto/framegui"
)

func TestDefaultMeasure(t *testing.T) {
	m := Default()
	tests := []struct {
		name  string
		text  string
		style gui.FontStyle
		want  gui.Vec2
	}{
		{"empty", "", gui.FontStyle{Size: 13}, gui.Vec2{X: 0, Y: 13}},
		{"ascii", "abc", gui.FontStyle{Size: 13}, gui.Vec2{X: 21, Y: 13}},
		{"runes not bytes", "héllo", gui.FontStyle{Size: 13}, gui.Vec2{X: 35, Y: 13}},
		{"scaled", "abc", gui.FontStyle{Size: 26}, gui.Vec2{X: 42, Y: 26}},
		{"unsized", "ab", gui.FontStyle{}, gui.Vec2{X: 14, Y: 13}},
		{"unknown font falls back", "ab", gui.FontStyle{Font: 9, Size: 13}, gui.Vec2{X: 14, Y: 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MeasureText(tt.text, tt.style)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MeasureText(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestCharacterPosition(t *testing.T) {
	m := Default()
	style := gui.FontStyle{Size: 13}
	for index, want := range []float32{0, 7, 14, 21, 28, 35, 35} {
		got := m.CharacterPosition("héllo", style, index)
		if got.X != want {
			t.Errorf("CharacterPosition(%d) = %v, want %v", index, got.X, want)
		}
	}
}

func TestEmptyMeasurerUsesBuiltinFace(t *testing.T) {
	m := New()
	face, scale := m.Face(gui.FontStyle{Size: 13})
	if face != basicfont.Face7x13 || scale != 1 {
		t.Errorf("Face = %v, %v; want built-in face at scale 1", face, scale)
	}
	if h := m.LineHeight(gui.FontStyle{Size: 26}); h != 26 {
		t.Errorf("LineHeight = %v, want 26", h)
	}
	if a := m.Ascent(gui.FontStyle{Size: 13}); a != 11 {
		t.Errorf("Ascent = %v, want 11", a)
	}
}

func TestAdvance(t *testing.T) {
	m := Default()
	if got := m.Advance(gui.FontStyle{Size: 13}, utf8.RuneError, 'A'); got != 7 {
		t.Errorf("Advance = %v, want 7", got)
	}
}

func TestAddFontRejectsGarbage(t *testing.T) {
	m := New()
	if err := m.AddFont(1, []byte("not a font")); err == nil {
		t.Fatal("AddFont accepted invalid data")
	}
	if err := m.LoadFile(1, "does-not-exist.ttf"); err == nil {
		t.Fatal("LoadFile accepted a missing file")
	}
}
