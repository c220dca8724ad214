package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapText(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	tests := []struct {
		name     string
		text     string
		maxWidth float32
		mode     TextWrapMode
		want     []string
	}{
		{"words", "the quick brown fox", 80, WrapModeWord, []string{"the quick", "brown fox"}},
		{"long word gets its own line", "a supercalifragilistic b", 80, WrapModeWord, []string{"a", "supercalifragilistic", "b"}},
		{"chars", "abcdefghij", 32, WrapModeChar, []string{"abcd", "efgh", "ij"}},
		{"newlines kept", "a\n\nb", 80, WrapModeWord, []string{"a", "", "b"}},
		{"auto picks chars for CJK", "你好世界", 16, WrapModeAuto, []string{"你好", "世界"}},
		{"auto picks words otherwise", "one two", 40, WrapModeAuto, []string{"one", "two"}},
		{"no width splits lines only", "a b\nc", 0, WrapModeWord, []string{"a b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ctx.WrapText(tt.text, WidgetLabel, tt.maxWidth, tt.mode)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WrapText() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	tests := []struct {
		text     string
		maxWidth float32
		want     string
	}{
		{"short", 80, "short"},
		{"hello world", 48, "hell.."},
		{"hello", 16, ".."},
		{"hello", 10, ""},
	}
	for _, tt := range tests {
		if got := ctx.TruncateText(tt.text, WidgetWindow, tt.maxWidth); got != tt.want {
			t.Errorf("TruncateText(%q, %v) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
		}
	}
}

func TestWrappedLabelGrowsDown(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var id ID
	runFrame(ctx, nil, func() {
		ctx.Label("the quick brown fox", WithWrap(80), WithID("note"))
		id, _ = ctx.LastWidget()
	})

	if got := ctx.MustWidget(id).Layout.Global.Size(); got != (Vec2{X: 72, Y: 32}) {
		t.Errorf("Expected two wrapped lines of 72x32, got %v", got)
	}
}

func TestWindowTitleIsTruncated(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	runFrame(ctx, nil, func() {
		ctx.Window("A rather long window title", WithSize(100, 60), Resizable(false))(func() {})
	})
	cmds := ctx.Commands()

	var title string
	for _, c := range cmds {
		if c.Kind == CmdText {
			title = c.Text.Text
		}
	}
	// 100px minus 8px padding on each side leaves room for 10 cells.
	if title != "A rather.." {
		t.Errorf("Expected truncated title %q, got %q", "A rather..", title)
	}
}
