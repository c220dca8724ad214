package gui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestThemeFallbacks(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name  string
		typ   WidgetType
		state WidgetState
		prop  StyleProp
		want  StyleValue
	}{
		{"exact cell", WidgetButton, StateHovered, PropBackground, Color(RGBA(70, 70, 70, 255))},
		{"state falls back to normal", WidgetButton, StateFocused, PropBackground, Color(RGBA(50, 50, 50, 255))},
		{"type falls back to root state", WidgetButton, StateDisabled, PropTextColor, Color(ColorGray)},
		{"type falls back to root normal", WidgetLabel, StateHovered, PropFontSize, Float(16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := theme.Lookup(tt.typ, tt.state, tt.prop)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lookup() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadThemeTOML(t *testing.T) {
	path := writeFile(t, "theme.toml", `
[defaults]
font_size = 20

[button]
padding = 10

[button.hovered]
background = "#ff000080"
`)
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() returned error: %v", err)
	}

	if got := theme.Float(WidgetLabel, StateNormal, PropFontSize); got != 20 {
		t.Errorf("Expected global font size 20, got %v", got)
	}
	if got := theme.Float(WidgetButton, StateNormal, PropPadding); got != 10 {
		t.Errorf("Expected button padding 10, got %v", got)
	}
	if got := theme.Color(WidgetButton, StateHovered, PropBackground); got != RGBA(255, 0, 0, 128) {
		t.Errorf("Expected hovered background %#08x, got %#08x", RGBA(255, 0, 0, 128), got)
	}
	// untouched cells keep their defaults
	if got := theme.Color(WidgetButton, StatePressed, PropBackground); got != RGBA(90, 90, 90, 255) {
		t.Errorf("Expected default pressed background, got %#08x", got)
	}
}

func TestLoadThemeYAML(t *testing.T) {
	path := writeFile(t, "theme.yaml", `
window:
  title_bar_height: 30
  focused:
    title_bar_color: "#102030"
textbox:
  caret_blink: false
`)
	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() returned error: %v", err)
	}

	if got := theme.Float(WidgetWindow, StateNormal, PropTitleBarHeight); got != 30 {
		t.Errorf("Expected title bar height 30, got %v", got)
	}
	if got := theme.Color(WidgetWindow, StateFocused, PropTitleBarColor); got != RGBA(0x10, 0x20, 0x30, 0xff) {
		t.Errorf("Expected focused title color, got %#08x", got)
	}
	if theme.Bool(WidgetTextbox, StateNormal, PropCaretBlink) {
		t.Error("Expected caret blink to be turned off")
	}
}

func TestLoadThemeErrors(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"unknown widget", "t.toml", "[slider]\npadding = 1\n"},
		{"unknown property", "t.toml", "[button]\nshadow = 1\n"},
		{"unknown state", "t.toml", "[button.active]\nbackground = \"#000000\"\n"},
		{"bad color", "t.yaml", "button:\n  background: \"red\"\n"},
		{"unknown extension", "t.json", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTheme(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, ErrThemeFormat) {
				t.Errorf("Expected ErrThemeFormat, got %v", err)
			}
		})
	}

	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#ffffff", ColorWhite, false},
		{"#ff000080", RGBA(255, 0, 0, 128), false},
		{"#12345", 0, true},
		{"123456", 0, true},
		{"#gg0000", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#08x, want %#08x", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "gui.toml", `
stale_frames = 10
snap_distance = 8.5
debug_asserts = true
theme_file = "dark.yaml"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	want := DefaultConfig()
	want.StaleFrames = 10
	want.SnapDistance = 8.5
	want.DebugAsserts = true
	want.ThemeFile = "dark.yaml"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
	if _, err := LoadConfig(writeFile(t, "bad.toml", "stale_frames = \"many\"\n")); err == nil {
		t.Error("Expected an error for a mistyped key")
	}
}

func TestWithConfigFillsZeroFields(t *testing.T) {
	ctx, _, _ := newTestContext(t, WithConfig(Config{DragThreshold: 6}))

	cfg := ctx.Config()
	if cfg.DragThreshold != 6 {
		t.Errorf("Expected drag threshold 6, got %v", cfg.DragThreshold)
	}
	if cfg.MaxCommands != DefaultConfig().MaxCommands || cfg.StaleFrames != DefaultConfig().StaleFrames {
		t.Errorf("Expected zero fields to take defaults, got %+v", cfg)
	}
	if cfg.SnapDistance != 0 {
		t.Errorf("Expected snapping to stay disabled, got %v", cfg.SnapDistance)
	}
}
