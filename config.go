package gui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds engine tuning. Zero values are replaced by DefaultConfig.
type Config struct {
	// StaleFrames is how many frames an undeclared widget keeps its slot
	// and state before the arena reclaims it. Zero disables reclamation.
	StaleFrames int `toml:"stale_frames"`

	// DragThreshold is the pointer travel in pixels that turns a press into a drag.
	DragThreshold float32 `toml:"drag_threshold"`

	// DoubleClickMs is the maximum delay between two clicks of a double click.
	DoubleClickMs uint64 `toml:"double_click_ms"`

	// WheelStep is the scroll distance in pixels of one wheel notch.
	WheelStep float32 `toml:"wheel_step"`

	// CaretBlinkMs is the half period of the caret blink.
	CaretBlinkMs uint64 `toml:"caret_blink_ms"`

	// MaxCommands bounds the render-command buffer. When full, the buffer is
	// flushed to the renderer and reused within the same frame.
	MaxCommands int `toml:"max_commands"`

	// SnapDistance is how close, in pixels, a dragged window edge must come
	// to a screen or window edge to snap to it. Zero disables snapping.
	SnapDistance float32 `toml:"snap_distance"`

	// DebugAsserts turns detected id collisions into panics.
	DebugAsserts bool `toml:"debug_asserts"`

	// ThemeFile is an optional theme loaded by LoadConfig users.
	ThemeFile string `toml:"theme_file"`
}

// DefaultConfig returns the default engine tuning.
func DefaultConfig() Config {
	return Config{
		StaleFrames:   60,
		DragThreshold: 3,
		DoubleClickMs: 400,
		WheelStep:     30,
		CaretBlinkMs:  530,
		MaxCommands:   16384,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.StaleFrames == 0 {
		c.StaleFrames = d.StaleFrames
	}
	if c.DragThreshold == 0 {
		c.DragThreshold = d.DragThreshold
	}
	if c.DoubleClickMs == 0 {
		c.DoubleClickMs = d.DoubleClickMs
	}
	if c.WheelStep == 0 {
		c.WheelStep = d.WheelStep
	}
	if c.CaretBlinkMs == 0 {
		c.CaretBlinkMs = d.CaretBlinkMs
	}
	if c.MaxCommands <= 0 {
		c.MaxCommands = d.MaxCommands
	}
	return c
}

// LoadConfig reads engine tuning from a TOML file. Missing keys keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithConfig sets the engine tuning.
func WithConfig(cfg Config) ContextOption {
	return func(ctx *Context) { ctx.cfg = cfg.withDefaults() }
}

// WithTheme sets the theme table.
func WithTheme(theme *Theme) ContextOption {
	return func(ctx *Context) { ctx.theme = theme }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(ctx *Context) { ctx.log = logger }
}

// WithSettingsStore sets where window geometry is persisted.
func WithSettingsStore(store SettingsStore) ContextOption {
	return func(ctx *Context) { ctx.settings = store }
}

// WithTextEditor sets the factory for the text-edit collaborator.
func WithTextEditor(factory func() TextEditor) ContextOption {
	return func(ctx *Context) { ctx.newEditor = factory }
}
