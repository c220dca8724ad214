package gui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrThemeFormat is returned for theme files that cannot be interpreted.
var ErrThemeFormat = errors.New("gui: invalid theme")

// LoadTheme reads a theme file on top of DefaultTheme. The format is picked
// from the extension: .toml, .yaml or .yml.
//
// Top-level tables are widget type names ("button", "window", ...) or
// "defaults" for the global row. Keys are property names for the normal
// state, or state names holding a nested table:
//
//	[button]
//	background = "#323232ff"
//	padding = 6
//
//	[button.hovered]
//	background = "#464646ff"
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: unknown theme extension %q", ErrThemeFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}

	theme := DefaultTheme()
	if err := theme.apply(doc); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return theme, nil
}

// apply merges a decoded theme document into t.
func (t *Theme) apply(doc map[string]any) error {
	for section, body := range doc {
		typ := WidgetRoot
		if section != "defaults" {
			var ok bool
			if typ, ok = widgetTypeByName(section); !ok {
				return fmt.Errorf("%w: unknown widget %q", ErrThemeFormat, section)
			}
		}
		table, ok := body.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: section %q is not a table", ErrThemeFormat, section)
		}
		if err := t.applyTable(typ, StateNormal, table, true); err != nil {
			return fmt.Errorf("section %q: %w", section, err)
		}
	}
	return nil
}

func (t *Theme) applyTable(typ WidgetType, state WidgetState, table map[string]any, allowStates bool) error {
	for key, raw := range table {
		if nested, ok := raw.(map[string]any); ok {
			st, found := widgetStateByName(key)
			if !allowStates || !found {
				return fmt.Errorf("%w: unexpected table %q", ErrThemeFormat, key)
			}
			if err := t.applyTable(typ, st, nested, false); err != nil {
				return err
			}
			continue
		}
		prop, ok := stylePropByName(key)
		if !ok {
			return fmt.Errorf("%w: unknown property %q", ErrThemeFormat, key)
		}
		v, err := parseStyleValue(raw)
		if err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		t.Set(typ, state, prop, v)
	}
	return nil
}

func widgetStateByName(name string) (WidgetState, bool) {
	for s, n := range widgetStateNames {
		if n == name {
			return WidgetState(s), true
		}
	}
	return 0, false
}

func stylePropByName(name string) (StyleProp, bool) {
	for p, n := range stylePropNames {
		if n == name {
			return StyleProp(p), true
		}
	}
	return 0, false
}

// parseStyleValue converts a decoded TOML/YAML scalar.
func parseStyleValue(raw any) (StyleValue, error) {
	switch v := raw.(type) {
	case bool:
		return Bool(v), nil
	case int:
		return Float(float32(v)), nil
	case int64:
		return Float(float32(v)), nil
	case float64:
		return Float(float32(v)), nil
	case string:
		c, err := ParseColor(v)
		if err != nil {
			return StyleValue{}, err
		}
		return Color(c), nil
	}
	return StyleValue{}, fmt.Errorf("%w: unsupported value %v (%T)", ErrThemeFormat, raw, raw)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" into a packed color.
func ParseColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, fmt.Errorf("%w: color %q must be #rrggbb or #rrggbbaa", ErrThemeFormat, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q: %w", ErrThemeFormat, s, err)
	}
	return RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)), nil
}
