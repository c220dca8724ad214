package gui

import (
	"strings"
	"unicode"
)

// TextWrapMode specifies how text should be wrapped.
type TextWrapMode int

const (
	// WrapModeAuto wraps at characters when the text contains CJK, else at words.
	WrapModeAuto TextWrapMode = iota
	// WrapModeWord wraps at word boundaries.
	WrapModeWord
	// WrapModeChar wraps at character boundaries.
	WrapModeChar
)

// WrapText wraps text to fit within maxWidth when drawn by widgets of type
// typ. Existing newlines are kept. A word wider than maxWidth gets a line
// of its own.
func (ctx *Context) WrapText(text string, typ WidgetType, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}
	if mode == WrapModeAuto {
		mode = WrapModeWord
		if containsCJK(text) {
			mode = WrapModeChar
		}
	}

	var lines []string
	for para := range strings.SplitSeq(text, "\n") {
		if para == "" {
			lines = append(lines, "")
			continue
		}
		if mode == WrapModeChar {
			lines = ctx.wrapByChar(lines, para, typ, maxWidth)
		} else {
			lines = ctx.wrapByWord(lines, para, typ, maxWidth)
		}
	}
	return lines
}

func (ctx *Context) wrapByWord(lines []string, text string, typ WidgetType, maxWidth float32) []string {
	var current string
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && ctx.measureText(candidate, typ).X > maxWidth {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}
	return append(lines, current)
}

func (ctx *Context) wrapByChar(lines []string, text string, typ WidgetType, maxWidth float32) []string {
	var current []rune
	for _, r := range text {
		candidate := append(current, r)
		if len(current) > 0 && ctx.measureText(string(candidate), typ).X > maxWidth {
			lines = append(lines, string(current))
			current = []rune{r}
		} else {
			current = candidate
		}
	}
	return append(lines, string(current))
}

// containsCJK returns true if the string contains any CJK characters.
func containsCJK(text string) bool {
	for _, r := range text {
		if isCJKRune(r) {
			return true
		}
	}
	return false
}

func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r) ||
		unicode.In(r, unicode.Bopomofo) ||
		unicode.In(r, unicode.Yi)
}

// TruncateText shortens text with a ".." suffix until it fits maxWidth.
// Text that already fits is returned unchanged; when not even the suffix
// fits, the result is empty.
func (ctx *Context) TruncateText(text string, typ WidgetType, maxWidth float32) string {
	if ctx.measureText(text, typ).X <= maxWidth {
		return text
	}
	const suffix = ".."
	target := maxWidth - ctx.measureText(suffix, typ).X
	if target < 0 {
		return ""
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if ctx.measureText(string(runes), typ).X <= target {
			return string(runes) + suffix
		}
	}
	return suffix
}
