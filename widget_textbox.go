package gui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func init() {
	kinds[WidgetTextbox] = widgetKind{
		create:      textCreate,
		updateInput: textInput,
		render:      renderText,
	}
	kinds[WidgetTextField] = widgetKind{
		create: func(ctx *Context, w *Widget) {
			textCreate(ctx, w)
			w.Flags |= FlagOwnsScroll
		},
		updateInput: textInput,
		render:      renderText,
	}
}

const (
	defaultTextboxWidth   = 160
	defaultTextFieldWidth = 240
	defaultTextFieldLines = 4
)

func textCreate(ctx *Context, w *Widget) {
	w.Flags |= FlagDraggable
}

// Textbox renders a single-line text input bound to text and returns true
// on the frame the user changed it. Enter confirms (see Submitted), Escape
// restores the text the edit started with.
func (ctx *Context) Textbox(label string, text *string, opts ...Option) bool {
	return ctx.textWidget(label, WidgetTextbox, text, applyOptions(opts))
}

// TextField is a multi-line Textbox. Enter inserts a newline; clicking
// elsewhere ends the edit.
func (ctx *Context) TextField(label string, text *string, opts ...Option) bool {
	return ctx.textWidget(label, WidgetTextField, text, applyOptions(opts))
}

// Submitted reports whether the text input declared last was confirmed with
// Enter.
func (ctx *Context) Submitted() bool {
	return ctx.submitted
}

func (ctx *Context) textWidget(label string, typ WidgetType, text *string, o options) bool {
	w := ctx.declare(label, typ, o)
	changed := false
	if w.takeInput(InputValueUpdated) {
		*text = w.Props.Text
		changed = true
	} else if w.Props.Text != *text {
		w.Props.Text = *text
		if ctx.feedback.EditingText == w.ID {
			ctx.editor.Begin(*text)
		}
	}
	ctx.submitted = w.takeInput(InputSubmitted)
	w.takeInput(InputClicked | InputDoubleClicked)
	w.Props.TextColor = GetOpt(o, OptTextColor)

	pad := ctx.theme.Float(typ, StateNormal, PropPadding)
	lh := ctx.lineHeight(typ)
	if typ == WidgetTextField {
		lines := GetOpt(o, OptLines)
		if lines <= 0 {
			lines = defaultTextFieldLines
		}
		w.Layout.Intrinsic = Vec2{X: defaultTextFieldWidth, Y: lh*float32(lines) + pad*2}
	} else {
		w.Layout.Intrinsic = Vec2{X: defaultTextboxWidth, Y: lh + pad*2}
	}
	return changed
}

// beginTextEdit hands the editor to w.
func (ctx *Context) beginTextEdit(w *Widget) {
	fb := &ctx.feedback
	if fb.EditingText == w.ID {
		return
	}
	ctx.endTextEdit(false)
	if ctx.editor == nil {
		ctx.editor = ctx.newEditor()
	}
	ctx.editor.Begin(w.Props.Text)
	fb.EditingText = w.ID
	st := ctx.texts.Get(w.ID, textState{})
	st.Original = w.Props.Text
	st.BlinkStart = ctx.nowMs
	ctx.notifyIME(w)
	if guiVerbose() {
		ctx.log.Debug("text edit started", "id", w.ID, "label", w.Props.Text)
	}
}

// endTextEdit takes the editor away from the widget being edited. With
// cancel the widget's text is restored to what it was when editing began.
func (ctx *Context) endTextEdit(cancel bool) {
	fb := &ctx.feedback
	id := fb.EditingText
	if id == 0 {
		return
	}
	fb.EditingText = 0
	if w, ok := ctx.arena.get(id); ok {
		if st := ctx.texts.GetIfExists(id); cancel && st != nil && w.Props.Text != st.Original {
			w.Props.Text = st.Original
			ctx.raise(w, InputValueUpdated)
		}
		ctx.dispatch(w, &uiEvent{kind: evFocusLost})
	}
	ctx.editor.End()
	ctx.deps.IME.SetInputMethodEditor(IMEInfo{})
	if guiVerbose() {
		ctx.log.Debug("text edit ended", "id", id, "cancel", cancel)
	}
}

// syncText copies the editor text back into the widget after an edit.
func (ctx *Context) syncText(w *Widget, changed bool) {
	st := ctx.texts.Get(w.ID, textState{})
	st.BlinkStart = ctx.nowMs
	if changed {
		if text := ctx.editor.Text(); text != w.Props.Text {
			w.Props.Text = text
			ctx.raise(w, InputValueUpdated)
		}
	}
	ctx.notifyIME(w)
}

// notifyIME tells the host where the caret of w is.
func (ctx *Context) notifyIME(w *Widget) {
	caret := ctx.caretLocal(w)
	caret = caret.Translate(w.Layout.Global.Pos())
	ctx.deps.IME.SetInputMethodEditor(IMEInfo{Active: true, WidgetID: w.ID, Caret: caret})
}

func textInput(ctx *Context, w *Widget, ev *uiEvent) bool {
	multiline := w.Type == WidgetTextField
	editing := ctx.feedback.EditingText == w.ID
	switch ev.kind {
	case evPress:
		extend := editing && ev.mods&ModShift != 0
		ctx.beginTextEdit(w)
		ctx.editor.SetCursor(ctx.caretIndexAt(w, ev.pos), extend)
		ctx.syncText(w, false)
		return true
	case evDrag:
		if !editing {
			return false
		}
		ctx.editor.SetCursor(ctx.caretIndexAt(w, ev.pos), true)
		ctx.syncText(w, false)
		return true
	case evClick:
		if !editing {
			return true
		}
		switch {
		case ev.clicks == 2:
			ctx.editor.SelectWord(ctx.caretIndexAt(w, ev.pos))
		case ev.clicks >= 3:
			ctx.editor.SelectAll()
		}
		return true
	case evRelease:
		return true
	case evKey:
		if !editing {
			return false
		}
		var changed bool
		switch ev.key {
		case KeyEscape:
			ctx.endTextEdit(true)
			return true
		case KeyEnter:
			if !multiline {
				ctx.raise(w, InputSubmitted)
				ctx.endTextEdit(false)
				return true
			}
			changed = ctx.editor.Insert("\n")
		case KeyTab:
			if !multiline {
				ctx.endTextEdit(false)
				return true
			}
			changed = ctx.editor.Insert("\t")
		default:
			changed = ctx.editor.HandleKey(ev.key, ev.mods, multiline, ctx.deps.Clipboard)
		}
		ctx.syncText(w, changed)
		return true
	case evChar:
		if !editing {
			return false
		}
		ch := ev.char
		if ch == utf8.RuneError || !unicode.IsPrint(ch) {
			ch = ' '
		}
		ctx.syncText(w, ctx.editor.Insert(string(ch)))
		return true
	case evWheel:
		if !multiline {
			return false
		}
		st := ctx.texts.Get(w.ID, textState{})
		lh := ctx.lineHeight(w.Type)
		limit := maxf(0, ctx.textContentHeight(w)-ctx.textInner(w).H)
		next := clampf(st.ScrollY-ev.delta.Y*lh*3, 0, limit)
		if next == st.ScrollY {
			return false
		}
		st.ScrollY = next
		return true
	case evFocusLost:
		if st := ctx.texts.GetIfExists(w.ID); st != nil {
			st.ScrollX = 0
		}
		return false
	case evTick:
		return ctx.theme.Bool(w.Type, StateNormal, PropCaretBlink)
	}
	return false
}

// displayText returns the text being shown: the editor buffer while editing.
func (ctx *Context) displayText(w *Widget) string {
	if ctx.feedback.EditingText == w.ID {
		return ctx.editor.Text()
	}
	return w.Props.Text
}

// textInner returns the local text area inside the padding.
func (ctx *Context) textInner(w *Widget) Rect {
	pad := ctx.theme.Float(w.Type, StateNormal, PropPadding)
	size := w.Layout.Local.Size()
	return Rect{X: pad, Y: pad, W: maxf(0, size.X-pad*2), H: maxf(0, size.Y-pad*2)}
}

// textContentHeight is the height of all lines of a text field.
func (ctx *Context) textContentHeight(w *Widget) float32 {
	return float32(strings.Count(ctx.displayText(w), "\n")+1) * ctx.lineHeight(w.Type)
}

// caretLocal returns the caret rectangle in widget-local coordinates.
func (ctx *Context) caretLocal(w *Widget) Rect {
	inner := ctx.textInner(w)
	lh := ctx.lineHeight(w.Type)
	st := ctx.texts.Get(w.ID, textState{})
	text := ctx.displayText(w)
	cursor := len([]rune(text))
	if ctx.feedback.EditingText == w.ID {
		cursor = ctx.editor.Cursor()
	}
	runes := []rune(text)
	start := lineStart(runes, min(cursor, len(runes)))
	line := strings.Count(string(runes[:start]), "\n")
	x := ctx.deps.Measurer.CharacterPosition(string(runes[start:lineEnd(runes, start)]), ctx.fontStyle(w.Type), cursor-start).X
	y := inner.Y + float32(line)*lh - st.ScrollY
	if w.Type == WidgetTextbox {
		y = inner.Y + (inner.H-lh)/2
	}
	return Rect{X: inner.X + x - st.ScrollX, Y: y, W: 1, H: lh}
}

// caretIndexAt maps a global point to the nearest caret index.
func (ctx *Context) caretIndexAt(w *Widget, p Vec2) int {
	inner := ctx.textInner(w)
	st := ctx.texts.Get(w.ID, textState{})
	local := p.Sub(w.Layout.Global.Pos())
	x := local.X - inner.X + st.ScrollX
	runes := []rune(ctx.displayText(w))

	start := 0
	if w.Type == WidgetTextField {
		lh := ctx.lineHeight(w.Type)
		line := int((local.Y - inner.Y + st.ScrollY) / lh)
		for ; line > 0; line-- {
			end := lineEnd(runes, start)
			if end >= len(runes) {
				break
			}
			start = end + 1
		}
	}
	end := lineEnd(runes, start)
	return start + nearestIndex(ctx.deps.Measurer, string(runes[start:end]), ctx.fontStyle(w.Type), x)
}

// nearestIndex returns the caret index in line closest to offset x.
func nearestIndex(m TextMeasurer, line string, style FontStyle, x float32) int {
	n := utf8.RuneCountInString(line)
	prev := m.CharacterPosition(line, style, 0).X
	for i := 1; i <= n; i++ {
		next := m.CharacterPosition(line, style, i).X
		if x < (prev+next)/2 {
			return i - 1
		}
		prev = next
	}
	return n
}

func renderText(ctx *Context, w *Widget, r *Recorder) {
	renderFrame(ctx, w, r)
	editing := ctx.feedback.EditingText == w.ID
	inner := ctx.textInner(w)
	lh := ctx.lineHeight(w.Type)
	style := ctx.fontStyle(w.Type)
	color := ctx.textColor(w)
	st := ctx.texts.Get(w.ID, textState{})
	runes := []rune(ctx.displayText(w))

	selStart, selEnd, hasSel := 0, 0, false
	if editing {
		selStart, selEnd, hasSel = ctx.editor.Selection()
		ctx.scrollCaretIntoView(w, st, inner)
	} else {
		st.ScrollX = 0
	}

	r.PushClip(inner)
	y := inner.Y - st.ScrollY
	if w.Type == WidgetTextbox {
		y = inner.Y + (inner.H-lh)/2
	}
	selection := ctx.theme.Color(w.Type, StateNormal, PropSelectionColor)
	for start := 0; ; {
		end := lineEnd(runes, start)
		if y+lh >= inner.Y && y <= inner.Y+inner.H {
			run := TextRun{Text: string(runes[start:end]), Style: style, Color: color}
			if hasSel && selStart < end+1 && selEnd > start {
				run.Ranges = []TextStyleRange{{
					Start:      max(selStart, start) - start,
					End:        min(selEnd, end) - start,
					Color:      color,
					Background: selection,
				}}
			}
			r.Text(Vec2{X: inner.X - st.ScrollX, Y: y}, run)
		}
		if end >= len(runes) {
			break
		}
		start = end + 1
		y += lh
	}

	if editing {
		blink := ctx.theme.Bool(w.Type, StateNormal, PropCaretBlink)
		period := ctx.cfg.CaretBlinkMs
		phase := (ctx.nowMs - st.BlinkStart) / period
		if !blink || phase%2 == 0 {
			r.Rect(ctx.caretLocal(w), ctx.theme.Color(w.Type, StateFocused, PropCaretColor))
		}
		if blink {
			r.WakeAt(st.BlinkStart + (phase+1)*period)
		}
	}
	r.PopClip()
}

// scrollCaretIntoView adjusts the text scroll so the caret is inside inner.
func (ctx *Context) scrollCaretIntoView(w *Widget, st *textState, inner Rect) {
	caret := ctx.caretLocal(w)
	if right := caret.X + caret.W; right > inner.X+inner.W {
		st.ScrollX += right - (inner.X + inner.W)
	}
	if caret.X < inner.X {
		st.ScrollX = maxf(0, st.ScrollX-(inner.X-caret.X))
	}
	if w.Type != WidgetTextField {
		return
	}
	caret = ctx.caretLocal(w)
	if bottom := caret.Y + caret.H; bottom > inner.Y+inner.H {
		st.ScrollY += bottom - (inner.Y + inner.H)
	}
	if caret.Y < inner.Y {
		st.ScrollY = maxf(0, st.ScrollY-(inner.Y-caret.Y))
	}
}
