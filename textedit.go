package gui

// TextEditor is the text-edit collaborator of text inputs. The engine owns
// one editor and hands it to whichever widget is being edited; it only
// talks to this interface. Indices are in runes.
type TextEditor interface {
	// Begin starts editing text with the caret at the end.
	Begin(text string)
	// End drops the edit buffers.
	End()

	Text() string
	Cursor() int
	// Selection returns the ordered selected range, ok=false when empty.
	Selection() (start, end int, ok bool)

	// SetCursor moves the caret, extending the selection when extend is set.
	SetCursor(index int, extend bool)
	SelectAll()
	// SelectWord selects the word around index.
	SelectWord(index int)

	// HandleKey applies an editing key and reports whether the text changed.
	HandleKey(key Key, mods Modifiers, multiline bool, clipboard ClipboardProvider) bool
	// Insert replaces the selection with s and reports whether the text changed.
	Insert(s string) bool
}

const maxUndoSize = 50

// textEditor is the default TextEditor: a rune buffer with a caret, an
// anchored selection and an undo stack.
type textEditor struct {
	runes []rune
	// Cursor position (in runes, not bytes)
	cursor int
	// Selection range. anchor is where the selection started, the caret is
	// the other end. -1 means no selection.
	anchor int

	// Undo/redo stack
	undoStack []string
	undoIndex int
}

// NewTextEditor returns the default editor.
func NewTextEditor() TextEditor {
	return &textEditor{anchor: -1}
}

func (e *textEditor) Begin(text string) {
	e.runes = append(e.runes[:0], []rune(text)...)
	e.cursor = len(e.runes)
	e.anchor = -1
	e.undoStack = e.undoStack[:0]
	e.undoIndex = 0
}

func (e *textEditor) End() {
	e.runes = e.runes[:0]
	e.cursor = 0
	e.anchor = -1
	e.undoStack = e.undoStack[:0]
	e.undoIndex = 0
}

func (e *textEditor) Text() string { return string(e.runes) }

func (e *textEditor) Cursor() int { return e.cursor }

// hasSelection returns true if there's an active text selection.
func (e *textEditor) hasSelection() bool {
	return e.anchor >= 0 && e.anchor != e.cursor
}

func (e *textEditor) Selection() (start, end int, ok bool) {
	if !e.hasSelection() {
		return 0, 0, false
	}
	if e.anchor < e.cursor {
		return e.anchor, e.cursor, true
	}
	return e.cursor, e.anchor, true
}

func (e *textEditor) clearSelection() {
	e.anchor = -1
}

func (e *textEditor) SetCursor(index int, extend bool) {
	index = max(0, min(index, len(e.runes)))
	if extend {
		if e.anchor < 0 {
			e.anchor = e.cursor
		}
	} else {
		e.clearSelection()
	}
	e.cursor = index
}

func (e *textEditor) SelectAll() {
	e.anchor = 0
	e.cursor = len(e.runes)
}

func (e *textEditor) SelectWord(index int) {
	index = max(0, min(index, len(e.runes)))
	start, end := index, index
	for start > 0 && !isWhitespace(e.runes[start-1]) {
		start--
	}
	for end < len(e.runes) && !isWhitespace(e.runes[end]) {
		end++
	}
	e.anchor = start
	e.cursor = end
}

// pushUndo saves the current text to the undo stack.
// Call this before making changes to the text.
func (e *textEditor) pushUndo() {
	text := string(e.runes)
	// If we're not at the end of the stack, truncate forward history
	if e.undoIndex < len(e.undoStack) {
		e.undoStack = e.undoStack[:e.undoIndex]
	}
	if n := len(e.undoStack); n > 0 && e.undoStack[n-1] == text {
		return
	}
	e.undoStack = append(e.undoStack, text)
	e.undoIndex = len(e.undoStack)
	if len(e.undoStack) > maxUndoSize {
		e.undoStack = e.undoStack[1:]
		e.undoIndex--
	}
}

// undo restores the previous text state.
func (e *textEditor) undo() bool {
	// Save current state if at end of stack
	if e.undoIndex == len(e.undoStack) && len(e.undoStack) > 0 {
		if cur := string(e.runes); e.undoStack[len(e.undoStack)-1] != cur {
			e.undoStack = append(e.undoStack, cur)
		}
	}
	if e.undoIndex == 0 {
		return false
	}
	e.undoIndex--
	e.restore(e.undoStack[e.undoIndex])
	return true
}

// redo moves forward in the undo stack.
func (e *textEditor) redo() bool {
	if e.undoIndex >= len(e.undoStack)-1 {
		return false
	}
	e.undoIndex++
	e.restore(e.undoStack[e.undoIndex])
	return true
}

func (e *textEditor) restore(text string) {
	e.runes = append(e.runes[:0], []rune(text)...)
	e.cursor = len(e.runes)
	e.clearSelection()
}

// deleteSelection removes the selected runes.
func (e *textEditor) deleteSelection() bool {
	start, end, ok := e.Selection()
	if !ok {
		return false
	}
	e.pushUndo()
	e.runes = append(e.runes[:start], e.runes[end:]...)
	e.cursor = start
	e.clearSelection()
	return true
}

func (e *textEditor) Insert(s string) bool {
	if s == "" {
		return false
	}
	e.deleteSelection()
	e.pushUndo()
	ins := []rune(s)
	e.runes = append(e.runes[:e.cursor], append(ins, e.runes[e.cursor:]...)...)
	e.cursor += len(ins)
	e.clearSelection()
	return true
}

func (e *textEditor) HandleKey(key Key, mods Modifiers, multiline bool, clipboard ClipboardProvider) bool {
	ctrl := mods&ModCtrl != 0
	shift := mods&ModShift != 0

	if ctrl {
		switch key {
		case KeyA:
			e.SelectAll()
			return false
		case KeyC:
			if start, end, ok := e.Selection(); ok && clipboard != nil {
				clipboard.SetText(string(e.runes[start:end]))
			}
			return false
		case KeyX:
			start, end, ok := e.Selection()
			if !ok {
				return false
			}
			if clipboard != nil {
				clipboard.SetText(string(e.runes[start:end]))
			}
			return e.deleteSelection()
		case KeyV:
			if clipboard == nil {
				return false
			}
			text := clipboard.GetText()
			if !multiline {
				text = singleLine(text)
			}
			return e.Insert(text)
		case KeyZ:
			if shift {
				return e.redo()
			}
			return e.undo()
		case KeyY:
			return e.redo()
		}
	}

	switch key {
	case KeyLeft:
		pos := e.cursor
		if e.hasSelection() && !shift {
			pos, _, _ = e.Selection()
		} else if pos > 0 {
			if ctrl {
				pos = findWordBoundaryLeft(e.runes, pos)
			} else {
				pos--
			}
		}
		e.SetCursor(pos, shift)
	case KeyRight:
		pos := e.cursor
		if e.hasSelection() && !shift {
			_, pos, _ = e.Selection()
		} else if pos < len(e.runes) {
			if ctrl {
				pos = findWordBoundaryRight(e.runes, pos)
			} else {
				pos++
			}
		}
		e.SetCursor(pos, shift)
	case KeyUp:
		if multiline {
			e.SetCursor(e.lineAbove(), shift)
		}
	case KeyDown:
		if multiline {
			e.SetCursor(e.lineBelow(), shift)
		}
	case KeyHome:
		if multiline && !ctrl {
			e.SetCursor(lineStart(e.runes, e.cursor), shift)
		} else {
			e.SetCursor(0, shift)
		}
	case KeyEnd:
		if multiline && !ctrl {
			e.SetCursor(lineEnd(e.runes, e.cursor), shift)
		} else {
			e.SetCursor(len(e.runes), shift)
		}
	case KeyBackspace:
		if e.deleteSelection() {
			return true
		}
		if e.cursor == 0 {
			return false
		}
		e.pushUndo()
		e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
		e.cursor--
		return true
	case KeyDelete:
		if e.deleteSelection() {
			return true
		}
		if e.cursor >= len(e.runes) {
			return false
		}
		e.pushUndo()
		e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
		return true
	}
	return false
}

// lineAbove returns the caret index one line up, keeping the column.
func (e *textEditor) lineAbove() int {
	start := lineStart(e.runes, e.cursor)
	if start == 0 {
		return 0
	}
	col := e.cursor - start
	prev := lineStart(e.runes, start-1)
	return min(prev+col, start-1)
}

// lineBelow returns the caret index one line down, keeping the column.
func (e *textEditor) lineBelow() int {
	end := lineEnd(e.runes, e.cursor)
	if end >= len(e.runes) {
		return len(e.runes)
	}
	col := e.cursor - lineStart(e.runes, e.cursor)
	next := end + 1
	return min(next+col, lineEnd(e.runes, next))
}

// lineStart returns the index of the first rune of the line containing pos.
func lineStart(runes []rune, pos int) int {
	for pos > 0 && runes[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the index of the newline ending the line containing pos,
// or len(runes) for the last line.
func lineEnd(runes []rune, pos int) int {
	for pos < len(runes) && runes[pos] != '\n' {
		pos++
	}
	return pos
}

// singleLine flattens pasted text for single-line inputs.
func singleLine(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r == '\n' || r == '\r' {
			out[i] = ' '
		}
	}
	return string(out)
}

// findWordBoundaryLeft finds the start of the word to the left of pos.
func findWordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	// Skip whitespace
	for pos > 0 && isWhitespace(runes[pos]) {
		pos--
	}
	// Find start of word
	for pos > 0 && !isWhitespace(runes[pos-1]) {
		pos--
	}
	return pos
}

// findWordBoundaryRight finds the end of the word to the right of pos.
func findWordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	if pos >= n {
		return n
	}
	// Skip current word
	for pos < n && !isWhitespace(runes[pos]) {
		pos++
	}
	// Skip whitespace
	for pos < n && isWhitespace(runes[pos]) {
		pos++
	}
	return pos
}

// isWhitespace returns true if the rune is a whitespace character.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
