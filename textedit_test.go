package gui

import "testing"

func TestTextEditorWordNavigationAndSelection(t *testing.T) {
	e := NewTextEditor()
	e.Begin("hello world")

	if e.Cursor() != 11 {
		t.Fatalf("Expected caret at the end, got %d", e.Cursor())
	}
	e.HandleKey(KeyLeft, ModCtrl, false, nil)
	if e.Cursor() != 6 {
		t.Errorf("Expected Ctrl+Left to stop at the word start 6, got %d", e.Cursor())
	}
	e.HandleKey(KeyEnd, ModShift, false, nil)
	start, end, ok := e.Selection()
	if !ok || start != 6 || end != 11 {
		t.Errorf("Expected selection [6, 11), got [%d, %d) ok=%v", start, end, ok)
	}
	e.HandleKey(KeyLeft, 0, false, nil)
	if _, _, ok := e.Selection(); ok || e.Cursor() != 6 {
		t.Errorf("Expected Left to collapse to the selection start, caret %d", e.Cursor())
	}
}

func TestTextEditorClipboardAndUndo(t *testing.T) {
	clip := &MemoryClipboard{}
	e := NewTextEditor()
	e.Begin("hello world")
	e.SelectWord(7)

	e.HandleKey(KeyC, ModCtrl, false, clip)
	if got := clip.GetText(); got != "world" {
		t.Errorf("Expected %q on the clipboard, got %q", "world", got)
	}

	if !e.HandleKey(KeyBackspace, 0, false, clip) {
		t.Error("Expected Backspace on a selection to change the text")
	}
	if got := e.Text(); got != "hello " {
		t.Errorf("Expected %q after deleting the selection, got %q", "hello ", got)
	}

	if !e.HandleKey(KeyZ, ModCtrl, false, clip) || e.Text() != "hello world" {
		t.Errorf("Expected undo to restore %q, got %q", "hello world", e.Text())
	}
	if !e.HandleKey(KeyY, ModCtrl, false, clip) || e.Text() != "hello " {
		t.Errorf("Expected redo to reapply the delete, got %q", e.Text())
	}
}

func TestTextEditorPasteFlattensSingleLine(t *testing.T) {
	clip := &MemoryClipboard{}
	clip.SetText("a\nb")

	single := NewTextEditor()
	single.Begin("")
	single.HandleKey(KeyV, ModCtrl, false, clip)
	if got := single.Text(); got != "a b" {
		t.Errorf("Expected newlines flattened to %q, got %q", "a b", got)
	}

	multi := NewTextEditor()
	multi.Begin("")
	multi.HandleKey(KeyV, ModCtrl, true, clip)
	if got := multi.Text(); got != "a\nb" {
		t.Errorf("Expected newlines kept in a text field, got %q", got)
	}
}

func TestTextEditorLineMovement(t *testing.T) {
	e := NewTextEditor()
	e.Begin("ab\ncd")

	e.HandleKey(KeyUp, 0, true, nil)
	if e.Cursor() != 2 {
		t.Errorf("Expected Up to keep column 2 on the first line, got %d", e.Cursor())
	}
	e.HandleKey(KeyDown, 0, true, nil)
	if e.Cursor() != 5 {
		t.Errorf("Expected Down to return to 5, got %d", e.Cursor())
	}
	e.HandleKey(KeyHome, 0, true, nil)
	if e.Cursor() != 3 {
		t.Errorf("Expected Home to go to the line start 3, got %d", e.Cursor())
	}
	e.HandleKey(KeyHome, ModCtrl, true, nil)
	if e.Cursor() != 0 {
		t.Errorf("Expected Ctrl+Home to go to the text start, got %d", e.Cursor())
	}
	// Up and Down do nothing in a single-line input.
	e.HandleKey(KeyDown, 0, false, nil)
	if e.Cursor() != 0 {
		t.Errorf("Expected Down to be ignored without multiline, got %d", e.Cursor())
	}
}

func TestTextEditorInsertReplacesSelection(t *testing.T) {
	e := NewTextEditor()
	e.Begin("héllo")
	e.SetCursor(1, false)
	e.SetCursor(2, true)

	if !e.Insert("e") {
		t.Fatal("Expected Insert to change the text")
	}
	if got := e.Text(); got != "hello" {
		t.Errorf("Expected %q, got %q", "hello", got)
	}
	if e.Cursor() != 2 {
		t.Errorf("Expected caret after the inserted rune, got %d", e.Cursor())
	}
	if e.Insert("") {
		t.Error("Expected an empty insert to be a no-op")
	}
}

func TestTextEditorDeleteAtEdges(t *testing.T) {
	e := NewTextEditor()
	e.Begin("ab")

	if e.HandleKey(KeyDelete, 0, false, nil) {
		t.Error("Expected Delete at the end to do nothing")
	}
	e.SetCursor(0, false)
	if e.HandleKey(KeyBackspace, 0, false, nil) {
		t.Error("Expected Backspace at the start to do nothing")
	}
	if !e.HandleKey(KeyDelete, 0, false, nil) || e.Text() != "b" {
		t.Errorf("Expected Delete to remove the next rune, got %q", e.Text())
	}
}
