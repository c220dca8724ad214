package gui

import "time"

// Renderer drains recorded render commands to pixels.
// The list is only valid during the call.
type Renderer interface {
	Render(cmds *CommandList) error
}

// IMEInfo tells the host where text is being edited.
type IMEInfo struct {
	Active   bool
	WidgetID ID
	Caret    Rect // global caret rectangle, for candidate window placement
}

// InputMethodEditor is notified when text editing starts, moves or ends.
type InputMethodEditor interface {
	SetInputMethodEditor(info IMEInfo)
}

// Clock provides time to the engine.
type Clock interface {
	Milliseconds() uint64
	PerformanceCounter() uint64
	PerformanceFrequency() uint64
}

// WindowSettings is the persisted geometry of a window.
type WindowSettings struct {
	Pos  Vec2
	Size Vec2
}

// SettingsStore persists window geometry between runs.
type SettingsStore interface {
	LoadWindow(id ID) (WindowSettings, bool, error)
	SaveWindow(id ID, s WindowSettings) error
}

// Dependencies are the host collaborators of a Context. Measurer is
// required; the others fall back to in-process defaults.
type Dependencies struct {
	Measurer  TextMeasurer
	Renderer  Renderer
	Clipboard ClipboardProvider
	IME       InputMethodEditor
	Clock     Clock
}

// systemClock reads the process monotonic clock.
type systemClock struct {
	start time.Time
}

func newSystemClock() *systemClock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Milliseconds() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

func (c *systemClock) PerformanceCounter() uint64 {
	return uint64(time.Since(c.start).Nanoseconds())
}

func (c *systemClock) PerformanceFrequency() uint64 {
	return uint64(time.Second)
}

// nopIME ignores IME requests.
type nopIME struct{}

func (nopIME) SetInputMethodEditor(IMEInfo) {}

// nopRenderer discards commands.
type nopRenderer struct{}

func (nopRenderer) Render(*CommandList) error { return nil }
