package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyS
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModSuper
)

// EventKind tags an InputEvent.
type EventKind uint8

const (
	EventMouseMove EventKind = iota
	EventMouseButton
	EventMouseWheel
	EventKey
	EventChar
)

// InputEvent is one normalized host input event.
type InputEvent struct {
	Kind   EventKind
	Pos    Vec2        // EventMouseMove
	Button MouseButton // EventMouseButton
	Down   bool        // EventMouseButton, EventKey
	Wheel  Vec2        // EventMouseWheel, in notches
	Key    Key         // EventKey
	Mods   Modifiers   // EventKey
	Char   rune        // EventChar
}

// FrameInput is the queue of events collected by the host since the last
// frame. The host fills it and hands it to Context.SetInput.
type FrameInput struct {
	Events []InputEvent
}

// NewFrameInput creates an empty queue.
func NewFrameInput() *FrameInput {
	return &FrameInput{Events: make([]InputEvent, 0, 32)}
}

// Reset clears the queue and keeps its capacity.
func (f *FrameInput) Reset() {
	f.Events = f.Events[:0]
}

// MouseMove queues a pointer move.
func (f *FrameInput) MouseMove(x, y float32) {
	f.Events = append(f.Events, InputEvent{Kind: EventMouseMove, Pos: Vec2{X: x, Y: y}})
}

// MouseButton queues a button change.
func (f *FrameInput) MouseButton(button MouseButton, down bool) {
	f.Events = append(f.Events, InputEvent{Kind: EventMouseButton, Button: button, Down: down})
}

// MouseWheel queues a wheel movement.
func (f *FrameInput) MouseWheel(x, y float32) {
	f.Events = append(f.Events, InputEvent{Kind: EventMouseWheel, Wheel: Vec2{X: x, Y: y}})
}

// KeyEvent queues a key change. Hosts send repeats as additional down events.
func (f *FrameInput) KeyEvent(key Key, down bool, mods Modifiers) {
	f.Events = append(f.Events, InputEvent{Kind: EventKey, Key: key, Down: down, Mods: mods})
}

// Char queues a typed character.
func (f *FrameInput) Char(ch rune) {
	f.Events = append(f.Events, InputEvent{Kind: EventChar, Char: ch})
}

// InputState is the device state accumulated from input events: what is
// held, where the pointer is, and the wheel and text of the current frame.
// Presses and releases are interpreted by the feedback pass, not here.
type InputState struct {
	MouseX, MouseY float32
	mouseDown      [MouseButtonCount]bool

	// Wheel and text accumulated this frame
	MouseWheelX float32
	MouseWheelY float32
	InputChars  []rune

	keyDown [KeyCount]bool
	Mods    Modifiers
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears the per-frame wheel and text.
func (s *InputState) Reset() {
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// Apply folds one event into the state.
func (s *InputState) Apply(ev InputEvent) {
	switch ev.Kind {
	case EventMouseMove:
		s.MouseX, s.MouseY = ev.Pos.X, ev.Pos.Y
	case EventMouseButton:
		if ev.Button >= 0 && ev.Button < MouseButtonCount {
			s.mouseDown[ev.Button] = ev.Down
		}
	case EventMouseWheel:
		s.MouseWheelX += ev.Wheel.X
		s.MouseWheelY += ev.Wheel.Y
	case EventKey:
		s.Mods = ev.Mods
		if ev.Key >= 0 && ev.Key < KeyCount {
			s.keyDown[ev.Key] = ev.Down
		}
	case EventChar:
		s.InputChars = append(s.InputChars, ev.Char)
	}
}

// MousePos returns the pointer position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MouseDown reports whether a mouse button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseDown[button]
}

// KeyDown reports whether a key is held.
func (s *InputState) KeyDown(key Key) bool {
	return key >= 0 && key < KeyCount && s.keyDown[key]
}

var keyNames = [KeyCount]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyInsert:    "Ins",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyA:         "A",
	KeyC:         "C",
	KeyS:         "S",
	KeyV:         "V",
	KeyX:         "X",
	KeyY:         "Y",
	KeyZ:         "Z",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if k >= 0 && k < KeyCount && keyNames[k] != "" {
		return keyNames[k]
	}
	return "?"
}
