package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/framegui"
)

// GLFWInputAdapter queues GLFW window events as gui input events.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gui.FrameInput
	queued *gui.FrameInput
}

// NewGLFWInputAdapter installs callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  gui.NewFrameInput(),
		queued: gui.NewFrameInput(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Poll returns the events queued since the previous call. Call it after
// glfw.PollEvents and pass the result to Context.SetInput. The returned
// queue is reused by the next Poll.
func (a *GLFWInputAdapter) Poll() *gui.FrameInput {
	a.input, a.queued = a.queued, a.input
	a.queued.Reset()
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	guiKey := glfwKeyToGUIKey(key)
	if guiKey == gui.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.queued.KeyEvent(guiKey, true, glfwModsToGUI(mods))
	case glfw.Release:
		a.queued.KeyEvent(guiKey, false, glfwModsToGUI(mods))
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.queued.Char(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}
	a.queued.MouseButton(guiButton, action == glfw.Press)
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.queued.MouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.queued.MouseMove(float32(xpos), float32(ypos))
}

func glfwModsToGUI(mods glfw.ModifierKey) gui.Modifiers {
	var m gui.Modifiers
	if mods&glfw.ModControl != 0 {
		m |= gui.ModCtrl
	}
	if mods&glfw.ModShift != 0 {
		m |= gui.ModShift
	}
	if mods&glfw.ModAlt != 0 {
		m |= gui.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= gui.ModSuper
	}
	return m
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyTab:
		return gui.KeyTab
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	case glfw.KeyUp:
		return gui.KeyUp
	case glfw.KeyDown:
		return gui.KeyDown
	case glfw.KeyPageUp:
		return gui.KeyPageUp
	case glfw.KeyPageDown:
		return gui.KeyPageDown
	case glfw.KeyHome:
		return gui.KeyHome
	case glfw.KeyEnd:
		return gui.KeyEnd
	case glfw.KeyInsert:
		return gui.KeyInsert
	case glfw.KeyDelete:
		return gui.KeyDelete
	case glfw.KeyBackspace:
		return gui.KeyBackspace
	case glfw.KeySpace:
		return gui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return gui.KeyEnter
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyA:
		return gui.KeyA
	case glfw.KeyC:
		return gui.KeyC
	case glfw.KeyS:
		return gui.KeyS
	case glfw.KeyV:
		return gui.KeyV
	case glfw.KeyX:
		return gui.KeyX
	case glfw.KeyY:
		return gui.KeyY
	case glfw.KeyZ:
		return gui.KeyZ
	case glfw.KeyF1:
		return gui.KeyF1
	case glfw.KeyF2:
		return gui.KeyF2
	case glfw.KeyF3:
		return gui.KeyF3
	case glfw.KeyF4:
		return gui.KeyF4
	case glfw.KeyF5:
		return gui.KeyF5
	case glfw.KeyF6:
		return gui.KeyF6
	case glfw.KeyF7:
		return gui.KeyF7
	case glfw.KeyF8:
		return gui.KeyF8
	case glfw.KeyF9:
		return gui.KeyF9
	case glfw.KeyF10:
		return gui.KeyF10
	case glfw.KeyF11:
		return gui.KeyF11
	case glfw.KeyF12:
		return gui.KeyF12
	default:
		return gui.KeyNone
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}

// GLFWClipboard is a gui.ClipboardProvider over the GLFW clipboard.
type GLFWClipboard struct {
	Window *glfw.Window
}

// GetText returns the clipboard text, or "" when it holds no text.
func (c GLFWClipboard) GetText() string {
	return c.Window.GetClipboardString()
}

// SetText replaces the clipboard text.
func (c GLFWClipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}

// GLFWClock is a gui.Clock over the GLFW timer.
type GLFWClock struct{}

func (GLFWClock) Milliseconds() uint64 {
	return uint64(glfw.GetTime() * 1000)
}

func (GLFWClock) PerformanceCounter() uint64 {
	return glfw.GetTimerValue()
}

func (GLFWClock) PerformanceFrequency() uint64 {
	return glfw.GetTimerFrequency()
}
