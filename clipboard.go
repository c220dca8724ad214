package gui

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs.
//
// For GLFW:
//
//	type GLFWClipboard struct {
//	    window *glfw.Window
//	}
//
//	func (c *GLFWClipboard) GetText() string {
//	    return c.window.GetClipboardString()
//	}
//
//	func (c *GLFWClipboard) SetText(text string) {
//	    c.window.SetClipboardString(text)
//	}
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// MemoryClipboard is an in-process clipboard, used when the host has none.
type MemoryClipboard struct {
	text string
}

// GetText returns the stored text.
func (c *MemoryClipboard) GetText() string { return c.text }

// SetText stores text.
func (c *MemoryClipboard) SetText(text string) { c.text = text }

// ClipboardText retrieves text from the host clipboard.
func (ctx *Context) ClipboardText() string {
	return ctx.deps.Clipboard.GetText()
}

// SetClipboardText copies text to the host clipboard.
func (ctx *Context) SetClipboardText(text string) {
	ctx.deps.Clipboard.SetText(text)
}
