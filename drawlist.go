package gui

import "sync"

// CommandKind tags a render command.
type CommandKind uint8

const (
	CmdBeginFrame CommandKind = iota
	CmdEndFrame
	CmdRect
	CmdBorder
	CmdText
	CmdImage
	CmdLine
	CmdPushClip
	CmdPopClip
)

var commandKindNames = [...]string{
	CmdBeginFrame: "begin_frame",
	CmdEndFrame:   "end_frame",
	CmdRect:       "rect",
	CmdBorder:     "border",
	CmdText:       "text",
	CmdImage:      "image",
	CmdLine:       "line",
	CmdPushClip:   "push_clip",
	CmdPopClip:    "pop_clip",
}

func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "unknown"
}

// TextStyleRange recolors a rune range of a text run. Background is drawn
// behind the range when non-transparent (selection highlight).
type TextStyleRange struct {
	Start, End int // rune indices, End exclusive
	Color      uint32
	Background uint32
}

// TextRun is the payload of a CmdText command.
type TextRun struct {
	Text   string
	Style  FontStyle
	Color  uint32
	Ranges []TextStyleRange
}

// Command is one draw operation in global coordinates.
type Command struct {
	Kind      CommandKind
	WidgetID  ID
	Rect      Rect    // Rect, Border, Text origin/box, Image, PushClip
	Color     uint32  // Rect, Border, Line, Image tint
	Thickness float32 // Border, Line
	From, To  Vec2    // Line
	Text      TextRun // Text
	Image     ImageRef
}

// commandListPool provides efficient reuse of CommandList buffers.
// This avoids allocations on every frame, which is critical for
// immediate-mode UI where we rebuild the entire command list each frame.
var commandListPool = sync.Pool{
	New: func() any {
		return &CommandList{
			Commands:  make([]Command, 0, 1024),
			clipStack: make([]Rect, 0, 8),
		}
	},
}

// AcquireCommandList gets a CommandList from the pool.
// Call ReleaseCommandList when done to return it.
func AcquireCommandList() *CommandList {
	cl := commandListPool.Get().(*CommandList)
	cl.Clear()
	return cl
}

// ReleaseCommandList returns a CommandList to the pool for reuse.
func ReleaseCommandList(cl *CommandList) {
	if cl != nil {
		commandListPool.Put(cl)
	}
}

// CommandList accumulates render commands for a frame in paint order.
type CommandList struct {
	Commands []Command

	clipStack []Rect // effective (intersected) clip rectangles
	pushes    int
	pops      int
}

// Clear resets the list for a new frame.
// Retains allocated capacity to avoid reallocations.
func (cl *CommandList) Clear() {
	for i := range cl.Commands {
		cl.Commands[i].Text.Ranges = nil
	}
	cl.Commands = cl.Commands[:0]
	cl.clipStack = cl.clipStack[:0]
	cl.pushes = 0
	cl.pops = 0
}

// Len returns the number of buffered commands.
func (cl *CommandList) Len() int {
	return len(cl.Commands)
}

// truncate drops buffered commands after a flush but keeps the clip stack,
// which still describes the open clip scopes of the frame.
func (cl *CommandList) truncate() {
	for i := range cl.Commands {
		cl.Commands[i].Text.Ranges = nil
	}
	cl.Commands = cl.Commands[:0]
}

// CurrentClip returns the effective clip rectangle, or ok=false when no clip
// is pushed.
func (cl *CommandList) CurrentClip() (Rect, bool) {
	if n := len(cl.clipStack); n > 0 {
		return cl.clipStack[n-1], true
	}
	return Rect{}, false
}

// ClipDepth returns the number of open clip scopes.
func (cl *CommandList) ClipDepth() int {
	return len(cl.clipStack)
}

// add appends a command.
func (cl *CommandList) add(cmd Command) {
	cl.Commands = append(cl.Commands, cmd)
}

// PushClipRect pushes a clip rectangle. The emitted command carries the
// intersection with the enclosing clip so renderers can apply it directly.
func (cl *CommandList) PushClipRect(r Rect) {
	if cur, ok := cl.CurrentClip(); ok {
		r = r.Intersect(cur)
	}
	cl.clipStack = append(cl.clipStack, r)
	cl.pushes++
	cl.add(Command{Kind: CmdPushClip, Rect: r})
}

// PopClipRect pops the clip rectangle stack.
func (cl *CommandList) PopClipRect() {
	n := len(cl.clipStack)
	if n == 0 {
		misuse(ErrUnbalancedClip, "pop without push")
	}
	cl.clipStack = cl.clipStack[:n-1]
	cl.pops++
	cl.add(Command{Kind: CmdPopClip})
}

// checkBalanced verifies the clip stack at the end of a frame.
func (cl *CommandList) checkBalanced() {
	if len(cl.clipStack) != 0 || cl.pushes != cl.pops {
		misuse(ErrUnbalancedClip, "%d pushes, %d pops, depth %d", cl.pushes, cl.pops, len(cl.clipStack))
	}
}
