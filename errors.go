package gui

import (
	"errors"
	"fmt"
)

var (
	// ErrWidgetNotFound is returned when a widget id was never declared.
	ErrWidgetNotFound = errors.New("gui: widget not found")

	// ErrNotInFrame is raised when a declaration happens outside BeginFrame/EndFrame.
	ErrNotInFrame = errors.New("gui: call outside of a frame")

	// ErrUnbalancedScope is raised when an End* call does not match the open scope.
	ErrUnbalancedScope = errors.New("gui: unbalanced begin/end scope")

	// ErrUnbalancedClip is raised when push/pop clip commands do not pair up.
	ErrUnbalancedClip = errors.New("gui: unbalanced clip stack")

	// ErrIDCollision is raised in debug mode when two declaration paths share an id.
	ErrIDCollision = errors.New("gui: widget id collision")
)

// misuse aborts the frame. Misuse errors mean the call sequence is broken and
// cannot be continued safely.
func misuse(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
