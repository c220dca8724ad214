package gui

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

// testMeasurer draws every rune as an 8x16 cell at the default font size.
var testMeasurer = MonospaceMeasurer{CharWidth: 8, CharHeight: 16, BaseSize: 16}

// fakeClock is advanced by hand.
type fakeClock struct {
	ms uint64
}

func (c *fakeClock) Milliseconds() uint64         { return c.ms }
func (c *fakeClock) PerformanceCounter() uint64   { return c.ms * 1_000_000 }
func (c *fakeClock) PerformanceFrequency() uint64 { return 1_000_000_000 }

// recordingRenderer keeps a copy of every command it was handed.
type recordingRenderer struct {
	calls    int
	commands []Command
	err      error
}

func (r *recordingRenderer) Render(cl *CommandList) error {
	r.calls++
	r.commands = append(r.commands, cl.Commands...)
	return r.err
}

func (r *recordingRenderer) count(kind CommandKind) int {
	n := 0
	for _, c := range r.commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext returns an 800x600 context with a monospace measurer and a
// recording renderer.
func newTestContext(t *testing.T, opts ...ContextOption) (*Context, *recordingRenderer, *fakeClock) {
	t.Helper()
	rec := &recordingRenderer{}
	clock := &fakeClock{ms: 1000}
	opts = append([]ContextOption{WithLogger(quietLogger())}, opts...)
	ctx, err := New(Dependencies{Measurer: testMeasurer, Renderer: rec, Clock: clock}, opts...)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	ctx.SetScreenSize(800, 600)
	return ctx, rec, clock
}

// runFrame queues in (if any) and runs one frame around body.
func runFrame(ctx *Context, in *FrameInput, body func()) FrameResult {
	if in != nil {
		ctx.SetInput(in)
	}
	ctx.BeginFrame()
	body()
	return ctx.EndFrame()
}

// clickAt moves the pointer to (x, y) and clicks the left button.
func clickAt(x, y float32) *FrameInput {
	in := NewFrameInput()
	in.MouseMove(x, y)
	in.MouseButton(MouseButtonLeft, true)
	in.MouseButton(MouseButtonLeft, false)
	return in
}

// dragFrom presses at from, moves to to and releases there.
func dragFrom(from, to Vec2) *FrameInput {
	in := NewFrameInput()
	in.MouseMove(from.X, from.Y)
	in.MouseButton(MouseButtonLeft, true)
	in.MouseMove(to.X, to.Y)
	in.MouseButton(MouseButtonLeft, false)
	return in
}

// expectPanic runs fn and checks that it panics with an error wrapping target.
func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic with %v, got none", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("Expected panic with %v, got %v", target, r)
		}
	}()
	fn()
}
