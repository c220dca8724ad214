package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mouseDownAt(x, y float32) *FrameInput {
	in := NewFrameInput()
	in.MouseMove(x, y)
	in.MouseButton(MouseButtonLeft, true)
	return in
}

func mouseUp() *FrameInput {
	in := NewFrameInput()
	in.MouseButton(MouseButtonLeft, false)
	return in
}

func mouseUpAt(x, y float32) *FrameInput {
	in := NewFrameInput()
	in.MouseMove(x, y)
	in.MouseButton(MouseButtonLeft, false)
	return in
}

func TestButtonClickAcrossFrames(t *testing.T) {
	tests := []struct {
		name   string
		inputs []*FrameInput
		want   []bool
	}{
		{
			name:   "down and up in one frame",
			inputs: []*FrameInput{nil, clickAt(10, 10), nil, nil, nil},
			want:   []bool{false, false, true, false, false},
		},
		{
			name:   "down then up on the next frame",
			inputs: []*FrameInput{nil, mouseDownAt(10, 10), mouseUp(), nil, nil},
			want:   []bool{false, false, false, true, false},
		},
		{
			name:   "held for a frame before release",
			inputs: []*FrameInput{mouseDownAt(10, 10), nil, mouseUp(), nil, nil},
			want:   []bool{false, false, false, true, false},
		},
		{
			name:   "released off the button",
			inputs: []*FrameInput{nil, mouseDownAt(10, 10), mouseUpAt(300, 300), nil, nil},
			want:   []bool{false, false, false, false, false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := newTestContext(t)

			var results []bool
			for _, in := range tt.inputs {
				runFrame(ctx, in, func() {
					results = append(results, ctx.Button("OK"))
				})
			}

			if diff := cmp.Diff(tt.want, results); diff != "" {
				t.Errorf("Button() results mismatch (-want +got):\n%s", diff)
			}
			if fb := ctx.Feedback(); fb.Pressed != 0 {
				t.Errorf("Expected no pressed widget after release, got %s", fb.Pressed)
			}
		})
	}
}

func TestDisabledButtonIgnoresClicks(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	clicked := false
	for _, in := range []*FrameInput{nil, clickAt(10, 10), nil} {
		runFrame(ctx, in, func() {
			if ctx.Button("OK", WithDisabled(true)) {
				clicked = true
			}
		})
	}

	if clicked {
		t.Error("Expected disabled button to never report a click")
	}
	if fb := ctx.Feedback(); fb.Pressed != 0 {
		t.Errorf("Expected no pressed widget, got %s", fb.Pressed)
	}
}

func TestReleaseOutsideCancelsClick(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	clicked := false
	for _, in := range []*FrameInput{nil, dragFrom(Vec2{X: 10, Y: 10}, Vec2{X: 300, Y: 300}), nil} {
		runFrame(ctx, in, func() {
			if ctx.Button("OK") {
				clicked = true
			}
		})
	}

	if clicked {
		t.Error("Expected a release away from the button to cancel the click")
	}
}

func TestCheckboxWritesBackOnce(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	grid := false
	var changed []bool
	for _, in := range []*FrameInput{nil, clickAt(8, 8), nil} {
		runFrame(ctx, in, func() {
			changed = append(changed, ctx.Checkbox("Grid", &grid))
		})
	}

	if diff := cmp.Diff([]bool{false, false, true}, changed); diff != "" {
		t.Errorf("Checkbox() results mismatch (-want +got):\n%s", diff)
	}
	if !grid {
		t.Error("Expected the click to set the bound value")
	}

	// The caller's value wins when nobody clicks.
	grid = false
	runFrame(ctx, nil, func() { ctx.Checkbox("Grid", &grid) })
	if grid {
		t.Error("Expected the caller's value to be kept without input")
	}
}

func TestTopWindowTakesInput(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var back, front ID
	body := func() {
		back = ctx.GetID("Back")
		ctx.Window("Back", WithPosition(0, 0), WithSize(200, 200))(func() {})
		front = ctx.GetID("Front")
		ctx.Window("Front", WithPosition(100, 100), WithSize(200, 200))(func() {})
	}
	runFrame(ctx, nil, body)

	steps := []struct {
		x, y float32
		want ID
	}{
		{150, 150, front}, // overlap, front is on top
		{50, 50, back},    // only back, raises it
		{150, 150, back},  // overlap, back is on top now
	}
	for i, s := range steps {
		runFrame(ctx, clickAt(s.x, s.y), body)
		if got := ctx.Feedback().ActiveWindow; got != s.want {
			t.Errorf("step %d: Expected active window %s, got %s", i, s.want, got)
		}
	}
}

func TestScrollbarThumbDrag(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	value := 0.0
	changed := false
	body := func() {
		if ctx.Scrollbar("s", &value, 0, 100, WithHeight(200)) {
			changed = true
		}
	}
	runFrame(ctx, nil, body)
	// Buttons take 12px at each end, the thumb is 16px long, so the thumb
	// travels 200-24-16 = 160px across the range.
	runFrame(ctx, dragFrom(Vec2{X: 6, Y: 20}, Vec2{X: 6, Y: 100}), body)
	runFrame(ctx, nil, body)

	if !changed {
		t.Error("Expected Scrollbar() to report the change")
	}
	if value != 50 {
		t.Errorf("Expected value 50 after dragging half the travel, got %v", value)
	}
}

func TestScrollbarArrowSteps(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	value := 50.0
	body := func() { ctx.Scrollbar("s", &value, 0, 100, WithHeight(200), WithStep(5)) }
	runFrame(ctx, nil, body)
	runFrame(ctx, clickAt(6, 195), body)
	runFrame(ctx, nil, body)

	if value != 55 {
		t.Errorf("Expected the max arrow to add one step, got %v", value)
	}
}

// windowStateOf returns the engine state of a declared window.
func windowStateOf(t *testing.T, ctx *Context, id ID) windowState {
	t.Helper()
	st := ctx.windows.GetIfExists(id)
	if st == nil {
		t.Fatalf("no window state for %s", id)
	}
	return *st
}

func TestWindowTitleDragMoves(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var id ID
	body := func() {
		id = ctx.GetID("W")
		ctx.Window("W", WithPosition(100, 100), WithSize(200, 150))(func() {})
	}
	runFrame(ctx, nil, body)
	runFrame(ctx, dragFrom(Vec2{X: 150, Y: 110}, Vec2{X: 250, Y: 210}), body)
	runFrame(ctx, nil, body)

	if got := ctx.MustWidget(id).Layout.Global.Pos(); got != (Vec2{X: 200, Y: 200}) {
		t.Errorf("Expected window at (200, 200) after the drag, got %v", got)
	}
}

func TestWindowResizeRespectsMinSize(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var id ID
	body := func() {
		id = ctx.GetID("W")
		ctx.Window("W", WithPosition(100, 100), WithSize(200, 150), WithMinSize(100, 0))(func() {})
	}
	runFrame(ctx, nil, body)
	// Grab the east edge and drag it 150px to the left.
	runFrame(ctx, dragFrom(Vec2{X: 298, Y: 150}, Vec2{X: 148, Y: 150}), body)
	runFrame(ctx, nil, body)

	st := windowStateOf(t, ctx, id)
	if st.Size != (Vec2{X: 100, Y: 150}) {
		t.Errorf("Expected size clamped to 100x150, got %v", st.Size)
	}
	if st.Pos != (Vec2{X: 100, Y: 100}) {
		t.Errorf("Expected an east resize to keep the position, got %v", st.Pos)
	}
	if got := ctx.MustWidget(id).Layout.Global.W; got != 100 {
		t.Errorf("Expected laid out width 100, got %v", got)
	}
}

func TestResizeWindowWestEdgeKeepsEastEdge(t *testing.T) {
	pos, size := resizeWindow(Vec2{X: 100, Y: 100}, Vec2{X: 200, Y: 150}, Vec2{X: 150}, ResizeEdgeLeft,
		Vec2{X: 80}, Vec2{X: Unbounded, Y: Unbounded})

	if size.X != 80 || pos.X != 220 {
		t.Errorf("Expected width 80 at x=220, got width %v at x=%v", size.X, pos.X)
	}
}

func TestWindowCloseButton(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	open := true
	body := func() {
		ctx.Window("W", WithPosition(0, 0), WithSize(200, 150), Open(&open))(func() {})
	}
	runFrame(ctx, nil, body)
	// The close box sits at the right end of the 24px title bar.
	runFrame(ctx, clickAt(188, 12), body)
	runFrame(ctx, nil, body)

	if open {
		t.Error("Expected the close button to clear the open flag")
	}
}

func TestWindowSnapsToNeighbour(t *testing.T) {
	tests := []struct {
		name string
		snap float32
		want Vec2
	}{
		{"snapping", 10, Vec2{X: 200, Y: 0}},
		{"disabled", 0, Vec2{X: 204, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := newTestContext(t, WithConfig(Config{SnapDistance: tt.snap}))

			var moving ID
			body := func() {
				ctx.Window("A", WithPosition(0, 0), WithSize(200, 150))(func() {})
				moving = ctx.GetID("B")
				ctx.Window("B", WithPosition(300, 0), WithSize(200, 150))(func() {})
			}
			runFrame(ctx, nil, body)
			// Drop B 4px right of A's right edge.
			runFrame(ctx, dragFrom(Vec2{X: 350, Y: 10}, Vec2{X: 254, Y: 10}), body)

			if got := windowStateOf(t, ctx, moving).Pos; got != tt.want {
				t.Errorf("Expected window at %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNodeHeaderDrag(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	pos := Vec2{X: 10, Y: 10}
	moved := false
	body := func() {
		ctx.BeginNodeCanvas("graph")
		if ctx.BeginNode("Source", &pos) {
			moved = true
		}
		ctx.EndNode()
		ctx.EndNodeCanvas()
	}
	runFrame(ctx, nil, body)
	// The canvas content starts at its 4px padding, so the header is at y 14..34.
	runFrame(ctx, dragFrom(Vec2{X: 20, Y: 20}, Vec2{X: 70, Y: 40}), body)
	runFrame(ctx, nil, body)

	if !moved {
		t.Error("Expected BeginNode() to report the move")
	}
	if pos != (Vec2{X: 60, Y: 30}) {
		t.Errorf("Expected node at (60, 30), got %v", pos)
	}
}

func TestCanvasBackgroundDragPans(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var canvas ID
	body := func() {
		canvas = ctx.GetID("graph")
		ctx.BeginNodeCanvas("graph")
		ctx.EndNodeCanvas()
	}
	runFrame(ctx, nil, body)
	runFrame(ctx, dragFrom(Vec2{X: 200, Y: 200}, Vec2{X: 150, Y: 180}), body)

	if got := ctx.CanvasPan(canvas); got != (Vec2{X: 50, Y: 20}) {
		t.Errorf("Expected pan (50, 20), got %v", got)
	}
}

func typeText(in *FrameInput, s string) {
	for _, r := range s {
		in.Char(r)
	}
}

func TestTextboxSubmit(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	name := ""
	var changed, submitted bool
	body := func() {
		changed = ctx.Textbox("name", &name)
		submitted = ctx.Submitted()
	}
	runFrame(ctx, nil, body)

	in := clickAt(100, 12)
	typeText(in, "hi")
	in.KeyEvent(KeyS, true, ModCtrl)
	in.KeyEvent(KeyEnter, true, 0)
	runFrame(ctx, in, body)
	if changed || submitted {
		t.Fatal("Expected results to show up one frame after the input")
	}
	if ctx.Pressed(Shortcut{Key: KeyS, Mods: ModCtrl}) {
		t.Error("Expected keys typed into a textbox not to count as shortcuts")
	}
	runFrame(ctx, nil, body)

	if !changed || !submitted {
		t.Errorf("Expected changed and submitted, got changed=%v submitted=%v", changed, submitted)
	}
	if name != "hi" {
		t.Errorf("Expected text %q, got %q", "hi", name)
	}
	if fb := ctx.Feedback(); fb.EditingText != 0 {
		t.Errorf("Expected Enter to end the edit, still editing %s", fb.EditingText)
	}
}

func TestTextboxEscapeRestores(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	name := "abc"
	body := func() { ctx.Textbox("name", &name) }
	runFrame(ctx, nil, body)

	in := clickAt(100, 12)
	typeText(in, "x")
	in.KeyEvent(KeyEscape, true, 0)
	runFrame(ctx, in, body)
	runFrame(ctx, nil, body)

	if name != "abc" {
		t.Errorf("Expected Escape to restore %q, got %q", "abc", name)
	}
}

func TestCaretBlinkSchedulesWake(t *testing.T) {
	ctx, _, clock := newTestContext(t)

	name := ""
	body := func() { ctx.Textbox("name", &name) }
	if res := runFrame(ctx, nil, body); res.NextWake != 0 {
		t.Errorf("Expected no wake-up without an edit, got %d", res.NextWake)
	}

	res := runFrame(ctx, clickAt(100, 12), body)
	if res.NextWake != clock.ms+ctx.Config().CaretBlinkMs {
		t.Errorf("Expected wake-up at the next blink (%d), got %d", clock.ms+ctx.Config().CaretBlinkMs, res.NextWake)
	}
	if !res.InputConsumed {
		t.Error("Expected the click to be consumed")
	}
}
