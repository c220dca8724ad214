package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClampSize(t *testing.T) {
	unbounded := Vec2{X: Unbounded, Y: Unbounded}
	tests := []struct {
		name     string
		size     Vec2
		min, max Vec2
		want     Vec2
	}{
		{"within bounds", Vec2{X: 50, Y: 20}, Vec2{}, unbounded, Vec2{X: 50, Y: 20}},
		{"negative becomes zero", Vec2{X: -5, Y: -1}, Vec2{}, unbounded, Vec2{}},
		{"max caps", Vec2{X: 500, Y: 20}, Vec2{}, Vec2{X: 100, Y: 100}, Vec2{X: 100, Y: 20}},
		{"min raises", Vec2{X: 10, Y: 10}, Vec2{X: 64, Y: 24}, unbounded, Vec2{X: 64, Y: 24}},
		{"min beats max", Vec2{X: 10, Y: 10}, Vec2{X: 80}, Vec2{X: 40, Y: 100}, Vec2{X: 80, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampSize(tt.size, tt.min, tt.max)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("clampSize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// declareThree declares buttons of widths 20, 28 and 36 (8px per rune plus
// 6px padding on each side) and returns their ids.
func declareThree(ctx *Context) []ID {
	ids := make([]ID, 0, 3)
	for _, label := range []string{"A", "BB", "CCC"} {
		ctx.Button(label)
		id, _ := ctx.LastWidget()
		ids = append(ids, id)
	}
	return ids
}

func globalRects(ctx *Context, ids []ID) []Rect {
	out := make([]Rect, len(ids))
	for i, id := range ids {
		out[i] = ctx.MustWidget(id).Layout.Global
	}
	return out
}

func TestVerticalFlow(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var box ID
	var ids []ID
	runFrame(ctx, nil, func() {
		ctx.BeginContainer("box", WithPosition(10, 20))
		box, _ = ctx.LastWidget()
		ids = declareThree(ctx)
		ctx.EndContainer()
	})

	want := []Rect{
		{X: 10, Y: 20, W: 20, H: 28},
		{X: 10, Y: 52, W: 28, H: 28},
		{X: 10, Y: 84, W: 36, H: 28},
	}
	if diff := cmp.Diff(want, globalRects(ctx, ids)); diff != "" {
		t.Errorf("child rects mismatch (-want +got):\n%s", diff)
	}
	// widest child, three heights plus two gaps
	if got := ctx.MustWidget(box).Layout.Measured; got != (Vec2{X: 36, Y: 92}) {
		t.Errorf("Expected container size (36, 92), got %v", got)
	}
}

func TestHorizontalFlow(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var row ID
	var ids []ID
	runFrame(ctx, nil, func() {
		ctx.Row("row")(func() {
			row = ctx.CurrentID()
			ids = declareThree(ctx)
		})
	})

	want := []Rect{
		{X: 0, Y: 0, W: 20, H: 28},
		{X: 24, Y: 0, W: 28, H: 28},
		{X: 56, Y: 0, W: 36, H: 28},
	}
	if diff := cmp.Diff(want, globalRects(ctx, ids)); diff != "" {
		t.Errorf("child rects mismatch (-want +got):\n%s", diff)
	}
	if got := ctx.MustWidget(row).Layout.Global.Size(); got != (Vec2{X: 92, Y: 28}) {
		t.Errorf("Expected row size (92, 28), got %v", got)
	}
}

func TestPaddingWrapsChildren(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var box, child ID
	runFrame(ctx, nil, func() {
		ctx.BeginContainer("padded", WithPadding(Uniform(5)))
		box, _ = ctx.LastWidget()
		ctx.Button("A")
		child, _ = ctx.LastWidget()
		ctx.EndContainer()
	})

	if got := ctx.MustWidget(box).Layout.Global; got != (Rect{W: 30, H: 38}) {
		t.Errorf("Expected padded container 30x38, got %v", got)
	}
	if got := ctx.MustWidget(child).Layout.Global.Pos(); got != (Vec2{X: 5, Y: 5}) {
		t.Errorf("Expected child at (5, 5), got %v", got)
	}
}

func TestExpandTakesLeftoverSpace(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var fixed, grow ID
	runFrame(ctx, nil, func() {
		ctx.Container("bar", Horizontal(), WithWidth(200))(func() {
			ctx.Button("A")
			fixed, _ = ctx.LastWidget()
			ctx.Button("B", ExpandX())
			grow, _ = ctx.LastWidget()
		})
	})

	if got := ctx.MustWidget(fixed).Layout.Global.W; got != 20 {
		t.Errorf("Expected fixed child width 20, got %v", got)
	}
	g := ctx.MustWidget(grow).Layout.Global
	if g.X != 24 || g.W != 176 {
		t.Errorf("Expected expanding child at x=24 with width 176, got %v", g)
	}
}

func TestAlignStretchFillsCrossAxis(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var ids []ID
	runFrame(ctx, nil, func() {
		ctx.Container("col", WithWidth(100), WithAlign(AlignStretch))(func() {
			ids = declareThree(ctx)
		})
	})

	for i, r := range globalRects(ctx, ids) {
		if r.W != 100 {
			t.Errorf("Expected child %d to stretch to 100, got %v", i, r.W)
		}
	}
}

func TestFixedSizeOptions(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var sized, overridden ID
	runFrame(ctx, nil, func() {
		ctx.Button("sized", WithSize(90, 40))
		sized, _ = ctx.LastWidget()
		ctx.Button("override", WithSize(90, 40), WithWidth(50), WithPosition(0, 100))
		overridden, _ = ctx.LastWidget()
	})

	if got := ctx.MustWidget(sized).Layout.Global.Size(); got != (Vec2{X: 90, Y: 40}) {
		t.Errorf("Expected WithSize 90x40, got %v", got)
	}
	if got := ctx.MustWidget(overridden).Layout.Global.Size(); got != (Vec2{X: 50, Y: 40}) {
		t.Errorf("Expected WithWidth to override the width, got %v", got)
	}
}

func TestOverflowBecomesScrollRange(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var box ID
	body := func() {
		ctx.Container("list", WithHeight(50), Scrollable(false, true))(func() {
			box = ctx.CurrentID()
			declareThree(ctx)
		})
	}
	runFrame(ctx, nil, body)

	l := ctx.MustWidget(box).Layout
	if l.ScrollRange.Y != 42 {
		t.Fatalf("Expected vertical scroll range 42, got %v", l.ScrollRange.Y)
	}

	in := NewFrameInput()
	in.MouseMove(5, 5)
	in.MouseWheel(0, -1)
	runFrame(ctx, in, body)

	if got := ctx.MustWidget(box).Layout.ChildrenOffset.Y; got != 30 {
		t.Errorf("Expected one wheel notch to scroll 30px, got %v", got)
	}

	in = NewFrameInput()
	in.MouseWheel(0, -5)
	runFrame(ctx, in, body)

	if got := ctx.MustWidget(box).Layout.ChildrenOffset.Y; got != 42 {
		t.Errorf("Expected scroll offset clamped to 42, got %v", got)
	}
}

func TestHiddenWidgetTakesNoSpace(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var last ID
	runFrame(ctx, nil, func() {
		ctx.Container("col")(func() {
			ctx.Button("A")
			ctx.Button("gone", Hidden(true))
			ctx.Button("C")
			last, _ = ctx.LastWidget()
		})
	})

	if got := ctx.MustWidget(last).Layout.Global.Y; got != 32 {
		t.Errorf("Expected C right below A at y=32, got %v", got)
	}
}

func TestRootStacksUnplacedWidgets(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var a, placed, b ID
	runFrame(ctx, nil, func() {
		ctx.Button("A")
		a, _ = ctx.LastWidget()
		ctx.Button("pinned", WithPosition(200, 10))
		placed, _ = ctx.LastWidget()
		ctx.Button("B")
		b, _ = ctx.LastWidget()
	})

	want := map[ID]Vec2{
		a:      {X: 0, Y: 0},
		placed: {X: 200, Y: 10},
		b:      {X: 0, Y: 32}, // below A's 28px plus 4px spacing
	}
	for id, pos := range want {
		if got := ctx.MustWidget(id).Layout.Global.Pos(); got != pos {
			t.Errorf("Expected %s at %v, got %v", id, pos, got)
		}
	}
}
