package gui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestIDStableAcrossFrames(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var first, second ID
	runFrame(ctx, nil, func() {
		ctx.Button("OK")
		first, _ = ctx.LastWidget()
	})
	runFrame(ctx, nil, func() {
		ctx.Button("OK")
		second, _ = ctx.LastWidget()
	})

	if first == 0 || first != second {
		t.Errorf("Expected the same non-zero id in both frames, got %s and %s", first, second)
	}
}

func TestGetIDPredictsNextDeclaration(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	runFrame(ctx, nil, func() {
		predicted := ctx.GetID("Save")
		ctx.Button("Save")
		got, isNew := ctx.LastWidget()
		if got != predicted {
			t.Errorf("Expected GetID %s to match declared id %s", predicted, got)
		}
		if !isNew {
			t.Error("Expected widget to be new on its first declaration")
		}
	})
}

func TestSiblingLabelChangeKeepsOtherIDs(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var before, after ID
	runFrame(ctx, nil, func() {
		ctx.Button("A")
		ctx.Button("B")
		before, _ = ctx.LastWidget()
	})
	runFrame(ctx, nil, func() {
		ctx.Button("A renamed")
		ctx.Button("B")
		after, _ = ctx.LastWidget()
	})

	if before != after {
		t.Errorf("Expected B to keep id %s after renaming its sibling, got %s", before, after)
	}
}

func TestDuplicateLabelsGetDistinctIDs(t *testing.T) {
	var buf bytes.Buffer
	ctx, _, _ := newTestContext(t, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	var a, b ID
	runFrame(ctx, nil, func() {
		ctx.Button("X")
		a, _ = ctx.LastWidget()
		ctx.Button("X")
		b, _ = ctx.LastWidget()
	})

	if a == b {
		t.Errorf("Expected repeated labels to get distinct ids, both got %s", a)
	}
	if strings.Contains(buf.String(), "collision") {
		t.Errorf("Expected no collision to be logged, got %q", buf.String())
	}
}

func TestPushIDNamespacesLoopItems(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	ids := make([]ID, 3)
	runFrame(ctx, nil, func() {
		for i := range ids {
			ctx.PushIDInt(i)
			var on bool
			ctx.Checkbox("enabled", &on)
			ids[i], _ = ctx.LastWidget()
			ctx.PopID()
		}
	})

	seen := map[ID]bool{}
	for i, id := range ids {
		if seen[id] {
			t.Errorf("Expected item %d to get a unique id, %s is reused", i, id)
		}
		seen[id] = true
	}
}

func TestWithIDDecouplesLabel(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	var english, german ID
	runFrame(ctx, nil, func() {
		ctx.Button("Save", WithID("save"))
		english, _ = ctx.LastWidget()
	})
	runFrame(ctx, nil, func() {
		ctx.Button("Speichern", WithID("save"))
		german, _ = ctx.LastWidget()
	})

	if english != german {
		t.Errorf("Expected WithID to keep the id across label changes, got %s and %s", english, german)
	}
}

func TestTypeChangeRecreatesRecord(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	runFrame(ctx, nil, func() { ctx.Button("x") })
	runFrame(ctx, nil, func() {
		var v bool
		ctx.Checkbox("x", &v)
		id, isNew := ctx.LastWidget()
		if !isNew {
			t.Error("Expected a record to be recreated when its type changes")
		}
		if w := ctx.MustWidget(id); w.Type != WidgetCheckbox {
			t.Errorf("Expected checkbox record, got %s", w.Type)
		}
	})
}

// An anonymous widget's id is derived from its kind and ordinal, so a
// labelled sibling can be constructed to collide with it.
func collidingDeclarations(ctx *Context) {
	ctx.Button("button#")
	ctx.Button("button#")
	ctx.Button("")
}

func TestIDCollisionIsLogged(t *testing.T) {
	var buf bytes.Buffer
	ctx, _, _ := newTestContext(t, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	runFrame(ctx, nil, func() { collidingDeclarations(ctx) })

	if !strings.Contains(buf.String(), "widget id collision") {
		t.Errorf("Expected collision to be logged, got %q", buf.String())
	}
}

func TestIDCollisionPanicsWithDebugAsserts(t *testing.T) {
	ctx, _, _ := newTestContext(t, WithConfig(Config{DebugAsserts: true}))

	ctx.BeginFrame()
	expectPanic(t, ErrIDCollision, func() { collidingDeclarations(ctx) })
}
