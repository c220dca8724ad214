package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShortcutString(t *testing.T) {
	tests := []struct {
		s    Shortcut
		want string
	}{
		{Shortcut{Key: KeyS, Mods: ModCtrl}, "Ctrl+S"},
		{Shortcut{Key: KeyZ, Mods: ModCtrl | ModShift}, "Ctrl+Shift+Z"},
		{Shortcut{Key: KeyF1}, "F1"},
		{Shortcut{Key: KeyEnter, Mods: ModAlt | ModSuper}, "Alt+Super+Enter"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func keyPress(key Key, mods Modifiers) *FrameInput {
	in := NewFrameInput()
	in.KeyEvent(key, true, mods)
	in.KeyEvent(key, false, mods)
	return in
}

func TestActionDispatchRunsOnNextFrame(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	actions := NewActionRegistry()

	var ran []string
	actions.Register("save", Shortcut{Key: KeyS, Mods: ModCtrl}, func() { ran = append(ran, "save") })
	actions.Register("help", Shortcut{Key: KeyF1}, func() { ran = append(ran, "help") })

	runFrame(ctx, keyPress(KeyS, ModCtrl), func() {
		if n := actions.Dispatch(ctx); n != 0 {
			t.Errorf("Expected nothing to run before the key was seen, ran %d", n)
		}
	})
	runFrame(ctx, nil, func() {
		if n := actions.Dispatch(ctx); n != 1 {
			t.Errorf("Expected 1 action, ran %d", n)
		}
	})
	runFrame(ctx, nil, func() { actions.Dispatch(ctx) })

	if diff := cmp.Diff([]string{"save"}, ran); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}
}

func TestActionModifiersMustMatchExactly(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	actions := NewActionRegistry()

	ran := 0
	actions.Register("save", Shortcut{Key: KeyS, Mods: ModCtrl}, func() { ran++ })

	runFrame(ctx, keyPress(KeyS, ModCtrl|ModShift), func() {})
	runFrame(ctx, nil, func() { actions.Dispatch(ctx) })

	if ran != 0 {
		t.Errorf("Expected Ctrl+Shift+S not to trigger Ctrl+S, ran %d", ran)
	}
}

func TestActionConditionFallsThrough(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	actions := NewActionRegistry()

	editing := false
	var ran []string
	s := Shortcut{Key: KeyZ, Mods: ModCtrl}
	actions.RegisterWithCondition("undo edit", s, func() { ran = append(ran, "edit") }, func() bool { return editing })
	actions.Register("undo scene", s, func() { ran = append(ran, "scene") })

	runFrame(ctx, keyPress(KeyZ, ModCtrl), func() {})
	runFrame(ctx, nil, func() { actions.Dispatch(ctx) })

	editing = true
	runFrame(ctx, keyPress(KeyZ, ModCtrl), func() {})
	runFrame(ctx, nil, func() { actions.Dispatch(ctx) })

	if diff := cmp.Diff([]string{"scene", "edit"}, ran); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}
}

func TestActionUnregisterAndClear(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	actions := NewActionRegistry()

	ran := 0
	actions.Register("a", Shortcut{Key: KeyF2}, func() { ran++ })
	actions.Register("b", Shortcut{Key: KeyF3}, func() { ran++ })
	actions.Unregister("a")

	in := keyPress(KeyF2, 0)
	in.KeyEvent(KeyF3, true, 0)
	runFrame(ctx, in, func() {})
	runFrame(ctx, nil, func() {
		if n := actions.Dispatch(ctx); n != 1 {
			t.Errorf("Expected only b to run, ran %d", n)
		}
		if !ctx.Pressed(Shortcut{Key: KeyF2}) {
			t.Error("Expected F2 to be reported as pressed")
		}
	})

	actions.Clear()
	runFrame(ctx, keyPress(KeyF3, 0), func() {})
	runFrame(ctx, nil, func() {
		if n := actions.Dispatch(ctx); n != 0 {
			t.Errorf("Expected no actions after Clear, ran %d", n)
		}
	})
}
