package gui

import (
	"slices"
	"strings"
)

// ActionHandler is called when an action's shortcut is triggered.
type ActionHandler func()

// ActionCondition returns true if the action can be executed.
type ActionCondition func() bool

// Shortcut is a key with the exact set of modifiers that must be held.
type Shortcut struct {
	Key  Key
	Mods Modifiers
}

// String formats the shortcut as "Ctrl+Shift+S".
func (s Shortcut) String() string {
	var b strings.Builder
	for _, m := range [...]struct {
		mod  Modifiers
		name string
	}{{ModCtrl, "Ctrl"}, {ModShift, "Shift"}, {ModAlt, "Alt"}, {ModSuper, "Super"}} {
		if s.Mods&m.mod != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(KeyName(s.Key))
	return b.String()
}

// ActionEntry holds a registered action with its shortcut and handler.
type ActionEntry struct {
	Name      string          // Action name for debugging
	Shortcut  Shortcut        // Key combination that triggers the action
	Handler   ActionHandler   // Called when the shortcut is pressed
	Condition ActionCondition // Optional: must return true to execute (nil = always)
}

// ActionRegistry manages keyboard shortcuts of the host application.
// Keys typed into a text widget never trigger actions.
//
// Usage:
//
//	actions := gui.NewActionRegistry()
//	actions.Register("save", gui.Shortcut{Key: gui.KeyS, Mods: gui.ModCtrl}, save)
//
//	ui.BeginFrame()
//	actions.Dispatch(ui)
type ActionRegistry struct {
	actions []ActionEntry
}

// NewActionRegistry creates an empty registry.
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{actions: make([]ActionEntry, 0, 16)}
}

// Register adds an action.
func (r *ActionRegistry) Register(name string, s Shortcut, handler ActionHandler) {
	r.RegisterWithCondition(name, s, handler, nil)
}

// RegisterWithCondition adds an action that only runs while condition
// returns true.
func (r *ActionRegistry) RegisterWithCondition(name string, s Shortcut, handler ActionHandler, condition ActionCondition) {
	r.actions = append(r.actions, ActionEntry{
		Name:      name,
		Shortcut:  s,
		Handler:   handler,
		Condition: condition,
	})
}

// Unregister removes an action by name.
func (r *ActionRegistry) Unregister(name string) {
	r.actions = slices.DeleteFunc(r.actions, func(a ActionEntry) bool { return a.Name == name })
}

// Clear removes all registered actions.
func (r *ActionRegistry) Clear() {
	r.actions = r.actions[:0]
}

// Dispatch runs the actions whose shortcut was pressed during the previous
// frame, in press order. Each press runs at most one action: the first
// registered match whose condition holds. Returns the number of actions run.
func (r *ActionRegistry) Dispatch(ctx *Context) int {
	ran := 0
	for _, s := range ctx.shortcuts {
		for i := range r.actions {
			a := &r.actions[i]
			if a.Shortcut != s || a.Handler == nil {
				continue
			}
			if a.Condition != nil && !a.Condition() {
				continue
			}
			if guiVerbose() {
				ctx.log.Debug("action triggered", "name", a.Name, "shortcut", a.Shortcut, "frame", ctx.frame)
			}
			a.Handler()
			ran++
			break
		}
	}
	return ran
}

// Pressed reports whether s was pressed during the previous frame outside
// of text editing.
func (ctx *Context) Pressed(s Shortcut) bool {
	return slices.Contains(ctx.shortcuts, s)
}
