package gui

import (
	"errors"
	"fmt"
	"log/slog"
)

// Context holds all state of one GUI instance. It is owned by a single
// goroutine; nothing in it blocks.
type Context struct {
	deps      Dependencies
	cfg       Config
	theme     *Theme
	log       *slog.Logger
	settings  SettingsStore
	newEditor func() TextEditor

	// Widget records and per-widget side tables
	arena    *widgetArena
	stores   []Cleanable
	custom   *FrameStore[any]
	windows  *FrameStore[windowState]
	texts    *FrameStore[textState]
	canvases *FrameStore[canvasState]
	scrolls  *FrameStore[scrollState]

	// Declaration state
	idStack   []idScope
	rootSlot  int32
	last      ID
	lastNew   bool
	submitted bool
	declared  int

	// Frame state
	screen  Vec2
	frame   uint64
	inFrame bool
	nowMs   uint64

	// Input
	Input     *InputState
	pending   *FrameInput
	feedback  Feedback
	hits      []hitRegion
	flagged   []int32
	consumed  bool
	editor    TextEditor
	topZ      int
	shortcuts []Shortcut // key presses outside text editing, previous frame

	// Output
	commands  *CommandList
	recorder  Recorder
	nextWake  uint64
	renderErr error
	flushes   int

	// Per-frame scratch
	freed   []ID
	order   []int32
	strings []string

	stats statsAccumulator
}

// New creates a Context. deps.Measurer is required; other dependencies fall
// back to in-process defaults.
func New(deps Dependencies, opts ...ContextOption) (*Context, error) {
	if deps.Measurer == nil {
		return nil, errors.New("gui: Dependencies.Measurer is required")
	}
	if deps.Renderer == nil {
		deps.Renderer = nopRenderer{}
	}
	if deps.Clipboard == nil {
		deps.Clipboard = &MemoryClipboard{}
	}
	if deps.IME == nil {
		deps.IME = nopIME{}
	}
	if deps.Clock == nil {
		deps.Clock = newSystemClock()
	}

	ctx := &Context{
		deps:      deps,
		cfg:       DefaultConfig(),
		theme:     DefaultTheme(),
		log:       defaultLogger,
		newEditor: func() TextEditor { return NewTextEditor() },
		arena:     newWidgetArena(),
		idStack:   make([]idScope, 0, 32),
		Input:     NewInputState(),
		pending:   NewFrameInput(),
	}
	for _, opt := range opts {
		opt(ctx)
	}

	ctx.custom = NewFrameStore[any](ctx)
	ctx.windows = NewFrameStore[windowState](ctx)
	ctx.texts = NewFrameStore[textState](ctx)
	ctx.canvases = NewFrameStore[canvasState](ctx)
	ctx.scrolls = NewFrameStore[scrollState](ctx)

	root, _ := ctx.arena.addOrGet(rootID, WidgetRoot)
	root.Flags = FlagAllowChildren
	root.Layout.Direction = DirectionFree
	root.parentSlot = -1
	ctx.rootSlot = root.slot
	ctx.recorder.ctx = ctx
	return ctx, nil
}

// Destroy releases pooled buffers and ends any text edit. The Context must
// not be used afterwards.
func (ctx *Context) Destroy() {
	if ctx.feedback.EditingText != 0 {
		ctx.endTextEdit(false)
	}
	if ctx.commands != nil {
		ReleaseCommandList(ctx.commands)
		ctx.commands = nil
	}
	for _, s := range ctx.stores {
		if fs, ok := s.(interface{ Clear() }); ok {
			fs.Clear()
		}
	}
	ctx.arena = newWidgetArena()
}

// Config returns the active engine tuning.
func (ctx *Context) Config() Config { return ctx.cfg }

// Theme returns the active theme.
func (ctx *Context) Theme() *Theme { return ctx.theme }

// Logger returns the diagnostics logger.
func (ctx *Context) Logger() *slog.Logger { return ctx.log }

// SetScreenSize sets the size of the root area in pixels.
func (ctx *Context) SetScreenSize(w, h float32) {
	ctx.screen = Vec2{X: maxf(0, w), Y: maxf(0, h)}
}

// ScreenSize returns the size of the root area.
func (ctx *Context) ScreenSize() Vec2 { return ctx.screen }

// SetInput queues host events for the next EndFrame. Events are copied, so
// the host may reuse in.
func (ctx *Context) SetInput(in *FrameInput) {
	if in == nil {
		return
	}
	ctx.pending.Events = append(ctx.pending.Events, in.Events...)
}

// Frame returns the number of the current (or last) frame.
func (ctx *Context) Frame() uint64 { return ctx.frame }

// BeginFrame starts a frame. Declarations are only valid between
// BeginFrame and EndFrame.
func (ctx *Context) BeginFrame() {
	if ctx.inFrame {
		misuse(ErrNotInFrame, "BeginFrame called twice without EndFrame")
	}
	ctx.frame++
	ctx.inFrame = true
	ctx.nowMs = ctx.deps.Clock.Milliseconds()
	ctx.stats.begin()

	root := ctx.arena.at(ctx.rootSlot)
	root.lastFrame = ctx.frame
	root.children = root.children[:0]
	root.Layout.Fixed = ctx.screen
	root.Layout.Max = Vec2{X: Unbounded, Y: Unbounded}
	root.Layout.Spacing = ctx.theme.Float(WidgetRoot, StateNormal, PropSpacing)

	ctx.freed = ctx.arena.sweep(ctx.frame, ctx.cfg.StaleFrames, ctx.freed[:0])
	if len(ctx.freed) > 0 {
		for _, s := range ctx.stores {
			s.Forget(ctx.freed)
		}
		if guiVerbose() {
			ctx.log.Debug("reclaimed widgets", "count", len(ctx.freed), "frame", ctx.frame)
		}
	}

	ctx.idStack = ctx.idStack[:0]
	ctx.pushScope(rootID, ctx.rootSlot)
	ctx.last, ctx.lastNew = 0, false
	ctx.declared = 0
	ctx.strings = ctx.strings[:0]

	if ctx.commands == nil {
		ctx.commands = AcquireCommandList()
	}
	ctx.commands.Clear()
	ctx.flushes = 0
	ctx.renderErr = nil
}

// FrameResult summarizes a finished frame.
type FrameResult struct {
	// NextWake is the clock time in ms at which the UI needs another frame
	// even without input (caret blink). Zero means no timer is pending.
	NextWake uint64

	// InputConsumed reports whether any widget consumed input this frame.
	InputConsumed bool
}

// EndFrame runs layout, input feedback and render-command emission.
func (ctx *Context) EndFrame() FrameResult {
	ctx.assertInFrame()
	if len(ctx.idStack) != 1 {
		top := ctx.currentScope()
		misuse(ErrUnbalancedScope, "%d scopes still open at EndFrame (innermost %s)", len(ctx.idStack)-1, top.id)
	}

	t0 := ctx.deps.Clock.PerformanceCounter()
	ctx.layoutPass()
	t1 := ctx.deps.Clock.PerformanceCounter()
	ctx.feedbackPass()
	t2 := ctx.deps.Clock.PerformanceCounter()
	ctx.renderPass()
	t3 := ctx.deps.Clock.PerformanceCounter()

	ctx.inFrame = false
	ctx.stats.end(ctx, t1-t0, t2-t1, t3-t2)
	return FrameResult{NextWake: ctx.nextWake, InputConsumed: ctx.consumed}
}

// Render drains the commands of the last frame to the host renderer.
// Commands are consumed exactly once.
func (ctx *Context) Render() error {
	if ctx.inFrame {
		misuse(ErrNotInFrame, "Render called inside a frame")
	}
	if ctx.renderErr != nil {
		return ctx.renderErr
	}
	if ctx.commands == nil || ctx.commands.Len() == 0 {
		return nil
	}
	err := ctx.deps.Renderer.Render(ctx.commands)
	ctx.commands.truncate()
	if err != nil {
		return fmt.Errorf("failed to render frame %d: %w", ctx.frame, err)
	}
	return nil
}

// Commands returns the buffered commands of the last frame and marks them
// consumed. Use it instead of Render when the host pulls commands itself.
func (ctx *Context) Commands() []Command {
	if ctx.commands == nil {
		return nil
	}
	out := make([]Command, len(ctx.commands.Commands))
	copy(out, ctx.commands.Commands)
	ctx.commands.truncate()
	return out
}

// assertInFrame panics when called outside BeginFrame/EndFrame.
func (ctx *Context) assertInFrame() {
	if !ctx.inFrame {
		misuse(ErrNotInFrame, "declaration outside of BeginFrame/EndFrame")
	}
}

// declare creates or updates the record of a widget in the current scope and
// links it to its parent. The visible label is used for id derivation
// unless WithID overrides it.
func (ctx *Context) declare(label string, typ WidgetType, o options) *Widget {
	ctx.assertInFrame()
	if key := GetOpt(o, OptID); key != "" {
		label = key
	}
	id := ctx.nextID(label, typ)

	if prev, ok := ctx.arena.get(id); ok && prev.declaredIn(ctx.frame) {
		ctx.log.Error("widget id collision", "id", id, "label", label, "type", typ, "previous", prev.Type)
		if ctx.cfg.DebugAsserts {
			misuse(ErrIDCollision, "%s %q (%s) already declared this frame as %s", typ, label, id, prev.Type)
		}
	}

	parentSlot := ctx.parentSlot()
	w, isNew := ctx.arena.addOrGet(id, typ)
	parent := ctx.arena.at(parentSlot)
	if isNew {
		if create := kindOf(typ).create; create != nil {
			create(ctx, w)
		}
		if guiVerbose() {
			ctx.log.Debug("widget created", "id", id, "type", typ, "label", label, "frame", ctx.frame)
		}
	}

	w.IsNew = isNew
	w.Parent = parent.ID
	w.parentSlot = parentSlot
	w.depth = parent.depth + 1
	w.lastFrame = ctx.frame
	w.children = w.children[:0]
	parent.children = append(parent.children, w.slot)

	ctx.applyLayoutOptions(w, o)
	ctx.last, ctx.lastNew = id, isNew
	ctx.declared++
	return w
}

// applyLayoutOptions copies the per-frame layout options onto the record.
func (ctx *Context) applyLayoutOptions(w *Widget, o options) {
	l := &w.Layout
	size := GetOpt(o, OptSize)
	l.Fixed = Vec2{X: size.W, Y: size.H}
	if width := GetOpt(o, OptWidth); width > 0 {
		l.Fixed.X = width
	}
	if height := GetOpt(o, OptHeight); height > 0 {
		l.Fixed.Y = height
	}
	minSize := GetOpt(o, OptMinSize)
	l.Min = Vec2{X: minSize.W, Y: minSize.H}
	maxSize := GetOpt(o, OptMaxSize)
	l.Max = Vec2{X: Unbounded, Y: Unbounded}
	if maxSize.W > 0 {
		l.Max.X = maxSize.W
	}
	if maxSize.H > 0 {
		l.Max.Y = maxSize.H
	}
	expand := GetOpt(o, OptExpand)
	l.ExpandX, l.ExpandY = expand.X, expand.Y
	l.Placed = HasOpt(o, OptPosition)
	if l.Placed {
		l.Position = GetOpt(o, OptPosition)
	}

	w.Flags &^= FlagDisabled | FlagIgnored
	if GetOpt(o, OptDisabled) {
		w.Flags |= FlagDisabled
	}
	if GetOpt(o, OptHidden) {
		w.Flags |= FlagIgnored
	}

	if w.Has(FlagAllowChildren) {
		l.Padding = Uniform(ctx.theme.Float(w.Type, StateNormal, PropPadding))
		if HasOpt(o, OptPadding) {
			l.Padding = GetOpt(o, OptPadding)
		}
		l.Spacing = ctx.theme.Float(w.Type, StateNormal, PropSpacing)
		if HasOpt(o, OptSpacing) {
			l.Spacing = GetOpt(o, OptSpacing)
		}
		if HasOpt(o, OptDirection) {
			l.Direction = GetOpt(o, OptDirection)
		}
		if HasOpt(o, OptAlign) {
			l.Align = GetOpt(o, OptAlign)
		}
		if HasOpt(o, OptScroll) {
			scroll := GetOpt(o, OptScroll)
			w.Flags &^= FlagScrollX | FlagScrollY
			if scroll.X {
				w.Flags |= FlagScrollX | FlagClip
			}
			if scroll.Y {
				w.Flags |= FlagScrollY | FlagClip
			}
		}
		if GetOpt(o, OptClip) {
			w.Flags |= FlagClip
		}
	}
}

// openScope makes w the parent of the following declarations.
func (ctx *Context) openScope(w *Widget) {
	ctx.pushScope(w.ID, w.slot)
}

// closeScope closes the scope opened by the widget of type typ.
func (ctx *Context) closeScope(typ WidgetType) *Widget {
	ctx.assertInFrame()
	scope := ctx.currentScope()
	if scope.slot < 0 {
		misuse(ErrUnbalancedScope, "End%s while a PushID namespace is open", typ)
	}
	w := ctx.arena.at(scope.slot)
	if w.Type != typ {
		misuse(ErrUnbalancedScope, "End%s closes a %s scope", typ, w.Type)
	}
	ctx.popScope()
	return w
}

// LastWidget returns the id of the most recent declaration and whether it
// was created this frame.
func (ctx *Context) LastWidget() (ID, bool) {
	return ctx.last, ctx.lastNew
}

// Widget returns the record of a declared widget. The pointer is valid
// until the next BeginFrame.
func (ctx *Context) Widget(id ID) (*Widget, error) {
	w, ok := ctx.arena.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}
	return w, nil
}

// MustWidget is like Widget but panics when the id is unknown.
func (ctx *Context) MustWidget(id ID) *Widget {
	w, err := ctx.Widget(id)
	if err != nil {
		panic(err)
	}
	return w
}

// Sprintf formats a string whose lifetime is the current frame. The bytes
// are accounted in Stats.
func (ctx *Context) Sprintf(format string, args ...any) string {
	s := fmt.Sprintf(format, args...)
	ctx.strings = append(ctx.strings, s)
	return s
}

// parentOf returns the parent record of w, or nil for the root.
func (ctx *Context) parentOf(w *Widget) *Widget {
	if w.parentSlot < 0 {
		return nil
	}
	return ctx.arena.at(w.parentSlot)
}

// state returns the style state of w from the feedback table.
func (ctx *Context) state(w *Widget) WidgetState {
	fb := &ctx.feedback
	switch {
	case w.Has(FlagDisabled):
		return StateDisabled
	case fb.EditingText == w.ID, fb.ActiveWindow == w.ID:
		return StateFocused
	case fb.Pressed == w.ID:
		return StatePressed
	case fb.Hovered == w.ID:
		return StateHovered
	}
	return StateNormal
}

// fontStyle returns the font style of a widget type.
func (ctx *Context) fontStyle(typ WidgetType) FontStyle {
	return FontStyle{Size: ctx.theme.Float(typ, StateNormal, PropFontSize)}
}

// measureText measures one line of text in the font of typ.
func (ctx *Context) measureText(text string, typ WidgetType) Vec2 {
	return ctx.deps.Measurer.MeasureText(text, ctx.fontStyle(typ))
}

// lineHeight returns the height of one text line in the font of typ.
func (ctx *Context) lineHeight(typ WidgetType) float32 {
	return ctx.deps.Measurer.MeasureText("M", ctx.fontStyle(typ)).Y
}
