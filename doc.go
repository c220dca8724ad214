/*
Package gui provides an immediate-mode GUI engine, designed as idiomatic Go
with a dedicated Context type.

# Overview

The whole widget tree is redeclared every frame. Widgets keep their state
across frames through stable ids derived from their declaration path, and
the engine emits a stream of render commands for a host renderer. The engine
never rasterizes anything itself: text is measured through a TextMeasurer,
pixels are produced by a Renderer.

# Quick Start

	// Setup
	measurer := fontmeasure.Default()
	renderer, _ := opengl.NewRenderer(1280, 720, measurer)
	ui, err := gui.New(gui.Dependencies{Measurer: measurer, Renderer: renderer})
	if err != nil {
	    log.Fatal(err)
	}

	// Game loop
	for !window.ShouldClose() {
	    ui.SetScreenSize(1280, 720)
	    ui.SetInput(input.Poll()) // opengl.GLFWInputAdapter

	    ui.BeginFrame()
	    ui.Window("Menu", gui.WithPosition(20, 20))(func() {
	        ui.Label("Hello World")
	        if ui.Button("Click Me") {
	            // Button was clicked
	        }
	    })
	    ui.EndFrame()

	    if err := ui.Render(); err != nil {
	        log.Print(err)
	    }
	    window.SwapBuffers()
	}

# Frame Lifecycle

BeginFrame reclaims widgets that were not declared for Config.StaleFrames
frames and opens the root scope. Declarations then create or update widget
records in the arena. EndFrame runs three passes:

 1. Layout: a bottom-up measure pass and a top-down resolve pass.
 2. Input feedback: host events queued with SetInput are applied in order
    against the geometry of this frame.
 3. Render: commands are recorded in paint order with balanced clip scopes.

Render drains the commands to the Renderer once.

The screen is a free-layout scope: windows and widgets given WithPosition
sit where they are placed, everything else declared at the top level stacks
top to bottom.

# Results of Interaction

Input is applied after the declarations of a frame, so results such as a
click or an edited value are reported by the declaration of the next frame:

	if ui.Button("Save") {        // true one frame after the release
	    save()
	}
	if ui.Checkbox("Grid", &grid) { // grid already holds the new value
	    redraw()
	}

Value widgets write user edits back through their pointer exactly once and
otherwise take the caller's value as the source of truth.

# Identity

A widget id is a hash of its parent id, its label and the number of earlier
siblings with the same label. Use WithID to decouple the id from the visible
text, and PushID/PopID to namespace items declared in loops:

	for i, item := range items {
	    ui.PushIDInt(i)
	    ui.Checkbox(item.Name, &item.Enabled)
	    ui.PopID()
	}

Two declarations resolving to the same id in one frame are logged as an
error, and panic with ErrIDCollision when Config.DebugAsserts is set.

# Keyboard Shortcuts Reference

Textbox and TextField:

	Left/Right           Move caret (Ctrl: by word)
	Up/Down              Move caret by line (TextField)
	Home/End             Line start/end (Ctrl: text start/end)
	Shift+movement       Extend selection
	Ctrl+A               Select all
	Ctrl+C/X/V           Copy, cut, paste through the host clipboard
	Ctrl+Z               Undo
	Ctrl+Shift+Z, Ctrl+Y Redo
	Enter                Confirm (Textbox), new line (TextField)
	Tab                  Confirm (Textbox), tab (TextField)
	Escape               Cancel and restore the original text

Double click selects a word, triple click selects everything.

# Themes

Colors and metrics come from a Theme table indexed by widget type, state and
property. DefaultTheme returns the built-in dark theme; LoadTheme merges a
TOML or YAML file over it:

	[button.hovered]
	background = "#464646ff"

	[window]
	title_bar_height = 28
*/
package gui
