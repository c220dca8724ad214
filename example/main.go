// Example opens a GLFW window and runs a small interface: a settings window
// with buttons, a checkbox and text fields, a scrolling log and a node
// canvas. Window geometry is saved to example.db between runs.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Flags:
//
//	-config engine.toml   engine tuning (see gui.Config)
//	-theme theme.yaml     theme overrides (TOML or YAML)
//	-v                    debug logging
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/framegui"
	"github.com/go-theft-auto/framegui/backend/opengl"
	"github.com/go-theft-auto/framegui/fontmeasure"
	"github.com/go-theft-auto/framegui/persist"
)

const (
	windowWidth  = 1024
	windowHeight = 720
	windowTitle  = "framegui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "engine config file (TOML)")
	themePath := flag.String("theme", "", "theme file (TOML or YAML)")
	dbPath := flag.String("db", "example.db", "window settings database")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	gui.SetVerbose(*verbose)

	if err := run(*configPath, *themePath, *dbPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is the state owned by the example, not by the GUI.
type app struct {
	clicks   int
	grid     bool
	name     string
	notes    string
	showLog  bool
	logLines []string
	volume   float64
	nodes    [3]gui.Vec2
}

func run(configPath, themePath, dbPath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	opts := []gui.ContextOption{gui.WithLogger(slog.Default())}
	if configPath != "" {
		cfg, err := gui.LoadConfig(configPath)
		if err != nil {
			return err
		}
		opts = append(opts, gui.WithConfig(cfg))
		if themePath == "" {
			themePath = cfg.ThemeFile
		}
	}
	if themePath != "" {
		theme, err := gui.LoadTheme(themePath)
		if err != nil {
			return err
		}
		opts = append(opts, gui.WithTheme(theme))
	}
	store, err := persist.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	opts = append(opts, gui.WithSettingsStore(store))

	measurer := fontmeasure.Default()
	defer measurer.Close()
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight, measurer)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	ui, err := gui.New(gui.Dependencies{
		Measurer:  measurer,
		Renderer:  renderer,
		Clipboard: opengl.GLFWClipboard{Window: window},
		Clock:     opengl.GLFWClock{},
	}, opts...)
	if err != nil {
		return err
	}
	defer ui.Destroy()

	input := opengl.NewGLFWInputAdapter(window)
	actions := gui.NewActionRegistry()
	state := &app{
		showLog: true,
		volume:  0.5,
		nodes:   [3]gui.Vec2{{X: 20, Y: 20}, {X: 200, Y: 60}, {X: 60, Y: 150}},
	}
	actions.Register("toggle log", gui.Shortcut{Key: gui.KeyF1}, func() { state.showLog = !state.showLog })
	actions.Register("reset clicks", gui.Shortcut{Key: gui.KeyZ, Mods: gui.ModCtrl}, func() { state.clicks = 0 })

	var wake time.Duration
	for !window.ShouldClose() {
		if wake > 0 {
			glfw.WaitEventsTimeout(wake.Seconds())
		} else {
			glfw.WaitEvents()
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ui.SetScreenSize(float32(w), float32(h))
		ui.SetInput(input.Poll())
		ui.BeginFrame()
		actions.Dispatch(ui)
		state.declare(ui)
		result := ui.EndFrame()
		if err := ui.Render(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		window.SwapBuffers()

		wake = 0
		if result.NextWake > 0 {
			now := opengl.GLFWClock{}.Milliseconds()
			if result.NextWake > now {
				wake = time.Duration(result.NextWake-now) * time.Millisecond
			} else {
				wake = time.Millisecond
			}
		}
	}
	return nil
}

func (a *app) declare(ui *gui.Context) {
	ui.Window("Settings", gui.WithPosition(20, 20))(func() {
		ui.Label("Hello from framegui!")
		ui.Row("buttons")(func() {
			if ui.Button(ui.Sprintf("Clicked %d", a.clicks), gui.WithID("count")) {
				a.clicks++
				a.log("button clicked")
			}
			if ui.Button("Reset") {
				a.clicks = 0
			}
			if ui.Button("Copy name") {
				ui.SetClipboardText(a.name)
			}
		})
		if ui.Checkbox("Show grid", &a.grid) {
			a.log(fmt.Sprintf("grid %v", a.grid))
		}
		if ui.Checkbox("Show log", &a.showLog) && a.showLog {
			a.log("log reopened")
		}
		ui.Textbox("Name", &a.name, gui.WithWidth(200))
		if ui.Submitted() {
			a.log("name: " + a.name)
		}
		ui.TextField("Notes", &a.notes, gui.WithSize(200, 80))
		if ui.Input.KeyDown(gui.KeyF1) {
			ui.Label("F1 toggles the log, Ctrl+Z resets the counter")
		}
		ui.Row("volume")(func() {
			ui.Label("Volume")
			ui.Scrollbar("volume", &a.volume, 0, 1, gui.Horizontal(), gui.WithWidth(140), gui.WithPage(0.1))
			ui.Labelf("%.2f", a.volume)
		})
	})

	if a.showLog {
		ui.Window("Log", gui.WithPosition(300, 20), gui.WithSize(260, 200), gui.Open(&a.showLog))(func() {
			for i, line := range a.logLines {
				ui.Label(line, gui.WithID(fmt.Sprint(i)))
			}
		})
	}

	ui.Window("Graph", gui.WithPosition(20, 360))(func() {
		ui.BeginNodeCanvas("canvas", gui.WithSize(420, 260))
		for i, title := range []string{"Input", "Filter", "Output"} {
			if ui.BeginNode(title, &a.nodes[i]) {
				a.log(fmt.Sprintf("%s moved", title))
			}
			ui.Label(ui.Sprintf("%.0f, %.0f", a.nodes[i].X, a.nodes[i].Y))
			ui.EndNode()
		}
		ui.LinkNodes("Input", "Filter")
		ui.LinkNodes("Filter", "Output")
		ui.EndNodeCanvas()
	})
}

func (a *app) log(line string) {
	a.logLines = append(a.logLines, line)
	if len(a.logLines) > 50 {
		a.logLines = a.logLines[1:]
	}
}
