// Package game hosts the puzzle browser: the ECS world, the Menu/Puzzle state
// machine and the per-frame update. It has no window dependency; drawing is
// delegated to a Drawer.
package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/advent/camera"
	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/config"
	"github.com/pthm-cable/advent/puzzles"
	"github.com/pthm-cable/advent/state"
	"github.com/pthm-cable/advent/telemetry"
	"github.com/pthm-cable/advent/ui"
)

// Drawer renders the UI tree once per frame.
type Drawer interface {
	Draw(tree *ui.Tree, status Status)
}

// Options configures a new Game.
type Options struct {
	Config    *config.Config // nil = config.Cfg()
	InputDir  string         // Overrides puzzles.input_dir when set
	OutputDir string         // CSV output; empty disables it
	LogStats  bool
	Start     *components.Puzzle // Open this puzzle on the first frame
	Measurer  ui.TextMeasurer    // nil = ui.EstimateMeasurer
	Drawer    Drawer             // nil in headless mode
	Theme     *ui.Theme          // nil = ui.DefaultTheme()
}

// Input is the polled input for one frame.
type Input struct {
	Pointer ui.Pointer
	Back    bool    // Return to the menu (Escape)
	Wheel   float32 // Mouse wheel movement; positive scrolls up

	// Viewport size; zero keeps the previous size.
	Width, Height float32
}

// Status summarizes the game for overlays.
type Status struct {
	State    state.AppState
	Puzzle   string // Open puzzle, empty in the menu
	Title    string
	Entities int
	Frame    uint64
	FPS      float64
	Scroll   float32
}

// Game holds the complete application state.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	tree  *ui.Tree
	theme ui.Theme

	machine  *state.Machine[state.AppState]
	menuRoot ecs.Entity

	selected     components.Puzzle
	hasSelection bool
	loadedTitle  string

	inputDir string
	measurer ui.TextMeasurer
	drawer   Drawer

	viewW, viewH float32
	cam          *camera.Camera
	frame        uint64

	// Entities created and removed by callbacks in the current Apply
	spawned, removed int

	// Telemetry
	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool
	logEvery  uint64
}

// NewGame creates a game with default options.
func NewGame() *Game {
	return NewGameWithOptions(Options{})
}

// NewGameWithOptions creates the world, builds the menu and wires the
// Menu/Puzzle callbacks.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	theme := ui.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	theme.ButtonRadius = cfg.Menu.ButtonRadius

	measurer := opts.Measurer
	if measurer == nil {
		measurer = ui.EstimateMeasurer{}
	}

	inputDir := cfg.Puzzles.InputDir
	if opts.InputDir != "" {
		inputDir = opts.InputDir
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:       cfg,
		world:     world,
		tree:      ui.NewTree(world),
		theme:     theme,
		machine:   state.NewMachine(state.Menu),
		inputDir:  inputDir,
		measurer:  measurer,
		drawer:    opts.Drawer,
		viewW:     cfg.Derived.ScreenW32,
		viewH:     cfg.Derived.ScreenH32,
		cam:       camera.New(cfg.Derived.ScreenH32),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		collector: telemetry.NewCollector(),
		logStats:  opts.LogStats,
		logEvery:  logInterval(cfg),
	}

	g.machine.OnEnter(state.Puzzle, g.loadPuzzle)
	g.machine.OnExit(state.Puzzle, g.unloadPuzzle)

	g.menuRoot = g.tree.Spawn(buildMenu(cfg, theme))
	g.layout()

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Warn("output disabled", "dir", opts.OutputDir, "error", err)
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	if opts.Start != nil {
		g.Select(*opts.Start)
	}

	slog.Info("menu built",
		"entities", g.tree.Count(),
		"buttons", len(g.tree.Buttons()),
		"registered", len(puzzles.List()),
	)
	return g
}

// logInterval converts the configured log interval to frames.
func logInterval(cfg *config.Config) uint64 {
	n := uint64(cfg.Telemetry.LogIntervalSec * float64(cfg.Screen.TargetFPS))
	if n < 1 {
		n = uint64(cfg.Telemetry.PerfWindow)
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Update runs one frame: input, interaction, pending transition, layout.
func (g *Game) Update(in Input) {
	g.perf.StartFrame()

	g.perf.StartPhase(telemetry.PhaseInput)
	g.handleInput(in)

	g.perf.StartPhase(telemetry.PhaseInteract)
	if clicked, ok := g.tree.Interact(in.Pointer); ok {
		g.handleClick(clicked)
	}

	g.perf.StartPhase(telemetry.PhaseTransition)
	g.applyTransition()

	g.perf.StartPhase(telemetry.PhaseLayout)
	g.layout()

	g.frame++
}

// layout positions the visible tree under the current scroll offset.
// Lays out twice when new content height clamps the offset.
func (g *Game) layout() {
	offset := g.cam.Offset
	g.cam.SetContentHeight(g.tree.ComputeLayoutScrolled(g.viewW, g.viewH, offset, g.measurer))
	if g.cam.Offset != offset {
		g.tree.ComputeLayoutScrolled(g.viewW, g.viewH, g.cam.Offset, g.measurer)
	}
}

// Draw renders the frame if a Drawer is set, then closes the frame's timing.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseDraw)
	if g.drawer != nil {
		g.drawer.Draw(g.tree, g.Status())
	}
	g.perf.EndFrame()
	g.flushTelemetry()
}

// Unload closes output files and logs the session summary.
func (g *Game) Unload() {
	slog.Info("session", "summary", g.collector.Summary())
	if err := g.output.Close(); err != nil {
		slog.Warn("failed to close output", "error", err)
	}
}

// Status returns the current overlay summary.
func (g *Game) Status() Status {
	s := Status{
		State:    g.machine.Current(),
		Entities: g.tree.Count(),
		Frame:    g.frame,
		FPS:      g.perf.FPS(),
		Scroll:   g.cam.Offset,
	}
	if s.State == state.Puzzle {
		s.Puzzle = g.selected.String()
		s.Title = g.loadedTitle
	}
	return s
}

// Tree returns the UI tree.
func (g *Game) Tree() *ui.Tree {
	return g.tree
}

// State returns the active application state.
func (g *Game) State() state.AppState {
	return g.machine.Current()
}

// Selected returns the last selected puzzle.
func (g *Game) Selected() (components.Puzzle, bool) {
	return g.selected, g.hasSelection
}

// MenuRoot returns the root entity of the menu.
func (g *Game) MenuRoot() ecs.Entity {
	return g.menuRoot
}

// Frame returns the number of completed updates.
func (g *Game) Frame() uint64 {
	return g.frame
}

// Collector returns the transition collector.
func (g *Game) Collector() *telemetry.Collector {
	return g.collector
}

// Camera returns the scroll camera.
func (g *Game) Camera() *camera.Camera {
	return g.cam
}
