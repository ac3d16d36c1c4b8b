package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/config"
	"github.com/pthm-cable/advent/game"
	"github.com/pthm-cable/advent/renderer"
	"github.com/pthm-cable/advent/ui"

	// Import years to register their puzzles
	_ "github.com/pthm-cable/advent/puzzles/year2025"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited; required when headless)")
	year := flag.Int("year", 0, "Open this year's puzzle on startup (with -day)")
	day := flag.Int("day", 0, "Open this day's puzzle on startup (with -year)")
	inputDir := flag.String("input-dir", "", "Puzzle input directory (empty = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	opts := game.Options{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	if *year != 0 || *day != 0 {
		if *year < 2015 || *year > 65535 || *day < 1 || *day > config.MaxDay {
			slog.Error("invalid start puzzle", "year", *year, "day", *day)
			os.Exit(1)
		}
		opts.Start = &components.Puzzle{Year: components.Year(*year), Day: components.Day(*day)}
	}

	if *headless {
		if *maxFrames <= 0 {
			slog.Error("headless mode needs -max-frames")
			os.Exit(1)
		}

		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless run", "max_frames", *maxFrames)

		for int(g.Frame()) < *maxFrames {
			g.Update(game.Input{})
			g.Draw()
		}
		slog.Info("max frames reached", "frame", g.Frame(), "state", g.State().String())
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	// Escape returns to the menu instead of closing the window.
	rl.SetExitKey(0)

	r := renderer.New(ui.DefaultTheme())
	opts.Measurer = renderer.Measurer{}
	opts.Drawer = r
	opts.Theme = &r.Theme

	g := game.NewGameWithOptions(opts)
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update(r.PollInput())
		g.Draw()

		if *maxFrames > 0 && int(g.Frame()) >= *maxFrames {
			break
		}
	}
}
