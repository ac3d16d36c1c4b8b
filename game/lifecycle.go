package game

import (
	"log/slog"

	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/puzzles"
	"github.com/pthm-cable/advent/state"
	"github.com/pthm-cable/advent/telemetry"
	"github.com/pthm-cable/advent/ui"
)

// loadPuzzle spawns the selected day's page and hides the menu.
// Runs on entering Puzzle.
func (g *Game) loadPuzzle() {
	p := g.selected
	plugin := puzzles.Resolve(p)

	b := rootedPage(plugin.Build(components.PuzzleRoot{}, g.env()))
	g.tree.Spawn(b)
	g.spawned += b.Count()
	g.loadedTitle = plugin.Title

	g.tree.SetHidden(g.menuRoot, true)
	g.cam.Reset()

	slog.Info("puzzle loaded",
		"year", int(p.Year),
		"day", int(p.Day),
		"title", plugin.Title,
		"registered", puzzles.Exists(p),
		"entities", b.Count(),
	)
}

// unloadPuzzle removes every page root with its subtree and shows the menu.
// Runs on leaving Puzzle.
func (g *Game) unloadPuzzle() {
	n := g.tree.DespawnPuzzleRoots()
	g.removed += n
	g.loadedTitle = ""

	g.tree.SetHidden(g.menuRoot, false)
	g.cam.Reset()

	slog.Info("puzzle unloaded", "puzzle", g.selected.String(), "removed", n)
}

func (g *Game) env() puzzles.Env {
	return puzzles.Env{Theme: g.theme, InputDir: g.inputDir}
}

// rootedPage returns b with a single PuzzleRoot marker, on its root.
// Teardown finds pages by this marker, so markers a plugin put anywhere else
// are moved rather than duplicated.
func rootedPage(b ui.Bundle) ui.Bundle {
	return stripPuzzleRoots(b).With(components.PuzzleRoot{})
}

// stripPuzzleRoots copies b without any PuzzleRoot markers. The plugin's
// slices are left untouched.
func stripPuzzleRoots(b ui.Bundle) ui.Bundle {
	var markers []any
	for _, m := range b.Markers {
		if _, ok := m.(components.PuzzleRoot); !ok {
			markers = append(markers, m)
		}
	}
	b.Markers = markers

	if len(b.Children) > 0 {
		kids := make([]ui.Bundle, len(b.Children))
		for i, c := range b.Children {
			kids[i] = stripPuzzleRoots(c)
		}
		b.Children = kids
	}
	return b
}

// applyTransition runs the queued state change, if any, and records it.
func (g *Game) applyTransition() {
	g.spawned, g.removed = 0, 0

	tr, ok := g.machine.Apply()
	if !ok {
		return
	}

	rec := telemetry.TransitionRecord{
		Frame:    g.frame,
		From:     tr.From.String(),
		To:       tr.To.String(),
		Spawned:  g.spawned,
		Removed:  g.removed,
		Entities: g.tree.Count(),
	}
	if g.hasSelection {
		rec.Puzzle = g.selected.String()
	}
	g.recordTransition(rec, tr.To == state.Puzzle)
}
