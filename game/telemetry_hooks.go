package game

import (
	"log/slog"

	"github.com/pthm-cable/advent/telemetry"
)

// recordTransition logs a transition and appends it to transitions.csv.
func (g *Game) recordTransition(rec telemetry.TransitionRecord, enteredPuzzle bool) {
	g.collector.Record(rec, enteredPuzzle)

	slog.Info("state transition", "transition", rec)

	if err := g.output.WriteTransition(rec); err != nil {
		slog.Warn("failed to write transition", "error", err)
	}
}

// flushTelemetry logs and writes frame statistics once per log interval.
func (g *Game) flushTelemetry() {
	frames := g.perf.Frames()
	if frames == 0 || frames%g.logEvery != 0 {
		return
	}

	stats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
	}

	if err := g.output.WriteFrames(stats, g.frame, g.machine.Current().String()); err != nil {
		slog.Warn("failed to write frames", "error", err)
	}
}
