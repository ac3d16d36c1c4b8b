// Package telemetry records frame timing and state transitions.
package telemetry

import (
	"log/slog"
	"sort"
)

// TransitionRecord describes one applied state change.
type TransitionRecord struct {
	Frame    uint64 `csv:"frame"`
	From     string `csv:"from"`
	To       string `csv:"to"`
	Puzzle   string `csv:"puzzle"`   // Selected puzzle, empty when none
	Spawned  int    `csv:"spawned"`  // Entities created by enter callbacks
	Removed  int    `csv:"removed"`  // Entities removed by exit callbacks
	Entities int    `csv:"entities"` // World entity count after the transition
}

// LogValue implements slog.LogValuer for structured logging.
func (r TransitionRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("frame", r.Frame),
		slog.String("from", r.From),
		slog.String("to", r.To),
		slog.String("puzzle", r.Puzzle),
		slog.Int("spawned", r.Spawned),
		slog.Int("removed", r.Removed),
		slog.Int("entities", r.Entities),
	)
}

// Collector accumulates transition counts over a session.
type Collector struct {
	transitions int
	visits      map[string]int
	last        TransitionRecord
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{visits: make(map[string]int)}
}

// Record counts a transition. Entering a puzzle counts as a visit.
func (c *Collector) Record(r TransitionRecord, enteredPuzzle bool) {
	c.transitions++
	c.last = r
	if enteredPuzzle && r.Puzzle != "" {
		c.visits[r.Puzzle]++
	}
}

// Transitions returns the number of recorded transitions.
func (c *Collector) Transitions() int {
	return c.transitions
}

// Visits returns how often a puzzle was opened.
func (c *Collector) Visits(puzzle string) int {
	return c.visits[puzzle]
}

// Last returns the most recent transition.
func (c *Collector) Last() (TransitionRecord, bool) {
	return c.last, c.transitions > 0
}

// SessionSummary is the collector state at shutdown.
type SessionSummary struct {
	Transitions int
	Opened      int
	Distinct    int
	MostVisited string
}

// Summary aggregates the session. Ties for MostVisited go to the
// lexically smallest puzzle.
func (c *Collector) Summary() SessionSummary {
	s := SessionSummary{Transitions: c.transitions, Distinct: len(c.visits)}

	keys := make([]string, 0, len(c.visits))
	for k, n := range c.visits {
		keys = append(keys, k)
		s.Opened += n
	}
	sort.Strings(keys)

	best := 0
	for _, k := range keys {
		if c.visits[k] > best {
			best = c.visits[k]
			s.MostVisited = k
		}
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s SessionSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("transitions", s.Transitions),
		slog.Int("opened", s.Opened),
		slog.Int("distinct", s.Distinct),
		slog.String("most_visited", s.MostVisited),
	)
}
