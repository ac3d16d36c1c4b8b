// Package year2025 registers the 2025 puzzle pages.
package year2025

import (
	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/puzzles"
	"github.com/pthm-cable/advent/ui"
)

// Year is the event year of this package's puzzles.
const Year components.Year = 2025

func init() {
	puzzles.Register(Year, 1, puzzles.Plugin{Title: day1Title, Build: BuildDay1})
}

const day1Title = "Secret Entrance"

// BuildDay1 builds the page for the safe-dial puzzle.
func BuildDay1(root components.PuzzleRoot, env puzzles.Env) ui.Bundle {
	p := components.Puzzle{Year: Year, Day: 1}
	return puzzles.Page(root, env, puzzles.Heading(p, day1Title),
		puzzles.Paragraph(env,
			"A safe dial shows 0 to 99 and starts at 50.",
			"Each input line turns it Left or Right by some clicks.",
			"Part 1: how often does the dial stop at 0?",
			"Part 2: how often does it pass 0 at all?",
		),
		puzzles.InputStatus(env, p),
	)
}
