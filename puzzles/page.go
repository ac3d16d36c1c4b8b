package puzzles

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/ui"
)

// Font sizes shared by puzzle pages.
const (
	HeadingSize = 40
	BodySize    = 20
	NoteSize    = 16
)

// Page lays out a puzzle page: heading, body, then a Back button.
// The root carries the given marker.
func Page(root components.PuzzleRoot, env Env, heading string, body ...ui.Bundle) ui.Bundle {
	theme := env.Theme

	content := ui.Column(12, body...)
	back := ui.ButtonNode("Back", 160, 40, BodySize, theme).With(components.BackButton{})

	return ui.Bundle{
		Node: components.Node{
			Width:         components.Percent(100),
			Height:        components.Percent(100),
			FlexDirection: components.FlexColumn,
			AlignItems:    components.AlignCenter,
			Padding:       components.All(20),
			RowGap:        24,
		},
		Markers: []any{root},
		Children: []ui.Bundle{
			ui.TextNode(heading, HeadingSize, theme.Accent),
			content,
			back,
		},
	}
}

// Paragraph renders each line as its own text node.
func Paragraph(env Env, lines ...string) ui.Bundle {
	kids := make([]ui.Bundle, len(lines))
	for i, l := range lines {
		kids[i] = ui.TextNode(l, BodySize, env.Theme.TextColor)
	}
	return ui.Column(6, kids...)
}

// InputStatus describes the puzzle's input file.
func InputStatus(env Env, p components.Puzzle) ui.Bundle {
	info, err := ReadInputInfo(env.InputDir, p)
	muted := env.Theme.MutedText

	var status string
	switch {
	case err != nil:
		slog.Warn("puzzle_input_unreadable", "puzzle", p.String(), "error", err)
		status = "Input unreadable"
	case !info.Exists:
		status = "Input not found"
	default:
		status = fmt.Sprintf("%d lines, %d bytes", info.Lines, info.Bytes)
	}

	return ui.Column(4,
		ui.TextNode("Input: "+info.Path, NoteSize, muted),
		ui.TextNode(status, NoteSize, muted),
	)
}

// Heading returns "<year> Day <day>", with the puzzle title when known.
func Heading(p components.Puzzle, title string) string {
	if title == "" {
		return fmt.Sprintf("%d Day %d", p.Year, p.Day)
	}
	return fmt.Sprintf("%d Day %d: %s", p.Year, p.Day, title)
}

// Placeholder is used for days with no registered plugin.
func Placeholder(p components.Puzzle) Plugin {
	return Plugin{
		Build: func(root components.PuzzleRoot, env Env) ui.Bundle {
			return Page(root, env, Heading(p, ""),
				Paragraph(env, "This puzzle has no content yet."),
				InputStatus(env, p),
			)
		},
	}
}
