package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/config"
	"github.com/pthm-cable/advent/puzzles"
)

var inputCmd = &cobra.Command{
	Use:   "input <year> <day>",
	Short: "Show the input file status for a puzzle",
	Long:  `Reports where a puzzle's input is expected and whether it is present.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runInput,
}

func runInput(cmd *cobra.Command, args []string) error {
	p, err := parsePuzzle(args[0], args[1])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return writeInput(cmd.OutOrStdout(), cfg.Puzzles.InputDir, p)
}

// parsePuzzle validates a year and day given on the command line.
func parsePuzzle(yearArg, dayArg string) (components.Puzzle, error) {
	year, err := strconv.Atoi(yearArg)
	if err != nil || year < 2015 || year > 65535 {
		return components.Puzzle{}, fmt.Errorf("invalid year %q", yearArg)
	}
	day, err := strconv.Atoi(dayArg)
	if err != nil || day < 1 || day > config.MaxDay {
		return components.Puzzle{}, fmt.Errorf("invalid day %q: want 1..%d", dayArg, config.MaxDay)
	}
	return components.Puzzle{Year: components.Year(year), Day: components.Day(day)}, nil
}

func writeInput(w io.Writer, dir string, p components.Puzzle) error {
	info, err := puzzles.ReadInputInfo(dir, p)
	if err != nil {
		return fmt.Errorf("puzzle %s: %w", p, err)
	}

	title := "(no page registered)"
	if plugin, ok := puzzles.Lookup(p); ok {
		title = plugin.Title
	}
	fmt.Fprintf(w, "%s %s\n", styleHeader.Sprint(p.String()), title)
	fmt.Fprintf(w, "  path:   %s\n", info.Path)

	if !info.Exists {
		fmt.Fprintf(w, "  status: %s\n", color.Style{color.FgRed}.Sprint("missing"))
		return nil
	}
	fmt.Fprintf(w, "  status: %s\n", styleContent.Sprint("present"))
	fmt.Fprintf(w, "  lines:  %d\n", info.Lines)
	fmt.Fprintf(w, "  bytes:  %d\n", info.Bytes)
	return nil
}
