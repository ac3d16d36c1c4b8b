package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/config"
	"github.com/pthm-cable/advent/puzzles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered puzzles",
	Long:  `Shows every registered puzzle page and the days the menu offers.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	styleHeader  = color.Style{color.FgYellow, color.OpBold}
	styleContent = color.Style{color.FgGreen, color.OpBold}
	styleEmpty   = color.Style{color.FgGray}
)

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	writeList(cmd.OutOrStdout(), cfg, puzzles.List())
	return nil
}

func writeList(w io.Writer, cfg *config.Config, infos []puzzles.Info) {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No puzzles registered.")
	} else {
		fmt.Fprintln(w, styleHeader.Sprint("Registered puzzles:"))
		fmt.Fprintln(w)

		maxLen := len("Puzzle")
		for _, info := range infos {
			if n := len(info.Puzzle.String()); n > maxLen {
				maxLen = n
			}
		}
		fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "Puzzle", "Title")
		fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "------", "-----")
		for _, info := range infos {
			fmt.Fprintf(w, "  %-*s  %s\n", maxLen, info.Puzzle, info.Title)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeader.Sprint("Menu:"))
	for _, y := range cfg.Menu.Years {
		var days []string
		for _, d := range cfg.DaysOf(y.Year) {
			p := components.Puzzle{Year: components.Year(y.Year), Day: components.Day(d)}
			if puzzles.Exists(p) {
				days = append(days, styleContent.Sprintf("%d", d))
			} else {
				days = append(days, styleEmpty.Sprintf("%d", d))
			}
		}
		fmt.Fprintf(w, "  %d: %s\n", y.Year, strings.Join(days, " "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'puzzles input <year> <day>' to check an input file.")
}
