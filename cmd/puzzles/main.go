// puzzles inspects the puzzle registry and input files without opening a window.
//
// Usage:
//
//	puzzles list                 - List registered puzzles and the configured menu
//	puzzles input <year> <day>   - Show the input file status for one puzzle
//
// Global flags:
//
//	--config <path>     - Config file (default: embedded defaults)
//	--input-dir <path>  - Override puzzles.input_dir
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/advent/config"

	// Import years to register their puzzles
	_ "github.com/pthm-cable/advent/puzzles/year2025"
)

var (
	// Global flags
	flagConfig   string
	flagInputDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "Inspect Advent of Code puzzle content",
	Long: `puzzles reports which puzzle pages are registered and whether their
input files are present.

Examples:
  puzzles list
  puzzles input 2025 1
  puzzles --input-dir ~/aoc input 2025 3`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config.yaml (empty = use defaults)")
	rootCmd.PersistentFlags().StringVar(&flagInputDir, "input-dir", "", "Input directory (empty = use config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inputCmd)
}

// loadConfig loads the config named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagInputDir != "" {
		cfg.Puzzles.InputDir = flagInputDir
	}
	return cfg, nil
}
