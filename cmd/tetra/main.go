// tetra is a terminal Tetris with classic rules, played locally or over SSH.
//
// Usage:
//
//	tetra list               - List available play modes
//	tetra play <mode>        - Play a mode
//	tetra serve              - Start SSH server for remote play
//	tetra scores [mode]      - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetra/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register the play modes
	_ "github.com/nvoss/tetra/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetra",
	Short: "Tetra - Classic falling blocks in your terminal",
	Long: `Tetra is a terminal Tetris with a 10x20 well, SRS rotation with
wall kicks, a 7-bag randomizer and classic scoring.

Available commands:
  list     - Show all available play modes
  play     - Play a mode directly
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetra list
  tetra play marathon
  tetra play sprint --level 5
  tetra serve --ssh :2222
  tetra scores marathon`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetra/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
