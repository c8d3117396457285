// skyrunner is a terminal endless runner: jump across procedurally
// generated platforms, collect coins and powerups, and chase a high score.
//
// Usage:
//
//	skyrunner play              - Play in the current terminal
//	skyrunner serve             - Start SSH server for remote play
//	skyrunner scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.skyrunner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/sky-runner/internal/runner"
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
	Use:   "skyrunner",
	Short: "Sky Runner - An endless runner in your terminal",
	Long: `Sky Runner is a terminal-based endless runner. Sprint across
procedurally generated platforms, double-jump over gaps, glide with the
helicopter hat, and grab coins and powerups while the pace ramps up.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  skyrunner play
  skyrunner play --difficulty hard
  skyrunner serve --ssh :2222
  skyrunner scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyrunner/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
