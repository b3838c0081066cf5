// inksoccer is a two-player arcade soccer prototype for the terminal.
// Drag boost pads and paint decaying ink walls to steer the ball into the
// opponent's goal.
//
// Usage:
//
//	inksoccer play           - Play a match in the current terminal
//	inksoccer serve          - Start SSH server for remote play
//	inksoccer scores         - Show recent session results
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible kickoffs
//	--db <path>       - Set database path (default: ~/.inksoccer/sessions.db)
//	--config <path>   - Path to platform config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ink-soccer/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inksoccer",
	Short: "Ink Soccer - arcade soccer in your terminal",
	Long: `Ink Soccer is a terminal arcade soccer prototype. Both sides are
played with the mouse: drag with the left button to place a boost pad that
launches the ball, drag with the right button to paint a decaying ink wall.

Available commands:
  play     - Play a match in this terminal
  serve    - Start SSH server for remote play
  scores   - View recent session results

Examples:
  inksoccer play
  inksoccer play --fps 120 --seed 42
  inksoccer serve --ssh :2222
  inksoccer scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to sessions database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to platform config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the platform config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Tick.Rate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}
