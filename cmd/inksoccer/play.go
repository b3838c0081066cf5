package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ink-soccer/internal/platform/tui"
	"github.com/vovakirdan/ink-soccer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match in the current terminal.

Controls:
  Left drag   - Place a boost pad (drag length sets the launch strength)
  Right drag  - Paint an ink wall (limited ink, walls decay after 2s)
  T           - Switch which side you control
  R           - Reset the match
  Q/Ctrl+C    - Quit

The mouse must be supported by your terminal. During kickoff the ball waits
for a boost touch from the kicking side's half.

Examples:
  inksoccer play
  inksoccer play --seed 42
  inksoccer play --fps 120`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(store, cfg, flagSeed, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
