package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ink-soccer/internal/platform/tui"
	"github.com/vovakirdan/ink-soccer/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recent session results",
	Long: `Display recent match sessions and aggregate statistics.

By default an interactive table opens; use --plain to print to stdout.

Examples:
  inksoccer scores
  inksoccer scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print sessions to stdout instead of the interactive view")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	sessions, err := store.RecentSessions(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'inksoccer play' to record the first one!")
		return
	}

	fmt.Printf("  %-16s  %-9s  %-8s  %-8s  %s\n", "Date", "Score", "Winner", "Length", "Where")
	fmt.Printf("  %-16s  %-9s  %-8s  %-8s  %s\n", "----", "-----", "------", "------", "-----")

	for _, s := range sessions {
		winner := "draw"
		switch {
		case s.LeftScore > s.RightScore:
			winner = "left"
		case s.RightScore > s.LeftScore:
			winner = "right"
		}
		where := "local"
		if s.Remote {
			where = "ssh"
		}
		fmt.Printf("  %-16s  %d : %-5d  %-8s  %dm%02ds    %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.LeftScore, s.RightScore, winner,
			s.DurationSecs/60, s.DurationSecs%60, where)
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Totals: %d sessions, left %d - right %d - draws %d, %d goals\n",
			stats.Sessions, stats.LeftWins, stats.RightWins, stats.Draws, stats.TotalGoals)
	}
}
