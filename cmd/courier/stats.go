package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lanegames/courier/internal/registry"
	"github.com/lanegames/courier/internal/storage"
)

var flagStatsRuns int

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show aggregated run statistics",
	Long: `Display run statistics: totals across all recorded runs plus the
most recent runs.

Examples:
  courier stats
  courier stats --runs 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsRuns, "runs", 10, "Number of recent runs to list")
}

func runStats(cmd *cobra.Command, args []string) {
	gameID := "courier"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'courier list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.Stats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run Statistics - %s\n", gameID)
	fmt.Println()

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'courier play %s' to record the first run!\n", gameID)
		return
	}

	fmt.Printf("  Runs:            %d\n", stats.Runs)
	fmt.Printf("  Best score:      %d\n", stats.HighScore)
	fmt.Printf("  Average score:   %.1f\n", stats.AvgScore)
	fmt.Printf("  Total delivered: %d\n", stats.TotalDelivered)
	fmt.Printf("  Total lost:      %d\n", stats.TotalLost)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:     %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(gameID, flagStatsRuns)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-8s  %-9s  %-5s  %-5s  %-6s  %s\n", "Score", "Delivered", "Lost", "Level", "Time", "Date")
	fmt.Printf("  %-8s  %-9s  %-5s  %-5s  %-6s  %s\n", "-----", "---------", "----", "-----", "----", "----")
	for _, r := range runs {
		clock := fmt.Sprintf("%02d:%02d", r.DurationSecs/60, r.DurationSecs%60)
		fmt.Printf("  %-8d  %-9d  %-5d  %-5d  %-6s  %s\n",
			r.Score, r.Delivered, r.Lost, r.Level, clock, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
