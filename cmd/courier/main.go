// courier is a terminal arcade game: dodge truck traffic, pick up the
// parcel, and deliver it to the depot before you run out of lives.
//
// Usage:
//
//	courier play             - Play the game
//	courier list             - List available games
//	courier scores           - Show high scores
//	courier stats            - Show aggregated run statistics
//	courier serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.courier/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/lanegames/courier/internal/games/courier"
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
	Use:   "courier",
	Short: "Courier - a terminal delivery arcade game",
	Long: `Courier is a terminal arcade game. Cross three lanes of truck
traffic, grab the parcel, and carry it to the depot. Damaged parcels pay
less, destroyed parcels cost you points, and the traffic speeds up as you
level.

Available commands:
  play     - Play the game
  list     - Show all available games
  scores   - View high scores
  stats    - View aggregated run statistics
  serve    - Start SSH server for remote play

Examples:
  courier play
  courier play --difficulty hard
  courier scores
  courier serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.courier/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
