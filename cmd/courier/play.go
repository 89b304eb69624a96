package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lanegames/courier/internal/core"
	"github.com/lanegames/courier/internal/games/courier"
	"github.com/lanegames/courier/internal/platform/tui"
	"github.com/lanegames/courier/internal/registry"
	"github.com/lanegames/courier/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. With no argument the courier game is started.

Controls:
  Arrows/WASD/HJKL - Move
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - More lives, thinner and slower traffic
  normal - Default config values
  hard   - Fewer lives, faster traffic

Examples:
  courier play
  courier play --difficulty easy
  courier play --config ./my-courier.yaml
  courier play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "courier"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'courier list' to see available games.")
		os.Exit(1)
	}

	// Terminal size before the alt screen takes over
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Config path and difficulty apply before game creation
	if gameID == "courier" {
		courier.SetConfigPath(flagConfig)
		courier.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
