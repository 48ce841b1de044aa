package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gate-snake/internal/games/snake"
	"github.com/vovakirdan/gate-snake/internal/platform/tui"
	"github.com/vovakirdan/gate-snake/internal/registry"
)

var flagStage int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. Without a mode a selector offers campaign, endless
or a starting stage.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart (after game over)
  Esc          - Leave the game
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

With --debug:
  D            - Complete the stage missions
  1-4          - Jump to a stage

Examples:
  gatesnake play
  gatesnake play snake --stage 3
  gatesnake play snake_endless
  gatesnake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStage, "stage", 0, "Starting stage of the campaign (1-based)")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := runtimeConfig()

	gameID := "snake"
	stage := flagStage
	if len(args) == 1 {
		gameID = args[0]
	} else if stage == 0 {
		selection, updatedCfg, err := tui.RunStageSelector(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		gameID = selection.GameID
		stage = selection.Stage
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gatesnake list' to see available modes.")
		os.Exit(1)
	}
	if stage < 0 || stage > snake.LevelCount() {
		fmt.Fprintf(os.Stderr, "Error: stage must be between 1 and %d\n", snake.LevelCount())
		os.Exit(1)
	}
	snake.SetStartLevel(stage)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	svc, release, err := openServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, svc, cfg)
	if runErr == nil && svc.Journal != nil {
		if rows, err := svc.Journal.RunResults(svc.RunID); err == nil && len(rows) > 0 {
			_, runErr = tui.RunResults(svc.Journal, cfg.ScreenW, cfg.ScreenH)
		}
	}

	// Release before potential exit
	release()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
