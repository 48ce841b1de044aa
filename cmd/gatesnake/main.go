// gatesnake is a terminal snake game with teleport gates, timed items and
// per-stage missions.
//
// Usage:
//
//	gatesnake list                - List modes and stages
//	gatesnake play [mode]         - Play campaign (default) or endless
//	gatesnake menu                - Pick modes interactively, browse results
//	gatesnake simulate            - Run the autopilot headless and print stats
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Custom snake.yaml
//	--log-file <path>  - Write the session log to a file
//	--sound            - Play sound cues
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gate-snake/internal/config"
	"github.com/vovakirdan/gate-snake/internal/core"
	"github.com/vovakirdan/gate-snake/internal/games/snake"
	"github.com/vovakirdan/gate-snake/internal/platform/tui"
	"github.com/vovakirdan/gate-snake/internal/sfx"
	"github.com/vovakirdan/gate-snake/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagSound   bool
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gatesnake",
	Short: "Gate Snake - a snake game with teleport gates",
	Long: `Gate Snake is a terminal snake game. Eat growth items, avoid poison,
travel through gates and complete the missions of each stage.

Available commands:
  list      - Show modes and stages
  play      - Play a mode directly
  menu      - Interactive mode picker
  simulate  - Run the autopilot without a terminal

Examples:
  gatesnake play
  gatesnake play snake_endless --fps 30
  gatesnake menu --sound
  gatesnake simulate --runs 20 --seed 42`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return selectConfig(flagConfig)
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the session log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug keys (D: complete missions, 1-4: jump to stage)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
}

// selectConfig checks that the configuration at path (or on the search path
// when empty) loads, then hands the path to the game.
func selectConfig(path string) error {
	if _, err := config.LoadSnake(path); err != nil {
		return err
	}
	snake.SetConfigPath(path)
	return nil
}

// newLogger returns the session logger. The TUI owns the terminal, so
// without a log file the output is discarded.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gatesnake",
	})
}

// openLogFile returns the --log-file writer and its closer.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openServices prepares the journal, the sound player and the logger of an
// interactive session. The returned function releases them.
func openServices() (tui.Services, func(), error) {
	w, closeLog, err := openLogFile()
	if err != nil {
		return tui.Services{}, nil, err
	}
	logger := newLogger(w)

	svc := tui.Services{
		Logger: logger,
		RunID:  storage.NewRunID(),
		Debug:  flagDebug,
		Sound:  sfx.NewPlayer(),
	}
	logger.Info("run started", "run", svc.RunID)

	journal, err := storage.OpenMemory()
	if err != nil {
		// Continue without a journal - the game still works
		logger.Warn("could not open the results journal", "error", err)
	} else {
		svc.Journal = journal
	}

	if flagSound {
		if err := svc.Sound.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		}
	}

	release := func() {
		svc.Sound.Close()
		if svc.Journal != nil {
			svc.Journal.Close()
		}
		closeLog()
	}
	return svc, release, nil
}
