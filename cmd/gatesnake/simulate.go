package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gate-snake/internal/config"
	"github.com/vovakirdan/gate-snake/internal/games/snake"
	"github.com/vovakirdan/gate-snake/internal/storage"
)

// simulateMode tags journal rows written by the simulate command.
const simulateMode = "simulate"

var (
	flagRuns     int
	flagMaxTicks int
	flagSimStage int
	flagVerbose  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot headless and print stats",
	Long: `Play the campaign with the autopilot, without a terminal UI.
Each run starts at --stage and goes on until the snake dies, the campaign
is complete or the tick budget is spent. Stage results are journaled in
memory and summarized at the end.

Examples:
  gatesnake simulate
  gatesnake simulate --runs 100 --seed 7
  gatesnake simulate --stage 2 --ticks 5000 -v`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "ticks", 3000, "Tick budget of one run")
	simulateCmd.Flags().IntVar(&flagSimStage, "stage", 1, "Starting stage (1-based)")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every stage")
}

// simulator plays runs against one configuration and journals each stage.
type simulator struct {
	cfg     config.SnakeConfig
	rules   snake.Rules
	rng     *rand.Rand
	journal *storage.Store
	runID   string
	logger  *log.Logger
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		logger.Fatal("could not load configuration", "error", err)
	}
	if flagSimStage < 1 || flagSimStage > len(cfg.Stages) {
		logger.Fatal("stage out of range", "stage", flagSimStage, "stages", len(cfg.Stages))
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	journal, err := storage.OpenMemory()
	if err != nil {
		logger.Fatal("could not open the results journal", "error", err)
	}
	defer journal.Close()

	sim := &simulator{
		cfg:     cfg,
		rules:   snake.RulesFromConfig(cfg),
		rng:     rand.New(rand.NewSource(seed)),
		journal: journal,
		runID:   storage.NewRunID(),
		logger:  logger,
	}
	logger.Info("simulation started", "runs", flagRuns, "seed", seed, "run", sim.runID)

	for i := 1; i <= flagRuns; i++ {
		if err := sim.run(i); err != nil {
			logger.Error("run failed", "run", i, "error", err)
		}
	}

	if err := sim.report(); err != nil {
		logger.Fatal("could not summarize", "error", err)
	}
}

// run plays one run from the starting stage.
func (s *simulator) run(n int) error {
	stageIndex := flagSimStage - 1
	budget := flagMaxTicks
	banked := 0
	var session *snake.Session

	for budget > 0 {
		sc, err := snake.StageFromConfig(s.cfg, stageIndex, s.rng)
		if err != nil {
			return err
		}
		if session == nil {
			session, err = snake.NewSession(s.rules, s.rng, sc)
		} else {
			err = session.ResetStage(sc)
		}
		if err != nil {
			return err
		}

		outcome, reason := storage.OutcomeAbandoned, ""
		for budget > 0 && outcome == storage.OutcomeAbandoned {
			res := session.Tick(snake.Input{Dir: snake.Autopilot(session.Snapshot(), s.rng)})
			budget--
			switch {
			case !res.Alive:
				outcome, reason = storage.OutcomeDied, res.Reason
			case res.MissionCompleted:
				outcome = storage.OutcomeCleared
			}
		}

		v := session.Snapshot()
		score := banked + v.Score
		if outcome == storage.OutcomeCleared {
			score += snake.PointsStage
			banked = score
		}
		row := storage.StageResult{
			RunID:     s.runID,
			Mode:      simulateMode,
			Stage:     stageIndex + 1,
			StageName: s.cfg.Stages[stageIndex].Name,
			Outcome:   outcome,
			Reason:    reason,
			Length:    v.Snake.Len(),
			MaxLength: v.MaxLength,
			Growth:    v.Counters.Growth,
			Poison:    v.Counters.Poison,
			Gates:     v.Counters.Gates,
			Ticks:     v.Ticks,
			Score:     score,
		}
		if _, err := s.journal.RecordStage(row); err != nil {
			return err
		}
		s.logger.Debug("stage finished", "run", n, "stage", row.Stage, "outcome", outcome, "reason", reason, "ticks", v.Ticks, "score", score)

		if outcome != storage.OutcomeCleared {
			return nil
		}
		stageIndex++
		if stageIndex >= len(s.cfg.Stages) {
			s.logger.Debug("campaign complete", "run", n, "score", score)
			return nil
		}
	}
	return nil
}

// report prints the journal summary to stdout.
func (s *simulator) report() error {
	stats, err := s.journal.Stats(simulateMode)
	if err != nil {
		return err
	}
	reasons, err := s.journal.DeathReasons()
	if err != nil {
		return err
	}
	rows, err := s.journal.RunResults(s.runID)
	if err != nil {
		return err
	}

	fmt.Println("Simulation results")
	fmt.Println()
	fmt.Printf("  %-14s %d\n", "Runs", flagRuns)
	fmt.Printf("  %-14s %d\n", "Stages played", stats.Stages)
	fmt.Printf("  %-14s %d\n", "Stages cleared", stats.Cleared)
	fmt.Printf("  %-14s %d\n", "Deaths", stats.Deaths)
	fmt.Printf("  %-14s %d\n", "Best score", stats.BestScore)
	fmt.Printf("  %-14s %d\n", "Longest snake", stats.LongestSnake)
	fmt.Printf("  %-14s %d\n", "Moving ticks", stats.TotalTicks)

	// Cleared count per stage
	cleared := make(map[string]int)
	for _, r := range rows {
		if r.Outcome == storage.OutcomeCleared {
			cleared[r.StageName]++
		}
	}
	fmt.Println()
	fmt.Println("Cleared by stage:")
	for _, st := range s.cfg.Stages {
		fmt.Printf("  %-14s %d\n", st.Name, cleared[st.Name])
	}

	if len(reasons) > 0 {
		names := make([]string, 0, len(reasons))
		for r := range reasons {
			names = append(names, r)
		}
		sort.Slice(names, func(i, j int) bool { return reasons[names[i]] > reasons[names[j]] })

		fmt.Println()
		fmt.Println("Deaths by reason:")
		for _, r := range names {
			fmt.Printf("  %4d  %s\n", reasons[r], r)
		}
	}
	return nil
}
