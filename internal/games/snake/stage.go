package snake

import (
	"fmt"

	"github.com/vovakirdan/gate-snake/internal/config"
)

// PointsStage is awarded for every cleared stage.
const PointsStage = 100

// Package-level selections made by the CLI before a game is created.
var (
	configPath         string
	selectedStartLevel int
)

// SetConfigPath sets a custom config file path. Empty uses the search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the starting stage (1-based). 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// loadConfig loads the configuration from the selected path or the search
// path. A broken custom file is an error.
func loadConfig() (config.SnakeConfig, error) {
	return config.LoadSnake(configPath)
}

// stageTable returns the stages of the loaded configuration, or of the
// built-in defaults when it cannot be loaded.
func stageTable() []config.SnakeStage {
	cfg, err := loadConfig()
	if err != nil {
		return config.DefaultSnakeConfig().Stages
	}
	return cfg.Stages
}

// LevelCount returns the number of stages in the stage table.
func LevelCount() int {
	return len(stageTable())
}

// LevelNames returns the names of all stages.
func LevelNames() []string {
	stages := stageTable()
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name
	}
	return names
}

// RulesFromConfig converts the configuration into session rules.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		ShieldTicks:     cfg.Effects.ShieldTicks,
		BoostTicks:      cfg.Effects.BoostTicks,
		BoostMultiplier: cfg.Effects.BoostMultiplier,
		StaleTicks:      cfg.Items.StaleTicks,
		SpawnAttempts:   cfg.Items.SpawnAttempts,
		RelocateTicks:   cfg.Gates.RelocateTicks,
		Missions: MissionRules{
			Length: cfg.Missions.Length,
			Growth: cfg.Missions.Growth,
			Poison: cfg.Missions.Poison,
			Gates:  cfg.Missions.Gates,
		},
	}
}

// StageFromConfig builds the stage at index (0-based, wrapping around the
// table) and draws its interior wall count from the stage's range.
func StageFromConfig(cfg config.SnakeConfig, index int, rng RNG) (StageConfig, error) {
	if len(cfg.Stages) == 0 {
		return StageConfig{}, fmt.Errorf("snake: empty stage table")
	}
	pos := index % len(cfg.Stages)
	st := cfg.Stages[pos]

	variant, err := ParseVariant(st.Variant)
	if err != nil {
		return StageConfig{}, err
	}

	walls := st.MinWalls
	if span := st.MaxWalls - st.MinWalls; span > 0 {
		walls += rng.Intn(span + 1)
	}

	return StageConfig{
		Height:  cfg.Board.Height,
		Width:   cfg.Board.Width,
		Walls:   walls,
		Variant: variant,
		Index:   pos + 1,
	}, nil
}
