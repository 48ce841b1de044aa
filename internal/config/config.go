// Package config provides YAML-based configuration loading for the
// snake simulation and its stage table.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration describes values
// the simulation cannot run with.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all configuration for the gate snake game.
type SnakeConfig struct {
	Board    SnakeBoard    `yaml:"board"`
	Pacing   SnakePacing   `yaml:"pacing"`
	Effects  SnakeEffects  `yaml:"effects"`
	Items    SnakeItems    `yaml:"items"`
	Gates    SnakeGates    `yaml:"gates"`
	Missions SnakeMissions `yaml:"missions"`
	Stages   []SnakeStage  `yaml:"stages"`
}

// SnakeBoard defines the board dimensions, borders included.
type SnakeBoard struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// SnakePacing defines how platform frames map to simulation ticks.
type SnakePacing struct {
	MoveEveryFrames  int `yaml:"move_every_frames"`  // frames between ticks at normal speed
	MinMoveFrames    int `yaml:"min_move_frames"`    // floor for endless mode speed-ups
	StageClearFrames int `yaml:"stage_clear_frames"` // length of the stage-clear overlay
}

// SnakeEffects defines the timed item effects, in ticks.
type SnakeEffects struct {
	ShieldTicks     int     `yaml:"shield_ticks"`
	BoostTicks      int     `yaml:"boost_ticks"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
}

// SnakeItems defines item placement parameters.
type SnakeItems struct {
	StaleTicks    int `yaml:"stale_ticks"`    // moving ticks before an untouched item respawns
	SpawnAttempts int `yaml:"spawn_attempts"` // random draws before the deterministic scan
}

// SnakeGates defines gate pair parameters.
type SnakeGates struct {
	RelocateTicks int `yaml:"relocate_ticks"`
}

// SnakeMissions defines the thresholds of the four stage missions.
type SnakeMissions struct {
	Length int `yaml:"length"`
	Growth int `yaml:"growth"`
	Poison int `yaml:"poison"`
	Gates  int `yaml:"gates"`
}

// SnakeStage is one entry of the stage table.
type SnakeStage struct {
	Name     string `yaml:"name"`
	Variant  string `yaml:"variant"` // basic, maze, islands or cross
	MinWalls int    `yaml:"min_walls"`
	MaxWalls int    `yaml:"max_walls"`
}

// Validate reports the first impossible value in the configuration.
// Returned errors wrap ErrInvalid.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Height < 9 || c.Board.Width < 9:
		return fmt.Errorf("%w: board %dx%d is smaller than 9x9", ErrInvalid, c.Board.Height, c.Board.Width)
	case c.Pacing.MoveEveryFrames <= 0:
		return fmt.Errorf("%w: pacing.move_every_frames must be positive", ErrInvalid)
	case c.Pacing.MinMoveFrames <= 0 || c.Pacing.MinMoveFrames > c.Pacing.MoveEveryFrames:
		return fmt.Errorf("%w: pacing.min_move_frames must be in [1, move_every_frames]", ErrInvalid)
	case c.Effects.ShieldTicks <= 0 || c.Effects.BoostTicks <= 0:
		return fmt.Errorf("%w: effect durations must be positive", ErrInvalid)
	case c.Effects.BoostMultiplier < 1:
		return fmt.Errorf("%w: effects.boost_multiplier must be at least 1", ErrInvalid)
	case c.Items.StaleTicks <= 0 || c.Items.SpawnAttempts <= 0:
		return fmt.Errorf("%w: items.stale_ticks and items.spawn_attempts must be positive", ErrInvalid)
	case c.Gates.RelocateTicks <= 0:
		return fmt.Errorf("%w: gates.relocate_ticks must be positive", ErrInvalid)
	case c.Missions.Length < 3:
		return fmt.Errorf("%w: missions.length must be at least 3", ErrInvalid)
	case len(c.Stages) == 0:
		return fmt.Errorf("%w: stage table is empty", ErrInvalid)
	}

	for i, st := range c.Stages {
		if st.MinWalls < 0 || st.MaxWalls < st.MinWalls {
			return fmt.Errorf("%w: stage %d (%s) has wall range [%d, %d]", ErrInvalid, i+1, st.Name, st.MinWalls, st.MaxWalls)
		}
		switch st.Variant {
		case "basic", "maze", "islands", "cross":
		default:
			return fmt.Errorf("%w: stage %d has unknown variant %q", ErrInvalid, i+1, st.Variant)
		}
	}
	return nil
}
