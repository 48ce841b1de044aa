package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration used when the
// embedded YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Height: 21,
			Width:  41,
		},
		Pacing: SnakePacing{
			MoveEveryFrames:  12,
			MinMoveFrames:    2,
			StageClearFrames: 90,
		},
		Effects: SnakeEffects{
			ShieldTicks:     40,
			BoostTicks:      40,
			BoostMultiplier: 1.5,
		},
		Items: SnakeItems{
			StaleTicks:    50,
			SpawnAttempts: 64,
		},
		Gates: SnakeGates{
			RelocateTicks: 80,
		},
		Missions: SnakeMissions{
			Length: 7,
			Growth: 5,
			Poison: 2,
			Gates:  1,
		},
		Stages: []SnakeStage{
			{Name: "Basic", Variant: "basic", MinWalls: 2, MaxWalls: 5},
			{Name: "Maze", Variant: "maze", MinWalls: 2, MaxWalls: 5},
			{Name: "Islands", Variant: "islands", MinWalls: 2, MaxWalls: 5},
			{Name: "Cross", Variant: "cross", MinWalls: 2, MaxWalls: 5},
		},
	}
}
