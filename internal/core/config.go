package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to seed their random source.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driven by the platform (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended and waits for a restart
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a frame.
type EventKind int

const (
	EventNone EventKind = iota
	EventStageStarted
	EventItemPicked
	EventGateUsed
	EventStageCleared
	EventGameOver
	EventCampaignComplete
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStageStarted:
		return "stage_started"
	case EventItemPicked:
		return "item_picked"
	case EventGateUsed:
		return "gate_used"
	case EventStageCleared:
		return "stage_cleared"
	case EventGameOver:
		return "game_over"
	case EventCampaignComplete:
		return "campaign_complete"
	default:
		return "none"
	}
}

// Event is emitted by a game so the platform can react (sounds, journal, logs)
// without inspecting game internals.
type Event struct {
	Kind   EventKind
	Stage  int    // 1-based stage the event belongs to
	Detail string // Item name, failure reason, stage name...
	Score  int    // Score at the time of the event
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
