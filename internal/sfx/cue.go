package sfx

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/gate-snake/internal/core"
)

// Cue names a sound.
type Cue int

const (
	CueNone Cue = iota
	CueGrowth
	CuePoison
	CuePowerUp // time, shield and random items
	CueGate
	CueDeath
	CueStageClear
	CueComplete
)

func (c Cue) String() string {
	switch c {
	case CueGrowth:
		return "growth"
	case CuePoison:
		return "poison"
	case CuePowerUp:
		return "power_up"
	case CueGate:
		return "gate"
	case CueDeath:
		return "death"
	case CueStageClear:
		return "stage_clear"
	case CueComplete:
		return "complete"
	default:
		return "none"
	}
}

// CueFor maps a game event to the cue it sounds, CueNone for silent events.
func CueFor(ev core.Event) Cue {
	switch ev.Kind {
	case core.EventItemPicked:
		switch ev.Detail {
		case "growth":
			return CueGrowth
		case "poison":
			return CuePoison
		default:
			return CuePowerUp
		}
	case core.EventGateUsed:
		return CueGate
	case core.EventGameOver:
		return CueDeath
	case core.EventStageCleared:
		return CueStageClear
	case core.EventCampaignComplete:
		return CueComplete
	default:
		return CueNone
	}
}

// Sound builds a fresh, finite streamer for c, or nil for CueNone.
func Sound(c Cue, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueGrowth:
		return gain(beep.Seq(
			note(659.25, 60*ms, WaveSquare, rate),
			note(987.77, 90*ms, WaveSquare, rate),
		), 0.25)
	case CuePoison:
		return gain(note(146.83, 180*ms, WaveSaw, rate), 0.3)
	case CuePowerUp:
		return gain(beep.Mix(
			gain(note(880, 150*ms, WaveSine, rate), 0.7),
			gain(note(1760, 150*ms, WaveSine, rate), 0.3),
		), 0.4)
	case CueGate:
		return gain(Shape(Tone(0, 120*ms, WaveNoise, rate), 120*ms, 20*ms, 80*ms, rate), 0.2)
	case CueDeath:
		return gain(beep.Seq(
			note(220, 120*ms, WaveSaw, rate),
			note(164.81, 120*ms, WaveSaw, rate),
			note(110, 260*ms, WaveSaw, rate),
		), 0.3)
	case CueStageClear:
		return gain(beep.Seq(
			note(523.25, 90*ms, WaveSquare, rate),
			note(659.25, 90*ms, WaveSquare, rate),
			note(783.99, 180*ms, WaveSquare, rate),
		), 0.25)
	case CueComplete:
		return gain(beep.Seq(
			note(523.25, 90*ms, WaveSquare, rate),
			note(659.25, 90*ms, WaveSquare, rate),
			note(783.99, 90*ms, WaveSquare, rate),
			note(1046.5, 320*ms, WaveSquare, rate),
		), 0.25)
	default:
		return nil
	}
}
