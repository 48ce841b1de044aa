package sfx

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/gate-snake/internal/core"
)

// drain streams s to the end and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 || buf[j][1] < -1 || buf[j][1] > 1 {
				t.Fatalf("sample %d out of range: %v", total+j, buf[j])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return total
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise}
	for _, w := range waves {
		n := drain(t, Tone(440, 50*time.Millisecond, w, rate))
		if want := rate.N(50 * time.Millisecond); n != want {
			t.Errorf("wave %d: got %d samples, want %d", w, n, want)
		}
	}
}

func TestShapeFadesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	s := Shape(Tone(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("got %d samples, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample should be silent, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain should be full volume, got %f", buf[50][0])
	}
	if last := buf[n-1][0]; last <= 0 || last >= 1 {
		t.Errorf("last sample should be fading, got %f", last)
	}
}

func TestSoundsAreFinite(t *testing.T) {
	cues := []Cue{CueGrowth, CuePoison, CuePowerUp, CueGate, CueDeath, CueStageClear, CueComplete}
	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			s := Sound(c, SampleRate)
			if s == nil {
				t.Fatal("expected a streamer")
			}
			n := drain(t, s)
			if n == 0 || n > SampleRate.N(time.Second) {
				t.Errorf("unexpected length %d", n)
			}
		})
	}
	if Sound(CueNone, SampleRate) != nil {
		t.Error("CueNone should have no sound")
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		ev   core.Event
		want Cue
	}{
		{core.Event{Kind: core.EventItemPicked, Detail: "growth"}, CueGrowth},
		{core.Event{Kind: core.EventItemPicked, Detail: "poison"}, CuePoison},
		{core.Event{Kind: core.EventItemPicked, Detail: "shield"}, CuePowerUp},
		{core.Event{Kind: core.EventGateUsed}, CueGate},
		{core.Event{Kind: core.EventGameOver}, CueDeath},
		{core.Event{Kind: core.EventStageCleared}, CueStageClear},
		{core.Event{Kind: core.EventCampaignComplete}, CueComplete},
		{core.Event{Kind: core.EventStageStarted}, CueNone},
	}
	for _, tt := range tests {
		if got := CueFor(tt.ev); got != tt.want {
			t.Errorf("CueFor(%v) = %v, want %v", tt.ev.Kind, got, tt.want)
		}
	}
}

func TestSilentPlayer(t *testing.T) {
	p := NewPlayer()
	if p.Enabled() {
		t.Fatal("new player should be silent")
	}
	p.Play(CueGrowth)
	if p.Played() != 0 {
		t.Errorf("silent player should not queue cues, played %d", p.Played())
	}
	p.Close()
}
