package tui

import (
	"github.com/vovakirdan/gate-snake/internal/games/snake"
	"github.com/vovakirdan/gate-snake/internal/storage"
)

// stageReporter is implemented by games that can summarize a stage.
type stageReporter interface {
	StageReport() snake.StageReport
}

// stageReport summarizes the stage the game is on, if the game can.
func (m *Model) stageReport() (snake.StageReport, bool) {
	rep, ok := m.game.(stageReporter)
	if !ok {
		return snake.StageReport{}, false
	}
	return rep.StageReport(), true
}

// record writes the current stage to the journal and closes it.
func (m *Model) record(outcome, reason string) {
	r, ok := m.stageReport()
	m.recordReport(r, ok, outcome, reason)
}

// recordReport journals r and closes the open stage. Without a report the
// stage is closed unrecorded.
func (m *Model) recordReport(r snake.StageReport, ok bool, outcome, reason string) {
	m.stageOpen = false
	if m.svc.Journal == nil || !ok {
		return
	}

	row := StageResultFromReport(m.svc.RunID, r, outcome, reason)
	if _, err := m.svc.Journal.RecordStage(row); err != nil && m.svc.Logger != nil {
		m.svc.Logger.Warn("could not record stage", "error", err)
	}
}

// StageResultFromReport converts a stage report into a journal row.
func StageResultFromReport(runID string, r snake.StageReport, outcome, reason string) storage.StageResult {
	return storage.StageResult{
		RunID:     runID,
		Mode:      r.Mode,
		Stage:     r.Stage,
		StageName: r.Name,
		Outcome:   outcome,
		Reason:    reason,
		Length:    r.Length,
		MaxLength: r.MaxLength,
		Growth:    r.Counters.Growth,
		Poison:    r.Counters.Poison,
		Gates:     r.Counters.Gates,
		Ticks:     r.Ticks,
		Score:     r.Score,
	}
}
