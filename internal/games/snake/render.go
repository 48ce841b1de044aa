package snake

import (
	"fmt"

	"github.com/vovakirdan/gate-snake/internal/core"
)

type glyph struct {
	r     rune
	color core.Color
}

var glyphs = map[Kind]glyph{
	KindWall:       {'#', core.ColorWhite},
	KindImmuneWall: {'#', core.ColorGray},
	KindGate:       {'%', core.ColorMagenta},
	KindSnakeHead:  {'O', core.ColorBrightGreen},
	KindSnakeBody:  {'o', core.ColorGreen},
	KindGrowth:     {'+', core.ColorBrightYellow},
	KindPoison:     {'-', core.ColorRed},
	KindTime:       {'T', core.ColorCyan},
	KindShield:     {'S', core.ColorBlue},
	KindRandom:     {'?', core.ColorOrange},
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.cfg.Board.Width, g.cfg.Board.Height+hudHeight))
		return
	}
	if g.session == nil {
		g.renderOverlay(dst, "Stage unavailable", g.reason)
		return
	}

	v := g.session.Snapshot()
	boardX, panelX := g.layout(dst.Width(), v.Width)
	g.renderBoard(dst, v, boardX, hudHeight)
	if panelX >= 0 {
		g.renderPanels(dst, v, panelX, hudHeight)
	}

	switch {
	case g.won:
		g.renderOverlay(dst, "Campaign complete!", fmt.Sprintf("Final Score: %d  R to play again", g.score()))
	case g.stageCleared:
		g.renderOverlay(dst, fmt.Sprintf("Stage %d cleared!", g.stageIndex+1), g.stageName())
	case g.gameOver:
		g.renderOverlay(dst, g.reason, "Press R to retry the stage")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// layout returns the board x offset and the panel x offset (-1 when the
// panels do not fit next to the board).
func (g *Game) layout(screenW, boardW int) (boardX, panelX int) {
	if screenW >= boardW+panelWidth+2 {
		boardX = (screenW - boardW - panelWidth - 2) / 2
		return boardX, boardX + boardW + 2
	}
	return (screenW - boardW) / 2, -1
}

func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" Gate Snake (Endless) | Stage %d %s | Score: %d | Speed: %d",
			g.stageIndex+1, g.stageName(), g.score(), g.cfg.Pacing.MoveEveryFrames-g.moveInterval()+1)
	} else {
		hud = fmt.Sprintf(" Gate Snake | Stage %d/%d %s | Score: %d",
			g.stageIndex+1, len(g.cfg.Stages), g.stageName(), g.score())
	}
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderBoard(dst *core.Screen, v Snapshot, x0, y0 int) {
	for r, row := range v.Grid() {
		for c, k := range row {
			gl, ok := glyphs[k]
			if !ok {
				continue
			}
			switch {
			case k == KindSnakeHead && v.ShieldTicks > 0:
				gl.color = core.ColorYellow
			case k == KindGate && v.Gates.Active():
				gl.color = core.ColorCyan
			}
			dst.SetColored(x0+c, y0+r, gl.r, gl.color)
		}
	}
}

func (g *Game) renderPanels(dst *core.Screen, v Snapshot, x, y int) {
	m := g.session.rules.Missions
	check := func(done bool) string {
		if done {
			return "v"
		}
		return " "
	}

	score := core.NewRect(x, y, panelWidth, 9)
	dst.DrawBox(score)
	dst.DrawTextColored(x+2, y, " Score Board ", core.ColorBrightYellow)
	dst.DrawText(x+2, y+1, fmt.Sprintf("B: %d / %d", v.Snake.Len(), v.MaxLength))
	dst.DrawText(x+2, y+2, fmt.Sprintf("+: %d", v.Counters.Growth))
	dst.DrawText(x+2, y+3, fmt.Sprintf("-: %d", v.Counters.Poison))
	dst.DrawText(x+2, y+4, fmt.Sprintf("G: %d", v.Counters.Gates))
	dst.DrawText(x+2, y+5, fmt.Sprintf("Ticks: %d", v.Ticks))
	if v.ShieldTicks > 0 {
		dst.DrawTextColored(x+2, y+6, fmt.Sprintf("Shield: %d", v.ShieldTicks), core.ColorBlue)
	}
	if v.BoostTicks > 0 {
		dst.DrawTextColored(x+2, y+7, fmt.Sprintf("Boost: %d", v.BoostTicks), core.ColorCyan)
	}

	my := y + 10
	mission := core.NewRect(x, my, panelWidth, 6)
	dst.DrawBox(mission)
	dst.DrawTextColored(x+2, my, " Mission ", core.ColorBrightYellow)
	dst.DrawText(x+2, my+1, fmt.Sprintf("B: %d / %d (%s)", m.Length, v.Snake.Len(), check(v.Missions.Length)))
	dst.DrawText(x+2, my+2, fmt.Sprintf("+: %d / %d (%s)", m.Growth, v.Counters.Growth, check(v.Missions.Growth)))
	dst.DrawText(x+2, my+3, fmt.Sprintf("-: %d / %d (%s)", m.Poison, v.Counters.Poison, check(v.Missions.Poison)))
	dst.DrawText(x+2, my+4, fmt.Sprintf("G: %d / %d (%s)", m.Gates, v.Counters.Gates, check(v.Missions.Gate)))
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(box.W-len([]rune(line1)))/2, box.Y+1, line1)
	dst.DrawText(box.X+(box.W-len([]rune(line2)))/2, box.Y+3, line2)
}
