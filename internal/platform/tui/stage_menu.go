package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gate-snake/internal/core"
	"github.com/vovakirdan/gate-snake/internal/games/snake"
)

// StageSelection holds the choice made in the stage menu.
type StageSelection struct {
	GameID string // "snake" or "snake_endless"
	Stage  int    // 0 = start from the first stage, otherwise 1-based
}

// StageMenuModel lets users choose the mode and the starting stage.
type StageMenuModel struct {
	cursor        int
	stageCursor   int
	inStageSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     StageSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewStageMenuModel creates a new stage menu model.
func NewStageMenuModel(width, height int) StageMenuModel {
	return StageMenuModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m StageMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StageMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m StageMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inStageSelect {
		return m.handleStageSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m StageMenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // 3 options: Campaign, Endless, Select Stage
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Campaign
			m.choosing = false
			m.selection = StageSelection{GameID: "snake"}
			return m, tea.Quit
		case 1: // Endless
			m.choosing = false
			m.selection = StageSelection{GameID: "snake_endless"}
			return m, tea.Quit
		case 2: // Select Stage
			m.inStageSelect = true
			m.stageCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m StageMenuModel) handleStageSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	stageCount := snake.LevelCount()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.stageCursor > 0 {
			m.stageCursor--
		}
	case MenuActionDown:
		if m.stageCursor < stageCount-1 {
			m.stageCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = StageSelection{
			GameID: "snake",
			Stage:  m.stageCursor + 1, // 1-indexed
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inStageSelect = false
	}

	return m, nil
}

// View renders the mode or stage selection.
func (m StageMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inStageSelect {
		return m.viewStageSelect()
	}
	return m.viewModeSelect()
}

func (m StageMenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("G A T E   S N A K E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		fmt.Sprintf("Campaign (%d stages)", snake.LevelCount()),
		"Endless Mode",
		"Select Stage...",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m StageMenuModel) viewStageSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT STAGE", m.width))
	b.WriteString("\n\n")

	stageNames := snake.LevelNames()
	for i, name := range stageNames {
		cursor := "  "
		if i == m.stageCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m StageMenuModel) Selected() *StageSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m StageMenuModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m StageMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m StageMenuModel) WantsBack() bool {
	return m.back
}

// RunStageSelector runs the stage menu and returns the selection,
// nil when the user backed out.
func RunStageSelector(cfg core.RuntimeConfig) (*StageSelection, core.RuntimeConfig, error) {
	model := NewStageMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(StageMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
