package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gate-snake/internal/core"
	"github.com/vovakirdan/gate-snake/internal/registry"
	"github.com/vovakirdan/gate-snake/internal/storage"
)

// MenuItem is a mode on the home screen together with what this run has
// achieved in it so far.
type MenuItem struct {
	GameID string
	Title  string
	Record string // one-line journal summary, empty before the first stage
}

// MenuModel is the home screen: pick a mode, or open the results.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem
	openResults bool
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuRecordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewMenuModel lists every registered mode. With a journal each mode shows
// its stages played, clears and best score of this run.
func NewMenuModel(cfg core.RuntimeConfig, journal *storage.Store) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Record: modeRecord(journal, g.ID)})
	}
	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

// modeRecord summarizes the journal rows of mode.
func modeRecord(journal *storage.Store, mode string) string {
	if journal == nil {
		return ""
	}
	st, err := journal.Stats(mode)
	if err != nil || st.Stages == 0 {
		return ""
	}
	return fmt.Sprintf("%d played, %d cleared, best %d", st.Stages, st.Cleared, st.BestScore)
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionResults:
		m.openResults = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle.Render("G A T E   S N A K E"), width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerStyled(line, width))
		b.WriteString("\n")
		if item.Record != "" {
			b.WriteString(centerStyled(menuRecordStyle.Render(item.Record), width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHelpStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Results  |  Q: Quit"), width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen mode, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// WantsResults reports whether Tab was pressed.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// Config returns the runtime config, resized to the latest window.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers plain text within width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat(" ", (width-len(text))/2) + text
}

// centerStyled centers text that may carry ANSI styling.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the home screen was left with.
type MenuResult struct {
	GameID       string
	Config       core.RuntimeConfig
	WantsResults bool
	Quit         bool
}

// RunMenu shows the home screen until a mode is picked, the results are
// requested or the user quits.
func RunMenu(cfg core.RuntimeConfig, journal *storage.Store) (MenuResult, error) {
	finalModel, err := tea.NewProgram(NewMenuModel(cfg, journal), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsResults():
		result.WantsResults = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
