package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sokoban/internal/core"
	"github.com/vovakirdan/sokoban/internal/games/sokoban/levels"
)

// Level picker layout constants
const (
	numberColWidth = 4
	nameColMin     = 16
	nameColMax     = 32
	pickerChrome   = 8 // title, borders, header and help
)

// LevelSelectModel lets users choose the starting level from a table.
type LevelSelectModel struct {
	title    string
	levels   []levels.Info
	table    table.Model
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	selected int
	quitting bool
}

// NewLevelSelectModel creates a level picker over the given levels.
func NewLevelSelectModel(title string, infos []levels.Info, keys KeyMap, width, height int) LevelSelectModel {
	if keys.Quit.Keys() == nil {
		keys = DefaultKeyMap()
	}
	h := help.New()
	h.Width = width

	m := LevelSelectModel{
		title:  title,
		levels: infos,
		width:  width,
		height: height,
		keys:   keys,
		help:   h,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the table sized to the current window.
func (m *LevelSelectModel) createTable() table.Model {
	nameWidth := core.Clamp(m.width-numberColWidth-8, nameColMin, nameColMax)
	columns := []table.Column{
		{Title: "#", Width: numberColWidth},
		{Title: "Level", Width: nameWidth},
	}

	rows := make([]table.Row, len(m.levels))
	for i, info := range m.levels {
		rows[i] = table.Row{fmt.Sprintf("%d", info.Number), info.Title()}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-pickerChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetCursor(cursor)
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.Confirm):
		if len(m.levels) > 0 {
			m.selected = m.levels[m.table.Cursor()].Number
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(m.title, m.width)))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(centerText(empty.Render("No levels found"), m.width))
		b.WriteString("\n")
	} else {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(centerBlock(box.Render(m.table.View()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText(m.help.View(menuHelp{m.keys}), m.width)))

	return b.String()
}

// centerBlock centers every line of a multi-line block by the same offset.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	prefix := strings.Repeat(" ", pad)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// Selected returns the chosen level number, or 0 if none was chosen.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelSelector runs the level picker and returns the chosen level,
// or 0 if the user quit.
func RunLevelSelector(title string, infos []levels.Info, keys KeyMap, cfg core.RuntimeConfig) (int, error) {
	model := NewLevelSelectModel(title, infos, keys, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok || m.IsQuitting() {
		return 0, nil
	}
	return m.Selected(), nil
}
