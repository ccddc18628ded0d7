package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sokoban/internal/config"
	"github.com/vovakirdan/sokoban/internal/core"
)

// KeyMap defines key bindings for the game and the level picker.
// It implements help.KeyMap.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Quit       key.Binding

	// move is the four directions combined, for the short help line.
	move key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultSokobanConfig().Keys)
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(k config.KeysConfig) KeyMap {
	var all []string
	for _, keys := range [][]string{k.Up, k.Down, k.Left, k.Right} {
		all = append(all, keys...)
	}

	return KeyMap{
		Up:    binding(k.Up, "up"),
		Down:  binding(k.Down, "down"),
		Left:  binding(k.Left, "left"),
		Right: binding(k.Right, "right"),
		move: key.NewBinding(
			key.WithKeys(all...),
			key.WithHelp("arrows", "move"),
		),
		Restart: binding(k.Restart, "restart"),
		Pause:   binding(k.Pause, "pause"),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "levels"),
		),
		Quit: binding(k.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// ShortHelp returns key bindings for the one-line help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.move, k.Restart, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Pause, k.Screenshot},
		{k.Back, k.Quit},
	}
}

// Action translates a key message to a game action.
// Quit, Back and Screenshot are handled by the models and map to ActionQuit,
// ActionBack and ActionScreenshot.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// menuHelp shows only the bindings the level picker uses.
type menuHelp struct{ k KeyMap }

func (m menuHelp) ShortHelp() []key.Binding {
	up := m.k.Up
	up.SetHelp(up.Help().Key+"/"+m.k.Down.Help().Key, "choose")
	return []key.Binding{up, m.k.Confirm, m.k.Quit}
}

func (m menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{m.k.Up, m.k.Down}, {m.k.Confirm, m.k.Quit}}
}
