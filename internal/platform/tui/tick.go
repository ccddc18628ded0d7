// Package tui provides the Bubble Tea front end for the puzzle.
// It handles the terminal UI loop, input mapping, level selection and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchMsg reports that the files of a level changed on disk.
type WatchMsg struct {
	Level int
}

// waitForWatch forwards the next level number from a watcher channel.
// It returns nil for a nil channel and stops without reading when the
// channel closes or done is closed.
func waitForWatch(ch <-chan int, done <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case n, ok := <-ch:
			if !ok {
				return nil
			}
			return WatchMsg{Level: n}
		case <-done:
			return nil
		}
	}
}
