package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sokoban/internal/config"
	"github.com/vovakirdan/sokoban/internal/core"
	"github.com/vovakirdan/sokoban/internal/games/sokoban/levels"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets   int
	resized  [2]int
	steps    []core.InputFrame
	reloaded []int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.resized = [2]int{cfg.ScreenW, cfg.ScreenH}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: core.GameState{Level: 1, LastLevel: 1}}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return core.GameState{} }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Reload(level int) bool {
	g.reloaded = append(g.reloaded, level)
	return level == 1
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"k", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"h", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"l", core.ActionRight},
		{"r", core.ActionRestart},
		{"p", core.ActionPause},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"ctrl+s", core.ActionScreenshot},
		{"enter", core.ActionConfirm},
		{"esc", core.ActionBack},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.Action(keyMsg(tt.key)); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	keys := config.DefaultSokobanConfig().Keys
	keys.Restart = []string{"x"}
	km := NewKeyMap(keys)

	if got := km.Action(keyMsg("x")); got != core.ActionRestart {
		t.Errorf("Action(x) = %v, want Restart", got)
	}
	if got := km.Action(keyMsg("r")); got != core.ActionNone {
		t.Errorf("Action(r) = %v, want None after rebinding", got)
	}
	if km.Restart.Help().Key != "x" {
		t.Errorf("help key = %q, want x", km.Restart.Help().Key)
	}
}

func newTestModel(g *fakeGame, opts Options) Model {
	if opts.Config.ScreenW == 0 {
		opts.Config = core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 8}
	}
	m := NewModel(g, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelReservesFooterLine(t *testing.T) {
	g := &fakeGame{}
	newTestModel(g, Options{})

	if g.resets != 1 {
		t.Errorf("Expected 1 reset, got %d", g.resets)
	}
	if g.resized != [2]int{40, 11} {
		t.Errorf("game screen = %v, want [40 11]", g.resized)
	}
}

func TestModelInputReachesNextTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m, _ = update(t, m, keyMsg("right"))
	m, _ = update(t, m, keyMsg("up"))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(g.steps) != 1 {
		t.Fatalf("Expected 1 step, got %d", len(g.steps))
	}
	if got := g.steps[0].LatestDirection(); got != core.ActionUp {
		t.Errorf("LatestDirection = %v, want Up", got)
	}

	// The frame is cleared after each tick.
	update(t, m, TickMsg{})
	if got := g.steps[1].LatestDirection(); got != core.ActionNone {
		t.Errorf("second tick direction = %v, want None", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, Options{})

	m, cmd := update(t, m, keyMsg("q"))
	if !m.IsQuitting() {
		t.Error("Expected quitting after q")
	}
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelBack(t *testing.T) {
	m := newTestModel(&fakeGame{}, Options{})
	m, cmd := update(t, m, keyMsg("esc"))
	if !m.BackToLevels() || m.IsQuitting() || cmd != nil {
		t.Errorf("esc: back=%v quitting=%v cmd=%v", m.BackToLevels(), m.IsQuitting(), cmd != nil)
	}

	m = newTestModel(&fakeGame{}, Options{QuitOnBack: true})
	m, _ = update(t, m, keyMsg("esc"))
	if !m.IsQuitting() {
		t.Error("QuitOnBack should quit on esc")
	}
}

func TestModelResizeKeepsProgress(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if g.resized != [2]int{100, 29} {
		t.Errorf("game screen = %v, want [100 29]", g.resized)
	}
}

func TestModelWatchReload(t *testing.T) {
	g := &fakeGame{}
	ch := make(chan int, 1)
	m := newTestModel(g, Options{Watch: ch})

	m, cmd := update(t, m, WatchMsg{Level: 1})
	if len(g.reloaded) != 1 || g.reloaded[0] != 1 {
		t.Errorf("reloaded = %v, want [1]", g.reloaded)
	}
	if !strings.Contains(m.View(), "level 1 reloaded") {
		t.Error("footer should report the reload")
	}
	if cmd == nil {
		t.Fatal("watch should keep listening")
	}

	ch <- 3
	if msg := cmd(); msg != (WatchMsg{Level: 3}) {
		t.Errorf("next watch msg = %v, want level 3", msg)
	}
	close(ch)
	if msg := waitForWatch(ch, nil)(); msg != nil {
		t.Errorf("closed watch channel produced %v", msg)
	}
}

func TestModelWatchAcrossRuns(t *testing.T) {
	ch := make(chan int, 1)

	first := newTestModel(&fakeGame{}, Options{Watch: ch})
	got := make(chan tea.Msg, 1)
	go func() { got <- waitForWatch(first.watch, first.done)() }()
	first.stop()

	select {
	case msg := <-got:
		if msg != nil {
			t.Errorf("stopped model produced %v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("watch read of a stopped model did not return")
	}

	second := newTestModel(&fakeGame{}, Options{Watch: ch})
	ch <- 7
	if msg := waitForWatch(second.watch, second.done)(); msg != (WatchMsg{Level: 7}) {
		t.Errorf("second model got %v, want level 7", msg)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(&fakeGame{}, Options{ScreenshotDir: dir})

	update(t, m, keyMsg("ctrl+s"))

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("Expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot content = %q", data)
	}
}

func TestModelViewHasHelpFooter(t *testing.T) {
	m := newTestModel(&fakeGame{}, Options{
		Config: core.RuntimeConfig{ScreenW: 100, ScreenH: 12, TickRate: 8},
	})
	view := m.View()

	lines := strings.Split(view, "\n")
	if len(lines) != 12 {
		t.Errorf("Expected 12 lines (11 screen + footer), got %d", len(lines))
	}
	if !strings.Contains(view, "restart") || !strings.Contains(view, "quit") {
		t.Errorf("help footer missing:\n%s", view)
	}
}

func TestLevelSelect(t *testing.T) {
	infos := []levels.Info{{Number: 1, Name: "One"}, {Number: 2}, {Number: 3, Name: "Three"}}
	m := NewLevelSelectModel("SOKOBAN", infos, DefaultKeyMap(), 60, 20)

	if !strings.Contains(m.View(), "One") || !strings.Contains(m.View(), "Level 2") {
		t.Errorf("level list missing entries:\n%s", m.View())
	}

	step := func(key string) tea.Cmd {
		next, cmd := m.Update(keyMsg(key))
		m = next.(LevelSelectModel)
		return cmd
	}

	step("down")
	step("down")
	step("down") // clamps at the last level
	step("up")
	if cmd := step("enter"); cmd == nil {
		t.Error("select should end the picker")
	}
	if m.Selected() != 2 {
		t.Errorf("Selected() = %d, want 2", m.Selected())
	}
}

func TestLevelSelectQuit(t *testing.T) {
	m := NewLevelSelectModel("SOKOBAN", nil, DefaultKeyMap(), 60, 20)
	if !strings.Contains(m.View(), "No levels found") {
		t.Error("empty picker should say so")
	}
	next, _ := m.Update(keyMsg("enter"))
	if next.(LevelSelectModel).Selected() != 0 {
		t.Error("enter on an empty list selected a level")
	}
	next, _ = next.Update(keyMsg("q"))
	if !next.(LevelSelectModel).IsQuitting() {
		t.Error("q should quit the picker")
	}
}

func TestSessionModelFlow(t *testing.T) {
	g := &fakeGame{}
	var started int
	srv := DefaultSSHServerConfig()
	srv.Levels = []levels.Info{{Number: 1}, {Number: 2}}
	srv.NewGame = func(level int, _ *log.Logger) Game {
		started = level
		return g
	}

	var m tea.Model = NewSessionModel(srv, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 8}, log.New(io.Discard))
	m, _ = m.Update(keyMsg("down"))
	m, cmd := m.Update(keyMsg("enter"))

	if !m.(SessionModel).InGame() {
		t.Fatal("Expected session to enter the game")
	}
	if started != 2 {
		t.Errorf("game started at level %d, want 2", started)
	}
	if cmd == nil {
		t.Error("entering the game should start ticking")
	}

	m, _ = m.Update(keyMsg("esc"))
	if m.(SessionModel).InGame() {
		t.Error("esc should return to the level picker")
	}
}
