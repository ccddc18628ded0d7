// Package gui runs the puzzle in a desktop window with Ebitengine.
// Each grid cell is painted as a solid tile; the terminal front end and the
// window share the same game and level controller.
package gui

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	platformcore "github.com/vovakirdan/sokoban/internal/core"
	"github.com/vovakirdan/sokoban/internal/games/sokoban"
	"github.com/vovakirdan/sokoban/internal/games/sokoban/core"
)

const (
	updateRate = 60
	hudHeight  = 40 // pixels above the grid
)

// Options configures the window.
type Options struct {
	Rows     int
	Cols     int
	TileSize int
	Scale    int
	TickRate int
	Title    string
	Logger   *log.Logger
}

// Original palette.
var (
	colorEmpty  = color.RGBA{A: 0xff}
	colorPlayer = color.RGBA{B: 0xff, A: 0xff}
	colorWall   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorBox    = color.RGBA{R: 0xff, A: 0xff}
	colorBoxOn  = color.RGBA{G: 0xff, A: 0xff}
	colorTarget = color.RGBA{R: 0xff, A: 0xff}
)

var keyActions = map[ebiten.Key]platformcore.Action{
	ebiten.KeyArrowUp:    platformcore.ActionUp,
	ebiten.KeyW:          platformcore.ActionUp,
	ebiten.KeyArrowDown:  platformcore.ActionDown,
	ebiten.KeyS:          platformcore.ActionDown,
	ebiten.KeyArrowLeft:  platformcore.ActionLeft,
	ebiten.KeyA:          platformcore.ActionLeft,
	ebiten.KeyArrowRight: platformcore.ActionRight,
	ebiten.KeyD:          platformcore.ActionRight,
	ebiten.KeyR:          platformcore.ActionRestart,
	ebiten.KeyP:          platformcore.ActionPause,
}

// Runner implements ebiten.Game around a puzzle game.
type Runner struct {
	game  *sokoban.Game
	opts  Options
	log   *log.Logger
	pacer *platformcore.TickPacer
	tiles map[color.RGBA]*ebiten.Image
}

// New creates a runner for the game.
func New(game *sokoban.Game, opts Options) *Runner {
	if opts.TileSize < 1 {
		opts.TileSize = 48
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Title == "" {
		opts.Title = game.Title()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:  game,
		opts:  opts,
		log:   logger,
		pacer: platformcore.NewTickPacer(updateRate, opts.TickRate),
		tiles: make(map[color.RGBA]*ebiten.Image),
	}
}

// Run opens the window and blocks until it is closed.
func (r *Runner) Run() error {
	w, h := r.Layout(0, 0)
	ebiten.SetWindowSize(w*r.opts.Scale, h*r.opts.Scale)
	ebiten.SetWindowTitle(r.opts.Title)
	ebiten.SetTPS(updateRate)

	// The window always fits the grid, so hand the game a screen of exactly
	// the size it asks for in character cells.
	r.game.Reset(platformcore.RuntimeConfig{
		ScreenW:  max(r.opts.Cols*2, 24),
		ScreenH:  r.opts.Rows + 8,
		TickRate: r.opts.TickRate,
	})

	r.log.Info("window opened", "width", w*r.opts.Scale, "height", h*r.opts.Scale)
	return ebiten.RunGame(r)
}

// Update reads keys and steps the game at the tick rate.
func (r *Runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for k, a := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			r.pacer.Press(a)
		}
		if inpututil.IsKeyJustReleased(k) {
			r.pacer.Release(a)
		}
	}

	if in, ok := r.pacer.Advance(); ok {
		r.game.Step(in)
	}
	return nil
}

// Draw paints the current frame.
func (r *Runner) Draw(screen *ebiten.Image) {
	screen.Fill(colorEmpty)

	ctrl := r.game.Controller()
	if ctrl.Finished() {
		r.drawWin(screen)
		return
	}

	s := ctrl.Session()
	if s == nil {
		msg := "Loading..."
		if err := ctrl.Err(); err != nil {
			msg = fmt.Sprintf("Could not load level %d\n%v\nR: retry  Q: quit", ctrl.Level(), err)
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, 8)
		return
	}

	r.drawHUD(screen, s)

	ts := r.opts.TileSize
	for row := range s.Grid.Rows() {
		for col := range s.Grid.Cols() {
			x, y := col*ts, hudHeight+row*ts
			t := s.Grid.CellType(row, col)
			target := s.Mask.IsTarget(row, col)

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(r.tile(TileColor(t, target)), op)

			if target && (t == core.Empty || t == core.Player) {
				radius := float32(ts) / 5
				vector.DrawFilledCircle(screen, float32(x)+float32(ts)/2, float32(y)+float32(ts)/2, radius, colorTarget, true)
			}
		}
	}
}

func (r *Runner) drawHUD(screen *ebiten.Image, s *core.Session) {
	ctrl := r.game.Controller()
	title := fmt.Sprintf("Level %d/%d", ctrl.Level(), ctrl.LastLevel())
	if name := r.game.LevelName(ctrl.Level()); name != "" {
		title += " - " + name
	}
	ebitenutil.DebugPrintAt(screen, title, 8, 4)

	status := fmt.Sprintf("Boxes %d/%d", s.Placed(), len(s.Targets))
	switch {
	case ctrl.State() == core.StateLoadFailed:
		status += fmt.Sprintf("   could not load level %d", ctrl.Level())
	case ctrl.State() == core.StateLevelComplete:
		status += "   level clear!"
	case r.game.State().Paused:
		status += "   PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 20)
}

func (r *Runner) drawWin(screen *ebiten.Image) {
	w, h := r.Layout(0, 0)
	ebitenutil.DebugPrintAt(screen, "You win!", w/2-24, h/2-16)
	ebitenutil.DebugPrintAt(screen, "R: play again  Q: quit", w/2-66, h/2+4)
}

// tile returns a cached solid square of the given color.
func (r *Runner) tile(c color.RGBA) *ebiten.Image {
	img, ok := r.tiles[c]
	if !ok {
		img = ebiten.NewImage(r.opts.TileSize, r.opts.TileSize)
		img.Fill(c)
		r.tiles[c] = img
	}
	return img
}

// Layout returns the logical screen size: the grid plus the HUD.
func (r *Runner) Layout(_, _ int) (int, int) {
	return WindowSize(r.opts.Rows, r.opts.Cols, r.opts.TileSize)
}

// WindowSize returns the unscaled window size for a grid.
func WindowSize(rows, cols, tileSize int) (int, int) {
	return cols * tileSize, rows*tileSize + hudHeight
}

// TileColor returns the fill color of a cell. Targets are drawn on top as
// a marker, so an empty target is filled like an empty cell.
func TileColor(t core.CellType, target bool) color.RGBA {
	switch t {
	case core.Player:
		return colorPlayer
	case core.Wall:
		return colorWall
	case core.Pushable:
		if target {
			return colorBoxOn
		}
		return colorBox
	default:
		return colorEmpty
	}
}
