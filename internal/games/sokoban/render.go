package sokoban

import (
	"fmt"

	platformcore "github.com/vovakirdan/sokoban/internal/core"
	"github.com/vovakirdan/sokoban/internal/games/sokoban/core"
)

const (
	cellWidth = 2 // Terminal columns per grid cell
	hudHeight = 3
)

// Glyph runes for grid cells.
const (
	GlyphPlayer         = '@'
	GlyphPlayerOnTarget = '+'
	GlyphWall           = '#'
	GlyphBlock          = '$'
	GlyphBlockOnTarget  = '*'
	GlyphTarget         = '.'
	GlyphEmpty          = ' '
)

// Glyph returns the rune and color of a cell. Targets show through empty
// cells and change the look of blocks and the player standing on them.
func Glyph(t core.CellType, target bool) (rune, platformcore.Color) {
	switch t {
	case core.Player:
		if target {
			return GlyphPlayerOnTarget, platformcore.ColorBrightBlue
		}
		return GlyphPlayer, platformcore.ColorBlue
	case core.Wall:
		return GlyphWall, platformcore.ColorWhite
	case core.Pushable:
		if target {
			return GlyphBlockOnTarget, platformcore.ColorGreen
		}
		return GlyphBlock, platformcore.ColorRed
	}
	if target {
		return GlyphTarget, platformcore.ColorRed
	}
	return GlyphEmpty, platformcore.ColorDefault
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	switch g.ctrl.State() {
	case core.StateGameComplete:
		g.renderWin(dst)
		return
	case core.StateLoadFailed:
		if g.ctrl.Session() == nil {
			g.renderLoadFailed(dst, dst.Height()/2-1)
			return
		}
	}

	s := g.ctrl.Session()
	if s == nil {
		dst.DrawTextCentered(dst.Height()/2, "Loading...", platformcore.ColorGray)
		return
	}

	gridW := s.Grid.Cols() * cellWidth
	gridX := (dst.Width() - gridW) / 2
	if gridX < 0 {
		gridX = 0
	}

	g.renderHUD(dst, s)
	g.renderGrid(dst, s, gridX, hudHeight)

	statusY := hudHeight + s.Grid.Rows() + 1
	switch {
	case g.ctrl.State() == core.StateLoadFailed:
		g.renderLoadFailed(dst, statusY)
	case g.ctrl.State() == core.StateLevelComplete:
		dst.DrawTextCentered(statusY, fmt.Sprintf("Level %d clear!", g.ctrl.Level()), platformcore.ColorBrightGreen)
	case g.paused:
		dst.DrawTextCentered(statusY, "PAUSED - press P to resume", platformcore.ColorBrightYellow)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	minW, minH := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small", platformcore.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH), platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorGray)
}

// renderHUD draws the title, level and progress lines.
func (g *Game) renderHUD(dst *platformcore.Screen, s *core.Session) {
	title := "SOKOBAN"
	if name := g.LevelName(s.Level); name != "" {
		title = fmt.Sprintf("SOKOBAN - %s", name)
	}
	dst.DrawTextCentered(0, title, platformcore.ColorBrightWhite)

	info := fmt.Sprintf("Level %d/%d   Boxes %d/%d", s.Level, g.ctrl.LastLevel(), s.Placed(), len(s.Targets))
	if out := g.ctrl.LastOutcome(); out != core.OutcomeNone {
		info += "   " + out.String()
	}
	dst.DrawTextCentered(1, info, platformcore.ColorDefault)
}

// renderGrid draws every cell two columns wide. Walls fill both columns.
func (g *Game) renderGrid(dst *platformcore.Screen, s *core.Session, x0, y0 int) {
	for r := range s.Grid.Rows() {
		for c := range s.Grid.Cols() {
			ch, color := Glyph(s.Grid.CellType(r, c), s.Mask.IsTarget(r, c))
			x := x0 + c*cellWidth
			dst.SetColored(x, y0+r, ch, color)
			if ch == GlyphWall {
				dst.SetColored(x+1, y0+r, ch, color)
			}
		}
	}
}

// renderWin draws the final screen.
func (g *Game) renderWin(dst *platformcore.Screen) {
	y := dst.Height()/2 - 2
	box := dst.Bounds().Centered(30, 7)
	box.Y = y - 1
	dst.DrawBox(box, platformcore.ColorBrightGreen)
	dst.DrawTextCentered(y+1, "You win!", platformcore.ColorBrightGreen)
	dst.DrawTextCentered(y+2, fmt.Sprintf("All %d levels solved", g.ctrl.LastLevel()), platformcore.ColorDefault)
	dst.DrawTextCentered(y+3, "R: play again  Q: quit", platformcore.ColorGray)
}

// renderLoadFailed names the broken level and the error.
func (g *Game) renderLoadFailed(dst *platformcore.Screen, y int) {
	dst.DrawTextCentered(y, fmt.Sprintf("Could not load level %d", g.ctrl.Level()), platformcore.ColorBrightRed)
	msg := ""
	if err := g.ctrl.Err(); err != nil {
		msg = err.Error()
	}
	if w := dst.Width() - 2; w > 3 && len([]rune(msg)) > w {
		msg = string([]rune(msg)[:w-3]) + "..."
	}
	dst.DrawTextCentered(y+1, msg, platformcore.ColorDefault)
	dst.DrawTextCentered(y+2, "R: retry  Q: quit", platformcore.ColorGray)
}
