package core

import "fmt"

// State is the phase of the level session controller.
type State uint8

const (
	StateLoading State = iota
	StatePlaying
	StateLevelComplete
	StateGameComplete
	// StateLoadFailed is entered when level data could not be loaded or
	// failed integrity checks. Only a restart leaves it.
	StateLoadFailed
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level_complete"
	case StateGameComplete:
		return "game_complete"
	case StateLoadFailed:
		return "load_failed"
	default:
		return "unknown"
	}
}

// LevelStore supplies raw level data by 1-based level number.
type LevelStore interface {
	// LoadLevelGrid returns the cell values of a level, one slice per row.
	LoadLevelGrid(level int) ([][]int, error)
	// LoadSolutionMask returns the solution values of a level, 1 = target.
	LoadSolutionMask(level int) ([][]int, error)
}

// Options configures a Controller.
type Options struct {
	Rows      int // Grid rows of every level
	Cols      int // Grid columns of every level
	LastLevel int // Number of the final level

	// AdvanceDelay is the number of ticks spent in StateLevelComplete
	// before the next level loads. Zero advances on the solving tick.
	AdvanceDelay int
}

// Controller drives a fixed sequence of levels: load, play, detect solved,
// advance or finish.
type Controller struct {
	store LevelStore
	opts  Options

	state      State
	level      int
	session    *Session
	err        error
	last       Outcome
	clearTicks int
}

// NewController creates a controller in StateLoading. Call Start to load
// the first level.
func NewController(store LevelStore, opts Options) *Controller {
	if opts.LastLevel < 1 {
		opts.LastLevel = 1
	}
	return &Controller{
		store: store,
		opts:  opts,
		state: StateLoading,
	}
}

// Start loads the given level and enters StatePlaying.
//
// On failure the controller enters StateLoadFailed, remembers the error and
// the requested level (so Restart retries it), and keeps the previous session
// untouched. A level number outside 1..LastLevel fails the same way.
func (c *Controller) Start(level int) error {
	c.level = level
	c.clearTicks = 0
	c.last = OutcomeNone

	if level < 1 || level > c.opts.LastLevel {
		return c.fail(fmt.Errorf("%w: %d not in 1..%d", ErrLevelOutOfRange, level, c.opts.LastLevel))
	}
	c.state = StateLoading

	grid, err := c.store.LoadLevelGrid(level)
	if err != nil {
		return c.fail(fmt.Errorf("loading level %d: %w", level, err))
	}
	solution, err := c.store.LoadSolutionMask(level)
	if err != nil {
		return c.fail(fmt.Errorf("loading solution %d: %w", level, err))
	}
	s, err := NewSession(level, grid, solution, c.opts.Rows, c.opts.Cols)
	if err != nil {
		return c.fail(err)
	}

	c.session = s
	c.err = nil
	c.state = StatePlaying
	return nil
}

func (c *Controller) fail(err error) error {
	c.err = err
	c.state = StateLoadFailed
	return err
}

// Tick processes one unit of game time: at most one movement attempt, then
// a solved check, then an optional level advance.
// It returns the outcome of the movement attempt. Input is ignored outside
// StatePlaying. A non-nil error reports a failed load of the next level.
func (c *Controller) Tick(d Dir) (Outcome, error) {
	switch c.state {
	case StatePlaying:
		out := c.session.Move(d)
		if out != OutcomeNone {
			c.last = out
		}
		if c.session.Solved() {
			c.state = StateLevelComplete
			c.clearTicks = 0
			if c.opts.AdvanceDelay <= 0 {
				return out, c.advance()
			}
		}
		return out, nil

	case StateLevelComplete:
		c.clearTicks++
		if c.clearTicks >= c.opts.AdvanceDelay {
			return OutcomeNone, c.advance()
		}
	}
	return OutcomeNone, nil
}

func (c *Controller) advance() error {
	if c.level >= c.opts.LastLevel {
		c.state = StateGameComplete
		return nil
	}
	return c.Start(c.level + 1)
}

// Restart reloads the current level. From StateGameComplete, or after a
// level number outside 1..LastLevel, it starts over at level 1.
func (c *Controller) Restart() error {
	if c.state == StateGameComplete || c.level < 1 || c.level > c.opts.LastLevel {
		return c.RestartGame()
	}
	return c.Start(c.level)
}

// RestartGame starts over at level 1 from any state.
func (c *Controller) RestartGame() error {
	return c.Start(1)
}

// State returns the current controller state.
func (c *Controller) State() State {
	return c.state
}

// Level returns the current (or last attempted) level number, 0 before Start.
func (c *Controller) Level() int {
	return c.level
}

// LastLevel returns the number of the final level.
func (c *Controller) LastLevel() int {
	return c.opts.LastLevel
}

// Session returns the current level session, or nil if no level has loaded yet.
// After a failed load it is the session of the previously loaded level.
func (c *Controller) Session() *Session {
	return c.session
}

// Err returns the error that put the controller into StateLoadFailed.
func (c *Controller) Err() error {
	return c.err
}

// LastOutcome returns the outcome of the most recent movement attempt on the
// current level.
func (c *Controller) LastOutcome() Outcome {
	return c.last
}

// Finished reports whether every level has been solved.
func (c *Controller) Finished() bool {
	return c.state == StateGameComplete
}
