package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, K, Up arrow
	ActionDown              // S, J, Down arrow
	ActionLeft              // A, H, Left arrow
	ActionRight             // D, L, Right arrow
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back
	ActionRestart           // R - restart the current level
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
	ActionScreenshot        // Ctrl+S - dump the current frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four movement actions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame, and
// remembers the order they arrived in.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	order []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.order = append(f.order, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// LatestDirection returns the most recently set movement action,
// or ActionNone if no direction was triggered this frame.
func (f InputFrame) LatestDirection() Action {
	for i := len(f.order) - 1; i >= 0; i-- {
		if f.order[i].IsDirection() {
			return f.order[i]
		}
	}
	return ActionNone
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.order = append(clone.order, f.order...)
	return clone
}

// HeldDirections tracks which movement keys are physically held down.
// Front ends with key-up events use it so that only the most recently
// pressed, still-held direction drives the player.
type HeldDirections struct {
	held []Action
}

// Press records a direction as held. Pressing an already-held direction
// makes it the most recent one.
func (h *HeldDirections) Press(a Action) {
	if !a.IsDirection() {
		return
	}
	h.Release(a)
	h.held = append(h.held, a)
}

// Release records a direction as no longer held.
func (h *HeldDirections) Release(a Action) {
	for i, held := range h.held {
		if held == a {
			h.held = append(h.held[:i], h.held[i+1:]...)
			return
		}
	}
}

// Current returns the most recently pressed direction still held,
// or ActionNone.
func (h *HeldDirections) Current() Action {
	if len(h.held) == 0 {
		return ActionNone
	}
	return h.held[len(h.held)-1]
}

// Reset forgets all held directions.
func (h *HeldDirections) Reset() {
	h.held = h.held[:0]
}

// TickPacer runs game steps at a fixed rate inside a faster update loop.
// Input seen between two steps is collected, so a tap shorter than a step
// still moves the player once; a held direction repeats every step.
type TickPacer struct {
	every int
	count int
	held  HeldDirections
	frame InputFrame
}

// NewTickPacer creates a pacer stepping tickRate times per second in a loop
// that updates updateRate times per second.
func NewTickPacer(updateRate, tickRate int) *TickPacer {
	every := 1
	if tickRate > 0 && updateRate > tickRate {
		every = updateRate / tickRate
	}
	return &TickPacer{every: every, frame: NewInputFrame()}
}

// Press records a key press.
func (p *TickPacer) Press(a Action) {
	p.held.Press(a)
	p.frame.Set(a)
}

// Release records a key release.
func (p *TickPacer) Release(a Action) {
	p.held.Release(a)
}

// Advance is called once per update. It returns the input for the next game
// step and true when a step is due.
func (p *TickPacer) Advance() (InputFrame, bool) {
	p.count++
	if p.count < p.every {
		return InputFrame{}, false
	}
	p.count = 0

	out := p.frame.Clone()
	if out.LatestDirection() == ActionNone {
		if d := p.held.Current(); d != ActionNone {
			out.Set(d)
		}
	}
	p.frame.Clear()
	return out, true
}
