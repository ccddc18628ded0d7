package core

// Outcome describes what a movement attempt did.
type Outcome uint8

const (
	// OutcomeNone means no movement was requested.
	OutcomeNone Outcome = iota
	// OutcomeBlocked means the move was rejected and nothing changed.
	OutcomeBlocked
	// OutcomeMoved means the player stepped into an empty cell.
	OutcomeMoved
	// OutcomePushed means the player pushed a block and followed it.
	OutcomePushed
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMoved:
		return "moved"
	case OutcomePushed:
		return "pushed"
	default:
		return "unknown"
	}
}

// Changed reports whether the grid was mutated.
func (o Outcome) Changed() bool {
	return o == OutcomeMoved || o == OutcomePushed
}

// Resolve applies one movement attempt from player in direction d.
// It returns the new player coordinate and the outcome. Every legality check,
// including the cell beyond a pushed block, happens before the grid is touched,
// so a rejected move leaves the grid unchanged.
func Resolve(g *Grid, player Coord, d Dir) (Coord, Outcome) {
	if dr, dc := d.Delta(); dr == 0 && dc == 0 {
		return player, OutcomeNone
	}

	adj := player.Step(d)
	if !g.InBounds(adj) {
		return player, OutcomeBlocked
	}

	switch g.At(adj) {
	case Empty:
		movePlayer(g, player, adj)
		return adj, OutcomeMoved

	case Pushable:
		beyond := adj.Step(d)
		if !g.InBounds(beyond) || g.At(beyond) != Empty {
			return player, OutcomeBlocked
		}
		g.Set(adj, Empty)
		g.Set(beyond, Pushable)
		movePlayer(g, player, adj)
		return adj, OutcomePushed

	default:
		return player, OutcomeBlocked
	}
}

func movePlayer(g *Grid, from, to Coord) {
	g.Set(from, Empty)
	g.Set(to, Player)
}
