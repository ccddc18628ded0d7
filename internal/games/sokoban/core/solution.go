package core

// IsSolved reports whether every target holds a pushable block.
// It stops at the first unmet target; an empty target list is solved.
func IsSolved(g *Grid, targets []Coord) bool {
	for _, t := range targets {
		if g.At(t) != Pushable {
			return false
		}
	}
	return true
}

// PlacedCount returns how many targets currently hold a pushable block.
func PlacedCount(g *Grid, targets []Coord) int {
	n := 0
	for _, t := range targets {
		if g.At(t) == Pushable {
			n++
		}
	}
	return n
}
