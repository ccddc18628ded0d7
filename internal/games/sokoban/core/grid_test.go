package core

import (
	"errors"
	"testing"
)

func TestGridCellAccess(t *testing.T) {
	g := NewGrid(3, 4)

	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("size = %dx%d, want 3x4", g.Rows(), g.Cols())
	}

	g.SetCellType(2, 3, Wall)
	if got := g.CellType(2, 3); got != Wall {
		t.Errorf("CellType(2, 3) = %v, want Wall", got)
	}
	if got := g.At(C(0, 0)); got != Empty {
		t.Errorf("At(0,0) = %v, want Empty", got)
	}
	if g.Count(Wall) != 1 {
		t.Errorf("Count(Wall) = %d, want 1", g.Count(Wall))
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(2, 2)
	cases := []Coord{C(-1, 0), C(0, -1), C(2, 0), C(0, 2)}

	for _, c := range cases {
		t.Run(c.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("CellType(%v) did not panic", c)
				}
			}()
			g.CellType(c.Row, c.Col)
		})
	}
}

func TestGridNoWrapAround(t *testing.T) {
	// (0, cols) must not alias (1, 0) in the flat slice.
	g := NewGrid(2, 3)
	if g.InBounds(C(0, 3)) {
		t.Error("InBounds(0,3) = true on a 2x3 grid")
	}
	defer func() {
		if recover() == nil {
			t.Error("SetCellType(0, 3) did not panic")
		}
	}()
	g.SetCellType(0, 3, Wall)
}

func TestGridCloneIndependent(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetCellType(0, 0, Player)

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from original")
	}
	c.SetCellType(1, 1, Pushable)
	if g.CellType(1, 1) != Empty {
		t.Error("mutating the clone changed the original")
	}
	if c.Equal(g) {
		t.Error("Equal() = true after mutation")
	}
}

func TestGridFromIntsRoundTrip(t *testing.T) {
	data := [][]int{
		{2, 2, 2},
		{2, 1, 3},
		{2, 0, 0},
	}
	g, err := GridFromInts(data, 3, 3)
	if err != nil {
		t.Fatalf("GridFromInts: %v", err)
	}
	if g.String() != "222\n213\n200" {
		t.Errorf("String() = %q", g.String())
	}
	out := g.Ints()
	for r := range data {
		for c := range data[r] {
			if out[r][c] != data[r][c] {
				t.Errorf("Ints()[%d][%d] = %d, want %d", r, c, out[r][c], data[r][c])
			}
		}
	}
}

func TestDirDelta(t *testing.T) {
	tests := []struct {
		d      Dir
		dr, dc int
	}{
		{DirUp, -1, 0},
		{DirDown, 1, 0},
		{DirLeft, 0, -1},
		{DirRight, 0, 1},
		{DirNone, 0, 0},
		{Dir(99), 0, 0},
	}
	for _, tt := range tests {
		dr, dc := tt.d.Delta()
		if dr != tt.dr || dc != tt.dc {
			t.Errorf("%v.Delta() = (%d, %d), want (%d, %d)", tt.d, dr, dc, tt.dr, tt.dc)
		}
	}
}

func TestGridFromIntsRejectsNonLiveValues(t *testing.T) {
	for _, v := range []int{int(SolutionMarker), 5, -1, 256, 259} {
		_, err := GridFromInts([][]int{{2, 1, v}}, 1, 3)
		if !errors.Is(err, ErrInvalidCell) {
			t.Errorf("value %d: error = %v, want ErrInvalidCell", v, err)
		}
	}
	for _, ct := range []CellType{Empty, Player, Wall, Pushable} {
		if !ct.Live() {
			t.Errorf("%v should be live", ct)
		}
	}
	if SolutionMarker.Live() {
		t.Error("SolutionMarker should not be live")
	}
}
