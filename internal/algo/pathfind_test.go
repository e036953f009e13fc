package algo

import (
	"testing"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/core"
)

// uniformPolicy makes every row point right and every column point down, so
// any cell can reach any cell below and to the right of it.
func uniformPolicy(width, height int) *core.DirectionPolicy {
	rows := make([]int, height)
	cols := make([]int, width)
	for i := range rows {
		rows[i] = 1
	}
	for i := range cols {
		cols[i] = 1
	}
	return core.NewDirectionPolicy(rows, cols)
}

func TestFindPathStraightLine(t *testing.T) {
	g := core.NewGrid(5, 5)
	p := uniformPolicy(5, 5)

	path := FindPath(g, p, core.Cell{X: 0, Y: 0}, core.Cell{X: 4, Y: 4})
	if len(path) != 9 {
		t.Fatalf("path length = %d, want 9", len(path))
	}
	if path[0] != (core.Cell{X: 0, Y: 0}) || path[8] != (core.Cell{X: 4, Y: 4}) {
		t.Fatalf("path endpoints wrong: %v", path)
	}
	for i := 1; i < len(path); i++ {
		if !p.Allows(path[i-1], path[i]) {
			t.Errorf("illegal step %v -> %v", path[i-1], path[i])
		}
	}
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	g := core.NewGrid(5, 5)
	p := uniformPolicy(5, 5)

	c := core.Cell{X: 2, Y: 2}
	path := FindPath(g, p, c, c)
	if len(path) != 1 || path[0] != c {
		t.Fatalf("FindPath(c, c) = %v, want [c]", path)
	}
}

func TestFindPathInvalidEndpoints(t *testing.T) {
	g := core.NewGrid(5, 5)
	p := uniformPolicy(5, 5)
	g.AddObstacle(core.Cell{X: 2, Y: 2})

	cases := []struct {
		name        string
		start, goal core.Cell
	}{
		{"start out of bounds", core.Cell{X: -1, Y: 0}, core.Cell{X: 4, Y: 4}},
		{"goal out of bounds", core.Cell{X: 0, Y: 0}, core.Cell{X: 5, Y: 0}},
		{"start on obstacle", core.Cell{X: 2, Y: 2}, core.Cell{X: 4, Y: 4}},
		{"goal on obstacle", core.Cell{X: 0, Y: 0}, core.Cell{X: 2, Y: 2}},
	}
	for _, c := range cases {
		if path := FindPath(g, p, c.start, c.goal); path != nil {
			t.Errorf("%s: got %v, want nil", c.name, path)
		}
	}
}

func TestFindPathBlockedByObstacles(t *testing.T) {
	g := core.NewGrid(5, 5)
	p := uniformPolicy(5, 5)

	// Seal off (0,0): its only exits are (1,0) and (0,1).
	g.AddObstacle(core.Cell{X: 1, Y: 0})
	g.AddObstacle(core.Cell{X: 0, Y: 1})

	if path := FindPath(g, p, core.Cell{X: 0, Y: 0}, core.Cell{X: 4, Y: 4}); path != nil {
		t.Fatalf("sealed start should yield nil, got %v", path)
	}
}

func TestFindPathDetoursAroundObstacle(t *testing.T) {
	g := core.NewGrid(5, 5)
	p := uniformPolicy(5, 5)

	// Block the middle of row 0. The direct route along the top detours
	// down and back is impossible with one-way columns, so the path must go
	// around before the wall.
	g.AddObstacle(core.Cell{X: 2, Y: 0})

	path := FindPath(g, p, core.Cell{X: 0, Y: 0}, core.Cell{X: 4, Y: 0})
	if path != nil {
		// Columns only go down, so row 0 past the wall is unreachable.
		t.Fatalf("expected nil for target behind wall on one-way row, got %v", path)
	}

	// A goal below the wall stays reachable.
	path = FindPath(g, p, core.Cell{X: 0, Y: 0}, core.Cell{X: 4, Y: 1})
	if len(path) == 0 {
		t.Fatal("goal below the wall should be reachable")
	}
	for _, c := range path {
		if g.IsObstacle(c) {
			t.Errorf("path crosses obstacle at %v", c)
		}
	}
	if len(path) != 6 {
		t.Errorf("path length = %d, want 6", len(path))
	}
}

func TestFindPathRespectsOneWayRows(t *testing.T) {
	g := core.NewGrid(3, 3)
	p := core.NewAlternatingPolicy(3, 3)

	// (1,0) -> (0,0): row 0 points right, column 1 points up off the grid,
	// column 0 points down. Going left along row 0 is illegal and no detour
	// returns to (0,0) since nothing moves up into row 0 except column 1.
	if path := FindPath(g, p, core.Cell{X: 1, Y: 0}, core.Cell{X: 0, Y: 0}); path != nil {
		t.Fatalf("upstream goal should be unreachable, got %v", path)
	}
}
