package core

import "github.com/zyedidia/generic/mapset"

// Grid is the shared road grid. Cells are free or obstacle; obstacles change
// only through explicit AddObstacle/RemoveObstacle calls, never as a side
// effect of vehicle movement. Invalidating the plans of affected vehicles is
// the caller's responsibility.
type Grid struct {
	Width, Height int

	obstacles mapset.Set[Cell]
}

// NewGrid creates an empty width x height grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:     width,
		Height:    height,
		obstacles: mapset.New[Cell](),
	}
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsObstacle reports whether c holds an obstacle.
func (g *Grid) IsObstacle(c Cell) bool {
	return g.obstacles.Has(c)
}

// AddObstacle marks c as an obstacle. Returns false if c is out of bounds or
// already an obstacle.
func (g *Grid) AddObstacle(c Cell) bool {
	if !g.InBounds(c) || g.obstacles.Has(c) {
		return false
	}
	g.obstacles.Put(c)
	return true
}

// RemoveObstacle frees the cell at c. Returns false if c holds no obstacle.
func (g *Grid) RemoveObstacle(c Cell) bool {
	if !g.obstacles.Has(c) {
		return false
	}
	g.obstacles.Remove(c)
	return true
}

// ObstacleCount returns the number of obstacle cells.
func (g *Grid) ObstacleCount() int {
	return g.obstacles.Size()
}

// Obstacles returns a copy of the obstacle cells, in no particular order.
func (g *Grid) Obstacles() []Cell {
	cells := make([]Cell, 0, g.obstacles.Size())
	g.obstacles.Each(func(c Cell) {
		cells = append(cells, c)
	})
	return cells
}
