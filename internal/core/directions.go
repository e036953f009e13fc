package core

// DirectionPolicy assigns every row and column a single travel direction,
// fixed for the lifetime of the simulation. A vehicle on row y may only move
// horizontally in that row's direction, and on column x only vertically in
// that column's direction; diagonal steps are never legal. Out-degree is
// therefore at most 2 from any cell.
type DirectionPolicy struct {
	rowDelta []int // per row: +1 rightward, -1 leftward
	colDelta []int // per column: +1 downward, -1 upward
}

// NewDirectionPolicy builds a policy from explicit per-row and per-column
// deltas. Every delta must be +1 or -1.
func NewDirectionPolicy(rowDelta, colDelta []int) *DirectionPolicy {
	return &DirectionPolicy{rowDelta: rowDelta, colDelta: colDelta}
}

// NewAlternatingPolicy assigns even rows rightward and odd rows leftward,
// even columns downward and odd columns upward.
func NewAlternatingPolicy(width, height int) *DirectionPolicy {
	rows := make([]int, height)
	for y := range rows {
		if y%2 == 0 {
			rows[y] = 1
		} else {
			rows[y] = -1
		}
	}
	cols := make([]int, width)
	for x := range cols {
		if x%2 == 0 {
			cols[x] = 1
		} else {
			cols[x] = -1
		}
	}
	return &DirectionPolicy{rowDelta: rows, colDelta: cols}
}

// RowDelta returns the horizontal direction (+1 or -1) assigned to row y.
func (p *DirectionPolicy) RowDelta(y int) int { return p.rowDelta[y] }

// ColDelta returns the vertical direction (+1 or -1) assigned to column x.
func (p *DirectionPolicy) ColDelta(x int) int { return p.colDelta[x] }

// AllowedNeighbors returns the in-bounds cells reachable from c in one legal
// step: at most one horizontal and one vertical candidate. Obstacles are not
// filtered here; callers decide whether occupancy matters.
func (p *DirectionPolicy) AllowedNeighbors(g *Grid, c Cell) []Cell {
	if !g.InBounds(c) {
		return nil
	}
	neighbors := make([]Cell, 0, 2)
	h := Cell{X: c.X + p.rowDelta[c.Y], Y: c.Y}
	if g.InBounds(h) {
		neighbors = append(neighbors, h)
	}
	v := Cell{X: c.X, Y: c.Y + p.colDelta[c.X]}
	if g.InBounds(v) {
		neighbors = append(neighbors, v)
	}
	return neighbors
}

// Allows reports whether a single step from a to b follows the policy.
func (p *DirectionPolicy) Allows(a, b Cell) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx != 0 && dy != 0 {
		return false
	}
	if dx != 0 {
		return abs(dx) == 1 && dx == p.rowDelta[a.Y]
	}
	if dy != 0 {
		return abs(dy) == 1 && dy == p.colDelta[a.X]
	}
	return false
}

// IsEscapable reports whether at least one allowed neighbor of c is in
// bounds and free of obstacles. Cells that fail this are dead ends and are
// rejected as vehicle starts and destinations.
func (p *DirectionPolicy) IsEscapable(g *Grid, c Cell) bool {
	for _, n := range p.AllowedNeighbors(g, c) {
		if !g.IsObstacle(n) {
			return true
		}
	}
	return false
}
