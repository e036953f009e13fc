package core

// Cell is a discrete grid coordinate: X is the column, Y the row.
type Cell struct {
	X, Y int
}

// Manhattan returns the L1 distance between two cells.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Heading is a four-way orientation in degrees, maintained for the external
// rendering collaborator: right=0, up=90, left=180, down=270.
type Heading int

const (
	HeadingRight Heading = 0
	HeadingUp    Heading = 90
	HeadingLeft  Heading = 180
	HeadingDown  Heading = 270
)

// HeadingFromDelta derives a heading from a single-cell movement delta.
// Vertical movement takes precedence when both components are set.
func HeadingFromDelta(dx, dy int) Heading {
	switch {
	case dy < 0:
		return HeadingUp
	case dy > 0:
		return HeadingDown
	case dx < 0:
		return HeadingLeft
	default:
		return HeadingRight
	}
}
