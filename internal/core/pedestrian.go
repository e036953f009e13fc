package core

// Orientation is the axis pedestrians walk along at a crossing.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Crossing is a pedestrian crossing fixed at initialization; it never moves
// and is never removed.
type Crossing struct {
	Pos         Cell
	Orientation Orientation
}

// Pedestrian is one person traversing a crossing. Progress increases
// monotonically from 0 while unobstructed; the pedestrian is removed once it
// reaches 1. At most one pedestrian occupies a crossing at a time.
type Pedestrian struct {
	ID          int
	Crossing    Cell
	Orientation Orientation
	Progress    float64
}
