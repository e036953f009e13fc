package core

// Vehicle is one agent navigating the grid toward its destination.
// Timestamps are simulation seconds; nil pointer fields mean "not in that
// state" rather than a sentinel value.
type Vehicle struct {
	ID   int
	Pos  Cell
	Dest Cell

	// Path holds the upcoming cells to visit, excluding Pos. Empty means a
	// plan is needed.
	Path []Cell

	// ArrivedAt is set once Pos reaches Dest. While set, the vehicle is
	// excluded from movement and collision accounting; nothing resets it.
	ArrivedAt *float64

	LastMove       float64
	BlockedSince   *float64
	ReplanFailures int

	Heading Heading // for external rendering only
}

// Arrived reports whether the vehicle has reached its destination.
func (v *Vehicle) Arrived() bool { return v.ArrivedAt != nil }

// Blocked reports whether the vehicle is currently accumulating stall time.
func (v *Vehicle) Blocked() bool { return v.BlockedSince != nil }

// MarkBlocked records the start of a stall unless one is already running.
func (v *Vehicle) MarkBlocked(now float64) {
	if v.BlockedSince == nil {
		t := now
		v.BlockedSince = &t
	}
}

// ClearBlocked ends any running stall and resets the replan failure count.
func (v *Vehicle) ClearBlocked() {
	v.BlockedSince = nil
	v.ReplanFailures = 0
}
