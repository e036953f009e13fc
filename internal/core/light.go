package core

// LightState enumerates traffic light phases.
type LightState int

const (
	Green LightState = iota
	Yellow
	Red
)

func (s LightState) String() string {
	switch s {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Next returns the state following s in the Green -> Yellow -> Red cycle.
func (s LightState) Next() LightState {
	switch s {
	case Green:
		return Yellow
	case Yellow:
		return Red
	default:
		return Green
	}
}

// LightTimings holds the fixed per-state durations in simulated seconds.
type LightTimings struct {
	Green  float64
	Yellow float64
	Red    float64
}

// Duration returns the configured duration of state s.
func (t LightTimings) Duration(s LightState) float64 {
	switch s {
	case Green:
		return t.Green
	case Yellow:
		return t.Yellow
	default:
		return t.Red
	}
}

// TrafficLight is an independent timed state machine fixed at an interior
// grid cell. LastChange is the simulation time of the last transition; a
// negative value at startup desynchronizes the light from its peers.
type TrafficLight struct {
	Pos        Cell
	State      LightState
	LastChange float64
}
