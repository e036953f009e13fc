package sim

import (
	"fmt"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/core"
)

// Config holds every simulation parameter. All durations and rates are in
// simulated seconds; the simulation clock advances by 1/TickRate per tick.
type Config struct {
	// Grid dimensions in cells.
	Width, Height int

	// Initial population targets. Placement degrades gracefully: a grid too
	// constrained to seat everything yields fewer entities and a warning.
	NumVehicles  int
	NumCrossings int

	// VehicleSpeed is cells per second; its inverse is the minimum interval
	// between two moves of the same vehicle.
	VehicleSpeed float64

	// StallThreshold is how long a vehicle may stay continuously blocked
	// before it recomputes its path.
	StallThreshold float64

	// MaxReplanFailures is the number of consecutive replan failures while
	// blocked after which a vehicle picks a new destination.
	MaxReplanFailures int

	// PedestrianSpeed is crossing progress per tick.
	PedestrianSpeed float64

	// PedestrianSpawnProb is the per-tick spawn probability per crossing.
	PedestrianSpawnProb float64

	Timings core.LightTimings

	// TickRate is ticks per simulated second.
	TickRate float64

	// Duration bounds Run in simulated seconds; 0 runs until the context is
	// cancelled.
	Duration float64

	Seed    int64
	Verbose bool
}

// DefaultConfig returns the standard simulation parameters.
func DefaultConfig() Config {
	return Config{
		Width:               30,
		Height:              15,
		NumVehicles:         100,
		NumCrossings:        5,
		VehicleSpeed:        1.5,
		StallThreshold:      2.5,
		MaxReplanFailures:   4,
		PedestrianSpeed:     0.02,
		PedestrianSpawnProb: 0.005,
		Timings:             core.LightTimings{Green: 20, Yellow: 3, Red: 8},
		TickRate:            30,
		Duration:            60,
		Seed:                42,
	}
}

// Validate checks the configuration for values the simulation cannot run
// with.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("grid %dx%d too small: need at least 3x3 for interior cells", c.Width, c.Height)
	}
	if c.NumVehicles < 0 || c.NumCrossings < 0 {
		return fmt.Errorf("negative population: %d vehicles, %d crossings", c.NumVehicles, c.NumCrossings)
	}
	if c.VehicleSpeed <= 0 {
		return fmt.Errorf("vehicle speed must be positive, got %v", c.VehicleSpeed)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %v", c.TickRate)
	}
	if c.Timings.Green <= 0 || c.Timings.Yellow <= 0 || c.Timings.Red <= 0 {
		return fmt.Errorf("light durations must be positive, got %+v", c.Timings)
	}
	return nil
}

// timeStep is the simulated time advanced per tick.
func (c Config) timeStep() float64 { return 1.0 / c.TickRate }

// minMoveInterval is the minimum simulated time between two moves of the
// same vehicle.
func (c Config) minMoveInterval() float64 { return 1.0 / c.VehicleSpeed }
