package sim

import (
	"github.com/samber/lo"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/core"
)

// Snapshot is the read-only view consumed by the rendering/input
// collaborator. Every slice is a fresh copy; mutating a snapshot never
// affects the simulation.
type Snapshot struct {
	Time float64
	Tick int64

	Grid        GridSnapshot
	Lights      []LightSnapshot
	Crossings   []CrossingSnapshot
	Pedestrians []PedestrianSnapshot
	Vehicles    []VehicleSnapshot
}

type GridSnapshot struct {
	Width, Height int
	Obstacles     []core.Cell
}

type LightSnapshot struct {
	Pos   core.Cell
	State core.LightState
}

type CrossingSnapshot struct {
	Pos         core.Cell
	Orientation core.Orientation
}

type PedestrianSnapshot struct {
	ID          int
	Crossing    core.Cell
	Orientation core.Orientation
	Progress    float64
}

type VehicleSnapshot struct {
	ID        int
	Pos       core.Cell
	Dest      core.Cell
	PathLen   int
	ArrivedAt *float64
	Heading   core.Heading
}

// Snapshot returns a copy of the externally visible simulation state.
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Time: s.now,
		Tick: s.tick,
		Grid: GridSnapshot{
			Width:     s.grid.Width,
			Height:    s.grid.Height,
			Obstacles: s.grid.Obstacles(),
		},
		Lights: lo.Map(s.lights.Lights(), func(l *core.TrafficLight, _ int) LightSnapshot {
			return LightSnapshot{Pos: l.Pos, State: l.State}
		}),
		Crossings: lo.Map(s.crossings.Crossings(), func(c core.Crossing, _ int) CrossingSnapshot {
			return CrossingSnapshot{Pos: c.Pos, Orientation: c.Orientation}
		}),
		Pedestrians: lo.Map(s.crossings.Pedestrians(), func(p *core.Pedestrian, _ int) PedestrianSnapshot {
			return PedestrianSnapshot{
				ID:          p.ID,
				Crossing:    p.Crossing,
				Orientation: p.Orientation,
				Progress:    p.Progress,
			}
		}),
		Vehicles: lo.Map(s.vehicles, func(v *core.Vehicle, _ int) VehicleSnapshot {
			snap := VehicleSnapshot{
				ID:      v.ID,
				Pos:     v.Pos,
				Dest:    v.Dest,
				PathLen: len(v.Path),
				Heading: v.Heading,
			}
			if v.ArrivedAt != nil {
				t := *v.ArrivedAt
				snap.ArrivedAt = &t
			}
			return snap
		}),
	}
}
