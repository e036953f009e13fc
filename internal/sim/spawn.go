package sim

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/core"
)

// maxPlacementAttempts bounds each random cell search during placement and
// re-targeting.
const maxPlacementAttempts = 100

// generateVehicles seats up to n vehicles on valid, escapable cells, each
// with a valid destination distinct from its start. Generation stops early
// when no start cell can be found; a vehicle whose destination search fails
// is skipped. Seating fewer than n is logged, not fatal.
func (s *Simulator) generateVehicles(n int) {
	usedStarts := mapset.New[core.Cell]()

	nextID := 1
	for len(s.vehicles) < n && nextID < n*3 {
		start, ok := s.findStart(usedStarts)
		if !ok {
			break
		}
		dest, ok := s.findDestination(start)
		if !ok {
			nextID++
			continue
		}

		usedStarts.Put(start)
		s.vehicles = append(s.vehicles, &core.Vehicle{
			ID:       nextID,
			Pos:      start,
			Dest:     dest,
			LastMove: s.now,
			Heading:  core.HeadingRight,
		})
		nextID++
	}

	if len(s.vehicles) < n {
		slog.Warn("seated fewer vehicles than requested",
			"want", n, "got", len(s.vehicles))
	}
}

// findStart draws a random cell usable as a vehicle start: not a light, not
// an obstacle, not an already-used start, and escapable.
func (s *Simulator) findStart(used mapset.Set[core.Cell]) (core.Cell, bool) {
	for i := 0; i < maxPlacementAttempts; i++ {
		c := s.randomCell()
		if used.Has(c) || s.lights.HasLight(c) || s.grid.IsObstacle(c) {
			continue
		}
		if !s.policy.IsEscapable(s.grid, c) {
			continue
		}
		return c, true
	}
	return core.Cell{}, false
}

// findDestination draws a random cell usable as a destination from `from`:
// distinct from it, not a light, not an obstacle, and escapable.
func (s *Simulator) findDestination(from core.Cell) (core.Cell, bool) {
	for i := 0; i < maxPlacementAttempts; i++ {
		c := s.randomCell()
		if c == from || s.lights.HasLight(c) || s.grid.IsObstacle(c) {
			continue
		}
		if !s.policy.IsEscapable(s.grid, c) {
			continue
		}
		return c, true
	}
	return core.Cell{}, false
}

func (s *Simulator) randomCell() core.Cell {
	return core.Cell{X: s.rng.Intn(s.grid.Width), Y: s.rng.Intn(s.grid.Height)}
}
