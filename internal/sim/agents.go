package sim

import (
	"log/slog"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/algo"
	"github.com/mysydiouf/circulation-routiere-en-2D/internal/core"
)

// intention is a vehicle's proposed next cell for the current tick, not yet
// committed.
type intention struct {
	next  core.Cell
	ready bool
}

// planVehicles runs the per-vehicle state machine once and collects movement
// intentions for conflict resolution.
//
// A vehicle standing on its destination arrives and leaves the active set.
// A vehicle with no path, or blocked longer than the stall threshold,
// replans. A vehicle with a path emits its next cell, ready once the minimum
// inter-move interval has elapsed.
func (s *Simulator) planVehicles(now float64) map[int]intention {
	intents := make(map[int]intention, len(s.vehicles))

	for _, v := range s.vehicles {
		if v.Arrived() {
			continue
		}

		if v.Pos == v.Dest {
			t := now
			v.ArrivedAt = &t
			v.Path = nil
			v.ClearBlocked()
			s.metrics.Arrivals++
			continue
		}

		needsPath := len(v.Path) == 0 ||
			(v.BlockedSince != nil && now-*v.BlockedSince > s.cfg.StallThreshold)
		if needsPath {
			s.replan(v, now)
		}

		next := v.Pos
		if len(v.Path) > 0 {
			next = v.Path[0]
		}
		ready := len(v.Path) > 0 && now-v.LastMove >= s.cfg.minMoveInterval()
		intents[v.ID] = intention{next: next, ready: ready}
	}

	return intents
}

// replan recomputes the vehicle's path toward its current destination,
// counting consecutive failures while blocked and re-targeting once too many
// accumulate.
func (s *Simulator) replan(v *core.Vehicle, now float64) {
	s.metrics.Replans++

	path := algo.FindPath(s.grid, s.policy, v.Pos, v.Dest)
	if len(path) > 1 {
		v.Path = path[1:]
		v.ClearBlocked()
		return
	}

	s.metrics.ReplanFailures++
	if v.BlockedSince == nil {
		v.MarkBlocked(now)
	} else {
		// Only a repeated failure while already stalled counts toward
		// re-targeting; the first failure just starts the stall clock.
		v.ReplanFailures++
	}
	v.Path = nil

	if v.ReplanFailures > s.cfg.MaxReplanFailures {
		s.retarget(v, now)
	}
}

// retarget assigns a fresh random destination to a vehicle that repeatedly
// failed to reach its current one, then tries pathing once immediately.
func (s *Simulator) retarget(v *core.Vehicle, now float64) {
	dest, ok := s.findDestination(v.Pos)
	if !ok {
		// No candidate anywhere. Resetting the counter keeps a wedged grid
		// from re-running the destination search every tick; the vehicle
		// stays in place and the failure shows up in the health counters.
		v.ReplanFailures = 0
		s.metrics.RetargetFailures++
		return
	}

	v.Dest = dest
	s.metrics.DestinationChanges++
	slog.Debug("vehicle re-targeted", "vehicle", v.ID, "dest", dest)

	path := algo.FindPath(s.grid, s.policy, v.Pos, v.Dest)
	if len(path) > 1 {
		v.Path = path[1:]
		v.BlockedSince = nil
	} else {
		v.Path = nil
		t := now
		v.BlockedSince = &t
	}
	v.ReplanFailures = 0
}
