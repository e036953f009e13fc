package sim

import "github.com/mysydiouf/circulation-routiere-en-2D/internal/core"

// ToggleObstacleAdd places an obstacle at c. It fails when c is out of
// bounds, already an obstacle, or holds a traffic light. On success, every
// non-arrived vehicle whose plan or destination crosses c loses its path and
// replans on its next tick.
//
// Toggles take the simulation mutex, so they apply between ticks and never
// interleave with resolution.
func (s *Simulator) ToggleObstacleAdd(c core.Cell) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lights.HasLight(c) {
		return false
	}
	if !s.grid.AddObstacle(c) {
		return false
	}

	s.invalidateThrough(c)
	s.metrics.ObstaclesAdded++
	return true
}

// ToggleObstacleRemove frees the obstacle at c. It fails when c holds no
// obstacle. Removal does not force replanning; stalled vehicles rediscover
// the opening through the stall threshold.
func (s *Simulator) ToggleObstacleRemove(c core.Cell) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.grid.RemoveObstacle(c) {
		return false
	}
	s.metrics.ObstaclesRemoved++
	return true
}

// invalidateThrough clears the plan of every active vehicle routed through
// c, forcing a replan. Destinations are left untouched; a vehicle whose
// destination became an obstacle will fail its replans and re-target through
// the normal failure path.
func (s *Simulator) invalidateThrough(c core.Cell) {
	for _, v := range s.vehicles {
		if v.Arrived() {
			continue
		}

		affected := v.Dest == c
		if !affected {
			for _, step := range v.Path {
				if step == c {
					affected = true
					break
				}
			}
		}
		if affected {
			v.Path = nil
			v.ReplanFailures = 0
		}
	}
}
