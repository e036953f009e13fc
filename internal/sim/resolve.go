package sim

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/core"
)

// resolveMoves commits movement intentions into a collision-free next state.
//
// Active vehicles are processed in a fresh random permutation each tick so
// none holds persistent priority. The occupied set starts with every active
// vehicle's current cell; a committed move releases the mover's old cell and
// claims the new one. A vehicle may therefore enter a cell vacated earlier
// in the same permutation; that same-tick chaining is intended behavior, not
// a race.
func (s *Simulator) resolveMoves(intents map[int]intention, now float64) {
	active := make([]*core.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if !v.Arrived() {
			active = append(active, v)
		}
	}
	s.rng.Shuffle(len(active), func(i, j int) {
		active[i], active[j] = active[j], active[i]
	})

	occupied := mapset.New[core.Cell]()
	for _, v := range active {
		occupied.Put(v.Pos)
	}

	for _, v := range active {
		intent, ok := intents[v.ID]
		if !ok {
			intent = intention{next: v.Pos}
		}

		canMove := intent.ready && intent.next != v.Pos
		if canMove {
			switch {
			case s.grid.IsObstacle(intent.next):
				// The plan runs through a wall: the path is invalid, not
				// merely stalled, so drop it outright.
				canMove = false
				v.Path = nil
				v.ReplanFailures = 0
				v.MarkBlocked(now)
				s.metrics.RejectedObstacle++
			case s.lights.Blocks(intent.next):
				canMove = false
				v.MarkBlocked(now)
				s.metrics.RejectedLight++
			case occupied.Has(intent.next):
				canMove = false
				v.MarkBlocked(now)
				s.metrics.RejectedOccupied++
			case s.crossings.OccupiedBy(intent.next):
				canMove = false
				v.MarkBlocked(now)
				s.metrics.RejectedPedestrian++
			}
		}

		if canMove {
			occupied.Remove(v.Pos)
			occupied.Put(intent.next)

			v.Heading = core.HeadingFromDelta(intent.next.X-v.Pos.X, intent.next.Y-v.Pos.Y)
			v.Pos = intent.next
			if len(v.Path) > 0 {
				v.Path = v.Path[1:]
			}
			v.LastMove = now
			v.ClearBlocked()
			s.metrics.MovesCommitted++
		} else if v.Pos != v.Dest {
			// A stationary vehicle starts accumulating stall time even when
			// nothing rejected it this tick.
			v.MarkBlocked(now)
		}
	}
}
