package sim

import (
	"log/slog"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/core"
)

// CrossingController owns the fixed pedestrian crossings and the pedestrians
// currently traversing them.
type CrossingController struct {
	crossings []core.Crossing
	active    []*core.Pedestrian
	nextID    int

	speed     float64 // progress per tick
	spawnProb float64 // per tick, per crossing
	rng       *rand.Rand
}

// newCrossingController places up to n crossings on random interior cells,
// rejecting cells used by a light, an obstacle, or another crossing.
// Orientation is drawn uniformly per crossing. Placing fewer than n is not
// an error; the shortfall is logged and the simulation runs with what fits.
func newCrossingController(n int, g *core.Grid, lights *LightController, speed, spawnProb float64, rng *rand.Rand) *CrossingController {
	cc := &CrossingController{
		speed:     speed,
		spawnProb: spawnProb,
		rng:       rng,
	}
	if n <= 0 {
		return cc
	}

	used := mapset.New[core.Cell]()
	for attempts := 0; len(cc.crossings) < n && attempts < n*100; attempts++ {
		pos := core.Cell{
			X: 1 + rng.Intn(g.Width-2),
			Y: 1 + rng.Intn(g.Height-2),
		}
		if used.Has(pos) || lights.HasLight(pos) || g.IsObstacle(pos) {
			continue
		}

		orientation := core.Horizontal
		if rng.Intn(2) == 1 {
			orientation = core.Vertical
		}
		cc.crossings = append(cc.crossings, core.Crossing{Pos: pos, Orientation: orientation})
		used.Put(pos)
	}

	if len(cc.crossings) < n {
		slog.Warn("placed fewer crossings than requested",
			"want", n, "got", len(cc.crossings))
	}
	return cc
}

// Tick advances, retires, and spawns pedestrians. A vehicle halted on a
// crossing pauses the pedestrian there; it never pushes progress back. A new
// pedestrian appears with probability spawnProb * len(crossings), on one
// random crossing, only when neither a pedestrian nor an active vehicle
// holds that cell.
func (cc *CrossingController) Tick(vehicles []*core.Vehicle) (spawned, completed int) {
	halted := mapset.New[core.Cell]()
	occupied := mapset.New[core.Cell]()
	for _, v := range vehicles {
		if v.Arrived() {
			continue
		}
		occupied.Put(v.Pos)
		if v.Blocked() {
			halted.Put(v.Pos)
		}
	}

	remaining := cc.active[:0]
	for _, p := range cc.active {
		if !halted.Has(p.Crossing) {
			p.Progress += cc.speed
		}
		if p.Progress < 1.0 {
			remaining = append(remaining, p)
		} else {
			completed++
		}
	}
	cc.active = remaining

	if len(cc.crossings) > 0 && cc.rng.Float64() < cc.spawnProb*float64(len(cc.crossings)) {
		crossing := cc.crossings[cc.rng.Intn(len(cc.crossings))]
		if !cc.OccupiedBy(crossing.Pos) && !occupied.Has(crossing.Pos) {
			cc.active = append(cc.active, &core.Pedestrian{
				ID:          cc.nextID,
				Crossing:    crossing.Pos,
				Orientation: crossing.Orientation,
			})
			cc.nextID++
			spawned++
		}
	}

	return spawned, completed
}

// OccupiedBy reports whether an active pedestrian is traversing the crossing
// at c.
func (cc *CrossingController) OccupiedBy(c core.Cell) bool {
	for _, p := range cc.active {
		if p.Crossing == c {
			return true
		}
	}
	return false
}

// Crossings returns the crossing list. Callers must not mutate it.
func (cc *CrossingController) Crossings() []core.Crossing {
	return cc.crossings
}

// Pedestrians returns the active pedestrians. Callers must not mutate them.
func (cc *CrossingController) Pedestrians() []*core.Pedestrian {
	return cc.active
}
