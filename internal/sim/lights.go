package sim

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/core"
)

// LightController owns every traffic light and advances their timed cycles.
// Lights are pure time-driven state machines; nothing external influences
// their transitions.
type LightController struct {
	timings core.LightTimings
	lights  []*core.TrafficLight
	byPos   map[core.Cell]*core.TrafficLight
}

// newLightController places lights on shuffled interior cells, accepting a
// candidate only while its row and column hold no light yet. That caps the
// light count at min(W,H)-2. Each light starts Green or Red with a random
// phase offset already elapsed, so the population is desynchronized from the
// first tick.
func newLightController(g *core.Grid, timings core.LightTimings, rng *rand.Rand, now float64) *LightController {
	lc := &LightController{
		timings: timings,
		byPos:   make(map[core.Cell]*core.TrafficLight),
	}

	candidates := make([]core.Cell, 0, (g.Width-2)*(g.Height-2))
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			candidates = append(candidates, core.Cell{X: x, Y: y})
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	usedRows := mapset.New[int]()
	usedCols := mapset.New[int]()
	for _, pos := range candidates {
		if usedRows.Has(pos.Y) || usedCols.Has(pos.X) {
			continue
		}

		state := core.Green
		if rng.Intn(2) == 1 {
			state = core.Red
		}
		offset := rng.Float64() * timings.Duration(state)

		light := &core.TrafficLight{
			Pos:        pos,
			State:      state,
			LastChange: now - offset,
		}
		lc.lights = append(lc.lights, light)
		lc.byPos[pos] = light
		usedRows.Put(pos.Y)
		usedCols.Put(pos.X)
	}

	return lc
}

// Tick advances every light whose current state duration has elapsed.
func (lc *LightController) Tick(now float64) {
	for _, l := range lc.lights {
		if now-l.LastChange > lc.timings.Duration(l.State) {
			l.State = l.State.Next()
			l.LastChange = now
		}
	}
}

// Blocks reports whether c holds a light that is not green.
func (lc *LightController) Blocks(c core.Cell) bool {
	l, ok := lc.byPos[c]
	return ok && l.State != core.Green
}

// HasLight reports whether a light occupies c.
func (lc *LightController) HasLight(c core.Cell) bool {
	_, ok := lc.byPos[c]
	return ok
}

// At returns the light at c, or nil.
func (lc *LightController) At(c core.Cell) *core.TrafficLight {
	return lc.byPos[c]
}

// Lights returns the light list. Callers must not mutate it.
func (lc *LightController) Lights() []*core.TrafficLight {
	return lc.lights
}
