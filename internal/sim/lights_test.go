package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/core"
)

func TestLightPlacement(t *testing.T) {
	g := core.NewGrid(10, 8)
	timings := core.LightTimings{Green: 20, Yellow: 3, Red: 8}
	lc := newLightController(g, timings, rand.New(rand.NewSource(1)), 0)

	// Unique-row, unique-column placement over a full interior fills until
	// the smaller interior dimension is exhausted.
	require.Len(t, lc.Lights(), 6)

	rows := map[int]bool{}
	cols := map[int]bool{}
	for _, l := range lc.Lights() {
		assert.True(t, l.Pos.X >= 1 && l.Pos.X <= g.Width-2, "light %v not interior", l.Pos)
		assert.True(t, l.Pos.Y >= 1 && l.Pos.Y <= g.Height-2, "light %v not interior", l.Pos)
		assert.False(t, rows[l.Pos.Y], "row %d holds two lights", l.Pos.Y)
		assert.False(t, cols[l.Pos.X], "column %d holds two lights", l.Pos.X)
		rows[l.Pos.Y] = true
		cols[l.Pos.X] = true

		assert.NotEqual(t, core.Yellow, l.State, "lights never start yellow")
		assert.LessOrEqual(t, l.LastChange, 0.0)
		assert.GreaterOrEqual(t, l.LastChange, -timings.Duration(l.State))

		assert.True(t, lc.HasLight(l.Pos))
		assert.Same(t, l, lc.At(l.Pos))
	}
}

func TestLightCycle(t *testing.T) {
	timings := core.LightTimings{Green: 20, Yellow: 3, Red: 8}
	light := &core.TrafficLight{Pos: core.Cell{X: 1, Y: 1}, State: core.Green, LastChange: 0}
	lc := &LightController{
		timings: timings,
		lights:  []*core.TrafficLight{light},
		byPos:   map[core.Cell]*core.TrafficLight{light.Pos: light},
	}

	lc.Tick(20.0)
	assert.Equal(t, core.Green, light.State, "transition requires strictly elapsed duration")

	lc.Tick(20.1)
	require.Equal(t, core.Yellow, light.State)
	assert.Equal(t, 20.1, light.LastChange)

	lc.Tick(23.0)
	assert.Equal(t, core.Yellow, light.State)
	lc.Tick(23.3)
	require.Equal(t, core.Red, light.State)

	lc.Tick(31.4)
	require.Equal(t, core.Green, light.State)
}

func TestLightBlocks(t *testing.T) {
	pos := core.Cell{X: 2, Y: 2}
	light := &core.TrafficLight{Pos: pos, State: core.Green}
	lc := &LightController{
		timings: core.LightTimings{Green: 20, Yellow: 3, Red: 8},
		lights:  []*core.TrafficLight{light},
		byPos:   map[core.Cell]*core.TrafficLight{pos: light},
	}

	assert.False(t, lc.Blocks(pos), "green light does not block")

	light.State = core.Yellow
	assert.True(t, lc.Blocks(pos), "yellow blocks like red")

	light.State = core.Red
	assert.True(t, lc.Blocks(pos))

	assert.False(t, lc.Blocks(core.Cell{X: 5, Y: 5}), "cell without a light never blocks")
}
