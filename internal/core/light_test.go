package core

import "testing"

func TestLightStateCycle(t *testing.T) {
	if Green.Next() != Yellow || Yellow.Next() != Red || Red.Next() != Green {
		t.Error("light cycle should be Green -> Yellow -> Red -> Green")
	}
}

func TestLightTimingsDuration(t *testing.T) {
	timings := LightTimings{Green: 20, Yellow: 3, Red: 8}
	cases := []struct {
		state LightState
		want  float64
	}{
		{Green, 20},
		{Yellow, 3},
		{Red, 8},
	}
	for _, c := range cases {
		if got := timings.Duration(c.state); got != c.want {
			t.Errorf("Duration(%v) = %v, want %v", c.state, got, c.want)
		}
	}
}
