package core

import "testing"

func TestGridBounds(t *testing.T) {
	g := NewGrid(5, 3)
	cases := []struct {
		c    Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{4, 2}, true},
		{Cell{5, 2}, false},
		{Cell{4, 3}, false},
		{Cell{-1, 0}, false},
		{Cell{0, -1}, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.c); got != c.want {
			t.Errorf("InBounds(%v) = %v, want %v", c.c, got, c.want)
		}
	}
}

func TestObstacleToggling(t *testing.T) {
	g := NewGrid(4, 4)
	c := Cell{2, 2}

	if g.IsObstacle(c) {
		t.Fatal("fresh grid should have no obstacles")
	}
	if !g.AddObstacle(c) {
		t.Fatal("AddObstacle on free cell should succeed")
	}
	if !g.IsObstacle(c) {
		t.Fatal("cell should be an obstacle after AddObstacle")
	}
	if g.AddObstacle(c) {
		t.Error("duplicate AddObstacle should fail")
	}
	if g.AddObstacle(Cell{9, 9}) {
		t.Error("AddObstacle out of bounds should fail")
	}
	if g.ObstacleCount() != 1 {
		t.Errorf("ObstacleCount = %d, want 1", g.ObstacleCount())
	}

	if !g.RemoveObstacle(c) {
		t.Fatal("RemoveObstacle on obstacle should succeed")
	}
	if g.RemoveObstacle(c) {
		t.Error("RemoveObstacle on free cell should fail")
	}
	if g.ObstacleCount() != 0 {
		t.Errorf("ObstacleCount = %d, want 0", g.ObstacleCount())
	}
}

func TestObstaclesCopy(t *testing.T) {
	g := NewGrid(4, 4)
	g.AddObstacle(Cell{1, 1})
	g.AddObstacle(Cell{2, 3})

	cells := g.Obstacles()
	if len(cells) != 2 {
		t.Fatalf("Obstacles returned %d cells, want 2", len(cells))
	}
	for _, c := range cells {
		if !g.IsObstacle(c) {
			t.Errorf("Obstacles returned non-obstacle cell %v", c)
		}
	}
}
