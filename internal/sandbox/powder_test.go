package sandbox

import "testing"

func TestPowderFallsIntoEmptySpace(t *testing.T) {
	g := NewGrid(4, 20)
	g.SetMat(2, 0, Sand)
	rng := newTickRNG(7)
	for i := 0; i < 40; i++ {
		g.ClearTickFlags()
		stepPowder(g, rng, &tickStats{})
	}
	if g.GetMat(2, 0) == Sand {
		t.Errorf("Sand did not fall away from its starting cell after many ticks")
	}
	found := false
	for y := 0; y < g.H; y++ {
		if g.GetMat(2, y) == Sand {
			found = true
		}
	}
	if !found {
		t.Errorf("Sand disappeared instead of settling somewhere in the column")
	}
}

func TestPowderRestsOnStone(t *testing.T) {
	g := NewGrid(4, 4)
	// A full Stone floor: on a single Stone cell the sand would slide off
	// diagonally (the powder stage's diagonal-slide step).
	for x := 0; x < g.W; x++ {
		g.SetMat(x, 3, Stone)
	}
	g.SetMat(1, 0, Sand)
	rng := newTickRNG(3)
	for i := 0; i < 30; i++ {
		g.ClearTickFlags()
		stepPowder(g, rng, &tickStats{})
	}
	if g.GetMat(1, 2) != Sand {
		t.Fatalf("Sand should have settled directly above the Stone at (1,2), got %v", g.GetMat(1, 2))
	}
}

func TestPowderDoesNotFallThroughSolid(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetMat(1, 1, Stone)
	g.SetMat(1, 0, Sand)
	rng := newTickRNG(5)
	for i := 0; i < 10; i++ {
		g.ClearTickFlags()
		stepPowder(g, rng, &tickStats{})
	}
	if g.GetMat(1, 2) == Sand || g.GetMat(1, 3) == Sand {
		t.Errorf("Sand passed through Stone")
	}
}

func TestPassableForPowder(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetMat(0, 0, Stone)
	if passableForPowder(g, 0, 0) {
		t.Errorf("Stone should not be passable for powder")
	}
	if !passableForPowder(g, 1, 1) {
		t.Errorf("Empty cell should be passable for powder")
	}
	g.SetMat(2, 2, Water)
	if !passableForPowder(g, 2, 2) {
		t.Errorf("Fluid cell should be passable for powder (denser powder displaces it)")
	}
}
