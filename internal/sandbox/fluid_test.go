package sandbox

import "testing"

func TestFluidFallsAndSpreads(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetMat(5, 5, Stone)
	for x := 0; x < 10; x++ {
		g.SetMat(x, 9, Stone)
	}
	g.SetMat(1, 0, Water)
	rng := newTickRNG(11)
	for i := 0; i < 200; i++ {
		g.ClearTickFlags()
		stepPowder(g, rng, &tickStats{})
		stepFluid(g, rng, &tickStats{})
	}
	// Water should have moved off its spawn cell and pooled somewhere above the floor.
	if g.GetMat(1, 0) == Water {
		t.Errorf("water never left its spawn cell")
	}
	poolCount := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.GetMat(x, y) == Water {
				poolCount++
			}
		}
	}
	if poolCount != 1 {
		t.Errorf("expected exactly one Water cell to be conserved, found %d", poolCount)
	}
}

func TestPassableForFluid(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetMat(0, 0, Stone)
	g.SetMat(1, 0, Sand)
	g.SetMat(2, 0, Smoke)
	if passableForFluid(g, 0, 0) {
		t.Errorf("Stone should not be passable for fluid")
	}
	if passableForFluid(g, 1, 0) {
		t.Errorf("Sand should not be passable for fluid")
	}
	if !passableForFluid(g, 2, 0) {
		t.Errorf("Gas should be passable for fluid")
	}
}

func TestColumnHeightCountsContiguousSameMaterial(t *testing.T) {
	g := NewGrid(4, 8)
	g.SetMat(0, 5, Water)
	g.SetMat(0, 6, Water)
	g.SetMat(0, 7, Water)
	if h := columnHeight(g, 0, 7, Water); h != 3 {
		t.Errorf("columnHeight = %d, want 3", h)
	}
}
