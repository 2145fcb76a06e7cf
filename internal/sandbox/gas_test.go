package sandbox

import "testing"

func TestSmokeRisesAndEventuallyDissipates(t *testing.T) {
	g := NewGrid(6, 10)
	g.SetMat(3, 8, Smoke)
	rng := newTickRNG(4)
	gone := false
	highestY := 8
	for i := 0; i < 2000; i++ {
		g.ClearTickFlags()
		stepGas(g, rng, &tickStats{})
		any := false
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if g.GetMat(x, y) == Smoke {
					any = true
					if y < highestY {
						highestY = y
					}
				}
			}
		}
		if !any {
			gone = true
			break
		}
	}
	if !gone {
		t.Errorf("smoke never dissipated after 2000 ticks")
	}
	if highestY >= 8 {
		t.Errorf("smoke never rose above its spawn row")
	}
}

func TestPassableForGasBubblesThroughDenserFluid(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetMat(0, 0, Water)
	if !passableForGas(g, 0, 0, Get(Steam).Density) {
		t.Errorf("steam should bubble up through the denser Water")
	}
	g.SetMat(1, 1, Stone)
	if passableForGas(g, 1, 1, Get(Steam).Density) {
		t.Errorf("gas should never pass through Stone")
	}
}

func TestSteamCondensesBelowThreshold(t *testing.T) {
	g := NewGrid(4, 4)
	rng := newTickRNG(2)
	condensed := false
	for i := 0; i < 2000; i++ {
		g.SetMat(1, 1, Steam)
		g.SetTemp(1, 1, 0)
		updateGasCell(g, 1, 1, rng, &tickStats{})
		if g.GetMat(1, 1) == Water {
			condensed = true
			break
		}
	}
	if !condensed {
		t.Errorf("steam below its condensation threshold never condensed to water")
	}
}
