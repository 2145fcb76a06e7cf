package sandbox

import "testing"

func TestFireEventuallyDiesOut(t *testing.T) {
	g := NewGrid(6, 6)
	g.SetMat(3, 3, Fire)
	rng := newTickRNG(9)
	diedOut := false
	for i := 0; i < 400; i++ {
		g.ClearTickFlags()
		stepFire(g, rng, &tickStats{})
		stepGas(g, rng, &tickStats{})
		if g.GetMat(3, 3) != Fire {
			anyFire := false
			for y := 0; y < g.H; y++ {
				for x := 0; x < g.W; x++ {
					if g.GetMat(x, y) == Fire {
						anyFire = true
					}
				}
			}
			if !anyFire {
				diedOut = true
				break
			}
		}
	}
	if !diedOut {
		t.Errorf("fire never died out after 400 ticks")
	}
}

func TestFireSpreadsToAdjacentWood(t *testing.T) {
	g := NewGrid(6, 6)
	g.SetMat(2, 2, Fire)
	g.SetMat(3, 2, Wood)
	rng := newTickRNG(21)
	ignited := false
	for i := 0; i < 200; i++ {
		g.ClearTickFlags()
		stepFire(g, rng, &tickStats{})
		if g.GetMat(3, 2) == Fire {
			ignited = true
			break
		}
	}
	if !ignited {
		t.Errorf("fire never spread to adjacent Wood after 200 ticks")
	}
}

func TestKillFireProducesOnlyValidResults(t *testing.T) {
	g := NewGrid(4, 4)
	rng := newTickRNG(1)
	seen := map[Material]bool{}
	for i := 0; i < 200; i++ {
		g.SetMat(1, 1, Fire)
		killFire(g, 1, 1, rng, &tickStats{})
		seen[g.GetMat(1, 1)] = true
	}
	for m := range seen {
		if m != Ash && m != Smoke && m != Empty {
			t.Errorf("killFire produced unexpected material %v", m)
		}
	}
}
