package sandbox

// Fire stage constants (§4.8), independent of the material property table:
// none of these are per-material tunables, so they are not read out of Props.
const (
	FireDieChance   = 0.02
	FireMaxLifetime = 120
	FireSmokeChance = 0.15
	FireRiseChance  = 0.6
)

var eightNeighbors = []dxdy{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// stepFire runs the fire stage (§4.8): aging, death with Ash/Smoke/Empty
// products, smoke emission, spread to flammable neighbors, and rise. Uses
// BottomUp + Random order, the same as powder and fluid.
func stepFire(g *Grid, rng *tickRNG, stats *tickStats) {
	iterateFalling(g, rng, func(g *Grid, x, y int) bool {
		if g.HasFlag(x, y, FlagUpdated) {
			return true
		}
		if g.GetMat(x, y) != Fire {
			return true
		}
		updateFireCell(g, x, y, rng, stats)
		return true
	})
}

func updateFireCell(g *Grid, x, y int, rng *tickRNG, stats *tickStats) {
	props := Get(Fire)

	g.IncLifetime(x, y)
	g.AddFlag(x, y, FlagBurning)
	g.SetTemp(x, y, FireTemperature)

	if rng.Chance(FireDieChance) || g.GetLifetime(x, y) >= FireMaxLifetime {
		killFire(g, x, y, rng, stats)
		return
	}

	if rng.Chance(FireSmokeChance) {
		emitSmoke(g, x, y)
	}

	spreadFire(g, x, y, rng, stats)

	if g.HasFlag(x, y, FlagUpdated) {
		return
	}

	if !rng.Chance(FireRiseChance) {
		g.MarkUpdated(x, y)
		return
	}

	if passableForGas(g, x, y-1, props.Density) {
		commitGasMove(g, x, y, x, y-1, stats)
		return
	}
	leftOK := passableForGas(g, x-1, y-1, props.Density)
	rightOK := passableForGas(g, x+1, y-1, props.Density)
	if leftOK || rightOK {
		targetX := x - 1
		if leftOK && rightOK {
			if !rng.Bool() {
				targetX = x + 1
			}
		} else if rightOK {
			targetX = x + 1
		}
		commitGasMove(g, x, y, targetX, y-1, stats)
		return
	}

	if rng.Chance(SmokeSpreadChance) {
		leftOK = passableForGas(g, x-1, y, props.Density)
		rightOK = passableForGas(g, x+1, y, props.Density)
		if leftOK || rightOK {
			targetX := x - 1
			if leftOK && rightOK {
				if !rng.Bool() {
					targetX = x + 1
				}
			} else if rightOK {
				targetX = x + 1
			}
			commitGasMove(g, x, y, targetX, y, stats)
			return
		}
	}

	g.MarkUpdated(x, y)
}

// killFire converts a dying fire cell into Ash, Smoke, or Empty per the
// death-product weights (§4.4, §4.8). The three outcomes are mutually
// exclusive rolls against a single draw, so their relative order does not
// change the resulting distribution.
func killFire(g *Grid, x, y int, rng *tickRNG, stats *tickStats) {
	r := rng.Float64()
	result := Empty
	switch {
	case r < fireDeath.AshChance:
		result = fireDeath.Ash
	case r < fireDeath.AshChance+fireDeath.SmokeChance:
		result = fireDeath.Smoke
	}
	g.SetMat(x, y, result)
	g.SetLifetime(x, y, 0)
	g.RemoveFlag(x, y, FlagBurning)
	g.MarkUpdated(x, y)
	stats.cellsUpdated++
}

// emitSmoke places Smoke directly above a burning cell when that cell is
// Empty (§4.8 step 3).
func emitSmoke(g *Grid, x, y int) {
	nx, ny := x, y-1
	if g.inBounds(nx, ny) && isEmptyMat(g.GetMat(nx, ny)) {
		g.SetMat(nx, ny, Smoke)
		g.MarkUpdated(nx, ny)
	}
}

// passableForGas reports whether (x, y) can receive fire's own rise movement
// (§4.8 step 5's "gas-style movement" against the §4.9 priority list): empty
// cells always qualify, fluid cells qualify only when fire is lighter,
// producing a buoyant bubble-up swap.
func passableForGas(g *Grid, x, y int, selfDensity float64) bool {
	if !g.inBounds(x, y) {
		return false
	}
	m := g.GetMat(x, y)
	if isEmptyMat(m) {
		return true
	}
	if isFluidMat(m) && Get(m).Density > selfDensity {
		return true
	}
	return false
}

// spreadFire tries to ignite every flammable 8-neighbor independently (§4.4,
// §4.8, grounded on original_source/include/materials/behavior.h reactions).
func spreadFire(g *Grid, x, y int, rng *tickRNG, stats *tickStats) {
	for _, d := range eightNeighbors {
		nx, ny := x+d.dx, y+d.dy
		if !g.inBounds(nx, ny) {
			continue
		}
		nm := g.GetMat(nx, ny)
		if !bhvIsFlammable(nm) {
			continue
		}
		if g.GetFlags(nx, ny)&FlagBurning != 0 {
			continue
		}
		if !rng.Chance(fireSpreadReaction.Probability) {
			continue
		}
		g.SetMat(nx, ny, Fire)
		g.SetLifetime(nx, ny, 0)
		g.AddFlag(nx, ny, FlagBurning)
		stats.cellsUpdated++
	}
}
