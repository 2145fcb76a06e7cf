package sandbox

// Gas stage constants (§4.9), independent of the material property table.
const (
	SmokeDissipationBase = 0.006
	SteamCondenseBase    = 0.01
	GasRiseChanceSteam   = 0.9
	GasRiseChanceDefault = 0.85
	SmokeSpreadChance    = 0.3
)

// stepGas runs the gas stage (§4.9) for Smoke and Steam: dissipation, steam
// condensation, and rising movement with fluid bubble-up.
func stepGas(g *Grid, rng *tickRNG, stats *tickStats) {
	iterateRising(g, rng, func(g *Grid, x, y int) bool {
		if g.HasFlag(x, y, FlagUpdated) {
			return true
		}
		mat := g.GetMat(x, y)
		if mat != Smoke && mat != Steam {
			return true
		}
		updateGasCell(g, x, y, rng, stats)
		return true
	})
}

// emptyAt reports whether (x, y) is in bounds and Empty, the only target the
// gas stage's straight/diagonal/horizontal movement steps accept (§4.9 step 5).
func emptyAt(g *Grid, x, y int) bool {
	return g.inBounds(x, y) && isEmptyMat(g.GetMat(x, y))
}

func updateGasCell(g *Grid, x, y int, rng *tickRNG, stats *tickStats) {
	mat := g.GetMat(x, y)

	g.IncLifetime(x, y)

	if mat == Smoke {
		lifetime := float64(g.GetLifetime(x, y))
		p := SmokeDissipationBase * (1 + lifetime/100)
		if rng.Chance(p) {
			g.SetMat(x, y, Empty)
			g.SetLifetime(x, y, 0)
			g.MarkUpdated(x, y)
			stats.cellsUpdated++
			return
		}
	}

	if mat == Steam {
		t := g.GetTemp(x, y)
		threshold := transitionSteamToWater.Threshold
		if t < threshold {
			p := SteamCondenseBase * (threshold - t) / threshold
			if rng.Chance(p) {
				g.SetMat(x, y, transitionSteamToWater.Result)
				g.SetLifetime(x, y, 0)
				g.MarkUpdated(x, y)
				stats.cellsUpdated++
				return
			}
		}
	}

	riseChance := GasRiseChanceDefault
	if mat == Steam {
		riseChance = GasRiseChanceSteam
	}
	if rng.Float64() > riseChance {
		return
	}

	if emptyAt(g, x, y-1) {
		commitGasMove(g, x, y, x, y-1, stats)
		return
	}

	leftOK := emptyAt(g, x-1, y-1)
	rightOK := emptyAt(g, x+1, y-1)
	if leftOK || rightOK {
		commitGasMove(g, x, y, gasTieBreak(rng, x, leftOK, rightOK), y-1, stats)
		return
	}

	if rng.Chance(SmokeSpreadChance) {
		leftOK = emptyAt(g, x-1, y)
		rightOK = emptyAt(g, x+1, y)
		if leftOK || rightOK {
			commitGasMove(g, x, y, gasTieBreak(rng, x, leftOK, rightOK), y, stats)
			return
		}
	}

	if g.inBounds(x, y-1) && isFluidMat(g.GetMat(x, y-1)) {
		commitGasMove(g, x, y, x, y-1, stats)
	}
}

// gasTieBreak picks between x-1 and x+1 when both are viable, breaking ties
// with one RNG bit (§4.4 Design Notes).
func gasTieBreak(rng *tickRNG, x int, leftOK, rightOK bool) int {
	switch {
	case leftOK && rightOK:
		if rng.Bool() {
			return x + 1
		}
		return x - 1
	case rightOK:
		return x + 1
	default:
		return x - 1
	}
}

func commitGasMove(g *Grid, sx, sy, dx, dy int, stats *tickStats) {
	if !g.inBounds(dx, dy) {
		return
	}
	g.SwapCells(sx, sy, dx, dy)
	g.MarkUpdated(sx, sy)
	g.MarkUpdated(dx, dy)
	stats.cellsUpdated++
}
