package sandbox

import "sandsim/internal/fixed"

var splashThreshold = fixed.FromFloat(1.5)

// stepPowder runs the powder stage (§4.6) for one tick.
func stepPowder(g *Grid, rng *tickRNG, stats *tickStats) {
	iterateFalling(g, rng, func(g *Grid, x, y int) bool {
		if g.HasFlag(x, y, FlagUpdated) {
			return true
		}
		if !isPowderMat(g.GetMat(x, y)) {
			return true
		}
		updatePowderCell(g, x, y, rng, stats)
		return true
	})
}

func passableForPowder(g *Grid, x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	m := g.GetMat(x, y)
	return isEmptyMat(m) || isFluidMat(m) || isGasMat(m)
}

func updatePowderCell(g *Grid, x, y int, rng *tickRNG, stats *tickStats) {
	mat := g.GetMat(x, y)
	props := Get(mat)

	// Settle shortcut (§4.6 step 1).
	if rng.Chance(props.SettleProbability) {
		below := !passableForPowder(g, x, y+1)
		belowLeft := !passableForPowder(g, x-1, y+1)
		belowRight := !passableForPowder(g, x+1, y+1)
		if below && belowLeft && belowRight {
			return
		}
	}

	vx, vy := g.GetVelocity(x, y)

	// Gravity integration (§4.6 step 2).
	vy += props.GravityStepFixed
	vy = fixed.Mul(vy, props.DragFactorFixed)
	vy = fixed.Clamp(vy, -props.TerminalVelocityFixed, props.TerminalVelocityFixed)

	// Fall steps (§4.6 step 3).
	n := int(fixed.Abs(vy)) >> 8
	if n > 3 {
		n = 3
	}
	if n == 0 {
		n = 1
	}

	// Straight fall (§4.6 step 4).
	curY := y
	moved := false
	for step := 0; step < n; step++ {
		if passableForPowder(g, x, curY+1) {
			curY++
			moved = true
		} else {
			vy = 0
			break
		}
	}

	if moved {
		g.SetVelocity(x, y, vx, vy)
		commitPowderMove(g, x, y, x, curY, vy, rng, stats)
		return
	}

	// Diagonal slide, only when n == 1 and straight fall did not occur (§4.6 step 5).
	if n == 1 {
		leftOK := passableForPowder(g, x-1, y+1)
		rightOK := passableForPowder(g, x+1, y+1)
		if leftOK && rightOK && props.Cohesion > 0 && rng.Chance(props.Cohesion) {
			g.SetVelocity(x, y, vx, vy)
			return
		}
		tryLeftFirst := rng.Chance(props.SlideBias)
		var targetX int
		found := false
		if tryLeftFirst {
			if leftOK {
				targetX, found = x-1, true
			} else if rightOK {
				targetX, found = x+1, true
			}
		} else {
			if rightOK {
				targetX, found = x+1, true
			} else if leftOK {
				targetX, found = x-1, true
			}
		}
		if found {
			g.SetVelocity(x, y, vx, vy)
			commitPowderMove(g, x, y, targetX, y+1, vy, rng, stats)
			return
		}
	}

	g.SetVelocity(x, y, vx, vy)
}

// commitPowderMove executes step 6: swap into empty, or displace a
// lower-density fluid/gas, with a chance of splash when displacing a fluid fast.
func commitPowderMove(g *Grid, sx, sy, dx, dy int, vy Fixed, rng *tickRNG, stats *tickStats) {
	target := g.GetMat(dx, dy)
	source := g.GetMat(sx, sy)

	switch {
	case isEmptyMat(target):
		g.SwapCells(sx, sy, dx, dy)
	case isFluidMat(target) || isGasMat(target):
		if Get(source).Density <= Get(target).Density {
			return
		}
		displaced := target
		splash := isFluidMat(displaced) && fixed.Abs(vy) > splashThreshold
		var displacedSeed uint32
		if splash {
			displacedSeed = g.GetColorSeed(dx, dy)
		}
		g.SwapCells(sx, sy, dx, dy)
		if splash {
			trySplash(g, dx, dy, displaced, displacedSeed, rng)
		}
	default:
		return
	}

	g.MarkUpdated(sx, sy)
	g.MarkUpdated(dx, dy)
	stats.cellsUpdated++
}

// trySplash spawns a side-splash of the displaced fluid one cell up and one
// cell sideways, direction chosen by RNG (§4.6 step 6). seed is the
// displaced fluid's color seed as it stood at (x, y) before the powder swap
// overwrote that cell, matching original_source/src/powder.c line 194's
// snapshot-then-swap order.
func trySplash(g *Grid, x, y int, fluidMat Material, seed uint32, rng *tickRNG) {
	dir := 1
	if rng.Bool() {
		dir = -1
	}
	sx, sy := x+dir, y-1
	if !g.inBounds(sx, sy) {
		return
	}
	target := g.GetMat(sx, sy)
	if !isEmptyMat(target) && !isGasMat(target) {
		return
	}
	g.SetMat(sx, sy, fluidMat)
	g.SetVelocity(sx, sy, fixed.FromFloat(0.8*float64(dir)), fixed.FromFloat(-0.5))
	i := sy*g.W + sx
	g.colorSeed[i] = seed
}
