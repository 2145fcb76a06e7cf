package sandbox

import "sandsim/internal/fixed"

// stepFluid runs the fluid stage (§4.7): two passes, clearing Updated
// between them so a cell that didn't move in pass one can be reconsidered.
func stepFluid(g *Grid, rng *tickRNG, stats *tickStats) {
	multiPass(g, rng, 2, true, BottomUp, RandomHorizontal, func(g *Grid, x, y int) bool {
		if g.HasFlag(x, y, FlagUpdated) {
			return true
		}
		if !isFluidMat(g.GetMat(x, y)) {
			return true
		}
		updateFluidCell(g, x, y, rng, stats)
		return true
	})
}

func passableForFluid(g *Grid, x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	m := g.GetMat(x, y)
	return isEmptyMat(m) || isGasMat(m)
}

func updateFluidCell(g *Grid, x, y int, rng *tickRNG, stats *tickStats) {
	mat := g.GetMat(x, y)
	props := Get(mat)

	vx, vy := g.GetVelocity(x, y)

	// Gravity integration (§4.7 step 1, same as §4.6 step 2).
	vy += props.GravityStepFixed
	vy = fixed.Mul(vy, props.DragFactorFixed)
	vy = fixed.Clamp(vy, -props.TerminalVelocityFixed, props.TerminalVelocityFixed)

	n := int(fixed.Abs(vy)) >> 8
	if n > 2 {
		n = 2
	}
	if n == 0 {
		n = 1
	}

	moved := false
	if vy > 0 {
		curY := y
		for step := 0; step < n; step++ {
			if passableForFluid(g, x, curY+1) {
				curY++
				moved = true
			} else {
				vy = 0
				break
			}
		}
		if moved {
			vx = fixed.Mul(vx, props.DragFactorFixed)
			g.SetVelocity(x, y, vx, vy)
			commitFluidMove(g, x, y, x, curY, stats)
			return
		}
	}

	// Horizontal flow (§4.7 step 4).
	if rng.Chance(props.FlowRate) {
		leftOK := passableForFluid(g, x-1, y)
		rightOK := passableForFluid(g, x+1, y)
		var targetX int
		found := false
		switch {
		case leftOK && rightOK:
			if rng.Bool() {
				targetX, found = x-1, true
			} else {
				targetX, found = x+1, true
			}
		case leftOK:
			targetX, found = x-1, true
		case rightOK:
			targetX, found = x+1, true
		}
		if found {
			vx = fixed.Mul(vx, props.DragFactorFixed)
			g.SetVelocity(x, y, vx, vy)
			commitFluidMove(g, x, y, targetX, y, stats)
			return
		}
	}

	// Pressure equalization (§4.7 step 5).
	if rng.Chance(0.3) {
		selfHeight := columnHeight(g, x, y, mat)
		leftOK := passableForFluid(g, x-1, y)
		rightOK := passableForFluid(g, x+1, y)
		if leftOK {
			leftHeight := columnHeight(g, x-1, y, mat)
			if leftHeight < selfHeight-1 {
				vx = fixed.Mul(vx, props.DragFactorFixed)
				g.SetVelocity(x, y, vx, vy)
				commitFluidMove(g, x, y, x-1, y, stats)
				return
			}
		}
		if rightOK {
			rightHeight := columnHeight(g, x+1, y, mat)
			if rightHeight < selfHeight-1 {
				vx = fixed.Mul(vx, props.DragFactorFixed)
				g.SetVelocity(x, y, vx, vy)
				commitFluidMove(g, x, y, x+1, y, stats)
				return
			}
		}
	}

	// Horizontal drag applies regardless of movement (§4.7 step 6).
	vx = fixed.Mul(vx, props.DragFactorFixed)
	g.SetVelocity(x, y, vx, vy)
}

// columnHeight counts contiguous same-material cells directly above and
// including (x, y), scanning upward until the material differs (§4.7 step 5).
func columnHeight(g *Grid, x, y int, mat Material) int {
	height := 0
	cy := y
	for g.GetMat(x, cy) == mat {
		height++
		cy--
		if cy < 0 {
			break
		}
	}
	return height
}

func commitFluidMove(g *Grid, sx, sy, dx, dy int, stats *tickStats) {
	if !g.inBounds(dx, dy) {
		return
	}
	g.SwapCells(sx, sy, dx, dy)
	g.MarkUpdated(sx, sy)
	g.MarkUpdated(dx, dy)
	stats.cellsUpdated++
}
