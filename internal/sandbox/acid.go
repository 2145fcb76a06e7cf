package sandbox

// stepAcid runs the acid stage (§4.10): each acid cell scans its 8-neighbors
// for a corrodible material and dissolves it. Acid's own downward and
// sideways movement is handled by the fluid stage; this stage only reacts.
func stepAcid(g *Grid, rng *tickRNG, stats *tickStats) {
	iterateFalling(g, rng, func(g *Grid, x, y int) bool {
		if g.GetMat(x, y) != Acid {
			return true
		}
		updateAcidCell(g, x, y, rng, stats)
		return true
	})
}

// updateAcidCell corrodes at most one neighbor per tick. Self-consumption is
// an independent roll from neighbor consumption, so an acid cell may survive
// several corrosion events before being spent (resolves the Open Question on
// consumption bookkeeping in favor of a simple, symmetric coin flip).
func updateAcidCell(g *Grid, x, y int, rng *tickRNG, stats *tickStats) {
	for _, d := range eightNeighbors {
		nx, ny := x+d.dx, y+d.dy
		if !g.inBounds(nx, ny) {
			continue
		}
		nm := g.GetMat(nx, ny)
		if !bhvIsCorrodible(nm) {
			continue
		}
		if !rng.Chance(corrosionReaction.Probability) {
			continue
		}

		if rng.Chance(corrosionReaction.ByproductChance) {
			g.SetMat(nx, ny, corrosionReaction.Byproduct)
			g.SetLifetime(nx, ny, 0)
		} else {
			g.SetMat(nx, ny, corrosionReaction.ResultTarget)
		}
		g.AddFlag(nx, ny, FlagCorroding)

		if rng.Chance(0.5) {
			g.SetMat(x, y, corrosionReaction.ResultSelf)
		}

		g.MarkUpdated(x, y)
		g.MarkUpdated(nx, ny)
		stats.cellsUpdated++
		return
	}
}
