package sandbox

import "math"

// EmptyRelaxRate is the fraction of the gap to ambient that an Empty cell
// closes each thermal pass, independent of conductivity (§4.11 pass 1).
const EmptyRelaxRate = 0.1

// stepThermal runs the thermal stage (§4.11): a double-buffered diffusion
// pass across every cell, followed by a phase-change pass driven by the
// state-transition table in behavior.go. The stage does not read or write
// the Updated flag; it operates independently of movement staging.
func stepThermal(g *Grid, rng *tickRNG, stats *tickStats) {
	diffuseHeat(g)
	phaseChange(g, rng, stats)
}

// diffuseHeat computes tempNext from temp, so every cell reads the same
// pre-diffusion snapshot, then copies tempNext back into temp so the
// phase-change pass sees the diffused temperatures (§4.11 pass 1).
func diffuseHeat(g *Grid) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			mat := g.GetMat(x, y)
			t := g.GetTemp(x, y)

			var next float64
			switch {
			case mat == Fire:
				next = FireTemperature
			case isEmptyMat(mat):
				next = t + (AmbientTemp-t)*EmptyRelaxRate
			default:
				next = conductedTemp(g, x, y, mat, t)
			}

			next += (AmbientTemp - next) * AmbientCoolingRate
			g.tempNext[g.index(x, y)] = clampTemp(next)
		}
	}
	copy(g.temp, g.tempNext)
}

// conductedTemp implements the non-Fire, non-Empty branch of §4.11 pass 1:
// heat_in is the conductivity-weighted sum of neighbor deltas, scaled by
// HeatDiffusionRate and divided by heat capacity (heavier materials change
// temperature more slowly for the same heat flow).
func conductedTemp(g *Grid, x, y int, mat Material, t float64) float64 {
	props := Get(mat)
	k := props.Conductivity
	if k <= 0.001 {
		return t
	}

	heatIn := 0.0
	count := 0
	for _, d := range fourNeighbors {
		nx, ny := x+d.dx, y+d.dy
		if !g.inBounds(nx, ny) {
			continue
		}
		count++
		nProps := Get(g.GetMat(nx, ny))
		kn := nProps.Conductivity
		coupling := 0.0
		if k > 0 && kn > 0 {
			coupling = math.Sqrt(k * kn)
		}
		heatIn += (g.GetTemp(nx, ny) - t) * coupling
	}
	if count == 0 {
		return t
	}

	delta := heatIn * HeatDiffusionRate / float64(count)
	cEff := math.Max(props.HeatCapacity, 0.1)
	return t + delta/cEff
}

var fourNeighbors = []dxdy{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// phaseChange applies the ice/water/steam transitions in behavior.go against
// the freshly diffused temperatures (already copied into temp by
// diffuseHeat), with temperature-dependent probabilities and latent-heat
// adjustments written back to temp (§4.4, §4.11 pass 2). Wood→Fire is not
// applied here.
func phaseChange(g *Grid, rng *tickRNG, stats *tickStats) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			mat := g.GetMat(x, y)
			t := g.GetTemp(x, y)

			switch mat {
			case Ice:
				melting := Get(Ice).MeltingTemp
				if t > melting {
					p := transitionIceToWater.Probability + (t-melting)*0.002
					if rng.Chance(p) {
						g.SetMat(x, y, transitionIceToWater.Result)
						g.RemoveFlag(x, y, FlagFrozen)
						g.SetTemp(x, y, t-10)
						stats.cellsUpdated++
					}
				}
			case Water:
				boiling := Get(Water).BoilingTemp
				switch {
				case t < 0:
					p := transitionWaterToIce.Probability + (-t)*0.001
					if rng.Chance(p) {
						g.SetMat(x, y, transitionWaterToIce.Result)
						g.AddFlag(x, y, FlagFrozen)
						g.SetTemp(x, y, t+5)
						stats.cellsUpdated++
					}
				case t > boiling:
					p := transitionWaterToSteam.Probability + (t-boiling)*0.005
					if rng.Chance(p) {
						g.SetMat(x, y, transitionWaterToSteam.Result)
						g.SetLifetime(x, y, 0)
						g.SetTemp(x, y, t-50)
						stats.cellsUpdated++
					}
				}
			case Steam:
				if t < transitionSteamToWater.Threshold {
					p := transitionSteamToWater.Probability + (transitionSteamToWater.Threshold-t)*0.001
					if rng.Chance(p) {
						g.SetMat(x, y, transitionSteamToWater.Result)
						g.SetLifetime(x, y, 0)
						g.SetTemp(x, y, t+20)
						stats.cellsUpdated++
					}
				}
			}

			if g.GetTemp(x, y) > AmbientTemp+50 {
				g.AddFlag(x, y, FlagHot)
			} else {
				g.RemoveFlag(x, y, FlagHot)
			}
		}
	}
}
