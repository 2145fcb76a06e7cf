package sandbox

import (
	"math"
	"testing"
)

func TestDiffuseHeatMovesTowardNeighborAverage(t *testing.T) {
	g := NewGrid(3, 1)
	g.SetMat(0, 0, Stone)
	g.SetMat(1, 0, Stone)
	g.SetMat(2, 0, Stone)
	g.SetTemp(0, 0, 100)
	g.SetTemp(1, 0, 20)
	g.SetTemp(2, 0, 20)

	diffuseHeat(g)

	if g.GetTemp(1, 0) <= 20 {
		t.Errorf("middle cell should warm toward its hotter neighbor, got %v", g.GetTemp(1, 0))
	}
	if g.GetTemp(0, 0) >= 100 {
		t.Errorf("hot cell should cool toward its neighbors, got %v", g.GetTemp(0, 0))
	}
}

func TestDiffuseHeatEmptyCellsRelaxTowardAmbient(t *testing.T) {
	g := NewGrid(3, 1)
	g.SetMat(0, 0, Stone)
	g.SetMat(2, 0, Stone)
	g.SetTemp(0, 0, 500)
	g.SetTemp(2, 0, 500)
	g.SetTemp(1, 0, 500)

	diffuseHeat(g)

	want := 500 + (AmbientTemp-500)*EmptyRelaxRate
	want += (AmbientTemp - want) * AmbientCoolingRate
	if got := g.GetTemp(1, 0); math.Abs(got-want) > 0.01 {
		t.Errorf("Empty cell temp = %v, want %v (relaxes toward ambient regardless of hot neighbors)", got, want)
	}
}

func TestIceMeltsAboveThreshold(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetMat(0, 0, Ice)
	rng := newTickRNG(3)
	melted := false
	for i := 0; i < 500; i++ {
		g.SetTemp(0, 0, transitionIceToWater.Threshold+10)
		phaseChange(g, rng, &tickStats{})
		if g.GetMat(0, 0) == Water {
			melted = true
			break
		}
	}
	if !melted {
		t.Errorf("ice above its melting threshold never transitioned to water")
	}
}

func TestWaterFreezesBelowThreshold(t *testing.T) {
	g := NewGrid(2, 2)
	rng := newTickRNG(3)
	frozen := false
	for i := 0; i < 500; i++ {
		g.SetMat(0, 0, Water)
		g.SetTemp(0, 0, transitionWaterToIce.Threshold-10)
		phaseChange(g, rng, &tickStats{})
		if g.GetMat(0, 0) == Ice {
			frozen = true
			break
		}
	}
	if !frozen {
		t.Errorf("water below its freezing threshold never transitioned to ice")
	}
}

func TestHotFlagTracksTemperature(t *testing.T) {
	g := NewGrid(2, 2)
	rng := newTickRNG(1)
	g.SetTemp(0, 0, AmbientTemp+100)
	phaseChange(g, rng, &tickStats{})
	if !g.HasFlag(0, 0, FlagHot) {
		t.Errorf("cell well above ambient should carry FlagHot")
	}
	g.SetTemp(0, 0, AmbientTemp)
	phaseChange(g, rng, &tickStats{})
	if g.HasFlag(0, 0, FlagHot) {
		t.Errorf("cell at ambient should not carry FlagHot")
	}
}
