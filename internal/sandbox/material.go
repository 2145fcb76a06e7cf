package sandbox

import "sandsim/internal/fixed"

// RGBA is a plain 8-bit-per-channel color, avoiding a hard dependency on
// image/color inside the physics package.
type RGBA struct {
	R, G, B, A uint8
}

// Props holds the immutable per-material record described by §3 and §6.
// Grounded on original_source/src/materials/material.c, which this table
// reproduces numerically.
type Props struct {
	ID    Material
	Name  string
	State State

	BaseColor       RGBA
	ColorVariation  uint8

	Density      float64
	Friction     float64
	Restitution  float64
	Cohesion     float64
	Viscosity    float64
	GravityScale float64
	DragCoeff    float64
	TerminalVel  float64
	FlowRate     float64

	SettleProbability float64
	SlideBias         float64

	Conductivity float64
	HeatCapacity float64
	IgnitionTemp float64
	BurnRate     float64
	SmokeRate    float64
	MeltingTemp  float64
	BoilingTemp  float64

	// Finalized fixed-point fields, computed once by finalizeFixed.
	GravityStepFixed      fixed.Q8_8
	DragFactorFixed       fixed.Q8_8
	TerminalVelocityFixed fixed.Q8_8
}

const infTemp = 9999.0

var materials = buildMaterialTable()

// Five boolean LUTs populated from each record's State, for O(1) hot-path
// queries (§4.3).
var (
	isEmptyLUT  [MaterialCount]bool
	isSolidLUT  [MaterialCount]bool
	isPowderLUT [MaterialCount]bool
	isFluidLUT  [MaterialCount]bool
	isGasLUT    [MaterialCount]bool
)

func init() {
	for i, m := range materials {
		isEmptyLUT[i] = m.State == StateEmpty
		isSolidLUT[i] = m.State == StateSolid
		isPowderLUT[i] = m.State == StatePowder
		isFluidLUT[i] = m.State == StateFluid
		isGasLUT[i] = m.State == StateGas
	}
}

func buildMaterialTable() [MaterialCount]Props {
	t := [MaterialCount]Props{
		Empty: {
			ID: Empty, Name: "Empty", State: StateEmpty,
			BaseColor: RGBA{0, 0, 0, 255}, ColorVariation: 0,
			Density: 1.225, GravityScale: 0.0, DragCoeff: 1.0, TerminalVel: 0.0,
			SettleProbability: 0.0, SlideBias: 0.5,
			Conductivity: 0.0, HeatCapacity: 0.0,
			IgnitionTemp: 0, MeltingTemp: 0, BoilingTemp: 0,
		},
		Sand: {
			ID: Sand, Name: "Sand", State: StatePowder,
			BaseColor: RGBA{220, 190, 130, 255}, ColorVariation: 25,
			Density: 1600, Friction: 0.7, Cohesion: 0.15,
			GravityScale: 1.2, DragCoeff: 0.25, TerminalVel: 3.5,
			SettleProbability: 0.25, SlideBias: 0.5,
			Conductivity: 0.3, HeatCapacity: 0.8,
			IgnitionTemp: infTemp, MeltingTemp: 1700, BoilingTemp: infTemp,
		},
		Stone: {
			ID: Stone, Name: "Stone", State: StateSolid,
			BaseColor: RGBA{80, 80, 90, 255}, ColorVariation: 20,
			Density: 2600, Friction: 0.9, Restitution: 0.1, Cohesion: 1.0,
			GravityScale: 0.0, DragCoeff: 1.0, TerminalVel: 0.0,
			SettleProbability: 1.0, SlideBias: 0.5,
			Conductivity: 0.8, HeatCapacity: 0.9,
			IgnitionTemp: infTemp, MeltingTemp: 1200, BoilingTemp: infTemp,
		},
		Water: {
			ID: Water, Name: "Water", State: StateFluid,
			BaseColor: RGBA{30, 100, 200, 200}, ColorVariation: 15,
			Density: 1000, Viscosity: 0.001,
			GravityScale: 1.0, DragCoeff: 0.1, TerminalVel: 4.0, FlowRate: 0.6,
			SettleProbability: 0.0, SlideBias: 0.5,
			Conductivity: 0.6, HeatCapacity: 4.2,
			IgnitionTemp: infTemp, MeltingTemp: 0, BoilingTemp: 100,
		},
		Wood: {
			ID: Wood, Name: "Wood", State: StateSolid,
			BaseColor: RGBA{139, 90, 43, 255}, ColorVariation: 25,
			Density: 600, Friction: 0.8, Restitution: 0.1, Cohesion: 1.0,
			GravityScale: 0.0, DragCoeff: 1.0, TerminalVel: 0.0,
			SettleProbability: 1.0, SlideBias: 0.5,
			Conductivity: 0.15, HeatCapacity: 1.7,
			IgnitionTemp: 300, BurnRate: 0.1, SmokeRate: 0.5,
			MeltingTemp: infTemp, BoilingTemp: infTemp,
		},
		Fire: {
			ID: Fire, Name: "Fire", State: StateGas,
			BaseColor: RGBA{255, 100, 20, 255}, ColorVariation: 50,
			Density: 0.4,
			GravityScale: -0.3, DragCoeff: 0.2, TerminalVel: 2.0, FlowRate: 0.7,
			SettleProbability: 0.0, SlideBias: 0.5,
			Conductivity: 0.1, HeatCapacity: 0.1,
			IgnitionTemp: 0, SmokeRate: 1.0,
			MeltingTemp: infTemp, BoilingTemp: infTemp,
		},
		Smoke: {
			ID: Smoke, Name: "Smoke", State: StateGas,
			BaseColor: RGBA{60, 60, 60, 150}, ColorVariation: 20,
			Density: 0.6, Viscosity: 0.00002,
			GravityScale: -0.1, DragCoeff: 0.8, TerminalVel: 1.2, FlowRate: 0.5,
			SettleProbability: 0.0, SlideBias: 0.5,
			Conductivity: 0.02, HeatCapacity: 0.1,
			IgnitionTemp: infTemp, MeltingTemp: infTemp, BoilingTemp: infTemp,
		},
		Soil: {
			ID: Soil, Name: "Soil", State: StatePowder,
			BaseColor: RGBA{100, 70, 40, 255}, ColorVariation: 20,
			Density: 1800, Friction: 0.85, Cohesion: 0.4,
			GravityScale: 1.1, DragCoeff: 0.3, TerminalVel: 2.5,
			SettleProbability: 0.4, SlideBias: 0.5,
			Conductivity: 0.5, HeatCapacity: 1.0,
			IgnitionTemp: infTemp, MeltingTemp: infTemp, BoilingTemp: infTemp,
		},
		Ice: {
			ID: Ice, Name: "Ice", State: StateSolid,
			BaseColor: RGBA{180, 220, 255, 220}, ColorVariation: 15,
			Density: 917, Friction: 0.1, Restitution: 0.2, Cohesion: 1.0,
			GravityScale: 0.0, DragCoeff: 1.0, TerminalVel: 0.0,
			SettleProbability: 1.0, SlideBias: 0.5,
			Conductivity: 2.2, HeatCapacity: 2.1,
			IgnitionTemp: infTemp, MeltingTemp: 0, BoilingTemp: 100,
		},
		Steam: {
			ID: Steam, Name: "Steam", State: StateGas,
			BaseColor: RGBA{220, 220, 230, 80}, ColorVariation: 10,
			Density: 0.6, Viscosity: 0.00001,
			GravityScale: -0.5, DragCoeff: 0.5, TerminalVel: 2.5, FlowRate: 0.6,
			SettleProbability: 0.0, SlideBias: 0.5,
			Conductivity: 0.02, HeatCapacity: 2.0,
			IgnitionTemp: infTemp, MeltingTemp: 0, BoilingTemp: 100,
		},
		Ash: {
			ID: Ash, Name: "Ash", State: StatePowder,
			BaseColor: RGBA{90, 90, 90, 255}, ColorVariation: 15,
			Density: 500, Friction: 0.3, Cohesion: 0.05,
			GravityScale: 0.3, DragCoeff: 0.7, TerminalVel: 1.0,
			SettleProbability: 0.15, SlideBias: 0.5,
			Conductivity: 0.1, HeatCapacity: 0.8,
			IgnitionTemp: infTemp, MeltingTemp: infTemp, BoilingTemp: infTemp,
		},
		Acid: {
			ID: Acid, Name: "Acid", State: StateFluid,
			BaseColor: RGBA{100, 255, 50, 200}, ColorVariation: 20,
			Density: 1100, Viscosity: 0.002,
			GravityScale: 1.0, DragCoeff: 0.15, TerminalVel: 3.5, FlowRate: 0.7,
			SettleProbability: 0.0, SlideBias: 0.5,
			Conductivity: 0.5, HeatCapacity: 3.0,
			IgnitionTemp: infTemp, MeltingTemp: -20, BoilingTemp: 120,
		},
	}

	for i := range t {
		finalizeFixed(&t[i])
	}
	return t
}

// finalizeFixed precomputes the fixed-point velocity-integration constants
// once at table-build time, exactly as original_source's
// material_finalize_fixed does.
func finalizeFixed(m *Props) {
	m.GravityStepFixed = fixed.FromFloat(GravityAccel * m.GravityScale)
	m.DragFactorFixed = fixed.FromFloat(1.0 - m.DragCoeff)
	m.TerminalVelocityFixed = fixed.FromFloat(m.TerminalVel)
}

// Get returns the material record for id, coercing out-of-range ids to Empty (§7).
func Get(id Material) *Props {
	if int(id) >= MaterialCount {
		return &materials[Empty]
	}
	return &materials[id]
}

// StateOf returns Empty for ids beyond the catalog (§4.3).
func StateOf(id Material) State {
	if int(id) >= MaterialCount {
		return StateEmpty
	}
	return materials[id].State
}

// MaterialByName looks up a material by its display name, case-sensitive,
// for scenario scripting and config-file palettes (§6, internal/scenario).
func MaterialByName(name string) (Material, bool) {
	for i := range materials {
		if materials[i].Name == name {
			return Material(i), true
		}
	}
	return Empty, false
}

func isEmptyMat(id Material) bool  { return int(id) < MaterialCount && isEmptyLUT[id] }
func isSolidMat(id Material) bool  { return int(id) < MaterialCount && isSolidLUT[id] }
func isPowderMat(id Material) bool { return int(id) < MaterialCount && isPowderLUT[id] }
func isFluidMat(id Material) bool  { return int(id) < MaterialCount && isFluidLUT[id] }
func isGasMat(id Material) bool    { return int(id) < MaterialCount && isGasLUT[id] }

// Color hashes seed twice through hash32 and adds a signed per-channel
// perturbation in [-variation, +variation] to R, G, B; alpha is untouched (§4.3).
func Color(id Material, seed uint32) RGBA {
	m := Get(id)
	c := m.BaseColor
	if m.ColorVariation == 0 {
		return c
	}
	h := hash32(hash32(seed))
	c.R = perturb(c.R, h, m.ColorVariation)
	c.G = perturb(c.G, h>>8, m.ColorVariation)
	c.B = perturb(c.B, h>>16, m.ColorVariation)
	return c
}

func perturb(channel uint8, h uint32, variation uint8) uint8 {
	span := int(variation)*2 + 1
	delta := int(h%uint32(span)) - int(variation)
	v := int(channel) + delta
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
