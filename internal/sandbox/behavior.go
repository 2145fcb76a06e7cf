package sandbox

// Behavior is the 32-bit capability bitmask keyed by material id (§4.4).
type Behavior uint32

const (
	bhvFalls Behavior = 1 << iota
	bhvRises
	bhvFlows
	bhvSlides
	bhvStatic
	bhvFlammable
	bhvConductsHeat
	bhvCorrodible
	bhvCorrosive
	bhvExtinguishes
	bhvMelts
	bhvFreezes
	bhvBoils
	bhvCondenses
	bhvBurnsOut
	bhvDissipates
	bhvSpreads
	bhvProducesSmoke
	bhvProducesHeat
)

// behaviorTable is grounded on original_source/include/materials/behavior.h,
// with corrodibility cross-checked against the actually-executed
// material_is_corrodible in original_source/src/acid.c (Stone, Wood, Sand,
// Soil), since the header's own corrosion list is unused by the original.
var behaviorTable = [MaterialCount]Behavior{
	Empty: 0,
	Sand:  bhvFalls | bhvSlides | bhvConductsHeat | bhvCorrodible,
	Stone: bhvStatic | bhvConductsHeat | bhvCorrodible,
	Water: bhvFalls | bhvFlows | bhvConductsHeat | bhvFreezes | bhvBoils | bhvExtinguishes,
	Wood:  bhvStatic | bhvFlammable | bhvConductsHeat | bhvCorrodible,
	Fire:  bhvRises | bhvSpreads | bhvProducesSmoke | bhvProducesHeat | bhvBurnsOut,
	Smoke: bhvRises | bhvFlows | bhvDissipates,
	Soil:  bhvFalls | bhvSlides | bhvConductsHeat | bhvCorrodible,
	Ice:   bhvStatic | bhvConductsHeat | bhvMelts,
	Steam: bhvRises | bhvFlows | bhvCondenses | bhvDissipates,
	Ash:   bhvFalls | bhvSlides | bhvConductsHeat,
	Acid:  bhvFalls | bhvFlows | bhvCorrosive | bhvConductsHeat,
}

func behaviorOf(m Material) Behavior {
	if int(m) >= MaterialCount {
		return 0
	}
	return behaviorTable[m]
}

func bhvHas(m Material, flag Behavior) bool { return behaviorOf(m)&flag != 0 }

func bhvFallsQ(m Material) bool         { return bhvHas(m, bhvFalls) }
func bhvRisesQ(m Material) bool         { return bhvHas(m, bhvRises) }
func bhvIsFlammable(m Material) bool    { return bhvHas(m, bhvFlammable) }
func bhvIsCorrodible(m Material) bool   { return bhvHas(m, bhvCorrodible) }
func bhvIsCorrosiveQ(m Material) bool   { return bhvHas(m, bhvCorrosive) }

// StateTransition is a (result, threshold, probability) record (§4.4).
type StateTransition struct {
	Result      Material
	Threshold   float64
	Probability float64
}

var (
	transitionIceToWater  = StateTransition{Water, 0.0, 0.01}
	transitionWaterToIce  = StateTransition{Ice, 0.0, 0.005}
	transitionWaterToSteam = StateTransition{Steam, 100.0, 0.02}
	transitionSteamToWater = StateTransition{Water, 80.0, 0.01}
	transitionWoodToFire  = StateTransition{Fire, 300.0, 0.03} // reserved for ignition logic
)

// FireDeathProducts describes what a dying fire cell becomes (§4.4).
type FireDeathProducts struct {
	Ash         Material
	Smoke       Material
	AshChance   float64
	SmokeChance float64
}

var fireDeath = FireDeathProducts{Ash: Ash, Smoke: Smoke, AshChance: 0.30, SmokeChance: 0.50}

// ReactionRecord describes a two-party reaction (§4.4).
type ReactionRecord struct {
	Target           Material
	ResultSelf       Material
	ResultTarget     Material
	Probability      float64
	Byproduct        Material
	ByproductChance  float64
}

// corrosionReaction: acid dissolving a corrodible neighbor.
var corrosionReaction = ReactionRecord{
	ResultSelf: Empty, ResultTarget: Empty,
	Probability: 0.08, Byproduct: Smoke, ByproductChance: 0.5,
}

// fireSpreadReaction: fire igniting a flammable neighbor.
var fireSpreadReaction = ReactionRecord{
	ResultSelf: Fire, ResultTarget: Fire,
	Probability: 0.03, Byproduct: Empty, ByproductChance: 0.0,
}

// dxdy is a movement offset.
type dxdy struct{ dx, dy int }

// Movement priority tables, evaluated in order; left/right ties within a
// row are broken by RNG (§4.4).
var (
	powderMoves = []dxdy{{0, 1}, {-1, 1}, {1, 1}}
	fluidMoves  = []dxdy{{0, 1}, {-1, 0}, {1, 0}, {-1, 1}, {1, 1}}
	gasMoves    = []dxdy{{0, -1}, {-1, -1}, {1, -1}, {-1, 0}, {1, 0}}
)
