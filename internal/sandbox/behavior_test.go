package sandbox

import "testing"

func TestBehaviorBitsAreDistinctPowersOfTwo(t *testing.T) {
	seen := map[Behavior]bool{}
	flags := []Behavior{
		bhvFalls, bhvRises, bhvFlows, bhvSlides, bhvStatic, bhvFlammable,
		bhvConductsHeat, bhvCorrodible, bhvCorrosive, bhvExtinguishes,
		bhvMelts, bhvFreezes, bhvBoils, bhvCondenses, bhvBurnsOut,
		bhvDissipates, bhvSpreads, bhvProducesSmoke, bhvProducesHeat,
	}
	for _, f := range flags {
		if f == 0 {
			t.Fatalf("behavior flag is zero")
		}
		if f&(f-1) != 0 {
			t.Fatalf("behavior flag %v is not a single bit", f)
		}
		if seen[f] {
			t.Fatalf("behavior flag %v is duplicated", f)
		}
		seen[f] = true
	}
}

func TestBhvIsFlammable(t *testing.T) {
	if !bhvIsFlammable(Wood) {
		t.Errorf("Wood should be flammable")
	}
	if bhvIsFlammable(Stone) {
		t.Errorf("Stone should not be flammable")
	}
}

func TestBhvIsCorrodible(t *testing.T) {
	if !bhvIsCorrodible(Stone) {
		t.Errorf("Stone should be corrodible")
	}
	if bhvIsCorrodible(Fire) {
		t.Errorf("Fire should not be corrodible")
	}
}

func TestUnknownMaterialHasNoBehavior(t *testing.T) {
	if behaviorOf(Material(255)) != 0 {
		t.Errorf("out-of-range material should have no behavior bits set")
	}
}
