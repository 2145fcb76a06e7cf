package sandbox

import "testing"

func TestMaterialByName(t *testing.T) {
	m, ok := MaterialByName("Sand")
	if !ok || m != Sand {
		t.Fatalf("MaterialByName(Sand) = (%v, %v), want (Sand, true)", m, ok)
	}
	if _, ok := MaterialByName("Unobtainium"); ok {
		t.Errorf("MaterialByName should reject unknown names")
	}
}

func TestGetClampsOutOfRangeToEmpty(t *testing.T) {
	p := Get(Material(255))
	if p.ID != Empty {
		t.Errorf("Get(255) = %v, want Empty", p.ID)
	}
}

func TestColorIsDeterministicPerSeed(t *testing.T) {
	c1 := Color(Sand, 42)
	c2 := Color(Sand, 42)
	if c1 != c2 {
		t.Errorf("Color(Sand, 42) is not deterministic: %v != %v", c1, c2)
	}
}

func TestColorVariationStaysInBounds(t *testing.T) {
	base := Get(Sand).BaseColor
	variation := int(Get(Sand).ColorVariation)
	for seed := uint32(0); seed < 500; seed++ {
		c := Color(Sand, seed)
		for _, ch := range [][2]uint8{{c.R, base.R}, {c.G, base.G}, {c.B, base.B}} {
			if d := int(ch[0]) - int(ch[1]); d < -variation || d > variation {
				t.Fatalf("seed %d moved a channel by %d, outside ±%d: %+v", seed, d, variation, c)
			}
		}
		if c.R > 255 || c.G > 255 || c.B > 255 {
			t.Fatalf("channel overflow for seed %d: %+v", seed, c)
		}
	}
}

func TestFinalizedFixedFieldsAreNonZeroWhereExpected(t *testing.T) {
	sand := Get(Sand)
	if sand.TerminalVelocityFixed == 0 {
		t.Errorf("Sand should have a nonzero terminal velocity")
	}
	empty := Get(Empty)
	if empty.GravityStepFixed != 0 {
		t.Errorf("Empty should have zero gravity step, got %v", empty.GravityStepFixed)
	}
}

func TestStateLUTsAgreeWithTable(t *testing.T) {
	if !isPowderMat(Sand) {
		t.Errorf("Sand should be a powder material")
	}
	if !isFluidMat(Water) {
		t.Errorf("Water should be a fluid material")
	}
	if !isGasMat(Fire) {
		t.Errorf("Fire should be classified as a gas-state material")
	}
	if !isSolidMat(Stone) {
		t.Errorf("Stone should be a solid material")
	}
	if !isEmptyMat(Empty) {
		t.Errorf("Empty should be classified as empty")
	}
}
