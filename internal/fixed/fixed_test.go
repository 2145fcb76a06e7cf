package fixed

import "testing"

func TestFromFloatRoundTrip(t *testing.T) {
	cases := []float64{0, 1, -1, 1.5, -1.5, 0.25, 127.5, -127.5}
	for _, c := range cases {
		q := FromFloat(c)
		got := q.ToFloat()
		if diff := got - c; diff > 1.0/256.0 || diff < -1.0/256.0 {
			t.Errorf("FromFloat(%v).ToFloat() = %v, want within 1/256", c, got)
		}
	}
}

func TestMul(t *testing.T) {
	a := FromFloat(2.0)
	b := FromFloat(0.5)
	got := Mul(a, b).ToFloat()
	if got != 1.0 {
		t.Errorf("Mul(2.0, 0.5) = %v, want 1.0", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(FromFloat(-3.0)).ToFloat() != 3.0 {
		t.Errorf("Abs(-3.0) did not return 3.0")
	}
	if Abs(FromFloat(3.0)).ToFloat() != 3.0 {
		t.Errorf("Abs(3.0) did not return 3.0")
	}
}

func TestClamp(t *testing.T) {
	lo, hi := FromFloat(-1.0), FromFloat(1.0)
	if got := Clamp(FromFloat(5.0), lo, hi); got != hi {
		t.Errorf("Clamp(5.0, -1, 1) = %v, want hi", got.ToFloat())
	}
	if got := Clamp(FromFloat(-5.0), lo, hi); got != lo {
		t.Errorf("Clamp(-5.0, -1, 1) = %v, want lo", got.ToFloat())
	}
	if got := Clamp(FromFloat(0.5), lo, hi); got != FromFloat(0.5) {
		t.Errorf("Clamp(0.5, -1, 1) = %v, want 0.5", got.ToFloat())
	}
}
