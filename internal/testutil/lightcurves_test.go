package testutil

import "testing"

func TestFlatCurve(t *testing.T) {
	c := FlatCurve(1.5, 4)
	if len(c) != 4 {
		t.Fatalf("len = %d, want 4", len(c))
	}
	for i, v := range c {
		if v != 1.5 {
			t.Fatalf("c[%d] = %v, want 1.5", i, v)
		}
	}
}

func TestTransitCurve(t *testing.T) {
	c := TransitCurve(1.0, 0.01, 10, 4, 3)
	for i, v := range c {
		want := 1.0
		if i >= 4 && i < 7 {
			want = 0.99
		}
		if v != want {
			t.Fatalf("c[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestTransitCurveClampsToLength(t *testing.T) {
	c := TransitCurve(1.0, 0.5, 5, 3, 10)
	if c[4] != 0.5 {
		t.Fatalf("c[4] = %v, want 0.5", c[4])
	}
}

func TestNoisyCurveReproducible(t *testing.T) {
	a := NoisyCurve(42, 1.0, 0.01, 64)
	b := NoisyCurve(42, 1.0, 0.01, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestNoisyCurveDifferentSeeds(t *testing.T) {
	a := NoisyCurve(1, 1.0, 0.01, 16)
	b := NoisyCurve(2, 1.0, 0.01, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestUniformTimes(t *testing.T) {
	ts := UniformTimes(10, 0.5, 3)
	want := []float64{10, 10.5, 11}
	for i := range want {
		if ts[i] != want[i] {
			t.Fatalf("ts[%d] = %v, want %v", i, ts[i], want[i])
		}
	}
}

func TestGappedTimes(t *testing.T) {
	ts := GappedTimes(0, 1, 3, 10)
	if len(ts) != 6 {
		t.Fatalf("len = %d, want 6", len(ts))
	}
	// Second cluster starts one gap after the last first-cluster sample.
	if ts[3]-ts[2] != 10 {
		t.Fatalf("gap = %v, want 10", ts[3]-ts[2])
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			t.Fatalf("timestamps not increasing at %d", i)
		}
	}
}
