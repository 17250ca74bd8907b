package testutil

import "math/rand"

// FlatCurve generates a constant-flux light curve.
func FlatCurve(flux float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = flux
	}
	return out
}

// TransitCurve generates a flat light curve with a box-shaped dip of the
// given depth spanning [start, start+width).
func TransitCurve(flux, depth float64, length, start, width int) []float64 {
	out := FlatCurve(flux, length)
	for i := start; i < start+width && i < length; i++ {
		if i >= 0 {
			out[i] -= depth
		}
	}
	return out
}

// NoisyCurve adds seeded uniform noise in [-amplitude, amplitude] to a
// constant-flux curve, for reproducible tests.
func NoisyCurve(seed int64, flux, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = flux + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// UniformTimes generates length timestamps starting at t0 with the given
// cadence.
func UniformTimes(t0, cadence float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = t0 + cadence*float64(i)
	}
	return out
}

// GappedTimes generates two uniform clusters of timestamps separated by a
// gap, mimicking a light curve with an observing interruption.
func GappedTimes(t0, cadence float64, clusterLen int, gap float64) []float64 {
	out := make([]float64, 0, 2*clusterLen)
	out = append(out, UniformTimes(t0, cadence, clusterLen)...)
	second := t0 + cadence*float64(clusterLen-1) + gap
	out = append(out, UniformTimes(second, cadence, clusterLen)...)
	return out
}
