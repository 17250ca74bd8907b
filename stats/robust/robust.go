package robust

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// MADConsistency scales the median absolute deviation so that it is a
// consistent estimator of the standard deviation under a normal
// distribution.
const MADConsistency = 1.4826

// Center identifies a central-tendency estimator.
type Center int

const (
	CenterMean Center = iota
	CenterMedian
)

// String returns the estimator name.
func (c Center) String() string {
	switch c {
	case CenterMean:
		return "mean"
	case CenterMedian:
		return "median"
	default:
		return "unknown"
	}
}

// Valid reports whether c is a supported estimator.
func (c Center) Valid() bool {
	return c == CenterMean || c == CenterMedian
}

// Scale identifies a dispersion estimator.
type Scale int

const (
	ScaleStd Scale = iota
	ScaleMAD
)

// String returns the estimator name.
func (s Scale) String() string {
	switch s {
	case ScaleStd:
		return "std"
	case ScaleMAD:
		return "mad"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a supported estimator.
func (s Scale) Valid() bool {
	return s == ScaleStd || s == ScaleMAD
}

// Mean returns the arithmetic mean of x. Returns NaN for empty input.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	return stat.Mean(x, nil)
}

// Median returns the sample median of x. Returns NaN for empty input.
func Median(x []float64) float64 {
	m, err := stats.Median(x)
	if err != nil {
		return math.NaN()
	}

	return m
}

// StdDev returns the sample standard deviation of x (n-1 denominator).
// Defined as 0 for fewer than two samples so that degenerate bins hit
// the binning error floor instead of emitting NaN.
func StdDev(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	return stat.StdDev(x, nil)
}

// MAD returns the median absolute deviation of x scaled by
// [MADConsistency]. Defined as 0 for fewer than two samples.
func MAD(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	m, err := stats.MedianAbsoluteDeviation(x)
	if err != nil {
		return math.NaN()
	}

	return MADConsistency * m
}

// EstimateCenter reduces x with the selected central-tendency estimator.
func EstimateCenter(x []float64, c Center) (float64, error) {
	switch c {
	case CenterMean:
		return Mean(x), nil
	case CenterMedian:
		return Median(x), nil
	default:
		return 0, errUnknownCenter(c)
	}
}

// EstimateScale reduces x with the selected dispersion estimator.
func EstimateScale(x []float64, s Scale) (float64, error) {
	switch s {
	case ScaleStd:
		return StdDev(x), nil
	case ScaleMAD:
		return MAD(x), nil
	default:
		return 0, errUnknownScale(s)
	}
}

// DropNaN returns a newly allocated copy of x with NaN samples removed.
func DropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}

	return out
}
