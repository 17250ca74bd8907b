// Package ephem provides the closed-form orbital-timing utilities used
// around the light-curve conditioning routines: orbital phase, eclipse
// timing, transit durations, exposure supersampling, and the eclipse
// bottom estimate. A circular orbit is assumed throughout.
package ephem

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/exophot/lightcurve/stats/robust"
)

var (
	// ErrUnknownDuration reports an unsupported transit-duration kind.
	ErrUnknownDuration = errors.New("ephem: unknown transit duration kind")
	// ErrUnknownBottomMethod reports an unsupported eclipse-bottom reducer.
	ErrUnknownBottomMethod = errors.New("ephem: unknown eclipse bottom method")
)

// Params holds the orbital and geometric parameters of a transiting
// planet. Times and the period share one unit; lengths are in stellar
// radii.
type Params struct {
	T0  float64 // mid-transit time
	Per float64 // orbital period
	P   float64 // planet-to-star radius ratio
	B   float64 // impact parameter
	A   float64 // semi-major axis
}

// Phase returns the orbital phase in [0, 1) for each timestamp, with
// phase zero at mid-transit. The result wraps exactly at whole periods.
func Phase(time []float64, p Params) []float64 {
	out := make([]float64, len(time))
	for i, t := range time {
		m := math.Mod(t-p.T0, p.Per)
		if m < 0 {
			m += p.Per
		}

		out[i] = m
	}

	vecmath.ScaleBlockInPlace(out, 1/p.Per)

	return out
}

// EclipseTime returns the mid-eclipse time, half a period after
// mid-transit.
func EclipseTime(p Params) float64 {
	return p.T0 + 0.5*p.Per
}

// DurationKind selects which contact points bound the transit duration.
type DurationKind int

const (
	// DurationFull spans first to fourth contact.
	DurationFull DurationKind = iota
	// DurationCenter spans the contacts of the planet's center with the
	// stellar limb.
	DurationCenter
	// DurationShort spans second to third contact.
	DurationShort
)

// String returns the duration kind name.
func (k DurationKind) String() string {
	switch k {
	case DurationFull:
		return "full"
	case DurationCenter:
		return "center"
	case DurationShort:
		return "short"
	default:
		return "unknown"
	}
}

// TransitDuration returns the transit duration in the units of the
// period.
func TransitDuration(p Params, k DurationKind) (float64, error) {
	switch k {
	case DurationFull:
		return p.Per / math.Pi * math.Asin(math.Sqrt((1+p.P)*(1+p.P)-p.B*p.B)/p.A), nil
	case DurationCenter:
		return p.Per / math.Pi * math.Asin(math.Sqrt(1-p.B*p.B)/p.A), nil
	case DurationShort:
		return p.Per / math.Pi * math.Asin(math.Sqrt((1-p.P)*(1-p.P)-p.B*p.B)/p.A), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownDuration, int(k))
	}
}

// SupersampleTime expands each timestamp into factor evenly spaced
// sub-exposure timestamps spanning [t - expTime/2, t + expTime/2] with
// inclusive endpoints. For factor <= 1 the input is returned unchanged.
func SupersampleTime(time []float64, factor int, expTime float64) []float64 {
	if factor <= 1 {
		return time
	}

	offsets := make([]float64, factor)
	step := expTime / float64(factor-1)
	for j := range offsets {
		offsets[j] = -0.5*expTime + float64(j)*step
	}

	out := make([]float64, len(time)*factor)
	for i, t := range time {
		for j, off := range offsets {
			out[i*factor+j] = t + off
		}
	}

	return out
}

// InTransitFunc reports which timestamps fall within half a duration of
// the given event center. The membership test itself is an external
// collaborator; callers inject an implementation.
type InTransitFunc func(time []float64, center, period, halfDuration float64) []bool

// BottomMethod selects the reducer for the eclipse bottom estimate.
type BottomMethod int

const (
	BottomMean BottomMethod = iota
	BottomMedian
)

// String returns the method name.
func (m BottomMethod) String() string {
	switch m {
	case BottomMean:
		return "mean"
	case BottomMedian:
		return "median"
	default:
		return "unknown"
	}
}

// FitEclipseBottom estimates the flux level during eclipse, used as the
// zero point of the light curve. In-eclipse samples are selected by the
// injected membership test around the mid-eclipse time using half the
// second-to-third-contact duration; NaN samples are dropped before the
// reduction. Returns 0 when no in-eclipse samples are found.
func FitEclipseBottom(time, data []float64, p Params, m BottomMethod, inTransit InTransitFunc) (float64, error) {
	if m != BottomMean && m != BottomMedian {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBottomMethod, int(m))
	}

	if len(time) != len(data) {
		return 0, fmt.Errorf("ephem: time and data must have same length: %d vs %d", len(time), len(data))
	}

	if inTransit == nil {
		return 0, errors.New("ephem: in-transit membership test must not be nil")
	}

	dur, err := TransitDuration(p, DurationShort)
	if err != nil {
		return 0, err
	}

	mask := inTransit(time, EclipseTime(p), p.Per, 0.5*dur)

	selected := make([]float64, 0, len(data))
	for i, in := range mask {
		if in && i < len(data) {
			selected = append(selected, data[i])
		}
	}

	selected = robust.DropNaN(selected)
	if len(selected) == 0 {
		return 0, nil
	}

	if m == BottomMean {
		return robust.Mean(selected), nil
	}

	return robust.Median(selected), nil
}
