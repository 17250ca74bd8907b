// Package binning bins irregularly sampled light-curve data into
// fixed-width time bins with a robust per-bin value and error estimate.
//
// Candidate bin centers step by the bin width from half a bin above the
// first timestamp to half a bin below the last. Each center collects every
// sample within one full bin width on either side, so the selection window
// spans twice the bin width and adjacent bins share source samples. This
// overlap matches established light-curve pipelines and is kept for
// compatibility. Bins that catch no finite samples produce no output row.
package binning

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/exophot/lightcurve/stats/robust"
)

var (
	// ErrEmptyInput reports empty time or data arrays.
	ErrEmptyInput = errors.New("binning: time and data must not be empty")
	// ErrLengthMismatch reports time and data arrays of different lengths.
	ErrLengthMismatch = errors.New("binning: time and data must have same length")
)

// Config selects the bin geometry and the per-bin estimators.
type Config struct {
	BinWidth float64       // bin width in the units of the time array, > 0
	Center   robust.Center // per-bin value estimator
	Error    robust.Scale  // per-bin error estimator
}

// DefaultConfig returns the conventional light-curve binning setup:
// median bin values with MAD-based errors.
func DefaultConfig(binWidth float64) Config {
	return Config{
		BinWidth: binWidth,
		Center:   robust.CenterMedian,
		Error:    robust.ScaleMAD,
	}
}

func (cfg Config) validate() error {
	if !(cfg.BinWidth > 0) {
		return fmt.Errorf("binning: bin width must be > 0: %v", cfg.BinWidth)
	}

	if !cfg.Center.Valid() {
		return fmt.Errorf("binning: %w: %d", robust.ErrUnknownCenter, int(cfg.Center))
	}

	if !cfg.Error.Valid() {
		return fmt.Errorf("binning: %w: %d", robust.ErrUnknownScale, int(cfg.Error))
	}

	return nil
}

// Binned holds one row per non-empty bin. The three slices share one
// length; Time is strictly increasing.
type Binned struct {
	Time  []float64
	Value []float64
	Err   []float64
}

// Len returns the number of emitted bins.
func (b Binned) Len() int {
	return len(b.Time)
}

// Bin partitions the (time, data) series into bins per cfg. NaN data
// samples are dropped before the per-bin statistics; a bin left with no
// valid samples is skipped. An error estimate that evaluates to exactly
// zero is replaced by 1.0 so that downstream weighted fits never divide
// by zero.
func Bin(time, data []float64, cfg Config) (Binned, error) {
	if len(time) == 0 || len(data) == 0 {
		return Binned{}, ErrEmptyInput
	}

	if len(time) != len(data) {
		return Binned{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(time), len(data))
	}

	if err := cfg.validate(); err != nil {
		return Binned{}, err
	}

	tMin := floats.Min(time)
	tMax := floats.Max(time)

	first := tMin + 0.5*cfg.BinWidth
	stop := tMax - 0.5*cfg.BinWidth

	var out Binned

	valid := make([]float64, 0, len(data))

	for i := 0; ; i++ {
		center := first + float64(i)*cfg.BinWidth
		if center >= stop {
			break
		}

		valid = valid[:0]
		for j, t := range time {
			if math.Abs(t-center) <= cfg.BinWidth && !math.IsNaN(data[j]) {
				valid = append(valid, data[j])
			}
		}

		if len(valid) == 0 {
			continue
		}

		value, err := robust.EstimateCenter(valid, cfg.Center)
		if err != nil {
			return Binned{}, err
		}

		scale, err := robust.EstimateScale(valid, cfg.Error)
		if err != nil {
			return Binned{}, err
		}

		binErr := scale / math.Sqrt(float64(len(valid)))
		if binErr == 0 {
			binErr = 1
		}

		out.Time = append(out.Time, center)
		out.Value = append(out.Value, value)
		out.Err = append(out.Err, binErr)
	}

	return out, nil
}
