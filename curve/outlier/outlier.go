// Package outlier flags outliers in an ordered light curve by comparing
// each sample against the robust statistics of its local block.
//
// The series is zero-padded up to the next multiple of the block size and
// split into contiguous, non-overlapping blocks. The pad is at least one
// sample, so a series whose length already divides evenly still gains a
// full block of zeros; that block carries no real data and is discarded
// with the rest of the padding when the mask is truncated. Each sample's
// deviation from its block median, in units of the block MAD, decides
// whether the sample is kept.
package outlier

import (
	"errors"
	"fmt"
	"math"

	"github.com/exophot/lightcurve/stats/robust"
)

// ErrZeroDispersion reports a block whose MAD is zero under the strict
// [ZeroDispError] policy.
var ErrZeroDispersion = errors.New("outlier: block has zero dispersion")

// ErrEmptyInput reports an empty data array.
var ErrEmptyInput = errors.New("outlier: data must not be empty")

// Policy selects how a zero-dispersion block is handled. The raw
// deviation ratio divides by the block MAD, so a constant block would
// otherwise produce 0/0 for every member.
type Policy int

const (
	// ZeroDispRetain treats a zero deviation over a zero dispersion as no
	// deviation at all: members equal to the block median are kept, while
	// a sample that deviates from the median of a zero-MAD block divides
	// to +Inf and is flagged.
	ZeroDispRetain Policy = iota
	// ZeroDispError rejects the whole call with [ErrZeroDispersion] when
	// any block holding real data has zero dispersion.
	ZeroDispError
	// ZeroDispPropagate performs the raw IEEE division. A 0/0 member
	// yields NaN, which fails the retain comparison and is flagged.
	ZeroDispPropagate
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case ZeroDispRetain:
		return "retain"
	case ZeroDispError:
		return "error"
	case ZeroDispPropagate:
		return "propagate"
	default:
		return "unknown"
	}
}

// Valid reports whether p is a supported policy.
func (p Policy) Valid() bool {
	return p >= ZeroDispRetain && p <= ZeroDispPropagate
}

// Config holds the flagging parameters.
type Config struct {
	BlockSize        int     // samples per block, >= 1
	Threshold        float64 // deviations at or beyond this many MADs are outliers
	OnZeroDispersion Policy
}

// DefaultConfig returns the conventional setup: blocks of five samples
// and a ten-MAD threshold.
func DefaultConfig() Config {
	return Config{
		BlockSize: 5,
		Threshold: 10,
	}
}

func (cfg Config) validate() error {
	if cfg.BlockSize < 1 {
		return fmt.Errorf("outlier: block size must be >= 1: %d", cfg.BlockSize)
	}

	if !(cfg.Threshold > 0) {
		return fmt.Errorf("outlier: threshold must be > 0: %v", cfg.Threshold)
	}

	if !cfg.OnZeroDispersion.Valid() {
		return fmt.Errorf("outlier: unknown zero-dispersion policy: %d", int(cfg.OnZeroDispersion))
	}

	return nil
}

// Flag returns a retention mask for data: true means the sample is kept,
// false marks an outlier. The mask has the same length as data.
func Flag(data []float64, cfg Config) ([]bool, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pad := cfg.BlockSize - len(data)%cfg.BlockSize

	padded := make([]float64, len(data)+pad)
	copy(padded, data)

	mask := make([]bool, len(data))

	for start := 0; start < len(data); start += cfg.BlockSize {
		block := padded[start : start+cfg.BlockSize]
		center := robust.Median(block)
		disp := robust.MAD(block)

		if disp == 0 && cfg.OnZeroDispersion == ZeroDispError {
			return nil, fmt.Errorf("%w: block starting at %d", ErrZeroDispersion, start)
		}

		for j, x := range block {
			idx := start + j
			if idx >= len(data) {
				break
			}

			dev := math.Abs(x - center)

			var keep bool
			switch {
			case disp == 0 && cfg.OnZeroDispersion == ZeroDispRetain:
				// 0/0 counts as zero deviation; a real deviation over a
				// zero MAD still divides to +Inf and is flagged.
				keep = dev == 0 || dev/disp < cfg.Threshold
			default:
				keep = dev/disp < cfg.Threshold
			}

			mask[idx] = keep
		}
	}

	return mask, nil
}
