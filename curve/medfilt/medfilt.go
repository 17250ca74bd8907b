// Package medfilt implements a sliding median filter with reflection
// padding for detrending photometric time series.
//
// The input is extended on both sides before filtering so that the output
// keeps the input length and the median window does not distort values
// near the array boundaries. The leading pad is the first windowLength
// samples reversed; the trailing pad is the windowLength samples before
// the final one, taken in forward order. The trailing pad is therefore
// not a true mathematical reflection; this asymmetry is kept for
// compatibility with established light-curve pipelines.
package medfilt

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyInput reports an empty data array.
	ErrEmptyInput = errors.New("medfilt: data must not be empty")
	// ErrWindowTooLong reports a window that is at least as long as the data.
	ErrWindowTooLong = errors.New("medfilt: window length must be shorter than data")
)

func validateWindow(windowLength int) error {
	if windowLength < 1 {
		return fmt.Errorf("medfilt: window length must be >= 1: %d", windowLength)
	}
	return nil
}

// Filter applies a sliding median of the given window length to data and
// returns a newly allocated slice of the same length. An even window
// length is incremented to the next odd value so the window is symmetric.
// The normalized window length must be shorter than the data.
func Filter(data []float64, windowLength int) ([]float64, error) {
	n := len(data)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	if err := validateWindow(windowLength); err != nil {
		return nil, err
	}

	w := windowLength
	if w%2 == 0 {
		w++
	}

	if w >= n {
		return nil, fmt.Errorf("%w: %d >= %d", ErrWindowTooLong, w, n)
	}

	ext := extend(data, w)
	filt := slidingMedian(ext, w)

	out := make([]float64, n)
	copy(out, filt[w:w+n])

	return out, nil
}

// extend pads data with w reflected samples in front and the w samples
// preceding the last one behind.
func extend(data []float64, w int) []float64 {
	n := len(data)

	ext := make([]float64, 0, n+2*w)
	for i := w - 1; i >= 0; i-- {
		ext = append(ext, data[i])
	}

	ext = append(ext, data...)
	ext = append(ext, data[n-1-w:n-1]...)

	return ext
}

// slidingMedian filters ext with an odd window of length w, zero-filling
// window positions that overhang the ends of ext. The overhang regions
// fall inside the padding and are discarded by the caller.
func slidingMedian(ext []float64, w int) []float64 {
	half := w / 2
	out := make([]float64, len(ext))
	win := make([]float64, w)

	for i := range ext {
		for j := 0; j < w; j++ {
			k := i - half + j
			if k < 0 || k >= len(ext) {
				win[j] = 0
			} else {
				win[j] = ext[k]
			}
		}

		sort.Float64s(win)
		out[i] = win[half]
	}

	return out
}
