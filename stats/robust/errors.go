package robust

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCenter reports an unsupported central-tendency selector.
	ErrUnknownCenter = errors.New("unknown center estimator")
	// ErrUnknownScale reports an unsupported dispersion selector.
	ErrUnknownScale = errors.New("unknown scale estimator")
)

func errUnknownCenter(c Center) error {
	return fmt.Errorf("%w: %d", ErrUnknownCenter, int(c))
}

func errUnknownScale(s Scale) error {
	return fmt.Errorf("%w: %d", ErrUnknownScale, int(s))
}
