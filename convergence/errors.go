package convergence

import "errors"

var (
	// ErrInsufficientSamples means fewer than two error samples
	// survived the floor filter, so no order can be fitted. This is
	// the expected outcome when a rule is already exact for the
	// integrand (a low-degree polynomial under gauss, say).
	ErrInsufficientSamples = errors.New("insufficient samples")

	// ErrBadSequence means the partition counts are not strictly
	// increasing positive integers.
	ErrBadSequence = errors.New("bad partition count sequence")
)
