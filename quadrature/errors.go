package quadrature

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDomain         = errors.New("invalid interval")
	ErrInvalidPartitionCount = errors.New("invalid partition count")
	ErrNumericDomain         = errors.New("integrand not finite at sample point")
	ErrUnknownMethod         = errors.New("unknown method")
)

// SampleError reports the sample point at which the integrand produced
// a non-finite value. errors.Is(err, ErrNumericDomain) matches it.
type SampleError struct {
	Method Method
	X      float64
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("%s: %v at x=%v", e.Method, ErrNumericDomain, e.X)
}

func (e *SampleError) Unwrap() error {
	return ErrNumericDomain
}
