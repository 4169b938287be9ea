// Package quadrature approximates definite integrals over a finite
// interval with a closed set of classical rules. All rule functions are
// pure and deterministic: the same (integrand, interval, n) always
// produces the same value, and summation is performed left to right so
// results are bit-reproducible across calls.
package quadrature

import "strings"

// Integrand is any real-valued function of one real variable. The
// caller guarantees it is defined on the interval of interest; a
// non-finite sample is surfaced as an error, never folded into the sum.
type Integrand func(x float64) float64

// Interval holds integration bounds with A < B. Construct via
// NewInterval; a zero Interval is not valid.
type Interval struct {
	A float64
	B float64
}

func NewInterval(a, b float64) (Interval, error) {
	if !isFinite(a) || !isFinite(b) || a >= b {
		return Interval{}, ErrInvalidDomain
	}

	return Interval{A: a, B: b}, nil
}

func (iv Interval) Width() float64 {
	return iv.B - iv.A
}

type Method int

const (
	MethodLeftRiemann Method = iota
	MethodRightRiemann
	MethodMidpointRiemann
	MethodTrapezoidal
	MethodSimpson
	MethodGaussianQuadrature
)

var methodNames = map[Method]string{
	MethodLeftRiemann:        "riemann_left",
	MethodRightRiemann:       "riemann_right",
	MethodMidpointRiemann:    "riemann_mid",
	MethodTrapezoidal:        "trapezoidal",
	MethodSimpson:            "simpson",
	MethodGaussianQuadrature: "gauss",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return "unknown"
}

// Methods lists every supported method in dispatch order.
func Methods() []Method {
	return []Method{
		MethodLeftRiemann,
		MethodRightRiemann,
		MethodMidpointRiemann,
		MethodTrapezoidal,
		MethodSimpson,
		MethodGaussianQuadrature,
	}
}

func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for m, name := range methodNames {
		if s == name {
			return m, nil
		}
	}

	return 0, ErrUnknownMethod
}

// Result is the outcome of one rule evaluation. It is a value object:
// created once per call, never mutated afterwards.
type Result struct {
	Method Method
	N      int
	Value  float64

	// Evaluations counts integrand calls made for this result, for
	// cost accounting in teaching contexts.
	Evaluations int
}

// Reference is a ground-truth integral value used for error
// measurement. Exact marks a caller-supplied closed form; otherwise the
// value was estimated numerically with the recorded method and count.
type Reference struct {
	Value  float64
	Exact  bool
	Method Method
	N      int
}
