package quadrature

import "math"

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkInputs(iv Interval, n int) error {
	if iv.A >= iv.B || !isFinite(iv.A) || !isFinite(iv.B) {
		return ErrInvalidDomain
	}

	if n < 1 {
		return ErrInvalidPartitionCount
	}

	return nil
}

func sampleAt(m Method, f Integrand, x float64) (float64, error) {
	y := f(x)
	if !isFinite(y) {
		return 0, &SampleError{Method: m, X: x}
	}

	return y, nil
}

// Evaluate dispatches to the rule selected by method. All rules share
// the same contract: partition [A,B] into n pieces (n nodes for
// gauss), sample the integrand, and accumulate left to right.
func Evaluate(method Method, f Integrand, iv Interval, n int) (Result, error) {
	switch method {
	case MethodLeftRiemann:
		return LeftRiemann(f, iv, n)
	case MethodRightRiemann:
		return RightRiemann(f, iv, n)
	case MethodMidpointRiemann:
		return MidpointRiemann(f, iv, n)
	case MethodTrapezoidal:
		return Trapezoid(f, iv, n)
	case MethodSimpson:
		return Simpson(f, iv, n)
	case MethodGaussianQuadrature:
		return GaussLegendre(f, iv, n)
	}

	return Result{}, ErrUnknownMethod
}

func riemann(m Method, f Integrand, iv Interval, n int, shift float64) (r Result, err error) {
	if err = checkInputs(iv, n); err != nil {
		return
	}

	h := iv.Width() / float64(n)

	var sum float64

	for i := 0; i < n; i++ {
		y, e := sampleAt(m, f, iv.A+(float64(i)+shift)*h)
		if e != nil {
			err = e

			return
		}

		sum += y
	}

	r = Result{
		Method:      m,
		N:           n,
		Value:       sum * h,
		Evaluations: n,
	}

	return
}

// LeftRiemann samples each subinterval at its left endpoint. Error
// order O(h).
func LeftRiemann(f Integrand, iv Interval, n int) (Result, error) {
	return riemann(MethodLeftRiemann, f, iv, n, 0)
}

// RightRiemann samples each subinterval at its right endpoint. Error
// order O(h).
func RightRiemann(f Integrand, iv Interval, n int) (Result, error) {
	return riemann(MethodRightRiemann, f, iv, n, 1)
}

// MidpointRiemann samples each subinterval at its midpoint. Error order
// O(h^2); exact for polynomials of degree <= 1.
func MidpointRiemann(f Integrand, iv Interval, n int) (Result, error) {
	return riemann(MethodMidpointRiemann, f, iv, n, 0.5)
}

// Trapezoid applies the composite trapezoidal rule. Error order O(h^2);
// exact for polynomials of degree <= 1. Evaluates the integrand n+1
// times.
func Trapezoid(f Integrand, iv Interval, n int) (r Result, err error) {
	if err = checkInputs(iv, n); err != nil {
		return
	}

	h := iv.Width() / float64(n)

	var sum float64

	for i := 0; i <= n; i++ {
		y, e := sampleAt(MethodTrapezoidal, f, iv.A+float64(i)*h)
		if e != nil {
			err = e

			return
		}

		if i == 0 || i == n {
			sum += y
		} else {
			sum += 2 * y
		}
	}

	r = Result{
		Method:      MethodTrapezoidal,
		N:           n,
		Value:       sum * h / 2,
		Evaluations: n + 1,
	}

	return
}

// Simpson applies the composite Simpson rule. n must be even: odd
// counts are rejected with ErrInvalidPartitionCount rather than bumped,
// so the count on the result always matches the request. Error order
// O(h^4); exact for polynomials of degree <= 3.
func Simpson(f Integrand, iv Interval, n int) (r Result, err error) {
	if err = checkInputs(iv, n); err != nil {
		return
	}

	if n%2 != 0 {
		err = ErrInvalidPartitionCount

		return
	}

	h := iv.Width() / float64(n)

	var sum float64

	for i := 0; i <= n; i++ {
		y, e := sampleAt(MethodSimpson, f, iv.A+float64(i)*h)
		if e != nil {
			err = e

			return
		}

		switch {
		case i == 0 || i == n:
			sum += y
		case i%2 == 1:
			sum += 4 * y
		default:
			sum += 2 * y
		}
	}

	r = Result{
		Method:      MethodSimpson,
		N:           n,
		Value:       sum * h / 3,
		Evaluations: n + 1,
	}

	return
}

// GaussLegendre applies n-point Gauss-Legendre quadrature. Here n is
// the node count, not a subinterval count. Nodes and weights on [-1,1]
// are mapped onto [A,B] by x = (B-A)/2*xi + (A+B)/2 with weights scaled
// by (B-A)/2. Exact for polynomials of degree <= 2n-1.
func GaussLegendre(f Integrand, iv Interval, n int) (r Result, err error) {
	if err = checkInputs(iv, n); err != nil {
		return
	}

	nodes, weights := legendreTable(n)

	halfWidth := iv.Width() / 2
	center := (iv.A + iv.B) / 2

	var sum float64

	for i := 0; i < n; i++ {
		y, e := sampleAt(MethodGaussianQuadrature, f, halfWidth*nodes[i]+center)
		if e != nil {
			err = e

			return
		}

		sum += halfWidth * weights[i] * y
	}

	r = Result{
		Method:      MethodGaussianQuadrature,
		N:           n,
		Value:       sum,
		Evaluations: n,
	}

	return
}

// Compare evaluates two methods over identical (integrand, interval, n)
// and returns both results for side-by-side inspection.
func Compare(a, b Method, f Integrand, iv Interval, n int) (ra, rb Result, err error) {
	ra, err = Evaluate(a, f, iv, n)
	if err != nil {
		return
	}

	rb, err = Evaluate(b, f, iv, n)

	return
}
