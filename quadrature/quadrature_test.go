package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustInterval(t *testing.T, a, b float64) Interval {
	t.Helper()

	iv, err := NewInterval(a, b)
	assert.Nil(t, err)

	return iv
}

func TestConstantExactForAllMethods(t *testing.T) {
	iv := mustInterval(t, -2, 3)
	f := func(x float64) float64 { return 7.5 }

	for _, m := range Methods() {
		n := 4 // even, valid for simpson too

		r, err := Evaluate(m, f, iv, n)
		assert.Nil(t, err, m.String())
		assert.InDelta(t, 7.5*5, r.Value, 1e-12, m.String())
		assert.Equal(t, m, r.Method)
		assert.Equal(t, n, r.N)
	}
}

func TestLinearExactForTrapezoidAndMidpoint(t *testing.T) {
	iv := mustInterval(t, 1, 4)
	f := func(x float64) float64 { return 2*x - 1 }

	// integral of 2x-1 over [1,4] is 16-4-(1-1) = 12
	for _, n := range []int{1, 3, 7} {
		r, err := Trapezoid(f, iv, n)
		assert.Nil(t, err)
		assert.InDelta(t, 12, r.Value, 1e-12)

		r, err = MidpointRiemann(f, iv, n)
		assert.Nil(t, err)
		assert.InDelta(t, 12, r.Value, 1e-12)
	}
}

func TestRiemannLeftConverges(t *testing.T) {
	iv := mustInterval(t, 0, 1)
	f := func(x float64) float64 { return x }

	r, err := LeftRiemann(f, iv, 1000)
	assert.Nil(t, err)
	assert.InDelta(t, 0.5, r.Value, 1e-2)
	assert.Equal(t, 1000, r.Evaluations)
}

func TestRiemannLeftRightBracketTrapezoid(t *testing.T) {
	iv := mustInterval(t, 0, 1)
	f := func(x float64) float64 { return x * x }

	left, err := LeftRiemann(f, iv, 10)
	assert.Nil(t, err)

	right, err := RightRiemann(f, iv, 10)
	assert.Nil(t, err)

	trap, err := Trapezoid(f, iv, 10)
	assert.Nil(t, err)

	// trapezoid is the average of the two one-sided sums
	assert.InDelta(t, (left.Value+right.Value)/2, trap.Value, 1e-12)
	assert.Less(t, left.Value, trap.Value)
	assert.Greater(t, right.Value, trap.Value)
}

func TestTrapezoidParabola(t *testing.T) {
	iv := mustInterval(t, 0, 1)
	f := func(x float64) float64 { return x * x }

	r, err := Trapezoid(f, iv, 10)
	assert.Nil(t, err)
	assert.InDelta(t, 0.335, r.Value, 1e-4)
	assert.InDelta(t, 1.0/600, math.Abs(r.Value-1.0/3), 1e-9)
	assert.Equal(t, 11, r.Evaluations)

	r, err = Trapezoid(f, mustInterval(t, 0, 3), 1000)
	assert.Nil(t, err)
	assert.InDelta(t, 9, r.Value, 1e-4)
}

func TestSimpsonExactForCubics(t *testing.T) {
	iv := mustInterval(t, 0, 2)
	f := func(x float64) float64 { return x * x * x }

	r, err := Simpson(f, iv, 10)
	assert.Nil(t, err)
	assert.InDelta(t, 4, r.Value, 1e-10)
	assert.Equal(t, 11, r.Evaluations)
}

func TestSimpsonParabolaSmallError(t *testing.T) {
	iv := mustInterval(t, 0, 1)
	f := func(x float64) float64 { return x * x }

	r, err := Simpson(f, iv, 10)
	assert.Nil(t, err)
	assert.Less(t, math.Abs(r.Value-1.0/3), 1e-6)
}

func TestSimpsonRejectsOddN(t *testing.T) {
	iv := mustInterval(t, 0, 1)
	f := func(x float64) float64 { return x }

	_, err := Simpson(f, iv, 7)
	assert.ErrorIs(t, err, ErrInvalidPartitionCount)

	_, err = Evaluate(MethodSimpson, f, iv, 1)
	assert.ErrorIs(t, err, ErrInvalidPartitionCount)
}

func TestGaussExactForHighDegree(t *testing.T) {
	iv := mustInterval(t, 0, 1)

	// 3 nodes are exact up to degree 5
	f := func(x float64) float64 { return math.Pow(x, 5) }

	r, err := GaussLegendre(f, iv, 3)
	assert.Nil(t, err)
	assert.InDelta(t, 1.0/6, r.Value, 1e-10)
	assert.Equal(t, 3, r.Evaluations)

	// 2 nodes are exact up to degree 3
	g := func(x float64) float64 { return x * x * x }

	r, err = GaussLegendre(g, mustInterval(t, 0, 2), 2)
	assert.Nil(t, err)
	assert.InDelta(t, 4, r.Value, 1e-10)
}

func TestInvalidInputs(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := NewInterval(5, 2)
	assert.ErrorIs(t, err, ErrInvalidDomain)

	_, err = NewInterval(1, 1)
	assert.ErrorIs(t, err, ErrInvalidDomain)

	_, err = NewInterval(0, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidDomain)

	iv := mustInterval(t, 0, 1)

	for _, m := range Methods() {
		_, err = Evaluate(m, f, iv, 0)
		assert.ErrorIs(t, err, ErrInvalidPartitionCount, m.String())

		_, err = Evaluate(m, f, Interval{A: 2, B: 2}, 4)
		assert.ErrorIs(t, err, ErrInvalidDomain, m.String())
	}

	_, err = Evaluate(Method(99), f, iv, 4)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestNonFiniteSampleSurfaced(t *testing.T) {
	iv := mustInterval(t, 0, 1)
	f := func(x float64) float64 { return 1 / x }

	// left riemann samples x=0
	_, err := LeftRiemann(f, iv, 10)
	assert.ErrorIs(t, err, ErrNumericDomain)

	var se *SampleError

	assert.ErrorAs(t, err, &se)
	assert.Equal(t, float64(0), se.X)

	// midpoint never touches x=0
	_, err = MidpointRiemann(f, iv, 10)
	assert.Nil(t, err)

	g := func(x float64) float64 { return math.Sqrt(x - 0.5) }

	_, err = Trapezoid(g, iv, 4)
	assert.ErrorIs(t, err, ErrNumericDomain)
}

func TestCompare(t *testing.T) {
	iv := mustInterval(t, 0, 1)
	f := func(x float64) float64 { return x * x }

	trap, simp, err := Compare(MethodTrapezoidal, MethodSimpson, f, iv, 10)
	assert.Nil(t, err)
	assert.Equal(t, trap.N, simp.N)
	assert.Less(t, math.Abs(simp.Value-1.0/3), math.Abs(trap.Value-1.0/3))

	_, _, err = Compare(MethodTrapezoidal, MethodSimpson, f, iv, 7)
	assert.ErrorIs(t, err, ErrInvalidPartitionCount)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("Simpson")
	assert.Nil(t, err)
	assert.Equal(t, MethodSimpson, m)

	m, err = ParseMethod(" riemann_mid ")
	assert.Nil(t, err)
	assert.Equal(t, MethodMidpointRiemann, m)

	_, err = ParseMethod("monte_carlo")
	assert.ErrorIs(t, err, ErrUnknownMethod)

	assert.Equal(t, "gauss", MethodGaussianQuadrature.String())
	assert.Equal(t, "unknown", Method(99).String())
}
