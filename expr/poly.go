package expr

import (
	"math"

	"github.com/sgostarter/libquadrature/quadrature"
)

// polynomial coefficients, index = degree. nil means "not a polynomial
// in x" for the conversion helpers below.

type poly []float64

func polyConst(c float64) poly {
	return poly{c}
}

func (p poly) add(q poly) poly {
	r := make(poly, len(p))
	copy(r, p)

	for i, c := range q {
		if i < len(r) {
			r[i] += c
		} else {
			r = append(r, c)
		}
	}

	return r
}

func (p poly) neg() poly {
	r := make(poly, len(p))
	for i, c := range p {
		r[i] = -c
	}

	return r
}

func (p poly) mul(q poly) poly {
	if len(p) == 0 || len(q) == 0 {
		return poly{}
	}

	r := make(poly, len(p)+len(q)-1)

	for i, a := range p {
		for j, b := range q {
			r[i+j] += a * b
		}
	}

	return r
}

func (p poly) scale(k float64) poly {
	r := make(poly, len(p))
	for i, c := range p {
		r[i] = c * k
	}

	return r
}

func (p poly) isConst() (float64, bool) {
	for i, c := range p {
		if i > 0 && c != 0 {
			return 0, false
		}
	}

	if len(p) == 0 {
		return 0, true
	}

	return p[0], true
}

// Antiderivative returns the exact antiderivative F (with F(0)=0) when
// the expression is a polynomial in x, possibly with constant
// subexpressions like sin(2) folded numerically. The second return is
// false for anything non-polynomial.
func (fn *Function) Antiderivative() (quadrature.Integrand, bool) {
	p, ok := polyExpression(fn.root)
	if !ok {
		return nil, false
	}

	// termwise: integral of c*x^k is c*x^(k+1)/(k+1)
	anti := make(poly, len(p)+1)
	for k, c := range p {
		anti[k+1] = c / float64(k+1)
	}

	return func(x float64) float64 {
		// Horner, highest degree first
		var v float64
		for i := len(anti) - 1; i >= 0; i-- {
			v = v*x + anti[i]
		}

		return v
	}, true
}

// ExactIntegral evaluates the analytic integral of the function over iv
// when a closed form is available (polynomial case), as ground truth
// for error measurement.
func (fn *Function) ExactIntegral(iv quadrature.Interval) (float64, bool) {
	anti, ok := fn.Antiderivative()
	if !ok {
		return 0, false
	}

	return anti(iv.B) - anti(iv.A), true
}

func polyExpression(e *expression) (poly, bool) {
	p, ok := polyTerm(e.First)
	if !ok {
		return nil, false
	}

	for _, ot := range e.Rest {
		q, ok := polyTerm(ot.Term)
		if !ok {
			return nil, false
		}

		if ot.Op == "-" {
			q = q.neg()
		}

		p = p.add(q)
	}

	return p, true
}

func polyTerm(t *term) (poly, bool) {
	p, ok := polyUnary(t.First)
	if !ok {
		return nil, false
	}

	for _, ou := range t.Rest {
		q, ok := polyUnary(ou.Unary)
		if !ok {
			return nil, false
		}

		if ou.Op == "*" {
			p = p.mul(q)

			continue
		}

		// division stays polynomial only for constant divisors
		c, isConst := q.isConst()
		if !isConst || c == 0 {
			return nil, false
		}

		p = p.scale(1 / c)
	}

	return p, true
}

func polyUnary(u *unary) (poly, bool) {
	p, ok := polyPower(u.Power)
	if !ok {
		return nil, false
	}

	if u.Neg {
		p = p.neg()
	}

	return p, true
}

func polyPower(pw *power) (poly, bool) {
	p, ok := polyAtom(pw.Base)
	if !ok {
		return nil, false
	}

	if pw.Exp == nil {
		return p, true
	}

	exp, ok := polyUnary(pw.Exp)
	if !ok {
		return nil, false
	}

	c, isConst := exp.isConst()
	if !isConst || c < 0 || c != math.Trunc(c) {
		return nil, false
	}

	r := polyConst(1)
	for i := 0; i < int(c); i++ {
		r = r.mul(p)
	}

	return r, true
}

func polyAtom(a *atom) (poly, bool) {
	switch {
	case a.Number != nil:
		return polyConst(*a.Number), true
	case a.Call != nil:
		// a call with a constant argument folds to a constant
		if usesXExpression(a.Call.Arg) {
			return nil, false
		}

		return polyConst(evalAtom(a, 0)), true
	case a.Variable != nil:
		name := *a.Variable
		if name == "x" || name == "X" {
			return poly{0, 1}, true
		}

		return polyConst(evalAtom(a, 0)), true
	case a.Sub != nil:
		return polyExpression(a.Sub)
	}

	return nil, false
}

func usesXExpression(e *expression) bool {
	if usesXTerm(e.First) {
		return true
	}

	for _, ot := range e.Rest {
		if usesXTerm(ot.Term) {
			return true
		}
	}

	return false
}

func usesXTerm(t *term) bool {
	if usesXUnary(t.First) {
		return true
	}

	for _, ou := range t.Rest {
		if usesXUnary(ou.Unary) {
			return true
		}
	}

	return false
}

func usesXUnary(u *unary) bool {
	if usesXAtom(u.Power.Base) {
		return true
	}

	return u.Power.Exp != nil && usesXUnary(u.Power.Exp)
}

func usesXAtom(a *atom) bool {
	switch {
	case a.Call != nil:
		return usesXExpression(a.Call.Arg)
	case a.Variable != nil:
		name := *a.Variable
		return name == "x" || name == "X"
	case a.Sub != nil:
		return usesXExpression(a.Sub)
	}

	return false
}
