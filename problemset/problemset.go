// Package problemset carries ready-made teaching problems for the
// presentation layer: a function string, an interval, an optional
// analytic value and a ladder of partition counts for convergence
// demos. It sits outside the numerical kernel; nothing in quadrature
// or convergence depends on it.
package problemset

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/sgostarter/libquadrature/expr"
	"github.com/sgostarter/libquadrature/quadrature"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

var ErrBadProblem = errors.New("bad problem definition")

type Problem struct {
	Name     string  `yaml:"name"`
	Function string  `yaml:"function"`
	A        float64 `yaml:"a"`
	B        float64 `yaml:"b"`

	// Exact accepts a number or a string; "1/3" style fractions are
	// understood so catalogs can state values float literals cannot.
	Exact interface{} `yaml:"exact,omitempty"`

	Counts []int `yaml:"counts,omitempty"`
}

type Catalog struct {
	Problems []Problem `yaml:"problems"`
}

func Load(fileName string) (*Catalog, error) {
	d, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	return Parse(d)
}

func Parse(d []byte) (*Catalog, error) {
	var catalog Catalog

	if err := yaml.Unmarshal(d, &catalog); err != nil {
		return nil, err
	}

	return &catalog, nil
}

func (c *Catalog) Find(name string) (Problem, bool) {
	for _, p := range c.Problems {
		if p.Name == name {
			return p, true
		}
	}

	return Problem{}, false
}

func (p Problem) Interval() (quadrature.Interval, error) {
	return quadrature.NewInterval(p.A, p.B)
}

func (p Problem) Compile() (*expr.Function, error) {
	return expr.Parse(p.Function)
}

// ExactValue resolves the declared analytic value, if any.
func (p Problem) ExactValue() (v float64, ok bool, err error) {
	if p.Exact == nil {
		return
	}

	if s, isStr := p.Exact.(string); isStr && strings.Contains(s, "/") {
		parts := strings.SplitN(s, "/", 2)

		num, e1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		den, e2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)

		if e1 != nil || e2 != nil || den == 0 {
			err = ErrBadProblem

			return
		}

		return num / den, true, nil
	}

	v, err = cast.ToFloat64E(p.Exact)
	if err != nil {
		err = ErrBadProblem

		return
	}

	ok = true

	return
}

// Reference resolves ground truth for the problem, preferring the
// declared exact value, then the polynomial antiderivative, then the
// numeric reference evaluator.
func (p Problem) Reference() (ref quadrature.Reference, err error) {
	iv, err := p.Interval()
	if err != nil {
		return
	}

	fn, err := p.Compile()
	if err != nil {
		return
	}

	if v, ok, e := p.ExactValue(); e != nil {
		err = e

		return
	} else if ok {
		return quadrature.NewReference(fn.Integrand(), iv, quadrature.ExactValueOption(v))
	}

	if v, ok := fn.ExactIntegral(iv); ok {
		return quadrature.NewReference(fn.Integrand(), iv, quadrature.ExactValueOption(v))
	}

	return quadrature.NewReference(fn.Integrand(), iv)
}

// DefaultCatalog returns the built-in problem set, the same presets the
// interactive dashboard offers in its function dropdown.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Problems: []Problem{
			{
				Name:     "parabola",
				Function: "x**2",
				A:        0,
				B:        1,
				Exact:    "1/3",
				Counts:   []int{10, 20, 40, 80},
			},
			{
				Name:     "cubic",
				Function: "x**3",
				A:        0,
				B:        2,
				Exact:    4,
				Counts:   []int{10, 20, 40, 80},
			},
			{
				Name:     "sine-arch",
				Function: "sin(x)",
				A:        0,
				B:        3.141592653589793,
				Exact:    2,
				Counts:   []int{8, 16, 32, 64, 128},
			},
			{
				Name:     "exponential",
				Function: "exp(x)",
				A:        0,
				B:        1,
				Exact:    1.718281828459045,
				Counts:   []int{10, 20, 40, 80},
			},
			{
				Name:     "runge",
				Function: "1/(1 + 25*x**2)",
				A:        -1,
				B:        1,
				Counts:   []int{10, 20, 40, 80, 160},
			},
		},
	}
}
