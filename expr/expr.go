// Package expr parses sympy-style function strings such as
// "x**2 - sin(x)/2" into integrands. An optional "f(x) =" prefix is
// stripped. The grammar covers + - * / ** with the usual precedence,
// unary minus, parentheses, the variable x, the constants pi and e,
// and a small set of builtin calls.
package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/sgostarter/libquadrature/quadrature"
)

var ErrParse = errors.New("invalid function expression")

var builtins = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"exp":  math.Exp,
	"log":  math.Log,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Pow", Pattern: `\*\*`},
	{Name: "Punct", Pattern: `[-+*/()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var exprParser = participle.MustBuild[expression](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// "x**2 + 1" -> expression{ term{...}, [+ term{...}] }

type expression struct {
	First *term     `parser:"@@"`
	Rest  []*opTerm `parser:"@@*"`
}

type opTerm struct {
	Op   string `parser:"@('+' | '-')"`
	Term *term  `parser:"@@"`
}

type term struct {
	First *unary     `parser:"@@"`
	Rest  []*opUnary `parser:"@@*"`
}

type opUnary struct {
	Op    string `parser:"@('*' | '/')"`
	Unary *unary `parser:"@@"`
}

type unary struct {
	Neg   bool   `parser:"@'-'?"`
	Power *power `parser:"@@"`
}

type power struct {
	Base *atom  `parser:"@@"`
	Exp  *unary `parser:"(Pow @@)?"`
}

type atom struct {
	Number   *float64    `parser:"@Number"`
	Call     *call       `parser:"| @@"`
	Variable *string     `parser:"| @Ident"`
	Sub      *expression `parser:"| '(' @@ ')'"`
}

type call struct {
	Name string      `parser:"@Ident '('"`
	Arg  *expression `parser:"@@ ')'"`
}

// Function is a parsed, validated expression ready for evaluation.
type Function struct {
	src  string
	root *expression
}

// Parse compiles a function string. Anything before a leading "=" is
// discarded, mirroring the "f(x) = ..." convention of the notebooks
// this feeds.
func Parse(s string) (*Function, error) {
	if i := strings.Index(s, "="); i >= 0 {
		s = s[i+1:]
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrParse
	}

	root, err := exprParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("%q: %v: %w", s, err, ErrParse)
	}

	if err = validateExpression(root); err != nil {
		return nil, err
	}

	return &Function{src: s, root: root}, nil
}

func (fn *Function) String() string {
	return fn.src
}

// Eval computes f(x). Domain violations follow math package semantics
// (NaN/Inf), which the quadrature rules surface as errors.
func (fn *Function) Eval(x float64) float64 {
	return evalExpression(fn.root, x)
}

// Integrand adapts the function to the quadrature call surface.
func (fn *Function) Integrand() quadrature.Integrand {
	return fn.Eval
}

func validateExpression(e *expression) error {
	if err := validateTerm(e.First); err != nil {
		return err
	}

	for _, ot := range e.Rest {
		if err := validateTerm(ot.Term); err != nil {
			return err
		}
	}

	return nil
}

func validateTerm(t *term) error {
	if err := validateAtom(t.First.Power.Base); err != nil {
		return err
	}

	if t.First.Power.Exp != nil {
		if err := validateTerm(&term{First: t.First.Power.Exp}); err != nil {
			return err
		}
	}

	for _, ou := range t.Rest {
		if err := validateTerm(&term{First: ou.Unary}); err != nil {
			return err
		}
	}

	return nil
}

func validateAtom(a *atom) error {
	switch {
	case a.Number != nil:
		return nil
	case a.Call != nil:
		name := strings.ToLower(a.Call.Name)
		if _, ok := builtins[name]; !ok {
			return fmt.Errorf("unknown function %q: %w", a.Call.Name, ErrParse)
		}

		return validateExpression(a.Call.Arg)
	case a.Variable != nil:
		name := strings.ToLower(*a.Variable)
		if name == "x" {
			return nil
		}

		if _, ok := constants[name]; !ok {
			return fmt.Errorf("unknown identifier %q: %w", *a.Variable, ErrParse)
		}

		return nil
	case a.Sub != nil:
		return validateExpression(a.Sub)
	}

	return ErrParse
}

func evalExpression(e *expression, x float64) float64 {
	v := evalTerm(e.First, x)

	for _, ot := range e.Rest {
		if ot.Op == "+" {
			v += evalTerm(ot.Term, x)
		} else {
			v -= evalTerm(ot.Term, x)
		}
	}

	return v
}

func evalTerm(t *term, x float64) float64 {
	v := evalUnary(t.First, x)

	for _, ou := range t.Rest {
		if ou.Op == "*" {
			v *= evalUnary(ou.Unary, x)
		} else {
			v /= evalUnary(ou.Unary, x)
		}
	}

	return v
}

func evalUnary(u *unary, x float64) float64 {
	v := evalPower(u.Power, x)
	if u.Neg {
		v = -v
	}

	return v
}

func evalPower(p *power, x float64) float64 {
	v := evalAtom(p.Base, x)

	if p.Exp != nil {
		v = math.Pow(v, evalUnary(p.Exp, x))
	}

	return v
}

func evalAtom(a *atom, x float64) float64 {
	switch {
	case a.Number != nil:
		return *a.Number
	case a.Call != nil:
		return builtins[strings.ToLower(a.Call.Name)](evalExpression(a.Call.Arg, x))
	case a.Variable != nil:
		name := strings.ToLower(*a.Variable)
		if name == "x" {
			return x
		}

		return constants[name]
	case a.Sub != nil:
		return evalExpression(a.Sub, x)
	}

	return math.NaN()
}
