package quadrature

const (
	// DefaultReferenceNodes is the Gauss-Legendre node count used when
	// no option overrides it. At 64 nodes the truncation error for any
	// smooth integrand sits well below double precision.
	DefaultReferenceNodes = 64

	// DefaultReferenceSubdivisions is the Simpson partition count used
	// when the reference method is switched to Simpson.
	DefaultReferenceSubdivisions = 4096
)

type RefOptions struct {
	exact  *float64
	method Method
	n      int
	nIsSet bool
}

type RefOption func(o *RefOptions)

func refOptionNew(option ...RefOption) *RefOptions {
	opts := &RefOptions{
		method: MethodGaussianQuadrature,
	}
	for _, o := range option {
		o(opts)
	}

	if !opts.nIsSet {
		if opts.method == MethodSimpson {
			opts.n = DefaultReferenceSubdivisions
		} else {
			opts.n = DefaultReferenceNodes
		}
	}

	return opts
}

// ExactValueOption supplies an analytically known integral value. It
// always takes precedence over numeric estimation and the returned
// Reference is marked Exact, never silently substituted.
func ExactValueOption(v float64) RefOption {
	return func(o *RefOptions) {
		o.exact = &v
	}
}

// ReferenceNodesOption overrides the node count (gauss) or partition
// count (simpson) of the numeric estimation.
func ReferenceNodesOption(n int) RefOption {
	return func(o *RefOptions) {
		o.n = n
		o.nIsSet = true
	}
}

// ReferenceMethodOption switches the numeric estimation to another
// high-order rule; only gauss and simpson are accepted.
func ReferenceMethodOption(m Method) RefOption {
	return func(o *RefOptions) {
		o.method = m
	}
}

// NewReference produces a ground-truth value for the integral of f over
// iv: the caller-supplied closed form when one is given, otherwise a
// high-order numeric estimate whose own truncation error is negligible
// next to the errors being measured against it.
func NewReference(f Integrand, iv Interval, options ...RefOption) (ref Reference, err error) {
	opts := refOptionNew(options...)

	if opts.exact != nil {
		if !isFinite(*opts.exact) {
			err = ErrNumericDomain

			return
		}

		ref = Reference{
			Value: *opts.exact,
			Exact: true,
		}

		return
	}

	if opts.method != MethodGaussianQuadrature && opts.method != MethodSimpson {
		err = ErrUnknownMethod

		return
	}

	r, err := Evaluate(opts.method, f, iv, opts.n)
	if err != nil {
		return
	}

	ref = Reference{
		Value:  r.Value,
		Method: r.Method,
		N:      r.N,
	}

	return
}
