package quadrature

import (
	"math"
	"strconv"
	"sync"

	"github.com/patrickmn/go-cache"
)

// Gauss-Legendre tables are expensive to derive for large n, and the
// presentation layer tends to re-request the same counts while
// animating, so computed tables are kept in an in-memory cache for the
// lifetime of the process.
var (
	legendreCache = cache.New(cache.NoExpiration, 0)
	legendreLock  sync.Mutex
)

type legendreNodes struct {
	nodes   []float64
	weights []float64
}

// Nodes returns the n-point Gauss-Legendre nodes and weights on the
// reference interval [-1,1], nodes ascending. The returned slices are
// copies and safe to modify.
func Nodes(n int) (nodes, weights []float64, err error) {
	if n < 1 {
		err = ErrInvalidPartitionCount

		return
	}

	ns, ws := legendreTable(n)

	nodes = append([]float64{}, ns...)
	weights = append([]float64{}, ws...)

	return
}

// legendreTable returns cached slices; callers must not modify them.
func legendreTable(n int) (nodes, weights []float64) {
	key := strconv.Itoa(n)

	if v, ok := legendreCache.Get(key); ok {
		// nolint:forcetypeassert
		t := v.(legendreNodes)

		return t.nodes, t.weights
	}

	legendreLock.Lock()
	defer legendreLock.Unlock()

	if v, ok := legendreCache.Get(key); ok {
		// nolint:forcetypeassert
		t := v.(legendreNodes)

		return t.nodes, t.weights
	}

	t := computeLegendre(n)
	legendreCache.Set(key, t, cache.NoExpiration)

	return t.nodes, t.weights
}

// computeLegendre finds the roots of the degree-n Legendre polynomial
// by Newton iteration on the three-term recurrence, exploiting the
// symmetry of the roots about zero. Weight at root x is
// 2/((1-x^2)*P'(x)^2).
func computeLegendre(n int) legendreNodes {
	t := legendreNodes{
		nodes:   make([]float64, n),
		weights: make([]float64, n),
	}

	m := (n + 1) / 2

	for i := 1; i <= m; i++ {
		// Chebyshev-like initial guess for the i-th root.
		x := math.Cos(math.Pi * (float64(i) - 0.25) / (float64(n) + 0.5))

		var dp float64

		for iter := 0; iter < 64; iter++ {
			p, pPrev := legendreEval(n, x)

			dp = float64(n) * (x*p - pPrev) / (x*x - 1)

			dx := p / dp
			x -= dx

			if math.Abs(dx) < 1e-15 {
				p, pPrev = legendreEval(n, x)
				dp = float64(n) * (x*p - pPrev) / (x*x - 1)

				break
			}
		}

		w := 2 / ((1 - x*x) * dp * dp)

		t.nodes[i-1] = -x
		t.nodes[n-i] = x
		t.weights[i-1] = w
		t.weights[n-i] = w
	}

	if n%2 == 1 {
		// The middle root of an odd-degree polynomial is exactly zero.
		t.nodes[m-1] = 0
	}

	return t
}

// legendreEval computes P_n(x) and P_{n-1}(x) via the recurrence
// k*P_k = (2k-1)*x*P_{k-1} - (k-1)*P_{k-2}.
func legendreEval(n int, x float64) (p, pPrev float64) {
	p, pPrev = x, 1

	if n == 0 {
		return pPrev, 0
	}

	for k := 2; k <= n; k++ {
		p, pPrev = ((2*float64(k)-1)*x*p-(float64(k)-1)*pPrev)/float64(k), p
	}

	return
}
