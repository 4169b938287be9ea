package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodesSmallTables(t *testing.T) {
	nodes, weights, err := Nodes(1)
	assert.Nil(t, err)
	assert.InDelta(t, 0, nodes[0], 1e-14)
	assert.InDelta(t, 2, weights[0], 1e-14)

	nodes, weights, err = Nodes(2)
	assert.Nil(t, err)
	assert.InDelta(t, -1/math.Sqrt(3), nodes[0], 1e-14)
	assert.InDelta(t, 1/math.Sqrt(3), nodes[1], 1e-14)
	assert.InDelta(t, 1, weights[0], 1e-14)
	assert.InDelta(t, 1, weights[1], 1e-14)

	nodes, weights, err = Nodes(3)
	assert.Nil(t, err)
	assert.InDelta(t, -math.Sqrt(0.6), nodes[0], 1e-14)
	assert.InDelta(t, 0, nodes[1], 1e-14)
	assert.InDelta(t, math.Sqrt(0.6), nodes[2], 1e-14)
	assert.InDelta(t, 5.0/9, weights[0], 1e-14)
	assert.InDelta(t, 8.0/9, weights[1], 1e-14)
	assert.InDelta(t, 5.0/9, weights[2], 1e-14)
}

func TestNodesProperties(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 64} {
		nodes, weights, err := Nodes(n)
		assert.Nil(t, err)
		assert.Len(t, nodes, n)
		assert.Len(t, weights, n)

		// weights integrate 1 over [-1,1]
		var sum float64
		for _, w := range weights {
			sum += w
		}

		assert.InDelta(t, 2, sum, 1e-12)

		// nodes strictly ascending, interior to (-1,1)
		for i := 0; i < n; i++ {
			assert.Greater(t, nodes[i], -1.0)
			assert.Less(t, nodes[i], 1.0)

			if i > 0 {
				assert.Greater(t, nodes[i], nodes[i-1])
			}
		}
	}
}

func TestNodesReturnsCopies(t *testing.T) {
	nodes, _, err := Nodes(4)
	assert.Nil(t, err)

	nodes[0] = 42

	again, _, err := Nodes(4)
	assert.Nil(t, err)
	assert.NotEqual(t, 42.0, again[0])
}

func TestNodesInvalidCount(t *testing.T) {
	_, _, err := Nodes(0)
	assert.ErrorIs(t, err, ErrInvalidPartitionCount)
}

func TestGaussDegreeOfExactness(t *testing.T) {
	iv := mustInterval(t, -1, 2)

	// k nodes must integrate degree 2k-1 exactly
	for k := 1; k <= 8; k++ {
		deg := 2*k - 1
		f := func(x float64) float64 { return math.Pow(x, float64(deg)) }

		// integral of x^deg over [-1,2]
		want := (math.Pow(2, float64(deg+1)) - math.Pow(-1, float64(deg+1))) / float64(deg+1)

		r, err := GaussLegendre(f, iv, k)
		assert.Nil(t, err)
		assert.InDelta(t, want, r.Value, 1e-9*math.Max(1, math.Abs(want)))
	}
}
