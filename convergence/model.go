package convergence

import "github.com/sgostarter/libquadrature/quadrature"

// Sample is one measured error: the absolute deviation of a rule from
// the reference at partition count N, with the matching subinterval
// width H.
type Sample struct {
	N        int
	H        float64
	AbsError float64
}

// Series is an ordered run of Samples for one method across an
// ascending ladder of partition counts. Ordering by N is significant
// for the order fit.
type Series struct {
	Method    quadrature.Method
	Reference float64
	Samples   []Sample
}

// Order is the empirical convergence order fitted from a Series:
// error ~ C*h^P. Samples counts the points that survived the error
// floor and entered the fit.
type Order struct {
	P       float64
	Samples int
}

// BatchJob describes one series to run under AnalyzeBatch.
type BatchJob struct {
	Method    quadrature.Method
	Integrand quadrature.Integrand
	Interval  quadrature.Interval
	Counts    []int
	Reference float64
}

// BatchResult pairs a job with its outcome. Order is nil when the fit
// is undefined for the series (see EstimateOrder); Err reports hard
// evaluation failures.
type BatchResult struct {
	Job    BatchJob
	Series Series
	Order  *Order
	Err    error
}
