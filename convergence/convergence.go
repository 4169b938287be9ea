package convergence

import (
	"context"
	"math"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
	"github.com/sgostarter/libquadrature/quadrature"
	"gonum.org/v1/gonum/stat"
)

// Analyzer measures how a rule's error shrinks as the partition count
// grows, and fits the empirical convergence order from the series.
type Analyzer interface {
	Analyze(method quadrature.Method, f quadrature.Integrand, iv quadrature.Interval,
		ns []int, reference float64) (Series, error)

	EstimateOrder(series Series) (Order, error)

	AnalyzeOrder(method quadrature.Method, f quadrature.Integrand, iv quadrature.Interval,
		ns []int, reference float64) (Series, Order, error)

	AnalyzeBatch(ctx context.Context, jobs []BatchJob) []BatchResult
}

func NewAnalyzer(logger l.Wrapper, options ...Option) Analyzer {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "analyzerImpl"))

	return &analyzerImpl{
		logger: logger,
		opts:   optionNew(options...),
	}
}

type analyzerImpl struct {
	logger l.Wrapper
	opts   *Options
}

func (impl *analyzerImpl) Analyze(method quadrature.Method, f quadrature.Integrand,
	iv quadrature.Interval, ns []int, reference float64) (series Series, err error) {
	if len(ns) == 0 {
		err = ErrBadSequence

		return
	}

	last := 0

	for _, n := range ns {
		if n <= last {
			err = ErrBadSequence

			return
		}

		last = n
	}

	series.Method = method
	series.Reference = reference
	series.Samples = make([]Sample, 0, len(ns))

	for _, n := range ns {
		r, e := quadrature.Evaluate(method, f, iv, n)
		if e != nil {
			impl.logger.WithFields(l.ErrorField(e), l.StringField("method", method.String()),
				l.IntField("n", n)).Error("evaluate failed")

			err = e

			return
		}

		series.Samples = append(series.Samples, Sample{
			N:        n,
			H:        iv.Width() / float64(n),
			AbsError: math.Abs(r.Value - reference),
		})
	}

	return
}

// EstimateOrder fits log(error) against log(h) across the series;
// error ~ C*h^p makes p the slope of that line. Samples at or below the
// error floor are excluded first so rounding noise cannot dominate the
// measured rate.
func (impl *analyzerImpl) EstimateOrder(series Series) (order Order, err error) {
	logHs := make([]float64, 0, len(series.Samples))
	logErrs := make([]float64, 0, len(series.Samples))

	for _, s := range series.Samples {
		if s.AbsError <= impl.opts.errorFloor || !finite(s.AbsError) || s.H <= 0 {
			continue
		}

		logHs = append(logHs, math.Log(s.H))
		logErrs = append(logErrs, math.Log(s.AbsError))
	}

	if len(logHs) < 2 {
		err = ErrInsufficientSamples

		return
	}

	_, slope := stat.LinearRegression(logHs, logErrs, nil, false)

	order = Order{
		P:       slope,
		Samples: len(logHs),
	}

	return
}

func (impl *analyzerImpl) AnalyzeOrder(method quadrature.Method, f quadrature.Integrand,
	iv quadrature.Interval, ns []int, reference float64) (series Series, order Order, err error) {
	series, err = impl.Analyze(method, f, iv, ns, reference)
	if err != nil {
		return
	}

	order, err = impl.EstimateOrder(series)

	return
}

// AnalyzeBatch runs several series concurrently. Each job is
// independent and side-effect-free, so a canceled context simply marks
// the not-yet-started jobs with the context error; completed entries
// stay valid. Results are positioned to match jobs.
func (impl *analyzerImpl) AnalyzeBatch(ctx context.Context, jobs []BatchJob) []BatchResult {
	results := make([]BatchResult, len(jobs))

	if len(jobs) == 0 {
		return results
	}

	jobCh := make(chan int, len(jobs))
	for idx := range jobs {
		jobCh <- idx
	}

	close(jobCh)

	workers := impl.opts.batchWorkers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	routineMan := routineman.NewRoutineMan(ctx, impl.logger)
	doneCh := make(chan struct{}, workers)

	for w := 0; w < workers; w++ {
		routineMan.StartRoutine(func(ctx context.Context, exiting func() bool) {
			defer func() {
				doneCh <- struct{}{}
			}()

			for idx := range jobCh {
				job := jobs[idx]
				results[idx].Job = job

				if exiting() {
					results[idx].Err = ctx.Err()

					continue
				}

				series, err := impl.Analyze(job.Method, job.Integrand, job.Interval,
					job.Counts, job.Reference)
				if err != nil {
					results[idx].Err = err

					continue
				}

				results[idx].Series = series

				if order, err := impl.EstimateOrder(series); err == nil {
					results[idx].Order = &order
				}
			}
		}, "analyzeBatchRoutine")
	}

	for w := 0; w < workers; w++ {
		<-doneCh
	}

	routineMan.TriggerStop()
	routineMan.Wait()

	return results
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
