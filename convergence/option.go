package convergence

const (
	// DefaultErrorFloor is the absolute error below which a sample is
	// treated as exact to machine precision and excluded from the
	// order fit, to keep log(0) and rounding noise out of the slope.
	DefaultErrorFloor = 1e-14

	// DefaultBatchWorkers bounds concurrent series in AnalyzeBatch.
	DefaultBatchWorkers = 4
)

type Options struct {
	errorFloor   float64
	batchWorkers int
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		errorFloor:   DefaultErrorFloor,
		batchWorkers: DefaultBatchWorkers,
	}
	for _, o := range option {
		o(opts)
	}

	return opts
}

func ErrorFloorOption(floor float64) Option {
	return func(o *Options) {
		if floor > 0 {
			o.errorFloor = floor
		}
	}
}

func BatchWorkersOption(workers int) Option {
	return func(o *Options) {
		if workers > 0 {
			o.batchWorkers = workers
		}
	}
}
