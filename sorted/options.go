package sorted

// Option configures an Array at construction.
type Option func(*options)

type options struct {
	capacity    int    // Initial capacity of the backing slice
	metricsName string // Value of the "array" label; empty disables metrics
}

// WithCapacity preallocates room for n elements. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithMetrics records inserts, deletes, size and cluster scan lengths in the
// package's prometheus collectors, labelled with name. Arrays sharing a name
// share series, so give each long-lived array its own.
//
// Example:
//
//	arr := sorted.New(keyFn, sorted.WithMetrics("overlay"))
func WithMetrics(name string) Option {
	return func(o *options) {
		o.metricsName = name
	}
}
