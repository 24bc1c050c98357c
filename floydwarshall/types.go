// Package floydwarshall: sentinel errors, the Unreachable sentinel, and
// engine configuration options.
package floydwarshall

import (
	"errors"
	"math"
)

// Unreachable is the distance sentinel for pairs with no connecting path.
// Saturating addition guarantees that Unreachable plus any finite distance
// stays Unreachable instead of wrapping into a false finite value.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by the engines and matrix constructors.
var (
	// ErrNilView indicates that a nil GraphView (or nil *core.Graph) was
	// passed to an engine or adapter.
	ErrNilView = errors.New("floydwarshall: graph view is nil")

	// ErrDirectedGraph indicates that the view reports a directed graph;
	// the packed symmetric storage only represents undirected distances.
	ErrDirectedGraph = errors.New("floydwarshall: graph must be undirected")

	// ErrNegativeWeight indicates that an edge with negative weight was
	// encountered while seeding direct distances.
	ErrNegativeWeight = errors.New("floydwarshall: negative edge weight")

	// ErrVertexRange indicates that the view produced a node identifier or
	// edge endpoint outside the dense range [0, NodeCount).
	ErrVertexRange = errors.New("floydwarshall: vertex index out of range")

	// ErrBadDimension indicates a negative dimension or one whose packed
	// triangular size n·(n+1)/2 does not fit in an int.
	ErrBadDimension = errors.New("floydwarshall: invalid matrix dimension")

	// ErrNilLabelFn indicates that FloydWarshallPathsLabeled received a nil
	// label function.
	ErrNilLabelFn = errors.New("floydwarshall: label function is nil")

	// ErrBadWorkers indicates that WithParallelPairs received a worker
	// count below one (reported via panic in the option constructor).
	ErrBadWorkers = errors.New("floydwarshall: Workers must be positive")
)

// Options configures the engines.
//
// Workers – number of goroutines the distance-only engine may use to split
// the (n1,n2) pair plane for each fixed intermediate node k. The default 1
// runs fully serially. The path-tracking engine ignores this field and
// always runs serially: a worker must never read a path slot another worker
// is rewriting, and partitioning paths by disjoint pair ranges is not worth
// the bookkeeping for a diagnostic-grade speedup.
type Options struct {
	Workers int
}

// Option represents a functional option for configuring an engine run.
type Option func(*Options)

// WithParallelPairs sets the worker count for the distance-only relaxation.
// For a fixed k all reads hit row/column k, which pass k never writes, and
// each worker owns a disjoint set of unordered pairs, so no locking is
// needed. Must pass workers ≥ 1; smaller values panic with ErrBadWorkers.
func WithParallelPairs(workers int) Option {
	return func(o *Options) {
		if workers < 1 {
			// Panic to signal invalid configuration early, same policy as
			// invalid arguments to option constructors elsewhere.
			panic(ErrBadWorkers.Error())
		}
		o.Workers = workers
	}
}

// DefaultOptions returns the engine defaults: a single worker.
func DefaultOptions() Options {
	return Options{Workers: 1}
}
