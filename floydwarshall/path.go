package floydwarshall

import "iter"

// Path records the best known route between one unordered node pair: the
// labels of the intermediate nodes (endpoints excluded), the cached total
// length, and whether any route exists at all.
//
// The zero value means "no path": empty sequence, exists == false. Paths
// are mutated only by the engine during relaxation and are read-only to
// callers afterwards; each Path is owned exclusively by its matrix slot.
//
// The stored sequence walks from the smaller endpoint index to the larger
// one (canonical i ≤ j order). Callers traversing from the larger endpoint
// must reverse it explicitly.
type Path[T any] struct {
	seq    []T   // intermediate labels in canonical order
	length int64 // cached length, valid only when exists
	exists bool
}

// Exists reports whether any route is known for this pair.
func (p *Path[T]) Exists() bool { return p.exists }

// Len returns the cached path length (sum of edge weights along the route).
// Panics when no path exists; callers must check Exists first.
func (p *Path[T]) Len() int64 {
	if !p.exists {
		panic("floydwarshall: Len on non-existent path")
	}

	return p.length
}

// Seq returns a copy of the intermediate-label sequence in canonical order.
// Empty when the endpoints are adjacent or no path exists.
func (p *Path[T]) Seq() []T {
	if len(p.seq) == 0 {
		return nil
	}
	out := make([]T, len(p.seq))
	copy(out, p.seq)

	return out
}

// Iter returns a lazy, finite, restartable iterator over the intermediate
// labels in canonical order. Each range over the result restarts from the
// beginning.
func (p *Path[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range p.seq {
			if !yield(v) {
				return
			}
		}
	}
}

// set replaces the whole record in one assignment: sequence, length and
// existence together, never piecewise.
func (p *Path[T]) set(seq []T, length int64) {
	*p = Path[T]{seq: seq, length: length, exists: true}
}
