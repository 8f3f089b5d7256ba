// Package sorted provides Array, a slice-backed container that keeps its
// elements ordered by a key derived from each element. Insert and Delete locate
// their position with a binary search instead of re-sorting.
package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/zorder/compare"
	"github.com/amp-labs/zorder/sortable"
)

// Array keeps elements sorted by key(element), ascending. Elements whose keys
// compare equal form a contiguous cluster; a newly inserted element is placed
// at the front of its cluster, so the most recent insert with a given key comes
// first.
//
// The key function, comparator and equality are fixed at construction and must
// be pure: an element's key must not change while the element is stored.
//
// Array is not safe for concurrent use.
type Array[E any, K any] struct {
	store   []E
	key     func(E) K
	compare func(a, b K) int
	equal   func(a, b E) bool
	metrics *arrayMetrics
}

// New creates an Array for comparable elements and ordered keys. Elements are
// matched with == and keys are ordered with cmp.Compare.
//
// Example:
//
//	layers := sorted.New(func(l Layer) int { return l.Z })
//	layers.Insert(Layer{Name: "hud", Z: 10})
func New[E comparable, K cmp.Ordered](key func(E) K, opts ...Option) *Array[E, K] {
	return NewFunc(key, cmp.Compare[K], compare.Identity[E](), opts...)
}

// NewSortable creates an Array whose elements decide their own equality and
// whose keys decide their own ordering.
func NewSortable[E compare.Comparable[E], K sortable.Sortable[K]](key func(E) K, opts ...Option) *Array[E, K] {
	return NewFunc(key, sortable.Compare[K], compare.EqualFunc[E](), opts...)
}

// NewFunc creates an Array from explicit functions. compareKeys is a three-way
// comparison (negative, zero, positive) and must be a total order; equal is
// used by Delete, Index and Contains. It panics if any function is nil.
func NewFunc[E any, K any](
	key func(E) K,
	compareKeys func(a, b K) int,
	equal func(a, b E) bool,
	opts ...Option,
) *Array[E, K] {
	switch {
	case key == nil:
		panic("sorted: nil key function")
	case compareKeys == nil:
		panic("sorted: nil key comparator")
	case equal == nil:
		panic("sorted: nil equality function")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return &Array[E, K]{
		store:   make([]E, 0, o.capacity),
		key:     key,
		compare: compareKeys,
		equal:   equal,
		metrics: newArrayMetrics(o.metricsName),
	}
}

// search returns the smallest index whose key is >= k, or len(store) if there
// is none. The predicate is monotonic because store is sorted.
func (a *Array[E, K]) search(k K) int {
	idx, _ := slices.BinarySearchFunc(a.store, k, func(stored E, target K) int {
		return a.compare(a.key(stored), target)
	})

	return idx
}

// Insert places element before the first stored element whose key is greater
// than or equal to its own, or at the end if there is none, and returns it.
// Time complexity: O(log n) comparisons plus O(n) to shift.
func (a *Array[E, K]) Insert(element E) E {
	idx := a.search(a.key(element))
	a.store = slices.Insert(a.store, idx, element)

	a.metrics.inserted(len(a.store))

	return element
}

// InsertAll inserts each element in argument order.
func (a *Array[E, K]) InsertAll(elements ...E) {
	for _, element := range elements {
		a.Insert(element)
	}
}

// find locates element by walking the cluster of its key from the front.
// It returns the index of the first equal element (or -1) and the number of
// stored elements examined.
func (a *Array[E, K]) find(element E) (int, int) {
	k := a.key(element)
	scanned := 0

	for i := a.search(k); i < len(a.store); i++ {
		scanned++

		if a.equal(a.store[i], element) {
			return i, scanned
		}

		// The cluster ended without a match.
		if a.compare(a.key(a.store[i]), k) != 0 {
			break
		}
	}

	return -1, scanned
}

// Index returns the position of the first element equal to element within the
// cluster of element's key, or -1. Only that cluster is searched, so an element
// whose key disagrees with the stored copy is not found; use Contains for a
// key-independent check.
func (a *Array[E, K]) Index(element E) int {
	idx, _ := a.find(element)

	return idx
}

// Delete removes the first element equal to element, searching forward from
// the start of element's key cluster. It reports whether anything was removed;
// deleting an absent element is a no-op.
// Time complexity: O(log n) + O(m) where m is the cluster size, plus O(n) to shift.
func (a *Array[E, K]) Delete(element E) bool {
	idx, scanned := a.find(element)
	a.metrics.scanned(scanned)

	if idx < 0 {
		a.metrics.deleted(false, len(a.store))

		return false
	}

	a.store = slices.Delete(a.store, idx, idx+1)
	a.metrics.deleted(true, len(a.store))

	return true
}

// Contains reports whether any stored element equals value. It scans the whole
// array and does not use value's key.
// Time complexity: O(n).
func (a *Array[E, K]) Contains(value E) bool {
	return slices.ContainsFunc(a.store, func(stored E) bool {
		return a.equal(stored, value)
	})
}

// Size returns the number of stored elements.
func (a *Array[E, K]) Size() int {
	return len(a.store)
}

// IsEmpty returns true if nothing is stored.
func (a *Array[E, K]) IsEmpty() bool {
	return len(a.store) == 0
}

// Seq returns an iterator over the elements in stored order. Each range over
// it starts from the first element and reads the live array, not a snapshot.
//
//	for layer := range layers.Seq() {
//	    draw(layer)
//	}
func (a *Array[E, K]) Seq() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < len(a.store); i++ {
			if !yield(a.store[i]) {
				return
			}
		}
	}
}

// All is like Seq but also yields each element's position.
func (a *Array[E, K]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < len(a.store); i++ {
			if !yield(i, a.store[i]) {
				return
			}
		}
	}
}

// Entries returns a copy of the elements in stored order.
func (a *Array[E, K]) Entries() []E {
	return slices.Clone(a.store)
}

// At returns the element at position i and true, or the zero value and false
// if i is out of range.
func (a *Array[E, K]) At(i int) (E, bool) {
	if i < 0 || i >= len(a.store) {
		var zero E

		return zero, false
	}

	return a.store[i], true
}

// First returns the element with the smallest key.
func (a *Array[E, K]) First() (E, bool) {
	return a.At(0)
}

// Last returns the element with the largest key.
func (a *Array[E, K]) Last() (E, bool) {
	return a.At(len(a.store) - 1)
}

// Clear removes all elements.
func (a *Array[E, K]) Clear() {
	clear(a.store)
	a.store = a.store[:0]

	a.metrics.resized(0)
}

// Clone returns a shallow copy with its own backing storage and the same key,
// comparator and equality. The copy is not instrumented.
func (a *Array[E, K]) Clone() *Array[E, K] {
	return &Array[E, K]{
		store:   append(make([]E, 0, len(a.store)), a.store...),
		key:     a.key,
		compare: a.compare,
		equal:   a.equal,
	}
}

// String renders the elements in stored order, e.g. "[1, 2, 3, 5, 8]".
func (a *Array[E, K]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, element := range a.store {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprint(&sb, element)
	}

	sb.WriteByte(']')

	return sb.String()
}
