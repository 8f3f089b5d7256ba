// Package sortable provides the ordering capability used by sorted containers.
package sortable

import (
	"github.com/amp-labs/zorder/compare"
)

// Sortable is a Comparable that also defines a strict ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is a three-way comparison built from LessThan and Equals. It returns
// -1 if a sorts before b, 0 if they are equal, and +1 otherwise.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case a.Equals(b):
		return 0
	default:
		return 1
	}
}
