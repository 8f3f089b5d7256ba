package sortable

import "cmp"

// Float is a sortable wrapper for float64. NaN sorts before every other value
// and equals itself, matching cmp.Compare, so a NaN key never breaks ordering.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

func (f Float) Equals(other Float) bool {
	return cmp.Compare(float64(f), float64(other)) == 0
}

func (f Float) LessThan(other Float) bool {
	return cmp.Less(float64(f), float64(other))
}
