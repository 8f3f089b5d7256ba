package sortable

// Int is a sortable wrapper for the built-in int type. It is the usual key for
// z-index style orderings:
//
//	arr := sorted.NewSortable(func(w widget) sortable.Int { return sortable.Int(w.depth) })
//
// Convert back with a plain type conversion: int(k).
type Int int

var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if both values are the same integer.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if i is numerically less than other.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
