// Package sortable defines [Sortable], the ordering capability for keys of
// sorted containers, plus wrappers for common key types: [Int], [Float] and
// [String].
//
// Sortable extends [github.com/amp-labs/zorder/compare.Comparable] with a
// LessThan method. [Compare] turns the pair into the three-way comparison
// that [github.com/amp-labs/zorder/sorted.NewSortable] orders by.
//
// # Custom keys
//
// Any type with Equals and LessThan can be a key. A layer ordered first by
// band and then by depth inside the band:
//
//	type depth struct {
//	    Band  int
//	    Level int
//	}
//
//	func (d depth) Equals(o depth) bool { return d == o }
//
//	func (d depth) LessThan(o depth) bool {
//	    if d.Band != o.Band {
//	        return d.Band < o.Band
//	    }
//	    return d.Level < o.Level
//	}
//
// LessThan must be a strict weak ordering and must agree with Equals: two keys
// for which neither is LessThan the other have to be Equals. Containers rely on
// this to find the run of elements sharing a key.
package sortable
