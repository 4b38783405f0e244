package limbspan

import "strconv"

// Extent is a sequence length that is either statically known or only
// determined at run time. It mirrors the static/dynamic length split of
// fixed-size versus ordinary slices: code that knows its lengths ahead
// of time can combine them into the tightest provable bound and fall
// back to run-time checks only when an input is Dynamic.
type Extent int

// Dynamic marks a length known only at run time.
const Dynamic Extent = -1

// IsDynamic reports whether the extent is known only at run time.
func (e Extent) IsDynamic() bool { return e < 0 }

// String returns the decimal length or "dynamic".
func (e Extent) String() string {
	if e.IsDynamic() {
		return "dynamic"
	}
	return strconv.Itoa(int(e))
}

// MinExtent returns the smallest of the given extents, or Dynamic if any
// of them is Dynamic.
func MinExtent(extents ...Extent) Extent {
	min := Dynamic
	for _, e := range extents {
		if e.IsDynamic() {
			return Dynamic
		}
		if min.IsDynamic() || e < min {
			min = e
		}
	}
	return min
}

// MaxExtent returns the largest of the given extents, or Dynamic if any
// of them is Dynamic.
func MaxExtent(extents ...Extent) Extent {
	max := Extent(0)
	if len(extents) == 0 {
		return Dynamic
	}
	for _, e := range extents {
		if e.IsDynamic() {
			return Dynamic
		}
		if e > max {
			max = e
		}
	}
	return max
}
