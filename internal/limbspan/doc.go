// Package limbspan implements operations over sequences of limbs stored
// least significant first in caller-owned slices. It is the layer between
// the single-word primitives of package limb and a big-integer value
// type: slicing utilities, a sign-extension model that lets shorter
// operands behave as infinite-precision signed or unsigned values, a
// flag set describing the shape of each call, a generic dispatcher for
// the limb-wise boolean operations, and two comparison orderings.
//
// The package never allocates and never takes ownership of backing
// storage. Operands of different lengths are combined by substituting
// the shorter operand's sign-extension word for its missing high limbs,
// not by materializing an extended copy.
package limbspan
