// Package limb implements single-word primitives for arbitrary-precision
// integer arithmetic: carry-propagating add/sub/negate, widening multiply
// with up to two extra addends, double-limb division, and bit counting.
//
// Every function is a pure, allocation-free computation on one or two
// machine words. Higher layers compose these primitives across slices of
// limbs to build multi-precision operations; the carry and borrow outputs
// are designed to chain directly into the next limb's carry input.
//
// Two implementations exist behind the same surface: the default build
// relies on math/bits, which the compiler lowers to single instructions
// on the major architectures, and the purego build tag selects portable
// from-scratch algorithms. The test suite verifies that both paths are
// bit-identical for all valid inputs.
package limb
