//go:build !purego

package limb

import "math/bits"

// This file is the fast path: math/bits calls compile to single add-with-
// carry, widening-multiply and divide instructions on amd64 and arm64.
// The purego build replaces every function here with the portable
// algorithms from arith_portable.go; both must stay bit-identical.

// Add returns l + r + carry and the outgoing carry. The carry arguments
// must be 0 or 1; the carry out is 1 iff the full sum does not fit in one
// limb.
func Add(l, r, carry Limb) (sum, carryOut Limb) {
	return bits.Add64(l, r, carry)
}

// Sub returns l - r - borrow and the outgoing borrow. The borrow
// arguments must be 0 or 1; the borrow out is 1 iff the full difference
// wrapped around zero.
func Sub(l, r, borrow Limb) (diff, borrowOut Limb) {
	return bits.Sub64(l, r, borrow)
}

// Mul returns the full double-width product l * r.
func Mul(l, r Limb) (hi, lo Limb) {
	return bits.Mul64(l, r)
}

// MulAdd returns the double-width value l*r + c. The result cannot
// overflow two limbs.
func MulAdd(l, r, c Limb) (hi, lo Limb) {
	hi, lo = bits.Mul64(l, r)
	lo, carry := bits.Add64(lo, c, 0)
	return hi + carry, lo
}

// MulAdd2 returns the double-width value l*r + c + d. This is the
// multiply-accumulate-plus-carry shape of long multiplication and modular
// reduction; even with both addends at their maximum the result fits in
// two limbs.
func MulAdd2(l, r, c, d Limb) (hi, lo Limb) {
	hi, lo = bits.Mul64(l, r)
	lo, carry := bits.Add64(lo, c, 0)
	hi += carry
	lo, carry = bits.Add64(lo, d, 0)
	return hi + carry, lo
}

// Div divides the double-width value hi:lo by v, returning the quotient
// and remainder. It panics if v == 0 or if v <= hi, since then the
// quotient does not fit in a single limb.
func Div(hi, lo, v Limb) (quo, rem Limb) {
	return bits.Div64(hi, lo, v)
}
