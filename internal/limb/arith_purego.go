//go:build purego

package limb

// Pure Go build: every widening primitive uses the portable algorithms.

// Add returns l + r + carry and the outgoing carry. The carry arguments
// must be 0 or 1.
func Add(l, r, carry Limb) (sum, carryOut Limb) {
	return addPortable(l, r, carry)
}

// Sub returns l - r - borrow and the outgoing borrow. The borrow
// arguments must be 0 or 1.
func Sub(l, r, borrow Limb) (diff, borrowOut Limb) {
	return subPortable(l, r, borrow)
}

// Mul returns the full double-width product l * r.
func Mul(l, r Limb) (hi, lo Limb) {
	return mulPortable(l, r)
}

// MulAdd returns the double-width value l*r + c.
func MulAdd(l, r, c Limb) (hi, lo Limb) {
	return mulAddPortable(l, r, c)
}

// MulAdd2 returns the double-width value l*r + c + d.
func MulAdd2(l, r, c, d Limb) (hi, lo Limb) {
	return mulAdd2Portable(l, r, c, d)
}

// Div divides the double-width value hi:lo by v, returning the quotient
// and remainder. It panics if v == 0 or if v <= hi.
func Div(hi, lo, v Limb) (quo, rem Limb) {
	return divPortable(hi, lo, v)
}
