package limb

// Exported entry points for the portable implementations. These are
// compiled on every platform so the accelerated path can be
// cross-checked against them at runtime, not only under the purego
// build tag.

// AddPortable is the portable counterpart of Add.
func AddPortable(x, y, carry Limb) (sum, carryOut Limb) {
	return addPortable(x, y, carry)
}

// SubPortable is the portable counterpart of Sub.
func SubPortable(x, y, borrow Limb) (diff, borrowOut Limb) {
	return subPortable(x, y, borrow)
}

// MulPortable is the portable counterpart of Mul.
func MulPortable(x, y Limb) (hi, lo Limb) {
	return mulPortable(x, y)
}

// MulAddPortable is the portable counterpart of MulAdd.
func MulAddPortable(x, y, c Limb) (hi, lo Limb) {
	return mulAddPortable(x, y, c)
}

// MulAdd2Portable is the portable counterpart of MulAdd2.
func MulAdd2Portable(x, y, c, d Limb) (hi, lo Limb) {
	return mulAdd2Portable(x, y, c, d)
}

// DivPortable is the portable counterpart of Div. It has the same
// precondition: hi < v, and panics on overflow or division by zero.
func DivPortable(hi, lo, v Limb) (quo, rem Limb) {
	return divPortable(hi, lo, v)
}
