package limb

// Inc adds a carry bit to x. The carry must be 0 or 1. The returned carry
// is 1 iff the addition wrapped around zero, so chaining Inc across the
// limbs of a number increments the whole number.
func Inc(x, carry Limb) (sum, carryOut Limb) {
	sum = x + carry
	if sum < x {
		carryOut = 1
	}
	return sum, carryOut
}

// Dec subtracts a borrow bit from x. The borrow must be 0 or 1. The
// returned borrow is 1 iff the subtraction wrapped around zero.
func Dec(x, borrow Limb) (diff, borrowOut Limb) {
	diff = x - borrow
	if diff > x {
		borrowOut = 1
	}
	return diff, borrowOut
}

// Neg computes one step of a multi-limb two's-complement negation,
// exploiting the identity
//
//	0 - x == ^x + 1
//
// It flips the bits of x and adds the incoming carry. Chaining Neg across
// the limbs of a number with an initial carry of 1, feeding each carry
// out into the next call, negates the whole number.
func Neg(x, carry Limb) (result, carryOut Limb) {
	return Inc(^x, carry)
}
