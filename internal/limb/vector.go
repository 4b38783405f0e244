package limb

// Vector helpers composing the single-limb primitives across whole
// numbers, least significant limb first. They are the consumption pattern
// the carry and borrow contracts are designed for and the surface a
// big-integer layer builds on. All of them require len(z) == len(x) (and
// len(y) where present) and write exactly len(z) limbs.

// AddVV computes z = x + y element-wise and returns the final carry.
func AddVV(z, x, y []Limb) (carry Limb) {
	for i := range z {
		z[i], carry = Add(x[i], y[i], carry)
	}
	return carry
}

// SubVV computes z = x - y element-wise and returns the final borrow.
func SubVV(z, x, y []Limb) (borrow Limb) {
	for i := range z {
		z[i], borrow = Sub(x[i], y[i], borrow)
	}
	return borrow
}

// AddVW computes z = x + w and returns the final carry.
func AddVW(z, x []Limb, w Limb) (carry Limb) {
	carry = w
	for i := range z {
		z[i], carry = Inc(x[i], carry)
	}
	return carry
}

// SubVW computes z = x - w and returns the final borrow.
func SubVW(z, x []Limb, w Limb) (borrow Limb) {
	borrow = w
	for i := range z {
		z[i], borrow = Dec(x[i], borrow)
	}
	return borrow
}

// NegV computes the two's-complement negation z = -x and returns the
// final carry. The carry is 1 iff x is zero.
func NegV(z, x []Limb) (carry Limb) {
	carry = 1
	for i := range z {
		z[i], carry = Neg(x[i], carry)
	}
	return carry
}

// MulAddVWW computes z = x*w + r element-wise and returns the final
// carry, which is the high limb of the product.
func MulAddVWW(z, x []Limb, w, r Limb) (carry Limb) {
	carry = r
	for i := range z {
		carry, z[i] = MulAdd(x[i], w, carry)
	}
	return carry
}

// AddMulVVW computes z += x*w element-wise and returns the final carry.
// This is the inner step of long multiplication.
func AddMulVVW(z, x []Limb, w Limb) (carry Limb) {
	for i := range z {
		carry, z[i] = MulAdd2(x[i], w, z[i], carry)
	}
	return carry
}

// DivWVW computes z = (xn:x) / w element-wise from the most significant
// limb down and returns the remainder. It requires xn < w.
func DivWVW(z []Limb, xn Limb, x []Limb, w Limb) (rem Limb) {
	rem = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], rem = Div(rem, x[i], w)
	}
	return rem
}
