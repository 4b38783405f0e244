package limb

// Portable from-scratch implementations of the widening primitives.
// These are compiled unconditionally so the test suite can cross-check
// them against the fast path; the purego build exports them directly.
//
// Multiplication splits each limb into two half-width digits and performs
// schoolbook long multiplication. Division is Knuth's algorithm D
// restricted to a two-digit divisor: normalize the divisor so its top bit
// is set, estimate each quotient digit from the top two dividend digits
// divided by the top divisor digit, and correct the estimate downward.
// The estimate exceeds the true digit by at most 2, so the correction
// loop runs at most twice.

func addPortable(l, r, carry Limb) (sum, carryOut Limb) {
	tmp := l + r
	var c1, c2 Limb
	if tmp < l {
		c1 = 1
	}
	sum = tmp + carry
	if sum < tmp {
		c2 = 1
	}
	return sum, c1 | c2
}

func subPortable(l, r, borrow Limb) (diff, borrowOut Limb) {
	tmp := l - r
	var b1, b2 Limb
	if tmp > l {
		b1 = 1
	}
	diff = tmp - borrow
	if diff > tmp {
		b2 = 1
	}
	return diff, b1 | b2
}

func mulPortable(l, r Limb) (hi, lo Limb) {
	l0, l1 := l&halfMask, l>>HalfBits
	r0, r1 := r&halfMask, r>>HalfBits
	lo = l0 * r0
	m1 := l0*r1 + lo>>HalfBits
	m2 := l1*r0 + m1&halfMask
	hi = l1*r1 + m2>>HalfBits + m1>>HalfBits
	lo = lo&halfMask | m2<<HalfBits
	return hi, lo
}

func mulAddPortable(l, r, c Limb) (hi, lo Limb) {
	l0, l1 := l&halfMask, l>>HalfBits
	r0, r1 := r&halfMask, r>>HalfBits
	c0, c1 := c&halfMask, c>>HalfBits
	lo = l0*r0 + c0
	m1 := l0*r1 + c1 + lo>>HalfBits
	m2 := l1*r0 + m1&halfMask
	hi = l1*r1 + m2>>HalfBits + m1>>HalfBits
	lo = lo&halfMask | m2<<HalfBits
	return hi, lo
}

func mulAdd2Portable(l, r, c, d Limb) (hi, lo Limb) {
	l0, l1 := l&halfMask, l>>HalfBits
	r0, r1 := r&halfMask, r>>HalfBits
	c0, c1 := c&halfMask, c>>HalfBits
	d0, d1 := d&halfMask, d>>HalfBits
	lo = l0*r0 + c0 + d0
	m1 := l0*r1 + c1 + d1
	m2 := l1*r0 + lo>>HalfBits + m1&halfMask
	hi = l1*r1 + m2>>HalfBits + m1>>HalfBits
	lo = lo&halfMask | m2<<HalfBits
	return hi, lo
}

func divPortable(hi, lo, v Limb) (quo, rem Limb) {
	if hi >= v {
		// Covers v == 0 as well: the quotient cannot fit in one limb.
		panic("limb: division overflow")
	}

	s := uint(LeadingZeros(v))
	v <<= s

	vn1 := v >> HalfBits
	vn0 := v & halfMask
	// A shift count of Bits yields 0 in Go, so s == 0 is handled without
	// a branch.
	un32 := hi<<s | lo>>(Bits-s)
	un10 := lo << s
	un1 := un10 >> HalfBits
	un0 := un10 & halfMask

	q1 := un32 / vn1
	rhat := un32 - q1*vn1
	for q1 > halfMask || q1*vn0 > rhat<<HalfBits+un1 {
		q1--
		rhat += vn1
		if rhat > halfMask {
			break
		}
	}

	un21 := un32<<HalfBits + un1 - q1*v
	q0 := un21 / vn1
	rhat = un21 - q0*vn1
	for q0 > halfMask || q0*vn0 > rhat<<HalfBits+un0 {
		q0--
		rhat += vn1
		if rhat > halfMask {
			break
		}
	}

	return q1<<HalfBits + q0, (un21<<HalfBits + un0 - q0*v) >> s
}
