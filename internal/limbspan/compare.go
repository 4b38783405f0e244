package limbspan

import "github.com/agbru/limbcalc/internal/limb"

// Comparison engine. Both orderings walk from the most significant limb
// toward the least and return at the first differing pair. A signed
// comparison is used only for the single most significant limb of an
// operand marked signed; every other limb compares unsigned.

func cmpLimb(l, r limb.Limb) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func cmpSignedLimb(l, r limb.Limb) int {
	ls, rs := limb.SignedLimb(l), limb.SignedLimb(r)
	switch {
	case ls < rs:
		return -1
	case ls > rs:
		return 1
	default:
		return 0
	}
}

// comparePromoted requires len(l) >= len(r).
func comparePromoted(l, r []limb.Limb, lSigned, rSigned bool) int {
	if len(l) == 0 {
		return 0
	}

	i := len(l) - 1
	if len(l) > len(r) {
		rext := SignExtension(r, rSigned)
		if lSigned {
			if l[i] != rext {
				return cmpSignedLimb(l[i], rext)
			}
			i--
		}
		for ; i >= len(r); i-- {
			if l[i] != rext {
				return cmpLimb(l[i], rext)
			}
		}
	} else if lSigned && rSigned {
		if l[i] != r[i] {
			return cmpSignedLimb(l[i], r[i])
		}
		i--
	}

	for ; i >= 0; i-- {
		if l[i] != r[i] {
			return cmpLimb(l[i], r[i])
		}
	}
	return 0
}

// compareInfinite requires len(l) >= len(r). Infinite comparison equals
// promoted comparison except when a signed operand would be promoted to
// unsigned, so the sign-extension words are compared first whenever the
// signedness of the two operands differs.
func compareInfinite(l, r []limb.Limb, lSigned, rSigned bool) int {
	if lSigned != rSigned {
		lext := limb.SignedLimb(SignExtension(l, lSigned))
		rext := limb.SignedLimb(SignExtension(r, rSigned))
		switch {
		case lext < rext:
			return -1
		case lext > rext:
			return 1
		}
	}
	return comparePromoted(l, r, lSigned, rSigned)
}

// ComparePromoted orders two sequences following integer-promotion
// rules: once extended to the common length, if either operand is
// unsigned the comparison is unsigned. This can diverge from the true
// numeric ordering when a negative signed value meets a longer unsigned
// one; use CompareInfinite for the mathematical ordering. The result is
// -1, 0 or +1. Only the LeftSigned and RightSigned options are
// consulted.
func ComparePromoted(l, r []limb.Limb, opt Option) int {
	lSigned, rSigned := opt.Has(LeftSigned), opt.Has(RightSigned)
	if len(l) >= len(r) {
		return comparePromoted(l, r, lSigned, rSigned)
	}
	return -comparePromoted(r, l, rSigned, lSigned)
}

// CompareInfinite orders two sequences as true unbounded integers,
// regardless of length or signedness mismatch. The result is -1, 0 or
// +1. Only the LeftSigned and RightSigned options are consulted.
func CompareInfinite(l, r []limb.Limb, opt Option) int {
	lSigned, rSigned := opt.Has(LeftSigned), opt.Has(RightSigned)
	if len(l) >= len(r) {
		return compareInfinite(l, r, lSigned, rSigned)
	}
	return -compareInfinite(r, l, rSigned, lSigned)
}
