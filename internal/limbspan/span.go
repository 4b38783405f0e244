package limbspan

import "github.com/agbru/limbcalc/internal/limb"

// Slicing utilities over limb sequences. A sequence is a []limb.Limb
// with the least significant limb first; sub-views share the caller's
// backing storage and never copy. All of them require 0 <= n <= len(s)
// and panic otherwise.

// First returns a view of the n least significant limbs of s.
func First(s []limb.Limb, n int) []limb.Limb {
	checkLen(s, n)
	return s[:n]
}

// Skip returns the view of s not covered by First: everything above the
// n least significant limbs.
func Skip(s []limb.Limb, n int) []limb.Limb {
	checkLen(s, n)
	return s[n:]
}

// Last returns a view of the n most significant limbs of s.
func Last(s []limb.Limb, n int) []limb.Limb {
	checkLen(s, n)
	return s[len(s)-n:]
}

// Truncate returns the view of s not covered by Last: s with its n most
// significant limbs removed.
func Truncate(s []limb.Limb, n int) []limb.Limb {
	checkLen(s, n)
	return s[:len(s)-n]
}

func checkLen(s []limb.Limb, n int) {
	if n < 0 || n > len(s) {
		panic("limbspan: slice bounds out of range")
	}
}

// SignExtension returns the bit pattern that conceptually continues
// beyond the most significant limb of s. A signed negative value
// continues with 1 bits, so the result is the all-ones limb; everything
// else, including the empty sequence regardless of signedness, continues
// with 0 bits. Substituting this word for the missing high limbs of the
// shorter operand is what makes every mixed-length operation correct.
func SignExtension(s []limb.Limb, signed bool) limb.Limb {
	if !signed || len(s) == 0 {
		return 0
	}
	return limb.Limb(limb.SignedLimb(s[len(s)-1]) >> (limb.Bits - 1))
}
