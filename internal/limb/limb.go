package limb

import "math/bits"

// Limb is the atomic digit of a multi-precision integer: a fixed-width
// unsigned machine word, least significant digit first when stored in a
// slice.
type Limb = uint64

// SignedLimb is a limb reinterpreted as a two's-complement value. It is
// used wherever the most significant limb of a sequence carries a sign.
type SignedLimb = int64

const (
	// Bits is the width of a limb in bits.
	Bits = 64
	// HalfBits is the width of a half limb, the digit size of the
	// portable multiplication and division algorithms.
	HalfBits = Bits / 2

	halfMask = 1<<HalfBits - 1
)

// LeadingZeros returns the number of 0 bits above the highest order 1 bit
// of x, or Bits if x is zero.
func LeadingZeros(x Limb) int { return bits.LeadingZeros64(x) }

// TrailingZeros returns the number of 0 bits below the lowest order 1 bit
// of x, or Bits if x is zero.
func TrailingZeros(x Limb) int { return bits.TrailingZeros64(x) }

// OnesCount returns the number of 1 bits in x.
func OnesCount(x Limb) int { return bits.OnesCount64(x) }
