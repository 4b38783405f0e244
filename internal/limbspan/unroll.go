package limbspan

import "github.com/agbru/limbcalc/internal/limb"

// Inner loops for the dispatcher. The work is split greedily into a wide
// tier and a narrow tier of fixed-size blocks; the full-slice expression
// in each block lets the compiler drop bounds checks and unroll. The
// tiers are a pure performance choice with no effect on output.

const (
	unrollLarge = 16
	unrollSmall = 4
)

// fill sets every limb of d to v.
func fill(d []limb.Limb, v limb.Limb) {
	for i := range d {
		d[i] = v
	}
}

// unaryLoop computes d[i] = k(r[i]) for equal-length d and r. The slices
// may alias when they start at the same limb.
func unaryLoop(d, r []limb.Limb, k unaryKind) {
	for len(d) >= unrollLarge {
		unaryBlock(d[:unrollLarge], r[:unrollLarge], k)
		d, r = d[unrollLarge:], r[unrollLarge:]
	}
	for len(d) >= unrollSmall {
		unaryBlock(d[:unrollSmall], r[:unrollSmall], k)
		d, r = d[unrollSmall:], r[unrollSmall:]
	}
	unaryBlock(d, r, k)
}

func unaryBlock(d, r []limb.Limb, k unaryKind) {
	for i := range d {
		d[i] = k.apply(r[i])
	}
}

// binaryLoop computes d[i] = f(l[i], r[i]) for equal-length slices.
// Operands may alias the destination when they start at the same limb.
func binaryLoop(d, l, r []limb.Limb, op binaryOp) {
	f := binaryOpTable[op].apply
	for len(d) >= unrollLarge {
		binaryBlock(d[:unrollLarge], l[:unrollLarge], r[:unrollLarge], f)
		d, l, r = d[unrollLarge:], l[unrollLarge:], r[unrollLarge:]
	}
	for len(d) >= unrollSmall {
		binaryBlock(d[:unrollSmall], l[:unrollSmall], r[:unrollSmall], f)
		d, l, r = d[unrollSmall:], l[unrollSmall:], r[unrollSmall:]
	}
	binaryBlock(d, l, r, f)
}

func binaryBlock(d, l, r []limb.Limb, f func(l, r limb.Limb) limb.Limb) {
	for i := range d {
		d[i] = f(l[i], r[i])
	}
}

// binaryScalarLoop computes d[i] = f(l[i], r) for equal-length d and l
// and a fixed right operand.
func binaryScalarLoop(d, l []limb.Limb, r limb.Limb, op binaryOp) {
	f := binaryOpTable[op].apply
	for len(d) >= unrollLarge {
		binaryScalarBlock(d[:unrollLarge], l[:unrollLarge], r, f)
		d, l = d[unrollLarge:], l[unrollLarge:]
	}
	for len(d) >= unrollSmall {
		binaryScalarBlock(d[:unrollSmall], l[:unrollSmall], r, f)
		d, l = d[unrollSmall:], l[unrollSmall:]
	}
	binaryScalarBlock(d, l, r, f)
}

func binaryScalarBlock(d, l []limb.Limb, r limb.Limb, f func(l, r limb.Limb) limb.Limb) {
	for i := range d {
		d[i] = f(l[i], r)
	}
}
