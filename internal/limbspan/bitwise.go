package limbspan

import "github.com/agbru/limbcalc/internal/limb"

// The bitwise dispatcher. One generic engine services all ten binary
// boolean operations and the unary complement. Dispatch is by relative
// operand and destination length:
//
//  1. Over the limbs all sequences share, the per-limb function is
//     applied directly; no sign extension is involved.
//  2. Where one operand ends before the destination, the remaining
//     destination limbs are produced by the unary degeneration of the
//     operation bound to that operand's sign-extension word.
//  3. Where one operand ends before the other, the engine recurses on
//     the tail with the shorter operand frozen to its sign-extension
//     word, flipping the operation when it is the left operand that ran
//     out so the single scalar always sits on the right.
//  4. Where both operands end together, the destination tail is filled
//     with the operation applied to both sign-extension words.
//
// Every operation is total: length mismatches are resolved by these
// rules, never rejected.

// unary computes d = k(r), extending r with its sign-extension word when
// d is longer.
func unary(d, r []limb.Limb, rSigned bool, k unaryKind) {
	switch k {
	case unaryOne, unaryZero:
		fill(d, k.apply(0))
	case unaryNeutral:
		n := copy(d, r)
		if n < len(d) {
			fill(d[n:], SignExtension(r, rSigned))
		}
	default:
		n := min(len(d), len(r))
		unaryLoop(d[:n], r[:n], k)
		if n < len(d) {
			fill(d[n:], k.apply(SignExtension(r, rSigned)))
		}
	}
}

// unaryInPlace computes d = k(d). The copy degeneration proves the
// result already equals the destination's contents, so it performs no
// writes at all.
func unaryInPlace(d []limb.Limb, k unaryKind) {
	switch k {
	case unaryOne, unaryZero:
		fill(d, k.apply(0))
	case unaryNeutral:
		// no-op
	default:
		unaryLoop(d, d, k)
	}
}

// binaryScalar computes d = op(l, rext) where rext is a sign-extension
// word standing in for an exhausted right operand. Unless the caller
// asked for branchless execution, the scalar is tested once and the
// whole computation degenerates to the bound unary operation.
func binaryScalar(d, l []limb.Limb, lSigned bool, rext limb.Limb, rSigned bool, op binaryOp, branchless bool) {
	switch {
	case !rSigned:
		// An unsigned extension is always zero.
		unary(d, l, lSigned, binaryOpTable[op].bindZero)
	case !branchless:
		if rext != 0 {
			unary(d, l, lSigned, binaryOpTable[op].bindOne)
		} else {
			unary(d, l, lSigned, binaryOpTable[op].bindZero)
		}
	default:
		n := min(len(d), len(l))
		binaryScalarLoop(d[:n], l[:n], rext, op)
		if n < len(d) {
			fill(d[n:], binaryOpTable[op].apply(SignExtension(l, lSigned), rext))
		}
	}
}

// binaryScalarInPlace computes d = op(d, rext).
func binaryScalarInPlace(d []limb.Limb, rext limb.Limb, rSigned bool, op binaryOp, branchless bool) {
	switch {
	case !rSigned:
		unaryInPlace(d, binaryOpTable[op].bindZero)
	case !branchless:
		if rext != 0 {
			unaryInPlace(d, binaryOpTable[op].bindOne)
		} else {
			unaryInPlace(d, binaryOpTable[op].bindZero)
		}
	default:
		binaryScalarLoop(d, d, rext, op)
	}
}

// binaryInPlace computes d = op(d, r). Dispatched separately from binary
// so the engine never reads destination limbs it has already overwritten.
func binaryInPlace(d, r []limb.Limb, rSigned bool, op binaryOp, branchless bool) {
	n := min(len(d), len(r))
	binaryLoop(d[:n], d[:n], r[:n], op)
	if n < len(d) {
		binaryScalarInPlace(d[n:], SignExtension(r, rSigned), rSigned, op, branchless)
	}
}

// binary computes d = op(l, r) for independently sized operands.
func binary(d, l, r []limb.Limb, lSigned, rSigned bool, op binaryOp, branchless bool) {
	n := min(len(d), min(len(l), len(r)))
	binaryLoop(d[:n], l[:n], r[:n], op)
	if len(d) <= n {
		return
	}

	switch {
	case len(l) > len(r):
		rext := SignExtension(r, rSigned)
		binaryScalar(d[len(r):], l[len(r):], lSigned, rext, rSigned, op, branchless)
	case len(l) < len(r):
		// Swap operand order so the scalar sits on the right.
		lext := SignExtension(l, lSigned)
		flipped := binaryOpTable[op].flip
		binaryScalar(d[len(l):], r[len(l):], rSigned, lext, lSigned, flipped, branchless)
	default:
		lext := SignExtension(l, lSigned)
		rext := SignExtension(r, rSigned)
		fill(d[n:], binaryOpTable[op].apply(lext, rext))
	}
}

func binaryDispatch(d, l, r []limb.Limb, op binaryOp, opt Option) {
	binary(d, l, r, opt.Has(LeftSigned), opt.Has(RightSigned), op, opt.Has(Branchless))
}

func binaryInPlaceDispatch(d, r []limb.Limb, op binaryOp, opt Option) {
	binaryInPlace(d, r, opt.Has(ArgSigned), op, opt.Has(Branchless))
}

// BitNot computes d = ^r, extending r when d is longer.
func BitNot(d, r []limb.Limb, opt Option) {
	unary(d, r, opt.Has(ArgSigned), unaryNot)
}

// BitNotInPlace computes d = ^d.
func BitNotInPlace(d []limb.Limb, _ Option) {
	unaryInPlace(d, unaryNot)
}

// BitAnd computes d = l & r.
func BitAnd(d, l, r []limb.Limb, opt Option) { binaryDispatch(d, l, r, opAnd, opt) }

// BitAndInPlace computes d = d & r.
func BitAndInPlace(d, r []limb.Limb, opt Option) { binaryInPlaceDispatch(d, r, opAnd, opt) }

// BitNand computes d = ^(l & r).
func BitNand(d, l, r []limb.Limb, opt Option) { binaryDispatch(d, l, r, opNand, opt) }

// BitNandInPlace computes d = ^(d & r).
func BitNandInPlace(d, r []limb.Limb, opt Option) { binaryInPlaceDispatch(d, r, opNand, opt) }

// BitOr computes d = l | r.
func BitOr(d, l, r []limb.Limb, opt Option) { binaryDispatch(d, l, r, opOr, opt) }

// BitOrInPlace computes d = d | r.
func BitOrInPlace(d, r []limb.Limb, opt Option) { binaryInPlaceDispatch(d, r, opOr, opt) }

// BitNor computes d = ^(l | r).
func BitNor(d, l, r []limb.Limb, opt Option) { binaryDispatch(d, l, r, opNor, opt) }

// BitNorInPlace computes d = ^(d | r).
func BitNorInPlace(d, r []limb.Limb, opt Option) { binaryInPlaceDispatch(d, r, opNor, opt) }

// BitXor computes d = l ^ r.
func BitXor(d, l, r []limb.Limb, opt Option) { binaryDispatch(d, l, r, opXor, opt) }

// BitXorInPlace computes d = d ^ r.
func BitXorInPlace(d, r []limb.Limb, opt Option) { binaryInPlaceDispatch(d, r, opXor, opt) }

// BitXnor computes d = ^(l ^ r).
func BitXnor(d, l, r []limb.Limb, opt Option) { binaryDispatch(d, l, r, opXnor, opt) }

// BitXnorInPlace computes d = ^(d ^ r).
func BitXnorInPlace(d, r []limb.Limb, opt Option) { binaryInPlaceDispatch(d, r, opXnor, opt) }

// BitLess computes d = ^l & r, the per-bit "less than".
func BitLess(d, l, r []limb.Limb, opt Option) { binaryDispatch(d, l, r, opLess, opt) }

// BitLessInPlace computes d = ^d & r.
func BitLessInPlace(d, r []limb.Limb, opt Option) { binaryInPlaceDispatch(d, r, opLess, opt) }

// BitGreater computes d = l & ^r, the per-bit "greater than".
func BitGreater(d, l, r []limb.Limb, opt Option) { binaryDispatch(d, l, r, opGreater, opt) }

// BitGreaterInPlace computes d = d & ^r.
func BitGreaterInPlace(d, r []limb.Limb, opt Option) { binaryInPlaceDispatch(d, r, opGreater, opt) }

// BitLeq computes d = ^l | r, the per-bit "less or equal".
func BitLeq(d, l, r []limb.Limb, opt Option) { binaryDispatch(d, l, r, opLeq, opt) }

// BitLeqInPlace computes d = ^d | r.
func BitLeqInPlace(d, r []limb.Limb, opt Option) { binaryInPlaceDispatch(d, r, opLeq, opt) }

// BitGeq computes d = l | ^r, the per-bit "greater or equal".
func BitGeq(d, l, r []limb.Limb, opt Option) { binaryDispatch(d, l, r, opGeq, opt) }

// BitGeqInPlace computes d = d | ^r.
func BitGeqInPlace(d, r []limb.Limb, opt Option) { binaryInPlaceDispatch(d, r, opGeq, opt) }
