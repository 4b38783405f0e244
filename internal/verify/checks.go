package verify

import (
	"fmt"
	"math/rand"

	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/limbspan"
)

// mismatch builds the structured error reported when two paths diverge.
func mismatch(op string, seed int64, format string, a ...any) error {
	return apperrors.MismatchError{
		Operation: op,
		Seed:      seed,
		Detail:    fmt.Sprintf(format, a...),
	}
}

// checkPrimitives cross-checks every limb primitive against its portable
// counterpart on one randomized input set.
func checkPrimitives(rng *rand.Rand, seed int64) error {
	x, y := limb.Limb(rng.Uint64()), limb.Limb(rng.Uint64())
	c, d := limb.Limb(rng.Uint64())&1, limb.Limb(rng.Uint64())

	s1, c1 := limb.Add(x, y, c)
	s2, c2 := limb.AddPortable(x, y, c)
	if s1 != s2 || c1 != c2 {
		return mismatch("add", seed, "inputs %#x %#x carry %d", x, y, c)
	}

	s1, c1 = limb.Sub(x, y, c)
	s2, c2 = limb.SubPortable(x, y, c)
	if s1 != s2 || c1 != c2 {
		return mismatch("sub", seed, "inputs %#x %#x borrow %d", x, y, c)
	}

	h1, l1 := limb.Mul(x, y)
	h2, l2 := limb.MulPortable(x, y)
	if h1 != h2 || l1 != l2 {
		return mismatch("mul", seed, "inputs %#x %#x", x, y)
	}

	h1, l1 = limb.MulAdd(x, y, d)
	h2, l2 = limb.MulAddPortable(x, y, d)
	if h1 != h2 || l1 != l2 {
		return mismatch("muladd", seed, "inputs %#x %#x + %#x", x, y, d)
	}

	e := limb.Limb(rng.Uint64())
	h1, l1 = limb.MulAdd2(x, y, d, e)
	h2, l2 = limb.MulAdd2Portable(x, y, d, e)
	if h1 != h2 || l1 != l2 {
		return mismatch("muladd2", seed, "inputs %#x %#x + %#x + %#x", x, y, d, e)
	}

	v := limb.Limb(rng.Uint64())
	if v == 0 {
		v = 1
	}
	hi := x % v
	q1, r1 := limb.Div(hi, y, v)
	q2, r2 := limb.DivPortable(hi, y, v)
	if q1 != q2 || r1 != r2 {
		return mismatch("div", seed, "dividend %#x:%#x divisor %#x", hi, y, v)
	}

	return nil
}

type bitwiseEntry struct {
	name    string
	call    func(d, l, r []limb.Limb, opt limbspan.Option)
	flipped func(d, l, r []limb.Limb, opt limbspan.Option)
	inPlace func(d, r []limb.Limb, opt limbspan.Option)
}

// Each operation is paired with the operation that computes the same
// function with swapped operands, so operand order can be validated
// without a second implementation.
var bitwiseEntries = []bitwiseEntry{
	{"and", limbspan.BitAnd, limbspan.BitAnd, limbspan.BitAndInPlace},
	{"nand", limbspan.BitNand, limbspan.BitNand, limbspan.BitNandInPlace},
	{"or", limbspan.BitOr, limbspan.BitOr, limbspan.BitOrInPlace},
	{"nor", limbspan.BitNor, limbspan.BitNor, limbspan.BitNorInPlace},
	{"xor", limbspan.BitXor, limbspan.BitXor, limbspan.BitXorInPlace},
	{"xnor", limbspan.BitXnor, limbspan.BitXnor, limbspan.BitXnorInPlace},
	{"less", limbspan.BitLess, limbspan.BitGreater, limbspan.BitLessInPlace},
	{"greater", limbspan.BitGreater, limbspan.BitLess, limbspan.BitGreaterInPlace},
	{"leq", limbspan.BitLeq, limbspan.BitGeq, limbspan.BitLeqInPlace},
	{"geq", limbspan.BitGeq, limbspan.BitLeq, limbspan.BitGeqInPlace},
}

func randSpan(rng *rand.Rand, maxLimbs int) []limb.Limb {
	n := rng.Intn(maxLimbs + 1)
	s := make([]limb.Limb, n)
	for i := range s {
		s[i] = limb.Limb(rng.Uint64())
	}
	return s
}

func spansEqual(a, b []limb.Limb) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkBitwise validates one randomized bitwise case: the branching and
// branchless strategies must agree, the in-place form must match the
// general form, and swapping operands must match the flipped operation.
func checkBitwise(rng *rand.Rand, seed int64, maxLimbs int) error {
	ent := bitwiseEntries[rng.Intn(len(bitwiseEntries))]
	l := randSpan(rng, maxLimbs)
	r := randSpan(rng, maxLimbs)
	dn := rng.Intn(maxLimbs + 1)

	var opt limbspan.Option
	if rng.Intn(2) == 0 {
		opt |= limbspan.LeftSigned
	}
	if rng.Intn(2) == 0 {
		opt |= limbspan.RightSigned
	}

	branchy := make([]limb.Limb, dn)
	flat := make([]limb.Limb, dn)
	ent.call(branchy, l, r, opt)
	ent.call(flat, l, r, opt|limbspan.Branchless)
	if !spansEqual(branchy, flat) {
		return mismatch(ent.name, seed, "branch strategies disagree (l=%d r=%d d=%d opt=%#x)",
			len(l), len(r), dn, uint64(opt))
	}

	swappedOpt := limbspan.Option(0)
	if opt.Has(limbspan.LeftSigned) {
		swappedOpt |= limbspan.RightSigned
	}
	if opt.Has(limbspan.RightSigned) {
		swappedOpt |= limbspan.LeftSigned
	}
	flipped := make([]limb.Limb, dn)
	ent.flipped(flipped, r, l, swappedOpt)
	if !spansEqual(branchy, flipped) {
		return mismatch(ent.name, seed, "operand swap disagrees with the flipped operation (l=%d r=%d d=%d)",
			len(l), len(r), dn)
	}

	inPlace := append([]limb.Limb(nil), l...)
	want := make([]limb.Limb, len(l))
	argOpt := limbspan.Option(0)
	if opt.Has(limbspan.RightSigned) {
		argOpt |= limbspan.ArgSigned
	}
	ent.inPlace(inPlace, r, argOpt)
	ent.call(want, l, r, opt&^limbspan.LeftSigned)
	if !spansEqual(inPlace, want) {
		return mismatch(ent.name, seed, "in-place form disagrees (l=%d r=%d)", len(l), len(r))
	}

	return nil
}

// checkCompare validates one randomized comparison case against the
// ordering laws: antisymmetry, reflexivity under widening, and the
// agreement of the two orderings when signedness matches.
func checkCompare(rng *rand.Rand, seed int64, maxLimbs int) error {
	l := randSpan(rng, maxLimbs)
	r := randSpan(rng, maxLimbs)

	var opt, swapped limbspan.Option
	if rng.Intn(2) == 0 {
		opt |= limbspan.LeftSigned
		swapped |= limbspan.RightSigned
	}
	if rng.Intn(2) == 0 {
		opt |= limbspan.RightSigned
		swapped |= limbspan.LeftSigned
	}

	if limbspan.ComparePromoted(l, r, opt) != -limbspan.ComparePromoted(r, l, swapped) {
		return mismatch("cmp", seed, "promoted ordering is not antisymmetric (l=%d r=%d)", len(l), len(r))
	}
	if limbspan.CompareInfinite(l, r, opt) != -limbspan.CompareInfinite(r, l, swapped) {
		return mismatch("cmpx", seed, "infinite ordering is not antisymmetric (l=%d r=%d)", len(l), len(r))
	}

	lSigned := opt.Has(limbspan.LeftSigned)
	ext := limbspan.SignExtension(l, lSigned)
	widened := make([]limb.Limb, len(l)+1+rng.Intn(3))
	copy(widened, l)
	for i := len(l); i < len(widened); i++ {
		widened[i] = ext
	}
	sameOpt := limbspan.Option(0)
	if lSigned {
		sameOpt = limbspan.LeftSigned | limbspan.RightSigned
	}
	if limbspan.CompareInfinite(l, widened, sameOpt) != 0 {
		return mismatch("cmpx", seed, "widening by the sign-extension word changed the value (l=%d)", len(l))
	}

	if lSigned == opt.Has(limbspan.RightSigned) {
		if limbspan.ComparePromoted(l, r, opt) != limbspan.CompareInfinite(l, r, opt) {
			return mismatch("cmp", seed, "orderings diverge despite matching signedness (l=%d r=%d)", len(l), len(r))
		}
	}

	return nil
}
