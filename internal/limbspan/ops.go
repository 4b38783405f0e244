package limbspan

import "github.com/agbru/limbcalc/internal/limb"

// The boolean operation algebra. Every binary operation is described by
// its per-limb function plus two degenerations and a flip:
//
//   - bindOne is the unary operation equivalent to fixing the right
//     operand to the all-ones limb;
//   - bindZero fixes the right operand to zero;
//   - flip names the operation with swapped operands, so
//     flip(op)(l, r) == op(r, l).
//
// The dispatcher uses bindOne/bindZero to collapse a binary operation
// against a sign-extension tail into a cheaper unary one, and flip to
// reuse the scalar-right-operand path when the left operand is the
// shorter one.

type unaryKind uint8

const (
	unaryNeutral unaryKind = iota // copy
	unaryNot                      // complement
	unaryZero                     // fill with zeros
	unaryOne                      // fill with ones
)

func (k unaryKind) apply(a limb.Limb) limb.Limb {
	switch k {
	case unaryNot:
		return ^a
	case unaryZero:
		return 0
	case unaryOne:
		return ^limb.Limb(0)
	default:
		return a
	}
}

type binaryOp uint8

const (
	opAnd binaryOp = iota
	opNand
	opOr
	opNor
	opXor
	opXnor
	opLess    // ^l & r
	opGreater // l & ^r
	opLeq     // ^l | r
	opGeq     // l | ^r
	numBinaryOps
)

var binaryOpTable = [numBinaryOps]struct {
	name     string
	apply    func(l, r limb.Limb) limb.Limb
	bindOne  unaryKind
	bindZero unaryKind
	flip     binaryOp
}{
	opAnd:     {"and", func(l, r limb.Limb) limb.Limb { return l & r }, unaryNeutral, unaryZero, opAnd},
	opNand:    {"nand", func(l, r limb.Limb) limb.Limb { return ^(l & r) }, unaryNot, unaryOne, opNand},
	opOr:      {"or", func(l, r limb.Limb) limb.Limb { return l | r }, unaryOne, unaryNeutral, opOr},
	opNor:     {"nor", func(l, r limb.Limb) limb.Limb { return ^(l | r) }, unaryZero, unaryNot, opNor},
	opXor:     {"xor", func(l, r limb.Limb) limb.Limb { return l ^ r }, unaryNot, unaryNeutral, opXor},
	opXnor:    {"xnor", func(l, r limb.Limb) limb.Limb { return ^(l ^ r) }, unaryNeutral, unaryNot, opXnor},
	opLess:    {"less", func(l, r limb.Limb) limb.Limb { return ^l & r }, unaryNot, unaryZero, opGreater},
	opGreater: {"greater", func(l, r limb.Limb) limb.Limb { return l & ^r }, unaryZero, unaryNeutral, opLess},
	opLeq:     {"leq", func(l, r limb.Limb) limb.Limb { return ^l | r }, unaryOne, unaryNot, opGeq},
	opGeq:     {"geq", func(l, r limb.Limb) limb.Limb { return l | ^r }, unaryNeutral, unaryOne, opLeq},
}

func (op binaryOp) String() string { return binaryOpTable[op].name }
