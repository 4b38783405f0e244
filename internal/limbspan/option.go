package limbspan

// Option is an immutable set of flags describing the shape of a span
// operation's arguments: which operands carry a two's-complement sign,
// which may be scribbled on, which pairs are promised not to overlap,
// and branch-strategy hints. Options combine with bitwise or and are
// resolved at the call site; they never persist as state.
//
// Signedness and the aliasing promises are correctness-relevant. The
// Branchless and NoOverflow flags may only change speed or code size,
// never the mathematical result for valid inputs.
type Option uint64

const (
	// LeftSigned marks the left operand as a signed two's-complement
	// integer instead of an unsigned one.
	LeftSigned Option = 0x1
	// LeftMutable allows an operation to use the left operand as
	// scratch space during the computation.
	LeftMutable Option = 0x2
	// RightSigned marks the right operand as signed.
	RightSigned Option = 0x10
	// RightMutable allows an operation to use the right operand as
	// scratch space.
	RightMutable Option = 0x20

	// Branchless asks for uniform per-limb computation instead of
	// early-exit branching. Worthwhile only for very small spans.
	Branchless Option = 0x100
	// NoOverflow promises that the destination is large enough to hold
	// the result without truncation; with the promise broken the output
	// is unspecified instead of truncated.
	NoOverflow Option = 0x200

	// RestrictLeftRight promises that the left and right operands do
	// not overlap in memory.
	RestrictLeftRight Option = 0x1000
	// RestrictDestLeft promises that the destination and the left
	// operand do not overlap.
	RestrictDestLeft Option = 0x2000
	// RestrictDestRight promises that the destination and the right
	// operand do not overlap.
	RestrictDestRight Option = 0x4000
)

// Aliases for the single-argument operation forms, where the only
// operand occupies the right-hand slot.
const (
	ArgSigned       = RightSigned
	ArgMutable      = RightMutable
	RestrictDestArg = RestrictDestRight
)

// Has reports whether the flag is set.
func (o Option) Has(flag Option) bool { return o&flag != 0 }
