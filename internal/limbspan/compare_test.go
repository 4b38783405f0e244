package limbspan

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/agbru/limbcalc/internal/limb"
)

// spanToBig interprets s as an unbounded integer, least significant limb
// first. When signed is set and the top bit is one the value is read as
// two's complement at the span's width.
func spanToBig(s []limb.Limb, signed bool) *big.Int {
	v := new(big.Int)
	for i := len(s) - 1; i >= 0; i-- {
		v.Lsh(v, limb.Bits)
		v.Or(v, new(big.Int).SetUint64(s[i]))
	}
	if signed && len(s) > 0 && s[len(s)-1]>>(limb.Bits-1) == 1 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(limb.Bits*len(s)))
		v.Sub(v, mod)
	}
	return v
}

// oraclePromoted reproduces integer promotion with big.Int: extend both
// operands to the common length, then compare with the signedness of the
// longer operand, or signed only if both are signed when lengths match.
func oraclePromoted(l, r []limb.Limb, lSigned, rSigned bool) int {
	n := len(l)
	if len(r) > n {
		n = len(r)
	}
	var cmpSigned bool
	switch {
	case len(l) > len(r):
		cmpSigned = lSigned
	case len(r) > len(l):
		cmpSigned = rSigned
	default:
		cmpSigned = lSigned && rSigned
	}
	lv := spanToBig(materialize(l, lSigned, n), cmpSigned)
	rv := spanToBig(materialize(r, rSigned, n), cmpSigned)
	return lv.Cmp(rv)
}

func oracleInfinite(l, r []limb.Limb, lSigned, rSigned bool) int {
	return spanToBig(l, lSigned).Cmp(spanToBig(r, rSigned))
}

func signOpts(lSigned, rSigned bool) Option {
	var opt Option
	if lSigned {
		opt |= LeftSigned
	}
	if rSigned {
		opt |= RightSigned
	}
	return opt
}

func TestCompareScenarios(t *testing.T) {
	allOnes := ^limb.Limb(0)
	tests := []struct {
		name         string
		l, r         []limb.Limb
		opt          Option
		wantPromoted int
		wantInfinite int
	}{
		{"empty operands are equal", nil, nil, 0, 0, 0},
		{"empty versus zero", nil, []limb.Limb{0, 0}, 0, 0, 0},
		{"unsigned simple", []limb.Limb{5}, []limb.Limb{7}, 0, -1, -1},
		{"most significant limb decides", []limb.Limb{9, 1}, []limb.Limb{0, 2}, 0, -1, -1},
		{"shorter unsigned extends with zeros", []limb.Limb{5}, []limb.Limb{5, 0, 0}, 0, 0, 0},
		{
			"signed negatives compare signed",
			[]limb.Limb{allOnes}, []limb.Limb{1},
			LeftSigned | RightSigned, -1, -1,
		},
		{
			"minus one versus all-ones unsigned diverges",
			[]limb.Limb{allOnes}, []limb.Limb{allOnes},
			LeftSigned, 0, -1,
		},
		{
			"negative against longer unsigned diverges",
			[]limb.Limb{allOnes}, []limb.Limb{allOnes, allOnes},
			LeftSigned, 0, -1,
		},
		{
			"longer signed operand keeps its sign",
			[]limb.Limb{allOnes, allOnes}, []limb.Limb{1},
			LeftSigned, -1, -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComparePromoted(tt.l, tt.r, tt.opt); got != tt.wantPromoted {
				t.Errorf("ComparePromoted = %d, want %d", got, tt.wantPromoted)
			}
			if got := CompareInfinite(tt.l, tt.r, tt.opt); got != tt.wantInfinite {
				t.Errorf("CompareInfinite = %d, want %d", got, tt.wantInfinite)
			}
		})
	}
}

// TestEqualNegativesAcrossLengths checks that the same negative value
// stored at different widths compares equal under both orderings.
func TestEqualNegativesAcrossLengths(t *testing.T) {
	allOnes := ^limb.Limb(0)
	narrow := []limb.Limb{allOnes}
	wide := []limb.Limb{allOnes, allOnes, allOnes}
	opt := LeftSigned | RightSigned

	if got := CompareInfinite(narrow, wide, opt); got != 0 {
		t.Errorf("CompareInfinite(-1, -1) = %d, want 0", got)
	}
	if got := ComparePromoted(narrow, wide, opt); got != 0 {
		t.Errorf("ComparePromoted(-1, -1) = %d, want 0", got)
	}
}

// TestSignExtensionWidening verifies that widening a sequence with its
// own sign-extension word never changes either ordering.
func TestSignExtensionWidening(t *testing.T) {
	rng := rand.New(rand.NewSource(30))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(4) + 1
		signed := rng.Intn(2) == 0
		s := randValues(rng, n)
		widened := materialize(s, signed, n+1+rng.Intn(3))

		opt := signOpts(signed, signed)
		if got := CompareInfinite(s, widened, opt); got != 0 {
			t.Fatalf("CompareInfinite(%x, widened) = %d, want 0", s, got)
		}
		if got := ComparePromoted(s, widened, opt); got != 0 {
			t.Fatalf("ComparePromoted(%x, widened) = %d, want 0", s, got)
		}
	}
}

// TestCompareExhaustiveVsOracle cross-checks both orderings against
// big.Int over all short length pairs, all signedness combinations, and
// values biased toward sign boundaries.
func TestCompareExhaustiveVsOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	allOnes := ^limb.Limb(0)

	pick := func() limb.Limb {
		switch rng.Intn(4) {
		case 0:
			return 0
		case 1:
			return allOnes
		case 2:
			return 1 << (limb.Bits - 1)
		default:
			return limb.Limb(rng.Uint64())
		}
	}

	for ln := 0; ln <= 4; ln++ {
		for rn := 0; rn <= 4; rn++ {
			for mask := 0; mask < 4; mask++ {
				lSigned, rSigned := mask&1 != 0, mask&2 != 0
				opt := signOpts(lSigned, rSigned)
				for rep := 0; rep < 50; rep++ {
					l := make([]limb.Limb, ln)
					r := make([]limb.Limb, rn)
					for i := range l {
						l[i] = pick()
					}
					for i := range r {
						r[i] = pick()
					}

					if got, want := ComparePromoted(l, r, opt), oraclePromoted(l, r, lSigned, rSigned); got != want {
						t.Fatalf("ComparePromoted(%x, %x, lS=%v rS=%v) = %d, want %d",
							l, r, lSigned, rSigned, got, want)
					}
					if got, want := CompareInfinite(l, r, opt), oracleInfinite(l, r, lSigned, rSigned); got != want {
						t.Fatalf("CompareInfinite(%x, %x, lS=%v rS=%v) = %d, want %d",
							l, r, lSigned, rSigned, got, want)
					}

					// Both orderings must be antisymmetric.
					swapped := signOpts(rSigned, lSigned)
					if ComparePromoted(l, r, opt) != -ComparePromoted(r, l, swapped) {
						t.Fatalf("ComparePromoted(%x, %x) is not antisymmetric", l, r)
					}
					if CompareInfinite(l, r, opt) != -CompareInfinite(r, l, swapped) {
						t.Fatalf("CompareInfinite(%x, %x) is not antisymmetric", l, r)
					}
				}
			}
		}
	}
}

func BenchmarkCompareInfinite(b *testing.B) {
	rng := rand.New(rand.NewSource(32))
	l := randValues(rng, 64)
	r := append([]limb.Limb(nil), l...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CompareInfinite(l, r, LeftSigned|RightSigned)
	}
}
