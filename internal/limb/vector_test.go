package limb

import (
	"math/big"
	"math/rand"
	"testing"
)

// spanToBig interprets a little-endian limb slice as an unsigned integer.
func spanToBig(s []Limb) *big.Int {
	v := new(big.Int)
	for i := len(s) - 1; i >= 0; i-- {
		v.Lsh(v, Bits)
		v.Or(v, new(big.Int).SetUint64(s[i]))
	}
	return v
}

func randSpan(rng *rand.Rand, n int) []Limb {
	s := make([]Limb, n)
	for i := range s {
		s[i] = rng.Uint64()
	}
	return s
}

// TestAddSubVV verifies the vector add/sub chains against math/big.
func TestAddSubVV(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for _, n := range []int{0, 1, 2, 3, 7, 16, 33} {
		x, y := randSpan(rng, n), randSpan(rng, n)
		z := make([]Limb, n)

		mod := new(big.Int).Lsh(big.NewInt(1), uint(Bits*n))

		carry := AddVV(z, x, y)
		sum := new(big.Int).Add(spanToBig(x), spanToBig(y))
		wantCarry := Limb(0)
		if n > 0 && sum.Cmp(mod) >= 0 {
			wantCarry = 1
		}
		sum.Mod(sum, mod)
		if spanToBig(z).Cmp(sum) != 0 || carry != wantCarry {
			t.Errorf("AddVV(n=%d): got %s carry %d, want %s carry %d", n, spanToBig(z), carry, sum, wantCarry)
		}

		borrow := SubVV(z, x, y)
		diff := new(big.Int).Sub(spanToBig(x), spanToBig(y))
		wantBorrow := Limb(0)
		if diff.Sign() < 0 {
			wantBorrow = 1
		}
		diff.Mod(diff, mod)
		if n == 0 {
			wantBorrow = 0
		}
		if spanToBig(z).Cmp(diff) != 0 || borrow != wantBorrow {
			t.Errorf("SubVV(n=%d): got %s borrow %d, want %s borrow %d", n, spanToBig(z), borrow, diff, wantBorrow)
		}
	}
}

// TestNegV verifies whole-number negation, including the zero case where
// the final carry must be 1.
func TestNegV(t *testing.T) {
	t.Run("zero negates to zero with carry", func(t *testing.T) {
		x := []Limb{0, 0, 0}
		z := make([]Limb, 3)
		if carry := NegV(z, x); carry != 1 {
			t.Errorf("NegV(zero) carry = %d, want 1", carry)
		}
		for i, l := range z {
			if l != 0 {
				t.Errorf("z[%d] = %#x, want 0", i, l)
			}
		}
	})

	t.Run("negation matches modular subtraction", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for _, n := range []int{1, 2, 5, 12} {
			x := randSpan(rng, n)
			z := make([]Limb, n)
			NegV(z, x)

			mod := new(big.Int).Lsh(big.NewInt(1), uint(Bits*n))
			want := new(big.Int).Sub(mod, spanToBig(x))
			want.Mod(want, mod)
			if spanToBig(z).Cmp(want) != 0 {
				t.Errorf("NegV(n=%d): got %s, want %s", n, spanToBig(z), want)
			}
		}
	})
}

// TestMulDivRoundTrip verifies that DivWVW inverts MulAddVWW: computing
// z = x*w + r and dividing back recovers x and r exactly.
func TestMulDivRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for _, n := range []int{1, 2, 4, 9, 31} {
		x := randSpan(rng, n)
		w := Limb(rng.Uint64())
		if w == 0 {
			w = 1
		}
		r := Limb(rng.Uint64()) % w

		z := make([]Limb, n)
		hi := MulAddVWW(z, x, w, r)

		q := make([]Limb, n)
		rem := DivWVW(q, hi, z, w)
		if rem != r {
			t.Errorf("n=%d: remainder %#x, want %#x", n, rem, r)
		}
		for i := range q {
			if q[i] != x[i] {
				t.Errorf("n=%d: quotient limb %d = %#x, want %#x", n, i, q[i], x[i])
			}
		}
	}
}

// TestAddMulVVW verifies the long-multiplication inner step against
// math/big.
func TestAddMulVVW(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for _, n := range []int{1, 3, 8, 17} {
		x := randSpan(rng, n)
		z := randSpan(rng, n)
		w := Limb(rng.Uint64())

		zBefore := spanToBig(z)
		carry := AddMulVVW(z, x, w)

		mod := new(big.Int).Lsh(big.NewInt(1), uint(Bits*n))
		exact := new(big.Int).Mul(spanToBig(x), new(big.Int).SetUint64(w))
		exact.Add(exact, zBefore)
		wantCarry := new(big.Int).Rsh(new(big.Int).Set(exact), uint(Bits*n))
		exact.Mod(exact, mod)

		if spanToBig(z).Cmp(exact) != 0 || carry != wantCarry.Uint64() {
			t.Errorf("AddMulVVW(n=%d): got %s carry %#x, want %s carry %s",
				n, spanToBig(z), carry, exact, wantCarry)
		}
	}
}

// TestAddSubVW verifies the single-word add/sub chains.
func TestAddSubVW(t *testing.T) {
	t.Run("carry ripples through all-ones", func(t *testing.T) {
		x := []Limb{^Limb(0), ^Limb(0), ^Limb(0)}
		z := make([]Limb, 3)
		if carry := AddVW(z, x, 1); carry != 1 {
			t.Errorf("AddVW carry = %d, want 1", carry)
		}
		for i, l := range z {
			if l != 0 {
				t.Errorf("z[%d] = %#x, want 0", i, l)
			}
		}
	})

	t.Run("borrow ripples through zeros", func(t *testing.T) {
		x := []Limb{0, 0, 0}
		z := make([]Limb, 3)
		if borrow := SubVW(z, x, 1); borrow != 1 {
			t.Errorf("SubVW borrow = %d, want 1", borrow)
		}
		for i, l := range z {
			if l != ^Limb(0) {
				t.Errorf("z[%d] = %#x, want all ones", i, l)
			}
		}
	})
}
