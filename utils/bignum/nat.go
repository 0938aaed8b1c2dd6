package bignum

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Nat is a non-negative integer carried in a fixed number of 64-bit limbs.
// The width is a property of the value: arithmetic never widens silently, and
// a result that does not fit the operand width is a programming error.
// Widening (e.g. before forming a double-width modular product) is done
// explicitly with [Nat.Resize].
//
// A Nat is an immutable value; all methods return fresh values.
type Nat struct {
	limbs int
	v     big.Int
}

// NewNat returns a Nat of the given limb width. Accepted types for x are
// string (in any base accepted by the standard library), int, int64, uint64
// and *big.Int. NewNat panics if x is negative or does not fit limbs limbs.
func NewNat(x interface{}, limbs int) Nat {

	v := new(big.Int)

	switch x := x.(type) {
	case string:
		if _, ok := v.SetString(x, 0); !ok {
			panic(fmt.Errorf("cannot NewNat: invalid integer literal %q", x))
		}
	case int:
		v.SetInt64(int64(x))
	case int64:
		v.SetInt64(x)
	case uint64:
		v.SetUint64(x)
	case *big.Int:
		v.Set(x)
	default:
		panic(fmt.Errorf("cannot NewNat: accepted types are string, int, int64, uint64, *big.Int, but is %T", x))
	}

	return NatFromBig(v, limbs)
}

// NatFromBig returns a Nat of the given limb width holding x.
// NatFromBig panics if x is negative or does not fit limbs limbs.
func NatFromBig(x *big.Int, limbs int) (n Nat) {

	if limbs < 1 {
		panic(fmt.Errorf("cannot NatFromBig: limbs=%d < 1", limbs))
	}

	if x.Sign() < 0 {
		panic(fmt.Errorf("cannot NatFromBig: negative value %s", x.String()))
	}

	if x.BitLen() > 64*limbs {
		panic(fmt.Errorf("cannot NatFromBig: value of %d bits exceeds %d limbs", x.BitLen(), limbs))
	}

	n.limbs = limbs
	n.v.Set(x)
	return
}

// Big returns the value of n as a fresh *big.Int.
func (n Nat) Big() *big.Int {
	return new(big.Int).Set(&n.v)
}

// Limbs returns the limb width of n.
func (n Nat) Limbs() int {
	return n.limbs
}

// BitLen returns the length of n in bits.
func (n Nat) BitLen() int {
	return n.v.BitLen()
}

// Resize returns n carried in limbs limbs.
// The operation is value preserving: shrinking below the size of the value
// is a programming error and panics.
func (n Nat) Resize(limbs int) Nat {
	return NatFromBig(&n.v, limbs)
}

// Add returns n + b at the larger of the two operand widths.
// Panics if the sum does not fit that width.
func (n Nat) Add(b Nat) Nat {
	return NatFromBig(new(big.Int).Add(&n.v, &b.v), max(n.limbs, b.limbs))
}

// Sub returns n - b at the larger of the two operand widths.
// Panics if b > n.
func (n Nat) Sub(b Nat) Nat {
	return NatFromBig(new(big.Int).Sub(&n.v, &b.v), max(n.limbs, b.limbs))
}

// Mul returns n * b at the larger of the two operand widths.
// Fitting the product in that width is a precondition on parameter sizing;
// operands must be widened with [Nat.Resize] beforehand when the product can
// exceed it.
func (n Nat) Mul(b Nat) Nat {
	return NatFromBig(new(big.Int).Mul(&n.v, &b.v), max(n.limbs, b.limbs))
}

// Mod returns n mod m, at the width of m.
func (n Nat) Mod(m Nat) Nat {
	return NatFromBig(new(big.Int).Mod(&n.v, &m.v), m.limbs)
}

// Quo returns the integer quotient n / b at the width of n.
func (n Nat) Quo(b Nat) Nat {
	if b.IsZero() {
		panic(fmt.Errorf("cannot Quo: division by zero"))
	}
	return NatFromBig(new(big.Int).Quo(&n.v, &b.v), n.limbs)
}

// GCD returns the greatest common divisor of n and b,
// at the larger of the two operand widths.
func (n Nat) GCD(b Nat) Nat {
	return NatFromBig(new(big.Int).GCD(nil, nil, &n.v, &b.v), max(n.limbs, b.limbs))
}

// ModInverse returns the multiplicative inverse of n modulo m and true when
// gcd(n, m) = 1, and the zero Nat and false otherwise.
func (n Nat) ModInverse(m Nat) (Nat, bool) {
	inv := new(big.Int).ModInverse(&n.v, &m.v)
	if inv == nil {
		return Nat{limbs: m.limbs}, false
	}
	return NatFromBig(inv, m.limbs), true
}

// Cmp compares n and b, returning -1, 0 or 1.
// The comparison is on values; widths are ignored.
func (n Nat) Cmp(b Nat) int {
	return n.v.Cmp(&b.v)
}

// Equal returns true if n and b hold the same value, regardless of width.
func (n Nat) Equal(b Nat) bool {
	return n.v.Cmp(&b.v) == 0
}

// IsZero returns true if n is zero.
func (n Nat) IsZero() bool {
	return n.v.Sign() == 0
}

// Uint64 returns the value of n as an uint64, truncating to the low 64 bits.
func (n Nat) Uint64() uint64 {
	return n.v.Uint64()
}

// String returns the decimal representation of n.
func (n Nat) String() string {
	return n.v.String()
}

// RandNat returns a Nat uniform in [0, m), at the width of m, reading
// randomness from reader. Samples are independent across calls.
func RandNat(reader io.Reader, m Nat) Nat {

	v, err := rand.Int(reader, &m.v)
	if err != nil {
		// Sanity check, this error should not happen: the readers used
		// here never fail.
		panic(fmt.Errorf("rand.Int: %w", err))
	}

	return NatFromBig(v, m.limbs)
}
