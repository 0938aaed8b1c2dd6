package hensel

import (
	"fmt"
	"math/big"

	"github.com/p-adic-fhe/pfhe/rational"
	"github.com/p-adic-fhe/pfhe/utils/bignum"
)

// FromRational embeds the rational r = num/den into Z/gZ as
// (num mod g) * (den^-1 mod g) mod g.
//
// The embedding is only meaningful when den is a unit mod g: if
// gcd(g, den) != 1 the defined fallback is the zero code, not an error.
func FromRational(g bignum.Nat, r rational.Rational) Code {

	den := r.Den()

	if new(big.Int).GCD(nil, nil, g.Big(), den).Cmp(oneInt) != 0 {
		return Zero(g)
	}

	w := g.Limbs()

	num := bignum.NatFromBig(new(big.Int).Mod(r.Num(), g.Big()), w)
	inv, _ := bignum.NatFromBig(new(big.Int).Mod(den, g.Big()), w).ModInverse(g)

	return NewCode(g, num.Resize(2*w).Mul(inv.Resize(2*w)).Mod(g))
}

// FromAlignedRational embeds a rational whose numerator is an exact multiple
// of its denominator into Z/gZ, by integer-dividing the numerator first and
// reducing the quotient mod g. This is the canonical lift for rationals whose
// denominator divides both the numerator and the modulus, for which the
// generic embedding of [FromRational] would fall into the zero fallback.
//
// FromAlignedRational panics if the numerator is not an exact multiple of
// the denominator.
func FromAlignedRational(g bignum.Nat, r rational.Rational) Code {

	num, den := r.Num(), r.Den()

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 {
		panic(fmt.Errorf("cannot FromAlignedRational: %s is not an exact multiple of %s", num.String(), den.String()))
	}

	return NewCode(g, bignum.NatFromBig(new(big.Int).Mod(q, g.Big()), g.Limbs()))
}

// Rational recovers from c = (g, n) a rational a/b with small |a|, b such
// that a = n*b (mod g), via the extended Euclidean algorithm on (g, n)
// stopped at the first remainder r with r^2 < g/2. The denominator is
// normalized positive.
//
// The reconstruction is deterministic for any (g, n). It is the inverse of
// [FromRational] for every rational num/den with 2*num^2 < g, 2*den^2 < g
// and gcd(g, den) = 1, i.e. |num| and den both below sqrt(g/2). A rational
// with |num|*den < g/2 but a larger numerator or denominator is not
// recovered. Outside that range the result is deterministic but not
// meaningful, and detection is the caller's responsibility.
func (c Code) Rational() rational.Rational {

	g := c.g.Big()
	n := c.n.Big()

	r0, r1 := new(big.Int).Set(g), new(big.Int).Set(n)
	t0, t1 := new(big.Int), new(big.Int).SetInt64(1)

	q, tmp := new(big.Int), new(big.Int)

	// stop at the first remainder with 2*r1^2 < g
	for tmp.Mul(r1, r1).Lsh(tmp, 1).Cmp(g) >= 0 {
		q.Quo(r0, r1)

		r0.Sub(r0, tmp.Mul(q, r1))
		r0, r1 = r1, r0

		t0.Sub(t0, tmp.Mul(q, t1))
		t0, t1 = t1, t0
	}

	if t1.Sign() < 0 {
		return rational.New(r1.Neg(r1), t1.Neg(t1))
	}

	return rational.New(r1, t1)
}

var oneInt = big.NewInt(1)
