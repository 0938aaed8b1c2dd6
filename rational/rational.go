// Package rational implements arithmetic over the rational numbers, with
// numerators and denominators carried as arbitrary-precision integers.
package rational

import (
	"fmt"
	"math/big"
)

// Rational is a rational number num/den. The denominator is always kept
// positive; the sign of the value is carried by the numerator. Rationals are
// not reduced to lowest terms: two Rationals are Equal only if they hold the
// same (num, den) pair, and equal as elements of the rationals if they
// cross-multiply to the same value (see [Rational.EqualRat]).
//
// A Rational is an immutable value; all methods return fresh values.
type Rational struct {
	num *big.Int
	den *big.Int
}

// New returns the rational num/den. Accepted types for num and den are
// string (in any base accepted by the standard library), int, int64 and
// *big.Int. New panics if den is zero.
func New(num, den interface{}) Rational {
	return newRational(toBig(num), toBig(den))
}

// NewInt returns the rational x/1.
func NewInt(x interface{}) Rational {
	return New(x, 1)
}

func toBig(x interface{}) (v *big.Int) {

	v = new(big.Int)

	switch x := x.(type) {
	case string:
		if _, ok := v.SetString(x, 0); !ok {
			panic(fmt.Errorf("cannot toBig: invalid integer literal %q", x))
		}
	case int:
		v.SetInt64(int64(x))
	case int64:
		v.SetInt64(x)
	case *big.Int:
		v.Set(x)
	default:
		panic(fmt.Errorf("cannot toBig: accepted types are string, int, int64, *big.Int, but is %T", x))
	}

	return
}

func newRational(num, den *big.Int) (r Rational) {

	if den.Sign() == 0 {
		panic(fmt.Errorf("cannot newRational: zero denominator"))
	}

	if den.Sign() < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}

	return Rational{num: num, den: den}
}

// Num returns the numerator of r as a fresh *big.Int.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.num)
}

// Den returns the denominator of r as a fresh *big.Int.
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(r.den)
}

// Add returns r + b, with denominator r.den * b.den.
func (r Rational) Add(b Rational) Rational {
	num := new(big.Int).Mul(r.num, b.den)
	num.Add(num, new(big.Int).Mul(b.num, r.den))
	return newRational(num, new(big.Int).Mul(r.den, b.den))
}

// Mul returns r * b, with denominator r.den * b.den.
func (r Rational) Mul(b Rational) Rational {
	return newRational(new(big.Int).Mul(r.num, b.num), new(big.Int).Mul(r.den, b.den))
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return newRational(new(big.Int).Neg(r.num), new(big.Int).Set(r.den))
}

// IsZero returns true if r is zero.
func (r Rational) IsZero() bool {
	return r.num.Sign() == 0
}

// Equal returns true if r and b hold the same (num, den) pair.
func (r Rational) Equal(b Rational) bool {
	return r.num.Cmp(b.num) == 0 && r.den.Cmp(b.den) == 0
}

// EqualRat returns true if r and b are equal as rational numbers,
// i.e. if r.num * b.den == b.num * r.den.
func (r Rational) EqualRat(b Rational) bool {
	return new(big.Int).Mul(r.num, b.den).Cmp(new(big.Int).Mul(b.num, r.den)) == 0
}

// String returns the representation of r as "num/den".
func (r Rational) String() string {
	return fmt.Sprintf("%s/%s", r.num.String(), r.den.String())
}
