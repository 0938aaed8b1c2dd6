// Package hensel implements Hensel codes: rational numbers represented as
// residues modulo a prime or a product of primes, with ring arithmetic,
// modular inversion, Chinese-Remainder lifting and rational reconstruction.
package hensel

import (
	"fmt"
	"io"
	"math/big"

	"github.com/p-adic-fhe/pfhe/utils/bignum"
	"github.com/p-adic-fhe/pfhe/utils/buffer"
)

// Code is an element of Z/gZ stored as the pair (modulus g, residue n) with
// 0 <= n < g. The modulus is immutable after construction and arithmetic
// between two Codes requires identical moduli.
//
// A Code is an immutable value; all operations return fresh values.
type Code struct {
	g bignum.Nat
	n bignum.Nat
}

// NewCode returns the element of Z/gZ with residue n mod g. If n is carried
// at a different limb width than g, it is resized to the width of g.
// NewCode panics if g < 2.
func NewCode(g, n bignum.Nat) Code {

	if g.BitLen() < 2 {
		panic(fmt.Errorf("cannot NewCode: modulus %s < 2", g.String()))
	}

	return Code{g: g, n: n.Mod(g)}
}

// Zero returns the zero element of Z/gZ.
func Zero(g bignum.Nat) Code {
	return NewCode(g, bignum.NewNat(0, g.Limbs()))
}

// Modulus returns the modulus g of c.
func (c Code) Modulus() bignum.Nat {
	return c.g
}

// Residue returns the canonical residue of c, in [0, g).
func (c Code) Residue() bignum.Nat {
	return c.n
}

// Add returns c + b in Z/gZ.
// The two operands must have identical moduli.
func (c Code) Add(b Code) Code {

	if !c.g.Equal(b.g) {
		panic(fmt.Errorf("cannot Add: mismatched moduli %s and %s", c.g.String(), b.g.String()))
	}

	w := c.g.Limbs() + 1
	return NewCode(c.g, c.n.Resize(w).Add(b.n.Resize(w)).Mod(c.g))
}

// Mul returns c * b in Z/gZ.
// The two operands must have identical moduli.
func (c Code) Mul(b Code) Code {

	if !c.g.Equal(b.g) {
		panic(fmt.Errorf("cannot Mul: mismatched moduli %s and %s", c.g.String(), b.g.String()))
	}

	w := 2 * c.g.Limbs()
	return NewCode(c.g, c.n.Resize(w).Mul(b.n.Resize(w)).Mod(c.g))
}

// Inverse returns the element c' with c * c' = 1 in Z/gZ. The inverse exists
// if and only if gcd(n, g) = 1; calling Inverse on a non-invertible element
// is a programming error and panics. Callers for which non-invertibility is
// a reachable state must guard with a gcd check beforehand, as the rational
// embedding does.
func (c Code) Inverse() Code {

	inv, ok := c.n.ModInverse(c.g)
	if !ok {
		panic(fmt.Errorf("cannot Inverse: residue %s is not a unit mod %s", c.n.String(), c.g.String()))
	}

	return Code{g: c.g, n: inv}
}

// Equal returns true if c and b have the same modulus and the same residue.
func (c Code) Equal(b Code) bool {
	return c.g.Equal(b.g) && c.n.Equal(b.n)
}

// String returns the representation of c as "n (mod g)".
func (c Code) String() string {
	return fmt.Sprintf("%s (mod %s)", c.n.String(), c.g.String())
}

// BinarySize returns the serialized size of the object in bytes.
func (c Code) BinarySize() int {
	return 8 + 2*8*c.g.Limbs()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (c Code) WriteTo(w io.Writer) (n int64, err error) {

	var inc int64

	if n, err = buffer.WriteAsUint64(w, c.g.Limbs()); err != nil {
		return n, err
	}

	size := 8 * c.g.Limbs()

	if inc, err = buffer.Write(w, c.g.Big().FillBytes(make([]byte, size))); err != nil {
		return n + inc, err
	}
	n += inc

	if inc, err = buffer.Write(w, c.n.Big().FillBytes(make([]byte, size))); err != nil {
		return n + inc, err
	}
	n += inc

	return n, buffer.CheckFlushed(n, c.BinarySize())
}

// ReadFrom reads the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (c *Code) ReadFrom(r io.Reader) (n int64, err error) {

	var limbs int
	if n, err = buffer.ReadAsUint64(r, &limbs); err != nil {
		return n, err
	}

	if limbs < 1 {
		return n, fmt.Errorf("cannot ReadFrom: invalid limb count %d", limbs)
	}

	var inc int64

	buf := make([]byte, 8*limbs)

	if inc, err = buffer.Read(r, buf); err != nil {
		return n + inc, err
	}
	n += inc

	g := bignum.NatFromBig(new(big.Int).SetBytes(buf), limbs)

	if inc, err = buffer.Read(r, buf); err != nil {
		return n + inc, err
	}
	n += inc

	*c = NewCode(g, bignum.NatFromBig(new(big.Int).SetBytes(buf), limbs))

	return n, nil
}
