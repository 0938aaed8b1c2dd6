// Package phe implements a partially homomorphic encryption scheme over the
// rational numbers, built on p-adic Hensel codes and a five-prime
// Chinese-Remainder construction. The private key is a set of five distinct
// odd primes p1...p5; ciphertexts are residues modulo g = p1*p2*p3*p4*p5
// carrying an encoded rational plaintext plus algebraically structured noise.
package phe

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/google/go-cmp/cmp"
	"github.com/p-adic-fhe/pfhe/hensel"
	"github.com/p-adic-fhe/pfhe/utils/bignum"
	"github.com/p-adic-fhe/pfhe/utils/buffer"
	"github.com/p-adic-fhe/pfhe/utils/structs"
)

// PrimeCount is the number of primes of a key.
const PrimeCount = 5

// Parameters holds the five private primes of the scheme. Its fields are
// private and immutable: a Parameters value is also the private key, and
// must be constructed once from a trusted source. See [ParametersLiteral]
// for user-specified parameters.
type Parameters struct {
	limbs  int
	p      [PrimeCount]bignum.Nat
	g      bignum.Nat
	dmax   bignum.Nat
	pubmod bignum.Nat
}

// ParametersLiteral is a literal representation of scheme parameters. It has
// public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The NewParametersFromLiteral function is used
// to generate the actual checked parameters from the literal representation.
//
// Limbs is the 64-bit limb width of the residue ring; the product of the
// five primes must fit it. P lists the five primes as strings in any base
// accepted by the standard library (decimal, 0x..., 0b...).
type ParametersLiteral struct {
	Limbs int
	P     structs.Vector[string]
}

// NewParameters instantiates a set of scheme parameters from the limb width
// and the five primes. It returns the empty Parameters{} and a non-nil error
// if the primes are not five pairwise-distinct odd probable primes whose
// product fits the given width.
func NewParameters(limbs int, p1, p2, p3, p4, p5 *big.Int) (params Parameters, err error) {

	if limbs < 1 {
		return Parameters{}, fmt.Errorf("invalid parameters: limbs=%d < 1", limbs)
	}

	primes := [PrimeCount]*big.Int{p1, p2, p3, p4, p5}

	g := new(big.Int).SetInt64(1)

	for i, p := range primes {

		if p.BitLen() < 2 || p.Bit(0) == 0 {
			return Parameters{}, fmt.Errorf("invalid parameters: p%d=%s is not an odd prime", i+1, p.String())
		}

		if !p.ProbablyPrime(30) {
			return Parameters{}, fmt.Errorf("invalid parameters: p%d=%s is not prime", i+1, p.String())
		}

		for j := 0; j < i; j++ {
			if p.Cmp(primes[j]) == 0 {
				return Parameters{}, fmt.Errorf("invalid parameters: p%d = p%d = %s", i+1, j+1, p.String())
			}
		}

		g.Mul(g, p)
	}

	if g.BitLen() > 64*limbs {
		return Parameters{}, fmt.Errorf("invalid parameters: prime product of %d bits exceeds %d limbs", g.BitLen(), limbs)
	}

	params = Parameters{limbs: limbs}

	for i, p := range primes {
		params.p[i] = bignum.NatFromBig(p, limbs)
	}

	params.g = bignum.NatFromBig(g, limbs)
	params.dmax = bignum.NatFromBig(new(big.Int).Quo(g, p4), limbs)
	params.pubmod = bignum.NatFromBig(new(big.Int).Quo(g, p1), limbs)

	return params, nil
}

// NewParametersFromLiteral instantiates a set of scheme parameters from a
// [ParametersLiteral] specification. It returns the empty Parameters{} and a
// non-nil error if the specified parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {

	if len(pl.P) != PrimeCount {
		return Parameters{}, fmt.Errorf("invalid parameters: %d primes provided, expected %d", len(pl.P), PrimeCount)
	}

	primes := make([]*big.Int, PrimeCount)

	for i := range pl.P {
		p, ok := new(big.Int).SetString(pl.P[i], 0)
		if !ok {
			return Parameters{}, fmt.Errorf("invalid parameters: cannot parse p%d=%q", i+1, pl.P[i])
		}
		primes[i] = p
	}

	return NewParameters(pl.Limbs, primes[0], primes[1], primes[2], primes[3], primes[4])
}

// ParametersLiteral returns the [ParametersLiteral] of the receiver.
func (p Parameters) ParametersLiteral() ParametersLiteral {

	P := make(structs.Vector[string], PrimeCount)
	for i := range p.p {
		P[i] = p.p[i].String()
	}

	return ParametersLiteral{Limbs: p.limbs, P: P}
}

// Limbs returns the 64-bit limb width of the residue ring.
func (p Parameters) Limbs() int {
	return p.limbs
}

// P1 returns the first prime of the key, which bounds the plaintext space:
// decryption recovers every rational num/den with |num| and den both below
// sqrt(p1/2).
func (p Parameters) P1() bignum.Nat { return p.p[0] }

// P2 returns the second prime of the key.
func (p Parameters) P2() bignum.Nat { return p.p[1] }

// P3 returns the third prime of the key.
func (p Parameters) P3() bignum.Nat { return p.p[2] }

// P4 returns the fourth prime of the key, which carries the additive
// blinding coset.
func (p Parameters) P4() bignum.Nat { return p.p[3] }

// P5 returns the fifth prime of the key.
func (p Parameters) P5() bignum.Nat { return p.p[4] }

// EncryptionModulus returns g = p1*p2*p3*p4*p5, the ciphertext modulus used
// by encryption, decryption and the homomorphic operations.
func (p Parameters) EncryptionModulus() bignum.Nat {
	return p.g
}

// PublicModulus returns p2*p3*p4*p5, the public-key surface as the reference
// construction defines it. Note that this product omits p1 and is therefore
// not the ciphertext modulus: every operation of this package works modulo
// [Parameters.EncryptionModulus]. The definition is kept verbatim from the
// reference construction; both surfaces are exposed so that callers never
// have to guess which one an operation uses.
func (p Parameters) PublicModulus() bignum.Nat {
	return p.pubmod
}

// DeltaMax returns p1*p2*p3*p5, the exclusive upper bound of the blinding
// factor delta. The product omits p4, so that delta*p4 ranges over the
// additive coset of p4 within Z/gZ.
func (p Parameters) DeltaMax() bignum.Nat {
	return p.dmax
}

// LogEncryptionModulus returns log2(g).
func (p Parameters) LogEncryptionModulus() float64 {
	return bignum.Log2Int(p.g.Big())
}

// ThreePrimeCRT returns the Hensel code at modulus p1*p2*p3 whose residue n
// satisfies n = n1 (mod p1), n = n2 (mod p2) and n = n3 (mod p3).
func (p Parameters) ThreePrimeCRT(n1, n2, n3 bignum.Nat) hensel.Code {
	hc1 := hensel.NewCode(p.p[0], n1)
	hc2 := hensel.NewCode(p.p[1], n2)
	hc3 := hensel.NewCode(p.p[2], n3)
	return hensel.CRT(hensel.CRT(hc1, hc2), hc3)
}

// Equal returns true if the receiver and the operand hold identical
// parameters.
func (p Parameters) Equal(other *Parameters) (res bool) {
	res = p.limbs == other.limbs
	res = res && cmp.Equal(p.ParametersLiteral().P, other.ParametersLiteral().P)
	return
}

// MarshalJSON implements the json.Marshaler interface, by serializing the
// [ParametersLiteral] of the receiver.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var pl ParametersLiteral
	if err = json.Unmarshal(data, &pl); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(pl)
	return err
}

// BinarySize returns the serialized size of the object in bytes.
func (p Parameters) BinarySize() int {
	return 8 + PrimeCount*8*p.limbs
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (p Parameters) WriteTo(w io.Writer) (n int64, err error) {

	var inc int64

	if n, err = buffer.WriteAsUint64(w, p.limbs); err != nil {
		return n, err
	}

	size := 8 * p.limbs

	for i := range p.p {
		if inc, err = buffer.Write(w, p.p[i].Big().FillBytes(make([]byte, size))); err != nil {
			return n + inc, err
		}
		n += inc
	}

	return n, buffer.CheckFlushed(n, p.BinarySize())
}

// ReadFrom reads the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (p *Parameters) ReadFrom(r io.Reader) (n int64, err error) {

	var limbs int
	if n, err = buffer.ReadAsUint64(r, &limbs); err != nil {
		return n, err
	}

	if limbs < 1 {
		return n, fmt.Errorf("cannot ReadFrom: invalid limb count %d", limbs)
	}

	var inc int64

	primes := make([]*big.Int, PrimeCount)
	buf := make([]byte, 8*limbs)

	for i := range primes {
		if inc, err = buffer.Read(r, buf); err != nil {
			return n + inc, err
		}
		n += inc
		primes[i] = new(big.Int).SetBytes(buf)
	}

	*p, err = NewParameters(limbs, primes[0], primes[1], primes[2], primes[3], primes[4])

	return n, err
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (p Parameters) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	if _, err = p.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return err
}
