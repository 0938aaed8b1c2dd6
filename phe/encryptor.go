package phe

import (
	"github.com/p-adic-fhe/pfhe/hensel"
	"github.com/p-adic-fhe/pfhe/rational"
	"github.com/p-adic-fhe/pfhe/utils/bignum"
	"github.com/p-adic-fhe/pfhe/utils/sampling"
)

// Encryptor is a struct dedicated to encrypting rational plaintexts into
// [phe.Ciphertext]. All randomness is drawn from its [sampling.Source]:
// two Encryptors instantiated with the same parameters and seed produce
// identical ciphertexts, which makes encryption reproducible by recording
// only the seed.
//
// An Encryptor is not safe for concurrent use; see [Encryptor.WithSource].
type Encryptor struct {
	params Parameters
	source *sampling.Source
}

// NewEncryptor instantiates a new Encryptor drawing its randomness from
// source.
func NewEncryptor(params Parameters, source *sampling.Source) *Encryptor {
	return &Encryptor{params: params, source: source}
}

// GetParameters returns the [phe.Parameters] of the receiver.
func (enc Encryptor) GetParameters() *Parameters {
	return &enc.params
}

// WithSource returns an instance of the receiver with a new
// [sampling.Source]. It can be used concurrently with the original
// Encryptor.
func (enc Encryptor) WithSource(source *sampling.Source) *Encryptor {
	return &Encryptor{params: enc.params, source: source}
}

// EncryptNew encrypts a rational plaintext m and returns the result in a new
// [phe.Ciphertext] at modulus g = p1*p2*p3*p4*p5.
//
// The denominator of m must be coprime to g: a shared factor makes the
// embedding of the masked plaintext fall into the zero code (see
// [hensel.FromRational]), in which case the ciphertext carries only noise.
//
// The ciphertext is built as the sum of two terms:
//
//   - the embedding at modulus g of s1*noise + m, where noise is a rational
//     whose image mod p1*p2*p3 encodes (0, s2, s3) by CRT and whose
//     numerator carries p1 as an explicit factor;
//   - the blinding term delta*p4, which lies in the additive coset of p4
//     and vanishes under reduction mod p4.
func (enc *Encryptor) EncryptNew(m rational.Rational) *Ciphertext {

	params := enc.params

	g := params.EncryptionModulus()

	s1 := bignum.RandNat(enc.source, params.P1())
	s2 := bignum.RandNat(enc.source, params.P2())
	s3 := bignum.RandNat(enc.source, params.P3())
	delta := bignum.RandNat(enc.source, params.DeltaMax())

	// encoded zero: 0 mod p1, uniform mod p2 and p3
	hcNoise := params.ThreePrimeCRT(bignum.NewNat(0, params.Limbs()), s2, s3)

	// divide the residue by p1 inside the embedding; the residue is an exact
	// multiple of p1 by construction, so the aligned lift applies
	hcNoiseQ := hensel.FromAlignedRational(
		hcNoise.Modulus(),
		rational.New(hcNoise.Residue().Big(), params.P1().Big()),
	)

	// back to a rational, with the p1 factor restored on the numerator so
	// that later embeddings at modulus g remain well-defined
	rNoise := rational.New(params.P1().Big(), 1).Mul(hcNoiseQ.Rational())

	rTerm := rational.New(s1.Big(), 1).Mul(rNoise).Add(m)

	c0 := hensel.FromRational(g, rTerm)

	// blinding term delta*p4 mod g
	w := 2 * g.Limbs()
	dp4 := hensel.NewCode(g, delta.Resize(w).Mul(params.P4().Resize(w)))

	return &Ciphertext{Code: c0.Add(dp4)}
}
