package phe

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/p-adic-fhe/pfhe/utils/sampling"
)

// KeyGenerator is a structure that samples fresh scheme parameters, i.e.
// private keys, from a [sampling.Source]. Prime sizes are free, but recall
// that p1 bounds the plaintext space while p4 bounds the magnitude of the
// masked plaintext recovered during decryption: p4 must be chosen large
// enough that log2(p4) comfortably exceeds 2*(log2(p1*p2*p3) + log2(p1) +
// the plaintext magnitude) or decryption fails for some random tapes.
type KeyGenerator struct {
	source *sampling.Source
}

// NewKeyGenerator instantiates a new KeyGenerator drawing its randomness
// from source.
func NewKeyGenerator(source *sampling.Source) *KeyGenerator {
	return &KeyGenerator{source: source}
}

// GenParametersNew samples five distinct odd probable primes with the given
// bit sizes and returns the resulting [phe.Parameters]. It returns an error
// if a bit size is smaller than 2 or if the prime product cannot fit the
// given limb width.
func (kgen *KeyGenerator) GenParametersNew(limbs int, logP [PrimeCount]int) (Parameters, error) {

	var sum int
	for i, bits := range logP {
		if bits < 2 {
			return Parameters{}, fmt.Errorf("cannot GenParametersNew: logP[%d]=%d < 2", i, bits)
		}
		sum += bits
	}

	if sum > 64*limbs {
		return Parameters{}, fmt.Errorf("cannot GenParametersNew: %d-bit prime product cannot fit %d limbs", sum, limbs)
	}

	primes := make([]*big.Int, PrimeCount)

	for i := range primes {
	rejection:
		for {
			p := kgen.genProbablePrime(logP[i])
			for j := 0; j < i; j++ {
				if p.Cmp(primes[j]) == 0 {
					continue rejection
				}
			}
			primes[i] = p
			break
		}
	}

	return NewParameters(limbs, primes[0], primes[1], primes[2], primes[3], primes[4])
}

// GenParametersLiteralNew samples fresh parameters with [KeyGenerator.GenParametersNew]
// and returns their literal representation.
func (kgen *KeyGenerator) GenParametersLiteralNew(limbs int, logP [PrimeCount]int) (ParametersLiteral, error) {
	params, err := kgen.GenParametersNew(limbs, logP)
	if err != nil {
		return ParametersLiteral{}, err
	}
	return params.ParametersLiteral(), nil
}

// genProbablePrime samples an odd probable prime of exactly bits bits by
// rejection.
func (kgen *KeyGenerator) genProbablePrime(bits int) *big.Int {

	half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))

	for {
		p, err := rand.Int(kgen.source, half)
		if err != nil {
			// Sanity check, this error should not happen: the source
			// never fails.
			panic(fmt.Errorf("rand.Int: %w", err))
		}
		p.Add(p, half)    // exactly bits bits
		p.SetBit(p, 0, 1) // odd
		if p.ProbablyPrime(30) {
			return p
		}
	}
}
