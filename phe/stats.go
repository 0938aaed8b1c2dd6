package phe

import (
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/p-adic-fhe/pfhe/hensel"
	"github.com/p-adic-fhe/pfhe/utils/bignum"
)

// NoiseStats reports statistics, in log2, on the magnitude |num|*den of the
// masked plaintexts recovered from a batch of ciphertexts by the first
// decryption stage (reduction mod p4 followed by rational reconstruction).
// This magnitude is the quantity that consumes the reconstruction budget of
// p4: decryption is correct only while |num| and den both stay below
// sqrt(p4/2), so a magnitude at or above log2(p4) - 1 means the first stage
// did not recover the masked plaintext.
type NoiseStats struct {
	Min, Max, Mean, Median, Std float64

	// Budget is log2(p4) - 1, the reconstruction budget of the key.
	Budget float64
}

// EvaluateNoise computes the [phe.NoiseStats] of a batch of ciphertexts
// under the given parameters.
func EvaluateNoise(params Parameters, cts []*Ciphertext) (ns NoiseStats, err error) {

	magnitudes := make([]float64, len(cts))

	for i, ct := range cts {
		r := hensel.NewCode(params.P4(), ct.Residue()).Rational()

		v := new(big.Int).Abs(r.Num())
		v.Mul(v, r.Den())

		if v.Sign() == 0 {
			magnitudes[i] = 0
		} else {
			magnitudes[i] = bignum.Log2Int(v)
		}
	}

	if ns.Min, err = stats.Min(magnitudes); err != nil {
		return NoiseStats{}, fmt.Errorf("cannot EvaluateNoise: %w", err)
	}
	if ns.Max, err = stats.Max(magnitudes); err != nil {
		return NoiseStats{}, fmt.Errorf("cannot EvaluateNoise: %w", err)
	}
	if ns.Mean, err = stats.Mean(magnitudes); err != nil {
		return NoiseStats{}, fmt.Errorf("cannot EvaluateNoise: %w", err)
	}
	if ns.Median, err = stats.Median(magnitudes); err != nil {
		return NoiseStats{}, fmt.Errorf("cannot EvaluateNoise: %w", err)
	}
	if ns.Std, err = stats.StandardDeviation(magnitudes); err != nil {
		return NoiseStats{}, fmt.Errorf("cannot EvaluateNoise: %w", err)
	}

	ns.Budget = bignum.Log2Int(params.P4().Big()) - 1

	return ns, nil
}

func (ns NoiseStats) String() string {
	return fmt.Sprintf("noise log2: min=%.2f max=%.2f mean=%.2f med=%.2f std=%.2f (budget=%.2f)",
		ns.Min, ns.Max, ns.Mean, ns.Median, ns.Std, ns.Budget)
}
