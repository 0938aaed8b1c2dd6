package phe

import (
	"github.com/p-adic-fhe/pfhe/hensel"
	"github.com/p-adic-fhe/pfhe/rational"
)

// Decryptor is a struct dedicated to decrypting [phe.Ciphertext] into
// rational plaintexts. It stores the private parameters.
type Decryptor struct {
	params Parameters
}

// NewDecryptor instantiates a new Decryptor.
func NewDecryptor(params Parameters) *Decryptor {
	return &Decryptor{params: params}
}

// GetParameters returns the [phe.Parameters] of the receiver.
func (d Decryptor) GetParameters() *Parameters {
	return &d.params
}

// DecryptNew decrypts a ciphertext and returns the plaintext rational.
//
// Decryption peels the noise in two stages. The first reduces the ciphertext
// residue mod p4 and reconstructs a rational: the delta*p4 blinding vanishes
// because delta*p4 = 0 (mod p4), and the reconstructed rational is the exact
// masked plaintext s1*noise + m whenever its magnitude is within the
// reconstruction bound of p4. The second stage re-embeds that rational at
// modulus p1 and reconstructs again: the noise numerator carries p1 as a
// factor and vanishes mod p1, and the reconstruction enforces the plaintext
// range bound: |num| and den both below sqrt(p1/2).
//
// The result equals m in the rationals for every plaintext within the range
// bound; outside the bound it is deterministic but not meaningful.
func (d *Decryptor) DecryptNew(ct *Ciphertext) rational.Rational {

	hcP4 := hensel.NewCode(d.params.P4(), ct.Residue())

	rP4 := hcP4.Rational()

	return hensel.FromRational(d.params.P1(), rP4).Rational()
}
