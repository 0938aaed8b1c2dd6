package phe

import (
	"fmt"

	"github.com/p-adic-fhe/pfhe/hensel"
	"github.com/p-adic-fhe/pfhe/rational"
)

// Evaluator is a struct that holds the necessary elements to perform
// homomorphic operations between ciphertexts and/or plaintexts.
//
// Ciphertext addition and multiplication act directly on the underlying
// Hensel codes at modulus g and correspond to addition and multiplication of
// the plaintexts. The scheme does not bound the number of homomorphic
// operations: each operation grows the magnitude of the masked plaintext,
// and decryption fails once it exceeds the reconstruction bound of p4 (or
// the result exceeds the plaintext bound of p1).
type Evaluator struct {
	params Parameters
}

// NewEvaluator instantiates a new Evaluator.
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// GetParameters returns the [phe.Parameters] of the receiver.
func (eval Evaluator) GetParameters() *Parameters {
	return &eval.params
}

// Add adds op0 to op1 and writes the result on opOut.
func (eval *Evaluator) Add(op0, op1, opOut *Ciphertext) {
	eval.checkModulus(op0, op1)
	opOut.Code = op0.Code.Add(op1.Code)
}

// AddNew adds op0 to op1 and returns the result in a new ciphertext.
func (eval *Evaluator) AddNew(op0, op1 *Ciphertext) (opOut *Ciphertext) {
	opOut = NewCiphertext(eval.params)
	eval.Add(op0, op1, opOut)
	return
}

// Mul multiplies op0 with op1 and writes the result on opOut.
func (eval *Evaluator) Mul(op0, op1, opOut *Ciphertext) {
	eval.checkModulus(op0, op1)
	opOut.Code = op0.Code.Mul(op1.Code)
}

// MulNew multiplies op0 with op1 and returns the result in a new ciphertext.
func (eval *Evaluator) MulNew(op0, op1 *Ciphertext) (opOut *Ciphertext) {
	opOut = NewCiphertext(eval.params)
	eval.Mul(op0, op1, opOut)
	return
}

// AddRationalNew adds the plaintext rational op1 to op0 and returns the
// result in a new ciphertext. The denominator of op1 must be coprime to the
// encryption modulus.
func (eval *Evaluator) AddRationalNew(op0 *Ciphertext, op1 rational.Rational) *Ciphertext {
	return &Ciphertext{Code: op0.Code.Add(hensel.FromRational(eval.params.EncryptionModulus(), op1))}
}

// MulRationalNew multiplies op0 with the plaintext rational op1 and returns
// the result in a new ciphertext. The denominator of op1 must be coprime to
// the encryption modulus.
func (eval *Evaluator) MulRationalNew(op0 *Ciphertext, op1 rational.Rational) *Ciphertext {
	return &Ciphertext{Code: op0.Code.Mul(hensel.FromRational(eval.params.EncryptionModulus(), op1))}
}

func (eval *Evaluator) checkModulus(cts ...*Ciphertext) {
	for _, ct := range cts {
		if !ct.Modulus().Equal(eval.params.EncryptionModulus()) {
			// Sanity check: ciphertexts from another key cannot be mixed.
			panic(fmt.Errorf("ciphertext modulus does not match the evaluator encryption modulus"))
		}
	}
}
