package phe

import (
	"github.com/p-adic-fhe/pfhe/hensel"
	"github.com/p-adic-fhe/pfhe/utils/buffer"
)

// Ciphertext is an encryption of a rational plaintext, stored as a Hensel
// code at modulus g = p1*p2*p3*p4*p5.
type Ciphertext struct {
	hensel.Code
}

// NewCiphertext returns a new Ciphertext holding the zero code at the
// encryption modulus of params.
func NewCiphertext(params Parameters) *Ciphertext {
	return &Ciphertext{Code: hensel.Zero(params.EncryptionModulus())}
}

// Clone returns a copy of the receiver.
func (ct *Ciphertext) Clone() *Ciphertext {
	return &Ciphertext{Code: ct.Code}
}

// Equal returns true if the receiver and the operand hold the same code.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.Code.Equal(other.Code)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (ct Ciphertext) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(ct.BinarySize())
	if _, err = ct.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (ct *Ciphertext) UnmarshalBinary(data []byte) (err error) {
	_, err = ct.ReadFrom(buffer.NewBuffer(data))
	return err
}
