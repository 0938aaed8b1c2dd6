// Package sampling implements a deterministic, cryptographically secure
// pseudo-random number generator seeded by a 32-byte seed.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Seed is a 32-byte seed from which a [Source] derives its stream.
type Seed [32]byte

// NewSeed returns a fresh Seed sampled from crypto/rand.
func NewSeed() (seed Seed) {
	if _, err := rand.Read(seed[:]); err != nil {
		panic(fmt.Errorf("crypto/rand: %w", err))
	}
	return
}

// Source is a deterministic random byte stream expanded from a [Seed] with
// the BLAKE2b XOF. Two Sources built from the same Seed produce identical
// streams, which makes any randomized operation reproducible by recording
// only the seed.
//
// A Source is not safe for concurrent use; derive one Source per goroutine
// with [Source.NewSeed].
type Source struct {
	seed Seed
	xof  blake2b.XOF
}

// NewSource instantiates a new Source from a Seed.
func NewSource(seed Seed) (s *Source) {
	s = &Source{seed: seed}
	s.Reset()
	return
}

// Seed returns the seed of the receiver.
func (s *Source) Seed() Seed {
	return s.seed
}

// Reset restarts the stream of the receiver from its seed.
func (s *Source) Reset() {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, s.seed[:])
	if err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("blake2b.NewXOF: %w", err))
	}
	s.xof = xof
}

// Read fills p with bytes from the stream. It implements io.Reader and
// never returns an error.
func (s *Source) Read(p []byte) (int, error) {
	if _, err := s.xof.Read(p); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("blake2b XOF read: %w", err))
	}
	return len(p), nil
}

// Uint64 returns the next 8 bytes of the stream as an uint64.
func (s *Source) Uint64() uint64 {
	var buf [8]byte
	s.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// NewSeed derives a fresh Seed from the stream of the receiver, to
// instantiate child Sources that can be used concurrently.
func (s *Source) NewSeed() (seed Seed) {
	s.Read(seed[:])
	return
}
