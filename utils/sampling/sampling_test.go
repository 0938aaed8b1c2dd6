package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {

	t.Run("Determinism", func(t *testing.T) {

		seed := Seed{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07}

		a := NewSource(seed)
		b := NewSource(seed)

		bufA := make([]byte, 512)
		bufB := make([]byte, 512)

		a.Read(bufA)
		b.Read(bufB)

		require.Equal(t, bufA, bufB)
		require.Equal(t, a.Uint64(), b.Uint64())
	})

	t.Run("Reset", func(t *testing.T) {

		s := NewSource(NewSeed())

		buf0 := make([]byte, 512)
		buf1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			s.Read(buf0)
		}

		s.Reset()
		s.Read(buf1)

		s.Reset()
		s.Read(buf0)

		require.Equal(t, buf0, buf1)
	})

	t.Run("ChildSeeds", func(t *testing.T) {

		s := NewSource(NewSeed())

		require.NotEqual(t, s.NewSeed(), s.NewSeed())
	})

	t.Run("FreshSeeds", func(t *testing.T) {
		require.NotEqual(t, NewSeed(), NewSeed())
	})
}
