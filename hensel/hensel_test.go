package hensel_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p-adic-fhe/pfhe/hensel"
	"github.com/p-adic-fhe/pfhe/rational"
	"github.com/p-adic-fhe/pfhe/utils/bignum"
	"github.com/p-adic-fhe/pfhe/utils/buffer"
)

func TestCode(t *testing.T) {

	t.Run("NewCode", func(t *testing.T) {
		g := bignum.NewNat(37, 1)
		c := hensel.NewCode(g, bignum.NewNat(100, 1))
		require.True(t, c.Residue().Equal(bignum.NewNat(26, 1)))
		require.True(t, c.Modulus().Equal(g))
		require.Panics(t, func() { hensel.NewCode(bignum.NewNat(1, 1), bignum.NewNat(0, 1)) })
	})

	t.Run("WidthMismatch", func(t *testing.T) {
		g := bignum.NewNat(37, 1)
		c := hensel.NewCode(g, bignum.NewNat(100, 4))
		require.Equal(t, 1, c.Residue().Limbs())
		require.True(t, c.Residue().Equal(bignum.NewNat(26, 1)))
	})

	t.Run("Arithmetic", func(t *testing.T) {

		g := bignum.NewNat(37, 1)

		a := hensel.NewCode(g, bignum.NewNat(30, 1))
		b := hensel.NewCode(g, bignum.NewNat(20, 1))

		require.True(t, a.Add(b).Residue().Equal(bignum.NewNat(13, 1)))
		require.True(t, a.Mul(b).Residue().Equal(bignum.NewNat(8, 1))) // 600 mod 37

		other := hensel.NewCode(bignum.NewNat(41, 1), bignum.NewNat(20, 1))
		require.Panics(t, func() { a.Add(other) })
		require.Panics(t, func() { a.Mul(other) })
	})

	t.Run("Inverse", func(t *testing.T) {

		g := bignum.NewNat(37, 1)

		c := hensel.NewCode(g, bignum.NewNat(8, 1))
		inv := c.Inverse()

		require.True(t, inv.Residue().Equal(bignum.NewNat(14, 1)))
		require.True(t, c.Mul(inv).Residue().Equal(bignum.NewNat(1, 1)))

		// 6 is not a unit mod 9
		require.Panics(t, func() {
			hensel.NewCode(bignum.NewNat(9, 1), bignum.NewNat(6, 1)).Inverse()
		})
	})

	t.Run("Zero", func(t *testing.T) {
		g := bignum.NewNat(37, 1)
		z := hensel.Zero(g)
		require.True(t, z.Residue().IsZero())
		c := hensel.NewCode(g, bignum.NewNat(8, 1))
		require.True(t, c.Add(z).Equal(c))
		require.True(t, c.Mul(z).Residue().IsZero())
	})

	t.Run("Serialization", func(t *testing.T) {
		g := bignum.NewNat("618970019642690137449562111", 2)
		in := hensel.NewCode(g, bignum.NewNat("0x1122334455667788", 2))
		out := new(hensel.Code)
		buffer.RequireSerializerCorrect(t, &in, out)
		require.True(t, in.Equal(*out))
	})
}

func TestCRT(t *testing.T) {

	p1 := bignum.NewNat(4919, 1)
	p2 := bignum.NewNat(7, 1)
	p3 := bignum.NewNat(11, 1)

	n1 := bignum.NewNat(38, 1)
	n2 := bignum.NewNat(2, 1)
	n3 := bignum.NewNat(1, 1)

	t.Run("Soundness", func(t *testing.T) {

		a := hensel.NewCode(p1, n1)
		b := hensel.NewCode(p2, n2)

		ab := hensel.CRT(a, b)

		require.True(t, ab.Modulus().Equal(bignum.NewNat(4919*7, 1)))
		requireCongruent(t, ab, p1, n1)
		requireCongruent(t, ab, p2, n2)

		abc := hensel.CRT(ab, hensel.NewCode(p3, n3))

		require.True(t, abc.Modulus().Equal(bignum.NewNat(4919*7*11, 1)))
		requireCongruent(t, abc, p1, n1)
		requireCongruent(t, abc, p2, n2)
		requireCongruent(t, abc, p3, n3)
	})

	t.Run("OrderIndependence", func(t *testing.T) {

		a := hensel.NewCode(p1, n1)
		b := hensel.NewCode(p2, n2)

		// same element of Z/(g1*g2)Z regardless of the operand order
		require.True(t, hensel.CRT(a, b).Residue().Equal(hensel.CRT(b, a).Residue()))
		require.True(t, hensel.CRT(a, b).Modulus().Equal(hensel.CRT(b, a).Modulus()))
	})
}

func TestEmbedding(t *testing.T) {

	g := bignum.NewNat(37, 1)

	// embedding law: the image of num/den is the image of num times the
	// inverse of the image of den
	simpleTester := func(t *testing.T, r rational.Rational, want uint64) {

		hc := hensel.FromRational(g, r)

		idHC := hensel.NewCode(g, bignum.NatFromBig(r.Den(), 1)).Inverse()
		nHC := hensel.NewCode(g, bignum.NatFromBig(r.Num(), 1))

		require.True(t, hc.Modulus().Equal(g))
		require.True(t, hc.Residue().Equal(idHC.Mul(nHC).Residue()))
		require.True(t, hc.Residue().Equal(bignum.NewNat(want, 1)))
	}

	t.Run("PositiveInteger", func(t *testing.T) {
		simpleTester(t, rational.New(6, 1), 6)
	})

	t.Run("IntegerInverse", func(t *testing.T) {
		simpleTester(t, rational.New(1, 8), 14)
	})

	t.Run("GeneralRational", func(t *testing.T) {
		simpleTester(t, rational.New(6, 8), 10)
	})

	t.Run("NegativeNumerator", func(t *testing.T) {
		// -6/1 = 31 (mod 37)
		require.True(t, hensel.FromRational(g, rational.New(-6, 1)).Residue().Equal(bignum.NewNat(31, 1)))
	})

	t.Run("Degenerate", func(t *testing.T) {
		// gcd(g, den) > 1 falls back to the zero code
		require.True(t, hensel.FromRational(g, rational.New(1, 37)).Residue().IsZero())
		require.True(t, hensel.FromRational(g, rational.New(3, 74)).Residue().IsZero())
	})
}

func TestAlignedEmbedding(t *testing.T) {

	g := bignum.NewNat(4919*7*11, 1)

	t.Run("ExactMultiple", func(t *testing.T) {
		// 4919*66 / 4919 = 66
		hc := hensel.FromAlignedRational(g, rational.New(int64(4919*66), 4919))
		require.True(t, hc.Residue().Equal(bignum.NewNat(66, 1)))
	})

	t.Run("NotAligned", func(t *testing.T) {
		require.Panics(t, func() { hensel.FromAlignedRational(g, rational.New(5, 7)) })
	})
}

func TestRationalReconstruction(t *testing.T) {

	g := bignum.NewNat(7919, 1)

	simpleTester := func(t *testing.T, r rational.Rational) {

		hc := hensel.FromRational(g, r)
		have := hc.Rational()

		require.True(t, have.EqualRat(r), "want %s have %s", r.String(), have.String())
		require.Equal(t, 1, have.Den().Sign())

		// deterministic
		require.True(t, hc.Rational().Equal(have))
	}

	t.Run("PositiveInteger", func(t *testing.T) {
		simpleTester(t, rational.New(6, 1))
	})

	t.Run("IntegerInverse", func(t *testing.T) {
		simpleTester(t, rational.New(1, 8))
	})

	t.Run("GeneralRational", func(t *testing.T) {
		simpleTester(t, rational.New(6, 8))
	})

	t.Run("NegativeNumerator", func(t *testing.T) {
		simpleTester(t, rational.New(-6, 8))
	})

	t.Run("Zero", func(t *testing.T) {
		require.True(t, hensel.Zero(g).Rational().Equal(rational.New(0, 1)))
	})

	t.Run("LargeModulus", func(t *testing.T) {
		g := bignum.NewNat("618970019642690137449562111", 2)
		for _, r := range []rational.Rational{
			rational.New("123456789", "987654321"),
			rational.New(-3, 5),
			rational.New(1, 2),
		} {
			hc := hensel.FromRational(g, r)
			require.True(t, hc.Rational().EqualRat(r))
		}
	})
}

func requireCongruent(t *testing.T, c hensel.Code, p, want bignum.Nat) {
	t.Helper()
	require.Equal(t, 0, new(big.Int).Mod(c.Residue().Big(), p.Big()).Cmp(want.Big()))
}
