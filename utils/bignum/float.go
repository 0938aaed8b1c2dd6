package bignum

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat allocates a new *big.Float of the given precision and sets it to x.
func NewFloat(x float64, prec uint) (y *big.Float) {
	y = new(big.Float)
	y.SetPrec(prec)
	y.SetFloat64(x)
	return
}

// Log returns ln(x) at the precision of x.
func Log(x *big.Float) (y *big.Float) {
	return bigfloat.Log(x)
}

// Log2 returns log2(x) at the precision of x.
func Log2(x *big.Float) (y *big.Float) {
	ln2 := bigfloat.Log(NewFloat(2, x.Prec()))
	return new(big.Float).SetPrec(x.Prec()).Quo(bigfloat.Log(x), ln2)
}

// Log2Int returns log2(x) as a float64, for a positive integer x.
func Log2Int(x *big.Int) float64 {
	if x.Sign() <= 0 {
		return math.Inf(-1)
	}
	f, _ := Log2(new(big.Float).SetPrec(128).SetInt(x)).Float64()
	return f
}
