package phe

import "github.com/p-adic-fhe/pfhe/utils/structs"

var (
	// ExampleParametersInsecureSmall is an insecure parameter set with small
	// inner primes and a Mersenne prime 2^89-1 as blinding prime, used for
	// the sole purpose of fast testing and examples. The plaintext space is
	// bounded by |num|, den < sqrt(4919/2), i.e. both at most 49.
	ExampleParametersInsecureSmall = ParametersLiteral{
		Limbs: 2,
		P: structs.Vector[string]{
			"4919",
			"7",
			"11",
			"618970019642690137449562111", // 2^89 - 1
			"17",
		},
	}

	// ExampleParametersInsecureMedium is an insecure parameter set with a
	// larger plaintext bound (|num|, den at most 63) and the Mersenne prime
	// 2^521-1 as blinding prime, leaving enough reconstruction budget for
	// several homomorphic multiplications.
	ExampleParametersInsecureMedium = ParametersLiteral{
		Limbs: 9,
		P: structs.Vector[string]{
			"8191", // 2^13 - 1
			"7",
			"11",
			"6864797660130609714981900799081393217269435300143305409394463459185543183397656052122559640661454554977296311391480858037121987999716643812574028291115057151", // 2^521 - 1
			"17",
		},
	}
)
