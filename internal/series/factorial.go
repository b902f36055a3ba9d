package series

import (
	"math/big"
)

// factorialTable holds n! as float64 for every argument the evaluator can
// reach (up to 2*MaxTerms-1).
var factorialTable = buildFactorialTable(2 * MaxTerms)

// Factorial returns n! exactly.
func Factorial(n uint) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}

// FactorialFloat returns n! rounded to the nearest float64. Arguments above
// 170 overflow to +Inf.
func FactorialFloat(n uint) float64 {
	if int(n) < len(factorialTable) {
		return factorialTable[n]
	}
	f, _ := new(big.Float).SetInt(Factorial(n)).Float64()
	return f
}

func buildFactorialTable(size int) []float64 {
	table := make([]float64, size)
	acc := big.NewInt(1)
	for n := 0; n < size; n++ {
		if n > 1 {
			acc.Mul(acc, big.NewInt(int64(n)))
		}
		table[n], _ = new(big.Float).SetInt(acc).Float64()
	}
	return table
}
