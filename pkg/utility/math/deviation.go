package math

import (
	gomath "math"

	"gonum.org/v1/gonum/stat"
)

// StandardDeviation is the population standard deviation of returns.
func StandardDeviation(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stat.PopStdDev(returns, nil)
}

// DownsideDeviation squares only the returns below zero but divides by the total
// number of returns.
func DownsideDeviation(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	var sum float64
	for _, r := range returns {
		if r < 0 {
			sum += r * r
		}
	}
	return gomath.Sqrt(sum / float64(len(returns)))
}

// Returns converts adjacent values into simple period returns. Pairs with a
// non-positive base are skipped.
func Returns(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] > 0 {
			returns = append(returns, (values[i]-values[i-1])/values[i-1])
		}
	}
	return returns
}
