package math

import "gonum.org/v1/gonum/stat"

func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}
