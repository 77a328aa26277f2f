package utils

import "math"

// Round1 rounds x to one decimal place, half away from zero.
// All published ratings and scores carry one decimal.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// MinMax returns the smallest and largest value in xs.
// ok is false when xs is empty.
func MinMax(xs []float64) (min, max float64, ok bool) {
	if len(xs) == 0 {
		return 0, 0, false
	}
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max, true
}
