package finder

import "testing"

func TestBuildPriceRatings(t *testing.T) {
	// Candidate prices 780/850/920: cheapest rates 9.9, dearest 1.0, the
	// midpoint lands halfway down the scale.
	m := BuildPriceRatings([]float64{780, 850, 920})

	if got := m.Rating(780, 0); got != 9.9 {
		t.Errorf("rating(780) = %v, want 9.9", got)
	}
	if got := m.Rating(920, 0); got != 1.0 {
		t.Errorf("rating(920) = %v, want 1.0", got)
	}
	if got := m.Rating(850, 0); got != 5.5 {
		t.Errorf("rating(850) = %v, want 5.5", got)
	}
}

func TestBuildPriceRatings_Monotonic(t *testing.T) {
	prices := []float64{312.5, 450, 518, 640.75, 999, 1200, 1200.5}
	m := BuildPriceRatings(prices)

	// Higher raw price never rates above a lower one.
	for i := 1; i < len(prices); i++ {
		lo := m.Rating(prices[i-1], -1)
		hi := m.Rating(prices[i], -1)
		if hi > lo {
			t.Errorf("rating(%v)=%v > rating(%v)=%v; price ratings must be non-increasing",
				prices[i], hi, prices[i-1], lo)
		}
	}
}

func TestBuildValueRatings_Monotonic(t *testing.T) {
	values := []float64{100, 250, 250, 400, 1000}
	m := BuildValueRatings(values)

	for i := 1; i < len(values); i++ {
		lo := m.Rating(values[i-1], -1)
		hi := m.Rating(values[i], -1)
		if hi < lo {
			t.Errorf("rating(%v)=%v < rating(%v)=%v; value ratings must be non-decreasing",
				values[i], hi, values[i-1], lo)
		}
	}
	if got := m.Rating(100, 0); got != 1.0 {
		t.Errorf("rating(min) = %v, want 1.0", got)
	}
	if got := m.Rating(1000, 0); got != 9.9 {
		t.Errorf("rating(max) = %v, want 9.9", got)
	}
}

func TestBuildRatings_SinglePoint(t *testing.T) {
	// When the whole candidate set sits at one point, both variants award
	// the top of the scale.
	price := BuildPriceRatings([]float64{600, 600, 600})
	if got := price.Rating(600, 0); got != 9.9 {
		t.Errorf("single-point price rating = %v, want 9.9", got)
	}

	value := BuildValueRatings([]float64{300, 300})
	if got := value.Rating(300, 0); got != 9.9 {
		t.Errorf("single-point value rating = %v, want 9.9", got)
	}
}

func TestBuildRatings_InvalidValuesSkipped(t *testing.T) {
	m := BuildPriceRatings([]float64{-50, 0, 780, 920})
	if len(m) != 2 {
		t.Errorf("map has %d entries, want 2 (non-positive values skipped)", len(m))
	}
	if _, ok := m[0]; ok {
		t.Error("zero must not appear in a price rating map")
	}
}

func TestBuildRatings_Degenerate(t *testing.T) {
	for _, input := range [][]float64{nil, {}, {-1, 0}} {
		if m := BuildPriceRatings(input); len(m) != 0 {
			t.Errorf("BuildPriceRatings(%v) = %v, want empty map", input, m)
		}
		if m := BuildValueRatings(input); len(m) != 0 {
			t.Errorf("BuildValueRatings(%v) = %v, want empty map", input, m)
		}
	}
}

func TestRatingMap_Fallback(t *testing.T) {
	m := BuildPriceRatings([]float64{500})
	if got := m.Rating(777, 1.0); got != 1.0 {
		t.Errorf("unmapped price should use the fallback, got %v", got)
	}
}

func TestBuildRatings_Bounds(t *testing.T) {
	m := BuildPriceRatings([]float64{1, 17.5, 99, 250, 251, 1000000})
	for v, r := range m {
		if r < 1.0 || r > 9.9 {
			t.Errorf("rating(%v) = %v, outside [1.0, 9.9]", v, r)
		}
	}
}
