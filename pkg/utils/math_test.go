package utils

import "testing"

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{5.45, 5.5},
		{5.44, 5.4},
		{8.565, 8.6},
		{2.335, 2.3},
		{0, 0},
		{9.9, 9.9},
		{-1.25, -1.3},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	min, max, ok := MinMax([]float64{850, 780, 920})
	if !ok || min != 780 || max != 920 {
		t.Errorf("MinMax = %v, %v, %v; want 780, 920, true", min, max, ok)
	}

	if _, _, ok := MinMax(nil); ok {
		t.Error("MinMax(nil) should report not ok")
	}

	min, max, ok = MinMax([]float64{42})
	if !ok || min != 42 || max != 42 {
		t.Errorf("MinMax single = %v, %v, %v; want 42, 42, true", min, max, ok)
	}
}
