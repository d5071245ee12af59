package chart

import (
	"math"
	"testing"
)

func TestPlanColumns_SingleCandleCentered(t *testing.T) {
	positions := planColumns(100, 1)
	if len(positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(positions))
	}
	if positions[0].column != 50 {
		t.Errorf("expected center column 50, got %d", positions[0].column)
	}
}

func TestPlanColumns_MonotonicAndBounded(t *testing.T) {
	width := 100
	for _, n := range []int{2, 3, 37, 99, 100} {
		positions := planColumns(width, n)
		if len(positions) != n {
			t.Fatalf("n=%d: expected %d positions, got %d", n, n, len(positions))
		}
		for i, p := range positions {
			if p.column < 0 || p.column > width-1 {
				t.Errorf("n=%d: position %d out of bounds: %d", n, i, p.column)
			}
			if i > 0 && p.column < positions[i-1].column {
				t.Errorf("n=%d: columns not monotonic at %d: %d < %d",
					n, i, p.column, positions[i-1].column)
			}
		}
	}
}

func TestPlanColumns_NoCumulativeDrift(t *testing.T) {
	// Each column must stay within half a cell of its ideal fractional
	// position even for long series, where accumulated spacing would drift.
	width, n := 120, 97
	spacing := float64(width) / float64(n)
	for i, p := range planColumns(width, n) {
		ideal := float64(i) * spacing
		if math.Abs(float64(p.column)-ideal) > 0.5 {
			t.Errorf("candle %d drifted: column %d, ideal %.3f", i, p.column, ideal)
		}
	}
}

func TestPlanColumns_Empty(t *testing.T) {
	if planColumns(100, 0) != nil {
		t.Error("expected nil for zero candles")
	}
	if planColumns(0, 5) != nil {
		t.Error("expected nil for zero width")
	}
}
