package chart

import (
	"math"
	"testing"

	"CandleGlass/internal/model"
)

func TestNewPriceScale_AppliesMargin(t *testing.T) {
	candles := []model.Candle{
		{Open: 95, High: 110, Low: 90, Close: 105},
		{Open: 105, High: 108, Low: 100, Close: 102},
	}
	s := newPriceScale(candles, 20)

	// Raw range 90..110 widened by 2% of 20 on each side.
	if math.Abs(s.min-89.6) > 1e-9 {
		t.Errorf("min = %.4f, want 89.6", s.min)
	}
	if math.Abs(s.max-110.4) > 1e-9 {
		t.Errorf("max = %.4f, want 110.4", s.max)
	}
	if got := s.heightOf(s.min); got != 0 {
		t.Errorf("heightOf(min) = %.4f, want 0", got)
	}
	if got := s.heightOf(s.max); got != 20 {
		t.Errorf("heightOf(max) = %.4f, want 20", got)
	}
}

func TestNewPriceScale_ClampsMinAtZero(t *testing.T) {
	candles := []model.Candle{{Open: 50, High: 100, Low: 0.5, Close: 60}}
	s := newPriceScale(candles, 10)
	if s.min < 0 {
		t.Errorf("min = %.4f, must not go negative", s.min)
	}
}

func TestHeightOf_FlatRangeMapsToMidHeight(t *testing.T) {
	candles := []model.Candle{{Open: 42, High: 42, Low: 42, Close: 42}}
	s := newPriceScale(candles, 20)
	if got := s.heightOf(42); got != 10 {
		t.Errorf("heightOf(42) = %.4f, want mid-height 10", got)
	}
}

func TestPriceAt_InvertsHeightOf(t *testing.T) {
	candles := []model.Candle{{Open: 95, High: 110, Low: 90, Close: 105}}
	s := newPriceScale(candles, 24)
	for _, price := range []float64{90, 95.5, 100, 110} {
		got := s.priceAt(s.heightOf(price))
		if math.Abs(got-price) > 1e-9 {
			t.Errorf("priceAt(heightOf(%.1f)) = %.6f", price, got)
		}
	}
}
