package chart

import "CandleGlass/internal/model"

// priceMargin widens the visible price range so candles never touch the
// chart edges.
const priceMargin = 0.02

// priceScale maps prices to continuous height units. Height unit 0 is the
// bottom of the chart area and height is the top; rows are drawn top-down by
// iterating the unit from height to 1.
type priceScale struct {
	min    float64
	max    float64
	height int
}

// newPriceScale computes the price bounds of the visible window only, with a
// 2% margin, clamped at zero. Off-screen history must never distort the
// vertical scale, so callers pass the windowed slice, not the full series.
func newPriceScale(candles []model.Candle, height int) priceScale {
	s := priceScale{height: height}
	if len(candles) == 0 {
		return s
	}
	s.min = candles[0].Low
	s.max = candles[0].High
	for _, c := range candles[1:] {
		if c.Low < s.min {
			s.min = c.Low
		}
		if c.High > s.max {
			s.max = c.High
		}
	}
	margin := (s.max - s.min) * priceMargin
	s.min -= margin
	if s.min < 0 {
		s.min = 0
	}
	s.max += margin
	return s
}

// heightOf converts a price to a continuous height unit. A degenerate range
// (flat series) maps every price to mid-height to avoid dividing by zero.
func (s priceScale) heightOf(price float64) float64 {
	if s.max == s.min {
		return float64(s.height) / 2
	}
	return (price - s.min) / (s.max - s.min) * float64(s.height)
}

// priceAt is the inverse mapping, used for the gutter labels.
func (s priceScale) priceAt(unit float64) float64 {
	if s.height == 0 {
		return s.min
	}
	return s.min + unit*(s.max-s.min)/float64(s.height)
}
