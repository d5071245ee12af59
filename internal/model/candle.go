package model

import "time"

// Candle represents a single OHLCV candlestick bar.
//
// Invariant (assumed, not validated): Low <= min(Open, Close) and
// max(Open, Close) <= High.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// IsBullish reports whether the candle closed above its open.
func (c Candle) IsBullish() bool { return c.Close > c.Open }

// IsBearish reports whether the candle closed below its open.
func (c Candle) IsBearish() bool { return c.Close < c.Open }

// Body returns the absolute open-close distance.
func (c Candle) Body() float64 {
	if c.Close > c.Open {
		return c.Close - c.Open
	}
	return c.Open - c.Close
}

// UpperWick returns the distance from the body top to the high.
func (c Candle) UpperWick() float64 {
	top := c.Open
	if c.Close > top {
		top = c.Close
	}
	return c.High - top
}

// LowerWick returns the distance from the low to the body bottom.
func (c Candle) LowerWick() float64 {
	bottom := c.Open
	if c.Close < bottom {
		bottom = c.Close
	}
	return bottom - c.Low
}

// ChangePercent returns the open-to-close change of this candle in percent.
func (c Candle) ChangePercent() float64 {
	if c.Open == 0 {
		return 0
	}
	return (c.Close - c.Open) / c.Open * 100
}

// Series holds the candles fetched for one symbol at one interval, sorted
// ascending by timestamp. The renderer treats it as an immutable snapshot.
type Series struct {
	Symbol    string
	Interval  Interval
	Timeframe Timeframe
	Candles   []Candle
	FetchedAt time.Time
}

// NewSeries creates an empty series using the interval's default timeframe.
func NewSeries(symbol string, interval Interval) *Series {
	return &Series{
		Symbol:    symbol,
		Interval:  interval,
		Timeframe: interval.DefaultTimeframe(),
	}
}

// Len returns the number of candles.
func (s *Series) Len() int { return len(s.Candles) }

// IsEmpty reports whether the series holds no candles.
func (s *Series) IsEmpty() bool { return len(s.Candles) == 0 }

// Last returns the most recent candle, or false if the series is empty.
func (s *Series) Last() (Candle, bool) {
	if len(s.Candles) == 0 {
		return Candle{}, false
	}
	return s.Candles[len(s.Candles)-1], true
}

// MinPrice returns the lowest low across the series.
func (s *Series) MinPrice() (float64, bool) {
	if len(s.Candles) == 0 {
		return 0, false
	}
	min := s.Candles[0].Low
	for _, c := range s.Candles[1:] {
		if c.Low < min {
			min = c.Low
		}
	}
	return min, true
}

// MaxPrice returns the highest high across the series.
func (s *Series) MaxPrice() (float64, bool) {
	if len(s.Candles) == 0 {
		return 0, false
	}
	max := s.Candles[0].High
	for _, c := range s.Candles[1:] {
		if c.High > max {
			max = c.High
		}
	}
	return max, true
}

// TotalChangePercent returns the change from the first open to the last close.
func (s *Series) TotalChangePercent() (float64, bool) {
	if len(s.Candles) == 0 || s.Candles[0].Open == 0 {
		return 0, false
	}
	first := s.Candles[0]
	last := s.Candles[len(s.Candles)-1]
	return (last.Close - first.Open) / first.Open * 100, true
}

// DailyChangePercent returns the percentage change over the most recent day
// with data. For daily and weekly intervals the last candle already spans a
// full day or more; for intraday intervals the open of the first candle and
// the close of the last candle of the last calendar day are used, so a closed
// market still reports the last session.
func (s *Series) DailyChangePercent() (float64, bool) {
	last, ok := s.Last()
	if !ok {
		return 0, false
	}

	if !s.Interval.IsIntraday() {
		if last.Open == 0 {
			return 0, false
		}
		return last.ChangePercent(), true
	}

	y, m, d := last.Time.Date()
	dayOpen, dayClose := 0.0, 0.0
	seen := false
	for _, c := range s.Candles {
		cy, cm, cd := c.Time.Date()
		if cy != y || cm != m || cd != d {
			continue
		}
		if !seen {
			dayOpen = c.Open
			seen = true
		}
		dayClose = c.Close
	}
	if !seen || dayOpen == 0 {
		return 0, false
	}
	return (dayClose - dayOpen) / dayOpen * 100, true
}
