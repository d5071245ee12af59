package feed

import (
	"context"
	"math"
	"time"

	"CandleGlass/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price  float64
	Series *model.Series
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(_ context.Context, symbol string, interval model.Interval) (*model.Series, string, error) {
	if m.Err != nil {
		return nil, "", m.Err
	}
	if m.Series != nil {
		return m.Series, symbol, nil
	}
	return GenerateSeries(symbol, interval, m.Price, 300), symbol, nil
}

// GenerateSeries produces a deterministic wavy series around basePrice,
// useful for development without network access.
func GenerateSeries(symbol string, interval model.Interval, basePrice float64, count int) *model.Series {
	if basePrice == 0 {
		basePrice = 100
	}
	series := model.NewSeries(symbol, interval)
	series.Candles = make([]model.Candle, count)

	step := time.Duration(24*series.Timeframe.Days()) * time.Hour / time.Duration(count)
	start := time.Now().Add(-time.Duration(count) * step).Truncate(time.Hour)

	for i := 0; i < count; i++ {
		wave := math.Sin(float64(i) / 12)
		p := basePrice * (1 + 0.03*wave + 0.0004*float64(i-count/2))
		series.Candles[i] = model.Candle{
			Time:   start.Add(time.Duration(i) * step),
			Open:   p * 0.998,
			High:   p * 1.006,
			Low:    p * 0.994,
			Close:  p * (1 + 0.002*math.Cos(float64(i)/5)),
			Volume: 1_000_000 + 50_000*float64(i%7),
		}
	}
	series.FetchedAt = time.Now()
	return series
}
