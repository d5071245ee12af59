// Package feed retrieves candle series from a market data provider.
package feed

import (
	"context"

	"CandleGlass/internal/model"
)

// Fetcher retrieves an ordered candle series for a symbol at a granularity.
// The returned display name may be empty when the provider has none.
type Fetcher interface {
	FetchSeries(ctx context.Context, symbol string, interval model.Interval) (*model.Series, string, error)
	Name() string
}
