package model

// WatchlistItem is one tracked symbol and, once fetched, its candle series.
type WatchlistItem struct {
	Symbol string
	Name   string
	Series *Series
}

// NewWatchlistItem creates an item with no data loaded yet.
func NewWatchlistItem(symbol, name string) WatchlistItem {
	return WatchlistItem{Symbol: symbol, Name: name}
}

// HasData reports whether a non-empty series has been loaded.
func (w WatchlistItem) HasData() bool {
	return w.Series != nil && !w.Series.IsEmpty()
}

// CurrentPrice returns the close of the most recent candle.
func (w WatchlistItem) CurrentPrice() (float64, bool) {
	if w.Series == nil {
		return 0, false
	}
	last, ok := w.Series.Last()
	if !ok {
		return 0, false
	}
	return last.Close, true
}

// ChangePercent returns the change over the last trading day.
func (w WatchlistItem) ChangePercent() (float64, bool) {
	if w.Series == nil {
		return 0, false
	}
	return w.Series.DailyChangePercent()
}

// IsPositive reports whether the daily change is non-negative.
func (w WatchlistItem) IsPositive() bool {
	pct, ok := w.ChangePercent()
	return ok && pct >= 0
}

// Volume returns the volume of the most recent candle.
func (w WatchlistItem) Volume() (float64, bool) {
	if w.Series == nil {
		return 0, false
	}
	last, ok := w.Series.Last()
	if !ok {
		return 0, false
	}
	return last.Volume, true
}
