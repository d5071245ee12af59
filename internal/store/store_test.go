package store

import (
	"path/filepath"
	"testing"
	"time"

	"CandleGlass/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadSeries(t *testing.T) {
	s := openTestStore(t)

	series := model.NewSeries("AAPL", model.Interval30m)
	series.FetchedAt = time.Unix(1709500000, 0)
	base := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		series.Candles = append(series.Candles, model.Candle{
			Time:   base.Add(time.Duration(i) * 30 * time.Minute),
			Open:   100 + float64(i),
			High:   102 + float64(i),
			Low:    99 + float64(i),
			Close:  101 + float64(i),
			Volume: 1000,
		})
	}

	if err := s.SaveSeries(series); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadSeries("AAPL", model.Interval30m)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached series")
	}
	if got.Len() != 5 {
		t.Fatalf("got %d candles, want 5", got.Len())
	}
	if got.Candles[0].Open != 100 || got.Candles[4].Close != 105 {
		t.Errorf("candle values lost: %+v", got.Candles)
	}
	if !got.Candles[0].Time.Equal(base) {
		t.Errorf("timestamp = %v, want %v", got.Candles[0].Time, base)
	}
	if got.FetchedAt.Unix() != 1709500000 {
		t.Errorf("fetched_at = %d", got.FetchedAt.Unix())
	}
}

func TestSaveSeries_ReplacesPrevious(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

	old := model.NewSeries("AAPL", model.Interval30m)
	for i := 0; i < 10; i++ {
		old.Candles = append(old.Candles, model.Candle{
			Time: base.Add(time.Duration(i) * 30 * time.Minute), Open: 1, Close: 1,
		})
	}
	if err := s.SaveSeries(old); err != nil {
		t.Fatal(err)
	}

	fresh := model.NewSeries("AAPL", model.Interval30m)
	fresh.Candles = []model.Candle{{Time: base, Open: 2, Close: 2}}
	if err := s.SaveSeries(fresh); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadSeries("AAPL", model.Interval30m)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 || got.Candles[0].Open != 2 {
		t.Errorf("stale candles survived the refresh: %d rows", got.Len())
	}
}

func TestLoadSeries_MissReturnsNil(t *testing.T) {
	s := openTestStore(t)
	got, err := s.LoadSeries("MISSING", model.Interval1d)
	if err != nil {
		t.Fatalf("cache miss must not error: %v", err)
	}
	if got != nil {
		t.Error("expected nil series on miss")
	}
}

func TestLoadSeries_IntervalsKeptApart(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	daily := model.NewSeries("AAPL", model.Interval1d)
	daily.Candles = []model.Candle{{Time: base, Open: 1, Close: 1}}
	if err := s.SaveSeries(daily); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadSeries("AAPL", model.Interval30m)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("30m lookup must not return the 1d cache")
	}
}

func TestSaveAndLoadWatchlist(t *testing.T) {
	s := openTestStore(t)

	in := []WatchlistEntry{
		{Symbol: "TSLA", Name: "Tesla"},
		{Symbol: "AAPL", Name: "Apple"},
		{Symbol: "BTC-USD", Name: "Bitcoin"},
	}
	if err := s.SaveWatchlist(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadWatchlist()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("entry %d = %+v, want %+v (order must survive)", i, got[i], in[i])
		}
	}

	// Saving again replaces, never appends.
	if err := s.SaveWatchlist(in[:1]); err != nil {
		t.Fatal(err)
	}
	got, err = s.LoadWatchlist()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("got %d entries after replace, want 1", len(got))
	}
}
