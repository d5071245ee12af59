package chart

import (
	"strings"
	"testing"
	"time"

	"CandleGlass/internal/model"
)

func sampleSeries(n int) *model.Series {
	s := model.NewSeries("TEST", model.Interval30m)
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	price := 100.0
	for i := 0; i < n; i++ {
		delta := float64(i%7) - 3
		s.Candles = append(s.Candles, model.Candle{
			Time:   base.Add(time.Duration(i) * 30 * time.Minute),
			Open:   price,
			High:   price + delta + 2,
			Low:    price + delta - 2,
			Close:  price + delta,
			Volume: 1000,
		})
		price += delta
	}
	return s
}

func TestRender_EmptySeries(t *testing.T) {
	s := model.NewSeries("TEST", model.Interval30m)
	if lines := Render(s, 120, 30); lines != nil {
		t.Errorf("expected nil for empty series, got %d lines", len(lines))
	}
	if lines := Render(nil, 120, 30); lines != nil {
		t.Error("expected nil for nil series")
	}
}

func TestRender_TooNarrowViewport(t *testing.T) {
	lines := Render(sampleSeries(50), MinTerminalWidth-1, 30)
	joined := ""
	for _, l := range lines {
		joined += l.String() + "\n"
	}
	if !strings.Contains(joined, "too narrow") {
		t.Errorf("expected placeholder, got %q", joined)
	}
}

func TestRender_RowCount(t *testing.T) {
	lines := Render(sampleSeries(50), 120, 30)
	// Candle rows plus the three axis rows fill everything below the
	// reserved header.
	want := 30 - ReservedRows + 3
	if len(lines) != want {
		t.Errorf("got %d lines, want %d", len(lines), want)
	}
}

func TestRender_RowWidth(t *testing.T) {
	width := 120
	for i, line := range Render(sampleSeries(50), width, 30) {
		n := len([]rune(line.String()))
		if n != width {
			t.Errorf("row %d width = %d, want %d", i, n, width)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	s := sampleSeries(80)
	a := Render(s, 120, 30)
	b := Render(s, 120, 30)
	if len(a) != len(b) {
		t.Fatalf("line counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			t.Errorf("row %d differs between renders", i)
		}
	}
}

func TestNewRenderer_WindowsTrailingCandles(t *testing.T) {
	s := sampleSeries(500)
	r := NewRenderer(s, 120, 30)
	chartWidth := 120 - gutterWidthNormal
	if len(r.candles) != chartWidth {
		t.Errorf("window = %d candles, want %d", len(r.candles), chartWidth)
	}
	// The window keeps the most recent candles.
	last := s.Candles[len(s.Candles)-1]
	if r.candles[len(r.candles)-1].Time != last.Time {
		t.Error("window dropped the newest candle")
	}
}

func TestNewRenderer_BoundsFromVisibleWindowOnly(t *testing.T) {
	s := sampleSeries(200)
	// A huge spike far in the past must not stretch the scale.
	s.Candles[0].High = 10000
	r := NewRenderer(s, 120, 30)
	if r.scale.max > 200 {
		t.Errorf("off-screen spike leaked into scale: max = %.2f", r.scale.max)
	}
}

func TestNewRenderer_NarrowGutter(t *testing.T) {
	r := NewRenderer(sampleSeries(50), 90, 30)
	if !r.narrow {
		t.Error("width 90 should use narrow layout")
	}
	if r.gutter != gutterWidthNarrow {
		t.Errorf("gutter = %d, want %d", r.gutter, gutterWidthNarrow)
	}
	wide := NewRenderer(sampleSeries(50), 120, 30)
	if wide.narrow || wide.gutter != gutterWidthNormal {
		t.Error("width 120 should use the normal gutter")
	}
}

func TestRender_ColorsFollowDirection(t *testing.T) {
	s := model.NewSeries("TEST", model.Interval30m)
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	s.Candles = append(s.Candles,
		model.Candle{Time: base, Open: 100, High: 106, Low: 98, Close: 105},
		model.Candle{Time: base.Add(30 * time.Minute), Open: 105, High: 107, Low: 99, Close: 100},
	)

	sawBull, sawBear := false, false
	for _, line := range Render(s, 120, 30) {
		for _, span := range line {
			if strings.TrimSpace(span.Text) == "" {
				continue
			}
			switch span.Color {
			case ColorBullish:
				sawBull = true
			case ColorBearish:
				sawBear = true
			}
		}
	}
	if !sawBull || !sawBear {
		t.Errorf("expected both candle colors, bull=%v bear=%v", sawBull, sawBear)
	}
}
