package ui

import (
	"strings"
	"testing"

	"CandleGlass/internal/feed"
	"CandleGlass/internal/model"
)

func TestViewChart_GridFillsViewport(t *testing.T) {
	m := testModel()
	m.watchlist[0].Series = feed.GenerateSeries("AAPL", model.Interval30m, 100, 300)
	m.screen = ScreenChart
	m.width, m.height = 120, 30

	rows := strings.Split(m.View(), "\n")
	// Three header rows plus the candle grid and axis fill the viewport
	// exactly; the footer adds a status row and a help row below it.
	want := m.height + 2
	if len(rows) != want {
		t.Errorf("view has %d rows, want %d", len(rows), want)
	}
}

func TestViewChart_NoDataPlaceholder(t *testing.T) {
	m := testModel()
	m.screen = ScreenChart
	m.width, m.height = 120, 30

	view := m.View()
	if !strings.Contains(view, "no data") {
		t.Errorf("expected the no-data placeholder, got %q", view)
	}
}
