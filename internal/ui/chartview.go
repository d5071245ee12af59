package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"CandleGlass/internal/chart"
	"CandleGlass/internal/model"
)

func (m Model) viewChart() string {
	if len(m.watchlist) == 0 {
		return dimStyle.Render(" nothing to chart")
	}
	item := m.watchlist[m.selected]

	var b strings.Builder
	b.WriteString(m.chartHeader(item))

	if !item.HasData() {
		b.WriteString("\n")
		if m.pending > 0 {
			b.WriteString(" " + m.spin.View() + dimStyle.Render(m.loadingMsg) + "\n")
		} else {
			b.WriteString(dimStyle.Render("  no data available") + "\n")
		}
		b.WriteString("\n")
		b.WriteString(m.chartFooter())
		return b.String()
	}

	if m.lineView {
		// The line chart widget sizes itself, so the header and footer
		// rows are taken off here.
		height := m.height - chart.ReservedRows
		if height < 1 {
			height = 1
		}
		b.WriteString(m.renderLineChart(item.Series, m.width, height))
	} else {
		// The candle renderer reserves the header and axis rows itself;
		// it gets the full viewport.
		for _, line := range chart.Render(item.Series, m.width, m.height) {
			b.WriteString(renderLine(line))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.chartFooter())
	return b.String()
}

// chartHeader is three rows: symbol line, price line, spacer.
func (m Model) chartHeader(item model.WatchlistItem) string {
	var b strings.Builder

	mode := "candles"
	if m.lineView {
		mode = "line"
	}
	b.WriteString(titleStyle.Render(" " + item.Symbol))
	if item.Name != "" && item.Name != item.Symbol {
		b.WriteString(dimStyle.Render("  " + item.Name))
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("  [%s, %s]", m.interval.Label(), mode)))
	b.WriteString("\n")

	price, hasPrice := item.CurrentPrice()
	pct, hasPct := item.ChangePercent()
	vol, _ := item.Volume()
	if hasPrice && hasPct {
		text := fmt.Sprintf("%+.2f%%", pct)
		styled := lossStyle.Render(text)
		if item.IsPositive() {
			styled = gainStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf(" %.2f  %s  vol %s",
			price, styled, humanize.SIWithDigits(vol, 1, "")))
	} else {
		b.WriteString(dimStyle.Render(" -"))
	}
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) chartFooter() string {
	var b strings.Builder
	if status := m.statusLine(); status != "" {
		b.WriteString(status)
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" h/l interval  v toggle line  r refresh  esc back  q quit"))
	return b.String()
}

// renderLine converts colored spans into a styled terminal row.
func renderLine(line chart.Line) string {
	var b strings.Builder
	for _, span := range line {
		if span.Color == "" {
			b.WriteString(span.Text)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(span.Color).Render(span.Text))
	}
	return b.String()
}
