package ui

import (
	"fmt"
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/ncruces/go-strftime"

	"CandleGlass/internal/model"
)

// renderLineChart draws the close prices as a braille line, toggled with v as
// an alternative to the candlestick view.
func (m Model) renderLineChart(series *model.Series, width, height int) string {
	candles := series.Candles
	if len(candles) == 0 {
		return dimStyle.Render("  no data available") + "\n"
	}
	if width < 20 || height < 4 {
		return dimStyle.Render("  terminal too small") + "\n"
	}

	minP, _ := series.MinPrice()
	maxP, _ := series.MaxPrice()
	margin := (maxP - minP) * 0.05
	if margin == 0 {
		margin = minP * 0.005
	}

	style := lossStyle
	if pct, ok := series.TotalChangePercent(); ok && pct >= 0 {
		style = gainStyle
	}

	labelFmt := axisLabelFormat(m.interval.AxisFormat())
	xLabel := func(index int, value float64) string {
		i := int(math.Round(value))
		if i < 0 || i >= len(candles) {
			return ""
		}
		return strftime.Format(labelFmt, candles[i].Time)
	}
	yLabel := func(index int, value float64) string {
		return fmt.Sprintf("%.2f", value)
	}

	lc := linechart.New(width, height,
		0, float64(len(candles)-1),
		minP-margin, maxP+margin,
		linechart.WithXYSteps(6, 4),
		linechart.WithXLabelFormatter(xLabel),
		linechart.WithYLabelFormatter(yLabel),
		linechart.WithStyles(lipgloss.Style{}, lipgloss.Style{}, style),
	)

	for i := 0; i < len(candles)-1; i++ {
		p1 := canvas.Float64Point{X: float64(i), Y: candles[i].Close}
		p2 := canvas.Float64Point{X: float64(i + 1), Y: candles[i+1].Close}
		lc.DrawBrailleLineWithStyle(p1, p2, style)
	}
	lc.DrawXYAxisAndLabel()

	return lc.View() + "\n"
}

// axisLabelFormat picks the x-label format for the line chart. Daily and
// weekly intervals have no time-of-day format, so their date format is used.
func axisLabelFormat(f model.AxisFormat) string {
	if f.TimeFormat != "" {
		return f.TimeFormat
	}
	return f.DateFormat
}
