package chart

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"CandleGlass/internal/model"
)

const (
	// labelGap is the minimum spacing guaranteed between adjacent labels.
	labelGap = 2
	// Label count bounds: never fewer than 2, never more than 10.
	minLabels    = 2
	maxLabelsCap = 10
	tickMark     = '│'
)

// renderAxis produces the three axis rows: tick marks, intraday times and
// calendar dates. All rows index into the same column table as the candle
// grid. narrow doubles every numeric cadence period to thin out labels on
// cramped viewports.
func renderAxis(candles []model.Candle, positions []position, interval model.Interval, chartWidth, gutterWidth int, narrow bool) []Line {
	format := interval.AxisFormat()

	strategy := format.Strategy
	if narrow {
		strategy = coarsen(strategy)
	}

	maxLabels := chartWidth / (format.LabelWidth + labelGap)
	if maxLabels < minLabels {
		maxLabels = minLabels
	}
	if maxLabels > maxLabelsCap {
		maxLabels = maxLabelsCap
	}

	ticks := thin(cadenceIndices(candles, strategy), maxLabels)

	gutter := Span{Text: strings.Repeat(" ", gutterWidth)}
	lines := make([]Line, 0, 3)

	// Tick row.
	tickRow := blankRow(chartWidth)
	for _, i := range ticks {
		tickRow[positions[i].column] = tickMark
	}
	lines = append(lines, Line{gutter, {Text: string(tickRow), Color: ColorAxis}})

	// Time row. Intervals at or above daily have no time format and leave
	// the row blank, which keeps the frame height independent of interval.
	timeRow := blankRow(chartWidth)
	if format.TimeFormat != "" {
		for _, i := range ticks {
			label := strftime.Format(format.TimeFormat, candles[i].Time)
			writeCentered(timeRow, positions[i].column, label)
		}
	}
	lines = append(lines, Line{gutter, {Text: string(timeRow), Color: ColorAxis}})

	// Date row. Round-hour cadence would stamp the same date under every
	// tick, so dates fall back to day-change cadence there.
	dateStrategy := strategy
	if dateStrategy.Kind == model.LabelRoundHours {
		dateStrategy = model.LabelStrategy{Kind: model.LabelDayChange}
	}
	dateRow := blankRow(chartWidth)
	for _, i := range thin(cadenceIndices(candles, dateStrategy), maxLabels) {
		label := strftime.Format(format.DateFormat, candles[i].Time)
		writeIfFree(dateRow, positions[i].column, label)
	}
	lines = append(lines, Line{gutter, {Text: string(dateRow), Color: ColorDateDim}})

	return lines
}

// coarsen doubles the numeric period of a strategy. Day-change cadence has no
// period and is left unchanged.
func coarsen(s model.LabelStrategy) model.LabelStrategy {
	if s.Kind == model.LabelDayChange {
		return s
	}
	s.Period *= 2
	return s
}

// cadenceIndices walks the candles in order and returns the indices that
// satisfy the strategy.
func cadenceIndices(candles []model.Candle, strategy model.LabelStrategy) []int {
	var out []int
	var prev, lastLabeled time.Time
	havePrev, haveLabel := false, false

	period := strategy.Period
	if period < 1 {
		period = 1
	}

	for i, c := range candles {
		t := c.Time
		fire := false
		switch strategy.Kind {
		case model.LabelRoundHours:
			fire = t.Minute() == 0 && t.Hour()%period == 0
		case model.LabelDayChange:
			if havePrev {
				fire = !sameDay(t, prev)
			} else {
				// The first candle gets a date only when the series
				// starts near the beginning of a day.
				fire = t.Hour() < 2
			}
		case model.LabelEveryDays:
			if havePrev && !sameDay(t, prev) {
				fire = !haveLabel || daysBetween(lastLabeled, t) >= period
			}
		case model.LabelEveryMonths:
			if havePrev && !sameMonth(t, prev) {
				fire = !haveLabel || monthsBetween(lastLabeled, t) >= period
			}
		case model.LabelEveryYears:
			if havePrev && t.Year() != prev.Year() {
				fire = !haveLabel || t.Year()-lastLabeled.Year() >= period
			}
		}
		if fire {
			out = append(out, i)
			lastLabeled = t
			haveLabel = true
		}
		prev = t
		havePrev = true
	}
	return out
}

// thin drops indices so that at most max remain, keeping an even stride.
func thin(indices []int, max int) []int {
	if len(indices) <= max {
		return indices
	}
	stride := (len(indices) + max - 1) / max
	out := indices[:0:0]
	for i := 0; i < len(indices); i += stride {
		out = append(out, indices[i])
	}
	return out
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// writeCentered writes text centered on column, clipping at the row bounds.
func writeCentered(row []rune, column int, text string) {
	start := column - len(text)/2
	for j, r := range text {
		p := start + j
		if p < 0 || p >= len(row) {
			continue
		}
		row[p] = r
	}
}

// writeIfFree writes text centered on column only when the target cells and
// one cell of padding on each side are still blank; a colliding label is
// dropped, never overwritten.
func writeIfFree(row []rune, column int, text string) {
	start := column - len(text)/2
	if start < 0 {
		start = 0
	}
	if start+len(text) > len(row) {
		start = len(row) - len(text)
		if start < 0 {
			return
		}
	}
	lo := start - labelGap + 1
	if lo < 0 {
		lo = 0
	}
	hi := start + len(text) + labelGap - 1
	if hi > len(row) {
		hi = len(row)
	}
	for p := lo; p < hi; p++ {
		if row[p] != ' ' {
			return
		}
	}
	for j, r := range text {
		row[start+j] = r
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
