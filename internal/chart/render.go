package chart

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"CandleGlass/internal/model"
)

const (
	// MinTerminalWidth gates chart rendering entirely: anything narrower gets
	// the placeholder instead of a partial grid.
	MinTerminalWidth = 80
	// narrowWidthThreshold switches to the reduced gutter and doubles the
	// axis cadence periods.
	narrowWidthThreshold = 100

	gutterWidthNormal = 12
	gutterWidthNarrow = 8

	// ReservedRows is what the viewport must set aside for the header (3)
	// and the time axis (3) before candle rows are allocated.
	ReservedRows = 6

	// gutterPriceStep prints a price label every Nth gutter row.
	gutterPriceStep = 4
)

// Renderer builds one frame of the candlestick grid. It is created, used and
// discarded within a single draw call.
type Renderer struct {
	candles   []model.Candle
	interval  model.Interval
	scale     priceScale
	height    int
	width     int // chart columns, gutter excluded
	gutter    int
	narrow    bool
	positions []position
}

// NewRenderer windows the series to the candles that fit the viewport and
// precomputes the price scale and the column table. width and height are the
// full area available to the widget.
func NewRenderer(series *model.Series, width, height int) *Renderer {
	gutter := gutterWidthNormal
	narrow := width < narrowWidthThreshold
	if narrow {
		gutter = gutterWidthNarrow
	}

	chartWidth := width - gutter
	if chartWidth < 0 {
		chartWidth = 0
	}
	chartHeight := height - ReservedRows
	if chartHeight < 0 {
		chartHeight = 0
	}

	// Trailing window: at most one candle per column.
	candles := series.Candles
	if len(candles) > chartWidth {
		candles = candles[len(candles)-chartWidth:]
	}

	return &Renderer{
		candles:   candles,
		interval:  series.Interval,
		scale:     newPriceScale(candles, chartHeight),
		height:    chartHeight,
		width:     chartWidth,
		gutter:    gutter,
		narrow:    narrow,
		positions: planColumns(chartWidth, len(candles)),
	}
}

// Lines renders the candle rows followed by the three axis rows.
func (r *Renderer) Lines() []Line {
	if len(r.candles) == 0 || r.width == 0 {
		return nil
	}

	lines := make([]Line, 0, r.height+3)
	for unit := r.height; unit >= 1; unit-- {
		lines = append(lines, r.renderRow(float64(unit)))
	}
	lines = append(lines, renderAxis(r.candles, r.positions, r.interval, r.width, r.gutter, r.narrow)...)
	return lines
}

// renderRow paints every candle's glyph for one height unit into a
// full-width cell buffer and run-length encodes it into colored spans.
func (r *Renderer) renderRow(unit float64) Line {
	cells := blankRow(r.width)
	colors := make([]lipgloss.Color, r.width)

	for i, c := range r.candles {
		g := glyphAt(c, unit, r.scale)
		if g == GlyphVoid {
			continue
		}
		col := r.positions[i].column
		cells[col] = rune(g)
		if c.Close >= c.Open {
			colors[col] = ColorBullish
		} else {
			colors[col] = ColorBearish
		}
	}

	line := Line{r.gutterSpan(unit)}
	runStart := 0
	for i := 1; i <= r.width; i++ {
		if i == r.width || colors[i] != colors[runStart] {
			line = append(line, Span{
				Text:  string(cells[runStart:i]),
				Color: colors[runStart],
			})
			runStart = i
		}
	}
	return line
}

// gutterSpan renders the y-axis price gutter cell for one row. A price is
// printed every few rows, the rest stay blank.
func (r *Renderer) gutterSpan(unit float64) Span {
	var text string
	if int(unit)%gutterPriceStep == 0 {
		if r.narrow {
			text = fmt.Sprintf("%5.2f │ ", r.scale.priceAt(unit))
		} else {
			text = fmt.Sprintf("%9.2f │ ", r.scale.priceAt(unit))
		}
	} else {
		if r.narrow {
			text = fmt.Sprintf("%5s │ ", "")
		} else {
			text = fmt.Sprintf("%9s │ ", "")
		}
	}
	return Span{Text: text, Color: ColorAxis}
}

// Render is the package entry point: it windows, scales, lays out and paints
// the series for the given viewport. A viewport narrower than
// MinTerminalWidth yields the placeholder lines instead of a grid; an empty
// series yields no lines.
func Render(series *model.Series, width, height int) []Line {
	if width < MinTerminalWidth {
		return TooNarrowLines()
	}
	if series == nil || series.IsEmpty() {
		return nil
	}
	return NewRenderer(series, width, height).Lines()
}

// TooNarrowLines is the fallback shown instead of the grid on cramped
// terminals.
func TooNarrowLines() []Line {
	return []Line{
		{},
		{Span{Text: "Terminal too narrow to draw the candle chart"}},
		{},
		{Span{Text: fmt.Sprintf("Minimum width: %d columns", MinTerminalWidth), Color: ColorAxis}},
	}
}
