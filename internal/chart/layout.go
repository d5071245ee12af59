package chart

import "math"

// position is the per-render placement of one candle. All layers (candles,
// ticks, time labels, date labels) consume the same position table, which is
// what keeps the candle grid and the axis aligned.
type position struct {
	column int
	width  int
}

// planColumns allocates a column to each of n candles across chartWidth.
// Each column is computed directly from its index as round(i*spacing);
// accumulating prevColumn+spacing instead would compound rounding error into
// visible drift over long series.
func planColumns(chartWidth, n int) []position {
	if n <= 0 || chartWidth <= 0 {
		return nil
	}
	if n == 1 {
		return []position{{column: chartWidth / 2, width: 1}}
	}

	spacing := float64(chartWidth) / float64(n)
	positions := make([]position, n)
	for i := 0; i < n; i++ {
		col := int(math.Round(float64(i) * spacing))
		if col > chartWidth-1 {
			col = chartWidth - 1
		}
		if col < 0 {
			col = 0
		}
		positions[i] = position{column: col, width: 1}
	}
	return positions
}
