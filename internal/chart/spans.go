// Package chart renders an OHLC candle series into a grid of styled text
// spans with sub-character vertical resolution, plus a synchronized
// three-row time axis. Rendering is pure and synchronous: it is recomputed
// from scratch on every draw, holds no state between calls and performs no
// I/O.
package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Span is a run of characters sharing one foreground color. An empty color
// means the terminal default.
type Span struct {
	Text  string
	Color lipgloss.Color
}

// Line is one display row as an ordered list of spans.
type Line []Span

// String concatenates the span texts without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Fixed palette. The RGB values are part of the chart's visual contract.
var (
	ColorBullish = lipgloss.Color("#34D058")
	ColorBearish = lipgloss.Color("#EA4A5A")
	ColorAxis    = lipgloss.Color("#808080")
	ColorDateDim = lipgloss.Color("#787878")
)
