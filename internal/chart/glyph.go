package chart

import (
	"math"

	"CandleGlass/internal/model"
)

// Glyph is one of the nine characters a candle can paint into a cell.
type Glyph rune

// Box-drawing glyphs for sub-character candle rendering.
const (
	GlyphVoid             Glyph = ' '
	GlyphBody             Glyph = '┃' // full body
	GlyphHalfBodyBottom   Glyph = '╻' // body occupying the lower half of the cell
	GlyphHalfBodyTop      Glyph = '╹' // body occupying the upper half of the cell
	GlyphWick             Glyph = '│' // full wick
	GlyphTopTransition    Glyph = '╽' // body below, wick above
	GlyphBottomTransition Glyph = '╿' // body above, wick below
	GlyphHalfWickTop      Glyph = '╷' // wick occupying the upper part of the cell
	GlyphHalfWickBottom   Glyph = '╵' // wick occupying the lower part of the cell
)

// Fractional cell-coverage thresholds. A zone covering less than coverLow of
// the current cell paints nothing, between the two it paints a half glyph,
// and above coverHigh it paints a full glyph.
const (
	coverLow  = 0.25
	coverHigh = 0.75
)

// glyphAt classifies one candle at one height unit into a glyph. The row is
// matched against three continuous zones: upper wick (high..body top), body
// (body top..body bottom) and lower wick (body bottom..low). Inside the wick
// zones the fractional coverage of the cell by body vs. wick picks between
// full, half and transition glyphs. Exactly one branch fires per call.
func glyphAt(c model.Candle, unit float64, s priceScale) Glyph {
	highY := s.heightOf(c.High)
	lowY := s.heightOf(c.Low)
	bodyTopY := s.heightOf(math.Max(c.Open, c.Close))
	bodyBotY := s.heightOf(math.Min(c.Open, c.Close))

	// A candle with no vertical extent still paints its body row.
	if highY == lowY {
		if unit == math.Round(highY) {
			return GlyphBody
		}
		return GlyphVoid
	}

	switch {
	// Upper wick zone.
	case math.Ceil(highY) >= unit && unit >= math.Floor(bodyTopY):
		switch {
		case bodyTopY-unit > coverHigh:
			return GlyphBody
		case bodyTopY-unit > coverLow:
			if highY-unit > coverHigh {
				return GlyphTopTransition
			}
			return GlyphHalfBodyBottom
		case highY-unit > coverHigh:
			return GlyphWick
		case highY-unit > coverLow:
			return GlyphHalfWickTop
		}
		return GlyphVoid

	// Body zone.
	case math.Floor(bodyTopY) >= unit && unit >= math.Ceil(bodyBotY):
		return GlyphBody

	// Lower wick zone.
	case math.Ceil(bodyBotY) >= unit && unit >= math.Floor(lowY):
		switch {
		case bodyBotY-unit < coverLow:
			return GlyphBody
		case bodyBotY-unit < coverHigh:
			if lowY-unit < coverLow {
				return GlyphBottomTransition
			}
			return GlyphHalfBodyTop
		case lowY-unit < coverLow:
			return GlyphWick
		case lowY-unit < coverHigh:
			return GlyphHalfWickBottom
		}
		return GlyphVoid
	}

	return GlyphVoid
}
