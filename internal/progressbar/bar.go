// Package progressbar renders a fraction as a fixed-width bar of Unicode
// block characters with eighth-cell resolution.
package progressbar

import (
	"math"
	"strings"
	"unicode/utf8"
)

const fullBlock = '█'

type bucket struct {
	lower float64 // percent of one cell, inclusive
	glyph rune
}

// partials is ordered by lower bound. Each bucket is centered on an eighth,
// so the boundaries fall half an eighth either side of it; this is not the
// same as rounding to the nearest eighth. The top bucket is closed at 100.
var partials = []bucket{
	{6.25, '▏'},
	{18.75, '▎'},
	{31.25, '▍'},
	{43.75, '▌'},
	{56.25, '▋'},
	{68.75, '▊'},
	{81.25, '▉'},
	{93.75, fullBlock},
}

// Render draws progress (expected in [0, 1]) as exactly width runes. NaN and
// negative progress render as an empty bar; overflow is cut at width.
func Render(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(progress) || progress < 0 {
		progress = 0
	}

	exact := progress * float64(width)
	whole := math.Floor(exact)

	full := width
	if whole < float64(width) {
		full = int(whole)
	}

	var b strings.Builder
	b.Grow(width * utf8.RuneLen(fullBlock))
	b.WriteString(strings.Repeat(string(fullBlock), full))

	if glyph, ok := partialGlyph((exact - whole) * 100); ok && full < width {
		b.WriteRune(glyph)
		full++
	}
	b.WriteString(strings.Repeat(" ", width-full))
	return b.String()
}

func partialGlyph(percent float64) (rune, bool) {
	if percent < 0 || percent > 100 {
		return 0, false
	}
	for i := len(partials) - 1; i >= 0; i-- {
		if percent >= partials[i].lower {
			return partials[i].glyph, true
		}
	}
	return 0, false
}
