package progressbar

import (
	"math"
	"testing"
	"unicode/utf8"
)

func TestRender(t *testing.T) {
	tests := []struct {
		progress float64
		width    int
		want     string
	}{
		// empty
		{0.0, 1, " "},
		{0.0, 4, "    "},
		{0.0, 8, "        "},
		{0.0, 10, "          "},

		// full
		{1.0, 1, "█"},
		{1.0, 4, "████"},
		{1.0, 8, "████████"},
		{1.0, 10, "██████████"},

		// half
		{0.5, 1, "▌"},
		{0.5, 4, "██  "},
		{0.5, 8, "████    "},
		{0.5, 10, "█████     "},

		// quarter
		{0.25, 1, "▎"},
		{0.25, 2, "▌ "},
		{0.25, 3, "▊  "},
		{0.25, 4, "█   "},
		{0.25, 8, "██      "},
		{0.25, 10, "██▌       "},

		// near empty
		{0.0001, 10, "          "},
		{0.001, 10, "          "},
		{0.00624, 10, "          "},
		{0.00625, 10, "▏         "},
		{0.01, 10, "▏         "},
		{0.1, 10, "█         "},

		// near full
		{0.9, 10, "█████████ "},
		{0.99, 10, "█████████▉"},
		{0.999, 10, "██████████"},
		{0.9999, 10, "██████████"},
	}
	for _, tt := range tests {
		if got := Render(tt.progress, tt.width); got != tt.want {
			t.Errorf("Render(%v, %d) = %q, want %q", tt.progress, tt.width, got, tt.want)
		}
	}
}

func TestRenderWidthInvariant(t *testing.T) {
	for width := 0; width <= 24; width++ {
		for i := 0; i <= 1000; i++ {
			p := float64(i) / 1000
			got := Render(p, width)
			if n := utf8.RuneCountInString(got); n != width {
				t.Fatalf("Render(%v, %d) has %d runes: %q", p, width, n, got)
			}
		}
	}
}

func TestRenderOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     string
	}{
		{"nan", math.NaN(), "     "},
		{"negative", -0.3, "     "},
		{"overflow", 1.7, "█████"},
		{"infinite", math.Inf(1), "█████"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.progress, 5); got != tt.want {
				t.Fatalf("Render(%v, 5) = %q, want %q", tt.progress, got, tt.want)
			}
		})
	}
}

func TestRenderNegativeWidth(t *testing.T) {
	if got := Render(0.5, -3); got != "" {
		t.Fatalf("Render with negative width = %q, want empty", got)
	}
}

func TestPartialGlyphBoundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    rune
		ok      bool
	}{
		{0, 0, false},
		{6.2499, 0, false},
		{6.25, '▏', true},
		{18.7499, '▏', true},
		{18.75, '▎', true},
		{31.25, '▍', true},
		{43.75, '▌', true},
		{50, '▌', true},
		{56.25, '▋', true},
		{68.75, '▊', true},
		{81.25, '▉', true},
		{93.7499, '▉', true},
		{93.75, '█', true},
		{100, '█', true},
		{100.01, 0, false},
	}
	for _, tt := range tests {
		got, ok := partialGlyph(tt.percent)
		if got != tt.want || ok != tt.ok {
			t.Errorf("partialGlyph(%v) = %q,%v want %q,%v", tt.percent, got, ok, tt.want, tt.ok)
		}
	}
}
