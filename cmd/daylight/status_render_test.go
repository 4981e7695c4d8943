package main

import (
	"io"
	"strings"
	"testing"
)

func TestColorDelta(t *testing.T) {
	cases := []struct {
		value string
		color string
	}{
		{"+1m 5s", ansiGreen},
		{"-42s", ansiRed},
		{"+0s", ""},
	}
	for _, tc := range cases {
		got := colorDelta(tc.value, true)
		if tc.color == "" {
			if got != tc.value {
				t.Fatalf("colorDelta(%q) = %q, want unchanged", tc.value, got)
			}
			continue
		}
		if !strings.HasPrefix(got, tc.color) || !strings.HasSuffix(got, ansiReset) {
			t.Fatalf("colorDelta(%q) = %q, want %q wrapping", tc.value, got, tc.color)
		}
	}
	if got := colorDelta("-42s", false); got != "-42s" {
		t.Fatalf("expected plain text without color, got %q", got)
	}
}

func TestRenderSectionHeader(t *testing.T) {
	lines := renderSectionHeader(" Daylight ", false)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "== Daylight ==" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if len(lines[1]) != len(lines[0]) || strings.Trim(lines[1], "-") != "" {
		t.Fatalf("rule %q does not underline %q", lines[1], lines[0])
	}
}

func TestRenderTableAlignment(t *testing.T) {
	out := renderTable([]string{"Event", "Change"}, [][]string{{"Sunrise", "+1m 0s"}, {"Sunset"}}, []columnAlignment{alignLeft, alignRight})
	if !strings.Contains(out, "Sunrise") || !strings.Contains(out, "+1m 0s") {
		t.Fatalf("table missing cells:\n%s", out)
	}
	if !strings.Contains(out, "╭") {
		t.Fatalf("expected rounded style:\n%s", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
