package core

import (
	"math"
	"strings"
	"testing"
)

func TestRasterizeScalesWorldToCells(t *testing.T) {
	s := NewScreen(80, 30)
	d := NewDrawList(800, 600)
	d.Fill(NewBox(0, 560, 800, 40), '▀', ColorGreen)
	d.Rasterize(s)

	// 560/600*30 = 28, 600/600*30 = 30
	for y := 28; y < 30; y++ {
		for x := 0; x < 80; x++ {
			if c := s.GetCell(x, y); c.Rune != '▀' || c.Color != ColorGreen {
				t.Fatalf("cell (%d, %d) = %+v, expected floor fill", x, y, c)
			}
		}
	}
	if s.Get(0, 27) != ' ' {
		t.Error("fill leaked above the floor")
	}
}

func TestRasterizeTinyBoxCoversOneCell(t *testing.T) {
	s := NewScreen(80, 30)
	d := NewDrawList(800, 600)
	d.Fill(NewBox(405, 305, 2, 2), '*', ColorYellow)
	d.Rasterize(s)

	if s.Get(40, 15) != '*' {
		t.Errorf("expected particle at (40, 15), row = %q", s.Row(15))
	}
}

func TestRasterizeGlyphRotation(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		expected rune
	}{
		{"upright", 0, 'M'},
		{"half turn", math.Pi, 'W'},
		{"full turn", 2 * math.Pi, 'M'},
		{"quarter turn", math.Pi / 4, 'M'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(80, 30)
			d := NewDrawList(800, 600)
			d.Glyph(NewBox(100, 100, 30, 30), 'M', ColorRed, tc.rotation, 1)
			d.Rasterize(s)

			r := d.toCells(s, NewBox(100, 100, 30, 30))
			if got := s.Get(r.X+r.W/2, r.Y+r.H/2); got != tc.expected {
				t.Errorf("glyph = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestRasterizeAlpha(t *testing.T) {
	s := NewScreen(80, 30)
	d := NewDrawList(800, 600)
	d.Glyph(NewBox(0, 0, 10, 10), '@', ColorRed, 0, 0)
	d.Glyph(NewBox(100, 0, 10, 10), '@', ColorRed, 0, 0.2)
	d.Rasterize(s)

	if s.Get(0, 0) != ' ' {
		t.Error("fully transparent glyph should not be drawn")
	}
	if c := s.GetCell(10, 0); c.Rune != '@' || c.Color != ColorGray {
		t.Errorf("faint glyph = %+v, expected gray @", c)
	}
}

func TestRasterizeOverlay(t *testing.T) {
	s := NewScreen(40, 12)
	d := NewDrawList(800, 600)
	d.AddOverlay("PAUSED", ColorYellow)
	d.Rasterize(s)

	found := false
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), "PAUSED") {
			found = true
		}
	}
	if !found {
		t.Errorf("overlay text not rendered:\n%s", s.String())
	}
}
