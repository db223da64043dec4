package core

import "math"

// DrawKind selects how a DrawCmd is rasterized.
type DrawKind int

const (
	DrawFill    DrawKind = iota // fill Box with Glyph
	DrawOutline                 // box-drawing frame around Box
	DrawGlyph                   // single glyph at the centre of Box
	DrawText                    // Text centred on Box.CenterX at Box.Y
)

// DrawCmd is one abstract drawing instruction in world units.
type DrawCmd struct {
	Kind     DrawKind
	Box      Box
	Glyph    rune
	Text     string
	Color    Color
	Rotation float64 // radians; a half turn draws the glyph upside down
	Alpha    float64 // 0 is invisible, 1 is opaque
}

// OverlayLine is a line of text drawn centred over the playfield.
type OverlayLine struct {
	Text  string
	Color Color
}

// DrawList is everything a game wants on screen for one frame.
// Commands are painted in order, so later commands cover earlier ones.
type DrawList struct {
	Width, Height float64 // world size the boxes are expressed in
	Cmds          []DrawCmd
	Overlay       []OverlayLine
}

// NewDrawList creates an empty list for a world of the given size.
func NewDrawList(width, height float64) *DrawList {
	return &DrawList{Width: width, Height: height}
}

// Add appends a prepared command.
func (d *DrawList) Add(cmd DrawCmd) {
	d.Cmds = append(d.Cmds, cmd)
}

// Fill appends a filled rectangle.
func (d *DrawList) Fill(b Box, fill rune, c Color) {
	d.Cmds = append(d.Cmds, DrawCmd{Kind: DrawFill, Box: b, Glyph: fill, Color: c, Alpha: 1})
}

// Outline appends a rectangle frame.
func (d *DrawList) Outline(b Box, c Color) {
	d.Cmds = append(d.Cmds, DrawCmd{Kind: DrawOutline, Box: b, Color: c, Alpha: 1})
}

// Glyph appends a single rotated, translucent glyph.
func (d *DrawList) Glyph(b Box, g rune, c Color, rotation, alpha float64) {
	d.Cmds = append(d.Cmds, DrawCmd{Kind: DrawGlyph, Box: b, Glyph: g, Color: c, Rotation: rotation, Alpha: alpha})
}

// Text appends a text label.
func (d *DrawList) Text(b Box, text string, c Color, alpha float64) {
	d.Cmds = append(d.Cmds, DrawCmd{Kind: DrawText, Box: b, Text: text, Color: c, Alpha: alpha})
}

// AddOverlay appends a centred overlay line.
func (d *DrawList) AddOverlay(text string, c Color) {
	d.Overlay = append(d.Overlay, OverlayLine{Text: text, Color: c})
}

// upsideDown maps glyphs to a rotated counterpart.
var upsideDown = map[rune]rune{
	'M': 'W', 'W': 'M',
	'^': 'v', 'v': '^',
	'A': '∀', 'm': 'w', 'w': 'm',
	'n': 'u', 'u': 'n',
	'▲': '▼', '▼': '▲',
	'☻': '☺',
}

func rotateGlyph(g rune, rotation float64) rune {
	turn := math.Mod(math.Abs(rotation), 2*math.Pi)
	if turn < math.Pi/2 || turn > 3*math.Pi/2 {
		return g
	}
	if r, ok := upsideDown[g]; ok {
		return r
	}
	return g
}

// toCells converts a world box to the cell rectangle it covers on s.
// Any visible box covers at least one cell.
func (d *DrawList) toCells(s *Screen, b Box) Rect {
	sx := float64(s.Width()) / d.Width
	sy := float64(s.Height()) / d.Height
	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Rasterize paints the list onto s, scaling world units to cells.
// The screen is not cleared first.
func (d *DrawList) Rasterize(s *Screen) {
	if d.Width <= 0 || d.Height <= 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}
	for _, cmd := range d.Cmds {
		if cmd.Alpha <= 0 {
			continue
		}
		color := cmd.Color.Faded(cmd.Alpha)
		r := d.toCells(s, cmd.Box)

		switch cmd.Kind {
		case DrawFill:
			s.DrawRect(r, rotateGlyph(cmd.Glyph, cmd.Rotation), color)
		case DrawOutline:
			if r.W < 2 || r.H < 2 {
				s.DrawRect(r, '█', color)
				continue
			}
			s.DrawBox(r, color)
		case DrawGlyph:
			s.SetColored(r.X+r.W/2, r.Y+r.H/2, rotateGlyph(cmd.Glyph, cmd.Rotation), color)
		case DrawText:
			width := len([]rune(cmd.Text))
			cx := int(cmd.Box.CenterX() * float64(s.Width()) / d.Width)
			s.DrawText(cx-width/2, r.Y, cmd.Text, color)
		}
	}

	if len(d.Overlay) == 0 {
		return
	}
	top := (s.Height() - len(d.Overlay)) / 2
	widest := 0
	for _, line := range d.Overlay {
		if w := len([]rune(line.Text)); w > widest {
			widest = w
		}
	}
	panel := NewRect((s.Width()-widest)/2-2, top-1, widest+4, len(d.Overlay)+2)
	s.DrawRect(panel, ' ', ColorDefault)
	s.DrawBox(panel, ColorGray)
	for i, line := range d.Overlay {
		s.DrawTextCentered(top+i, line.Text, line.Color)
	}
}
