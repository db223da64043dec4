// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units (pixels).
// The simulation works entirely in Boxes; Rects only appear when drawing.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal centre.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// Overlaps reports whether two boxes share any interior area.
// Touching edges do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.Right() &&
		other.X < b.Right() &&
		b.Y < other.Bottom() &&
		other.Y < b.Bottom()
}

// OverlapsX reports whether the horizontal spans of two boxes intersect.
func (b Box) OverlapsX(other Box) bool {
	return b.X < other.Right() && other.X < b.Right()
}

// LandsOn reports whether a, moving with vertical velocity vy, is settling onto
// the top surface of surface this tick.
//
// The bottom edge of a must lie in [surface.Y, surface.Y+band+vy]. Adding vy to the
// band keeps fast falls from tunnelling through thin platforms.
func LandsOn(a, surface Box, vy, band float64) bool {
	if vy < 0 || !a.OverlapsX(surface) {
		return false
	}
	bottom := a.Bottom()
	return bottom >= surface.Y && bottom <= surface.Y+band+vy
}

// HeadButts reports whether a, moving upward with velocity vy, struck the
// underside of surface this tick. It mirrors LandsOn for the bottom edge.
func HeadButts(a, surface Box, vy, band float64) bool {
	if vy >= 0 || !a.OverlapsX(surface) {
		return false
	}
	under := surface.Bottom()
	return a.Y <= under && a.Y >= under+vy-band
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
