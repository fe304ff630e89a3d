// Package glyph rasterizes the small arrowheads drawn on scrollbar
// buttons. Glyphs are written straight into an RGBA pixel buffer, one run
// of pixels per row, so they stay pixel exact regardless of how the host
// surface scales or smooths images.
package glyph

import (
	"image"
	"image/color"
)

// Direction is the way an arrow points.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ColorState picks the glyph color.
type ColorState int

const (
	Active ColorState = iota
	Passive
)

// Band is the width of the widest glyph run, Depth the number of runs.
const (
	Band  = 7
	Depth = 4
)

var (
	ActiveColor  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	PassiveColor = color.RGBA{0xa3, 0xa3, 0xa3, 0xff}
)

// Color returns the pixel color for s.
func (s ColorState) Color() color.RGBA {
	if s == Passive {
		return PassiveColor
	}
	return ActiveColor
}

// Size returns the width and height of the region an arrow pointing in d
// occupies.
func Size(d Direction) (w, h int) {
	if d == Left || d == Right {
		return Depth, Band
	}
	return Band, Depth
}

// run returns the start offset and length of the i-th run of an arrow
// pointing in d. Up and Left grow from the tip, Down and Right shrink
// towards it.
func run(d Direction, i int) (start, n int) {
	if d == Up || d == Left {
		return Depth - 1 - i, 1 + 2*i
	}
	return i, Band - 2*i
}

// DrawArrow paints an arrowhead pointing in d into region, which is
// expected to hold the button background already. Runs are laid out
// across the region's origin; pixels falling outside the region bounds
// are skipped.
func DrawArrow(region *image.RGBA, d Direction, state ColorState) {
	b := region.Bounds()
	c := state.Color()
	for i := 0; i < Depth; i++ {
		start, n := run(d, i)
		for j := start; j < start+n; j++ {
			x, y := b.Min.X+j, b.Min.Y+i
			if d == Left || d == Right {
				x, y = b.Min.X+i, b.Min.Y+j
			}
			if !(image.Point{x, y}).In(b) {
				continue
			}
			off := region.PixOffset(x, y)
			region.Pix[off+0] = c.R
			region.Pix[off+1] = c.G
			region.Pix[off+2] = c.B
			region.Pix[off+3] = c.A
		}
	}
}
