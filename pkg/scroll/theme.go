package scroll

import "image/color"

// Metrics of the scrollbar chrome, in pixels.
const (
	// ArrowBlockSize is the side of an arrow button and the thickness of
	// a scrollbar.
	ArrowBlockSize = 17
	// ThumbSize is the thickness of the thumb across the bar.
	ThumbSize = 13
	// ThumbLength is the thumb extent along the bar. It does not follow
	// the viewport to content ratio.
	ThumbLength = 50
	// DefaultStep is how far one arrow click moves the position.
	DefaultStep = 3
)

// Theme holds the fill colors of the scrollbar chrome. Glyph colors are
// fixed by package glyph.
type Theme struct {
	// Clear fills the band of a hidden scrollbar.
	Clear color.RGBA
	// Track is the background of the track and idle buttons.
	Track color.RGBA
	// Hover is the background of a hovered arrow button.
	Hover color.RGBA
	Thumb color.RGBA
}

// DefaultTheme returns the stock light theme.
func DefaultTheme() Theme {
	return Theme{
		Clear: color.RGBA{0xff, 0xff, 0xff, 0xff},
		Track: color.RGBA{0xf1, 0xf1, 0xf1, 0xff},
		Hover: color.RGBA{0xd2, 0xd2, 0xd2, 0xff},
		Thumb: color.RGBA{0xc1, 0xc1, 0xc1, 0xff},
	}
}
