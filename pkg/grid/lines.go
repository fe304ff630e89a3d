package grid

import (
	"math"

	"gridcanvas/pkg/render"
)

// HorizontalLine runs from X1 to X2 at height Y.
type HorizontalLine struct {
	Y, X1, X2 float64
}

// VerticalLine runs from Y1 to Y2 at X.
type VerticalLine struct {
	X, Y1, Y2 float64
}

// DrawHorizontalLine strokes line through the middle of its pixel row so a
// one pixel stroke stays one pixel wide.
func DrawHorizontalLine(ctx *render.Context, line HorizontalLine) {
	y := math.Floor(line.Y) + 0.5
	ctx.StrokeLine(line.X1, y, line.X2, y)
}

// DrawVerticalLine is DrawHorizontalLine for columns.
func DrawVerticalLine(ctx *render.Context, line VerticalLine) {
	x := math.Floor(line.X) + 0.5
	ctx.StrokeLine(x, line.Y1, x, line.Y2)
}

// DrawInCell clips drawing to the inside of the cell at (x, y), leaving
// its top and left grid lines alone. Call the returned function when done.
func DrawInCell(ctx *render.Context, x, y, w, h float64) (restore func()) {
	return ctx.Clip(x+1, y+1, w-1, h-1)
}
