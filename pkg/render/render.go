// Package render provides the drawing context the grid and its
// scrollbars paint into. Context is a thin canvas-style API over a
// *gg.Context backed by an *image.RGBA, so callers can mix path filling
// with direct pixel reads and writes.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Context is a 2D drawing context over an RGBA bitmap.
type Context struct {
	dc        *gg.Context
	im        *image.RGBA
	smoothing bool
}

// NewContext returns a Context drawing into im.
func NewContext(im *image.RGBA) *Context {
	return &Context{dc: gg.NewContextForRGBA(im), im: im, smoothing: true}
}

func (c *Context) Width() int  { return c.im.Bounds().Dx() }
func (c *Context) Height() int { return c.im.Bounds().Dy() }

// Image returns the bitmap the context draws into.
func (c *Context) Image() *image.RGBA { return c.im }

// SetImageSmoothing toggles smoothing. With smoothing disabled rectangle
// edges are snapped to whole pixels so nothing is blended at the edges.
func (c *Context) SetImageSmoothing(on bool) { c.smoothing = on }

// ImageSmoothing reports whether smoothing is enabled.
func (c *Context) ImageSmoothing() bool { return c.smoothing }

// SetFillColor sets the color used by FillRect and Clear.
func (c *Context) SetFillColor(col color.Color) { c.dc.SetColor(col) }

// SetStrokeColor sets the color used by line helpers and text. gg shares
// one current color, so it is the same call as SetFillColor.
func (c *Context) SetStrokeColor(col color.Color) { c.dc.SetColor(col) }

// SetLineWidth sets the stroke width in pixels.
func (c *Context) SetLineWidth(w float64) { c.dc.SetLineWidth(w) }

// SetFontFace sets the face used by DrawString.
func (c *Context) SetFontFace(face font.Face) { c.dc.SetFontFace(face) }

// Clear fills the whole bitmap with the current fill color.
func (c *Context) Clear() { c.dc.Clear() }

// FillRect fills the rectangle at (x, y) of size w by h.
func (c *Context) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if !c.smoothing {
		x0, y0 := math.Round(x), math.Round(y)
		x1, y1 := math.Round(x+w), math.Round(y+h)
		x, y, w, h = x0, y0, x1-x0, y1-y0
	}
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// StrokeLine strokes a straight line between two points.
func (c *Context) StrokeLine(x1, y1, x2, y2 float64) {
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// DrawString draws s anchored at (x, y); ax and ay are the anchor
// fractions of the text box as in gg.
func (c *Context) DrawString(s string, x, y, ax, ay float64) {
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// Clip restricts drawing to the given rectangle until the returned
// function is called. gg keeps the clip mask across Pop, so restore
// resets it explicitly; clips do not nest.
func (c *Context) Clip(x, y, w, h float64) (restore func()) {
	c.dc.Push()
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Clip()
	return func() {
		c.dc.Pop()
		c.dc.ResetClip()
	}
}

// ImageData copies the pixels inside r into a new zero-origin image.
// Pixels of r outside the bitmap come back transparent.
func (c *Context) ImageData(r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), c.im, r.Min, draw.Src)
	return out
}

// PutImageData writes img into the bitmap with its origin at (x, y),
// replacing the pixels underneath.
func (c *Context) PutImageData(img *image.RGBA, x, y int) {
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(c.im, dst, img, b.Min, draw.Src)
}

// SavePNG writes the bitmap to filename.
func (c *Context) SavePNG(filename string) error {
	return c.dc.SavePNG(filename)
}
