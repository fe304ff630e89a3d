package grid

import (
	"image"
	"log/slog"

	"gridcanvas/pkg/logging"
	"gridcanvas/pkg/observe"
	"gridcanvas/pkg/render"
	"gridcanvas/pkg/scroll"
)

// Host ties a Grid, the bitmap it is drawn on and its scrollbars
// together. It owns the viewport and content sizes the scrollbars watch
// and is the redraw callback they call back into.
type Host struct {
	grid    *Grid
	canvas  *render.Canvas
	scrolls *scroll.Scrolls
	logger  *slog.Logger

	width, height               *observe.Value[int]
	contentWidth, contentHeight *observe.Value[int]
}

// NewHost returns a host drawing g onto a width by height canvas. The
// grid is drawn once before NewHost returns.
func NewHost(g *Grid, width, height int, logger *slog.Logger, opts ...scroll.Option) *Host {
	if logger == nil {
		logger = logging.Discard()
	}
	h := &Host{
		grid:          g,
		canvas:        render.NewCanvas(width, height),
		logger:        logger,
		width:         observe.NewValue(width),
		height:        observe.NewValue(height),
		contentWidth:  observe.NewValue(g.ContentWidth()),
		contentHeight: observe.NewValue(g.ContentHeight()),
	}
	opts = append([]scroll.Option{scroll.WithLogger(logger)}, opts...)
	h.scrolls = scroll.New(h.canvas, scroll.Extents{
		Width:         h.width,
		Height:        h.height,
		ContentWidth:  h.contentWidth,
		ContentHeight: h.contentHeight,
	}, h.DrawAll, opts...)
	h.Redraw()
	return h
}

// DrawAll paints the grid at the current offsets and the scrollbars on top.
func (h *Host) DrawAll(ctx *render.Context) {
	h.grid.Draw(ctx, h.scrolls.HorizontalOffset(), h.scrolls.VerticalOffset())
	h.scrolls.Draw(ctx)
}

// Redraw repaints the canvas.
func (h *Host) Redraw() {
	h.DrawAll(render.MustContext(h.canvas))
}

// Resize changes the viewport and repaints.
func (h *Host) Resize(width, height int) {
	if width == h.width.Get() && height == h.height.Get() {
		return
	}
	h.logger.Debug("resize", "width", width, "height", height)
	h.canvas.Resize(width, height)
	h.width.Set(width)
	h.height.Set(height)
	h.Redraw()
}

// ContentChanged refreshes the content size after the grid's columns or
// rows were edited, then repaints.
func (h *Host) ContentChanged() {
	h.contentWidth.Set(h.grid.ContentWidth())
	h.contentHeight.Set(h.grid.ContentHeight())
	h.Redraw()
}

// Grid returns the hosted grid.
func (h *Host) Grid() *Grid { return h.grid }

// Scrolls returns the scrollbars.
func (h *Host) Scrolls() *scroll.Scrolls { return h.scrolls }

// Image returns the current bitmap.
func (h *Host) Image() *image.RGBA { return h.canvas.Image() }

// SavePNG writes the current bitmap to filename.
func (h *Host) SavePNG(filename string) error { return h.canvas.SavePNG(filename) }

// PointerMove, PointerLeave, WindowLeave and Click forward pointer events
// to the scrollbars. Coordinates are relative to the canvas origin.
func (h *Host) PointerMove(x, y float64) { h.scrolls.PointerMove(x, y) }
func (h *Host) PointerLeave()            { h.scrolls.PointerLeave() }
func (h *Host) WindowLeave()             { h.scrolls.WindowLeave() }
func (h *Host) Click()                   { h.scrolls.Click() }

// Offsets returns the current horizontal and vertical scroll offsets.
func (h *Host) Offsets() (x, y int) {
	return h.scrolls.HorizontalOffset(), h.scrolls.VerticalOffset()
}
