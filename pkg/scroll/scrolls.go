// Package scroll draws a pair of scrollbars straight onto the grid's
// bitmap and turns pointer events into scroll offsets.
//
// The bars are chrome painted over the grid: the host redraws its content
// for the current offsets and then calls Scrolls.Draw. Whenever an offset
// or a bar's visibility changes, Scrolls asks the host to redraw
// everything through the callback passed to New.
//
// The vertical bar is dominant: it always spans the full height, and
// while it is visible the horizontal bar stops short of the bottom-right
// corner.
package scroll

import (
	"log/slog"

	"gridcanvas/pkg/logging"
	"gridcanvas/pkg/observe"
	"gridcanvas/pkg/render"
)

// Extents are the sizes the scrollbars derive their state from. The host
// owns them; Scrolls only reads and watches them.
type Extents struct {
	Width         observe.Source[int]
	Height        observe.Source[int]
	ContentWidth  observe.Source[int]
	ContentHeight observe.Source[int]
}

type options struct {
	step   int
	theme  Theme
	logger *slog.Logger
}

// Option configures Scrolls.
type Option func(*options)

// WithStep sets how many pixels one arrow click scrolls. Non-positive
// values are ignored.
func WithStep(step int) Option {
	return func(o *options) {
		if step > 0 {
			o.step = step
		}
	}
}

// WithTheme sets the chrome colors.
func WithTheme(t Theme) Option {
	return func(o *options) { o.theme = t }
}

// WithLogger sets the logger state transitions are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Scrolls coordinates the vertical and horizontal scrollbars of one
// surface.
type Scrolls struct {
	Vertical   *Axis
	Horizontal *Axis
}

// New builds both scrollbars for surface. redrawAll must repaint the whole
// surface, grid content first and then the chrome via Draw.
func New(surface render.Surface, ext Extents, redrawAll func(*render.Context), opts ...Option) *Scrolls {
	o := &options{
		step:   DefaultStep,
		theme:  DefaultTheme(),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if redrawAll == nil {
		redrawAll = func(*render.Context) {}
	}

	s := &Scrolls{}
	s.Vertical = newAxis(axisConfig{
		orient:    Vertical,
		surface:   surface,
		width:     ext.Width,
		height:    ext.Height,
		size:      ext.Height,
		extent:    ext.ContentHeight,
		redrawAll: redrawAll,
		opts:      o,
	})
	s.Horizontal = newAxis(axisConfig{
		orient:  Horizontal,
		surface: surface,
		width:   ext.Width,
		height:  ext.Height,
		size:    ext.Width,
		extent:  ext.ContentWidth,
		reserve: func() int {
			if s.Vertical.Visible() {
				return ArrowBlockSize
			}
			return 0
		},
		redrawAll: redrawAll,
		opts:      o,
	})
	return s
}

// VerticalOffset is the current vertical scroll position.
func (s *Scrolls) VerticalOffset() int { return s.Vertical.Position() }

// HorizontalOffset is the current horizontal scroll position.
func (s *Scrolls) HorizontalOffset() int { return s.Horizontal.Position() }

// Draw paints the vertical bar and then the horizontal one.
func (s *Scrolls) Draw(ctx *render.Context) {
	s.Vertical.Draw(ctx)
	s.Horizontal.Draw(ctx)
}

// PointerMove forwards a pointer position to both axes.
func (s *Scrolls) PointerMove(x, y float64) {
	s.Vertical.PointerMove(x, y)
	s.Horizontal.PointerMove(x, y)
}

// PointerLeave handles the pointer leaving the surface.
func (s *Scrolls) PointerLeave() {
	s.Vertical.PointerLeave()
	s.Horizontal.PointerLeave()
}

// WindowLeave handles the pointer leaving the containing window.
func (s *Scrolls) WindowLeave() {
	s.Vertical.WindowLeave()
	s.Horizontal.WindowLeave()
}

// Click handles a click anywhere on the surface.
func (s *Scrolls) Click() {
	s.Vertical.Click()
	s.Horizontal.Click()
}
