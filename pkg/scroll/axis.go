package scroll

import (
	"log/slog"

	"gridcanvas/pkg/observe"
	"gridcanvas/pkg/render"
)

// Axis is the scroll controller of one dimension. It owns the scroll
// position and the hover state of its two buttons; every change repaints
// synchronously. Position and visibility changes repaint everything
// through the host's redraw callback, hover changes repaint just the
// affected button.
type Axis struct {
	orient  Orientation
	surface render.Surface

	width, height observe.Source[int]
	size, extent  observe.Source[int]
	visible       *observe.Computed[bool]
	// reserve is the length cut from the far end of the bar, see
	// layoutBar. Nil means none.
	reserve func() int

	position *observe.Value[int]
	begin    *Button
	end      *Button
	track    Track

	// shown is the visibility of the last repaint. settling is set while
	// extentsChanged clamps, so the clamp does not repaint on its own.
	shown    bool
	settling bool

	step      int
	theme     *Theme
	redrawAll func(*render.Context)
	logger    *slog.Logger
}

type axisConfig struct {
	orient        Orientation
	surface       render.Surface
	width, height observe.Source[int]
	size, extent  observe.Source[int]
	reserve       func() int
	redrawAll     func(*render.Context)
	opts          *options
}

func newAxis(c axisConfig) *Axis {
	a := &Axis{
		orient:    c.orient,
		surface:   c.surface,
		width:     c.width,
		height:    c.height,
		size:      c.size,
		extent:    c.extent,
		reserve:   c.reserve,
		position:  observe.NewValue(0),
		step:      c.opts.step,
		theme:     &c.opts.theme,
		redrawAll: c.redrawAll,
		logger:    c.opts.logger.With("axis", c.orient.String()),
	}
	a.visible = observe.NewComputed(func() bool {
		return a.extent.Get() > a.size.Get()
	}, a.size, a.extent)
	a.begin = newButton(c.orient, Begin, a.theme)
	a.end = newButton(c.orient, End, a.theme)
	a.track = Track{orient: c.orient, theme: a.theme}

	a.shown = a.visible.Get()

	// visible subscribed to size and extent first, so it is current by the
	// time extentsChanged clamps and repaints.
	a.visible.Watch(func() {
		a.logger.Debug("visibility changed", "visible", a.visible.Get())
		if !a.visible.Get() {
			a.begin.SetHover(false)
			a.end.SetHover(false)
		}
	})
	a.size.Watch(a.extentsChanged)
	a.extent.Watch(a.extentsChanged)
	a.position.Watch(func() {
		a.logger.Debug("position changed", "position", a.position.Get())
		if !a.settling {
			a.redraw()
		}
	})
	a.begin.Watch(func() { a.repaintButton(a.begin) })
	a.end.Watch(func() { a.repaintButton(a.end) })
	return a
}

// Orientation reports which dimension the axis scrolls.
func (a *Axis) Orientation() Orientation { return a.orient }

// Position is the current scroll offset in pixels.
func (a *Axis) Position() int { return a.position.Get() }

// MaxPosition is the largest reachable offset: the part of the content
// that does not fit the viewport.
func (a *Axis) MaxPosition() int {
	return max(a.extent.Get()-a.size.Get(), 0)
}

// Visible reports whether the content overflows the viewport on this axis.
func (a *Axis) Visible() bool { return a.visible.Get() }

// HoverBegin reports whether the pointer is over the top or left button.
func (a *Axis) HoverBegin() bool { return a.begin.Hovered() }

// HoverEnd reports whether the pointer is over the bottom or right button.
func (a *Axis) HoverEnd() bool { return a.end.Hovered() }

// Button returns the button with the given role.
func (a *Axis) Button(r Role) *Button {
	if r == End {
		return a.end
	}
	return a.begin
}

// PointerMove updates hover state for a pointer at (x, y), relative to the
// surface origin. A hidden bar has nothing to hover.
func (a *Axis) PointerMove(x, y float64) {
	overBegin, overEnd := false, false
	if a.visible.Get() {
		l := a.layout()
		overBegin = a.begin.HitTest(x, y, l.begin)
		overEnd = a.end.HitTest(x, y, l.end)
	}
	a.begin.SetHover(overBegin)
	a.end.SetHover(overEnd)
}

// PointerLeave clears hover state when the pointer leaves the surface.
func (a *Axis) PointerLeave() {
	a.begin.SetHover(false)
	a.end.SetHover(false)
}

// WindowLeave clears hover state when the pointer leaves the window.
func (a *Axis) WindowLeave() {
	a.PointerLeave()
}

// Click steps the position towards the hovered button.
func (a *Axis) Click() {
	p := a.position.Get()
	switch {
	case a.begin.Hovered():
		a.position.Set(max(p-a.step, 0))
	case a.end.Hovered():
		a.position.Set(min(p+a.step, a.MaxPosition()))
	}
}

// Draw paints the scrollbar. A hidden bar clears its band instead.
func (a *Axis) Draw(ctx *render.Context) {
	l := a.layout()
	if !a.visible.Get() {
		ctx.SetFillColor(a.theme.Clear)
		fillRect(ctx, l.band)
		return
	}
	ctx.SetImageSmoothing(false)
	p := a.position.Get()
	a.begin.Draw(ctx, l.begin, p == 0)
	a.track.Draw(ctx, l.track, p, ThumbLength)
	a.end.Draw(ctx, l.end, p == a.MaxPosition())
}

func (a *Axis) layout() barLayout {
	reserve := 0
	if a.reserve != nil {
		reserve = a.reserve()
	}
	return layoutBar(a.orient, a.width.Get(), a.height.Get(), reserve)
}

// extentsChanged brings position back in range after the viewport or
// content changed and repaints once if that moved the position or
// toggled the bar.
func (a *Axis) extentsChanged() {
	p := a.position.Get()
	a.settling = true
	a.position.Set(min(p, a.MaxPosition()))
	a.settling = false

	visible := a.visible.Get()
	if visible == a.shown && a.position.Get() == p {
		return
	}
	a.shown = visible
	a.redraw()
}

func (a *Axis) redraw() {
	a.redrawAll(render.MustContext(a.surface))
}

func (a *Axis) repaintButton(b *Button) {
	if !a.visible.Get() {
		return
	}
	l := a.layout()
	r, passive := l.begin, a.position.Get() == 0
	if b.Role() == End {
		r, passive = l.end, a.position.Get() == a.MaxPosition()
	}
	ctx := render.MustContext(a.surface)
	ctx.SetImageSmoothing(false)
	b.Draw(ctx, r, passive)
}
