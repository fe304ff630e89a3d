package scroll

import (
	"image"

	"gridcanvas/pkg/glyph"
	"gridcanvas/pkg/observe"
	"gridcanvas/pkg/render"
)

// Button is an arrow button at one end of a scrollbar. It owns only its
// hover state; where it sits is derived from the viewport on each call.
type Button struct {
	orient Orientation
	role   Role
	theme  *Theme
	hover  *observe.Value[bool]
}

func newButton(o Orientation, role Role, theme *Theme) *Button {
	return &Button{orient: o, role: role, theme: theme, hover: observe.NewValue(false)}
}

// Role reports which end of the bar the button sits at.
func (b *Button) Role() Role { return b.role }

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.hover.Get() }

// SetHover updates the hover state. Watchers registered with Watch run
// only when the state actually changes.
func (b *Button) SetHover(on bool) { b.hover.Set(on) }

// Watch registers fn to run after each hover change.
func (b *Button) Watch(fn func()) func() { return b.hover.Watch(fn) }

// Direction is the way the button's arrow points.
func (b *Button) Direction() glyph.Direction {
	switch {
	case b.orient == Vertical && b.role == Begin:
		return glyph.Up
	case b.orient == Vertical:
		return glyph.Down
	case b.role == Begin:
		return glyph.Left
	default:
		return glyph.Right
	}
}

// HitTest reports whether (x, y) lies on the button occupying r. The inner
// edges are exclusive; the edges at the viewport border are not checked,
// so a pointer dragged past the border still counts as over the button.
// A horizontal end button also stops at its right edge, which borders
// the vertical bar when the corner is reserved.
func (b *Button) HitTest(x, y float64, r image.Rectangle) bool {
	if r.Empty() {
		return false
	}
	if b.orient == Vertical {
		if x <= float64(r.Min.X) {
			return false
		}
		if b.role == Begin {
			return y < float64(r.Max.Y)
		}
		return y > float64(r.Min.Y)
	}
	if y <= float64(r.Min.Y) {
		return false
	}
	if b.role == Begin {
		return x < float64(r.Max.X)
	}
	return x > float64(r.Min.X) && x <= float64(r.Max.X)
}

// Draw fills the button background for the current hover state and
// rasterizes its arrow on top.
func (b *Button) Draw(ctx *render.Context, r image.Rectangle, passive bool) {
	if r.Empty() {
		return
	}
	bg := b.theme.Track
	if b.hover.Get() {
		bg = b.theme.Hover
	}
	ctx.SetFillColor(bg)
	fillRect(ctx, r)

	dir := b.Direction()
	w, h := glyph.Size(dir)
	origin := glyphOrigin(b.orient, b.role, r)
	area := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
	data := ctx.ImageData(area)
	state := glyph.Active
	if passive {
		state = glyph.Passive
	}
	glyph.DrawArrow(data, dir, state)
	// A button squeezed below its full size only shows the part of the
	// arrow that falls inside it.
	visible := area.Intersect(r)
	if visible.Empty() {
		return
	}
	part := data.SubImage(visible.Sub(origin)).(*image.RGBA)
	ctx.PutImageData(part, visible.Min.X, visible.Min.Y)
}

func fillRect(ctx *render.Context, r image.Rectangle) {
	if r.Empty() {
		return
	}
	ctx.FillRect(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}
