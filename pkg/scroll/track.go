package scroll

import (
	"image"

	"gridcanvas/pkg/render"
)

// Track is the channel between the two arrow buttons.
type Track struct {
	orient Orientation
	theme  *Theme
}

// Draw fills the track r and paints the thumb position pixels from its
// start, pinned to the track's far end once it would run past it.
func (t Track) Draw(ctx *render.Context, r image.Rectangle, position, thumbLength int) {
	if r.Empty() {
		return
	}
	ctx.SetFillColor(t.theme.Track)
	fillRect(ctx, r)

	ctx.SetFillColor(t.theme.Thumb)
	fillRect(ctx, thumbRect(t.orient, r, position, thumbLength))
}
