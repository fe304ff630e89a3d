package scroll

import "image"

// Orientation selects the axis a scrollbar controls.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Role tells the two arrow buttons of a bar apart.
type Role int

const (
	// Begin is the top or left button; it scrolls towards zero.
	Begin Role = iota
	// End is the bottom or right button.
	End
)

func (r Role) String() string {
	if r == End {
		return "end"
	}
	return "begin"
}

// barLayout is where one scrollbar's pieces sit for a given viewport.
// It is recomputed on every draw and hit test.
type barLayout struct {
	band  image.Rectangle
	begin image.Rectangle
	end   image.Rectangle
	track image.Rectangle
}

// rect builds a rectangle without canonicalizing it, so a viewport too
// small for the chrome yields empty rectangles instead of flipped ones.
func rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Point{x0, y0}, Max: image.Point{x1, y1}}
}

// layoutBar computes the chrome of an axis for a width by height
// viewport. reserve shortens a horizontal bar at its right end so the
// corner square is left to the vertical bar. A bar shorter than two
// buttons is split at its midpoint so the buttons never overlap.
func layoutBar(o Orientation, width, height, reserve int) barLayout {
	const s = ArrowBlockSize
	if o == Vertical {
		x := width - s
		split, endStart := buttonSpan(height)
		return barLayout{
			band:  rect(x, 0, width, height),
			begin: rect(x, 0, width, split),
			end:   rect(x, endStart, width, height),
			track: rect(x, split, width, endStart),
		}
	}
	y := height - s
	right := width - reserve
	split, endStart := buttonSpan(right)
	return barLayout{
		band:  rect(0, y, right, height),
		begin: rect(0, y, split, height),
		end:   rect(endStart, y, right, height),
		track: rect(split, y, endStart, height),
	}
}

// buttonSpan returns where the begin button ends and the end button
// starts along a bar of the given length.
func buttonSpan(length int) (beginEnd, endStart int) {
	beginEnd = min(ArrowBlockSize, length/2)
	endStart = max(length-ArrowBlockSize, beginEnd)
	return beginEnd, endStart
}

// thumbRect places the thumb position pixels from the start of track,
// centered across the bar. Past the end of the track the thumb stays
// pinned against it; a track shorter than the thumb clips it.
func thumbRect(o Orientation, track image.Rectangle, position, length int) image.Rectangle {
	// Thumb inset from the outer edge of the bar: half the bar plus half
	// the thumb, counted back from the far edge.
	const inset = (ArrowBlockSize + ThumbSize) / 2
	var r image.Rectangle
	if o == Vertical {
		x := track.Max.X - inset
		y := track.Min.Y + max(min(position, track.Dy()-length), 0)
		r = rect(x, y, x+ThumbSize, y+length)
	} else {
		x := track.Min.X + max(min(position, track.Dx()-length), 0)
		y := track.Max.Y - inset
		r = rect(x, y, x+length, y+ThumbSize)
	}
	return r.Intersect(track)
}

// glyphOrigin is the top-left pixel of the arrow glyph inside a button.
// The glyph is centered across the bar and sits seven pixels in from the
// button's outer edge.
func glyphOrigin(o Orientation, role Role, button image.Rectangle) image.Point {
	const across, alongBegin, alongEnd = 5, 7, 6
	along := alongBegin
	if role == End {
		along = alongEnd
	}
	if o == Vertical {
		return button.Min.Add(image.Pt(across, along))
	}
	return button.Min.Add(image.Pt(along, across))
}
