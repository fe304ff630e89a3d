package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

// ErrNoSurface is the panic value raised when something tries to draw
// before a surface is attached.
var ErrNoSurface = errors.New("render: drawing surface not attached")

// Surface hands out a fresh drawing context for each draw call. Context
// returns nil while the surface is not attached.
type Surface interface {
	Context() *Context
}

// MustContext returns a context from s or panics with ErrNoSurface.
// Drawing into nothing would leave the visible chrome out of step with the
// scroll state, so there is no silent fallback.
func MustContext(s Surface) *Context {
	if s == nil {
		panic(ErrNoSurface)
	}
	ctx := s.Context()
	if ctx == nil {
		panic(ErrNoSurface)
	}
	return ctx
}

// Canvas is an in-memory Surface backed by an RGBA bitmap.
type Canvas struct {
	im *image.RGBA
}

// NewCanvas returns an attached canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{im: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Context implements Surface.
func (c *Canvas) Context() *Context {
	if c == nil || c.im == nil {
		return nil
	}
	return NewContext(c.im)
}

// Resize replaces the bitmap with a blank one of the new size.
func (c *Canvas) Resize(width, height int) {
	c.im = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Detach drops the bitmap; later draws panic.
func (c *Canvas) Detach() {
	c.im = nil
}

// Image returns the current bitmap, nil when detached.
func (c *Canvas) Image() *image.RGBA {
	return c.im
}

// SavePNG encodes the current bitmap to filename.
func (c *Canvas) SavePNG(filename string) error {
	if c.im == nil {
		return ErrNoSurface
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer f.Close()
	if err := png.Encode(f, c.im); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return nil
}
