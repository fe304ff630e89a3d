// Package grid draws a spreadsheet-like grid of uniform cells with column
// and row headers, and hosts the scrollbars that move it.
package grid

import (
	"image/color"

	"gridcanvas/pkg/render"
)

// Style holds the grid's colors.
type Style struct {
	Background color.RGBA
	Header     color.RGBA
	Line       color.RGBA
	Text       color.RGBA
}

// DefaultStyle returns the stock light style.
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
		Header:     color.RGBA{0xf8, 0xf9, 0xfa, 0xff},
		Line:       color.RGBA{0xda, 0xdc, 0xe0, 0xff},
		Text:       color.RGBA{0x20, 0x21, 0x24, 0xff},
	}
}

// Grid is the cell model: header bands and the sizes of every column and
// row.
type Grid struct {
	ColumnNames ColumnNameRow
	RowNames    RowNameColumn
	Columns     []Column
	Rows        []Row
	Style       Style
}

// New returns a grid of cols by rows cells of one size.
func New(cols, rows, columnWidth, rowHeight int) *Grid {
	g := &Grid{
		ColumnNames: DefaultColumnNameRow(),
		RowNames:    DefaultRowNameColumn(),
		Columns:     make([]Column, cols),
		Rows:        make([]Row, rows),
		Style:       DefaultStyle(),
	}
	for i := range g.Columns {
		g.Columns[i].Width = columnWidth
	}
	for i := range g.Rows {
		g.Rows[i].Height = rowHeight
	}
	return g
}

// ContentWidth is the full width of the grid including the row header.
func (g *Grid) ContentWidth() int {
	w := g.RowNames.Width
	for _, c := range g.Columns {
		w += c.Width
	}
	return w
}

// ContentHeight is the full height of the grid including the column header.
func (g *Grid) ContentHeight() int {
	h := g.ColumnNames.Height
	for _, r := range g.Rows {
		h += r.Height
	}
	return h
}

// Draw repaints the whole surface with the cells scrolled by offsetX and
// offsetY. Headers stay in place and only scroll along their own axis.
func (g *Grid) Draw(ctx *render.Context, offsetX, offsetY int) {
	width, height := float64(ctx.Width()), float64(ctx.Height())
	left := float64(g.RowNames.Width)
	top := float64(g.ColumnNames.Height)
	right := float64(g.ContentWidth() - offsetX)
	bottom := float64(g.ContentHeight() - offsetY)

	ctx.SetFillColor(g.Style.Background)
	ctx.Clear()

	ctx.SetLineWidth(1)
	ctx.SetStrokeColor(g.Style.Line)

	// Cell lines first, headers are painted over the scrolled-away part.
	x := left - float64(offsetX)
	for _, c := range g.Columns {
		x += float64(c.Width)
		if x < left {
			continue
		}
		if x > width {
			break
		}
		DrawVerticalLine(ctx, VerticalLine{X: x - 1, Y1: top, Y2: min(bottom, height)})
	}
	y := top - float64(offsetY)
	for _, r := range g.Rows {
		y += float64(r.Height)
		if y < top {
			continue
		}
		if y > height {
			break
		}
		DrawHorizontalLine(ctx, HorizontalLine{Y: y - 1, X1: left, X2: min(right, width)})
	}

	g.drawColumnNames(ctx, offsetX, width)
	g.drawRowNames(ctx, offsetY, height)

	ctx.SetFillColor(g.Style.Header)
	ctx.FillRect(0, 0, left, top)
	ctx.SetStrokeColor(g.Style.Line)
	DrawVerticalLine(ctx, VerticalLine{X: left - 1, Y1: 0, Y2: min(bottom, height)})
	DrawHorizontalLine(ctx, HorizontalLine{Y: top - 1, X1: 0, X2: min(right, width)})
}

func (g *Grid) drawColumnNames(ctx *render.Context, offsetX int, width float64) {
	h := float64(g.ColumnNames.Height)
	left := float64(g.RowNames.Width)
	ctx.SetFillColor(g.Style.Header)
	ctx.FillRect(left, 0, width-left, h)
	if g.ColumnNames.Face != nil {
		ctx.SetFontFace(g.ColumnNames.Face)
	}

	x := left - float64(offsetX)
	for i, c := range g.Columns {
		w := float64(c.Width)
		if x+w <= left {
			x += w
			continue
		}
		if x >= width {
			break
		}
		restore := DrawInCell(ctx, max(x, left-1), -1, w, h)
		ctx.SetStrokeColor(g.Style.Text)
		ctx.DrawString(g.ColumnNames.Name(i+1), x+w/2, h/2, 0.5, 0.5)
		restore()
		ctx.SetStrokeColor(g.Style.Line)
		DrawVerticalLine(ctx, VerticalLine{X: x + w - 1, Y1: 0, Y2: h})
		x += w
	}
}

func (g *Grid) drawRowNames(ctx *render.Context, offsetY int, height float64) {
	w := float64(g.RowNames.Width)
	top := float64(g.ColumnNames.Height)
	ctx.SetFillColor(g.Style.Header)
	ctx.FillRect(0, top, w, height-top)
	if g.RowNames.Face != nil {
		ctx.SetFontFace(g.RowNames.Face)
	}

	y := top - float64(offsetY)
	for i, r := range g.Rows {
		h := float64(r.Height)
		if y+h <= top {
			y += h
			continue
		}
		if y >= height {
			break
		}
		restore := DrawInCell(ctx, -1, max(y, top-1), w, h)
		ctx.SetStrokeColor(g.Style.Text)
		ctx.DrawString(g.RowNames.Name(i+1), w/2, y+h/2, 0.5, 0.5)
		restore()
		ctx.SetStrokeColor(g.Style.Line)
		DrawHorizontalLine(ctx, HorizontalLine{Y: y + h - 1, X1: 0, X2: w})
		y += h
	}
}
