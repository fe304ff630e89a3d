package grid

import (
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ColumnNameRow is the header band above the cells.
type ColumnNameRow struct {
	Height int
	Face   font.Face
	Name   func(index int) string
}

// RowNameColumn is the header band left of the cells.
type RowNameColumn struct {
	Width int
	Face  font.Face
	Name  func(index int) string
}

// Column and Row are the sizes of one grid track.
type Column struct {
	Width int
}

type Row struct {
	Height int
}

// DefaultColumnNameRow labels columns A, B, ... Z, AA, ...
func DefaultColumnNameRow() ColumnNameRow {
	return ColumnNameRow{
		Height: 25,
		Face:   basicfont.Face7x13,
		Name:   DefaultColumnName,
	}
}

// DefaultColumnName names the column at 1-based index.
func DefaultColumnName(index int) string {
	return PositionToLetter(index)
}

// DefaultRowNameColumn labels rows with their 1-based number.
func DefaultRowNameColumn() RowNameColumn {
	return RowNameColumn{
		Width: 30,
		Face:  basicfont.Face7x13,
		Name:  DefaultRowName,
	}
}

// DefaultRowName names the row at 1-based index.
func DefaultRowName(index int) string {
	return strconv.Itoa(index)
}

// PositionToLetter converts a 1-based position to spreadsheet column
// letters: 1 is A, 26 is Z, 27 is AA. Non-positive positions have no name.
func PositionToLetter(position int) string {
	var buf []byte
	for position > 0 {
		position--
		buf = append(buf, byte('A'+position%26))
		position /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
