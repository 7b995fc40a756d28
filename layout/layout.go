// Package layout converts a logical maze grid into physical pixel geometry:
// canvas size, per-cell pixel rectangles, marker placement, and the page
// tiling needed to print the canvas across multiple sheets.
package layout

import (
	"errors"
	"math"
)

const cmPerInch = 2.54

// ErrInvalidLayout is returned when grid dimensions, spacing, or the page
// size are not positive.
var ErrInvalidLayout = errors.New("layout: dimensions, spacing, and page size must be positive")

// PageSpec describes a printable page in pixels at a given DPI.
type PageSpec struct {
	Width  float64
	Height float64
	DPI    int
}

// NewPageSpec converts physical page dimensions in centimeters to pixels at
// the given printer DPI.
func NewPageSpec(widthCM, heightCM float64, dpi int) PageSpec {
	pxPerCM := float64(dpi) / cmPerInch
	return PageSpec{
		Width:  widthCM * pxPerCM,
		Height: heightCM * pxPerCM,
		DPI:    dpi,
	}
}

// MillimetersToPixels converts a physical length in millimeters to pixels
// at the given printer DPI.
func MillimetersToPixels(mm float64, dpi int) float64 {
	return mm * float64(dpi) / (cmPerInch * 10)
}

// Layout maps a cols×rows cell grid onto canvas pixels. WallWidth and
// PathWidth are in pixels; the same wall width doubles as the border around
// the whole maze.
type Layout struct {
	Cols, Rows           int
	WallWidth, PathWidth float64
	Page                 PageSpec
}

// New validates the configuration and returns a Layout.
func New(cols, rows int, wallWidth, pathWidth float64, page PageSpec) (*Layout, error) {
	if cols <= 0 || rows <= 0 || wallWidth <= 0 || pathWidth <= 0 {
		return nil, ErrInvalidLayout
	}
	if page.Width <= 0 || page.Height <= 0 {
		return nil, ErrInvalidLayout
	}
	return &Layout{
		Cols:      cols,
		Rows:      rows,
		WallWidth: wallWidth,
		PathWidth: pathWidth,
		Page:      page,
	}, nil
}

// unit is the repeating path+wall pitch between adjacent cell origins.
func (l *Layout) unit() float64 {
	return l.PathWidth + l.WallWidth
}

// CanvasWidth returns the rounded canvas width in pixels: a wall-width
// border on each side plus one pitch per additional column.
func (l *Layout) CanvasWidth() int {
	return round(2*l.WallWidth + l.unit()*float64(l.Cols-1))
}

// CanvasHeight returns the rounded canvas height in pixels.
func (l *Layout) CanvasHeight() int {
	return round(2*l.WallWidth + l.unit()*float64(l.Rows-1))
}

// CellOrigin returns the unrounded top-left pixel of the cell's path
// square.
func (l *Layout) CellOrigin(col, row int) (x, y float64) {
	return l.WallWidth + l.unit()*float64(col), l.WallWidth + l.unit()*float64(row)
}

// CellRect returns the half-open pixel rectangle of the cell's path square.
func (l *Layout) CellRect(col, row int) (x0, y0, x1, y1 int) {
	x, y := l.CellOrigin(col, row)
	return round(x), round(y), round(x + l.PathWidth), round(y + l.PathWidth)
}

// MarkerRect returns the half-open pixel rectangle of a start/end marker
// centered on the cell's path square. Markers are squares of side four path
// widths.
func (l *Layout) MarkerRect(col, row int) (x0, y0, x1, y1 int) {
	size := 4 * l.PathWidth
	offset := size/4 + l.PathWidth/2
	x, y := l.CellOrigin(col, row)
	return round(x - offset), round(y - offset), round(x - offset + size), round(y - offset + size)
}

// PagesX returns how many pages are needed to cover the canvas width.
func (l *Layout) PagesX() int {
	return int(math.Ceil(float64(l.CanvasWidth()) / l.Page.Width))
}

// PagesY returns how many pages are needed to cover the canvas height.
func (l *Layout) PagesY() int {
	return int(math.Ceil(float64(l.CanvasHeight()) / l.Page.Height))
}

// PageWidthPx returns the rounded page width in pixels.
func (l *Layout) PageWidthPx() int { return round(l.Page.Width) }

// PageHeightPx returns the rounded page height in pixels.
func (l *Layout) PageHeightPx() int { return round(l.Page.Height) }

// TileRect returns the half-open source rectangle of the page at
// (pageCol, pageRow). The last row and column are clamped to the canvas
// edge, so over all pages the rectangles partition the canvas exactly. The
// same rounding is used for every boundary, which keeps adjacent tiles free
// of one-pixel seams.
func (l *Layout) TileRect(pageCol, pageRow int) (x0, y0, x1, y1 int) {
	x0 = round(float64(pageCol) * l.Page.Width)
	y0 = round(float64(pageRow) * l.Page.Height)
	x1 = min(round(float64(pageCol+1)*l.Page.Width), l.CanvasWidth())
	y1 = min(round(float64(pageRow+1)*l.Page.Height), l.CanvasHeight())
	return x0, y0, x1, y1
}

func round(v float64) int {
	return int(math.Round(v))
}
