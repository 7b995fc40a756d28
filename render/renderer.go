package render

import (
	"image/color"

	"github.com/beka-birhanu/mazeprint-api/layout"
	"github.com/beka-birhanu/mazeprint-api/maze"
)

// Renderer draws a generated grid onto a canvas. The canvas background is
// the wall color; only passages and markers are drawn, so cells that are
// not connected stay separated by untouched background.
type Renderer struct {
	layout *layout.Layout
	ink    color.Color
}

// NewRenderer creates a renderer that draws in black.
func NewRenderer(l *layout.Layout) *Renderer {
	return &Renderer{layout: l, ink: color.Black}
}

// Draw renders every open passage plus the start and end markers. Checking
// only South and East connections covers every passage once, since the
// symmetric North/West entries describe the same openings.
func (r *Renderer) Draw(c Canvas, g *maze.Grid, start, end *maze.Cell) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			cell := g.Cell(col, row)
			x0, y0, x1, y1 := r.layout.CellRect(col, row)

			if row < g.Rows()-1 && cell.Connected(maze.South) {
				// One rectangle from this path square through the wall gap
				// into the southern neighbor's path square.
				_, _, _, ny1 := r.layout.CellRect(col, row+1)
				c.FillRect(x0, y0, x1, ny1, r.ink)
			}

			if col < g.Cols()-1 && cell.Connected(maze.East) {
				_, _, nx1, _ := r.layout.CellRect(col+1, row)
				c.FillRect(x0, y0, nx1, y1, r.ink)
			}
		}
	}

	// Square at the start, circle at the end. On a 1x1 grid these coincide.
	sx0, sy0, sx1, sy1 := r.layout.MarkerRect(start.Col, start.Row)
	c.FillRect(sx0, sy0, sx1, sy1, r.ink)

	ex0, ey0, ex1, ey1 := r.layout.MarkerRect(end.Col, end.Row)
	c.FillEllipse(ex0, ey0, ex1, ey1, r.ink)
}
