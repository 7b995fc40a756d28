package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beka-birhanu/mazeprint-api/layout"
	"github.com/beka-birhanu/mazeprint-api/maze"
)

type rect struct {
	x0, y0, x1, y1 int
}

// recordingCanvas captures draw calls for inspection.
type recordingCanvas struct {
	width, height int
	rects         []rect
	ellipses      []rect
}

func (c *recordingCanvas) Width() int  { return c.width }
func (c *recordingCanvas) Height() int { return c.height }

func (c *recordingCanvas) FillRect(x0, y0, x1, y1 int, _ color.Color) {
	c.rects = append(c.rects, rect{x0, y0, x1, y1})
}

func (c *recordingCanvas) FillEllipse(x0, y0, x1, y1 int, _ color.Color) {
	c.ellipses = append(c.ellipses, rect{x0, y0, x1, y1})
}

func (c *recordingCanvas) Crop(x0, y0, x1, y1 int) Canvas {
	return &recordingCanvas{width: x1 - x0, height: y1 - y0}
}

func (c *recordingCanvas) PasteOnto(Canvas, int, int) {}
func (c *recordingCanvas) IsUniformColor() bool       { return len(c.rects) == 0 && len(c.ellipses) == 0 }

func testLayout(t *testing.T, cols, rows int) *layout.Layout {
	t.Helper()
	l, err := layout.New(cols, rows, 10, 4, layout.PageSpec{Width: 1000, Height: 1000, DPI: 300})
	assert.NoError(t, err)
	return l
}

func TestDraw(t *testing.T) {
	t.Run("East passage spans both cells and the wall gap", func(t *testing.T) {
		g, err := maze.NewGrid(2, 1)
		assert.NoError(t, err)
		g.OpenPassage(g.Cell(0, 0), maze.East)

		l := testLayout(t, 2, 1)
		c := &recordingCanvas{width: l.CanvasWidth(), height: l.CanvasHeight()}
		NewRenderer(l).Draw(c, g, g.Cell(0, 0), g.Cell(1, 0))

		// One corridor rectangle plus the start marker square.
		assert.Len(t, c.rects, 2)
		assert.Equal(t, rect{10, 10, 28, 14}, c.rects[0])
		assert.Len(t, c.ellipses, 1)
	})

	t.Run("South passage spans both cells and the wall gap", func(t *testing.T) {
		g, err := maze.NewGrid(1, 2)
		assert.NoError(t, err)
		g.OpenPassage(g.Cell(0, 0), maze.South)

		l := testLayout(t, 1, 2)
		c := &recordingCanvas{width: l.CanvasWidth(), height: l.CanvasHeight()}
		NewRenderer(l).Draw(c, g, g.Cell(0, 0), g.Cell(0, 1))

		assert.Len(t, c.rects, 2)
		assert.Equal(t, rect{10, 10, 14, 28}, c.rects[0])
	})

	t.Run("Markers are placed on the endpoint cells", func(t *testing.T) {
		g, err := maze.NewGrid(2, 1)
		assert.NoError(t, err)
		g.OpenPassage(g.Cell(0, 0), maze.East)

		l := testLayout(t, 2, 1)
		c := &recordingCanvas{width: l.CanvasWidth(), height: l.CanvasHeight()}
		NewRenderer(l).Draw(c, g, g.Cell(0, 0), g.Cell(1, 0))

		// Marker side is 4x the path width, centered on the cell square.
		start := c.rects[len(c.rects)-1]
		assert.Equal(t, rect{4, 4, 20, 20}, start)

		assert.Len(t, c.ellipses, 1)
		assert.Equal(t, rect{18, 4, 34, 20}, c.ellipses[0])
	})

	t.Run("No passages draws only the markers", func(t *testing.T) {
		g, err := maze.NewGrid(3, 3)
		assert.NoError(t, err)

		l := testLayout(t, 3, 3)
		c := &recordingCanvas{width: l.CanvasWidth(), height: l.CanvasHeight()}
		NewRenderer(l).Draw(c, g, g.Cell(0, 0), g.Cell(2, 2))

		assert.Len(t, c.rects, 1)
		assert.Len(t, c.ellipses, 1)
	})
}
