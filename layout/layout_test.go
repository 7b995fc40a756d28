package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageSpec(t *testing.T) {
	t.Run("A4 at 300 DPI", func(t *testing.T) {
		page := NewPageSpec(21.0, 29.7, 300)

		assert.InDelta(t, 2480.31, page.Width, 0.01)
		assert.InDelta(t, 3507.87, page.Height, 0.01)
		assert.Equal(t, 300, page.DPI)
	})

	t.Run("millimeters to pixels", func(t *testing.T) {
		assert.InDelta(t, 944.88, MillimetersToPixels(80, 300), 0.01)
		assert.InDelta(t, 59.05, MillimetersToPixels(5, 300), 0.01)
	})
}

func TestNew(t *testing.T) {
	page := PageSpec{Width: 100, Height: 100, DPI: 300}

	t.Run("rejects non-positive grid dimensions", func(t *testing.T) {
		_, err := New(0, 5, 10, 4, page)
		assert.ErrorIs(t, err, ErrInvalidLayout)

		_, err = New(5, -1, 10, 4, page)
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("rejects non-positive spacing", func(t *testing.T) {
		_, err := New(5, 5, 0, 4, page)
		assert.ErrorIs(t, err, ErrInvalidLayout)

		_, err = New(5, 5, 10, 0, page)
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("rejects non-positive page size", func(t *testing.T) {
		_, err := New(5, 5, 10, 4, PageSpec{Width: 0, Height: 100})
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})
}

func TestCanvasSize(t *testing.T) {
	page := PageSpec{Width: 100, Height: 100, DPI: 300}

	t.Run("single cell is two wall widths", func(t *testing.T) {
		l, err := New(1, 1, 10, 4, page)
		assert.NoError(t, err)
		assert.Equal(t, 20, l.CanvasWidth())
		assert.Equal(t, 20, l.CanvasHeight())
	})

	t.Run("two by one grid", func(t *testing.T) {
		l, err := New(2, 1, 10, 4, page)
		assert.NoError(t, err)
		assert.Equal(t, 34, l.CanvasWidth()) // 2*10 + (4+10)
		assert.Equal(t, 20, l.CanvasHeight())
	})
}

func TestCellGeometry(t *testing.T) {
	page := PageSpec{Width: 100, Height: 100, DPI: 300}
	l, err := New(3, 3, 10, 4, page)
	assert.NoError(t, err)

	t.Run("origin advances by one pitch per cell", func(t *testing.T) {
		x, y := l.CellOrigin(0, 0)
		assert.Equal(t, 10.0, x)
		assert.Equal(t, 10.0, y)

		x, y = l.CellOrigin(2, 1)
		assert.Equal(t, 38.0, x)
		assert.Equal(t, 24.0, y)
	})

	t.Run("cell rect spans the path width", func(t *testing.T) {
		x0, y0, x1, y1 := l.CellRect(1, 1)
		assert.Equal(t, 24, x0)
		assert.Equal(t, 24, y0)
		assert.Equal(t, 28, x1)
		assert.Equal(t, 28, y1)
	})

	t.Run("marker rect is centered on the path square", func(t *testing.T) {
		x0, y0, x1, y1 := l.MarkerRect(0, 0)
		// size 16, offset 16/4 + 4/2 = 6
		assert.Equal(t, 4, x0)
		assert.Equal(t, 4, y0)
		assert.Equal(t, 20, x1)
		assert.Equal(t, 20, y1)
	})
}

func TestPaging(t *testing.T) {
	t.Run("page counts round up", func(t *testing.T) {
		// canvas 34x20 on 15x15 pages
		l, err := New(2, 1, 10, 4, PageSpec{Width: 15, Height: 15, DPI: 300})
		assert.NoError(t, err)
		assert.Equal(t, 3, l.PagesX())
		assert.Equal(t, 2, l.PagesY())
	})

	t.Run("tile rectangles partition the canvas", func(t *testing.T) {
		l, err := New(4, 3, 7, 3.5, PageSpec{Width: 13.2, Height: 9.8, DPI: 300})
		assert.NoError(t, err)

		w, h := l.CanvasWidth(), l.CanvasHeight()
		covered := make([][]int, h)
		for y := range covered {
			covered[y] = make([]int, w)
		}

		for pageRow := 0; pageRow < l.PagesY(); pageRow++ {
			for pageCol := 0; pageCol < l.PagesX(); pageCol++ {
				x0, y0, x1, y1 := l.TileRect(pageCol, pageRow)
				assert.LessOrEqual(t, x1, w)
				assert.LessOrEqual(t, y1, h)
				for y := y0; y < y1; y++ {
					for x := x0; x < x1; x++ {
						covered[y][x]++
					}
				}
			}
		}

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				assert.Equalf(t, 1, covered[y][x], "pixel (%d,%d) covered %d times", x, y, covered[y][x])
			}
		}
	})

	t.Run("last tile is clamped to the canvas edge", func(t *testing.T) {
		l, err := New(2, 1, 10, 4, PageSpec{Width: 15, Height: 15, DPI: 300})
		assert.NoError(t, err)

		_, _, x1, y1 := l.TileRect(l.PagesX()-1, l.PagesY()-1)
		assert.Equal(t, l.CanvasWidth(), x1)
		assert.Equal(t, l.CanvasHeight(), y1)
	})
}
