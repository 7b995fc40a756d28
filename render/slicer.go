package render

import "github.com/beka-birhanu/mazeprint-api/layout"

// Tile is one page-sized crop of the full canvas.
type Tile struct {
	PageRow int
	PageCol int
	// Padded marks tiles from the last page row or column, whose crop was
	// pasted onto a blank page-sized canvas.
	Padded bool
	Canvas Canvas
}

// Slicer cuts a rendered canvas into printer pages.
type Slicer struct {
	layout    *layout.Layout
	newCanvas Factory
}

// NewSlicer creates a slicer that uses the factory for blank padding pages.
func NewSlicer(l *layout.Layout, f Factory) *Slicer {
	return &Slicer{layout: l, newCanvas: f}
}

// Slice partitions the canvas into page tiles. Before any tile is dropped,
// the source rectangles cover every canvas pixel exactly once. Tiles on the
// last page row or column are padded to the full page size and dropped when
// they carry no content; interior tiles are always kept so page numbering
// stays dense.
func (s *Slicer) Slice(c Canvas) []Tile {
	pagesX, pagesY := s.layout.PagesX(), s.layout.PagesY()
	pageW, pageH := s.layout.PageWidthPx(), s.layout.PageHeightPx()

	tiles := make([]Tile, 0, pagesX*pagesY)
	for pageRow := 0; pageRow < pagesY; pageRow++ {
		for pageCol := 0; pageCol < pagesX; pageCol++ {
			x0, y0, x1, y1 := s.layout.TileRect(pageCol, pageRow)
			slice := c.Crop(x0, y0, x1, y1)

			if pageCol != pagesX-1 && pageRow != pagesY-1 {
				tiles = append(tiles, Tile{PageRow: pageRow, PageCol: pageCol, Canvas: slice})
				continue
			}

			page := s.newCanvas(pageW, pageH)
			slice.PasteOnto(page, 0, 0)
			if page.IsUniformColor() {
				continue
			}
			tiles = append(tiles, Tile{PageRow: pageRow, PageCol: pageCol, Padded: true, Canvas: page})
		}
	}
	return tiles
}
