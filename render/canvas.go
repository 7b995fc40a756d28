// Package render draws a generated maze grid onto an abstract canvas and
// slices the result into printer-page tiles.
package render

import "image/color"

// Canvas is the drawing surface the renderer and slicer operate on. All
// rectangles are half-open pixel ranges. Implementations may assume that
// the source of a PasteOnto call was produced by the same Factory.
type Canvas interface {
	Width() int
	Height() int

	// FillRect fills the rectangle [x0,x1)×[y0,y1).
	FillRect(x0, y0, x1, y1 int, c color.Color)

	// FillEllipse fills the ellipse inscribed in [x0,x1)×[y0,y1).
	FillEllipse(x0, y0, x1, y1 int, c color.Color)

	// Crop returns a copy of the region as a new canvas.
	Crop(x0, y0, x1, y1 int) Canvas

	// PasteOnto draws this canvas onto dst with its top-left at (atX, atY).
	PasteOnto(dst Canvas, atX, atY int)

	// IsUniformColor reports whether the canvas is entirely its background
	// color.
	IsUniformColor() bool
}

// Factory creates a blank canvas of the given size, filled with the
// implementation's background color.
type Factory func(width, height int) Canvas
