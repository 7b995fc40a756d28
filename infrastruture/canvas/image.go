// Package canvas provides an in-memory RGBA implementation of the render
// Canvas abstraction.
package canvas

import (
	"image"
	"image/color"
	"image/jpeg"
	"io"

	"golang.org/x/image/draw"

	"github.com/beka-birhanu/mazeprint-api/render"
)

// Image is a render.Canvas backed by an RGBA raster.
type Image struct {
	img        *image.RGBA
	background color.Color
}

// New creates a width×height canvas filled with the background color.
func New(width, height int, background color.Color) *Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Image{img: img, background: background}
}

// NewFactory returns a render.Factory producing canvases with the given
// background color.
func NewFactory(background color.Color) render.Factory {
	return func(width, height int) render.Canvas {
		return New(width, height, background)
	}
}

// Width returns the canvas width in pixels.
func (c *Image) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Image) Height() int { return c.img.Bounds().Dy() }

// RGBA exposes the backing raster, for encoding and tests.
func (c *Image) RGBA() *image.RGBA { return c.img }

// FillRect fills the half-open rectangle [x0,x1)×[y0,y1), clipped to the
// canvas.
func (c *Image) FillRect(x0, y0, x1, y1 int, col color.Color) {
	r := image.Rect(x0, y0, x1, y1).Intersect(c.img.Bounds())
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// FillEllipse fills the ellipse inscribed in [x0,x1)×[y0,y1), testing each
// pixel center against the ellipse equation.
func (c *Image) FillEllipse(x0, y0, x1, y1 int, col color.Color) {
	rx := float64(x1-x0) / 2
	ry := float64(y1-y0) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	cx := float64(x0) + rx
	cy := float64(y0) + ry

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.img.Set(x, y, col)
			}
		}
	}
}

// Crop returns a copy of the region [x0,x1)×[y0,y1) as a new canvas.
func (c *Image) Crop(x0, y0, x1, y1 int) render.Canvas {
	r := image.Rect(x0, y0, x1, y1).Intersect(c.img.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), c.img, r.Min, draw.Src)
	return &Image{img: out, background: c.background}
}

// PasteOnto draws this canvas onto dst with its top-left at (atX, atY).
// dst must be an *Image from this package.
func (c *Image) PasteOnto(dst render.Canvas, atX, atY int) {
	target := dst.(*Image)
	r := image.Rect(atX, atY, atX+c.Width(), atY+c.Height())
	draw.Draw(target.img, r, c.img, c.img.Bounds().Min, draw.Src)
}

// IsUniformColor reports whether every pixel has the same 8-bit luminance
// as the background color.
func (c *Image) IsUniformColor() bool {
	want := luminance(c.background)
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if luminance(c.img.At(x, y)) != want {
				return false
			}
		}
	}
	return true
}

// EncodeJPEG writes the canvas as a JPEG image.
func (c *Image) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, c.img, &jpeg.Options{Quality: quality})
}

func luminance(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}
