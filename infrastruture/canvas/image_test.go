package canvas

import (
	"bytes"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	rgbaBlack = color.RGBA{A: 255}
	rgbaWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestFillRect(t *testing.T) {
	c := New(4, 4, color.White)
	c.FillRect(1, 1, 3, 3, color.Black)

	t.Run("Fills the half-open range", func(t *testing.T) {
		assert.Equal(t, rgbaBlack, c.RGBA().At(1, 1))
		assert.Equal(t, rgbaBlack, c.RGBA().At(2, 2))
		assert.Equal(t, rgbaWhite, c.RGBA().At(3, 3))
		assert.Equal(t, rgbaWhite, c.RGBA().At(0, 0))
	})

	t.Run("Clips to the canvas", func(t *testing.T) {
		c.FillRect(-5, -5, 100, 1, color.Black)
		assert.Equal(t, rgbaBlack, c.RGBA().At(0, 0))
		assert.Equal(t, rgbaBlack, c.RGBA().At(3, 0))
	})
}

func TestFillEllipse(t *testing.T) {
	c := New(10, 10, color.White)
	c.FillEllipse(0, 0, 10, 10, color.Black)

	t.Run("Fills the center", func(t *testing.T) {
		assert.Equal(t, rgbaBlack, c.RGBA().At(5, 5))
		assert.Equal(t, rgbaBlack, c.RGBA().At(5, 1))
		assert.Equal(t, rgbaBlack, c.RGBA().At(1, 5))
	})

	t.Run("Leaves the corners", func(t *testing.T) {
		assert.Equal(t, rgbaWhite, c.RGBA().At(0, 0))
		assert.Equal(t, rgbaWhite, c.RGBA().At(9, 0))
		assert.Equal(t, rgbaWhite, c.RGBA().At(0, 9))
		assert.Equal(t, rgbaWhite, c.RGBA().At(9, 9))
	})

	t.Run("Degenerate bounds draw nothing", func(t *testing.T) {
		blank := New(4, 4, color.White)
		blank.FillEllipse(2, 2, 2, 2, color.Black)
		assert.True(t, blank.IsUniformColor())
	})
}

func TestCrop(t *testing.T) {
	c := New(8, 8, color.White)
	c.FillRect(4, 4, 5, 5, color.Black)

	cropped := c.Crop(4, 4, 8, 8).(*Image)

	assert.Equal(t, 4, cropped.Width())
	assert.Equal(t, 4, cropped.Height())
	assert.Equal(t, rgbaBlack, cropped.RGBA().At(0, 0))
	assert.Equal(t, rgbaWhite, cropped.RGBA().At(1, 1))

	// The crop is a copy, not a view.
	cropped.FillRect(0, 0, 4, 4, color.Black)
	assert.Equal(t, rgbaWhite, c.RGBA().At(5, 5))
}

func TestPasteOnto(t *testing.T) {
	src := New(2, 2, color.White)
	src.FillRect(0, 0, 2, 2, color.Black)

	dst := New(6, 6, color.White)
	src.PasteOnto(dst, 3, 3)

	assert.Equal(t, rgbaWhite, dst.RGBA().At(2, 2))
	assert.Equal(t, rgbaBlack, dst.RGBA().At(3, 3))
	assert.Equal(t, rgbaBlack, dst.RGBA().At(4, 4))
	assert.Equal(t, rgbaWhite, dst.RGBA().At(5, 5))
}

func TestIsUniformColor(t *testing.T) {
	c := New(5, 5, color.White)
	assert.True(t, c.IsUniformColor())

	c.FillRect(2, 2, 3, 3, color.Black)
	assert.False(t, c.IsUniformColor())
}

func TestEncodeJPEG(t *testing.T) {
	c := New(12, 8, color.White)
	c.FillRect(0, 0, 6, 8, color.Black)

	var buf bytes.Buffer
	assert.NoError(t, c.EncodeJPEG(&buf, 90))

	decoded, err := jpeg.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 12, decoded.Bounds().Dx())
	assert.Equal(t, 8, decoded.Bounds().Dy())
}
