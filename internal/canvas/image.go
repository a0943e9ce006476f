package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Image returns the frame as a paletted image, one image pixel per LED.
func (c *Canvas) Image(on, off color.Color) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, Width, Height), color.Palette{off, on})
	for y := range Height {
		for x := range Width {
			if c.Pixel(x, y) {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

// EncodePNG writes the frame as a PNG with every LED scaled to a
// scale x scale block.
func (c *Canvas) EncodePNG(w io.Writer, scale int, on, off color.Color) error {
	if scale < 1 {
		return fmt.Errorf("canvas: scale must be positive, got %d", scale)
	}

	src := c.Image(on, off)
	dst := image.NewRGBA(image.Rect(0, 0, Width*scale, Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}
