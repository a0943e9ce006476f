// Package canvas provides the bit-packed monochrome drawing surface the game
// renders into. The canvas never owns its memory: a display driver allocates
// the buffer and binds it, then reads it back to push pixels to the screen.
package canvas

import "fmt"

// Display geometry.
const (
	Width  = 64
	Height = 16

	// BufferSize is the exact number of bytes a bound buffer must have.
	BufferSize = Width * Height / 8
)

// Canvas draws into an externally owned buffer.
// Pixels are packed 8 per byte in row-major order; pixel (x, y) lives in
// byte (y*Width+x)/8 at bit x%8, so the least significant bit is the
// left-most pixel of each byte.
// Every operation is a no-op until a buffer is bound, and all coordinates
// outside [0,Width)x[0,Height) are silently ignored.
type Canvas struct {
	buf []byte
}

// New returns a canvas bound to buf.
func New(buf []byte) *Canvas {
	c := &Canvas{}
	c.Bind(buf)
	return c
}

// Bind attaches the canvas to buf. The buffer must be exactly BufferSize
// bytes long; anything else is a programming error and panics.
func (c *Canvas) Bind(buf []byte) {
	if len(buf) != BufferSize {
		panic(fmt.Sprintf("canvas: buffer is %d bytes, want %d", len(buf), BufferSize))
	}
	c.buf = buf
}

// Buffer returns the bound buffer (nil if unbound).
func (c *Canvas) Buffer() []byte {
	return c.buf
}

// Bound reports whether a buffer has been attached.
func (c *Canvas) Bound() bool {
	return c.buf != nil
}

// locate maps a pixel to its byte index and bit mask.
// ok is false for out-of-range pixels or an unbound canvas.
func (c *Canvas) locate(x, y int) (index int, mask byte, ok bool) {
	if c.buf == nil || x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, 0, false
	}
	return (y*Width + x) / 8, 1 << uint(x%8), true
}

// Clear zeroes the whole buffer.
func (c *Canvas) Clear() {
	for i := range c.buf {
		c.buf[i] = 0
	}
}

// SetPixel turns on the pixel at (x, y).
func (c *Canvas) SetPixel(x, y int) {
	if i, mask, ok := c.locate(x, y); ok {
		c.buf[i] |= mask
	}
}

// ClearPixel turns off the pixel at (x, y).
func (c *Canvas) ClearPixel(x, y int) {
	if i, mask, ok := c.locate(x, y); ok {
		c.buf[i] &^= mask
	}
}

// Pixel reports whether the pixel at (x, y) is on.
// Out-of-bounds pixels read as off.
func (c *Canvas) Pixel(x, y int) bool {
	i, mask, ok := c.locate(x, y)
	return ok && c.buf[i]&mask != 0
}

// HLine draws a horizontal line between x1 and x2 (inclusive, either order).
// Coordinates are truncated toward zero, so 2.9 draws from column 2.
func (c *Canvas) HLine(x1, x2, y float64) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := int(x1); x <= int(x2); x++ {
		c.SetPixel(x, int(y))
	}
}

// VLine draws a vertical line between y1 and y2 (inclusive, either order).
func (c *Canvas) VLine(x, y1, y2 float64) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := int(y1); y <= int(y2); y++ {
		c.SetPixel(int(x), y)
	}
}

// FillRect fills the inclusive box spanned by two corners.
func (c *Canvas) FillRect(x1, y1, x2, y2 float64) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := int(y1); y <= int(y2); y++ {
		for x := int(x1); x <= int(x2); x++ {
			c.SetPixel(x, y)
		}
	}
}

// StrokeRect outlines the box spanned by two corners.
// Corners are drawn twice, which is harmless for set operations.
func (c *Canvas) StrokeRect(x1, y1, x2, y2 float64) {
	c.HLine(x1, x2, y1)
	c.VLine(x2, y1, y2)
	c.HLine(x2, x1, y2)
	c.VLine(x1, y2, y1)
}

// Blit copies bm with its top-left corner at (ox, oy).
// The copy is opaque: zero bits clear the destination pixel, so redrawing
// a number or label over the previous frame never leaves stale pixels.
func (c *Canvas) Blit(ox, oy int, bm Bitmap) {
	for y := 0; y < bm.Height; y++ {
		for x := 0; x < bm.Width; x++ {
			if bm.At(x, y) {
				c.SetPixel(ox+x, oy+y)
			} else {
				c.ClearPixel(ox+x, oy+y)
			}
		}
	}
}
