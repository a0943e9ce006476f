package canvas

import (
	"fmt"
	"strings"
)

// Bitmap is a packed monochrome raster.
// Each row occupies Stride() bytes and the most significant bit of a byte is
// the left-most pixel. This is the opposite bit order to the canvas buffer.
type Bitmap struct {
	Width  int
	Height int
	Data   []byte
}

// Stride returns the number of bytes per row.
func (b Bitmap) Stride() int {
	return (b.Width + 7) / 8
}

// At reports whether the bit at (x, y) is set.
// Coordinates outside the bitmap, or beyond a short Data slice, read as 0.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	i := y*b.Stride() + x/8
	if i >= len(b.Data) {
		return false
	}
	return b.Data[i]&(1<<uint(7-x%8)) != 0
}

// ParseBitmap builds a bitmap from text rows, where '#' is a set pixel and
// any other rune is clear. All rows must have the same length.
func ParseBitmap(rows ...string) (Bitmap, error) {
	if len(rows) == 0 {
		return Bitmap{}, nil
	}

	width := len(rows[0])
	bm := Bitmap{Width: width, Height: len(rows)}
	bm.Data = make([]byte, bm.Stride()*bm.Height)

	for y, row := range rows {
		if len(row) != width {
			return Bitmap{}, fmt.Errorf("canvas: bitmap row %d is %d wide, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			if row[x] == '#' {
				bm.Data[y*bm.Stride()+x/8] |= 1 << uint(7-x%8)
			}
		}
	}
	return bm, nil
}

// MustParseBitmap is ParseBitmap for constant asset data; it panics on error.
func MustParseBitmap(rows ...string) Bitmap {
	bm, err := ParseBitmap(rows...)
	if err != nil {
		panic(err)
	}
	return bm
}

// String renders the bitmap as '#' and '.' rows.
func (b Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
