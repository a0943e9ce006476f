package canvas

import (
	"bytes"
	"strings"
	"testing"
)

func newTestCanvas() *Canvas {
	return New(make([]byte, BufferSize))
}

func TestBufferSize(t *testing.T) {
	if BufferSize != 128 {
		t.Errorf("BufferSize = %d, expected 128", BufferSize)
	}
}

func TestBindWrongSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Bind with a short buffer should panic")
		}
	}()
	New(make([]byte, BufferSize-1))
}

func TestUnboundCanvasIsNoop(t *testing.T) {
	var c Canvas

	// None of these should panic
	c.Clear()
	c.SetPixel(1, 1)
	c.ClearPixel(1, 1)
	c.HLine(0, 10, 0)
	c.FillRect(0, 0, 5, 5)
	c.Blit(0, 0, MustParseBitmap("##"))

	if c.Pixel(1, 1) {
		t.Error("unbound canvas should read every pixel as off")
	}
	if c.Bound() {
		t.Error("zero Canvas should not be bound")
	}
}

func TestPixelPacking(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		index int
		bit   byte
	}{
		{"origin", 0, 0, 0, 0x01},
		{"last bit of first byte", 7, 0, 0, 0x80},
		{"second byte", 8, 0, 1, 0x01},
		{"second row", 0, 1, 8, 0x01},
		{"bottom-right", 63, 15, 127, 0x80},
		{"middle", 13, 2, 17, 0x20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCanvas()
			c.SetPixel(tc.x, tc.y)

			buf := c.Buffer()
			for i, b := range buf {
				want := byte(0)
				if i == tc.index {
					want = tc.bit
				}
				if b != want {
					t.Errorf("byte %d = %#02x, expected %#02x", i, b, want)
				}
			}
			if !c.Pixel(tc.x, tc.y) {
				t.Errorf("Pixel(%d, %d) should be on", tc.x, tc.y)
			}

			c.ClearPixel(tc.x, tc.y)
			if !bytes.Equal(buf, make([]byte, BufferSize)) {
				t.Error("ClearPixel should restore an empty buffer")
			}
		})
	}
}

func TestOutOfBoundsIsIgnored(t *testing.T) {
	c := newTestCanvas()
	for i := range c.Buffer() {
		c.Buffer()[i] = 0xA5
	}
	before := append([]byte(nil), c.Buffer()...)

	coords := [][2]int{
		{-1, 0}, {0, -1}, {Width, 0}, {0, Height},
		{-100, -100}, {Width + 7, 3}, {3, Height + 40},
	}
	for _, p := range coords {
		c.SetPixel(p[0], p[1])
		c.ClearPixel(p[0], p[1])
		if c.Pixel(p[0], p[1]) {
			t.Errorf("Pixel(%d, %d) out of bounds should read as off", p[0], p[1])
		}
	}

	if !bytes.Equal(before, c.Buffer()) {
		t.Error("out-of-bounds set/clear must leave the buffer unchanged")
	}
}

func TestClear(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(0, 0, Width-1, Height-1)
	c.Clear()

	if !bytes.Equal(c.Buffer(), make([]byte, BufferSize)) {
		t.Error("Clear should zero the buffer")
	}
}

func TestHLineSwapsAndTruncates(t *testing.T) {
	c := newTestCanvas()
	c.HLine(5.7, 2.9, 3.9)

	for x := 0; x < Width; x++ {
		want := x >= 2 && x <= 5
		if c.Pixel(x, 3) != want {
			t.Errorf("Pixel(%d, 3) = %v, expected %v", x, c.Pixel(x, 3), want)
		}
	}
	if strings.Contains(c.Row(4), "#") {
		t.Error("y=3.9 should truncate to row 3, not round to 4")
	}
}

func TestVLineSwapsAndTruncates(t *testing.T) {
	c := newTestCanvas()
	c.VLine(6, 15, 10)

	for y := 0; y < Height; y++ {
		want := y >= 10
		if c.Pixel(6, y) != want {
			t.Errorf("Pixel(6, %d) = %v, expected %v", y, c.Pixel(6, y), want)
		}
	}
}

func TestLineClipsAtEdges(t *testing.T) {
	c := newTestCanvas()
	c.HLine(-10, 100, 0)

	if c.Row(0) != strings.Repeat("#", Width) {
		t.Errorf("row 0 = %q, expected a full line", c.Row(0))
	}
}

func TestFillRect(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(34, 15, 32, 13)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			want := x >= 32 && x <= 34 && y >= 13 && y <= 15
			if c.Pixel(x, y) != want {
				t.Errorf("Pixel(%d, %d) = %v, expected %v", x, y, c.Pixel(x, y), want)
			}
		}
	}
}

func TestStrokeRect(t *testing.T) {
	c := newTestCanvas()
	c.StrokeRect(10, 2, 14, 6)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			inBox := x >= 10 && x <= 14 && y >= 2 && y <= 6
			onEdge := x == 10 || x == 14 || y == 2 || y == 6
			want := inBox && onEdge
			if c.Pixel(x, y) != want {
				t.Errorf("Pixel(%d, %d) = %v, expected %v", x, y, c.Pixel(x, y), want)
			}
		}
	}
}

func TestStrokeRectThreeByThree(t *testing.T) {
	c := newTestCanvas()
	c.StrokeRect(32, 15, 34, 13)

	// The centre stays clear, everything else in the box is on
	if c.Pixel(33, 14) {
		t.Error("centre of a 3x3 stroke should be off")
	}
	on := 0
	for y := 13; y <= 15; y++ {
		for x := 32; x <= 34; x++ {
			if c.Pixel(x, y) {
				on++
			}
		}
	}
	if on != 8 {
		t.Errorf("3x3 stroke lit %d pixels, expected 8", on)
	}
}

func TestBlitOverwrites(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(0, 0, 9, 9)

	bm := MustParseBitmap(
		"#..",
		".#.",
		"..#",
	)
	c.Blit(2, 3, bm)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := x == y
			if c.Pixel(2+x, 3+y) != want {
				t.Errorf("Pixel(%d, %d) = %v, expected %v", 2+x, 3+y, c.Pixel(2+x, 3+y), want)
			}
		}
	}
	// Outside the bitmap the fill is untouched
	if !c.Pixel(5, 3) || !c.Pixel(2, 6) {
		t.Error("Blit must not touch pixels outside the bitmap")
	}
}

func TestBlitZeroRasterClearsRegion(t *testing.T) {
	c := newTestCanvas()

	solid := MustParseBitmap(
		"##########",
		"##########",
		"##########",
		"##########",
		"##########",
	)
	empty := Bitmap{Width: 10, Height: 5, Data: make([]byte, 2*5)}

	c.Blit(20, 4, solid)
	c.Blit(20, 4, empty)

	if !bytes.Equal(c.Buffer(), make([]byte, BufferSize)) {
		t.Error("blitting an all-zero raster should fully clear the region")
	}
}

func TestBlitClipsOffCanvas(t *testing.T) {
	c := newTestCanvas()
	c.Blit(62, 14, MustParseBitmap("####", "####", "####"))

	if !c.Pixel(62, 14) || !c.Pixel(63, 15) {
		t.Error("visible part of the bitmap should be drawn")
	}
	if strings.Count(c.String(), "#") != 4 {
		t.Errorf("expected 4 visible pixels, got %d", strings.Count(c.String(), "#"))
	}
}

func TestString(t *testing.T) {
	c := newTestCanvas()
	c.SetPixel(0, 0)
	c.SetPixel(63, 15)

	rows := strings.Split(c.String(), "\n")
	if len(rows) != Height {
		t.Fatalf("String() has %d rows, expected %d", len(rows), Height)
	}
	if rows[0] != "#"+strings.Repeat(".", Width-1) {
		t.Errorf("row 0 = %q", rows[0])
	}
	if rows[15] != strings.Repeat(".", Width-1)+"#" {
		t.Errorf("row 15 = %q", rows[15])
	}
}
