package canvas

import "strings"

// String renders the canvas as Height rows of '#' (on) and '.' (off).
// Used by the headless simulator and by tests.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)

	for y := 0; y < Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Width; x++ {
			if c.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Row returns one row of the ASCII rendering.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= Height {
		return strings.Repeat(".", Width)
	}
	var sb strings.Builder
	for x := 0; x < Width; x++ {
		if c.Pixel(x, y) {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
