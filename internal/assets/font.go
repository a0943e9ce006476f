// Package assets holds the constant bitmaps drawn on the win and lose
// screens: a 3x5 digit font, text labels and the next/retry arrows.
package assets

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/angry-pixel/internal/canvas"
)

// Glyph geometry.
const (
	GlyphHeight = 5
	DigitWidth  = 3
)

// glyphs are drawn with '#' for lit LEDs.
var glyphs = map[rune][]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", ".##", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", ".#.", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'A': {".#.", "#.#", "###", "#.#", "#.#"},
	'C': {".##", "#..", "#..", "#..", ".##"},
	'D': {"##.", "#.#", "#.#", "#.#", "##."},
	'E': {"###", "#..", "##.", "#..", "###"},
	'F': {"###", "#..", "##.", "#..", "#.."},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'L': {"#..", "#..", "#..", "#..", "###"},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
	'!': {"#", "#", "#", ".", "#"},
	' ': {"..", "..", "..", "..", ".."},
}

// Text lays out s with one blank column between glyphs.
// It returns an error for runes the font does not cover.
func Text(s string) (canvas.Bitmap, error) {
	rows := make([]strings.Builder, GlyphHeight)

	for i, r := range s {
		g, ok := glyphs[r]
		if !ok {
			return canvas.Bitmap{}, fmt.Errorf("assets: no glyph for %q", r)
		}
		for y := range rows {
			if i > 0 {
				rows[y].WriteByte('.')
			}
			rows[y].WriteString(g[y])
		}
	}

	lines := make([]string, GlyphHeight)
	for y := range rows {
		lines[y] = rows[y].String()
	}
	return canvas.ParseBitmap(lines...)
}

func mustText(s string) canvas.Bitmap {
	bm, err := Text(s)
	if err != nil {
		panic(err)
	}
	return bm
}
