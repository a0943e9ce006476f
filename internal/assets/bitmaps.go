package assets

import "github.com/vovakirdan/angry-pixel/internal/canvas"

// Labels.
var (
	LVL     = mustText("LVL")
	Cleared = mustText("CLEARED!")
	Failed  = mustText("FAILED!")
)

// Next points right, towards the following level.
var Next = canvas.MustParseBitmap(
	"....#..",
	".....#.",
	"#######",
	".....#.",
	"....#..",
)

// Retry points back, to replay the level.
var Retry = canvas.MustParseBitmap(
	"..#....",
	".#.....",
	"#######",
	".#.....",
	"..#....",
)

// Digits indexed by value.
var Digits [10]canvas.Bitmap

func init() {
	for d := range Digits {
		Digits[d] = canvas.MustParseBitmap(glyphs[rune('0'+d)]...)
	}
}
