package assets

import "testing"

func TestGlyphsAreWellFormed(t *testing.T) {
	for r, rows := range glyphs {
		if len(rows) != GlyphHeight {
			t.Errorf("glyph %q has %d rows, expected %d", r, len(rows), GlyphHeight)
			continue
		}
		for y, row := range rows {
			if len(row) != len(rows[0]) {
				t.Errorf("glyph %q row %d is ragged", r, y)
			}
		}
	}
}

func TestDigits(t *testing.T) {
	for d, bm := range Digits {
		if bm.Width != DigitWidth || bm.Height != GlyphHeight {
			t.Errorf("digit %d is %dx%d, expected %dx%d", d, bm.Width, bm.Height, DigitWidth, GlyphHeight)
		}
	}

	// '1' has its stem in the middle column
	for y := 0; y < GlyphHeight; y++ {
		if !Digits[1].At(1, y) {
			t.Errorf("digit 1 should have its stem lit at row %d", y)
		}
	}
}

func TestTextLayout(t *testing.T) {
	bm, err := Text("LVL")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	// Three 3-wide glyphs and two spacer columns
	if bm.Width != 11 {
		t.Errorf("LVL width = %d, expected 11", bm.Width)
	}
	for y := 0; y < GlyphHeight; y++ {
		if bm.At(3, y) || bm.At(7, y) {
			t.Errorf("spacer columns should be blank at row %d", y)
		}
	}
}

func TestTextUnknownRune(t *testing.T) {
	if _, err := Text("LVL?"); err == nil {
		t.Error("expected an error for a rune without a glyph")
	}
}

func TestLabelsFitTheWinScreen(t *testing.T) {
	// "LVL" at x=2 must end before the number at x=15
	if 2+LVL.Width >= 15 {
		t.Errorf("LVL label is too wide: %d", LVL.Width)
	}
	// "CLEARED!" after a two-digit number must still fit on 64 columns
	if 15+7+2+Cleared.Width > 64 {
		t.Errorf("CLEARED! label is too wide: %d", Cleared.Width)
	}
	if Next.Width > 8 || Retry.Width > 8 {
		t.Error("arrows must fit in the last 9 columns")
	}
}
