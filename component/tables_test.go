package component

import "testing"

func TestNearestExactKey(t *testing.T) {
	if got := zetaRoundBow.Nearest(0.75); got != 0.43 {
		t.Errorf("Nearest(0.75) = %v, want 0.43", got)
	}
	if got := zetaNarrowing.Nearest(1); got != 1.0 {
		t.Errorf("Nearest(1) = %v, want 1", got)
	}
}

func TestNearestBetweenKeys(t *testing.T) {
	// 1.4142 sits between 1.00 and 1.50, closer to 1.50.
	if got := zetaRoundBow.Nearest(1.4142); got != 0.24 {
		t.Errorf("Nearest(1.4142) = %v, want 0.24", got)
	}
}

func TestNearestTieKeepsFirstEntry(t *testing.T) {
	// 0.5 is equidistant to the 0.4 and 0.6 breakpoints; the earlier table
	// entry must win.
	if got := zetaTPiece.Nearest(0.5); got != 6.3 {
		t.Errorf("Nearest(0.5) = %v, want 6.3 from the 0.4 breakpoint", got)
	}
	if got := zetaRectangleBow.Nearest(0.5); got != 0.6 {
		t.Errorf("Nearest(0.5) = %v, want 0.6 from the 0.4 breakpoint", got)
	}
}

func TestNearestOutsideRange(t *testing.T) {
	if got := zetaRoundBow.Nearest(10); got != 0.15 {
		t.Errorf("Nearest(10) = %v, want 0.15", got)
	}
	if got := zetaExtension.Nearest(0); got != 0.125 {
		t.Errorf("Nearest(0) = %v, want 0.125", got)
	}
}
