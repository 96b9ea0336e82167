package component

import "math"

// Breakpoint pairs an empirical table key with its loss coefficient.
type Breakpoint struct {
	Key  float64
	Zeta float64
}

// Table is an ordered empirical lookup table. The order is the order of the
// published source tables and decides ties in Nearest, so entries must not
// be sorted or rearranged.
type Table []Breakpoint

// Nearest returns the coefficient whose key has the smallest absolute
// distance to value. On a tie the earlier entry wins.
func (t Table) Nearest(value float64) float64 {
	best := t[0]
	for _, bp := range t[1:] {
		if math.Abs(value-bp.Key) < math.Abs(value-best.Key) {
			best = bp
		}
	}
	return best.Zeta
}

// Loss coefficient tables, keyed by r/d for bows, by area ratio for
// reductions and by the v1/v flow fraction for t-pieces.
var (
	zetaRectangleBow = Table{
		{0, 1.4}, {0.2, 0.7}, {0.4, 0.6}, {0.6, 0.7}, {0.8, 1.1},
	}

	zetaRoundBow = Table{
		{0.50, 0.9}, {0.75, 0.43}, {1.00, 0.33}, {1.50, 0.24},
		{2.00, 0.19}, {3.00, 0.17}, {4.00, 0.15},
	}

	zetaNarrowing = Table{
		{0.2, 0.75}, {0.4, 0.77}, {0.5, 0.79}, {0.6, 0.82},
		{0.7, 0.85}, {0.9, 0.94}, {1, 1},
	}

	zetaExtension = Table{
		{0.4, 0.125}, {0.5, 0.11}, {0.6, 0.095}, {0.7, 0.075},
		{0.8, 0.055}, {0.9, 0.03},
	}

	zetaTPiece = Table{
		{0.4, 6.3}, {0.6, 2.8}, {0.8, 1.6}, {1.0, 1.0}, {1.2, 0.8},
	}
)
