// Package geom holds the argument checks and orderings shared by the point
// indexes. Points and rectangles themselves are orb.Point and orb.Bound.
package geom

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/paulmach/orb"
)

// ErrInvalidArgument is returned for points or rectangles an index cannot
// accept. Nothing is mutated when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// Everywhere returns the rectangle covering every representable coordinate.
func Everywhere() orb.Bound {
	inf := math.Inf(1)
	return orb.Bound{
		Min: orb.Point{-inf, -inf},
		Max: orb.Point{inf, inf},
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// CheckPoint rejects points with a NaN or infinite coordinate
func CheckPoint(p orb.Point) error {
	if !finite(p[0]) || !finite(p[1]) {
		return fmt.Errorf("%w: point %v is not finite", ErrInvalidArgument, p)
	}
	return nil
}

// CheckBound rejects rectangles with NaN or inverted bounds. Infinite bounds
// and zero width or height are fine.
func CheckBound(b orb.Bound) error {
	for _, f := range [4]float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]} {
		if math.IsNaN(f) {
			return fmt.Errorf("%w: rectangle %v has a NaN bound", ErrInvalidArgument, b)
		}
	}
	if b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] {
		return fmt.Errorf("%w: rectangle %v has min > max", ErrInvalidArgument, b)
	}
	return nil
}

// Compare orders points by y, then by x.
func Compare(a, b orb.Point) int {
	switch {
	case a[1] < b[1]:
		return -1
	case a[1] > b[1]:
		return 1
	case a[0] < b[0]:
		return -1
	case a[0] > b[0]:
		return 1
	}
	return 0
}

// Less reports whether a sorts before b under Compare.
func Less(a, b orb.Point) bool {
	return Compare(a, b) < 0
}

// Sort puts ps into Compare order in place
func Sort(ps []orb.Point) {
	slices.SortFunc(ps, Compare)
}
