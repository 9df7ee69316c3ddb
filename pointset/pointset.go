// Package pointset is a brute-force point set. Range and Nearest scan every
// point, which makes it a slow but obviously correct reference for kdtree.
package pointset

import (
	"math"

	"github.com/google/btree"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/ughe/kdtree2d/geom"
)

const degree = 16

// ErrInvalidArgument is returned for points or rectangles the set cannot
// accept.
var ErrInvalidArgument = geom.ErrInvalidArgument

// Set is an ordered set of distinct points, ordered by y and then x.
type Set struct {
	points *btree.BTreeG[orb.Point]
}

func New() *Set {
	return &Set{points: btree.NewG[orb.Point](degree, geom.Less)}
}

func (s *Set) IsEmpty() bool {
	return s.points.Len() == 0
}

func (s *Set) Size() int {
	return s.points.Len()
}

// Insert adds p if it is not already in the set.
func (s *Set) Insert(p orb.Point) error {
	if err := geom.CheckPoint(p); err != nil {
		return err
	}
	s.points.ReplaceOrInsert(p)
	return nil
}

func (s *Set) Contains(p orb.Point) (bool, error) {
	if err := geom.CheckPoint(p); err != nil {
		return false, err
	}
	return s.points.Has(p), nil
}

// Range returns the points inside b in set order, nil if there are none.
func (s *Set) Range(b orb.Bound) ([]orb.Point, error) {
	if err := geom.CheckBound(b); err != nil {
		return nil, err
	}
	var r []orb.Point
	s.points.Ascend(func(p orb.Point) bool {
		if b.Contains(p) {
			r = append(r, p)
		}
		return true
	})
	return r, nil
}

// Nearest returns the first point in set order at the smallest distance
// from p. The bool is false when the set is empty.
func (s *Set) Nearest(p orb.Point) (orb.Point, bool, error) {
	if err := geom.CheckPoint(p); err != nil {
		return orb.Point{}, false, err
	}
	var best orb.Point
	bestD2 := math.Inf(1)
	found := false
	s.points.Ascend(func(q orb.Point) bool {
		d2 := planar.DistanceSquared(q, p)
		if !found || d2 < bestD2 {
			best, bestD2, found = q, d2, true
		}
		return true
	})
	return best, found, nil
}
