package kdtree

// 2-d tree implementation adopted from Jon Bentley's 1975 paper:
// Multidimensional Binary Search Trees Used for Associative Searching
// https://dl.acm.org/doi/10.1145/361002.361007
//
// The tree is never rebalanced. Its shape is fixed by insertion order, so
// sorted input degrades every operation to O(n).

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/ughe/kdtree2d/geom"
)

// ErrInvalidArgument is returned for points or rectangles the tree cannot
// accept. The tree is left unchanged.
var ErrInvalidArgument = geom.ErrInvalidArgument

type node struct {
	val      orb.Point
	vertical bool // splits on x if true, y if false
	lo, hi   *node
	size     int // nodes in this subtree, including this one
}

// Returns the splitting coordinate minus the same coordinate of p. Points
// with cmp > 0 belong in lo, all others in hi
func (n *node) cmp(p orb.Point) float64 {
	if n.vertical {
		return n.val[0] - p[0]
	}
	return n.val[1] - p[1]
}

func (n *node) count() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Tree is a set of distinct 2D points. The zero value is an empty tree
// spanning the whole plane.
type Tree struct {
	root    *node
	space   orb.Bound
	bounded bool
}

// New returns an empty tree spanning the whole plane.
func New() *Tree {
	return &Tree{}
}

// NewBounded returns an empty tree whose points all lie in space. Range
// searches start from space instead of the whole plane, and Insert rejects
// points outside of it.
func NewBounded(space orb.Bound) (*Tree, error) {
	if err := geom.CheckBound(space); err != nil {
		return nil, err
	}
	return &Tree{space: space, bounded: true}, nil
}

func (t *Tree) rootSpace() orb.Bound {
	if t.bounded {
		return t.space
	}
	return geom.Everywhere()
}

// IsEmpty reports whether the tree holds no points.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Size returns the number of distinct points in the tree.
func (t *Tree) Size() int {
	return t.root.count()
}

// Insert adds p to the tree. Inserting a point that is already present is a
// no-op.
func (t *Tree) Insert(p orb.Point) error {
	if err := geom.CheckPoint(p); err != nil {
		return err
	}
	if t.bounded && !t.space.Contains(p) {
		return fmt.Errorf("%w: point %v is outside of %v", ErrInvalidArgument, p, t.space)
	}
	// I1
	if t.root == nil {
		t.root = &node{val: p, vertical: true, size: 1}
		return nil
	}
	path := make([]*node, 0, 32)
	n := t.root
	for {
		// I2
		if n.val == p {
			return nil
		}
		path = append(path, n)
		child := &n.hi
		if n.cmp(p) > 0 {
			child = &n.lo
		}
		if *child != nil {
			// I3
			n = *child
			continue
		}
		// I4
		*child = &node{val: p, vertical: !n.vertical, size: 1}
		for _, a := range path {
			a.size++
		}
		return nil
	}
}

// Returns the node holding p or nil if p does not exist
func (n *node) search(p orb.Point) *node {
	for n != nil {
		if n.val == p {
			return n
		}
		if n.cmp(p) > 0 {
			n = n.lo
		} else {
			n = n.hi
		}
	}
	return nil
}

// Contains reports whether p is in the tree.
func (t *Tree) Contains(p orb.Point) (bool, error) {
	if err := geom.CheckPoint(p); err != nil {
		return false, err
	}
	return t.root.search(p) != nil, nil
}

// Returns the halves of b on the lo and hi side of n's splitting line
func (n *node) split(b orb.Bound) (orb.Bound, orb.Bound) {
	lo, hi := b, b
	if n.vertical {
		lo.Max[0] = n.val[0]
		hi.Min[0] = n.val[0]
	} else {
		lo.Max[1] = n.val[1]
		hi.Min[1] = n.val[1]
	}
	return lo, hi
}

// b is the region of the plane that n's subtree can occupy
func (n *node) regionSearch(target, b orb.Bound, r []orb.Point) []orb.Point {
	// R1
	if target.Contains(n.val) {
		r = append(r, n.val)
	}
	// R2
	bl, bh := n.split(b)
	// R3
	if n.lo != nil && target.Intersects(bl) {
		r = n.lo.regionSearch(target, bl, r)
	}
	// R4
	if n.hi != nil && target.Intersects(bh) {
		r = n.hi.regionSearch(target, bh, r)
	}
	return r
}

// Range returns every point of the tree inside b, edges included, ordered by
// y and then x. The result is nil if no point matches.
func (t *Tree) Range(b orb.Bound) ([]orb.Point, error) {
	if err := geom.CheckBound(b); err != nil {
		return nil, err
	}
	if t.root == nil {
		return nil, nil
	}
	r := t.root.regionSearch(b, t.rootSpace(), nil)
	geom.Sort(r)
	return r, nil
}

// A subtree waiting to be searched. It is searched only while guard, the
// squared distance from the query to the line separating it from the query's
// side, is below the best distance found so far.
type pending struct {
	n     *node
	guard float64
}

type nearest struct {
	query   orb.Point
	best    orb.Point
	bestD2  float64
	found   bool
	visited int
}

func (s *nearest) search(root *node) {
	if root == nil {
		return
	}
	stack := []pending{{root, math.Inf(-1)}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// N1
		if !(e.guard < s.bestD2) {
			continue
		}
		n := e.n
		s.visited++
		// N2
		d2 := planar.DistanceSquared(n.val, s.query)
		if !s.found || d2 < s.bestD2 {
			s.best, s.bestD2, s.found = n.val, d2, true
			if d2 == 0 {
				return
			}
		}
		// N3
		c := n.cmp(s.query)
		near, far := n.hi, n.lo
		if c > 0 {
			near, far = n.lo, n.hi
		}
		// N4: far goes under near so near is exhausted before far's guard is read
		if far != nil {
			stack = append(stack, pending{far, c * c})
		}
		if near != nil {
			stack = append(stack, pending{near, math.Inf(-1)})
		}
	}
}

// Nearest returns a point of the tree closest to p. The bool is false only
// when the tree is empty. Among equally close points the first one met wins.
func (t *Tree) Nearest(p orb.Point) (orb.Point, bool, error) {
	if err := geom.CheckPoint(p); err != nil {
		return orb.Point{}, false, err
	}
	s := nearest{query: p, bestD2: math.Inf(1)}
	s.search(t.root)
	return s.best, s.found, nil
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, 0 for an empty tree.
func (t *Tree) Height() int {
	type level struct {
		n     *node
		depth int
	}
	h := 0
	if t.root == nil {
		return h
	}
	stack := []level{{t.root, 1}}
	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l.depth > h {
			h = l.depth
		}
		if l.n.lo != nil {
			stack = append(stack, level{l.n.lo, l.depth + 1})
		}
		if l.n.hi != nil {
			stack = append(stack, level{l.n.hi, l.depth + 1})
		}
	}
	return h
}
