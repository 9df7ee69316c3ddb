package kdtree

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	gonum "gonum.org/v1/gonum/spatial/kdtree"
)

const benchPoints = 100000

func benchTree(b *testing.B) *Tree {
	b.StopTimer()
	r := rand.New(rand.NewSource(1))
	tr := New()
	for i := 0; i < benchPoints; i++ {
		tr.Insert(orb.Point{r.Float64(), r.Float64()})
	}
	b.StartTimer()
	return tr
}

func BenchmarkInsert(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tr := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Insert(orb.Point{r.Float64(), r.Float64()})
	}
}

func BenchmarkContains(b *testing.B) {
	tr := benchTree(b)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Contains(orb.Point{r.Float64(), r.Float64()})
	}
}

func BenchmarkRange(b *testing.B) {
	tr := benchTree(b)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, y := r.Float64(), r.Float64()
		tr.Range(orb.Bound{Min: orb.Point{x, y}, Max: orb.Point{x + .01, y + .01}})
	}
}

func BenchmarkNearest(b *testing.B) {
	tr := benchTree(b)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Nearest(orb.Point{r.Float64(), r.Float64()})
	}
}

// Baseline: gonum's median-built k-d tree over the same points
func BenchmarkNearestGonum(b *testing.B) {
	b.StopTimer()
	r := rand.New(rand.NewSource(1))
	pts := make(gonum.Points, benchPoints)
	for i := range pts {
		pts[i] = gonum.Point{r.Float64(), r.Float64()}
	}
	gt := gonum.New(pts, false)
	r = rand.New(rand.NewSource(2))
	b.StartTimer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gt.Nearest(gonum.Point{r.Float64(), r.Float64()})
	}
}
