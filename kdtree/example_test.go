package kdtree_test

import (
	"fmt"
	"log"

	"github.com/paulmach/orb"
	"github.com/ughe/kdtree2d/kdtree"
)

func Example() {
	tr := kdtree.New()
	for _, p := range []orb.Point{{.7, .2}, {.5, .4}, {.2, .3}, {.4, .7}, {.9, .6}} {
		if err := tr.Insert(p); err != nil {
			log.Fatal(err)
		}
	}

	in, err := tr.Range(orb.Bound{Min: orb.Point{.3, .35}, Max: orb.Point{.6, .8}})
	if err != nil {
		log.Fatal(err)
	}
	near, _, err := tr.Nearest(orb.Point{.55, .35})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("size:", tr.Size())
	for _, p := range in {
		fmt.Printf("in range: %.2f,%.2f\n", p[0], p[1])
	}
	fmt.Printf("nearest: %.2f,%.2f\n", near[0], near[1])
	// Output:
	// size: 5
	// in range: 0.50,0.40
	// in range: 0.40,0.70
	// nearest: 0.50,0.40
}
