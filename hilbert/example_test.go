package hilbert_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/hilbert"
	"github.com/katalvlaran/geo2d/vecmath"
)

// ExampleTree demonstrates the bulk-load protocol: New, Add exactly n
// times, Finish, then query.
func ExampleTree() {
	tree, err := hilbert.New[float64](3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, _ = tree.Add(vecmath.Vec2[float64]{X: 0, Y: 0}, vecmath.Vec2[float64]{X: 1, Y: 1})
	_, _ = tree.Add(vecmath.Vec2[float64]{X: 5, Y: 5}, vecmath.Vec2[float64]{X: 6, Y: 6})
	_, _ = tree.Add(vecmath.Vec2[float64]{X: 10, Y: 10}, vecmath.Vec2[float64]{X: 11, Y: 11})

	if err := tree.Finish(); err != nil {
		fmt.Println("error:", err)
		return
	}

	query := aabb.New(vecmath.Vec2[float64]{X: 0, Y: 0}, vecmath.Vec2[float64]{X: 6, Y: 6})
	hits, _ := tree.Search(query)
	sort.Slice(hits, func(i, j int) bool { return hits[i] < hits[j] })
	fmt.Println(hits)
	// Output:
	// [0 1]
}
