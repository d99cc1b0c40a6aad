package quadtree_test

import (
	"fmt"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/quadtree"
	"github.com/katalvlaran/geo2d/vecmath"
)

// ExampleTree demonstrates insertion and an overlap query.
func ExampleTree() {
	outer := aabb.New(vecmath.Vec2[float64]{X: 0, Y: 0}, vecmath.Vec2[float64]{X: 256, Y: 256})
	tree, err := quadtree.New[float64, string](outer, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tree.Insert(aabb.New(vecmath.Vec2[float64]{X: 0, Y: 0}, vecmath.Vec2[float64]{X: 1, Y: 1}), "alpha")
	tree.Insert(aabb.New(vecmath.Vec2[float64]{X: 200, Y: 200}, vecmath.Vec2[float64]{X: 201, Y: 201}), "beta")

	query := quadtree.Overlapping(aabb.New(vecmath.Vec2[float64]{X: -1, Y: -1}, vecmath.Vec2[float64]{X: 2, Y: 2}))
	var found []string
	tree.Query(query, func(value string) bool {
		found = append(found, value)
		return true
	})
	fmt.Println(found)
	// Output:
	// [alpha]
}
