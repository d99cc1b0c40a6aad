package bvh_test

import (
	"fmt"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/bvh"
	"github.com/katalvlaran/geo2d/vecmath"
)

// ExampleTree demonstrates insertion, a box query, and the Move
// protocol for deciding whether a moving proxy needs reinsertion.
func ExampleTree() {
	tree, err := bvh.New[float64](0.1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	proxy := tree.Add(aabb.New(vecmath.Vec2[float64]{X: 0, Y: 0}, vecmath.Vec2[float64]{X: 1, Y: 1}), 1, "player")

	reinserted, _ := tree.Move(proxy, aabb.New(vecmath.Vec2[float64]{X: 0.05, Y: 0.05}, vecmath.Vec2[float64]{X: 1.05, Y: 1.05}))
	fmt.Println("small move reinserted:", reinserted)

	var found []string
	tree.Query(aabb.New(vecmath.Vec2[float64]{X: -1, Y: -1}, vecmath.Vec2[float64]{X: 2, Y: 2}), func(proxyID int32) bool {
		ud, _ := tree.GetUserData(proxyID)
		found = append(found, ud.(string))
		return true
	})
	fmt.Println(found)
	// Output:
	// small move reinserted: false
	// [player]
}
