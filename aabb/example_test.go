package aabb_test

import (
	"fmt"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/vecmath"
)

// ExampleUnion combines two overlapping boxes into their bounding box.
func ExampleUnion() {
	a := aabb.New(vecmath.Vec2[float64]{X: 0, Y: 0}, vecmath.Vec2[float64]{X: 2, Y: 2})
	b := aabb.New(vecmath.Vec2[float64]{X: 1, Y: 1}, vecmath.Vec2[float64]{X: 3, Y: 3})

	u := aabb.Union(a, b)
	fmt.Printf("%v %v\n", u.Lower, u.Upper)
	// Output:
	// {0 0} {3 3}
}

// ExampleBox_Quad2D splits a box into its four quadrants.
func ExampleBox_Quad2D() {
	b := aabb.New(vecmath.Vec2[float64]{X: 0, Y: 0}, vecmath.Vec2[float64]{X: 10, Y: 10})

	sw := b.Quad2D(aabb.SW)
	fmt.Printf("%v %v\n", sw.Lower, sw.Upper)
	// Output:
	// {0 0} {5 5}
}
