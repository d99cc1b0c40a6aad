// Package gjk implements shape-agnostic closest-point queries over convex
// proxies: distance (ShapeDistance), a linear shape sweep (ShapeCast), and
// continuous-collision time of impact (TimeOfImpact), plus convex hull
// construction and simple point-in-shape/AABB-of-shape helpers for
// circles, capsules, and polygons.
//
// Grounded directly on _examples/original_source/candybox/sources/gjk/gjk.cpp
// and its header candybox/GJK.hpp — the Gilbert-Johnson-Keerthi distance
// algorithm with Voronoi-region simplex reduction (Christer Ericson,
// "Real-Time Collision Detection" §5.1.8-5.1.9), Gino van den Bergen's
// GJK-raycast for ShapeCast, and a conservative-advancement bisection for
// TimeOfImpact. Contact manifold generation (the original's GJK_Circles,
// GJK_Polygons, etc. family) is out of scope: this package stops at
// distance, cast, and TOI, matching this module's C10 component boundary.
package gjk
