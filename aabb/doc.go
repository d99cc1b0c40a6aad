// Package aabb implements axis-aligned bounding box algebra: union,
// containment, overlap, ray intersection, quadrant splitting, and both
// normal and spherical volume.
//
// Box is the 2D specialization used throughout geo2d's spatial indices.
// BoxN generalizes to arbitrary dimension D for callers who need it, but
// quad2d and getRotated remain 2D-only operations.
//
// An empty box (the identity element for Union) is built with Empty: its
// lower bound is +Inf and its upper bound is -Inf on every axis, so that
// Union with any real box yields that box unchanged.
package aabb
