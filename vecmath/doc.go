// Package vecmath provides 2D vectors, rotations, rigid transforms, and
// the handful of scalar helpers (fuzzy comparison, fast inverse square
// root) the rest of geo2d's spatial code is built on.
//
// Vec2, Rot, and Xf are generic over any float constraint so callers can
// pick float32 (matching the packed-tree float layout) or float64
// (matching higher-precision GJK work) per instantiation.
//
// Rotations compose by complex-number multiplication rather than trig
// calls: Rot{S, C} already holds sin/cos, so MulRot and Inv are a handful of
// multiply-adds. TransformPoint applies the rotation then the
// translation; InvTransformPoint is its exact inverse.
package vecmath
