package rtree

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
)

// VolumeMode selects which of aabb.Box's two volume formulas the split
// and merge-cost heuristics use.
type VolumeMode int

const (
	// VolumeNormal uses Box.NormalVolume (plain product of extents).
	VolumeNormal VolumeMode = iota
	// VolumeSpherical uses Box.SphericalVolume (area of the box's
	// bounding circle), which grows with the box's diagonal, so elongated
	// boxes cost more relative to their area than under VolumeNormal.
	VolumeSpherical
)

func volumeOf[T constraints.Float](mode VolumeMode, b aabb.Box[T]) T {
	if mode == VolumeSpherical {
		return b.SphericalVolume()
	}
	return b.NormalVolume()
}

// waste is the cost quadraticSplit's seed-picking step maximizes:
// how much volume the union of a and b wastes over their own
// volumes.
func waste[T constraints.Float](mode VolumeMode, a, b aabb.Box[T]) T {
	return volumeOf(mode, aabb.Union(a, b)) - volumeOf(mode, a) - volumeOf(mode, b)
}

// growth is how much box would have to expand to absorb other.
func growth[T constraints.Float](mode VolumeMode, box, other aabb.Box[T]) T {
	return volumeOf(mode, aabb.Union(box, other)) - volumeOf(mode, box)
}
