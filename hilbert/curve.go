package hilbert

// xyToIndex maps (x,y) in [0, 2^order) to its position along a Hilbert
// curve of the given order, via the standard bit-interleaving
// construction (Wikipedia's "d2xy"/"xy2d", the same recurrence used by
// flatbush and its ports).
func xyToIndex(order uint, x, y uint32) uint32 {
	var d uint32
	for s := uint32(1) << (order - 1); s > 0; s >>= 1 {
		var rx, ry uint32
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = rotate(s, x, y, rx, ry)
	}
	return d
}

// rotate applies the quadrant rotation/reflection step of the Hilbert
// curve construction.
func rotate(n, x, y, rx, ry uint32) (uint32, uint32) {
	if ry == 0 {
		if rx == 1 {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}
	return x, y
}
