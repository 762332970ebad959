package common

// InRange reports whether lo <= v <= hi
func InRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

// InvalidRGBComponent returns the index of the first component of rgb that
// falls outside 0..255, or -1 when the triple is valid.
func InvalidRGBComponent(rgb [3]int) int {
	for i, v := range rgb {
		if !InRange(v, 0, 255) {
			return i
		}
	}
	return -1
}
