package util

// GrowSize returns the next larger size for a dynamic array.
// Guaranteed that (GrowSize(x)-x) is monotonic.
func GrowSize(size int) int {
	// Same as Git's alloc_nr.
	return (size + 16) * 3 / 2
}

// GrowSizeMinimum returns a larger size for a dynamic array which is at least
// the given minimum size.
func GrowSizeMinimum(size int, minimum int) int {
	nextLarger := GrowSize(size)
	if nextLarger >= minimum {
		return nextLarger
	}
	return minimum
}
