// Package span provides bulk operations over contiguous pixel runs.
package span

// Fill sets every element of dst to v.
//
// The first element is written directly and the initialized prefix is then
// doubled with copy until the slice is full, so the work is done by the
// runtime's memmove instead of a per-element store loop.
func Fill[T any](dst []T, v T) {
	if len(dst) == 0 {
		return
	}
	dst[0] = v
	for n := 1; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}
