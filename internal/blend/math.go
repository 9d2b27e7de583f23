// Package blend implements the integer compositing law shared by every
// drawing primitive.
//
// Pixels are packed ARGB words (alpha in the high byte). All arithmetic stays
// in 32-bit integers; the only division is by 255 and it is done with shifts.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// Div255 divides x by 255 without a division instruction.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It truncates exactly like x/255 for every
// product of two bytes (0..65025), which is the whole domain used here.
func Div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// MulDiv255 multiplies two bytes and divides by 255.
func MulDiv255(a, b uint32) uint32 {
	return Div255(a * b)
}

// Clamp255 restricts v to [0, 255].
func Clamp255(v int) uint32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint32(v)
}
