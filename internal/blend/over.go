package blend

// Channel shifts inside a packed ARGB word.
const (
	ShiftA = 24
	ShiftR = 16
	ShiftG = 8
	ShiftB = 0
)

// Alpha returns the alpha byte of a packed ARGB word.
func Alpha(p uint32) uint32 {
	return p >> ShiftA
}

// Over composites src over dst and returns the new destination word.
//
// Color channels follow
//
//	c = (s*a + d*(255-a)) / 255
//
// and the destination alpha accumulates as
//
//	alpha = a + da*(255-a) / 255
//
// so a second translucent blend onto the same pixel sees the coverage left
// by the first one. Division truncates. Each resulting channel lies between
// the source and destination channel, inclusive.
//
// The alpha 0 and alpha 255 cases are exact: dst is returned unchanged and
// src is returned as-is respectively.
func Over(dst, src uint32) uint32 {
	a := Alpha(src)
	switch a {
	case 0:
		return dst
	case 255:
		return src
	}
	ia := 255 - a

	r := Div255(((src>>ShiftR)&0xFF)*a + ((dst>>ShiftR)&0xFF)*ia)
	g := Div255(((src>>ShiftG)&0xFF)*a + ((dst>>ShiftG)&0xFF)*ia)
	b := Div255((src&0xFF)*a + (dst&0xFF)*ia)
	outA := a + Div255(Alpha(dst)*ia)

	return outA<<ShiftA | r<<ShiftR | g<<ShiftG | b
}

// ScaleAlpha returns p with its alpha multiplied by coverage/255.
func ScaleAlpha(p, coverage uint32) uint32 {
	a := MulDiv255(Alpha(p), coverage)
	return a<<ShiftA | p&0x00FFFFFF
}
