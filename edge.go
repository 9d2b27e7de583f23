package shade

// EdgePolicy controls which pixels the single-pixel compositing path may
// write.
type EdgePolicy int

const (
	// EdgeStrict accepts every pixel inside [0, width) x [0, height).
	EdgeStrict EdgePolicy = iota

	// EdgeLegacy additionally rejects row 0 and column 0. Earlier versions of
	// the renderer behaved this way and some scenes rely on the untouched
	// border.
	EdgeLegacy
)

// String returns the policy name.
func (p EdgePolicy) String() string {
	switch p {
	case EdgeStrict:
		return "Strict"
	case EdgeLegacy:
		return "Legacy"
	default:
		return unknownMode
	}
}

// LineMode selects the line rasterizer used by Image.DrawLine.
type LineMode int

const (
	// LineFast uses the 16.16 fixed-point stepping rasterizer (default).
	LineFast LineMode = iota

	// LineAntialiased splats bilinear coverage onto up to four pixels per step.
	LineAntialiased
)

// String returns the line mode name.
func (m LineMode) String() string {
	switch m {
	case LineFast:
		return "Fast"
	case LineAntialiased:
		return "Antialiased"
	default:
		return unknownMode
	}
}

const unknownMode = "Unknown"
