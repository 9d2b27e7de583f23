package shade

// Catmull-Rom defaults.
const (
	// DefaultSplineSegments is the number of points generated per segment.
	DefaultSplineSegments = 16

	// DefaultSplineTension scales the tangents; 0.5 is the standard
	// Catmull-Rom curve.
	DefaultSplineTension = 0.5
)

// CatmullRom returns a smoothed, denser copy of the polyline through points.
//
// The first and last points are duplicated as phantom neighbors so the end
// tangents are defined. Every segment p[i]..p[i+1] contributes segments
// points evaluated with the cubic Hermite basis and tangents
//
//	t1 = (p[i+1] - p[i-1]) * tension
//	t2 = (p[i+2] - p[i])   * tension
//
// The curve passes through every input point and the result ends with the
// last input point, giving (len(points)-1)*segments + 1 points. Fewer than two
// points are returned as a copy. A non-positive segments uses
// DefaultSplineSegments.
func CatmullRom(points []Vector2, segments int, tension float64) []Vector2 {
	if len(points) < 2 {
		return append([]Vector2(nil), points...)
	}
	if segments <= 0 {
		segments = DefaultSplineSegments
	}

	pts := make([]Vector2, 0, len(points)+2)
	pts = append(pts, points[0])
	pts = append(pts, points...)
	pts = append(pts, points[len(points)-1])

	out := make([]Vector2, 0, (len(points)-1)*segments+1)
	for i := 1; i < len(pts)-2; i++ {
		p0, p1 := pts[i], pts[i+1]
		t1 := pts[i+1].Sub(pts[i-1]).Mul(tension)
		t2 := pts[i+2].Sub(pts[i]).Mul(tension)

		for s := range segments {
			st := float64(s) / float64(segments)
			st2 := st * st
			st3 := st2 * st

			h1 := 2*st3 - 3*st2 + 1
			h2 := -2*st3 + 3*st2
			h3 := st3 - 2*st2 + st
			h4 := st3 - st2

			out = append(out, p0.Mul(h1).Add(p1.Mul(h2)).Add(t1.Mul(h3)).Add(t2.Mul(h4)))
		}
	}
	return append(out, points[len(points)-1])
}
