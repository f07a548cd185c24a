package cgkit

import "fmt"

// Curve types for the composite Bezier kernel.

// DefaultSamplesPerSegment is the sampling density used by the demo and by
// ControlPoints when no other density is requested.
const DefaultSamplesPerSegment = 50

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 and P3 are the end points, P1 and P2 shape the tangents.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1) in Bernstein form.
// Eval(0) returns P0 and Eval(1) returns P3 without rounding error.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
		Z: mt3*c.P0.Z + 3*mt2*t*c.P1.Z + 3*mt*t2*c.P2.Z + t3*c.P3.Z,
	}
}

// Deriv returns the first derivative of the curve at t.
func (c CubicBez) Deriv(t float64) Vec3 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Vec()
	d1 := c.P2.Sub(c.P1).Vec()
	d2 := c.P3.Sub(c.P2).Vec()

	// 3[(1-t)^2 (P1-P0) + 2(1-t)t (P2-P1) + t^2 (P3-P2)]
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Sample evaluates the curve at t = i/n for i = 0..n and appends the
// points to dst. Each t is computed directly from i, so the first and last
// samples are exactly P0 and P3.
func (c CubicBez) Sample(dst []Point, n int) []Point {
	for i := 0; i <= n; i++ {
		dst = append(dst, c.Eval(float64(i)/float64(n)))
	}
	return dst
}

// -------------------------------------------------------------------
// Curve - sampled composite curve
// -------------------------------------------------------------------

// Curve is the sampled polyline of a composite curve: the samples of
// segment 0 in ascending t, then segment 1, then segment 2.
type Curve []Point

// SamplesPerSegment returns the sampling density the curve was built with,
// or 0 for an empty curve.
func (c Curve) SamplesPerSegment() int {
	if len(c) == 0 {
		return 0
	}
	return len(c)/NumSegments - 1
}

// Segment returns the samples belonging to segment k as a subslice of c.
func (c Curve) Segment(k int) ([]Point, error) {
	if k < 0 || k >= NumSegments {
		return nil, fmt.Errorf("%w: segment %d", ErrIndexOutOfRange, k)
	}
	per := len(c) / NumSegments
	return c[k*per : (k+1)*per : (k+1)*per], nil
}

// Evaluate samples the composite curve defined by points.
//
// Each of the three segments is evaluated at samplesPerSegment+1 evenly
// spaced parameters including both ends, so the result holds
// 3*(samplesPerSegment+1) points. The joint points appear twice: once as the
// last sample of a segment and once as the first sample of the next.
// Evaluate never modifies points and performs no continuity correction.
//
// Returns ErrInvalidParameter if samplesPerSegment < 1.
func Evaluate(points [NumControlPoints]Point, samplesPerSegment int) (Curve, error) {
	if samplesPerSegment < 1 {
		return nil, fmt.Errorf("%w: samples per segment must be at least 1, got %d",
			ErrInvalidParameter, samplesPerSegment)
	}

	curve := make(Curve, 0, NumSegments*(samplesPerSegment+1))
	for k := 0; k < NumSegments; k++ {
		curve = segmentOf(points, k).Sample(curve, samplesPerSegment)
	}
	return curve, nil
}

// segmentOf returns segment k built from points[3k..3k+3].
func segmentOf(points [NumControlPoints]Point, k int) CubicBez {
	i := 3 * k
	return CubicBez{P0: points[i], P1: points[i+1], P2: points[i+2], P3: points[i+3]}
}
