package cgkit

import (
	"fmt"
	"slices"
)

const (
	// NumControlPoints is the fixed size of a control-point sequence.
	NumControlPoints = 10

	// NumSegments is the number of cubic segments in the composite curve.
	NumSegments = 3
)

// Joints returns the indices of the control points shared by consecutive
// segments.
func Joints() [2]int {
	return [2]int{3, 6}
}

// canonicalLayout is the starting shape of the composite curve before the
// joint invariants are applied.
var canonicalLayout = [NumControlPoints]Point{
	{X: -4, Y: 0, Z: 0},
	{X: -3, Y: 2, Z: 1},
	{X: -2, Y: -1, Z: 2},
	{X: -1, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 2, Z: 0.5},
	{X: 2, Y: -1, Z: 1.5},
	{X: 3, Y: 1, Z: 0},
	{X: 4, Y: 0, Z: 1},
	{X: 5, Y: 2, Z: 0.5},
}

// ControlPoints owns the ten control points of a three-segment composite
// cubic Bezier curve. Segment k uses points 3k..3k+3, so points 3 and 6 are
// joints shared by neighbouring segments.
//
// For each joint j the sequence keeps the tangent-continuity invariant
//
//	points[j+1] == 2*points[j] - points[j-1]
//
// by re-deriving the forward neighbour points[j+1] whenever a point in
// j-1..j+1 is edited. The backward neighbour is never re-derived: writing
// points[j+1] directly is immediately overwritten.
//
// ControlPoints is not safe for concurrent use.
type ControlPoints struct {
	points [NumControlPoints]Point

	// curve caches the last evaluation; curveN is its sampling density
	// and is zero when the cache is invalid.
	curve  Curve
	curveN int
}

// NewControlPoints creates a sequence with the canonical layout and both
// joint invariants applied.
func NewControlPoints() *ControlPoints {
	cp := &ControlPoints{}
	cp.Reset()
	return cp
}

// ControlPointsFrom creates a sequence holding exactly the given points.
// The joint invariants are not applied; they are restored locally by the
// next Update near a joint.
func ControlPointsFrom(points [NumControlPoints]Point) *ControlPoints {
	return &ControlPoints{points: points}
}

// Reset restores the canonical layout.
func (cp *ControlPoints) Reset() {
	cp.points = canonicalLayout
	for _, j := range Joints() {
		cp.enforceJoint(j)
	}
	cp.invalidate()
}

// Update moves the point at index to p and restores the continuity
// invariant of the joint whose neighbourhood contains index:
// indices 2, 3, 4 re-derive points[4]; indices 5, 6, 7 re-derive points[7].
// Indices 0, 1, 8 and 9 change only the point itself.
//
// Returns ErrIndexOutOfRange if index is not in [0, NumControlPoints).
func (cp *ControlPoints) Update(index int, p Point) error {
	if index < 0 || index >= NumControlPoints {
		return fmt.Errorf("%w: control point %d, want 0..%d", ErrIndexOutOfRange, index, NumControlPoints-1)
	}

	cp.points[index] = p

	switch index {
	case 2, 3, 4:
		cp.enforceJoint(3)
	case 5, 6, 7:
		cp.enforceJoint(6)
	}
	cp.invalidate()

	Logger().Debug("control point updated",
		"index", index, "x", p.X, "y", p.Y, "z", p.Z)
	return nil
}

// UpdateXYZ is Update with the position given as coordinates.
func (cp *ControlPoints) UpdateXYZ(index int, x, y, z float64) error {
	return cp.Update(index, Point{X: x, Y: y, Z: z})
}

// enforceJoint re-derives the forward neighbour of joint j.
func (cp *ControlPoints) enforceJoint(j int) {
	cp.points[j+1] = cp.points[j].Reflect(cp.points[j-1])
}

// invalidate drops the cached curve.
func (cp *ControlPoints) invalidate() {
	if cp.curveN != 0 {
		Logger().Debug("curve cache invalidated", "samples_per_segment", cp.curveN)
	}
	cp.curve = nil
	cp.curveN = 0
}

// Points returns a copy of the control points.
func (cp *ControlPoints) Points() [NumControlPoints]Point {
	return cp.points
}

// At returns the control point at index.
func (cp *ControlPoints) At(index int) (Point, error) {
	if index < 0 || index >= NumControlPoints {
		return Point{}, fmt.Errorf("%w: control point %d, want 0..%d", ErrIndexOutOfRange, index, NumControlPoints-1)
	}
	return cp.points[index], nil
}

// Segment returns cubic segment k (0, 1 or 2).
func (cp *ControlPoints) Segment(k int) (CubicBez, error) {
	if k < 0 || k >= NumSegments {
		return CubicBez{}, fmt.Errorf("%w: segment %d, want 0..%d", ErrIndexOutOfRange, k, NumSegments-1)
	}
	return segmentOf(cp.points, k), nil
}

// Curve returns the composite curve sampled with samplesPerSegment
// intervals per segment. The result is cached until the next Update and
// the caller receives its own copy.
func (cp *ControlPoints) Curve(samplesPerSegment int) (Curve, error) {
	if cp.curveN != samplesPerSegment || cp.curve == nil {
		curve, err := Evaluate(cp.points, samplesPerSegment)
		if err != nil {
			return nil, err
		}
		cp.curve = curve
		cp.curveN = samplesPerSegment
		Logger().Debug("curve evaluated",
			"samples_per_segment", samplesPerSegment, "points", len(curve))
	}
	return slices.Clone(cp.curve), nil
}

// JointError returns how far joint j is from the continuity invariant:
// the distance between points[j+1] and 2*points[j] - points[j-1].
func (cp *ControlPoints) JointError(j int) (float64, error) {
	if j != 3 && j != 6 {
		return 0, fmt.Errorf("%w: %d is not a joint", ErrIndexOutOfRange, j)
	}
	want := cp.points[j].Reflect(cp.points[j-1])
	return cp.points[j+1].Distance(want), nil
}

// IsSmooth reports whether every joint satisfies the continuity invariant
// within tol.
func (cp *ControlPoints) IsSmooth(tol float64) bool {
	for _, j := range Joints() {
		e, _ := cp.JointError(j)
		if e > tol {
			return false
		}
	}
	return true
}
