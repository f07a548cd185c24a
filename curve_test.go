package cgkit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deCasteljau evaluates c by repeated linear interpolation.
func deCasteljau(c CubicBez, t float64) Point {
	a := c.P0.Lerp(c.P1, t)
	b := c.P1.Lerp(c.P2, t)
	d := c.P2.Lerp(c.P3, t)
	ab := a.Lerp(b, t)
	bd := b.Lerp(d, t)
	return ab.Lerp(bd, t)
}

func testCubic() CubicBez {
	return NewCubicBez(Pt(-2.5, 1, 0.3), Pt(-1, 4.75, -2), Pt(3.1, -3, 1), Pt(4, 0.2, -0.7))
}

func TestCubicBez_EvalEndpointsExact(t *testing.T) {
	c := testCubic()

	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %v, want %v", got, c.P0)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %v, want %v", got, c.P3)
	}
	if c.Start() != c.P0 || c.End() != c.P3 {
		t.Error("Start/End do not match P0/P3")
	}
}

func TestCubicBez_EvalMatchesDeCasteljau(t *testing.T) {
	c := testCubic()

	var want, got []Point
	for i := 0; i <= 20; i++ {
		ts := float64(i) / 20
		want = append(want, deCasteljau(c, ts))
		got = append(got, c.Eval(ts))
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Eval mismatch (-want +got):\n%s", diff)
	}
}

func TestCubicBez_Deriv(t *testing.T) {
	c := testCubic()

	const n = 10
	const delta = 1e-6
	for i := range n {
		ts := float64(i) / float64(n)
		approx := c.Eval(ts + delta).Sub(c.Eval(ts)).Mul(1 / delta).Vec()
		d := c.Deriv(ts)
		if l := d.Sub(approx).Length(); l >= 1e-4 {
			t.Errorf("Deriv(%g) = %v, finite difference %v (off by %g)", ts, d, approx, l)
		}
	}

	assert.True(t, c.Deriv(0).Approx(c.P1.Sub(c.P0).Vec().Mul(3), 1e-12))
	assert.True(t, c.Deriv(1).Approx(c.P3.Sub(c.P2).Vec().Mul(3), 1e-12))
}

func TestEvaluate_Length(t *testing.T) {
	pts := NewControlPoints().Points()

	for _, n := range []int{1, 2, 7, DefaultSamplesPerSegment} {
		curve, err := Evaluate(pts, n)
		require.NoError(t, err)
		assert.Len(t, curve, 3*(n+1))
		assert.Equal(t, n, curve.SamplesPerSegment())
	}
}

func TestEvaluate_InvalidSamples(t *testing.T) {
	pts := NewControlPoints().Points()

	for _, n := range []int{0, -5} {
		curve, err := Evaluate(pts, n)
		assert.ErrorIs(t, err, ErrInvalidParameter)
		assert.Nil(t, curve)
	}
}

func TestEvaluate_SegmentEndpointsExact(t *testing.T) {
	cp := NewControlPoints()
	require.NoError(t, cp.Update(1, Pt(-3.3, 2.1, 0.7)))
	require.NoError(t, cp.Update(6, Pt(1.9, -0.4, 1.25)))
	pts := cp.Points()

	curve, err := Evaluate(pts, 13)
	require.NoError(t, err)

	for k := 0; k < NumSegments; k++ {
		seg, err := curve.Segment(k)
		require.NoError(t, err)
		require.Len(t, seg, 14)
		assert.Equal(t, pts[3*k], seg[0], "segment %d at t=0", k)
		assert.Equal(t, pts[3*k+3], seg[len(seg)-1], "segment %d at t=1", k)
	}

	_, err = curve.Segment(NumSegments)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestEvaluate_OrderAndValues(t *testing.T) {
	pts := NewControlPoints().Points()
	const n = 8

	curve, err := Evaluate(pts, n)
	require.NoError(t, err)

	var want Curve
	for k := 0; k < NumSegments; k++ {
		c := NewCubicBez(pts[3*k], pts[3*k+1], pts[3*k+2], pts[3*k+3])
		for i := 0; i <= n; i++ {
			want = append(want, deCasteljau(c, float64(i)/n))
		}
	}

	if diff := cmp.Diff(want, curve, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Evaluate mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_TangentContinuityAtJoints(t *testing.T) {
	cp := NewControlPoints()
	require.NoError(t, cp.Update(3, Pt(-0.5, 2, 1)))
	require.NoError(t, cp.Update(5, Pt(0.5, 3, -1)))

	for _, k := range []int{0, 1} {
		left, err := cp.Segment(k)
		require.NoError(t, err)
		right, err := cp.Segment(k + 1)
		require.NoError(t, err)

		assert.Equal(t, left.End(), right.Start())
		assert.True(t, left.Deriv(1).Approx(right.Deriv(0), 1e-9),
			"tangent jump at joint %d: %v vs %v", 3*(k+1), left.Deriv(1), right.Deriv(0))
	}
}

func TestEvaluate_NoContinuityCorrection(t *testing.T) {
	var layout [NumControlPoints]Point
	for i := range layout {
		layout[i] = Pt(float64(i), math.Sin(float64(i)), 0)
	}
	before := layout

	curve, err := Evaluate(layout, 4)
	require.NoError(t, err)
	assert.Equal(t, before, layout)

	// The broken joint shows up as a tangent jump in the samples.
	seg0, _ := curve.Segment(0)
	seg1, _ := curve.Segment(1)
	in := seg0[len(seg0)-1].Sub(seg0[len(seg0)-2]).Vec().Normalize()
	out := seg1[1].Sub(seg1[0]).Vec().Normalize()
	assert.False(t, in.Approx(out, 1e-6))
}

func TestCurve_SegmentEmpty(t *testing.T) {
	var c Curve
	assert.Zero(t, c.SamplesPerSegment())
	seg, err := c.Segment(0)
	require.NoError(t, err)
	assert.Empty(t, seg)
}
