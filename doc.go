// Package cgkit provides the geometry kernel of a computer-graphics demo:
// a composite cubic Bezier curve that keeps tangent continuity at its joints,
// and Cohen-Sutherland clipping of line segments against a rectangular window.
//
// # Overview
//
// The package exposes two independent kernels. Neither holds global state;
// callers own the state values and pass them explicitly.
//
//   - Curve kernel: ControlPoints, CubicBez, Evaluate, Curve
//   - Clip kernel: ClipWindow, LineSegment, Clip, ClipAll, ClipState
//
// SegmentGenerator produces reproducible random input for the clip kernel.
//
// # Quick Start
//
//	import "github.com/gogpu/cgkit"
//
//	cp := cgkit.NewControlPoints()
//	if err := cp.Update(3, cgkit.Pt(-1, 2, 0)); err != nil {
//	    return err
//	}
//	curve, err := cp.Curve(cgkit.DefaultSamplesPerSegment)
//
//	gen := cgkit.NewSegmentGenerator(cgkit.WithSeed(1))
//	visible := cgkit.ClipAll(gen.Generate(), cgkit.DefaultClipWindow())
//
// # Composite Curve
//
// Ten control points define three cubic segments over indices 0-3, 3-6
// and 6-9. Points 3 and 6 are joints. After an edit near a joint j, the
// point after the joint is re-derived as 2*p[j] - p[j-1], which makes the
// curve C1-continuous there. Edits to points 0, 1, 8 and 9 never move any
// other point.
//
// # Coordinate System
//
// Clip windows use y-up coordinates: Top > Bottom for a well-formed window.
// Boundaries are inclusive. A window with Left >= Right or Bottom >= Top is
// degenerate and rejects every segment.
//
// # Concurrency
//
// The kernel is synchronous and not safe for concurrent mutation. Only the
// package logger (SetLogger, Logger) may be used from several goroutines.
package cgkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
