package cgkit

import (
	"slices"

	"github.com/gogpu/cgkit/internal/clip"
)

// ClipWindow is an axis-aligned clipping rectangle in y-up coordinates.
// A window with Left >= Right or Bottom >= Top is degenerate and clips
// away every segment; it is valid input, not an error.
type ClipWindow struct {
	Left, Right, Bottom, Top float64
}

// NewClipWindow creates a ClipWindow from its four edges without validation.
func NewClipWindow(left, right, bottom, top float64) ClipWindow {
	return ClipWindow{Left: left, Right: right, Bottom: bottom, Top: top}
}

// DefaultClipWindow returns the window [-3, 3] x [-3, 3].
func DefaultClipWindow() ClipWindow {
	return NewClipWindow(-3, 3, -3, 3)
}

// IsDegenerate reports whether the window encloses no area.
func (w ClipWindow) IsDegenerate() bool {
	return w.rect().IsEmpty()
}

// Contains reports whether p lies inside the window or on its boundary.
// Z is ignored.
func (w ClipWindow) Contains(p Point) bool {
	return w.rect().Contains(clip.Pt(p.X, p.Y))
}

func (w ClipWindow) rect() clip.Rect {
	return clip.NewRect(w.Left, w.Right, w.Bottom, w.Top)
}

// LineSegment is a 2D segment in the z=0 plane. Accepted is set only on
// segments produced by Clip or ClipAll.
type LineSegment struct {
	P0, P1   Point
	Accepted bool
}

// Seg creates a LineSegment from (x0, y0) to (x1, y1).
func Seg(x0, y0, x1, y1 float64) LineSegment {
	return LineSegment{P0: Pt2(x0, y0), P1: Pt2(x1, y1)}
}

func (s LineSegment) toClip() clip.LineSeg {
	return clip.LineSeg{P0: clip.Pt(s.P0.X, s.P0.Y), P1: clip.Pt(s.P1.X, s.P1.Y)}
}

func fromClip(s clip.LineSeg) LineSegment {
	return LineSegment{P0: Pt2(s.P0.X, s.P0.Y), P1: Pt2(s.P1.X, s.P1.Y), Accepted: true}
}

// Clip clips seg against w with the Cohen-Sutherland algorithm.
// It returns the visible part with Accepted set and true, or a zero
// LineSegment and false if nothing is visible. Segments fully inside w are
// returned with their endpoints unchanged.
func Clip(seg LineSegment, w ClipWindow) (LineSegment, bool) {
	cs := seg.toClip()
	c, ok := clip.NewLineClipper(w.rect()).ClipLine(cs.P0, cs.P1)
	if !ok {
		return LineSegment{}, false
	}
	return fromClip(c), true
}

// ClipAll clips every segment against w independently and returns the
// accepted results in input order. segs is not modified.
func ClipAll(segs []LineSegment, w ClipWindow) []LineSegment {
	if w.IsDegenerate() {
		Logger().Warn("degenerate clip window rejects all segments",
			"left", w.Left, "right", w.Right, "bottom", w.Bottom, "top", w.Top,
			"segments", len(segs))
		return []LineSegment{}
	}

	in := make([]clip.LineSeg, len(segs))
	for i, s := range segs {
		in[i] = s.toClip()
	}

	visible := clip.NewLineClipper(w.rect()).ClipLines(in)
	out := make([]LineSegment, len(visible))
	for i, c := range visible {
		out[i] = fromClip(c)
	}

	Logger().Debug("segments clipped", "in", len(segs), "accepted", len(out))
	return out
}

// ClipState is the clip kernel's owned state: the current window, the raw
// segments and the result of the last Recompute. It holds no reference to
// any presentation object.
type ClipState struct {
	window  ClipWindow
	raw     []LineSegment
	clipped []LineSegment
}

// NewClipState creates a state with the default window and no segments.
func NewClipState() *ClipState {
	return &ClipState{window: DefaultClipWindow()}
}

// Window returns the current clip window.
func (s *ClipState) Window() ClipWindow {
	return s.window
}

// SetWindow replaces the clip window and recomputes the clipped segments.
// Degenerate windows are accepted.
func (s *ClipState) SetWindow(left, right, bottom, top float64) {
	s.window = NewClipWindow(left, right, bottom, top)
	s.Recompute()
}

// SetSegments replaces the raw segments with a copy of segs and recomputes
// the clipped segments.
func (s *ClipState) SetSegments(segs []LineSegment) {
	s.raw = slices.Clone(segs)
	s.Recompute()
}

// Recompute clips the raw segments against the current window.
func (s *ClipState) Recompute() {
	s.clipped = ClipAll(s.raw, s.window)
}

// Segments returns a copy of the raw segments.
func (s *ClipState) Segments() []LineSegment {
	return slices.Clone(s.raw)
}

// Clipped returns a copy of the segments accepted by the last Recompute.
func (s *ClipState) Clipped() []LineSegment {
	return slices.Clone(s.clipped)
}
