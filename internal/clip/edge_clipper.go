package clip

import "strings"

// Outcode is the Cohen-Sutherland region code of a point relative to a
// clip window. Each set bit names one violated edge.
type Outcode uint8

// Outcode bits.
const (
	Inside Outcode = 0
	Left   Outcode = 1
	Right  Outcode = 2
	Bottom Outcode = 4
	Top    Outcode = 8
)

// String returns the set bits joined with '|', or "INSIDE".
func (c Outcode) String() string {
	if c == Inside {
		return "INSIDE"
	}
	var parts []string
	for _, b := range [...]struct {
		bit  Outcode
		name string
	}{{Left, "LEFT"}, {Right, "RIGHT"}, {Bottom, "BOTTOM"}, {Top, "TOP"}} {
		if c&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}

// maxClipSteps bounds the endpoint moves of a single ClipLine call.
// Each endpoint can be moved onto at most one vertical and one horizontal
// edge before the segment is accepted or both endpoints share a violated edge.
const maxClipSteps = 4

// LineClipper clips line segments against a rectangular window using the
// Cohen-Sutherland algorithm. It holds no state besides the window, so a
// single LineClipper may be reused for any number of segments.
type LineClipper struct {
	clip Rect
}

// NewLineClipper creates a clipper for the given window.
func NewLineClipper(clip Rect) *LineClipper {
	return &LineClipper{clip: clip}
}

// Clip returns the clip rectangle.
func (lc *LineClipper) Clip() Rect {
	return lc.clip
}

// Outcode computes the region code for a point. Points on an edge are
// inside with respect to that edge.
func (lc *LineClipper) Outcode(p Point) Outcode {
	code := Inside

	if p.X < lc.clip.Left {
		code |= Left
	} else if p.X > lc.clip.Right {
		code |= Right
	}

	if p.Y < lc.clip.Bottom {
		code |= Bottom
	} else if p.Y > lc.clip.Top {
		code |= Top
	}

	return code
}

// ClipLine clips the segment p0-p1 to the window.
// It returns the visible part and true, or a zero LineSeg and false when
// nothing of the segment is visible. An empty window rejects every segment
// without computing any outcode.
func (lc *LineClipper) ClipLine(p0, p1 Point) (LineSeg, bool) {
	if lc.clip.IsEmpty() {
		return LineSeg{}, false
	}

	code0 := lc.Outcode(p0)
	code1 := lc.Outcode(p1)

	for step := 0; ; step++ {
		if (code0 | code1) == 0 {
			// Both inside - trivially accept
			return LineSeg{P0: p0, P1: p1}, true
		}
		if (code0 & code1) != 0 {
			// Both outside the same edge - trivially reject
			return LineSeg{}, false
		}
		if step == maxClipSteps {
			return LineSeg{}, false
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		p := lc.intersect(p0, p1, codeOut)

		if codeOut == code0 {
			p0 = p
			code0 = lc.Outcode(p0)
		} else {
			p1 = p
			code1 = lc.Outcode(p1)
		}
	}
}

// intersect returns the point where the line through p0 and p1 meets the
// first violated edge in codeOut, testing TOP, BOTTOM, RIGHT, LEFT in that
// order.
func (lc *LineClipper) intersect(p0, p1 Point, codeOut Outcode) Point {
	var p Point
	switch {
	case codeOut&Top != 0:
		p.X = p0.X + (p1.X-p0.X)*(lc.clip.Top-p0.Y)/(p1.Y-p0.Y)
		p.Y = lc.clip.Top
	case codeOut&Bottom != 0:
		p.X = p0.X + (p1.X-p0.X)*(lc.clip.Bottom-p0.Y)/(p1.Y-p0.Y)
		p.Y = lc.clip.Bottom
	case codeOut&Right != 0:
		p.Y = p0.Y + (p1.Y-p0.Y)*(lc.clip.Right-p0.X)/(p1.X-p0.X)
		p.X = lc.clip.Right
	case codeOut&Left != 0:
		p.Y = p0.Y + (p1.Y-p0.Y)*(lc.clip.Left-p0.X)/(p1.X-p0.X)
		p.X = lc.clip.Left
	}
	return p
}

// ClipLines clips every segment and returns the visible parts in input
// order. Rejected segments are dropped. The input slice is not modified.
func (lc *LineClipper) ClipLines(segs []LineSeg) []LineSeg {
	if lc.clip.IsEmpty() {
		return nil
	}
	out := make([]LineSeg, 0, len(segs))
	for _, s := range segs {
		if c, ok := lc.ClipLine(s.P0, s.P1); ok {
			out = append(out, c)
		}
	}
	return out
}
