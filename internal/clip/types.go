// Package clip provides Cohen-Sutherland line clipping against an
// axis-aligned window.
//
// The window uses y-up coordinates: Top is the largest y value and Bottom
// the smallest. Points lying exactly on an edge are inside.
package clip

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is a clip window described by its four edges.
type Rect struct {
	Left, Right, Bottom, Top float64
}

// NewRect creates a Rect from its edges. The edges are stored as given;
// a Rect with Left >= Right or Bottom >= Top is empty.
func NewRect(left, right, bottom, top float64) Rect {
	return Rect{Left: left, Right: right, Bottom: bottom, Top: top}
}

// Width returns Right - Left.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Top - Bottom.
func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// IsEmpty reports whether the rectangle encloses no area.
// NaN edges make a rectangle empty.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Bottom < r.Top)
}

// Contains returns true if the point is inside the rectangle or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// LineSeg represents a line segment.
type LineSeg struct {
	P0, P1 Point
}
