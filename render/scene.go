// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"math"

	"github.com/gogpu/cgkit"
)

// Scene is a retained list of drawing commands.
//
// Points are projected through the scene camera when a command is added,
// so SetCamera must be called before adding geometry. Unless SetView is
// used, the renderer fits the bounds of all commands into the target.
//
// Example:
//
//	scene := render.NewScene()
//	scene.Polyline(curve, color.RGBA{0, 255, 255, 255}, 3)
//	scene.Markers(points[:], color.RGBA{255, 0, 0, 255}, 8)
//	renderer.Render(target, scene)
type Scene struct {
	// commands stores the drawing command stream.
	commands []drawCommand

	camera     Camera
	background color.RGBA

	// view is the explicit world rectangle, if set.
	view    [4]float64
	hasView bool
}

// drawCommand represents a single drawing operation.
type drawCommand struct {
	op     drawOp
	points []screenPoint
	color  color.RGBA
	width  float64 // line width or marker size in pixels
	text   string
}

// screenPoint is a projected world position.
type screenPoint struct {
	X, Y float64
}

// drawOp is the type of drawing operation.
type drawOp uint8

const (
	opPolyline drawOp = iota // connected strip
	opLines                  // independent pairs
	opMarkers                // square dots
	opLabel                  // text at points[0]
)

// NewScene creates a new empty Scene with an identity camera.
func NewScene() *Scene {
	return &Scene{
		commands:   make([]drawCommand, 0, 8),
		background: color.RGBA{R: 24, G: 24, B: 32, A: 255},
	}
}

// Reset clears all commands and the explicit view.
func (s *Scene) Reset() {
	s.commands = s.commands[:0]
	s.hasView = false
}

// SetCamera sets the projection for subsequently added geometry.
func (s *Scene) SetCamera(c Camera) {
	s.camera = c
}

// SetBackground sets the clear color.
func (s *Scene) SetBackground(c color.Color) {
	s.background = toRGBA(c)
}

// SetView fixes the visible world rectangle instead of fitting the content.
func (s *Scene) SetView(minX, maxX, minY, maxY float64) {
	s.view = [4]float64{minX, maxX, minY, maxY}
	s.hasView = true
}

// CommandCount returns the number of recorded commands.
func (s *Scene) CommandCount() int {
	return len(s.commands)
}

// IsEmpty reports whether the scene has no commands.
func (s *Scene) IsEmpty() bool {
	return len(s.commands) == 0
}

// Polyline adds a connected line strip through pts.
func (s *Scene) Polyline(pts []cgkit.Point, c color.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	s.add(opPolyline, pts, c, width, "")
}

// Lines adds each segment as an independent line.
func (s *Scene) Lines(segs []cgkit.LineSegment, c color.Color, width float64) {
	if len(segs) == 0 {
		return
	}
	pts := make([]cgkit.Point, 0, 2*len(segs))
	for _, seg := range segs {
		pts = append(pts, seg.P0, seg.P1)
	}
	s.add(opLines, pts, c, width, "")
}

// Window adds the outline of a clip window. Degenerate windows are drawn
// as given.
func (s *Scene) Window(w cgkit.ClipWindow, c color.Color, width float64) {
	s.add(opPolyline, []cgkit.Point{
		cgkit.Pt2(w.Left, w.Bottom),
		cgkit.Pt2(w.Right, w.Bottom),
		cgkit.Pt2(w.Right, w.Top),
		cgkit.Pt2(w.Left, w.Top),
		cgkit.Pt2(w.Left, w.Bottom),
	}, c, width, "")
}

// Markers adds a square dot of the given pixel size at every point.
func (s *Scene) Markers(pts []cgkit.Point, c color.Color, size float64) {
	if len(pts) == 0 {
		return
	}
	s.add(opMarkers, pts, c, size, "")
}

// Label adds text next to p.
func (s *Scene) Label(p cgkit.Point, text string, c color.Color) {
	s.add(opLabel, []cgkit.Point{p}, c, 0, text)
}

func (s *Scene) add(op drawOp, pts []cgkit.Point, c color.Color, width float64, text string) {
	sp := make([]screenPoint, len(pts))
	for i, p := range pts {
		x, y := s.camera.Project(p)
		sp[i] = screenPoint{X: x, Y: y}
	}
	s.commands = append(s.commands, drawCommand{
		op:     op,
		points: sp,
		color:  toRGBA(c),
		width:  width,
		text:   text,
	})
}

// Bounds returns the projected bounding box of the scene, or the explicit
// view if one was set. ok is false for an empty scene without a view.
func (s *Scene) Bounds() (minX, maxX, minY, maxY float64, ok bool) {
	if s.hasView {
		return s.view[0], s.view[1], s.view[2], s.view[3], true
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, cmd := range s.commands {
		for _, p := range cmd.points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				continue
			}
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX {
		return 0, 0, 0, 0, false
	}
	return minX, maxX, minY, maxY, true
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 255}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
