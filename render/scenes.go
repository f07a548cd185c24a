// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"
	"strconv"

	"github.com/gogpu/cgkit"
)

// Palette used by the preview scenes.
var (
	ColorCurve    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	ColorPolygon  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	ColorEndpoint = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorHandle   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorWindow   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	ColorRaw      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorClipped  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorLabel    = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// CurveStyle controls how CurveScene draws a composite curve.
type CurveStyle struct {
	Camera      Camera
	ShowPolygon bool
	ShowIndex   bool
	CurveWidth  float64
	MarkerSize  float64
}

// DefaultCurveStyle returns the style used by the demo.
func DefaultCurveStyle() CurveStyle {
	return CurveStyle{
		Camera:      DefaultCamera(),
		ShowPolygon: true,
		ShowIndex:   true,
		CurveWidth:  3,
		MarkerSize:  8,
	}
}

// CurveScene builds a scene with the control polygon, the sampled curve and
// the control points. Segment end points (indices divisible by three) are
// drawn in ColorEndpoint, the other control points in ColorHandle.
func CurveScene(points [cgkit.NumControlPoints]cgkit.Point, curve cgkit.Curve, style CurveStyle) *Scene {
	s := NewScene()
	s.SetCamera(style.Camera)

	if style.ShowPolygon {
		s.Polyline(points[:], ColorPolygon, 1)
	}
	s.Polyline(curve, ColorCurve, style.CurveWidth)

	var ends, handles []cgkit.Point
	for i, p := range points {
		if i%3 == 0 {
			ends = append(ends, p)
		} else {
			handles = append(handles, p)
		}
	}
	s.Markers(ends, ColorEndpoint, style.MarkerSize)
	s.Markers(handles, ColorHandle, style.MarkerSize)

	if style.ShowIndex {
		for i, p := range points {
			s.Label(p, strconv.Itoa(i), ColorLabel)
		}
	}
	return s
}

// ClipScene builds a scene with the clip window, the raw segments and the
// clipped result drawn over them.
func ClipScene(w cgkit.ClipWindow, raw, clipped []cgkit.LineSegment) *Scene {
	s := NewScene()
	s.Window(w, ColorWindow, 2)
	s.Lines(raw, ColorRaw, 1)
	s.Lines(clipped, ColorClipped, 3)
	return s
}
