// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/cgkit"
)

// Camera projects 3D points orthographically after rotating them about
// the X axis and then the Y axis. Angles are in degrees.
type Camera struct {
	RotX, RotY float64
}

// DefaultCamera returns the tilted view used for curve previews.
func DefaultCamera() Camera {
	return Camera{RotX: 15, RotY: 15}
}

// Project returns the screen-plane coordinates of p.
func (c Camera) Project(p cgkit.Point) (x, y float64) {
	ax := c.RotX * math.Pi / 180
	ay := c.RotY * math.Pi / 180

	// Rotate about X.
	sx, cx := math.Sincos(ax)
	y1 := p.Y*cx - p.Z*sx
	z1 := p.Y*sx + p.Z*cx

	// Rotate about Y.
	sy, cy := math.Sincos(ay)
	x2 := p.X*cy + z1*sy

	return x2, y1
}

// viewport maps world coordinates onto a pixel rectangle, flipping y.
type viewport struct {
	minX, maxY float64
	scale      float64
	offX, offY float64
}

// fitViewport returns a viewport that shows [minX, maxX] x [minY, maxY]
// inside a width x height target with margin pixels on every side, keeping
// the aspect ratio.
func fitViewport(minX, maxX, minY, maxY float64, width, height, margin int) viewport {
	w := maxX - minX
	h := maxY - minY
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	availW := float64(max(width-2*margin, 1))
	availH := float64(max(height-2*margin, 1))
	scale := math.Min(availW/w, availH/h)

	return viewport{
		minX:  minX,
		maxY:  maxY,
		scale: scale,
		offX:  float64(margin) + (availW-w*scale)/2,
		offY:  float64(margin) + (availH-h*scale)/2,
	}
}

// toPixel converts a world position to pixel coordinates.
func (v viewport) toPixel(x, y float64) (float32, float32) {
	px := v.offX + (x-v.minX)*v.scale
	py := v.offY + (v.maxY-y)*v.scale
	return float32(px), float32(py)
}
