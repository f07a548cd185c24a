// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ErrNilTarget is returned when Render is called without a target.
var ErrNilTarget = errors.New("render: nil target")

// SoftwareRenderer is a CPU renderer built on golang.org/x/image/vector.
//
// Lines are filled as quads around each segment and markers as squares.
// All shapes of one command are accumulated with the same winding, so
// overlapping pieces merge instead of cancelling.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//	renderer.Render(target, scene)
type SoftwareRenderer struct {
	// ras is reused between commands.
	ras *vector.Rasterizer

	// Margin is the empty border in pixels around fitted content.
	Margin int

	// Face draws labels.
	Face font.Face
}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{
		ras:    vector.NewRasterizer(0, 0),
		Margin: 24,
		Face:   basicfont.Face7x13,
	}
}

// Render clears the target with the scene background and draws every
// command in order.
func (r *SoftwareRenderer) Render(target *PixmapTarget, scene *Scene) error {
	if target == nil {
		return ErrNilTarget
	}
	dst := target.Image()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(scene.background), image.Point{}, draw.Src)

	minX, maxX, minY, maxY, ok := scene.Bounds()
	if !ok {
		return nil
	}
	vp := fitViewport(minX, maxX, minY, maxY, target.Width(), target.Height(), r.Margin)

	for i := range scene.commands {
		r.drawCommand(dst, vp, &scene.commands[i])
	}
	return nil
}

func (r *SoftwareRenderer) drawCommand(dst *image.RGBA, vp viewport, cmd *drawCommand) {
	src := image.NewUniform(cmd.color)

	if cmd.op == opLabel {
		if r.Face == nil || len(cmd.points) == 0 {
			return
		}
		x, y := vp.toPixel(cmd.points[0].X, cmd.points[0].Y)
		d := font.Drawer{
			Dst:  dst,
			Src:  src,
			Face: r.Face,
			Dot:  fixed.P(int(x)+6, int(y)-6),
		}
		d.DrawString(cmd.text)
		return
	}

	b := dst.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	hw := float32(math.Max(cmd.width, 1) / 2)

	switch cmd.op {
	case opPolyline:
		for i := 1; i < len(cmd.points); i++ {
			r.segment(vp, cmd.points[i-1], cmd.points[i], hw)
		}
		// Fill the joins.
		for _, p := range cmd.points[1 : len(cmd.points)-1] {
			x, y := vp.toPixel(p.X, p.Y)
			r.square(x, y, hw)
		}
	case opLines:
		for i := 0; i+1 < len(cmd.points); i += 2 {
			r.segment(vp, cmd.points[i], cmd.points[i+1], hw)
		}
	case opMarkers:
		for _, p := range cmd.points {
			x, y := vp.toPixel(p.X, p.Y)
			r.square(x, y, hw)
		}
	}

	r.ras.Draw(dst, b, src, image.Point{})
}

// segment adds a quad of half-width hw around the line a-b.
func (r *SoftwareRenderer) segment(vp viewport, a, b screenPoint, hw float32) {
	ax, ay := vp.toPixel(a.X, a.Y)
	bx, by := vp.toPixel(b.X, b.Y)
	if !finite32(ax, ay, bx, by) {
		return
	}

	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		r.square(ax, ay, hw)
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw

	r.ras.MoveTo(ax+nx, ay+ny)
	r.ras.LineTo(bx+nx, by+ny)
	r.ras.LineTo(bx-nx, by-ny)
	r.ras.LineTo(ax-nx, ay-ny)
	r.ras.ClosePath()
}

// square adds an axis-aligned square centered at (x, y) with the same
// winding as segment quads.
func (r *SoftwareRenderer) square(x, y, h float32) {
	if !finite32(x, y) {
		return
	}
	r.ras.MoveTo(x-h, y-h)
	r.ras.LineTo(x-h, y+h)
	r.ras.LineTo(x+h, y+h)
	r.ras.LineTo(x+h, y-h)
	r.ras.ClosePath()
}

func finite32(vs ...float32) bool {
	for _, v := range vs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
