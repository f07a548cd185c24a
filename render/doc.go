// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws cgkit geometry into images.
//
// It is the consumer side of the kernel: it receives already computed
// geometry (sampled curves, control points, clip windows and segments) and
// rasterizes it on the CPU. No geometry is computed here beyond projection
// to screen space.
//
// # Core Types
//
//   - Scene: retained list of drawing commands in world coordinates
//   - Camera: orthographic projection of 3D points with a fixed rotation
//   - PixmapTarget: CPU-backed *image.RGBA target with PNG output
//   - SoftwareRenderer: anti-aliased rasterizer built on golang.org/x/image/vector
//
// # Usage
//
//	scene := render.CurveScene(cp.Points(), curve, render.DefaultCurveStyle())
//	target := render.NewPixmapTarget(800, 600)
//	if err := render.NewSoftwareRenderer().Render(target, scene); err != nil {
//	    return err
//	}
//	err := target.SavePNG("bezier.png")
//
// # Coordinate System
//
// Scenes use world coordinates with y growing upward. The renderer fits the
// scene bounds into the target with a margin and flips y.
package render
