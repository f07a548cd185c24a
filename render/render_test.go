// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/cgkit"
)

func TestNewScene(t *testing.T) {
	scene := NewScene()

	if !scene.IsEmpty() {
		t.Error("New scene should be empty")
	}
	if _, _, _, _, ok := scene.Bounds(); ok {
		t.Error("empty scene should have no bounds")
	}
}

func TestSceneIgnoresDegenerateInput(t *testing.T) {
	scene := NewScene()

	scene.Polyline([]cgkit.Point{cgkit.Pt2(1, 1)}, color.White, 1)
	scene.Lines(nil, color.White, 1)
	scene.Markers(nil, color.White, 4)

	if !scene.IsEmpty() {
		t.Errorf("CommandCount() = %d, want 0", scene.CommandCount())
	}
}

func TestSceneBoundsAndReset(t *testing.T) {
	scene := NewScene()
	scene.Window(cgkit.DefaultClipWindow(), ColorWindow, 2)
	scene.Lines([]cgkit.LineSegment{cgkit.Seg(-5, 1, 4, 6)}, ColorRaw, 1)

	minX, maxX, minY, maxY, ok := scene.Bounds()
	if !ok {
		t.Fatal("Bounds() not ok")
	}
	if minX != -5 || maxX != 4 || minY != -3 || maxY != 6 {
		t.Errorf("Bounds() = [%v %v] x [%v %v], want [-5 4] x [-3 6]", minX, maxX, minY, maxY)
	}

	scene.SetView(-1, 1, -2, 2)
	if minX, maxX, minY, maxY, _ = scene.Bounds(); minX != -1 || maxX != 1 || minY != -2 || maxY != 2 {
		t.Errorf("Bounds() with view = [%v %v] x [%v %v]", minX, maxX, minY, maxY)
	}

	scene.Reset()
	if !scene.IsEmpty() {
		t.Error("Scene should be empty after Reset()")
	}
}

func TestCameraProject(t *testing.T) {
	p := cgkit.Pt(1, 2, 3)

	if x, y := (Camera{}).Project(p); x != 1 || y != 2 {
		t.Errorf("identity Project = (%v, %v), want (1, 2)", x, y)
	}

	x, y := Camera{RotX: 90}.Project(p)
	if math.Abs(x-1) > 1e-12 || math.Abs(y+3) > 1e-12 {
		t.Errorf("RotX=90 Project = (%v, %v), want (1, -3)", x, y)
	}
}

func TestFitViewport(t *testing.T) {
	vp := fitViewport(-3, 3, -3, 3, 100, 200, 10)

	x0, y0 := vp.toPixel(-3, 3)
	x1, y1 := vp.toPixel(3, -3)

	if x0 != 10 || x1 != 90 {
		t.Errorf("x range = [%v, %v], want [10, 90]", x0, x1)
	}
	// Square content is centered vertically.
	if y0 != 60 || y1 != 140 {
		t.Errorf("y range = [%v, %v], want [60, 140]", y0, y1)
	}
}

func TestRenderNilTarget(t *testing.T) {
	if err := NewSoftwareRenderer().Render(nil, NewScene()); err != ErrNilTarget {
		t.Errorf("Render(nil) = %v, want ErrNilTarget", err)
	}
}

func TestRenderClipScene(t *testing.T) {
	w := cgkit.DefaultClipWindow()
	raw := []cgkit.LineSegment{cgkit.Seg(-5, 0, 5, 0)}
	clipped := cgkit.ClipAll(raw, w)

	scene := ClipScene(w, raw, clipped)
	scene.SetView(-5, 5, -5, 5)
	target := NewPixmapTarget(110, 110)

	r := NewSoftwareRenderer()
	r.Margin = 5
	if err := r.Render(target, scene); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	img := target.Image()

	// World (0, 0) maps to the center; the clipped segment covers it.
	if got := img.RGBAAt(55, 55); got.G < 200 || got.R > 50 {
		t.Errorf("center pixel = %v, want clipped color", got)
	}
	// World (-4, 0) is outside the window: only the raw segment is there.
	if got := img.RGBAAt(15, 55); got.R < 100 || got.G > 60 {
		t.Errorf("pixel at x=-4 = %v, want raw color", got)
	}
	// A corner far from any geometry keeps the background.
	if got := img.RGBAAt(2, 2); got != scene.background {
		t.Errorf("corner pixel = %v, want background %v", got, scene.background)
	}
}

func TestRenderCurveScene(t *testing.T) {
	cp := cgkit.NewControlPoints()
	curve, err := cp.Curve(cgkit.DefaultSamplesPerSegment)
	if err != nil {
		t.Fatal(err)
	}

	scene := CurveScene(cp.Points(), curve, DefaultCurveStyle())
	// polygon + curve + 2 marker sets + 10 labels
	if got := scene.CommandCount(); got != 14 {
		t.Errorf("CommandCount() = %d, want 14", got)
	}

	target := NewPixmapTarget(200, 150)
	if err := NewSoftwareRenderer().Render(target, scene); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	var buf bytes.Buffer
	if err := target.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Errorf("decoded size = %v, want 200x150", b.Size())
	}

	cyan := 0
	src := target.Image()
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			if c := src.RGBAAt(x, y); c.G > 200 && c.B > 200 && c.R < 60 {
				cyan++
			}
		}
	}
	if cyan == 0 {
		t.Error("rendered curve left no cyan pixels")
	}
}
