// Command cgdemo demonstrates the cgkit curve and clip kernels.
//
// It builds the composite Bezier curve, applies the control-point edits from
// the configuration, generates a batch of random segments, clips them, prints
// the control-point table and saves a PNG preview of each kernel.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/cgkit"
	"github.com/gogpu/cgkit/internal/config"
	"github.com/gogpu/cgkit/render"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		width      = flag.Int("width", 0, "image width (overrides config)")
		height     = flag.Int("height", 0, "image height (overrides config)")
		seed       = flag.Uint64("seed", 0, "segment generator seed (overrides config)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cgkit.SetLogger(logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *width > 0 {
		cfg.Preview.Width = *width
	}
	if *height > 0 {
		cfg.Preview.Height = *height
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}

	if err := run(cfg, os.Stdout, logger); err != nil {
		log.Fatalf("cgdemo: %v", err)
	}
}

func run(cfg config.Config, out io.Writer, logger *slog.Logger) error {
	cp := cgkit.NewControlPoints()
	for _, e := range cfg.Curve.Edits {
		if err := cp.UpdateXYZ(e.Index, e.X, e.Y, e.Z); err != nil {
			return err
		}
	}

	curve, err := cp.Curve(cfg.Curve.SamplesPerSegment)
	if err != nil {
		return err
	}
	printControlPoints(out, cp)

	opts := []cgkit.GeneratorOption{
		cgkit.WithCount(cfg.Generator.Count),
		cgkit.WithRange(cfg.Generator.Min, cfg.Generator.Max),
	}
	if cfg.Generator.Seed != 0 {
		opts = append(opts, cgkit.WithSeed(cfg.Generator.Seed))
	}
	gen := cgkit.NewSegmentGenerator(opts...)

	state := cgkit.NewClipState()
	state.SetWindow(cfg.Clip.Left, cfg.Clip.Right, cfg.Clip.Bottom, cfg.Clip.Top)
	state.SetSegments(gen.Generate())

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "\n%d of %d segments visible in [%g, %g] x [%g, %g]\n",
		len(state.Clipped()), len(state.Segments()),
		cfg.Clip.Left, cfg.Clip.Right, cfg.Clip.Bottom, cfg.Clip.Top)

	renderer := render.NewSoftwareRenderer()

	style := render.DefaultCurveStyle()
	style.ShowIndex = cfg.Preview.ShowIndex
	curveTarget := render.NewPixmapTarget(cfg.Preview.Width, cfg.Preview.Height)
	if err := renderer.Render(curveTarget, render.CurveScene(cp.Points(), curve, style)); err != nil {
		return err
	}
	if err := curveTarget.SavePNG(cfg.Preview.CurvePNG); err != nil {
		return err
	}
	logger.Info("curve preview saved", "path", cfg.Preview.CurvePNG, "points", len(curve))

	w := state.Window()
	clipScene := render.ClipScene(w, state.Segments(), state.Clipped())
	lo, hi := gen.Range()
	clipScene.SetView(min(lo, w.Left), max(hi, w.Right), min(lo, w.Bottom), max(hi, w.Top))
	clipTarget := render.NewPixmapTarget(cfg.Preview.Width, cfg.Preview.Height)
	if err := renderer.Render(clipTarget, clipScene); err != nil {
		return err
	}
	if err := clipTarget.SavePNG(cfg.Preview.ClipPNG); err != nil {
		return err
	}
	logger.Info("clipping preview saved", "path", cfg.Preview.ClipPNG,
		"segments", len(state.Segments()), "visible", len(state.Clipped()))

	return nil
}

// printControlPoints writes one row per control point.
func printControlPoints(out io.Writer, cp *cgkit.ControlPoints) {
	p := message.NewPrinter(language.English)
	p.Fprintf(out, "%5s  %9s %9s %9s  %s\n", "index", "x", "y", "z", "role")
	for i, pt := range cp.Points() {
		p.Fprintf(out, "%5d  %9.3f %9.3f %9.3f  %s\n", i, pt.X, pt.Y, pt.Z, pointRole(i))
	}
	for _, j := range cgkit.Joints() {
		e, _ := cp.JointError(j)
		p.Fprintf(out, "joint %d continuity error: %.3g\n", j, e)
	}
}

// pointRole names the part a control point plays in the composite curve.
func pointRole(i int) string {
	switch i {
	case 0, cgkit.NumControlPoints - 1:
		return "end"
	case 3, 6:
		return "joint"
	case 4, 7:
		return "derived"
	default:
		return "handle"
	}
}
