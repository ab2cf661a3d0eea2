// Command wiresnap renders a wireframe preset off-screen and writes one frame as PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/pkg/errors"

	"clubsite/hal"
	"clubsite/wireframe"
)

const (
	defaultWidth  = 640
	defaultHeight = 360
	defaultFrames = 30
)

type snapOptions struct {
	shape     string
	frames    int
	width     int
	height    int
	axis      string
	bg        string
	fg        string
	lineWidth float64
	pixelated bool
}

func main() {
	var o snapOptions
	var outPath string
	flag.StringVar(&o.shape, "shape", "cube", "Preset to draw ("+strings.Join(wireframe.PresetNames(), ", ")+").")
	flag.IntVar(&o.frames, "frames", defaultFrames, "Number of animation frames to advance before the snapshot.")
	flag.IntVar(&o.width, "w", defaultWidth, "Image width (pixels).")
	flag.IntVar(&o.height, "h", defaultHeight, "Image height (pixels).")
	flag.StringVar(&o.axis, "axis", "y", "Rotation axis (x, y or z).")
	flag.StringVar(&o.bg, "bg", "#101010", "Background colour.")
	flag.StringVar(&o.fg, "fg", "#c05621", "Line colour.")
	flag.Float64Var(&o.lineWidth, "line", 2, "Line width (pixels).")
	flag.BoolVar(&o.pixelated, "pixelated", false, "Draw aliased one-pixel-grid lines.")
	flag.StringVar(&outPath, "o", "", "Output PNG path.")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -o is required")
		os.Exit(2)
	}

	if err := run(o, outPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(o snapOptions, outPath string) error {
	if o.frames <= 0 {
		return errors.Errorf("frames must be positive, got %d", o.frames)
	}
	g, ok := wireframe.Preset(o.shape)
	if !ok {
		return errors.Errorf("unknown shape %q", o.shape)
	}
	opts := wireframe.DefaultOptions()
	axis, ok := wireframe.ParseAxis(o.axis)
	if !ok {
		return errors.Errorf("unknown axis %q", o.axis)
	}
	opts.Axis = axis
	var err error
	if opts.Background, err = wireframe.ParseHexColor(o.bg); err != nil {
		return errors.Wrap(err, "bg")
	}
	if opts.Foreground, err = wireframe.ParseHexColor(o.fg); err != nil {
		return errors.Wrap(err, "fg")
	}
	opts.LineWidth = o.lineWidth

	var frameErr error
	opts.OnError = func(err error) { frameErr = err }

	fb := hal.NewFramebuffer(o.width, o.height)
	var surface wireframe.Surface = fb
	if o.pixelated {
		surface = hal.NewDisplaySurface(hal.Displayer(fb))
	}

	q := hal.NewFrameQueue()
	r := wireframe.New(q)
	if err := r.Start(surface, g, opts); err != nil {
		return err
	}
	for i := 0; i < o.frames; i++ {
		if q.Pump() == 0 {
			break
		}
	}
	r.Stop()
	if frameErr != nil {
		return errors.Wrap(frameErr, "render")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "create %q", outPath)
	}
	if err := png.Encode(f, fb.Snapshot(nil)); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encode %q", outPath)
	}
	return f.Close()
}
