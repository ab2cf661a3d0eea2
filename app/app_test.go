package app

import (
	"errors"
	"fmt"
	"testing"

	"clubsite/hal"
	"clubsite/wireframe"
)

func framebuffer(t *testing.T, h hal.HAL) *hal.RGBAFramebuffer {
	t.Helper()
	fb, ok := h.Display().Framebuffer().(*hal.RGBAFramebuffer)
	if !ok {
		t.Fatalf("host framebuffer is %T", h.Display().Framebuffer())
	}
	return fb
}

// tick mirrors the host loop: pump frames, then step.
func tick(t *testing.T, h hal.HAL, step func() error, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		h.Frames().Pump()
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestBackgroundDrawsFrames(t *testing.T) {
	h := hal.New(120, 80)
	cfg := DefaultConfig()
	step := NewWithConfig(h, cfg)

	if h.Frames().Len() != 1 {
		t.Fatalf("pending frames = %d, want 1", h.Frames().Len())
	}
	tick(t, h, step, 3)

	img := framebuffer(t, h).Snapshot(nil)
	bg := cfg.Options.Background
	if got := img.RGBAAt(0, 0); got != bg {
		t.Fatalf("corner = %v, want background %v", got, bg)
	}
	drawn := 0
	for y := 0; y < 80; y++ {
		for x := 0; x < 120; x++ {
			if img.RGBAAt(x, y) != bg {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Fatalf("no wireframe pixels after 3 frames")
	}
}

func TestSplashDelaysStart(t *testing.T) {
	h := hal.New(160, 60)
	cfg := DefaultConfig()
	cfg.SplashTitle = "ROBOTICS CLUB"
	cfg.SplashFrames = 3
	step := NewWithConfig(h, cfg)

	img := framebuffer(t, h).Snapshot(nil)
	caption := false
	for x := 0; x < 160 && !caption; x++ {
		for y := 0; y < 60; y++ {
			if img.RGBAAt(x, y) == cfg.Options.Foreground {
				caption = true
				break
			}
		}
	}
	if !caption {
		t.Fatalf("splash caption not drawn")
	}
	if h.Frames().Len() != 0 {
		t.Fatalf("renderer scheduled during splash")
	}

	tick(t, h, step, 2)
	if h.Frames().Len() != 0 {
		t.Fatalf("renderer scheduled before splash ended")
	}
	tick(t, h, step, 1)
	if h.Frames().Len() != 1 {
		t.Fatalf("renderer not started after splash")
	}
}

func TestSurfaceLossAndRestart(t *testing.T) {
	h := hal.New(64, 64)
	cfg := DefaultConfig()
	cfg.RestartDelay = 2
	step := NewWithConfig(h, cfg)
	fb := framebuffer(t, h)

	tick(t, h, step, 2)

	// Zero-sized viewport: the loop stops and waits.
	fb.Resize(0, 0)
	tick(t, h, step, 1)
	if h.Frames().Len() != 0 {
		t.Fatalf("frames still scheduled after surface loss")
	}
	tick(t, h, step, 5)
	if h.Frames().Len() != 0 {
		t.Fatalf("restarted on a zero-sized surface")
	}

	fb.Resize(64, 64)
	tick(t, h, step, 2)
	if h.Frames().Len() != 1 {
		t.Fatalf("animation not restarted once the surface came back")
	}
}

func TestNoRestartWhenDisabled(t *testing.T) {
	h := hal.New(64, 64)
	cfg := DefaultConfig()
	cfg.Restart = false
	cfg.RestartDelay = 1
	step := NewWithConfig(h, cfg)
	fb := framebuffer(t, h)

	tick(t, h, step, 1)
	fb.Release()
	tick(t, h, step, 5)
	if h.Frames().Len() != 0 {
		t.Fatalf("animation restarted with Restart = false")
	}
}

func TestPixelatedBackground(t *testing.T) {
	h := hal.New(50, 50)
	cfg := DefaultConfig()
	cfg.Pixelated = true
	step := NewWithConfig(h, cfg)
	tick(t, h, step, 1)

	img := framebuffer(t, h).Snapshot(nil)
	fg := 0
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if img.RGBAAt(x, y) == cfg.Options.Foreground {
				fg++
			}
		}
	}
	if fg == 0 {
		t.Fatalf("pixelated renderer drew no foreground pixels")
	}
}

func TestInvalidGeometryFailsFirstStep(t *testing.T) {
	h := hal.New(10, 10)
	cfg := DefaultConfig()
	cfg.Geometry.Faces = append(cfg.Geometry.Faces, wireframe.Face{0, 99})
	step := NewWithConfig(h, cfg)

	var ge *wireframe.InvalidGeometryError
	if err := step(); !errors.As(err, &ge) {
		t.Fatalf("step() = %v, want *InvalidGeometryError", err)
	}
	if h.Frames().Len() != 0 {
		t.Fatalf("frames scheduled for invalid geometry")
	}
}

type recordingLogger struct {
	lines  []string
	errors []string
}

func (l *recordingLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// presentFailer draws normally but fails to present.
type presentFailer struct {
	*hal.RGBAFramebuffer
	err error
}

func (f *presentFailer) Present() error { return f.err }

type testHAL struct {
	log    *recordingLogger
	fb     hal.Framebuffer
	frames *hal.FrameQueue
}

func newTestHAL(fb hal.Framebuffer) *testHAL {
	return &testHAL{log: &recordingLogger{}, fb: fb, frames: hal.NewFrameQueue()}
}

func (h *testHAL) Logger() hal.Logger           { return h.log }
func (h *testHAL) Display() hal.Display         { return h }
func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Frames() *hal.FrameQueue      { return h.frames }

func TestPresentFailureStopsAnimation(t *testing.T) {
	presentErr := errors.New("swap chain gone")
	h := newTestHAL(&presentFailer{RGBAFramebuffer: hal.NewFramebuffer(32, 32), err: presentErr})
	cfg := DefaultConfig()
	cfg.Restart = false
	step := NewWithConfig(h, cfg)

	tick(t, h, step, 3)
	if h.frames.Len() != 0 {
		t.Fatalf("frames still scheduled after Present failed")
	}
	if len(h.log.errors) != 1 {
		t.Fatalf("logged %d errors, want 1: %q", len(h.log.errors), h.log.errors)
	}
}

func TestReleasedFramebufferIsNotRestarted(t *testing.T) {
	fb := hal.NewFramebuffer(32, 32)
	h := newTestHAL(fb)
	cfg := DefaultConfig()
	cfg.RestartDelay = 1
	b, err := newBackground(h, cfg)
	if err != nil {
		t.Fatalf("newBackground() = %v", err)
	}

	tick(t, h, b.step, 1)
	fb.Release()
	tick(t, h, b.step, 1)
	gen := b.r.Generation()

	tick(t, h, b.step, 20)
	if !b.released {
		t.Fatalf("released framebuffer not noticed")
	}
	if got := b.r.Generation(); got != gen {
		t.Fatalf("Generation() = %v, want %v (no restart)", got, gen)
	}
	if len(h.log.errors) != 1 {
		t.Fatalf("logged %d errors, want 1: %q", len(h.log.errors), h.log.errors)
	}
}
