package app

import (
	"fmt"

	"github.com/pkg/errors"

	"clubsite/hal"
	"clubsite/wireframe"
)

type background struct {
	h   hal.HAL
	cfg Config
	log hal.Logger

	fb      hal.Framebuffer
	surface wireframe.Surface
	r       *wireframe.Renderer

	splashLeft int
	lost       bool
	sinceLost  int
	// released is set once the framebuffer is gone for good; restarts stop then.
	released bool
}

func newBackground(h hal.HAL, cfg Config) (*background, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("app: no framebuffer")
	}
	if err := cfg.Geometry.Validate(); err != nil {
		return nil, err
	}

	b := &background{
		h:          h,
		cfg:        cfg,
		log:        h.Logger(),
		fb:         disp.Framebuffer(),
		r:          wireframe.New(h.Frames()),
		splashLeft: cfg.SplashFrames,
	}
	b.surface = b.fb
	if cfg.Pixelated {
		b.surface = hal.NewDisplaySurface(hal.Displayer(b.fb))
	}

	if b.splashLeft > 0 {
		b.drawStatic(cfg.SplashTitle)
		return b, nil
	}
	if err := b.start(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *background) start() error {
	opts := b.cfg.Options
	opts.OnError = b.onError
	opts.OnFrame = b.onFrame
	if err := b.r.Start(b.surface, b.cfg.Geometry, opts); err != nil {
		return err
	}
	b.lost = false
	b.log.WriteLineString(fmt.Sprintf("background: started generation %s (%d edges per frame)",
		b.r.Generation(), b.cfg.Geometry.EdgeCount()))
	return nil
}

func (b *background) step() error {
	if b.splashLeft > 0 {
		b.splashLeft--
		if b.splashLeft == 0 {
			return b.start()
		}
		return nil
	}

	if !b.lost || !b.cfg.Restart || b.released {
		return nil
	}
	if hal.Lost(b.fb) {
		b.released = true
		b.log.WriteLineString("background: framebuffer released, not restarting")
		return nil
	}
	b.sinceLost++
	if b.sinceLost < b.cfg.RestartDelay {
		return nil
	}
	if w, h := b.fb.Size(); w <= 0 || h <= 0 {
		return nil
	}
	b.sinceLost = 0
	return b.start()
}

func (b *background) onFrame(f wireframe.Frame) {
	if err := b.fb.Present(); err != nil {
		b.r.Stop()
		b.onError(errors.Wrapf(err, "present frame %d", f.Index))
	}
}

// onError leaves the static background in place of the animation.
func (b *background) onError(err error) {
	b.lost = true
	b.sinceLost = 0
	b.log.Errorf("background: animation stopped: %v", err)
	b.drawStatic("")
}
