package app

import (
	"clubsite/hal"
	"clubsite/wireframe"
)

// Config selects what the background shows.
type Config struct {
	Geometry wireframe.Geometry
	Options  wireframe.Options

	// Pixelated draws aliased Bresenham lines instead of anti-aliased strokes.
	Pixelated bool

	SplashTitle  string
	SplashFrames int

	// Restart brings the animation back RestartDelay steps after the surface was lost,
	// once it is drawable again.
	Restart      bool
	RestartDelay int
}

// DefaultConfig is the site background: the orange cube on near-black.
func DefaultConfig() Config {
	return Config{
		Geometry:     wireframe.Cube(),
		Options:      wireframe.DefaultOptions(),
		Restart:      true,
		RestartDelay: 90,
	}
}

// New starts the background with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig wires the renderer to the HAL and returns the per-tick step function.
// A configuration error is returned by the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	b, err := newBackground(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return b.step
}
