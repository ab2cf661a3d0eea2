package wireframe

import (
	"image/color"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Frame describes one rendered frame.
type Frame struct {
	Generation uuid.UUID
	Index      uint64
	Angle      float64
	Lines      int
}

// Options configures a run of the renderer.
type Options struct {
	Background color.RGBA
	Foreground color.RGBA
	LineWidth  float64 `validate:"gt=0"`

	// ReferenceFPS is the refresh rate the rotation speed is tuned for.
	ReferenceFPS float64 `validate:"gt=0"`
	// RotationSpeed is radians per frame. Zero means π/ReferenceFPS, i.e. one half turn
	// per second at the reference rate.
	RotationSpeed float64 `validate:"gte=0"`
	ForwardOffset float64 `validate:"gt=0"`
	Axis          Axis    `validate:"lte=2"`

	// OnError receives *SurfaceUnavailableError after the loop stopped itself.
	OnError func(error) `validate:"-"`
	// OnFrame runs after every completed frame, before the next one is requested.
	OnFrame func(Frame) `validate:"-"`
}

// DefaultOptions returns the site palette.
func DefaultOptions() Options {
	return Options{
		Background:    RGB(0x10, 0x10, 0x10),
		Foreground:    RGB(0xc0, 0x56, 0x21),
		LineWidth:     2,
		ReferenceFPS:  90,
		ForwardOffset: 1,
		Axis:          AxisY,
	}
}

// Increment returns the per-frame rotation in radians.
func (o Options) Increment() float64 {
	if o.RotationSpeed > 0 {
		return o.RotationSpeed
	}
	return math.Pi / o.ReferenceFPS
}

var validate = validator.New()

func (o Options) validate() error {
	if err := validate.Struct(o); err != nil {
		return errors.Wrap(ErrInvalidOptions, err.Error())
	}
	return nil
}
