package hal

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	Errorf(format string, args ...interface{})
}

// ErrSurfaceLost is returned by draw calls on a released framebuffer.
var ErrSurfaceLost = errors.New("hal: surface lost")

// Framebuffer is a resizable RGBA drawing surface plus a "present" hook.
//
// It satisfies wireframe.Surface.
type Framebuffer interface {
	Size() (w, h int)
	FillRect(x, y, w, h int, c color.RGBA) error
	StrokeLine(x0, y0, x1, y1 float64, c color.RGBA, width float64) error
	SetPixel(x, y int, c color.RGBA)
	Resize(w, h int)
	Present() error

	// Snapshot copies the current pixels into dst, reallocating it when the size differs.
	Snapshot(dst *image.RGBA) *image.RGBA
}

// Lost reports whether fb was released for good. Framebuffers that cannot be released
// are never lost.
func Lost(fb Framebuffer) bool {
	l, ok := fb.(interface{ Lost() bool })
	return ok && l.Lost()
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Frames() *FrameQueue
}
