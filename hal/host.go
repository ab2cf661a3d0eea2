package hal

import (
	"fmt"

	"github.com/labstack/gommon/log"

	"clubsite/internal/logging"
)

type hostHAL struct {
	logger *hostLogger
	fb     *RGBAFramebuffer
	frames *FrameQueue
}

// New returns a host HAL with a w×h framebuffer.
func New(w, h int) HAL {
	return newHost(w, h)
}

func newHost(w, h int) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{l: logging.New("hal")},
		fb:     NewFramebuffer(w, h),
		frames: NewFrameQueue(),
	}
}

func (h *hostHAL) Logger() Logger      { return h.logger }
func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Frames() *FrameQueue { return h.frames }

type hostDisplay struct {
	fb *RGBAFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	l *log.Logger
}

func (l *hostLogger) WriteLineString(s string) { l.l.Info(s) }

func (l *hostLogger) Errorf(format string, args ...interface{}) {
	l.l.Error(fmt.Sprintf(format, args...))
}
