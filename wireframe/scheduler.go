package wireframe

import "image/color"

// FrameID identifies a requested frame callback.
type FrameID uint64

// Scheduler runs one callback per visual refresh.
//
// RequestFrame enqueues fn to run at the next refresh opportunity. CancelFrame drops a
// request that has not started yet; cancelling an unknown or already-run id is a no-op.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Surface is the drawing target of the renderer.
//
// Implementations clip out-of-bounds coordinates. Any returned error is treated as the
// surface being lost.
type Surface interface {
	Size() (w, h int)
	FillRect(x, y, w, h int, c color.RGBA) error
	StrokeLine(x0, y0, x1, y1 float64, c color.RGBA, width float64) error
}
