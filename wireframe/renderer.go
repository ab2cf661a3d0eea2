package wireframe

import (
	"sync"

	"github.com/google/uuid"
)

// Renderer spins a Geometry on a Surface, one frame per Scheduler callback.
//
// A Renderer can be started, stopped and restarted any number of times. Each Start opens
// a new generation; callbacks left over from an older generation never draw.
type Renderer struct {
	sched Scheduler

	mu         sync.Mutex
	running    bool
	gen        uuid.UUID
	pending    FrameID
	hasPending bool

	surface Surface
	geom    Geometry
	opts    Options
	step    float64
	angle   float64
	frames  uint64

	// Projected vertices of the current frame, reused between frames.
	scratch []screenPoint
}

// New returns a stopped renderer driven by s.
func New(s Scheduler) *Renderer {
	return &Renderer{sched: s}
}

// Start validates the input and begins the animation loop. A running loop is stopped
// first. Nothing is drawn before the first scheduled frame.
func (r *Renderer) Start(s Surface, g Geometry, opts Options) error {
	if s == nil {
		return errNilSurface
	}
	if err := opts.validate(); err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()

	r.surface = s
	r.geom = g.Clone()
	r.opts = opts
	r.step = opts.Increment()
	r.angle = 0
	r.frames = 0
	if cap(r.scratch) < len(r.geom.Vertices) {
		r.scratch = make([]screenPoint, len(r.geom.Vertices))
	}
	r.scratch = r.scratch[:len(r.geom.Vertices)]

	r.gen = uuid.New()
	r.running = true
	r.schedule(r.gen)
	return nil
}

// Stop halts the loop. No frame runs after Stop returns. Stopping a stopped renderer is
// a no-op.
func (r *Renderer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Renderer) stopLocked() {
	if r.hasPending {
		r.sched.CancelFrame(r.pending)
		r.hasPending = false
	}
	r.running = false
	r.surface = nil
}

func (r *Renderer) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Angle returns the rotation of the last drawn frame.
func (r *Renderer) Angle() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.angle
}

// Generation identifies the current (or last) run.
func (r *Renderer) Generation() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

func (r *Renderer) schedule(gen uuid.UUID) {
	r.pending = r.sched.RequestFrame(func() { r.frame(gen) })
	r.hasPending = true
}

func (r *Renderer) frame(gen uuid.UUID) {
	r.mu.Lock()
	if !r.running || r.gen != gen {
		r.mu.Unlock()
		return
	}
	r.hasPending = false

	r.angle = wrapAngle(r.angle + r.step)
	r.frames++
	lines, err := r.draw()
	info := Frame{Generation: gen, Index: r.frames, Angle: r.angle, Lines: lines}
	onFrame, onError := r.opts.OnFrame, r.opts.OnError
	if err != nil {
		r.stopLocked()
		r.mu.Unlock()
		if onError != nil {
			onError(&SurfaceUnavailableError{Generation: gen, Err: err})
		}
		return
	}
	r.mu.Unlock()

	// Callbacks run unlocked so they may call Stop or Start.
	if onFrame != nil {
		onFrame(info)
	}

	r.mu.Lock()
	if r.running && r.gen == gen && !r.hasPending {
		r.schedule(gen)
	}
	r.mu.Unlock()
}

// draw clears the surface and strokes every edge. It returns the number of lines drawn.
func (r *Renderer) draw() (int, error) {
	s := r.surface
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return 0, ErrSurfaceEmpty
	}
	if err := s.FillRect(0, 0, w, h, r.opts.Background); err != nil {
		return 0, err
	}

	for i, v := range r.geom.Vertices {
		r.scratch[i] = transform(v, r.opts.Axis, r.angle, r.opts.ForwardOffset, w, h)
	}

	lines := 0
	for _, f := range r.geom.Faces {
		if len(f) < 2 {
			continue
		}
		for i := range f {
			a := r.scratch[f[i]]
			b := r.scratch[f[(i+1)%len(f)]]
			if !a.ok || !b.ok {
				continue
			}
			if err := s.StrokeLine(a.x, a.y, b.x, b.y, r.opts.Foreground, r.opts.LineWidth); err != nil {
				return lines, err
			}
			lines++
		}
	}
	return lines, nil
}
