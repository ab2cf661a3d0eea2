package hal

import (
	"sync"

	"clubsite/wireframe"
)

type frameRequest struct {
	id wireframe.FrameID
	fn func()
}

// FrameQueue is a wireframe.Scheduler driven by the host loop.
//
// Callbacks requested before a Pump run during that Pump, in request order, on the
// caller's goroutine. Callbacks requested while a Pump is running wait for the next one,
// so a self-rescheduling animation draws exactly once per Pump. Only one goroutine may
// Pump.
type FrameQueue struct {
	mu      sync.Mutex
	seq     wireframe.FrameID
	pending []frameRequest

	batch []frameRequest
	pos   int
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn func()) wireframe.FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	q.pending = append(q.pending, frameRequest{id: q.seq, fn: fn})
	return q.seq
}

// CancelFrame drops a pending callback, including one later in the batch being pumped.
func (q *FrameQueue) CancelFrame(id wireframe.FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, req := range q.pending {
		if req.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := q.pos; i < len(q.batch); i++ {
		if q.batch[i].id == id {
			q.batch[i].fn = nil
			return
		}
	}
}

// Pump runs the callbacks due this refresh and returns how many ran.
func (q *FrameQueue) Pump() int {
	q.mu.Lock()
	q.batch, q.pending = q.pending, nil
	q.pos = 0
	q.mu.Unlock()

	ran := 0
	for {
		q.mu.Lock()
		if q.pos >= len(q.batch) {
			q.batch = nil
			q.pos = 0
			q.mu.Unlock()
			return ran
		}
		req := q.batch[q.pos]
		q.pos++
		q.mu.Unlock()

		if req.fn == nil {
			continue
		}
		req.fn()
		ran++
	}
}

// Len returns the number of callbacks waiting for the next Pump.
func (q *FrameQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
