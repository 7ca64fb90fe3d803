package firstx

import (
	"slices"
	"time"

	"firstx/scroll"
)

type frameRequest struct {
	id scroll.FrameID
	fn func(now time.Duration)
}

// FrameQueue runs requested callbacks once on the next frame.
// Callbacks requested while running wait for the frame after.
type FrameQueue struct {
	requests []frameRequest
	running  []frameRequest
	idMax    scroll.FrameID
}

func (q *FrameQueue) RequestFrame(fn func(now time.Duration)) scroll.FrameID {
	q.idMax++
	q.requests = append(q.requests, frameRequest{id: q.idMax, fn: fn})
	return q.idMax
}

func (q *FrameQueue) CancelFrame(id scroll.FrameID) {
	q.requests = slices.DeleteFunc(q.requests, func(r frameRequest) bool {
		return r.id == id
	})
	// cancelling a callback of the running frame also stops it
	q.running = slices.DeleteFunc(q.running, func(r frameRequest) bool {
		return r.id == id
	})
}

func (q *FrameQueue) Pending() int {
	return len(q.requests)
}

// Run fires every callback requested before the call and returns how many ran.
func (q *FrameQueue) Run(now time.Duration) int {
	q.running, q.requests = q.requests, q.running[:0]

	ran := 0
	for len(q.running) > 0 {
		r := q.running[0]
		q.running = q.running[1:]
		r.fn(now)
		ran++
	}

	return ran
}

type timeout struct {
	id int
	at time.Duration
	fn func()
}

// TimeoutQueue fires one shot callbacks once its clock passes their deadline.
type TimeoutQueue struct {
	timeouts []timeout
	idMax    int
	now      time.Duration
}

// SetTimeout runs fn once d has passed. The returned cancel func can be
// called any number of times, even after fn ran.
func (q *TimeoutQueue) SetTimeout(d time.Duration, fn func()) (cancel func()) {
	q.idMax++
	id := q.idMax

	q.timeouts = append(q.timeouts, timeout{id: id, at: q.now + d, fn: fn})

	return func() {
		q.timeouts = slices.DeleteFunc(q.timeouts, func(t timeout) bool {
			return t.id == id
		})
	}
}

func (q *TimeoutQueue) Pending() int {
	return len(q.timeouts)
}

// Advance moves the clock to now and fires every expired timeout in deadline order.
func (q *TimeoutQueue) Advance(now time.Duration) {
	q.now = now

	for {
		index := -1
		for i, t := range q.timeouts {
			if t.at <= now && (index < 0 || t.at < q.timeouts[index].at) {
				index = i
			}
		}
		if index < 0 {
			return
		}

		t := q.timeouts[index]
		q.timeouts = slices.Delete(q.timeouts, index, index+1)
		t.fn()
	}
}
