package scroll

import (
	"time"
)

type fakeFrames struct {
	next      FrameID
	pending   map[FrameID]func(time.Duration)
	cancelled map[FrameID]func(time.Duration)
}

func newFakeFrames() *fakeFrames {
	return &fakeFrames{
		pending:   make(map[FrameID]func(time.Duration)),
		cancelled: make(map[FrameID]func(time.Duration)),
	}
}

func (f *fakeFrames) RequestFrame(fn func(now time.Duration)) FrameID {
	f.next++
	f.pending[f.next] = fn
	return f.next
}

func (f *fakeFrames) CancelFrame(id FrameID) {
	if fn, ok := f.pending[id]; ok {
		f.cancelled[id] = fn
		delete(f.pending, id)
	}
}

// run fires every pending callback once and returns how many fired.
func (f *fakeFrames) run(now time.Duration) int {
	pending := f.pending
	f.pending = make(map[FrameID]func(time.Duration))
	for _, fn := range pending {
		fn(now)
	}
	return len(pending)
}

// runUntilIdle fires frames step apart until nothing is scheduled.
func (f *fakeFrames) runUntilIdle(start, step time.Duration, maxFrames int) (time.Duration, int) {
	now := start
	frames := 0
	for frames < maxFrames && len(f.pending) > 0 {
		now += step
		f.run(now)
		frames++
	}
	return now, frames
}

type fakeHost struct {
	scrollY        float64
	viewportHeight float64
	geometry       map[SectionID]Geometry
}

func (h *fakeHost) ScrollY() float64        { return h.scrollY }
func (h *fakeHost) ViewportHeight() float64 { return h.viewportHeight }

func (h *fakeHost) Geometry(id SectionID) (Geometry, bool) {
	g, ok := h.geometry[id]
	return g, ok
}

// pageHost lays out the page like an 800px tall window would.
func pageHost() *fakeHost {
	const vh = 800
	return &fakeHost{
		viewportHeight: vh,
		geometry: map[SectionID]Geometry{
			SectionBackground: {StartOffset: 0, Height: vh, ViewportHeight: vh},
			SectionHero:       {StartOffset: 0, Height: 800, ViewportHeight: vh},
			SectionFinMind:    {StartOffset: 800, Height: 1400, ViewportHeight: vh},
			SectionWorkflow:   {StartOffset: 2200, Height: 1200, ViewportHeight: vh},
			SectionTechStack:  {StartOffset: 3400, Height: 700, ViewportHeight: vh},
		},
	}
}

type fakeEvents struct {
	scroll     map[int]func()
	resize     map[int]func()
	visibility map[int]func(bool)
	nextId     int
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{
		scroll:     make(map[int]func()),
		resize:     make(map[int]func()),
		visibility: make(map[int]func(bool)),
	}
}

func (ev *fakeEvents) OnScroll(fn func()) func() {
	ev.nextId++
	id := ev.nextId
	ev.scroll[id] = fn
	return func() { delete(ev.scroll, id) }
}

func (ev *fakeEvents) OnResize(fn func()) func() {
	ev.nextId++
	id := ev.nextId
	ev.resize[id] = fn
	return func() { delete(ev.resize, id) }
}

func (ev *fakeEvents) OnPageVisibility(fn func(bool)) func() {
	ev.nextId++
	id := ev.nextId
	ev.visibility[id] = fn
	return func() { delete(ev.visibility, id) }
}

func (ev *fakeEvents) fireScroll() {
	for _, fn := range ev.scroll {
		fn()
	}
}

func (ev *fakeEvents) fireVisibility(visible bool) {
	for _, fn := range ev.visibility {
		fn(visible)
	}
}

func (ev *fakeEvents) listenerCount() int {
	return len(ev.scroll) + len(ev.resize) + len(ev.visibility)
}

type fakeNode struct {
	vars   map[string]string
	writes int
}

func newFakeNode() *fakeNode {
	return &fakeNode{vars: make(map[string]string)}
}

func (n *fakeNode) SetStyleVar(name, value string) {
	n.vars[name] = value
	n.writes++
}
