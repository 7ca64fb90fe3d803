package scroll

import (
	"time"
)

type FrameID uint64

// FrameScheduler is the platform's frame callback primitive.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Duration)) FrameID
	CancelFrame(id FrameID)
}

// Host reports live layout.
type Host interface {
	ScrollY() float64
	ViewportHeight() float64
	Geometry(id SectionID) (Geometry, bool)
}

// Events lets the engine listen to the host.
// Every returned cancel func must be safe to call more than once.
type Events interface {
	OnScroll(fn func()) (cancel func())
	OnResize(fn func()) (cancel func())
	OnPageVisibility(fn func(visible bool)) (cancel func())
}

// sections in the order they are computed
var mappedSections = []SectionID{
	SectionBackground,
	SectionHero,
	SectionFinMind,
	SectionWorkflow,
	SectionTechStack,
}

// sections that update regardless of visibility
var alwaysOn = map[SectionID]bool{
	SectionBackground: true,
}

type Stats struct {
	Ticks     int
	Throttled int
	Passes    int
	Writes    int
	Skipped   int
}

// Engine drives every scroll linked style variable of one mounted page.
type Engine struct {
	cfg Config

	host   Host
	events Events
	frames FrameScheduler

	state   State
	nodes   map[SectionID]Node
	tracker *Tracker
	writer  *Writer

	frameID   FrameID
	scheduled bool

	// bumped on unmount so stale frame callbacks can tell they are stale
	generation uint64

	mounted bool
	hidden  bool

	lastTick    time.Duration
	hasLastTick bool

	detach []func()

	layout Layout
	values []Value

	stats Stats
}

func NewEngine(cfg Config, host Host, events Events, frames FrameScheduler) *Engine {
	e := new(Engine)
	e.cfg = cfg
	e.host = host
	e.events = events
	e.frames = frames
	e.nodes = make(map[SectionID]Node)
	e.tracker = NewTracker(cfg.VisibilityMargin, cfg.VisibilityThresholds)
	e.writer = NewWriter()
	e.layout = make(Layout)
	return e
}

// Register hands the engine a section root. A nil node unregisters it.
func (e *Engine) Register(id SectionID, node Node) {
	if node == nil {
		delete(e.nodes, id)
		e.tracker.Forget(id)
		e.writer.Forget(id)
		return
	}

	e.nodes[id] = node
	e.writer.Forget(id)

	if e.mounted {
		e.pollVisibility()
		e.computePass()
	}
}

func (e *Engine) Mount() {
	if e.mounted {
		return
	}
	e.mounted = true
	e.hidden = false

	e.detach = append(e.detach,
		e.events.OnScroll(e.handleScroll),
		e.events.OnResize(e.handleResize),
		e.events.OnPageVisibility(e.handlePageVisibility),
	)

	e.state = NewState(e.host.ScrollY())

	e.pollVisibility()
	e.computePass()
}

// Unmount cancels the scheduled tick and detaches every listener.
func (e *Engine) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.generation++

	e.cancelTick()

	for _, fn := range e.detach {
		fn()
	}
	e.detach = e.detach[:0]

	e.tracker.Reset()
	e.hasLastTick = false
}

func (e *Engine) Mounted() bool {
	return e.mounted
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Scheduled() bool {
	return e.scheduled
}

// Tracker exposes activity flags and ratios. Observers added through it are
// dropped on unmount.
func (e *Engine) Tracker() *Tracker {
	return e.tracker
}

func (e *Engine) Stats() Stats {
	s := e.stats
	s.Writes = e.writer.Writes
	s.Skipped = e.writer.Skipped
	return s
}

func (e *Engine) handleScroll() {
	if !e.mounted {
		return
	}

	if !e.state.Sample(e.host.ScrollY(), e.cfg.SampleEpsilon) {
		return
	}

	// sections that just came near the viewport catch up on the current value
	if e.pollVisibility() {
		e.computePass()
	}

	if !e.hidden {
		e.scheduleTick()
	}
}

func (e *Engine) handleResize() {
	if !e.mounted {
		return
	}

	e.pollVisibility()
	e.computePass()

	e.state.Sample(e.host.ScrollY(), e.cfg.SampleEpsilon)
	if !e.hidden && !e.state.Converged(e.cfg.SnapEpsilon) {
		e.scheduleTick()
	}
}

func (e *Engine) handlePageVisibility(visible bool) {
	if !e.mounted {
		return
	}

	if !visible {
		e.hidden = true
		e.cancelTick()
		return
	}

	e.hidden = false
	e.hasLastTick = false

	e.state.Sample(e.host.ScrollY(), e.cfg.SampleEpsilon)
	if !e.state.Converged(e.cfg.SnapEpsilon) {
		e.scheduleTick()
	}
}

func (e *Engine) scheduleTick() {
	if e.scheduled {
		return
	}

	gen := e.generation
	e.scheduled = true
	e.frameID = e.frames.RequestFrame(func(now time.Duration) {
		if gen != e.generation {
			return
		}
		e.tick(now)
	})
}

func (e *Engine) cancelTick() {
	if !e.scheduled {
		return
	}
	e.frames.CancelFrame(e.frameID)
	e.scheduled = false
}

func (e *Engine) tick(now time.Duration) {
	e.scheduled = false

	if !e.mounted || e.hidden {
		return
	}

	if e.cfg.MaxTickRate > 0 && e.hasLastTick {
		interval := time.Duration(float64(time.Second) / e.cfg.MaxTickRate)
		if now-e.lastTick < interval {
			e.stats.Throttled++
			e.scheduleTick()
			return
		}
	}
	e.lastTick = now
	e.hasLastTick = true
	e.stats.Ticks++

	running := e.state.Step(e.cfg.Damping, e.cfg.SnapEpsilon)

	e.pollVisibility()
	e.computePass()

	if running {
		e.scheduleTick()
	}
}

// pollVisibility refreshes activity flags from live geometry and reports
// whether any section became active.
func (e *Engine) pollVisibility() bool {
	scrollY := e.host.ScrollY()

	clear(e.layout)

	becameActive := false

	for id := range e.nodes {
		g, ok := e.host.Geometry(id)
		if !ok {
			e.tracker.Forget(id)
			continue
		}
		e.layout[id] = g

		if e.tracker.UpdateScrolling(id, g, e.state.Current, scrollY) {
			becameActive = true
		}
	}

	// the hero drives background reveal even when it has no node of its own
	if _, ok := e.layout[SectionHero]; !ok {
		if g, ok := e.host.Geometry(SectionHero); ok {
			e.layout[SectionHero] = g
		}
	}

	return becameActive
}

func (e *Engine) computePass() {
	e.stats.Passes++

	v := e.state.Current
	dir := e.state.Direction
	vh := e.host.ViewportHeight()

	for _, id := range mappedSections {
		node, ok := e.nodes[id]
		if !ok {
			continue
		}
		if !alwaysOn[id] && !e.tracker.Active(id) {
			continue
		}

		e.values = MapSection(e.cfg, id, v, dir, e.layout, vh, e.values[:0])
		e.writer.Apply(id, node, e.values)
	}
}
