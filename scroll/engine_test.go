package scroll

import (
	"testing"
	"time"
)

const frameStep = 16 * time.Millisecond

type testPage struct {
	host   *fakeHost
	events *fakeEvents
	frames *fakeFrames
	nodes  map[SectionID]*fakeNode
	engine *Engine
}

func newTestPage(cfg Config) *testPage {
	p := &testPage{
		host:   pageHost(),
		events: newFakeEvents(),
		frames: newFakeFrames(),
		nodes:  make(map[SectionID]*fakeNode),
	}
	p.engine = NewEngine(cfg, p.host, p.events, p.frames)

	for _, id := range mappedSections {
		node := newFakeNode()
		p.nodes[id] = node
		p.engine.Register(id, node)
	}

	return p
}

func (p *testPage) scrollTo(y float64) {
	p.host.scrollY = y
	p.events.fireScroll()
}

func (p *testPage) totalWrites() int {
	total := 0
	for _, n := range p.nodes {
		total += n.writes
	}
	return total
}

func (p *testPage) expectVar(t *testing.T, id SectionID, name, want string) {
	t.Helper()
	if got := p.nodes[id].vars[name]; got != want {
		t.Errorf("%s %s = %q, want %q", id, name, got, want)
	}
}

func TestEngineInitialMount(t *testing.T) {
	p := newTestPage(DefaultConfig())
	p.engine.Mount()

	p.expectVar(t, SectionHero, HeroScale.Name, "1.000")
	p.expectVar(t, SectionHero, HeroOpacity.Name, "1.000")
	p.expectVar(t, SectionHero, HeroTranslate.Name, "0.0px")

	if p.engine.Scheduled() {
		t.Errorf("tick scheduled right after mount at rest")
	}
	if n := p.nodes[SectionWorkflow].writes; n != 0 {
		t.Errorf("workflow got %d writes while far below the viewport", n)
	}
	if n := p.nodes[SectionBackground].writes; n == 0 {
		t.Errorf("background got no writes on mount")
	}
	if n := p.events.listenerCount(); n != 3 {
		t.Errorf("listeners after mount = %d, want 3", n)
	}
}

func TestEngineScrollJumpConverges(t *testing.T) {
	p := newTestPage(DefaultConfig())
	p.engine.Mount()

	p.scrollTo(1000)
	if !p.engine.Scheduled() {
		t.Fatalf("scroll did not schedule a tick")
	}

	_, frames := p.frames.runUntilIdle(0, frameStep, 5000)
	if p.engine.Scheduled() {
		t.Fatalf("still scheduled after %d frames", frames)
	}

	s := p.engine.State()
	if s.Current != 1000 || s.Target != 1000 {
		t.Errorf("state = %+v, want current and target at 1000", s)
	}
	if s.Direction != Forward {
		t.Errorf("direction = %v, want Forward", s.Direction)
	}

	p.expectVar(t, SectionHero, HeroOpacity.Name, "0.000")
	p.expectVar(t, SectionFinMind, FinMindOpacity.Name, "1.000")
	p.expectVar(t, SectionFinMind, FinMindScale.Name, "1.000")
	p.expectVar(t, SectionFinMind, FinMindTranslate.Name, "0.0px")

	if n := p.frames.run(time.Hour); n != 0 {
		t.Errorf("%d frames fired after convergence", n)
	}

	stats := p.engine.Stats()
	if stats.Throttled == 0 {
		t.Errorf("no throttled ticks at 16ms frames and a 20Hz cap")
	}
	if stats.Ticks+stats.Throttled != frames {
		t.Errorf("ticks %d + throttled %d != frames %d", stats.Ticks, stats.Throttled, frames)
	}
}

func TestEngineUnthrottled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTickRate = 0

	p := newTestPage(cfg)
	p.engine.Mount()
	p.scrollTo(1000)

	_, frames := p.frames.runUntilIdle(0, frameStep, 5000)

	stats := p.engine.Stats()
	if stats.Throttled != 0 {
		t.Errorf("Throttled = %d, want 0", stats.Throttled)
	}
	if stats.Ticks != frames {
		t.Errorf("Ticks = %d, want one per frame (%d)", stats.Ticks, frames)
	}
	if stats.Writes == 0 || stats.Skipped == 0 {
		t.Errorf("stats = %+v, want both writes and skipped values", stats)
	}
}

func TestEngineUnmountStopsWrites(t *testing.T) {
	p := newTestPage(DefaultConfig())
	p.engine.Mount()
	p.scrollTo(1000)

	p.frames.run(1 * frameStep)
	p.frames.run(2 * frameStep)

	if !p.engine.Scheduled() {
		t.Fatalf("animation finished too early to test unmount")
	}

	p.engine.Unmount()
	p.engine.Unmount()

	if p.engine.Scheduled() {
		t.Errorf("tick still scheduled after unmount")
	}
	if len(p.frames.pending) != 0 {
		t.Errorf("%d frames still pending after unmount", len(p.frames.pending))
	}
	if n := p.events.listenerCount(); n != 0 {
		t.Errorf("%d listeners left after unmount", n)
	}

	writes := p.totalWrites()

	// a platform that fires cancelled callbacks anyway
	for _, fn := range p.frames.cancelled {
		fn(time.Hour)
	}
	p.scrollTo(3000)
	p.frames.run(time.Hour)

	if got := p.totalWrites(); got != writes {
		t.Errorf("%d writes after unmount", got-writes)
	}
}

func TestEngineRemount(t *testing.T) {
	p := newTestPage(DefaultConfig())
	p.engine.Mount()
	p.engine.Unmount()

	p.host.scrollY = 1000
	p.engine.Mount()

	if s := p.engine.State(); s.Current != 1000 {
		t.Errorf("current after remount = %v, want 1000", s.Current)
	}
	p.expectVar(t, SectionFinMind, FinMindOpacity.Name, "1.000")
	if n := p.events.listenerCount(); n != 3 {
		t.Errorf("listeners after remount = %d, want 3", n)
	}
}

func TestEnginePageVisibility(t *testing.T) {
	p := newTestPage(DefaultConfig())
	p.engine.Mount()
	p.scrollTo(1000)

	p.events.fireVisibility(false)

	if p.engine.Scheduled() || len(p.frames.pending) != 0 {
		t.Fatalf("tick still scheduled while hidden")
	}

	p.scrollTo(1200)
	if p.engine.Scheduled() {
		t.Errorf("scroll while hidden scheduled a tick")
	}
	if s := p.engine.State(); s.Current != 0 {
		t.Errorf("current moved to %v while hidden", s.Current)
	}

	p.events.fireVisibility(true)
	if !p.engine.Scheduled() {
		t.Fatalf("no tick scheduled after becoming visible")
	}

	p.frames.runUntilIdle(time.Second, frameStep, 5000)

	if s := p.engine.State(); s.Current != 1200 {
		t.Errorf("current = %v, want 1200", s.Current)
	}
}

func TestEngineIgnoresSubPixelScroll(t *testing.T) {
	p := newTestPage(DefaultConfig())
	p.engine.Mount()

	p.scrollTo(0.3)

	if p.engine.Scheduled() {
		t.Errorf("sub-pixel scroll scheduled a tick")
	}
}

func TestEngineRecomputesSectionsThatBecomeActive(t *testing.T) {
	p := newTestPage(DefaultConfig())
	p.engine.Mount()

	if n := p.nodes[SectionTechStack].writes; n != 0 {
		t.Fatalf("tech stack got %d writes before it was near the viewport", n)
	}

	// no frame has run, the new sections are written with the old current value
	p.scrollTo(3000)

	if !p.engine.Tracker().Active(SectionTechStack) {
		t.Fatalf("tech stack not active after jumping to it")
	}
	p.expectVar(t, SectionTechStack, TechStackOpacity.Name, "0.200")
	p.expectVar(t, SectionWorkflow, WorkflowOpacity.Name, "0.000")
}

func TestEngineRegisterAfterMount(t *testing.T) {
	host := pageHost()
	events := newFakeEvents()
	frames := newFakeFrames()

	e := NewEngine(DefaultConfig(), host, events, frames)
	e.Mount()

	finMind := newFakeNode()
	e.Register(SectionFinMind, finMind)

	if got := finMind.vars[FinMindOpacity.Name]; got != "0.000" {
		t.Errorf("opacity of late registered section = %q, want %q", got, "0.000")
	}

	e.Register(SectionFinMind, nil)
	writes := finMind.writes

	host.scrollY = 1000
	events.fireScroll()
	frames.runUntilIdle(0, frameStep, 5000)

	if finMind.writes != writes {
		t.Errorf("unregistered node got %d writes", finMind.writes-writes)
	}
	if e.Tracker().Active(SectionFinMind) {
		t.Errorf("unregistered section is active")
	}
}
