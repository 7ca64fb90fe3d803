package firstx

import (
	"testing"
	"time"

	"firstx/scroll"

	eb "github.com/hajimehoshi/ebiten/v2"
)

const testFrameStep = 16 * time.Millisecond

// newTestPage lays the page out by hand so no fonts are needed.
func newTestPage() *Page {
	p := NewPage(DefaultConfig())
	p.viewport = FPt(1280, 800)

	heights := []float64{800, 1400, 1200, 700, 180}
	offset := 0.0
	for i := range p.sections {
		p.sections[i].Offset = offset
		p.sections[i].Height = heights[i]
		offset += heights[i]
	}
	p.pageHeight = offset

	return p
}

// runFrames ticks the page clock until no frame is pending.
func runFrames(p *Page, now time.Duration, maxFrames int) time.Duration {
	for i := 0; i < maxFrames && p.Frames.Pending() > 0; i++ {
		now += testFrameStep
		p.Timeouts.Advance(now)
		p.Frames.Run(now)
	}
	return now
}

func expectStyleVar(t *testing.T, node *StyleNode, name, want string) {
	t.Helper()
	got, ok := node.StyleVar(name)
	if !ok {
		t.Errorf("%s: %s is not set, want %q", node.Name, name, want)
		return
	}
	if got != want {
		t.Errorf("%s: %s = %q, want %q", node.Name, name, got, want)
	}
}

func TestPageGeometry(t *testing.T) {
	p := newTestPage()

	tests := []struct {
		id   scroll.SectionID
		want scroll.Geometry
		ok   bool
	}{
		{scroll.SectionBackground, scroll.Geometry{StartOffset: 0, Height: 800, ViewportHeight: 800}, true},
		{scroll.SectionHero, scroll.Geometry{StartOffset: 0, Height: 800, ViewportHeight: 800}, true},
		{scroll.SectionFinMind, scroll.Geometry{StartOffset: 800, Height: 1400, ViewportHeight: 800}, true},
		{scroll.SectionWorkflow, scroll.Geometry{StartOffset: 2200, Height: 1200, ViewportHeight: 800}, true},
		{scroll.SectionTechStack, scroll.Geometry{StartOffset: 3400, Height: 700, ViewportHeight: 800}, true},
		{"", scroll.Geometry{}, false},
		{"pricing", scroll.Geometry{}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			got, ok := p.Geometry(tt.id)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Geometry(%q) = %+v, %v, want %+v, %v", tt.id, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPageScrollClamps(t *testing.T) {
	p := newTestPage()

	if got := p.Viewport(); got != FPt(1280, 800) {
		t.Fatalf("Viewport() = %v", got)
	}
	if got := p.PageHeight(); got != 4280 {
		t.Fatalf("PageHeight() = %v, want 4280", got)
	}
	if got, want := p.MaxScroll(), 4280.0-800; got != want {
		t.Fatalf("MaxScroll() = %v, want %v", got, want)
	}

	p.ScrollTo(-50)
	if p.ScrollY() != 0 {
		t.Errorf("ScrollTo(-50) left scroll at %v", p.ScrollY())
	}

	p.ScrollBy(1e6)
	if p.ScrollY() != p.MaxScroll() {
		t.Errorf("ScrollBy(1e6) left scroll at %v, want %v", p.ScrollY(), p.MaxScroll())
	}
}

func TestPageScrollDrivesEngine(t *testing.T) {
	p := newTestPage()
	p.Mount()

	expectStyleVar(t, p.Hero.Node, "--hero-opacity", "1.000")
	expectStyleVar(t, p.Hero.Node, "--hero-scale", "1.000")

	p.ScrollTo(1000)
	if p.Frames.Pending() == 0 {
		t.Fatalf("scrolling did not request a frame")
	}

	runFrames(p, 0, 5000)

	if p.Engine.Scheduled() {
		t.Fatalf("engine still scheduled")
	}
	if got := p.DrawnY(); got != 1000 {
		t.Errorf("DrawnY() = %v, want 1000", got)
	}

	expectStyleVar(t, p.Hero.Node, "--hero-opacity", "0.000")
	expectStyleVar(t, p.FinMind.Node, "--finmind-opacity", "1.000")
	expectStyleVar(t, p.FinMind.Node, "--finmind-translate", "0.0px")

	if p.Hero.Node.Float("--hero-scale", 1) >= 1 {
		t.Errorf("hero did not shrink")
	}
}

func TestPageHiddenCancelsFrames(t *testing.T) {
	p := newTestPage()
	p.Mount()

	p.ScrollTo(1000)
	if p.Frames.Pending() == 0 {
		t.Fatalf("scrolling did not request a frame")
	}

	p.visibility.Emit(false)
	if n := p.Frames.Pending(); n != 0 {
		t.Errorf("%d frames pending while hidden", n)
	}

	p.visibility.Emit(true)
	if p.Frames.Pending() == 0 {
		t.Errorf("no frame requested after becoming visible")
	}
}

func TestPageUnmount(t *testing.T) {
	p := newTestPage()
	p.Mount()
	p.ScrollTo(600)

	if !p.Mounted() {
		t.Fatalf("page not mounted")
	}

	p.Unmount()

	if p.Mounted() {
		t.Errorf("page still mounted after Unmount")
	}
	if n := p.Frames.Pending(); n != 0 {
		t.Errorf("%d frames pending after unmount", n)
	}
	for _, node := range []*StyleNode{p.Background.Node, p.Hero.Node, p.FinMind.Node, p.Workflow.Node, p.TechStack.Node} {
		if !node.Detached() {
			t.Errorf("%s not detached", node.Name)
		}
		if node.Hint() != "" {
			t.Errorf("%s kept hint %q", node.Name, node.Hint())
		}
	}

	heroOpacity, _ := p.Hero.Node.StyleVar("--hero-opacity")

	p.ScrollTo(2000)
	runFrames(p, 0, 100)

	if n := p.Frames.Pending(); n != 0 {
		t.Errorf("scrolling after unmount requested %d frames", n)
	}
	if got, _ := p.Hero.Node.StyleVar("--hero-opacity"); got != heroOpacity {
		t.Errorf("hero opacity written after unmount: %q -> %q", heroOpacity, got)
	}

	// second unmount is a no-op
	p.Unmount()
}

func TestPageRenderHints(t *testing.T) {
	p := newTestPage()
	p.Mount()

	if got := p.Workflow.Node.Hint(); got != "transform" {
		t.Errorf("workflow hint = %q after mount", got)
	}
	if got := p.Hero.Node.Hint(); got != "transform" {
		t.Errorf("hero hint = %q after becoming active", got)
	}
	if got := p.TechStack.Node.Hint(); got != "" {
		t.Errorf("techstack hint = %q while far below the viewport", got)
	}

	p.Timeouts.Advance(p.Config.Page.HintTimeout)

	if got := p.Workflow.Node.Hint(); got != "" {
		t.Errorf("workflow hint = %q after timeout", got)
	}
	if got := p.Hero.Node.Hint(); got != "" {
		t.Errorf("hero hint = %q after timeout", got)
	}
}

func TestPageHeroIdlePause(t *testing.T) {
	p := newTestPage()
	p.Mount()

	if !p.Hero.IdleRunning {
		t.Fatalf("hero idle animation not running at the top")
	}

	// 100px of the hero left on screen
	p.ScrollTo(700)
	now := runFrames(p, 0, 5000)

	if p.Hero.IdleRunning {
		t.Errorf("hero idle animation running at ratio %v", p.Engine.Tracker().Ratio(scroll.SectionHero))
	}

	p.ScrollTo(0)
	runFrames(p, now, 5000)

	if !p.Hero.IdleRunning {
		t.Errorf("hero idle animation did not resume")
	}
}

func TestPageFinMindReveal(t *testing.T) {
	p := newTestPage()
	p.Mount()

	if p.FinMind.Revealed {
		t.Fatalf("finmind revealed before it was visible")
	}

	p.ScrollTo(800)
	now := runFrames(p, 0, 5000)

	if !p.FinMind.Revealed || !p.FinMind.Intro.Shown {
		t.Fatalf("finmind not revealed when fully on screen")
	}

	p.Timeouts.Advance(now + time.Second)

	for i, f := range p.FinMind.Features {
		if !f.Shown {
			t.Errorf("feature %d not shown", i)
		}
	}
	if !p.FinMind.QA.Shown || !p.FinMind.CTA.Shown {
		t.Errorf("qa shown %v, cta shown %v", p.FinMind.QA.Shown, p.FinMind.CTA.Shown)
	}
}

type fixedSection float64

func (s fixedSection) Height(viewport FPoint) float64              { return float64(s) }
func (s fixedSection) Update(p *Page, rect FRectangle)              {}
func (s fixedSection) Draw(dst *eb.Image, p *Page, rect FRectangle) {}

func TestStackSections(t *testing.T) {
	sections := []pageSection{
		{Section: fixedSection(800)},
		{Section: fixedSection(0)},
		{Section: fixedSection(300)},
	}

	total := StackSections(sections, FPt(1280, 800))

	if total != 1100 {
		t.Errorf("total = %v, want 1100", total)
	}
	wantOffsets := []float64{0, 800, 800}
	for i, s := range sections {
		if s.Offset != wantOffsets[i] {
			t.Errorf("section %d offset = %v, want %v", i, s.Offset, wantOffsets[i])
		}
	}
}
