package firstx

import (
	"firstx/scroll"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// Section is one block of the page, stacked top to bottom.
type Section interface {
	Height(viewport FPoint) float64

	// rect is where the section is drawn on screen this frame
	Update(p *Page, rect FRectangle)
	Draw(dst *eb.Image, p *Page, rect FRectangle)
}

type pageSection struct {
	ID      scroll.SectionID
	Node    *StyleNode
	Section Section

	Offset float64
	Height float64
}

// Page hosts the scroll engine. It owns the scroll offset, the layout
// and the frame loop the engine ticks on.
type Page struct {
	Config Config

	Engine   *scroll.Engine
	Frames   FrameQueue
	Timeouts TimeoutQueue

	Background *BackgroundSection
	Hero       *HeroSection
	FinMind    *FinMindSection
	Workflow   *WorkflowSection
	TechStack  *TechStackSection
	Footer     *FooterSection

	sections []pageSection

	viewport   FPoint
	scrollY    float64
	pageHeight float64
	lastDrawnY float64

	visible bool

	scrolled   Signal[struct{}]
	resized    Signal[struct{}]
	visibility Signal[bool]

	activeSections map[scroll.SectionID]bool
	cancelObserve  func()

	mounted bool
}

func NewPage(cfg Config) *Page {
	p := new(Page)
	p.Config = cfg
	p.visible = true
	p.activeSections = make(map[scroll.SectionID]bool)

	if err := SetPalette(cfg.Palette); err != nil {
		WarnLogger.Printf("ignoring palette overrides: %v", err)
	}

	p.Background = NewBackgroundSection()
	p.Hero = NewHeroSection()
	p.FinMind = NewFinMindSection()
	p.Workflow = NewWorkflowSection(cfg.Contact.Email)
	p.TechStack = NewTechStackSection(TechStack)
	p.Footer = NewFooterSection(cfg.Contact.Email)

	p.sections = []pageSection{
		{ID: scroll.SectionHero, Node: p.Hero.Node, Section: p.Hero},
		{ID: scroll.SectionFinMind, Node: p.FinMind.Node, Section: p.FinMind},
		{ID: scroll.SectionWorkflow, Node: p.Workflow.Node, Section: p.Workflow},
		{ID: scroll.SectionTechStack, Node: p.TechStack.Node, Section: p.TechStack},
		{Section: p.Footer},
	}

	p.Engine = scroll.NewEngine(cfg.Scroll, p, p, &p.Frames)

	return p
}

// ==========================
// scroll.Host
// ==========================

func (p *Page) ScrollY() float64 {
	return p.scrollY
}

func (p *Page) ViewportHeight() float64 {
	return p.viewport.Y
}

func (p *Page) Geometry(id scroll.SectionID) (scroll.Geometry, bool) {
	if id == scroll.SectionBackground {
		return scroll.Geometry{
			StartOffset:    0,
			Height:         p.viewport.Y,
			ViewportHeight: p.viewport.Y,
		}, true
	}

	for _, s := range p.sections {
		if s.ID == id && s.ID != "" {
			return scroll.Geometry{
				StartOffset:    s.Offset,
				Height:         s.Height,
				ViewportHeight: p.viewport.Y,
			}, true
		}
	}

	return scroll.Geometry{}, false
}

// ==========================
// scroll.Events
// ==========================

func (p *Page) OnScroll(fn func()) func() {
	return p.scrolled.Listen(func(struct{}) { fn() })
}

func (p *Page) OnResize(fn func()) func() {
	return p.resized.Listen(func(struct{}) { fn() })
}

func (p *Page) OnPageVisibility(fn func(visible bool)) func() {
	return p.visibility.Listen(fn)
}

// ==========================
// lifecycle
// ==========================

func (p *Page) Mount() {
	if p.mounted {
		return
	}
	p.mounted = true

	p.Engine.Register(scroll.SectionBackground, p.Background.Node)
	for _, s := range p.sections {
		if s.ID != "" {
			p.Engine.Register(s.ID, s.Node)
		}
	}

	tracker := p.Engine.Tracker()
	tracker.AddThresholds(p.Config.Page.HeroPauseRatio, p.Config.Page.FinMindRevealRatio)

	clear(p.activeSections)
	p.cancelObserve = tracker.Observe(p.onVisibilityChange)

	p.Engine.Mount()

	// the workflow section is always promoted while the page is mounted
	p.Workflow.Node.RaiseHint("transform", p.Config.Page.HintTimeout, &p.Timeouts)

	SetRedraw()
}

func (p *Page) Unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false

	if p.cancelObserve != nil {
		p.cancelObserve()
		p.cancelObserve = nil
	}

	p.Engine.Unmount()
	p.FinMind.CancelReveal()

	p.Background.Node.Detach()
	for _, s := range p.sections {
		if s.Node != nil {
			s.Node.Detach()
		}
	}
}

func (p *Page) Mounted() bool {
	return p.mounted
}

// ApplyConfig restarts the engine with cfg.
func (p *Page) ApplyConfig(cfg Config) {
	if err := SetPalette(cfg.Palette); err != nil {
		WarnLogger.Printf("ignoring palette overrides: %v", err)
	}

	wasMounted := p.mounted
	p.Unmount()

	p.Config = cfg
	p.Workflow.Form.Form.ReplyTo = cfg.Contact.Email
	if p.Footer.Email != cfg.Contact.Email {
		p.Footer.Email = cfg.Contact.Email
		p.Footer.qrImage = nil
	}

	p.Background.Node = NewStyleNode("background")
	p.Hero.Node = NewStyleNode("hero")
	p.FinMind.Node = NewStyleNode("finmind")
	p.Workflow.Node = NewStyleNode("workflow")
	p.TechStack.Node = NewStyleNode("techstack")

	p.sections[0].Node = p.Hero.Node
	p.sections[1].Node = p.FinMind.Node
	p.sections[2].Node = p.Workflow.Node
	p.sections[3].Node = p.TechStack.Node

	p.Engine = scroll.NewEngine(cfg.Scroll, p, p, &p.Frames)

	if wasMounted {
		p.Mount()
	}
}

func (p *Page) onVisibilityChange(e scroll.Entry) {
	wasActive := p.activeSections[e.ID]
	p.activeSections[e.ID] = e.Active

	node := p.node(e.ID)
	if node != nil {
		if e.Active && !wasActive {
			node.RaiseHint("transform", p.Config.Page.HintTimeout, &p.Timeouts)
		} else if !e.Active && wasActive {
			node.DropHint()
		}
	}

	switch e.ID {
	case scroll.SectionHero:
		p.Hero.SetIdleRunning(e.Active && e.Ratio >= p.Config.Page.HeroPauseRatio)
	case scroll.SectionFinMind:
		if e.Active && e.Ratio >= p.Config.Page.FinMindRevealRatio {
			p.FinMind.Reveal(&p.Timeouts)
		}
	}
}

func (p *Page) node(id scroll.SectionID) *StyleNode {
	if id == scroll.SectionBackground {
		return p.Background.Node
	}
	for _, s := range p.sections {
		if s.ID == id && s.ID != "" {
			return s.Node
		}
	}
	return nil
}

// ==========================
// layout and scrolling
// ==========================

func (p *Page) Layout(width, height float64) {
	viewport := FPt(width, height)
	if viewport == p.viewport {
		return
	}
	p.viewport = viewport

	p.relayout()
	p.scrollY = Clamp(p.scrollY, 0, p.MaxScroll())

	DebugPrintfPersist("viewport", "%.0fx%.0f", width, height)
	DebugPrintPersist("page height", p.pageHeight)

	if p.mounted {
		p.resized.Emit(struct{}{})
	}

	SetRedraw()
}

func (p *Page) relayout() {
	p.pageHeight = StackSections(p.sections, p.viewport)
}

// StackSections places sections one after another and returns the total height.
func StackSections(sections []pageSection, viewport FPoint) float64 {
	offset := 0.0
	for i := range sections {
		sections[i].Offset = offset
		sections[i].Height = sections[i].Section.Height(viewport)
		offset += sections[i].Height
	}
	return offset
}

func (p *Page) Viewport() FPoint {
	return p.viewport
}

func (p *Page) PageHeight() float64 {
	return p.pageHeight
}

func (p *Page) MaxScroll() float64 {
	return max(0, p.pageHeight-p.viewport.Y)
}

func (p *Page) ScrollTo(y float64) {
	y = Clamp(y, 0, p.MaxScroll())
	if y == p.scrollY {
		return
	}
	p.scrollY = y
	p.scrolled.Emit(struct{}{})
}

func (p *Page) ScrollBy(dy float64) {
	p.ScrollTo(p.scrollY + dy)
}

// DrawnY is the damped offset the page is drawn at.
func (p *Page) DrawnY() float64 {
	if !p.mounted {
		return p.scrollY
	}
	return Clamp(p.Engine.State().Current, 0, p.MaxScroll())
}

func (p *Page) ScreenRect(s pageSection) FRectangle {
	return FRectXYWH(0, s.Offset-p.DrawnY(), p.viewport.X, s.Height)
}

func (p *Page) ViewportRect() FRectangle {
	return FRectWH(p.viewport.X, p.viewport.Y)
}

// ==========================
// update and draw
// ==========================

func (p *Page) Update() error {
	if !p.mounted && p.viewport.Y > 0 {
		p.Mount()
	}
	if !p.mounted {
		return nil
	}

	now := GlobalTimerNow()

	p.Timeouts.Advance(now)

	if visible := IsPageVisible(); visible != p.visible {
		p.visible = visible
		p.visibility.Emit(visible)
	}

	p.handleScrollInput()

	p.Frames.Run(now)

	if drawnY := p.DrawnY(); drawnY != p.lastDrawnY {
		p.lastDrawnY = drawnY
		SetRedraw()
	}

	p.Background.Update(p, p.ViewportRect())
	for _, s := range p.sections {
		s.Section.Update(p, p.ScreenRect(s))
	}

	p.trimLayers()

	return nil
}

func (p *Page) handleScrollInput() {
	const (
		firstRate  = 250 * 1000 * 1000
		repeatRate = 40 * 1000 * 1000
	)

	_, wheelY := eb.Wheel()
	if wheelY != 0 {
		p.ScrollBy(-wheelY * p.Config.Page.WheelStep)
	}

	if delta := TheInputManager.TouchDelta; delta.Y != 0 {
		p.ScrollBy(-delta.Y)
	}

	// keys belong to the form while typing
	if p.Workflow.Form.HasFocus() {
		return
	}

	if HandleKeyRepeat(firstRate, repeatRate, ScrollDownKey) {
		p.ScrollBy(p.Config.Page.KeyStep)
	}
	if HandleKeyRepeat(firstRate, repeatRate, ScrollUpKey) {
		p.ScrollBy(-p.Config.Page.KeyStep)
	}
	if HandleKeyRepeat(firstRate, repeatRate, ScrollPageDownKey) || IsKeyJustPressed(eb.KeySpace) {
		p.ScrollBy(p.viewport.Y * 0.9)
	}
	if HandleKeyRepeat(firstRate, repeatRate, ScrollPageUpKey) {
		p.ScrollBy(-p.viewport.Y * 0.9)
	}
	if IsKeyJustPressed(ScrollHomeKey) {
		p.ScrollTo(0)
	}
	if IsKeyJustPressed(ScrollEndKey) {
		p.ScrollTo(p.MaxScroll())
	}
}

// trimLayers frees offscreen layers of sections that are neither
// hinted nor near the viewport.
func (p *Page) trimLayers() {
	tracker := p.Engine.Tracker()
	for _, s := range p.sections {
		if s.Node == nil {
			continue
		}
		if s.Node.Hint() == "" && !tracker.Active(s.ID) {
			s.Node.ReleaseLayer()
		}
	}
}

func (p *Page) Draw(dst *eb.Image) {
	dst.Fill(Palette[ColorBg])

	viewport := p.ViewportRect()

	p.Background.Draw(dst, p, viewport)

	for _, s := range p.sections {
		rect := p.ScreenRect(s)
		if !rect.Overlaps(viewport) {
			continue
		}
		s.Section.Draw(dst, p, rect)
	}
}

// DrawComposited draws a section with opacity, scale around the center of
// its visible part and a vertical offset, the way css transforms would.
func (p *Page) DrawComposited(
	dst *eb.Image,
	node *StyleNode,
	rect FRectangle,
	opacity, scale, translateY float64,
	draw func(dst *eb.Image, rect FRectangle),
) {
	if opacity <= 0.001 {
		return
	}

	if opacity >= 1 && scale == 1 && translateY == 0 && node.Hint() == "" {
		draw(dst, rect)
		return
	}

	layer := node.Layer(int(p.viewport.X), int(p.viewport.Y))
	draw(layer, rect)

	visible := rect.Intersect(p.ViewportRect())
	center := FRectangleCenter(visible)

	op := &DrawImageOptions{}
	op.GeoM.Translate(-center.X, -center.Y)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(center.X, center.Y+translateY)
	op.ColorScale.ScaleAlpha(f32(opacity))

	DrawImage(dst, layer, op)
}

func (p *Page) DebugPrintStats() {
	s := p.Engine.State()
	DebugPrintf("scroll", "%.1f -> %.1f (%+d)", s.Current, s.Target, s.Direction)
	DebugPrintf("page", "%.0f / %.0f", p.scrollY, p.MaxScroll())

	stats := p.Engine.Stats()
	DebugPrintf("ticks", "%d (throttled %d)", stats.Ticks, stats.Throttled)
	DebugPrintf("writes", "%d (skipped %d)", stats.Writes, stats.Skipped)

	tracker := p.Engine.Tracker()
	for _, sec := range p.sections {
		if sec.ID == "" {
			continue
		}
		DebugPrintf(string(sec.ID), "active %v ratio %.2f hint %q layer %v",
			tracker.Active(sec.ID), tracker.Ratio(sec.ID), sec.Node.Hint(), sec.Node.HasLayer())
	}

	DebugPrint("accent", ColorToString(Palette[ColorAccent]))

	DebugPrintSystemStats()
}

func IsPageVisible() bool {
	return eb.IsFocused() && !eb.IsWindowMinimized()
}
