package scroll

import (
	"math"

	"golang.org/x/exp/constraints"
)

type SectionID string

const (
	SectionBackground SectionID = "background"
	SectionHero       SectionID = "hero"
	SectionFinMind    SectionID = "finmind"
	SectionWorkflow   SectionID = "workflow"
	SectionTechStack  SectionID = "techstack"
)

// Geometry is where a section sits on the page, measured from live layout.
type Geometry struct {
	StartOffset    float64
	Height         float64
	ViewportHeight float64
}

// ViewportSpan returns the section's top and bottom relative to the viewport
// when the page is scrolled to scrollY.
func (g Geometry) ViewportSpan(scrollY float64) (top, bottom float64) {
	top = g.StartOffset - scrollY
	return top, top + g.Height
}

type Layout map[SectionID]Geometry

// Bounds is a scroll range [Start, End).
type Bounds struct {
	Start, End float64
}

func (c Config) OverlapPx(g Geometry) float64 {
	return c.Overlap * g.ViewportHeight
}

// SectionBounds spans from the moment the section is overlap pixels into
// the viewport until its bottom is overlap pixels away from leaving it.
func (c Config) SectionBounds(g Geometry) Bounds {
	overlap := c.OverlapPx(g)
	return Bounds{
		Start: g.StartOffset - g.ViewportHeight + overlap,
		End:   g.StartOffset + g.Height - overlap,
	}
}

func (c Config) HeroBounds(g Geometry) Bounds {
	return Bounds{
		Start: g.StartOffset,
		End:   g.StartOffset + g.Height*c.HeroExit,
	}
}

func Smoothstep(x float64) float64 {
	x = Clamp(x, 0, 1)
	return x * x * (3 - 2*x)
}

func Progress(v, start, end float64) float64 {
	if end <= start {
		if v >= end {
			return 1
		}
		return 0
	}
	return Clamp((v-start)/(end-start), 0, 1)
}

func SmoothProgress(v, start, end float64) float64 {
	return Smoothstep(Progress(v, start, end))
}

type HeroParams struct {
	Scale     float64
	Opacity   float64
	Translate float64
}

const heroMaxTranslate = 140

func MapHero(c Config, v float64, g Geometry) HeroParams {
	b := c.HeroBounds(g)
	p := SmoothProgress(v, b.Start, b.End)

	return HeroParams{
		Scale:     math.Max(0.42, 1-p*0.6),
		Opacity:   math.Max(0, 1-p*1.05),
		Translate: math.Min(p*220, heroMaxTranslate),
	}
}

func (p HeroParams) AppendValues(dst []Value) []Value {
	return append(dst,
		Value{HeroScale, p.Scale},
		Value{HeroOpacity, p.Opacity},
		Value{HeroTranslate, p.Translate},
	)
}

type FinMindParams struct {
	Scale     float64
	Opacity   float64
	Translate float64
	Backdrop  float64
	Bridge    float64
}

const (
	finMindEnterOffset = 90
	finMindExitOffset  = 60
)

// MapFinMind fades the section in over its entry window, holds it through
// its body and fades it out over its exit window.
//
// While exiting, scrolling forward lets it trail downward and scrolling back
// pushes it further up instead of retracting.
func MapFinMind(c Config, v float64, dir Direction, g Geometry) FinMindParams {
	b := c.SectionBounds(g)
	overlap := c.OverlapPx(g)

	entry := SmoothProgress(v, b.Start, b.Start+overlap)
	exit := SmoothProgress(v, b.End-overlap, b.End)

	opacity := entry * (1 - exit)

	translate := (1 - entry) * finMindEnterOffset
	if exit > 0 {
		if dir == Backward {
			translate = -exit * finMindExitOffset
		} else {
			translate = exit * finMindExitOffset
		}
	}

	bridge := SmoothProgress(v, b.End-overlap*2, b.End-overlap) * (1 - exit)

	return FinMindParams{
		Scale:     0.86 + entry*0.14,
		Opacity:   opacity,
		Translate: translate,
		Backdrop:  0.35 + 0.45*opacity,
		Bridge:    bridge,
	}
}

func (p FinMindParams) AppendValues(dst []Value) []Value {
	return append(dst,
		Value{FinMindScale, p.Scale},
		Value{FinMindOpacity, p.Opacity},
		Value{FinMindTranslate, p.Translate},
		Value{FinMindBackdrop, p.Backdrop},
		Value{BridgeOpacity, p.Bridge},
	)
}

type WorkflowParams struct {
	Opacity float64
	Cap     float64
}

func MapWorkflow(c Config, v float64, g Geometry) WorkflowParams {
	b := c.SectionBounds(g)
	entry := SmoothProgress(v, b.Start, b.Start+c.OverlapPx(g))

	return WorkflowParams{
		Opacity: entry,
		// peaks halfway through the cross-fade
		Cap: Clamp(entry*(1-entry)*4, 0, 1),
	}
}

func (p WorkflowParams) AppendValues(dst []Value) []Value {
	return append(dst,
		Value{WorkflowOpacity, p.Opacity},
		Value{CapOpacity, p.Cap},
	)
}

type TechStackParams struct {
	Opacity float64
}

func MapTechStack(c Config, v float64, g Geometry) TechStackParams {
	b := c.SectionBounds(g)
	entry := SmoothProgress(v, b.Start, b.Start+c.OverlapPx(g))

	return TechStackParams{
		Opacity: 0.2 + 0.8*entry,
	}
}

func (p TechStackParams) AppendValues(dst []Value) []Value {
	return append(dst, Value{TechStackOpacity, p.Opacity})
}

type BackgroundParams struct {
	Angle       float64
	Darkness    float64
	Red         float64
	Reveal      float64
	WordOpacity float64
}

// MapBackground works on the raw scroll value rather than section progress.
// The reveal factor cross-fades around the end of the hero range.
func MapBackground(c Config, v float64, hero Geometry) BackgroundParams {
	heroEnd := c.HeroBounds(hero).End
	overlap := c.OverlapPx(hero)
	reveal := SmoothProgress(v, heroEnd-overlap, heroEnd+overlap)

	wordOpacity := math.Max(0.05, 0.08*reveal+v*0.00004)

	return BackgroundParams{
		Angle:       math.Mod(math.Max(v, 0)*0.1, 360),
		Darkness:    math.Max(0, 1-v*0.0008),
		Red:         math.Min(0.18+reveal*0.55, 0.6),
		Reveal:      reveal,
		WordOpacity: Clamp(wordOpacity, 0.04, 0.16),
	}
}

func (p BackgroundParams) AppendValues(dst []Value) []Value {
	return append(dst,
		Value{BgAngle, p.Angle},
		Value{BgDarkness, p.Darkness},
		Value{BgRed, p.Red},
		Value{BgReveal, p.Reveal},
		Value{BgWordOpacity, p.WordOpacity},
	)
}

// MapSection appends the parameters of one section.
// Sections missing from layout produce nothing, except the background
// which falls back to a hero sized to the viewport.
func MapSection(
	c Config,
	id SectionID,
	v float64, dir Direction,
	layout Layout,
	viewportHeight float64,
	dst []Value,
) []Value {
	if id == SectionBackground {
		hero, ok := layout[SectionHero]
		if !ok {
			hero = Geometry{Height: viewportHeight, ViewportHeight: viewportHeight}
		}
		return MapBackground(c, v, hero).AppendValues(dst)
	}

	g, ok := layout[id]
	if !ok {
		return dst
	}

	switch id {
	case SectionHero:
		return MapHero(c, v, g).AppendValues(dst)
	case SectionFinMind:
		return MapFinMind(c, v, dir, g).AppendValues(dst)
	case SectionWorkflow:
		return MapWorkflow(c, v, g).AppendValues(dst)
	case SectionTechStack:
		return MapTechStack(c, v, g).AppendValues(dst)
	}

	return dst
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}
