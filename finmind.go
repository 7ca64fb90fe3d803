package firstx

import (
	"image/color"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type Feature struct {
	Title string
	Body  string
}

var FinMindFeatures = []Feature{
	{"Universal ingestion", "Blend PDFs, SQL, and streaming market feeds with zero prep."},
	{"Explainable intelligence", "Traverse every balance sheet with chain-of-thought reasoning."},
	{"Realtime copilots", "Launch analysts that operate inside your workflows in minutes."},
}

const (
	finMindLabel = "FINANCE OPS ENGINE"
	finMindTitle = "FinMind"
	finMindIntro = "Deploy an always-on intelligence layer that reads every document, " +
		"reconciles every account, and answers the questions your desk is about to ask."

	finMindPrompt = "FinMind, surface performance drift for all strategies >$200M AUM with more " +
		"than 50bps variance in the last 24 hours. Compare vs FX hedges."

	finMindCTA = "Explore FinMind Live"
)

var finMindResponse = []string{
	"Showing 12 strategies with variance > 50bps. Largest deviation: Euro Macro (+110bps) due to " +
		"EURCHF hedges breaking correlation. Latitude Credit (-80bps) triggered because loan-loss " +
		"chatter from the Street hit the knowledge graph.",
	"Underperformers: Frontier Growth (-3.4%) and Global Alpha (-1.9%). Sharpe ratios compressed " +
		"due to FX hedges (+210bps drag) and delayed energy rebalance. Suggested actions are " +
		"waiting in your execution queue.",
}

const (
	featureRevealStep = 160 * time.Millisecond
	qaRevealDelay     = 600 * time.Millisecond
	ctaRevealDelay    = 900 * time.Millisecond

	// hidden offsets of each revealed block
	introHiddenOffset = 90
	introHiddenScale  = 0.86
	qaHiddenOffset    = 40
	ctaHiddenOffset   = 70
)

type FinMindSection struct {
	Node *StyleNode

	// set once the section was visible enough to start revealing
	Revealed bool

	Intro    Reveal
	Features []Reveal
	QA       Reveal
	CTA      Reveal

	CTAButton *TextButton

	cancelReveal []func()
}

func NewFinMindSection() *FinMindSection {
	f := new(FinMindSection)
	f.Node = NewStyleNode("finmind")
	f.Features = make([]Reveal, len(FinMindFeatures))

	f.CTAButton = NewTextButton(finMindCTA)
	f.CTAButton.OnRelease = func() {
		InfoLogger.Print("FinMind live demo requested")
	}

	return f
}

// Reveal starts the staggered entrance. Only the first call does anything.
func (f *FinMindSection) Reveal(timeouts *TimeoutQueue) {
	if f.Revealed {
		return
	}
	f.Revealed = true

	f.Intro.Show()

	for i := range f.Features {
		i := i
		f.cancelReveal = append(f.cancelReveal, timeouts.SetTimeout(
			featureRevealStep*time.Duration(i+1),
			func() { f.Features[i].Show() },
		))
	}

	f.cancelReveal = append(f.cancelReveal,
		timeouts.SetTimeout(qaRevealDelay, f.QA.Show),
		timeouts.SetTimeout(ctaRevealDelay, f.CTA.Show),
	)
}

// CancelReveal stops pending reveal steps.
func (f *FinMindSection) CancelReveal() {
	for _, cancel := range f.cancelReveal {
		cancel()
	}
	f.cancelReveal = nil
}

func (f *FinMindSection) animating() bool {
	if f.Intro.Animating() || f.QA.Animating() || f.CTA.Animating() {
		return true
	}
	for i := range f.Features {
		if f.Features[i].Animating() {
			return true
		}
	}
	return false
}

func (f *FinMindSection) Height(viewport FPoint) float64 {
	return max(viewport.Y*1.6, f.contentHeight(viewport.X)+viewport.Y*0.6)
}

func (f *FinMindSection) columns(width float64) (left, right float64, stacked bool) {
	column := ContentColumn(FRectWH(width, 0)).Dx()
	if column >= 860 {
		return column*0.5 - 24, column*0.5 - 24, false
	}
	return column, column, true
}

func (f *FinMindSection) contentHeight(width float64) float64 {
	left, right, stacked := f.columns(width)
	l := f.introHeight(left)
	r := f.qaHeight(right)
	if stacked {
		return l + r + 32 + 80
	}
	return max(l, r) + 80
}

func (f *FinMindSection) introHeight(width float64) float64 {
	h := 24.0 + 64
	h += ParagraphHeight(finMindIntro, RegularFace(18), width) + 24
	for _, feat := range FinMindFeatures {
		h += 28 + ParagraphHeight(feat.Body, RegularFace(16), width) + 16
	}
	return h
}

func (f *FinMindSection) qaHeight(width float64) float64 {
	inner := width - 48
	h := 48 + ParagraphHeight(finMindPrompt, MonoFace(15), inner) + 24
	for _, para := range finMindResponse {
		h += ParagraphHeight(para, RegularFace(16), inner) + 14
	}
	return h + 24
}

func (f *FinMindSection) Update(p *Page, rect FRectangle) {
	if f.animating() {
		SetRedraw()
	}

	f.CTAButton.Disabled = !f.CTA.Shown
	f.CTAButton.Update()
}

func (f *FinMindSection) Draw(dst *eb.Image, p *Page, rect FRectangle) {
	visible := rect.Intersect(p.ViewportRect())

	// backdrop sits under the content and is not scaled with it
	backdrop := f.Node.Float("--finmind-backdrop", 0.35)
	FillRect(dst, visible, ColorFade(Palette[ColorPanel], backdrop))

	p.DrawComposited(
		dst, f.Node, rect,
		f.Node.Float("--finmind-opacity", 0),
		f.Node.Float("--finmind-scale", 0.86),
		f.Node.Float("--finmind-translate", 90),
		func(dst *eb.Image, rect FRectangle) {
			f.drawContent(dst, p, rect)
		},
	)

	// glow bridging into the next section
	if bridge := f.Node.Float("--bridge-opacity", 0); bridge > 0.001 {
		y := rect.Max.Y
		for i := range 6 {
			h := f64(i+1) * 24
			FillRect(dst, FRect(rect.Min.X, y-h, rect.Max.X, y),
				ColorFade(Palette[ColorAccentDeep], bridge*0.06))
		}
	}
}

func (f *FinMindSection) drawContent(dst *eb.Image, p *Page, rect FRectangle) {
	column := ContentColumn(rect)
	leftW, rightW, stacked := f.columns(p.viewport.X)

	contentH := f.contentHeight(p.viewport.X)
	y := StickyY(rect, p.viewport.Y, contentH) + 40

	leftRect := FRectXYWH(column.Min.X, y, leftW, f.introHeight(leftW))
	var rightRect FRectangle
	if stacked {
		rightRect = FRectXYWH(column.Min.X, leftRect.Max.Y+32, rightW, f.qaHeight(rightW))
	} else {
		rightRect = FRectXYWH(column.Max.X-rightW, y, rightW, f.qaHeight(rightW))
	}

	f.drawIntro(dst, leftRect)
	f.drawQA(dst, rightRect)

	// cta under both columns
	cta := f.CTA.Progress()
	ctaRect := FRectXYWH(column.Min.X, max(leftRect.Max.Y, rightRect.Max.Y)+16, min(280, column.Dx()), 52)
	ctaRect = ctaRect.Add(FPt(0, (1-cta)*ctaHiddenOffset))
	f.CTAButton.Rect = ctaRect
	if cta > 0 {
		layerAlpha(dst, cta, func(dst *eb.Image) { f.CTAButton.Draw(dst) })
	}
}

func (f *FinMindSection) drawIntro(dst *eb.Image, rect FRectangle) {
	intro := f.Intro.Progress()
	if intro <= 0 {
		return
	}

	offset := (1 - intro) * introHiddenOffset
	scale := Lerp(introHiddenScale, 1, intro)

	x := rect.Min.X
	y := rect.Min.Y + offset

	textOp := func(text string, face *ebt.GoTextFace, y float64, clr PaletteIndex, alpha float64) {
		op := &DrawTextOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(Palette[clr])
		op.ColorScale.ScaleAlpha(f32(alpha))
		DrawText(dst, text, face, op)
	}

	textOp(finMindLabel, MonoFace(14), y, ColorAccentSoft, intro)
	y += 24
	textOp(finMindTitle, BoldFace(52), y, ColorText, intro)
	y += 64

	introFace := RegularFace(18)
	y += drawParagraphAlpha(dst, finMindIntro, introFace, x, y, rect.Dx(), Palette[ColorTextMuted], intro)
	y += 24

	for i, feat := range FinMindFeatures {
		reveal := f.Features[i].Progress()
		if reveal <= 0 {
			break
		}

		fy := y + (1-reveal)*qaHiddenOffset
		FillCircle(dst, x+5, fy+11, 5, ColorFade(Palette[ColorAccent], reveal))
		DrawTextAt(dst, feat.Title, BoldFace(18), x+20, fy, ColorFade(Palette[ColorText], reveal), ebt.AlignStart)
		fy += 28
		h := drawParagraphAlpha(dst, feat.Body, RegularFace(16), x+20, fy, rect.Dx()-20, Palette[ColorTextMuted], reveal)
		y += 28 + h + 16
	}
}

func (f *FinMindSection) drawQA(dst *eb.Image, rect FRectangle) {
	qa := f.QA.Progress()
	if qa <= 0 {
		return
	}

	rect = rect.Add(FPt(0, (1-qa)*qaHiddenOffset))

	FillRoundRect(dst, rect, 20, ColorFade(Palette[ColorPanel], qa))
	StrokeRoundRect(dst, rect, 20, 1, ColorFade(Palette[ColorPanelStroke], qa))

	inner := rect.Inset(24)
	y := inner.Min.Y

	DrawTextAt(dst, "PROMPT", MonoFace(12), inner.Min.X, y, ColorFade(Palette[ColorAccentSoft], qa), ebt.AlignStart)
	y += 24
	y += drawParagraphAlpha(dst, finMindPrompt, MonoFace(15), inner.Min.X, y, inner.Dx(), Palette[ColorText], qa)
	y += 24

	for _, para := range finMindResponse {
		y += drawParagraphAlpha(dst, para, RegularFace(16), inner.Min.X, y, inner.Dx(), Palette[ColorTextMuted], qa)
		y += 14
	}
}

func drawParagraphAlpha(
	dst *eb.Image,
	text string,
	face ebt.Face,
	x, y, maxWidth float64,
	clr color.Color,
	alpha float64,
) float64 {
	return DrawParagraph(dst, text, face, x, y, maxWidth, ColorFade(clr, alpha), ebt.AlignStart)
}

// layerAlpha draws fn at alpha. Fully opaque draws go straight to dst.
func layerAlpha(dst *eb.Image, alpha float64, fn func(dst *eb.Image)) {
	if alpha >= 1 {
		fn(dst)
		return
	}

	size := dst.Bounds().Size()
	layer := alphaLayer(size.X, size.Y)
	fn(layer)

	op := &DrawImageOptions{}
	op.ColorScale.ScaleAlpha(f32(alpha))
	DrawImage(dst, layer, op)
}

var sharedAlphaLayer *eb.Image

func alphaLayer(w, h int) *eb.Image {
	if sharedAlphaLayer != nil {
		size := sharedAlphaLayer.Bounds().Size()
		if size.X != w || size.Y != h {
			sharedAlphaLayer.Deallocate()
			sharedAlphaLayer = nil
		}
	}
	if sharedAlphaLayer == nil {
		sharedAlphaLayer = eb.NewImage(w, h)
	} else {
		sharedAlphaLayer.Clear()
	}
	return sharedAlphaLayer
}
