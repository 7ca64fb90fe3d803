package firstx

import (
	"math"
	"strings"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	heroName     = "Sayak Majumder"
	heroTagline  = "Data Scientist | AI Innovator | Founder"
	heroLogo     = "FX"
	heroMarquee  = "FIRSTX"
	marqueeSpeed = 60 // px per second
)

type HeroSection struct {
	Node *StyleNode

	// the logo spin, marquee and chevron only move while this is set
	IdleRunning bool
	IdleTime    time.Duration
}

func NewHeroSection() *HeroSection {
	h := new(HeroSection)
	h.Node = NewStyleNode("hero")
	h.IdleRunning = true
	return h
}

func (h *HeroSection) SetIdleRunning(running bool) {
	if h.IdleRunning != running {
		h.IdleRunning = running
		InfoLogger.Printf("hero idle animation running: %v", running)
	}
}

func (h *HeroSection) Height(viewport FPoint) float64 {
	return viewport.Y
}

func (h *HeroSection) Update(p *Page, rect FRectangle) {
	if h.IdleRunning && p.visible {
		h.IdleTime += UpdateDelta()
		SetRedraw()
	}
}

func (h *HeroSection) Draw(dst *eb.Image, p *Page, rect FRectangle) {
	p.DrawComposited(
		dst, h.Node, rect,
		h.Node.Float("--hero-opacity", 1),
		h.Node.Float("--hero-scale", 1),
		h.Node.Float("--hero-translate", 0),
		h.drawContent,
	)
}

func (h *HeroSection) drawContent(dst *eb.Image, rect FRectangle) {
	t := h.IdleTime.Seconds()
	center := FRectangleCenter(rect)

	h.drawMarquee(dst, rect, t)

	// logo
	logoCenter := FPt(center.X, center.Y-130)
	FillCircle(dst, logoCenter.X, logoCenter.Y, 56, Palette[ColorPanel])
	StrokeCircle(dst, logoCenter.X, logoCenter.Y, 56, 3, Palette[ColorAccent])
	{
		face := BoldFace(44)
		w, hgt := ebt.Measure(heroLogo, face, FontLineSpacing(face))

		op := &DrawTextOptions{}
		op.GeoM.Concat(TransformToCenter(w, hgt, 1, 1, math.Mod(t*0.6, 2*math.Pi)))
		op.GeoM.Translate(logoCenter.X, logoCenter.Y)
		op.ColorScale.ScaleWithColor(Palette[ColorText])
		DrawText(dst, heroLogo, face, op)
	}

	nameFace := BoldFace(min(72, rect.Dx()*0.08))
	DrawTextAt(dst, heroName, nameFace, center.X, center.Y-20, Palette[ColorText], ebt.AlignCenter)

	DrawTextAt(
		dst, heroTagline, RegularFace(22),
		center.X, center.Y+FontLineSpacing(nameFace)-4,
		Palette[ColorTextMuted], ebt.AlignCenter,
	)

	// chevron
	bounce := math.Abs(math.Sin(t*2.5)) * 10
	cx := center.X
	cy := rect.Max.Y - 64 + bounce
	StrokeLine(dst, cx-14, cy-7, cx, cy+7, 3, Palette[ColorAccentSoft])
	StrokeLine(dst, cx, cy+7, cx+14, cy-7, 3, Palette[ColorAccentSoft])
}

func (h *HeroSection) drawMarquee(dst *eb.Image, rect FRectangle, t float64) {
	face := BoldFace(120)
	unit := heroMarquee + "  "
	unitW, _ := ebt.Measure(unit, face, 0)
	if unitW <= 0 {
		return
	}

	repeat := int(rect.Dx()/unitW) + 2
	line := strings.Repeat(unit, repeat)

	offset := math.Mod(t*marqueeSpeed, unitW)

	op := &DrawTextOptions{}
	op.GeoM.Translate(rect.Min.X-offset, rect.Min.Y+rect.Dy()*0.12)
	op.ColorScale.ScaleWithColor(Palette[ColorBgWord])
	op.ColorScale.ScaleAlpha(0.08)
	DrawText(dst, line, face, op)
}
