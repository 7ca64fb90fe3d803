package firstx

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	workflowTitle    = "AI Workflow Solutions"
	workflowSubtitle = "Supercharge your business with custom AI workflows that automate " +
		"the impossible and turn your data into your competitive advantage."

	cardHeight  = 200
	cardGap     = 24
	cardLift    = 8
	formWidth   = 720
	sectionPadY = 120
)

var WorkflowCards = []Feature{
	{"Intelligent Automation", "Custom AI agents that understand your business logic and automate complex decision-making processes."},
	{"Data Intelligence", "Transform messy data into crystal-clear insights with advanced RAG systems and knowledge graphs."},
	{"Rapid Deployment", "From concept to production in weeks, not months. Scalable solutions that grow with your business."},
}

type WorkflowSection struct {
	Node *StyleNode

	Cards   []Feature
	Springs []*HoverSpring

	Form *FormView
}

func NewWorkflowSection(replyTo string) *WorkflowSection {
	w := new(WorkflowSection)
	w.Node = NewStyleNode("workflow")
	w.Cards = WorkflowCards

	for range w.Cards {
		w.Springs = append(w.Springs, NewHoverSpring())
	}

	w.Form = NewFormView(NewContactForm(replyTo))

	return w
}

type workflowLayout struct {
	Title    float64
	Subtitle float64
	Cards    []FRectangle
	Form     FRectangle
	Bottom   float64
}

func (w *WorkflowSection) layout(rect FRectangle) workflowLayout {
	var l workflowLayout

	column := ContentColumn(rect)
	y := rect.Min.Y + sectionPadY

	l.Title = y
	y += 64
	l.Subtitle = y
	y += ParagraphHeight(workflowSubtitle, RegularFace(20), min(column.Dx(), 760)) + 48

	cols := 3
	if column.Dx() < 820 {
		cols = 1
	}
	cardW := (column.Dx() - cardGap*f64(cols-1)) / f64(cols)

	for i := range w.Cards {
		col, row := i%cols, i/cols
		l.Cards = append(l.Cards, FRectXYWH(
			column.Min.X+f64(col)*(cardW+cardGap),
			y+f64(row)*(cardHeight+cardGap),
			cardW, cardHeight,
		))
	}
	rows := (len(w.Cards) + cols - 1) / cols
	y += f64(rows)*(cardHeight+cardGap) + 48

	fw := min(formWidth, column.Dx())
	fx := rect.Min.X + (rect.Dx()-fw)*0.5
	l.Form = FRectXYWH(fx, y, fw, w.Form.Height(fw))
	y = l.Form.Max.Y + sectionPadY

	l.Bottom = y
	return l
}

func (w *WorkflowSection) Height(viewport FPoint) float64 {
	return w.layout(FRectWH(viewport.X, 0)).Bottom
}

func (w *WorkflowSection) Update(p *Page, rect FRectangle) {
	l := w.layout(rect)

	cursor := CursorFPt()
	for i, spring := range w.Springs {
		spring.SetHovered(cursor.In(l.Cards[i]))
		if spring.Update() {
			SetRedraw()
		}
	}

	w.Form.Update(l.Form, &p.Timeouts)
}

func (w *WorkflowSection) Draw(dst *eb.Image, p *Page, rect FRectangle) {
	opacity := w.Node.Float("--workflow-opacity", 0)

	// glow under the top edge
	if glow := w.Node.Float("--cap-opacity", 0); glow > 0.001 {
		center := FPt(FRectangleCenter(rect).X, rect.Min.Y)
		for i := range 5 {
			r := rect.Dx() * (0.15 + f64(i)*0.07)
			FillCircle(dst, center.X, center.Y, r, ColorFade(Palette[ColorAccentDeep], glow*0.07))
		}
	}

	p.DrawComposited(dst, w.Node, rect, opacity, 1, (1-opacity)*40, w.drawContent)
}

func (w *WorkflowSection) drawContent(dst *eb.Image, rect FRectangle) {
	l := w.layout(rect)
	center := FRectangleCenter(rect)
	column := ContentColumn(rect)

	DrawTextAt(dst, workflowTitle, BoldFace(48), center.X, l.Title, Palette[ColorText], ebt.AlignCenter)
	DrawParagraph(
		dst, workflowSubtitle, RegularFace(20),
		center.X, l.Subtitle, min(column.Dx(), 760),
		Palette[ColorTextMuted], ebt.AlignCenter,
	)

	for i, card := range w.Cards {
		hover := w.Springs[i].Pos
		r := l.Cards[i].Add(FPt(0, -hover*cardLift))

		FillRoundRect(dst, r, 20, Palette[ColorPanel])
		StrokeRoundRect(dst, r, 20, 1+hover, LerpColorRGBA(Palette[ColorPanelStroke], Palette[ColorAccent], hover))

		inner := r.Inset(28)
		FillRoundRect(dst, FRectXYWH(inner.Min.X, inner.Min.Y, 44, 4), 2, Palette[ColorAccent])
		DrawTextAt(dst, card.Title, BoldFace(22), inner.Min.X, inner.Min.Y+20, Palette[ColorText], ebt.AlignStart)
		DrawParagraph(
			dst, card.Body, RegularFace(16),
			inner.Min.X, inner.Min.Y+60, inner.Dx(),
			Palette[ColorTextMuted], ebt.AlignStart,
		)
	}

	w.Form.Draw(dst, l.Form)
}
