package firstx

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type TechItem struct {
	Name string
	Logo string
}

var TechStack = []TechItem{
	{"LangChain", "LC"},
	{"OpenAI", "OA"},
	{"Mistral", "MI"},
	{"Neo4j", "N4"},
	{"ChromaDB", "CD"},
	{"Groq", "GQ"},
	{"Hugging Face", "HF"},
	{"LlamaIndex", "LI"},
	{"Cloudflared", "CF"},
	{"PostgreSQL", "PG"},
	{"Dolt", "DT"},
}

const (
	techStackTitle = "Powered By Innovation"

	pillWidth  = 200
	pillHeight = 64
	pillGap    = 18
	pillLift   = 6
)

type TechStackSection struct {
	Node *StyleNode

	Items   []TechItem
	Springs []*HoverSpring
}

func NewTechStackSection(items []TechItem) *TechStackSection {
	t := new(TechStackSection)
	t.Node = NewStyleNode("techstack")
	t.Items = items
	for range items {
		t.Springs = append(t.Springs, NewHoverSpring())
	}
	return t
}

func (t *TechStackSection) columns(width float64) int {
	column := ContentColumn(FRectWH(width, 0)).Dx()
	return Clamp(int((column+pillGap)/(pillWidth+pillGap)), 1, 6)
}

// pillRects lays pills out in centered rows.
func (t *TechStackSection) pillRects(rect FRectangle) []FRectangle {
	cols := t.columns(rect.Dx())
	top := rect.Min.Y + 100 + 72

	rects := make([]FRectangle, 0, len(t.Items))
	for i := range t.Items {
		row, col := i/cols, i%cols
		inRow := min(cols, len(t.Items)-row*cols)
		rowW := f64(inRow)*pillWidth + f64(inRow-1)*pillGap
		x := rect.Min.X + (rect.Dx()-rowW)*0.5 + f64(col)*(pillWidth+pillGap)
		y := top + f64(row)*(pillHeight+pillGap)
		rects = append(rects, FRectXYWH(x, y, pillWidth, pillHeight))
	}
	return rects
}

func (t *TechStackSection) Height(viewport FPoint) float64 {
	cols := t.columns(viewport.X)
	rows := (len(t.Items) + cols - 1) / cols
	return 100 + 72 + f64(rows)*(pillHeight+pillGap) + 100
}

func (t *TechStackSection) Update(p *Page, rect FRectangle) {
	cursor := CursorFPt()
	for i, r := range t.pillRects(rect) {
		spring := t.Springs[i]
		spring.SetHovered(cursor.In(r))
		if spring.Update() {
			SetRedraw()
		}
	}
}

func (t *TechStackSection) Draw(dst *eb.Image, p *Page, rect FRectangle) {
	p.DrawComposited(dst, t.Node, rect, t.Node.Float("--techstack-opacity", 0.2), 1, 0, t.drawContent)
}

func (t *TechStackSection) drawContent(dst *eb.Image, rect FRectangle) {
	center := FRectangleCenter(rect)
	DrawTextAt(dst, techStackTitle, BoldFace(40), center.X, rect.Min.Y+100, Palette[ColorText], ebt.AlignCenter)

	logoFace := MonoFace(16)
	nameFace := BoldFace(17)

	for i, r := range t.pillRects(rect) {
		item := t.Items[i]
		hover := t.Springs[i].Pos
		r = r.Add(FPt(0, -hover*pillLift))

		FillRoundRect(dst, r, r.Dy()*0.5, Palette[ColorPanel])
		StrokeRoundRect(dst, r, r.Dy()*0.5, 1, LerpColorRGBA(Palette[ColorPanelStroke], Palette[ColorAccent], hover))

		logoCenter := FPt(r.Min.X+r.Dy()*0.5, FRectangleCenter(r).Y)
		FillCircle(dst, logoCenter.X, logoCenter.Y, r.Dy()*0.5-10, LerpColorRGBA(Palette[ColorAccentDeep], Palette[ColorAccent], hover))
		DrawTextAt(dst, item.Logo, logoFace,
			logoCenter.X, logoCenter.Y-FontLineSpacing(logoFace)*0.5,
			Palette[ColorText], ebt.AlignCenter)

		DrawTextAt(dst, item.Name, nameFace,
			logoCenter.X+r.Dy()*0.5+4, logoCenter.Y-FontLineSpacing(nameFace)*0.5,
			Palette[ColorText], ebt.AlignStart)
	}
}
