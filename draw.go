package firstx

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

func FillRect(
	dst *eb.Image,
	rect FRectangle,
	clr color.Color,
) {
	ebv.DrawFilledRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		clr,
		IsAntiAliasOn(),
	)
}

func StrokeRect(
	dst *eb.Image,
	rect FRectangle,
	strokeWidth float64,
	clr color.Color,
) {
	ebv.StrokeRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		f32(strokeWidth),
		clr,
		IsAntiAliasOn(),
	)
}

func FillCircle(
	dst *eb.Image,
	x, y, r float64,
	clr color.Color,
) {
	ebv.DrawFilledCircle(
		dst, f32(x), f32(y), f32(r), clr, IsAntiAliasOn())
}

func StrokeCircle(
	dst *eb.Image,
	x, y, r float64,
	strokeWidth float64,
	clr color.Color,
) {
	ebv.StrokeCircle(
		dst, f32(x), f32(y), f32(r), f32(strokeWidth), clr, IsAntiAliasOn())
}

func StrokeLine(
	dst *eb.Image,
	x0, y0, x1, y1 float64,
	strokeWidth float64,
	clr color.Color,
) {
	ebv.StrokeLine(
		dst, f32(x0), f32(y0), f32(x1), f32(y1), f32(strokeWidth), clr, IsAntiAliasOn())
}

var roundRectBuffers struct {
	Vertices []eb.Vertex
	Indices  []uint16
}

func roundRectPath(rect FRectangle, radius float64) *ebv.Path {
	radius = min(radius, rect.Dx()*0.5, rect.Dy()*0.5)
	radius = max(radius, 0)

	x0, y0 := f32(rect.Min.X), f32(rect.Min.Y)
	x1, y1 := f32(rect.Max.X), f32(rect.Max.Y)
	r := f32(radius)

	p := &ebv.Path{}
	p.MoveTo(x0+r, y0)
	p.LineTo(x1-r, y0)
	p.ArcTo(x1, y0, x1, y0+r, r)
	p.LineTo(x1, y1-r)
	p.ArcTo(x1, y1, x1-r, y1, r)
	p.LineTo(x0+r, y1)
	p.ArcTo(x0, y1, x0, y1-r, r)
	p.LineTo(x0, y0+r)
	p.ArcTo(x0, y0, x0+r, y0, r)
	p.Close()

	return p
}

func drawPathVertices(dst *eb.Image, clr color.Color) {
	b := &roundRectBuffers

	c := ColorNormalized(clr, true)
	for i := range b.Vertices {
		b.Vertices[i].SrcX = 1
		b.Vertices[i].SrcY = 1
		b.Vertices[i].ColorR = f32(c[0])
		b.Vertices[i].ColorG = f32(c[1])
		b.Vertices[i].ColorB = f32(c[2])
		b.Vertices[i].ColorA = f32(c[3])
	}

	DrawTriangles(dst, b.Vertices, b.Indices, WhiteImage)
}

func FillRoundRect(
	dst *eb.Image,
	rect FRectangle,
	radius float64,
	clr color.Color,
) {
	if rect.Empty() {
		return
	}

	b := &roundRectBuffers
	p := roundRectPath(rect, radius)
	b.Vertices, b.Indices = p.AppendVerticesAndIndicesForFilling(b.Vertices[:0], b.Indices[:0])

	drawPathVertices(dst, clr)
}

func StrokeRoundRect(
	dst *eb.Image,
	rect FRectangle,
	radius float64,
	strokeWidth float64,
	clr color.Color,
) {
	if rect.Empty() {
		return
	}

	b := &roundRectBuffers
	p := roundRectPath(rect, radius)
	b.Vertices, b.Indices = p.AppendVerticesAndIndicesForStroke(
		b.Vertices[:0], b.Indices[:0],
		&ebv.StrokeOptions{Width: f32(strokeWidth)},
	)

	drawPathVertices(dst, clr)
}
