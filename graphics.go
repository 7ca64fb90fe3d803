package firstx

import (
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var TheGraphicsContext struct {
	AntiAlias bool
}

func init() {
	TheGraphicsContext.AntiAlias = true
}

func IsAntiAliasOn() bool {
	return TheGraphicsContext.AntiAlias
}

func SetAntiAlias(onOff bool) {
	TheGraphicsContext.AntiAlias = onOff
}

type DrawImageOptions struct {
	GeoM eb.GeoM

	ColorScale eb.ColorScale
}

type DrawTextOptions struct {
	DrawImageOptions
	ebt.LayoutOptions
}

func DrawImage(dst *eb.Image, src *eb.Image, options *DrawImageOptions) {
	if options == nil {
		options = &DrawImageOptions{}
	}
	op := &eb.DrawImageOptions{}
	op.GeoM = options.GeoM
	op.ColorScale = options.ColorScale
	op.Filter = eb.FilterLinear
	dst.DrawImage(src, op)
}

func DrawTriangles(
	dst *eb.Image,
	vertices []eb.Vertex, indices []uint16,
	img *eb.Image,
) {
	op := &eb.DrawTrianglesOptions{}
	op.AntiAlias = TheGraphicsContext.AntiAlias
	op.FillRule = eb.FillRuleNonZero

	dst.DrawTriangles(vertices, indices, img, op)
}

func DrawText(
	dst *eb.Image,
	text string,
	face ebt.Face,
	options *DrawTextOptions,
) {
	if options == nil {
		options = &DrawTextOptions{}
	}
	op := &ebt.DrawOptions{}
	op.GeoM = options.GeoM
	op.ColorScale = options.ColorScale
	op.Filter = eb.FilterLinear
	op.LayoutOptions = options.LayoutOptions
	ebt.Draw(dst, text, face, op)
}

func FontSize(face *ebt.GoTextFace) float64 {
	return face.Size
}

func FontLineSpacing(face ebt.Face) float64 {
	m := face.Metrics()
	return m.HLineGap + m.HAscent + m.HDescent
}

// WrapText breaks text into lines no wider than maxWidth.
// Words wider than maxWidth get a line of their own.
func WrapText(text string, face ebt.Face, maxWidth float64) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if w, _ := ebt.Measure(candidate, face, 0); w > maxWidth {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}

	return lines
}

// DrawTextAt draws one or more lines with the top of the first line at y.
// x is the left edge, center or right edge depending on align.
func DrawTextAt(
	dst *eb.Image,
	text string,
	face ebt.Face,
	x, y float64,
	clr color.Color,
	align ebt.Align,
) {
	op := &DrawTextOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LayoutOptions.LineSpacing = FontLineSpacing(face)
	op.LayoutOptions.PrimaryAlign = align
	DrawText(dst, text, face, op)
}

// DrawParagraph wraps text to maxWidth and returns the height it took.
func DrawParagraph(
	dst *eb.Image,
	text string,
	face ebt.Face,
	x, y, maxWidth float64,
	clr color.Color,
	align ebt.Align,
) float64 {
	lines := WrapText(text, face, maxWidth)
	wrapped := strings.Join(lines, "\n")

	DrawTextAt(dst, wrapped, face, x, y, clr, align)

	return f64(len(lines)) * FontLineSpacing(face)
}

func ParagraphHeight(text string, face ebt.Face, maxWidth float64) float64 {
	return f64(len(WrapText(text, face, maxWidth))) * FontLineSpacing(face)
}
